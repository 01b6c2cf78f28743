package kmap_test

import (
	"fmt"

	"karnaugh/pkg/kmap"
)

func ExampleGrayCode() {
	fmt.Println(kmap.GrayCode(2))
	// Output: [00 01 11 10]
}

func ExampleMinimizer_Simplify() {
	z := kmap.New()
	if err := z.Configure(3); err != nil {
		panic(err)
	}
	z.LoadMinterms([]int{0, 2}, []int{1, 3})
	res, err := z.Simplify()
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Expression)
	fmt.Println(z.CanonicalSOP())
	// Output:
	// A'
	// A'B'C' + A'BC'
}

func ExampleSimplify() {
	l, _ := kmap.NewLayout(4)
	res, _ := kmap.Simplify(l, []int{0, 2, 8, 10, 5, 7, 13, 15}, nil, kmap.Greedy())
	fmt.Println(res.Expression)
	// Output: B'D' + BD
}

func ExampleFindPrimeImplicants() {
	l, _ := kmap.NewLayout(4)
	ones := []int{0, 2, 5, 7, 8, 10, 13, 15}
	primes := kmap.FindPrimeImplicants(l, ones, nil)
	idx, err := kmap.Greedy().Cover(l, primes, ones)
	if err != nil {
		panic(err)
	}
	cover := make([]kmap.Implicant, len(idx))
	for i, p := range idx {
		cover[i] = primes[p]
	}
	fmt.Println(len(primes), kmap.Expression(cover))
	// Output: 2 B'D' + BD
}
