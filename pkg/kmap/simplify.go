package kmap

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Result is the outcome of one simplification. PrimeImplicants are listed in
// discovery order with their essential flags; Cover holds the selected
// implicants in selection order.
type Result struct {
	Expression      string      `json:"expression"`
	PrimeImplicants []Implicant `json:"primeImplicants"`
	Cover           []Implicant `json:"cover"`
}

// Simplify minimizes the function that is true on ones and unconstrained on
// dontCares. Values outside the layout are ignored. A nil coverer selects
// Greedy. The returned error wraps ErrIncompleteCover when the selected
// implicants leave a true minterm uncovered; the expression is then empty.
func Simplify(l Layout, ones, dontCares []int, c Coverer) (Result, error) {
	if c == nil {
		c = Greedy()
	}
	ones = normalize(l, ones)
	primes := FindPrimeImplicants(l, ones, dontCares)
	if len(primes) == 0 {
		return Result{Expression: "0", PrimeImplicants: []Implicant{}, Cover: []Implicant{}}, nil
	}
	for _, i := range Essentials(primes, ones) {
		primes[i].Essential = true
	}

	idx, err := c.Cover(l, primes, ones)
	if err != nil {
		return Result{PrimeImplicants: primes}, errors.Wrapf(err, "%s cover", c.Name())
	}
	cover := make([]Implicant, 0, len(idx))
	for _, i := range idx {
		if i < 0 || i >= len(primes) {
			return Result{PrimeImplicants: primes}, errors.Wrapf(ErrIncompleteCover, "%s cover selected implicant %d of %d", c.Name(), i, len(primes))
		}
		cover = append(cover, primes[i])
	}
	if rest := Uncovered(primes, idx, ones); len(rest) > 0 {
		return Result{PrimeImplicants: primes}, errors.Wrapf(ErrIncompleteCover, "%s cover left minterms %v", c.Name(), rest)
	}
	return Result{Expression: Expression(cover), PrimeImplicants: primes, Cover: cover}, nil
}

// Expression joins the terms of cover with " + ". An empty cover is "0".
func Expression(cover []Implicant) string {
	if len(cover) == 0 {
		return "0"
	}
	terms := make([]string, len(cover))
	for i, p := range cover {
		terms[i] = p.Term
	}
	return strings.Join(terms, " + ")
}

// normalize returns the sorted, duplicate-free minterms of xs valid for l.
func normalize(l Layout, xs []int) []int {
	out := make([]int, 0, len(xs))
	for _, x := range xs {
		if l.Valid(x) {
			out = append(out, x)
		}
	}
	sort.Ints(out)
	uniq := out[:0]
	for i, x := range out {
		if i > 0 && x == out[i-1] {
			continue
		}
		uniq = append(uniq, x)
	}
	return uniq
}
