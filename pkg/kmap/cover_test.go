package kmap

import (
	"slices"
	"testing"

	"github.com/pkg/errors"
)

func TestEssentialsFollowMintermOrder(t *testing.T) {
	l, _ := NewLayout(3)
	// Ones on 0, 1, 3: 0 is covered only by A'B', 3 only by A'C.
	primes := FindPrimeImplicants(l, []int{0, 1, 3}, nil)
	got := Essentials(primes, []int{0, 1, 3})
	if len(got) != 2 {
		t.Fatalf("essentials %v of %v, want two", got, primes)
	}
	if primes[got[0]].Term != "A'B'" || primes[got[1]].Term != "A'C" {
		t.Fatalf("essentials %s, %s", primes[got[0]].Term, primes[got[1]].Term)
	}
}

func TestGreedyCyclicCoverIsComplete(t *testing.T) {
	// Six minterms around a cycle: no essential implicants.
	l, _ := NewLayout(3)
	ones := []int{0, 1, 2, 5, 6, 7}
	primes := FindPrimeImplicants(l, ones, nil)
	if len(primes) != 6 {
		t.Fatalf("found %d primes, want 6", len(primes))
	}
	if got := Essentials(primes, ones); len(got) != 0 {
		t.Fatalf("essentials %v, want none", got)
	}
	idx, err := Greedy().Cover(l, primes, ones)
	if err != nil {
		t.Fatalf("Cover: %v", err)
	}
	if rest := Uncovered(primes, idx, ones); len(rest) != 0 {
		t.Fatalf("uncovered %v", rest)
	}
	if len(idx) < 3 || len(idx) > 4 {
		t.Fatalf("greedy picked %d implicants", len(idx))
	}
	if idx[0] != 0 {
		t.Fatalf("greedy broke the first tie towards %d, want the first discovered", idx[0])
	}
}

func TestGreedyReportsExhaustion(t *testing.T) {
	l, _ := NewLayout(2)
	primes := FindPrimeImplicants(l, []int{1}, nil)
	_, err := Greedy().Cover(l, primes, []int{1, 2})
	if errors.Cause(err) != ErrIncompleteCover {
		t.Fatalf("got %v, want ErrIncompleteCover", err)
	}
}

func TestCovererRegistry(t *testing.T) {
	if !slices.Contains(CovererNames(), GreedyName) {
		t.Fatalf("greedy missing from %v", CovererNames())
	}
	c, err := LookupCoverer(GreedyName)
	if err != nil || c.Name() != GreedyName {
		t.Fatalf("LookupCoverer(greedy) = %v, %v", c, err)
	}
	if _, err := LookupCoverer("nope"); errors.Cause(err) != ErrUnknownCoverer {
		t.Fatalf("unknown name gave %v", err)
	}

	RegisterCoverer("", Greedy)
	RegisterCoverer("nil-factory", nil)
	for _, name := range CovererNames() {
		if name == "" || name == "nil-factory" {
			t.Fatalf("invalid registration %q accepted", name)
		}
	}
}
