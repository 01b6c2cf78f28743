package kmap

import (
	"sort"

	"github.com/pkg/errors"
)

// A Coverer picks prime implicants whose union covers every true minterm.
// Cover returns indices into primes in selection order. ones is sorted and
// free of duplicates; don't-cares never need to be covered.
type Coverer interface {
	Name() string
	Cover(l Layout, primes []Implicant, ones []int) ([]int, error)
}

// Factory constructs a Coverer.
type Factory func() Coverer

var coverers = map[string]Factory{}

// RegisterCoverer adds a coverer factory under the provided name.
func RegisterCoverer(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	coverers[name] = f
}

// Coverers exposes the registry of available coverer factories.
func Coverers() map[string]Factory {
	return coverers
}

// CovererNames returns the registered names in lexical order.
func CovererNames() []string {
	names := make([]string, 0, len(coverers))
	for name := range coverers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupCoverer constructs the coverer registered under name.
func LookupCoverer(name string) (Coverer, error) {
	f, ok := coverers[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownCoverer, "%q (have %v)", name, CovererNames())
	}
	return f(), nil
}

// GreedyName is the registry key of the default coverer.
const GreedyName = "greedy"

func init() {
	RegisterCoverer(GreedyName, Greedy)
}

// Essentials returns the indices of the prime implicants that are the only
// cover of some true minterm, in the order those minterms are visited.
func Essentials(primes []Implicant, ones []int) []int {
	var out []int
	marked := make([]bool, len(primes))
	for _, m := range ones {
		only := -1
		for i, p := range primes {
			if !p.Covers(m) {
				continue
			}
			if only >= 0 {
				only = -1
				break
			}
			only = i
		}
		if only >= 0 && !marked[only] {
			marked[only] = true
			out = append(out, only)
		}
	}
	return out
}

// Uncovered returns the minterms of ones outside every selected implicant.
func Uncovered(primes []Implicant, selected []int, ones []int) []int {
	var out []int
	for _, m := range ones {
		covered := false
		for _, i := range selected {
			if primes[i].Covers(m) {
				covered = true
				break
			}
		}
		if !covered {
			out = append(out, m)
		}
	}
	return out
}

type greedy struct{}

// Greedy returns the default coverer: every essential prime implicant, then
// repeatedly the implicant covering the most still-uncovered minterms. Ties
// go to the implicant discovered first. The result is not guaranteed to be a
// minimum cover.
func Greedy() Coverer { return greedy{} }

func (greedy) Name() string { return GreedyName }

func (greedy) Cover(_ Layout, primes []Implicant, ones []int) ([]int, error) {
	selected := Essentials(primes, ones)
	chosen := make([]bool, len(primes))
	for _, i := range selected {
		chosen[i] = true
	}
	remaining := Uncovered(primes, selected, ones)
	for len(remaining) > 0 {
		best, bestCount := -1, 0
		for i, p := range primes {
			if chosen[i] {
				continue
			}
			count := 0
			for _, m := range remaining {
				if p.Covers(m) {
					count++
				}
			}
			if count > bestCount {
				best, bestCount = i, count
			}
		}
		if best < 0 {
			return selected, errors.Wrapf(ErrIncompleteCover, "minterms %v", remaining)
		}
		chosen[best] = true
		selected = append(selected, best)
		next := remaining[:0]
		for _, m := range remaining {
			if !primes[best].Covers(m) {
				next = append(next, m)
			}
		}
		remaining = next
	}
	return selected, nil
}
