// Package exact selects a cover with the fewest prime implicants by handing
// the covering problem to a SAT solver under a cardinality bound.
package exact

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
	"github.com/pkg/errors"

	"karnaugh/pkg/kmap"
)

// Name is the registry key of the coverer.
const Name = "exact"

const satisfiable = 1

func init() {
	kmap.RegisterCoverer(Name, New)
}

type exact struct{}

// New returns a coverer whose result has the minimum number of terms. Among
// covers of that size the solver's first model wins, so the literal count is
// not minimized.
func New() kmap.Coverer { return exact{} }

func (exact) Name() string { return Name }

func (exact) Cover(_ kmap.Layout, primes []kmap.Implicant, ones []int) ([]int, error) {
	if len(ones) == 0 {
		return nil, nil
	}
	c := logic.NewCCap(len(primes) * 8)
	lits := make([]z.Lit, len(primes))
	for i := range lits {
		lits[i] = c.Lit()
	}

	g := gini.New()
	for _, m := range ones {
		n := 0
		for i, p := range primes {
			if p.Covers(m) {
				g.Add(lits[i])
				n++
			}
		}
		if n == 0 {
			return nil, errors.Wrapf(kmap.ErrIncompleteCover, "no implicant covers minterm %d", m)
		}
		g.Add(0)
	}

	cs := c.CardSort(lits)
	var marks []int8
	for w := 0; w <= cs.N(); w++ {
		marks, _ = c.CnfSince(g, marks, cs.Leq(w))
	}
	for w := 0; w <= cs.N(); w++ {
		g.Assume(cs.Leq(w))
		if g.Solve() != satisfiable {
			continue
		}
		return order(primes, ones, func(i int) bool { return g.Value(lits[i]) }), nil
	}
	return nil, errors.Wrapf(kmap.ErrIncompleteCover, "no cover of %d minterms", len(ones))
}

// order lists the chosen implicants with the essential ones first, in the
// order kmap.Essentials reports them, then the rest in discovery order.
func order(primes []kmap.Implicant, ones []int, chosen func(int) bool) []int {
	var out []int
	seen := make(map[int]bool)
	for _, i := range kmap.Essentials(primes, ones) {
		seen[i] = true
		out = append(out, i)
	}
	for i := range primes {
		if !seen[i] && chosen(i) {
			out = append(out, i)
		}
	}
	return out
}
