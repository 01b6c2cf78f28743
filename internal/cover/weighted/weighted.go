// Package weighted selects covers by solving a weighted MAXSAT problem: every
// true minterm must be covered, and each chosen implicant costs one unit per
// literal on top of a fixed per-term charge.
package weighted

import (
	"strconv"

	"github.com/crillab/gophersat/maxsat"
	"github.com/pkg/errors"

	"karnaugh/pkg/kmap"
)

// Name is the registry key of the coverer.
const Name = "weighted"

func init() {
	kmap.RegisterCoverer(Name, New)
}

type weighted struct{}

// New returns a coverer minimizing (n+1)·terms + literals for an
// n-variable map.
func New() kmap.Coverer { return weighted{} }

func (weighted) Name() string { return Name }

// Cost is the objective value of picking the given implicants in layout l.
func Cost(l kmap.Layout, cover []kmap.Implicant) int {
	total := 0
	for _, p := range cover {
		total += weight(l, p)
	}
	return total
}

func weight(l kmap.Layout, p kmap.Implicant) int {
	return l.Vars + 1 + p.Literals()
}

func varName(i int) string { return "p" + strconv.Itoa(i) }

func (weighted) Cover(l kmap.Layout, primes []kmap.Implicant, ones []int) ([]int, error) {
	if len(ones) == 0 {
		return nil, nil
	}
	var constrs []maxsat.Constr
	for _, m := range ones {
		var lits []maxsat.Lit
		for i, p := range primes {
			if p.Covers(m) {
				lits = append(lits, maxsat.Var(varName(i)))
			}
		}
		if len(lits) == 0 {
			return nil, errors.Wrapf(kmap.ErrIncompleteCover, "no implicant covers minterm %d", m)
		}
		constrs = append(constrs, maxsat.HardClause(lits...))
	}
	for i, p := range primes {
		constrs = append(constrs, maxsat.WeightedClause([]maxsat.Lit{maxsat.Not(varName(i))}, weight(l, p)))
	}

	model, cost := maxsat.New(constrs...).Solve()
	if model == nil {
		return nil, errors.Wrapf(kmap.ErrIncompleteCover, "no cover of %d minterms", len(ones))
	}
	var out []int
	seen := make(map[int]bool)
	for _, i := range kmap.Essentials(primes, ones) {
		if !model[varName(i)] {
			return nil, errors.Errorf("essential implicant %s left out of model with cost %d", primes[i].Term, cost)
		}
		seen[i] = true
		out = append(out, i)
	}
	for i := range primes {
		if !seen[i] && model[varName(i)] {
			out = append(out, i)
		}
	}
	return out, nil
}
