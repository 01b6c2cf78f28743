// Package verify checks minimized expressions against the function they were
// derived from. Equivalent asks a SAT solver for a distinguishing input;
// TruthTable simulates the cover on all inputs at once.
package verify

import (
	"github.com/crillab/gophersat/bf"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
	"github.com/pkg/errors"

	"karnaugh/pkg/kmap"
)

// ErrNotEquivalent is returned when a cover disagrees with the function on
// some input outside the don't-care set.
var ErrNotEquivalent = errors.New("cover is not equivalent to the function")

// Equivalent reports whether the sum of the cover's terms is true on every
// minterm of ones and false on every minterm outside ones ∪ dontCares. On a
// mismatch the returned error wraps ErrNotEquivalent and names the first
// counter-example found.
func Equivalent(l kmap.Layout, cover []kmap.Implicant, ones, dontCares []int) error {
	names := l.Names()
	onTerms := mintermTerms(l, ones)
	careTerms := append(mintermTerms(l, dontCares), onTerms...)
	sop := make([]bf.Formula, 0, len(cover))
	tautology := false
	for _, p := range cover {
		if p.Literals() == 0 {
			tautology = true
		}
		sop = append(sop, product(p.Mask, p.Value, names))
	}

	// A term true outside the on-set and the don't-cares.
	if len(sop) > 0 {
		if tautology && len(careTerms) == 0 {
			return mismatch(l, nil, "true")
		}
		f := bf.Or(sop...)
		if len(careTerms) > 0 {
			f = bf.And(f, bf.Not(bf.Or(careTerms...)))
		}
		if model := bf.Solve(f); model != nil {
			return mismatch(l, model, "true")
		}
	}
	// A true minterm no term reaches.
	if len(onTerms) > 0 && !tautology {
		f := bf.Or(onTerms...)
		if len(sop) > 0 {
			f = bf.And(f, bf.Not(bf.Or(sop...)))
		}
		if model := bf.Solve(f); model != nil {
			return mismatch(l, model, "false")
		}
	}
	return nil
}

func mismatch(l kmap.Layout, model map[string]bool, got string) error {
	m := 0
	for i, name := range l.Names() {
		if model[name] {
			m |= 1 << (l.Vars - 1 - i)
		}
	}
	return errors.Wrapf(ErrNotEquivalent, "cover is %s on minterm %d (%s)", got, m, kmap.FormatMinterm(m, l.Names()))
}

func mintermTerms(l kmap.Layout, ms []int) []bf.Formula {
	out := make([]bf.Formula, 0, len(ms))
	for _, m := range ms {
		if l.Valid(m) {
			out = append(out, product(l.FullMask(), uint(m), l.Names()))
		}
	}
	return out
}

// product is the conjunction of the literals fixed by mask. An empty mask is
// bf.True.
func product(mask, value uint, names []string) bf.Formula {
	var lits []bf.Formula
	n := len(names)
	for i, name := range names {
		bit := uint(1) << (n - 1 - i)
		if mask&bit == 0 {
			continue
		}
		v := bf.Var(name)
		if value&bit == 0 {
			v = bf.Not(v)
		}
		lits = append(lits, v)
	}
	if len(lits) == 0 {
		return bf.True
	}
	return bf.And(lits...)
}

// TruthTable evaluates the sum of the cover's terms on every minterm of l.
// Bit m of the result is the value on minterm m.
func TruthTable(l kmap.Layout, cover []kmap.Implicant) uint64 {
	c := logic.NewCCap(64)
	ins := make([]z.Lit, l.Vars)
	for i := range ins {
		ins[i] = c.Lit()
	}
	terms := make([]z.Lit, 0, len(cover))
	for _, p := range cover {
		var lits []z.Lit
		for i := range ins {
			bit := uint(1) << (l.Vars - 1 - i)
			if p.Mask&bit == 0 {
				continue
			}
			m := ins[i]
			if p.Value&bit == 0 {
				m = m.Not()
			}
			lits = append(lits, m)
		}
		terms = append(terms, c.Ands(lits...))
	}
	root := c.Ors(terms...)

	full := tableMask(l)
	switch root {
	case c.T:
		return full
	case c.F:
		return 0
	}
	vs := make([]uint64, c.Len())
	for i, in := range ins {
		vs[in.Var()] = inputPattern(l.Vars - 1 - i)
	}
	c.Eval64(vs)
	out := vs[root.Var()]
	if !root.IsPos() {
		out = ^out
	}
	return out & full
}

// Table returns the truth table of the function with true minterms ones.
func Table(l kmap.Layout, ones []int) uint64 {
	var t uint64
	for _, m := range ones {
		if l.Valid(m) {
			t |= 1 << uint(m)
		}
	}
	return t
}

// inputPattern is the truth table of the variable at bit b: bit m is set when
// minterm m has bit b set.
func inputPattern(b int) uint64 {
	var w uint64
	for m := 0; m < 64; m++ {
		if m>>b&1 == 1 {
			w |= 1 << uint(m)
		}
	}
	return w
}

func tableMask(l kmap.Layout) uint64 {
	if l.Size() == 64 {
		return ^uint64(0)
	}
	return 1<<uint(l.Size()) - 1
}

// Check runs both verifiers on a simplification result. The SAT check runs
// first; the simulated truth table must then agree with ones outside the
// don't-cares.
func Check(l kmap.Layout, res kmap.Result, ones, dontCares []int) error {
	if err := Equivalent(l, res.Cover, ones, dontCares); err != nil {
		return err
	}
	care := tableMask(l) &^ Table(l, dontCares)
	got := TruthTable(l, res.Cover) & care
	want := Table(l, ones) & care
	if diff := got ^ want; diff != 0 {
		m := 0
		for diff&1 == 0 {
			diff >>= 1
			m++
		}
		return errors.Wrapf(ErrNotEquivalent, "simulated table differs on minterm %d", m)
	}
	return nil
}
