package kmap

import (
	"sort"
	"strconv"
	"strings"

	"karnaugh/internal/core"
)

// Implicant is a rectangular group of 1 and X cells expressible as a single
// product term. Mask has a bit set for every variable the term fixes and
// Value holds those variables' values.
type Implicant struct {
	Mask      uint   `json:"-"`
	Value     uint   `json:"-"`
	Term      string `json:"term"`
	Minterms  []int  `json:"minterms"`
	Essential bool   `json:"essential"`

	// Rows and Cols list the grid lines the group spans.
	Rows []int `json:"-"`
	Cols []int `json:"-"`
}

// Covers reports whether minterm m lies inside the implicant.
func (i Implicant) Covers(m int) bool {
	return uint(m)&i.Mask == i.Value
}

// Contains reports whether every minterm of o also belongs to i.
func (i Implicant) Contains(o Implicant) bool {
	return o.Mask&i.Mask == i.Mask && o.Value&i.Mask == i.Value
}

// Literals returns the number of literals in the implicant's term.
func (i Implicant) Literals() int { return popcount(i.Mask) }

// Key identifies the implicant by its sorted minterm set.
func (i Implicant) Key() string { return mintermKey(i.Minterms) }

func mintermKey(ms []int) string {
	parts := make([]string, len(ms))
	for i, m := range ms {
		parts[i] = strconv.Itoa(m)
	}
	return strings.Join(parts, ",")
}

// span is a set of positions along one axis whose Gray words form a
// sub-cube: they agree on the bits in mask and vary freely elsewhere.
type span struct {
	pos   []int
	mask  uint
	value uint
}

// axisSpans returns, for every power-of-two length up to 2^bits, the spans an
// axis of the given width offers. Wrapping windows come first in start order.
// Sub-cubes no window reaches, which only exist on 3-bit axes, follow.
func axisSpans(bits int) map[int][]span {
	n := 1 << bits
	full := uint(n - 1)
	out := make(map[int][]span, bits+1)
	for k := 0; k <= bits; k++ {
		length := 1 << k
		seen := make(map[[2]uint]bool)
		var spans []span
		add := func(pos []int) {
			and, or := full, uint(0)
			for _, p := range pos {
				w := grayWord(p)
				and &= w
				or |= w
			}
			if popcount(and^or) != k {
				return
			}
			mask := full &^ (and ^ or)
			key := [2]uint{mask, and & mask}
			if seen[key] {
				return
			}
			seen[key] = true
			spans = append(spans, span{pos: pos, mask: mask, value: and & mask})
		}
		for start := 0; start < n; start++ {
			pos := make([]int, length)
			for i := range pos {
				pos[i] = core.Wrap(start+i, n)
			}
			add(pos)
		}
		for free := uint(0); free <= full; free++ {
			if popcount(free) != k {
				continue
			}
			for v := uint(0); v <= full; v++ {
				if v&free != 0 {
					continue
				}
				pos := make([]int, 0, length)
				for w := uint(0); w <= full; w++ {
					if w&^free == v {
						pos = append(pos, grayRank(w))
					}
				}
				sort.Ints(pos)
				add(pos)
			}
		}
		out[length] = spans
	}
	return out
}

type shape struct{ h, w int }

// shapes lists the rectangles of area s that fit the layout, squarest first.
func shapes(s int, l Layout) []shape {
	var out []shape
	for h := 1; h <= l.Rows; h <<= 1 {
		w := s / h
		if w < 1 || h*w != s || w > l.Cols {
			continue
		}
		out = append(out, shape{h: h, w: w})
	}
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := skew(out[i]), skew(out[j])
		if di != dj {
			return di < dj
		}
		return out[i].h < out[j].h
	})
	return out
}

func skew(s shape) int {
	if s.h > s.w {
		return s.h / s.w
	}
	return s.w / s.h
}

// FindPrimeImplicants returns every maximal group of cells drawn from
// ones ∪ dontCares, in discovery order: larger groups first, then by shape
// and anchor. Groups made only of don't-cares are dropped since they can never
// contribute to a cover. Minterms outside the layout are ignored. With no true
// minterms the result is empty.
func FindPrimeImplicants(l Layout, ones, dontCares []int) []Implicant {
	available := core.NewByteGrid(l.Cols, l.Rows)
	for _, m := range dontCares {
		if l.Valid(m) {
			row, col := l.Position(m)
			available.Set(col, row, cellDontCare)
		}
	}
	anyOne := false
	for _, m := range ones {
		if l.Valid(m) {
			row, col := l.Position(m)
			available.Set(col, row, cellOne)
			anyOne = true
		}
	}
	if !anyOne {
		return nil
	}

	rowSpans := axisSpans(l.RowBits)
	colSpans := axisSpans(l.ColBits)
	names := l.Names()

	var primes []Implicant
	seen := make(map[string]bool)
	for s := l.Size(); s >= 1; s >>= 1 {
		for _, sh := range shapes(s, l) {
			for _, rs := range rowSpans[sh.h] {
				for _, cs := range colSpans[sh.w] {
					if !filled(available, rs, cs) {
						continue
					}
					g := newGroup(l, rs, cs)
					key := g.Key()
					if seen[key] {
						continue
					}
					seen[key] = true
					if subsumed(primes, g) {
						continue
					}
					g.Term = FormatTerm(g.Mask, g.Value, names)
					primes = append(primes, g)
				}
			}
		}
	}

	out := primes[:0]
	for _, p := range primes {
		if touchesOne(available, p) {
			out = append(out, p)
		}
	}
	return out
}

const (
	cellDontCare = uint8(DontCare)
	cellOne      = uint8(One)
)

func touchesOne(g *core.ByteGrid, p Implicant) bool {
	for _, row := range p.Rows {
		for _, col := range p.Cols {
			if g.At(col, row) == cellOne {
				return true
			}
		}
	}
	return false
}

func filled(g *core.ByteGrid, rs, cs span) bool {
	for _, row := range rs.pos {
		for _, col := range cs.pos {
			if g.At(col, row) == 0 {
				return false
			}
		}
	}
	return true
}

func newGroup(l Layout, rs, cs span) Implicant {
	ms := make([]int, 0, len(rs.pos)*len(cs.pos))
	for _, row := range rs.pos {
		for _, col := range cs.pos {
			ms = append(ms, l.Minterm(row, col))
		}
	}
	sort.Ints(ms)
	return Implicant{
		Mask:     rs.mask<<l.ColBits | cs.mask,
		Value:    rs.value<<l.ColBits | cs.value,
		Minterms: ms,
		Rows:     append([]int(nil), rs.pos...),
		Cols:     append([]int(nil), cs.pos...),
	}
}

func subsumed(primes []Implicant, g Implicant) bool {
	for _, p := range primes {
		if len(p.Minterms) > len(g.Minterms) && p.Contains(g) {
			return true
		}
	}
	return false
}
