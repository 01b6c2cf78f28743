package kmap

import (
	"sort"

	"karnaugh/internal/core"
)

// Map is the editable grid of a Karnaugh map. A Map is not safe for
// concurrent use.
type Map struct {
	layout Layout
	grid   *core.ByteGrid
}

// NewMap returns an all-zero map for n variables.
func NewMap(n int) (*Map, error) {
	m := &Map{}
	if err := m.Reset(n); err != nil {
		return nil, err
	}
	return m, nil
}

// Reset reconfigures the map for n variables and clears every cell. An
// invalid n leaves the map untouched.
func (m *Map) Reset(n int) error {
	l, err := NewLayout(n)
	if err != nil {
		return err
	}
	m.layout = l
	m.grid = core.NewByteGrid(l.Cols, l.Rows)
	return nil
}

// Layout returns the geometry of the map.
func (m *Map) Layout() Layout { return m.layout }

// Clear sets every cell to Zero.
func (m *Map) Clear() { m.grid.Clear() }

// At returns the cell at (row, col), or Zero outside the grid.
func (m *Map) At(row, col int) Cell {
	if !m.layout.Contains(row, col) {
		return Zero
	}
	return Cell(m.grid.At(col, row))
}

// Set stores v at (row, col). Writes outside the grid are ignored.
func (m *Map) Set(row, col int, v Cell) {
	m.grid.Set(col, row, uint8(v))
}

// Cycle advances the cell at (row, col) through 0 -> 1 -> X.
func (m *Map) Cycle(row, col int) {
	if !m.layout.Contains(row, col) {
		return
	}
	m.Set(row, col, m.At(row, col).Next())
}

// Load replaces the grid contents. Minterms outside the layout and repeated
// values are ignored; a minterm listed in both sets ends up One.
func (m *Map) Load(ones, dontCares []int) {
	m.grid.Clear()
	for _, v := range dontCares {
		m.put(v, DontCare)
	}
	for _, v := range ones {
		m.put(v, One)
	}
}

func (m *Map) put(minterm int, v Cell) {
	if !m.layout.Valid(minterm) {
		return
	}
	row, col := m.layout.Position(minterm)
	m.Set(row, col, v)
}

// Minterms returns the sorted minterms whose cell is One.
func (m *Map) Minterms() []int { return m.collect(One) }

// DontCares returns the sorted minterms whose cell is DontCare.
func (m *Map) DontCares() []int { return m.collect(DontCare) }

func (m *Map) collect(want Cell) []int {
	out := []int{}
	for row := 0; row < m.layout.Rows; row++ {
		for col := 0; col < m.layout.Cols; col++ {
			if m.At(row, col) == want {
				out = append(out, m.layout.Minterm(row, col))
			}
		}
	}
	sort.Ints(out)
	return out
}

// Cells exposes the row-major cell bytes.
func (m *Map) Cells() []uint8 { return m.grid.Cells() }
