package kmap

import "github.com/pkg/errors"

// State is a serializable snapshot of a Map. Cells are indexed [row][col].
type State struct {
	Vars  int      `json:"vars"`
	Cells [][]Cell `json:"cells"`
}

// State returns a snapshot of the map.
func (m *Map) State() State {
	s := State{Vars: m.layout.Vars, Cells: make([][]Cell, m.layout.Rows)}
	for row := range s.Cells {
		s.Cells[row] = make([]Cell, m.layout.Cols)
		for col := range s.Cells[row] {
			s.Cells[row][col] = m.At(row, col)
		}
	}
	return s
}

// FromState rebuilds a Map from a snapshot. The cell matrix must match the
// layout for s.Vars exactly.
func FromState(s State) (*Map, error) {
	m, err := NewMap(s.Vars)
	if err != nil {
		return nil, err
	}
	l := m.layout
	if len(s.Cells) != l.Rows {
		return nil, errors.Wrapf(ErrInvalidState, "%d rows, want %d", len(s.Cells), l.Rows)
	}
	for row, cells := range s.Cells {
		if len(cells) != l.Cols {
			return nil, errors.Wrapf(ErrInvalidState, "row %d has %d cells, want %d", row, len(cells), l.Cols)
		}
		for col, v := range cells {
			if v > DontCare {
				return nil, errors.Wrapf(ErrInvalidState, "cell (%d,%d) holds %d", row, col, v)
			}
			m.Set(row, col, v)
		}
	}
	return m, nil
}

// SimplifyState minimizes the function described by s with the given
// coverer. It does not retain s.
func SimplifyState(s State, c Coverer) (Result, error) {
	m, err := FromState(s)
	if err != nil {
		return Result{}, err
	}
	return Simplify(m.Layout(), m.Minterms(), m.DontCares(), c)
}
