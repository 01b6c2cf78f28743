package kmap

import (
	"math/bits"

	"github.com/pkg/errors"
)

const (
	// MinVars is the smallest supported variable count.
	MinVars = 2
	// MaxVars is the largest supported variable count.
	MaxVars = 6
)

// Letters are the variable names, most significant first.
var Letters = [MaxVars]string{"A", "B", "C", "D", "E", "F"}

// Layout fixes the geometry of a map with Vars variables. The RowBits most
// significant variables select the row, the remaining ColBits the column.
type Layout struct {
	Vars    int
	RowBits int
	ColBits int
	Rows    int
	Cols    int
}

// NewLayout returns the layout for n variables.
func NewLayout(n int) (Layout, error) {
	if n < MinVars || n > MaxVars {
		return Layout{}, errors.Wrapf(ErrInvalidVariableCount, "got %d, want %d..%d", n, MinVars, MaxVars)
	}
	return layoutFor(n), nil
}

func layoutFor(n int) Layout {
	rowBits := n / 2
	colBits := n - rowBits
	return Layout{
		Vars:    n,
		RowBits: rowBits,
		ColBits: colBits,
		Rows:    1 << rowBits,
		Cols:    1 << colBits,
	}
}

// Size returns the number of minterms, 2^Vars.
func (l Layout) Size() int { return 1 << l.Vars }

// Names returns the variable names in bit order, most significant first.
func (l Layout) Names() []string {
	return append([]string(nil), Letters[:l.Vars]...)
}

// FullMask has one bit set per variable.
func (l Layout) FullMask() uint { return uint(l.Size() - 1) }

// Valid reports whether m is a minterm of this layout.
func (l Layout) Valid(m int) bool { return m >= 0 && m < l.Size() }

// Position returns the grid cell holding minterm m.
func (l Layout) Position(m int) (row, col int) {
	rowWord := uint(m) >> l.ColBits
	colWord := uint(m) & (1<<l.ColBits - 1)
	return grayRank(rowWord), grayRank(colWord)
}

// Minterm returns the minterm stored at the given cell.
func (l Layout) Minterm(row, col int) int {
	return int(grayWord(row)<<l.ColBits | grayWord(col))
}

// Contains reports whether (row, col) lies on the grid.
func (l Layout) Contains(row, col int) bool {
	return row >= 0 && row < l.Rows && col >= 0 && col < l.Cols
}

func popcount(x uint) int { return bits.OnesCount(x) }
