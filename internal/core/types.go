package core

// Size describes the dimensions of a map grid in cells.
type Size struct {
	W int
	H int
}

// Board defines the minimal contract an editable cell board exposes to the
// front-end: a fixed-size grid of small cell values that can be cycled.
type Board interface {
	Name() string
	Size() Size
	// Cells returns the row-major cell values. Callers must not modify it.
	Cells() []uint8
	// Cycle advances the cell at column x, row y. Out of range is a no-op.
	Cycle(x, y int)
	// Resize reconfigures the board for n variables.
	Resize(n int) error
	Clear()
}
