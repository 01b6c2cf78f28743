package kmap

import "github.com/pkg/errors"

// Cell is the value of one map square.
type Cell uint8

const (
	Zero Cell = iota
	One
	DontCare
)

// Next returns the value after c in the 0 -> 1 -> X -> 0 editing cycle.
func (c Cell) Next() Cell {
	switch c {
	case Zero:
		return One
	case One:
		return DontCare
	default:
		return Zero
	}
}

func (c Cell) String() string {
	switch c {
	case One:
		return "1"
	case DontCare:
		return "X"
	default:
		return "0"
	}
}

// MarshalText encodes c as "0", "1" or "X".
func (c Cell) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText accepts "0", "1", "X" and "x".
func (c *Cell) UnmarshalText(text []byte) error {
	switch string(text) {
	case "0":
		*c = Zero
	case "1":
		*c = One
	case "X", "x":
		*c = DontCare
	default:
		return errors.Wrapf(ErrInvalidState, "unknown cell value %q", text)
	}
	return nil
}
