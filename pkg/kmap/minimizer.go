package kmap

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"karnaugh/internal/core"
)

// Minimizer owns a Map and simplifies it on demand. It assumes exclusive
// access: hosts sharing one between goroutines must serialize calls.
type Minimizer struct {
	m     *Map
	cover Coverer
	log   logrus.FieldLogger
}

// Option customizes a Minimizer.
type Option func(*Minimizer)

// WithLogger routes diagnostics to l instead of the standard logrus logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(z *Minimizer) {
		if l != nil {
			z.log = l
		}
	}
}

// WithCoverer overrides the coverer named in the config.
func WithCoverer(c Coverer) Option {
	return func(z *Minimizer) {
		if c != nil {
			z.cover = c
		}
	}
}

// New returns a Minimizer using DefaultConfig.
func New(opts ...Option) *Minimizer {
	z, err := NewWithConfig(DefaultConfig(), opts...)
	if err != nil {
		// DefaultConfig is always valid.
		panic(err)
	}
	return z
}

// NewWithConfig returns a Minimizer configured from cfg.
func NewWithConfig(cfg Config, opts ...Option) (*Minimizer, error) {
	m, err := NewMap(cfg.Vars)
	if err != nil {
		return nil, err
	}
	z := &Minimizer{m: m, log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(z)
	}
	if z.cover == nil {
		name := cfg.Cover
		if name == "" {
			name = GreedyName
		}
		if z.cover, err = LookupCoverer(name); err != nil {
			return nil, err
		}
	}
	return z, nil
}

// Configure sets the variable count and clears the grid. Counts outside
// MinVars..MaxVars are rejected and leave the map unchanged.
func (z *Minimizer) Configure(n int) error {
	if err := z.m.Reset(n); err != nil {
		return err
	}
	z.log.WithField("vars", n).Debug("map configured")
	return nil
}

// CycleCell advances one cell through 0 -> 1 -> X -> 0. Out-of-range
// coordinates are ignored.
func (z *Minimizer) CycleCell(row, col int) { z.m.Cycle(row, col) }

// LoadMinterms replaces the grid with the given true and don't-care
// minterms. Out-of-range and repeated values are ignored.
func (z *Minimizer) LoadMinterms(ones, dontCares []int) { z.m.Load(ones, dontCares) }

// Minterms returns the sorted true minterms.
func (z *Minimizer) Minterms() []int { return z.m.Minterms() }

// DontCares returns the sorted don't-care minterms.
func (z *Minimizer) DontCares() []int { return z.m.DontCares() }

// Layout returns the geometry of the current map.
func (z *Minimizer) Layout() Layout { return z.m.Layout() }

// Cell returns the value at (row, col).
func (z *Minimizer) Cell(row, col int) Cell { return z.m.At(row, col) }

// State returns a serializable snapshot of the grid.
func (z *Minimizer) State() State { return z.m.State() }

// Coverer returns the active cover strategy.
func (z *Minimizer) Coverer() Coverer { return z.cover }

// SetCoverer switches to the coverer registered under name.
func (z *Minimizer) SetCoverer(name string) error {
	c, err := LookupCoverer(name)
	if err != nil {
		return err
	}
	z.cover = c
	return nil
}

// Simplify minimizes the current grid. It does not modify the grid.
func (z *Minimizer) Simplify() (Result, error) {
	l := z.m.Layout()
	ones, dcs := z.m.Minterms(), z.m.DontCares()
	res, err := Simplify(l, ones, dcs, z.cover)
	entry := z.log.WithFields(logrus.Fields{
		"vars":     l.Vars,
		"minterms": len(ones),
		"primes":   len(res.PrimeImplicants),
		"cover":    z.cover.Name(),
	})
	if err != nil {
		entry.WithError(err).Error("simplification left minterms uncovered")
		return res, errors.Wrapf(err, "simplify %d-variable map", l.Vars)
	}
	entry.WithField("expression", res.Expression).Debug("map simplified")
	return res, nil
}

// CanonicalSOP renders the sum of all true minterms without minimization.
func (z *Minimizer) CanonicalSOP() string {
	return CanonicalSOP(z.m.Minterms(), z.m.Layout().Names())
}

// Name identifies the board.
func (z *Minimizer) Name() string { return "kmap" }

// Size returns the grid dimensions: columns by rows.
func (z *Minimizer) Size() core.Size {
	l := z.m.Layout()
	return core.Size{W: l.Cols, H: l.Rows}
}

// Cells exposes the row-major cell values.
func (z *Minimizer) Cells() []uint8 { return z.m.Cells() }

// Cycle is CycleCell addressed by column x and row y.
func (z *Minimizer) Cycle(x, y int) { z.CycleCell(y, x) }

// Resize is Configure.
func (z *Minimizer) Resize(n int) error { return z.Configure(n) }

// Clear sets every cell to Zero.
func (z *Minimizer) Clear() { z.m.Clear() }
