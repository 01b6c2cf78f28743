//go:build !ebiten

package ui

import "karnaugh/pkg/kmap"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(int) *Overlay { return &Overlay{} }

// SetCover is a no-op in headless builds.
func (o *Overlay) SetCover(kmap.Layout, []kmap.Implicant) {}

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
