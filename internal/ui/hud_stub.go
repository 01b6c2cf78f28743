//go:build !ebiten

package ui

import "karnaugh/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Board, int) *HUD { return nil }

// Refresh is a no-op in the headless build.
func (h *HUD) Refresh() {}

// Update is a no-op in the headless build.
func (h *HUD) Update(int) bool { return false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
