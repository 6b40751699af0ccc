//go:build !ebiten

package ui

import "worldgrid/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Sim) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(any, Status) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
