// Package ui draws the viewer chrome: the status HUD and the debug overlay
// toggles. Drawing needs the ebiten build tag; the text and geometry helpers
// here do not.
package ui

import (
	"fmt"
	"math"

	"worldgrid/internal/core"
	"worldgrid/internal/render"
	"worldgrid/pkg/grid"
)

// Status is the per-frame state the HUD reports alongside the cursor.
type Status struct {
	Seed    int64
	Paused  bool
	Changes int
	TPS     float64
}

// Lines formats the status block for sim.
func (s Status) Lines(name string) []string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	return []string{
		fmt.Sprintf("%s  seed %d  %s", name, s.Seed, state),
		fmt.Sprintf("tps %.1f  changed %d", s.TPS, s.Changes),
	}
}

// cellAt returns the cell of geo under pos.
func cellAt(geo core.Geometry, pos grid.Vec2) (x, y int, ok bool) {
	if geo.CellSize <= 0 {
		return 0, 0, false
	}
	x, y = geo.WorldToCell(pos)
	return x, y, geo.Contains(x, y)
}

// cellRect returns the screen rectangle of cell (x, y) as top-left corner
// plus size.
func cellRect(geo core.Geometry, view render.Viewport, x, y int) (sx, sy, w, h float64) {
	lo := geo.CellToWorld(x, y)
	hi := geo.CellToWorld(x+1, y+1)
	ax, ay := view.WorldToScreen(lo)
	bx, by := view.WorldToScreen(hi)
	return math.Min(ax, bx), math.Min(ay, by), math.Abs(bx - ax), math.Abs(by - ay)
}

// hoverLines describes the cursor position for the HUD.
func hoverLines(sim core.Sim, pos grid.Vec2) []string {
	x, y, ok := cellAt(sim.Geometry(), pos)
	if !ok {
		return []string{fmt.Sprintf("world (%.2f, %.2f)", pos.X, pos.Y)}
	}
	lines := []string{fmt.Sprintf("world (%.2f, %.2f)  cell (%d,%d)", pos.X, pos.Y, x, y)}
	if d, isDescriber := sim.(core.Describer); isDescriber {
		lines = append(lines, d.Describe(pos))
	}
	return lines
}
