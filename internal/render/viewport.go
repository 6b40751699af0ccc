// Package render holds the backend-neutral half of the debug renderers:
// world-to-screen mapping and the label and line sets they draw each frame.
package render

import "worldgrid/pkg/grid"

// Viewport maps world positions onto a screen. World y grows upward; screen
// y grows downward, so FlipY is usually on.
type Viewport struct {
	// ScaleX and ScaleY are screen units per world unit. Terminal cells are
	// roughly twice as tall as wide, so they usually differ there.
	ScaleX float64
	ScaleY float64
	// Camera is the world position shown at the screen's left edge and, with
	// FlipY, its bottom edge.
	Camera grid.Vec2
	// ScreenH is the screen height used for flipping.
	ScreenH float64
	FlipY   bool
}

// FitViewport returns a viewport that shows the world rectangle starting at
// origin with the given size, flipped so origin.Y is at the bottom.
func FitViewport(origin, size grid.Vec2, scaleX, scaleY float64) Viewport {
	if scaleX <= 0 {
		scaleX = 1
	}
	if scaleY <= 0 {
		scaleY = 1
	}
	return Viewport{
		ScaleX:  scaleX,
		ScaleY:  scaleY,
		Camera:  origin,
		ScreenH: size.Y * scaleY,
		FlipY:   true,
	}
}

// ScreenSize returns the screen extent covering the world size at this
// viewport's scale.
func (v Viewport) ScreenSize(world grid.Vec2) (w, h float64) {
	return world.X * v.ScaleX, world.Y * v.ScaleY
}

// WorldToScreen converts a world position into screen coordinates.
func (v Viewport) WorldToScreen(p grid.Vec2) (sx, sy float64) {
	sx = (p.X - v.Camera.X) * v.ScaleX
	sy = (p.Y - v.Camera.Y) * v.ScaleY
	if v.FlipY {
		sy = v.ScreenH - sy
	}
	return sx, sy
}

// ScreenToWorld converts screen coordinates back into a world position.
func (v Viewport) ScreenToWorld(sx, sy float64) grid.Vec2 {
	if v.FlipY {
		sy = v.ScreenH - sy
	}
	return grid.Vec2{
		X: sx/v.ScaleX + v.Camera.X,
		Y: sy/v.ScaleY + v.Camera.Y,
	}
}
