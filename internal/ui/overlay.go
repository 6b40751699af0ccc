//go:build ebiten

package ui

import (
	"worldgrid/internal/render/ebitenrender"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws the grid debug labels and lines on top of the cell shading.
// Keys 1 and 2 toggle labels and lines.
type Overlay struct {
	renderer *ebitenrender.Renderer
}

// NewOverlay constructs an overlay around a debug renderer.
func NewOverlay(r *ebitenrender.Renderer) *Overlay {
	return &Overlay{renderer: r}
}

// Update handles the toggle keys.
func (o *Overlay) Update() {
	if o == nil || o.renderer == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.renderer.ShowLabels = !o.renderer.ShowLabels
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.renderer.ShowLines = !o.renderer.ShowLines
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || o.renderer == nil {
		return
	}
	o.renderer.Draw(screen)
}
