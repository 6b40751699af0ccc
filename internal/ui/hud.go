//go:build ebiten

package ui

import (
	"image/color"

	"worldgrid/internal/core"
	"worldgrid/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hudPadding    = 4
	hudLineHeight = 16
)

// HUD prints the status block and highlights the cell under the cursor.
type HUD struct {
	sim   core.Sim
	lines []string

	hover    bool
	hoverX   float32
	hoverY   float32
	hoverW   float32
	hoverH   float32
	fill     color.Color
	stroke   color.Color
	disabled bool
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	return &HUD{
		sim:    sim,
		fill:   color.RGBA{R: 255, G: 255, B: 255, A: 24},
		stroke: color.RGBA{R: 255, G: 220, B: 120, A: 200},
	}
}

// Update refreshes the text and hover rectangle from the cursor position.
func (h *HUD) Update(view render.Viewport, status Status) {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.disabled = !h.disabled
	}
	mx, my := ebiten.CursorPosition()
	pos := view.ScreenToWorld(float64(mx)+0.5, float64(my)+0.5)

	h.lines = append(h.lines[:0], status.Lines(h.sim.Name())...)
	h.lines = append(h.lines, hoverLines(h.sim, pos)...)

	geo := h.sim.Geometry()
	x, y, ok := cellAt(geo, pos)
	h.hover = ok
	if ok {
		sx, sy, w, ht := cellRect(geo, view, x, y)
		h.hoverX, h.hoverY, h.hoverW, h.hoverH = float32(sx), float32(sy), float32(w), float32(ht)
	}
}

// Draw paints the hover highlight and the text block.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.disabled {
		return
	}
	if h.hover {
		vector.DrawFilledRect(screen, h.hoverX, h.hoverY, h.hoverW, h.hoverH, h.fill, false)
		vector.StrokeRect(screen, h.hoverX, h.hoverY, h.hoverW, h.hoverH, 1, h.stroke, false)
	}
	for i, line := range h.lines {
		ebitenutil.DebugPrintAt(screen, line, hudPadding, hudPadding+i*hudLineHeight)
	}
}
