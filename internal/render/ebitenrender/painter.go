//go:build ebiten

package ebitenrender

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"worldgrid/internal/core"
	"worldgrid/internal/render"
)

// CellPainter fills each cell of a grid with a solid color, one image pixel
// per cell, and stretches the image over the grid's world footprint.
type CellPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewCellPainter allocates a painter for a grid of size w*h.
func NewCellPainter(w, h int) *CellPainter {
	return &CellPainter{w: w, h: h, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// Blit shades every cell and draws the result at the grid's screen position.
func (p *CellPainter) Blit(dst *ebiten.Image, geo core.Geometry, view render.Viewport, shade func(x, y int) color.RGBA) {
	if geo.Size.W != p.w || geo.Size.H != p.h {
		return
	}
	render.FillShades(p.buf, p.w, p.h, shade)
	p.img.WritePixels(p.buf)

	// The image's top-left is the world corner at (origin.X, origin.Y+height).
	top := geo.Origin
	top.Y += geo.WorldSize().Y
	sx, sy := view.WorldToScreen(top)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(geo.CellSize*view.ScaleX, geo.CellSize*view.ScaleY)
	op.GeoM.Translate(sx, sy)
	dst.DrawImage(p.img, op)
}

// Size returns the dimensions of the underlying image.
func (p *CellPainter) Size() (int, int) { return p.w, p.h }
