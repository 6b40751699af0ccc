//go:build ebiten

package ebitenrender

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"worldgrid/internal/render"
	"worldgrid/pkg/grid"
)

// Renderer implements grid.Renderer on top of ebiten. Labels and lines are
// retained and painted every frame by Draw.
type Renderer struct {
	view   render.Viewport
	labels render.LabelStore
	lines  *render.LineStore
	face   font.Face
	pixel  *ebiten.Image

	ShowLabels bool
	ShowLines  bool
	// LineWidth is the stroke width in screen pixels.
	LineWidth float64
}

// New returns a Renderer using view for world-to-screen mapping.
func New(view render.Viewport) *Renderer {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &Renderer{
		view:       view,
		lines:      render.NewLineStore(nil),
		face:       basicfont.Face7x13,
		pixel:      pixel,
		ShowLabels: true,
		ShowLines:  true,
		LineWidth:  1,
	}
}

// CreateLabel implements grid.Renderer.
func (r *Renderer) CreateLabel(spec grid.LabelSpec) grid.Label {
	return r.labels.Create(spec)
}

// DrawLine implements grid.Renderer.
func (r *Renderer) DrawLine(a, b grid.Vec2, c color.Color, d time.Duration) {
	r.lines.Add(a, b, c, d)
}

// Viewport returns the current world-to-screen mapping.
func (r *Renderer) Viewport() render.Viewport { return r.view }

// SetViewport replaces the world-to-screen mapping.
func (r *Renderer) SetViewport(v render.Viewport) { r.view = v }

// Draw paints live lines, then labels in draw order.
func (r *Renderer) Draw(screen *ebiten.Image) {
	if r.ShowLines {
		for _, ln := range r.lines.Live() {
			ax, ay := r.view.WorldToScreen(ln.A)
			bx, by := r.view.WorldToScreen(ln.B)
			r.drawLine(screen, ax, ay, bx, by, ln.Color)
		}
	}
	if r.ShowLabels {
		for _, l := range r.labels.Ordered() {
			r.drawLabel(screen, l)
		}
	}
}

func (r *Renderer) drawLine(screen *ebiten.Image, x1, y1, x2, y2 float64, col color.Color) {
	thickness := r.LineWidth
	if thickness <= 0 {
		thickness = 1
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(r.pixel, op)
}

func (r *Renderer) drawLabel(screen *ebiten.Image, l *render.Label) {
	str := l.Text()
	if str == "" {
		return
	}
	spec := l.Spec()
	scale := float64(spec.FontSize) / float64(grid.DebugFontSize)

	bounds := text.BoundString(r.face, str)
	w := float64(bounds.Dx()) * scale
	h := float64(r.face.Metrics().Height.Ceil()) * scale
	ascent := float64(r.face.Metrics().Ascent.Ceil()) * scale

	sx, sy := r.view.WorldToScreen(l.Position())
	dx, dy := render.AnchorOffset(spec.Anchor, w, h)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(sx+dx, sy+dy+ascent)
	op.ColorScale.ScaleWithColor(spec.Color)
	text.DrawWithOptions(screen, str, r.face, op)
}
