// Package termrender draws grid debug labels and lines onto a tcell screen.
package termrender

import (
	"image/color"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"worldgrid/internal/core"
	"worldgrid/internal/render"
	"worldgrid/pkg/grid"
)

const (
	runeHorizontal = '─'
	runeVertical   = '│'
	runeCross      = '┼'
	runeDiagonal   = '·'
)

// Renderer implements grid.Renderer for a terminal screen. Labels and lines
// are retained and painted by Draw.
type Renderer struct {
	screen tcell.Screen
	view   render.Viewport
	labels render.LabelStore
	lines  *render.LineStore

	ShowLabels bool
	ShowLines  bool
}

// New returns a Renderer painting onto screen through view.
func New(screen tcell.Screen, view render.Viewport) *Renderer {
	return NewWithClock(screen, view, nil)
}

// NewWithClock is New with an explicit clock for line expiry.
func NewWithClock(screen tcell.Screen, view render.Viewport, now func() time.Time) *Renderer {
	return &Renderer{
		screen:     screen,
		view:       view,
		lines:      render.NewLineStore(now),
		ShowLabels: true,
		ShowLines:  true,
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

// Labels returns the number of labels created so far.
func (r *Renderer) Labels() int { return r.labels.Len() }

// Draw paints live lines, then labels in draw order. It does not clear or
// show the screen.
func (r *Renderer) Draw() {
	if r.ShowLines {
		for _, ln := range r.lines.Live() {
			r.drawLine(ln)
		}
	}
	if r.ShowLabels {
		for _, l := range r.labels.Ordered() {
			r.drawLabel(l)
		}
	}
}

func (r *Renderer) drawLine(ln render.Line) {
	ax, ay := r.view.WorldToScreen(ln.A)
	bx, by := r.view.WorldToScreen(ln.B)
	x0, y0 := int(math.Round(ax)), int(math.Round(ay))
	x1, y1 := int(math.Round(bx)), int(math.Round(by))

	ch := rune(runeDiagonal)
	switch {
	case y0 == y1:
		ch = runeHorizontal
	case x0 == x1:
		ch = runeVertical
	}
	fg := toTcell(ln.Color)

	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		r.plot(x0, y0, ch, fg)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// plot writes ch at (x, y), keeping the cell's background.
func (r *Renderer) plot(x, y int, ch rune, fg tcell.Color) {
	w, h := r.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	prev, _, style, _ := r.screen.GetContent(x, y)
	if (prev == runeHorizontal && ch == runeVertical) || (prev == runeVertical && ch == runeHorizontal) || prev == runeCross {
		ch = runeCross
	}
	r.screen.SetContent(x, y, ch, nil, style.Foreground(fg))
}

func (r *Renderer) drawLabel(l *render.Label) {
	text := l.Text()
	if text == "" {
		return
	}
	spec := l.Spec()
	sx, sy := r.view.WorldToScreen(l.Position())
	dx, dy := render.AnchorOffset(spec.Anchor, float64(runewidth.StringWidth(text)), 1)
	col := int(math.Floor(sx + dx))
	row := int(math.Floor(sy + dy))

	w, h := r.screen.Size()
	if row < 0 || row >= h {
		return
	}
	fg := toTcell(spec.Color)
	for _, ch := range text {
		if col >= w {
			return
		}
		if col >= 0 {
			_, _, style, _ := r.screen.GetContent(col, row)
			r.screen.SetContent(col, row, ch, nil, style.Foreground(fg))
		}
		col += runewidth.RuneWidth(ch)
	}
}

// Shade fills the background of every screen cell inside geo with the color
// of the grid cell under its centre.
func (r *Renderer) Shade(geo core.Geometry, shade func(x, y int) color.RGBA) {
	if geo.CellSize <= 0 {
		return
	}
	w, h := r.screen.Size()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			p := r.view.ScreenToWorld(float64(col)+0.5, float64(row)+0.5)
			x, y := geo.WorldToCell(p)
			if !geo.Contains(x, y) {
				continue
			}
			r.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(toTcell(shade(x, y))))
		}
	}
}

func toTcell(c color.Color) tcell.Color {
	if c == nil {
		return tcell.ColorWhite
	}
	cr, cg, cb, _ := c.RGBA()
	return tcell.NewRGBColor(int32(cr>>8), int32(cg>>8), int32(cb>>8))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
