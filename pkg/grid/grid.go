// Package grid provides a fixed-size 2D container of generic cell values laid
// out in world space.
//
// A Grid maps continuous world positions to integer cell indices, stores one
// value per cell and tells subscribers when a cell changes. When debug mode is
// on, every cell gets a text label and the cell borders are drawn through a
// caller-supplied Renderer.
package grid

import (
	"errors"
	"fmt"
	"log"
	"math"
)

// ErrInvalidArgument is returned by New for non-positive dimensions or cell
// size, or a debug grid without a Renderer.
var ErrInvalidArgument = errors.New("grid: invalid argument")

// CellChanged identifies the cell whose value changed.
type CellChanged struct {
	X, Y int
}

// Factory produces the initial value of cell (x, y). The grid is fully
// dimensioned when the factory runs but cells after (x, y) are still unset.
type Factory[T any] func(g *Grid[T], x, y int) T

// Options configures a new Grid.
type Options[T any] struct {
	Width    int
	Height   int
	CellSize float64
	Origin   Vec2

	// Debug creates a label per cell and draws the cell borders through
	// Renderer. Labels are kept in sync by SetValue and NotifyChanged.
	Debug    bool
	Renderer Renderer

	Factory Factory[T]

	// Format renders a value for its debug label. Defaults to String() for
	// fmt.Stringer values and fmt.Sprint otherwise.
	Format func(T) string

	// Logger receives a line per value change while Debug is on.
	Logger *log.Logger
}

// Grid stores a width*height array of T in row-major order.
type Grid[T any] struct {
	w, h     int
	cellSize float64
	origin   Vec2
	data     []T

	debug  bool
	labels []Label
	format func(T) string
	logger *log.Logger

	subs   []subscriber
	nextID int
}

type subscriber struct {
	id int
	fn func(CellChanged)
}

// New allocates a grid and fills every cell from opts.Factory, or with the
// zero value of T when no factory is set.
func New[T any](opts Options[T]) (*Grid[T], error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("dimensions %dx%d must be positive: %w", opts.Width, opts.Height, ErrInvalidArgument)
	}
	if !(opts.CellSize > 0) || !finite(opts.CellSize) {
		return nil, fmt.Errorf("cell size %v must be positive and finite: %w", opts.CellSize, ErrInvalidArgument)
	}
	if !finite(opts.Origin.X) || !finite(opts.Origin.Y) {
		return nil, fmt.Errorf("origin %v must be finite: %w", opts.Origin, ErrInvalidArgument)
	}
	if opts.Debug && opts.Renderer == nil {
		return nil, fmt.Errorf("debug grid requires a renderer: %w", ErrInvalidArgument)
	}

	g := &Grid[T]{
		w:        opts.Width,
		h:        opts.Height,
		cellSize: opts.CellSize,
		origin:   opts.Origin,
		data:     make([]T, opts.Width*opts.Height),
		format:   opts.Format,
		logger:   opts.Logger,
	}
	if g.format == nil {
		g.format = defaultFormat[T]
	}

	if opts.Factory != nil {
		for x := 0; x < g.w; x++ {
			for y := 0; y < g.h; y++ {
				g.data[g.index(x, y)] = opts.Factory(g, x, y)
			}
		}
	}

	if opts.Debug {
		g.drawDebug(opts.Renderer)
	}
	return g, nil
}

func defaultFormat[T any](v T) string {
	if s, ok := any(v).(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(v)
}

// drawDebug creates the per-cell labels and the border lines.
func (g *Grid[T]) drawDebug(r Renderer) {
	g.labels = make([]Label, len(g.data))
	half := Vec2{X: g.cellSize * 0.5, Y: g.cellSize * 0.5}
	for x := 0; x < g.w; x++ {
		for y := 0; y < g.h; y++ {
			idx := g.index(x, y)
			g.labels[idx] = r.CreateLabel(LabelSpec{
				Text:      g.format(g.data[idx]),
				Position:  g.CellToWorld(x, y).Add(half),
				FontSize:  DebugFontSize,
				Color:     DebugColor,
				Anchor:    AnchorMiddleCenter,
				Alignment: AlignLeft,
				DrawOrder: DebugDrawOrder,
			})
			r.DrawLine(g.CellToWorld(x, y), g.CellToWorld(x, y+1), DebugColor, DebugLineDuration)
			r.DrawLine(g.CellToWorld(x, y), g.CellToWorld(x+1, y), DebugColor, DebugLineDuration)
		}
	}
	r.DrawLine(g.CellToWorld(0, g.h), g.CellToWorld(g.w, g.h), DebugColor, DebugLineDuration)
	r.DrawLine(g.CellToWorld(g.w, 0), g.CellToWorld(g.w, g.h), DebugColor, DebugLineDuration)
	g.debug = true
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.h }

// CellSize returns the side length of a cell in world units.
func (g *Grid[T]) CellSize() float64 { return g.cellSize }

// Origin returns the world position of cell (0, 0)'s lower corner.
func (g *Grid[T]) Origin() Vec2 { return g.origin }

// Debug reports whether debug labels are maintained.
func (g *Grid[T]) Debug() bool { return g.debug }

func (g *Grid[T]) index(x, y int) int { return y*g.w + x }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.w && y < g.h
}

// WorldToCell returns the indices of the cell containing pos. The result is
// not clamped and may fall outside the grid.
func (g *Grid[T]) WorldToCell(pos Vec2) (x, y int) {
	return CellIndex(pos, g.origin, g.cellSize)
}

// CellToWorld returns the world position of cell (x, y)'s lower corner.
func (g *Grid[T]) CellToWorld(x, y int) Vec2 {
	return CellCorner(x, y, g.origin, g.cellSize)
}

// CellCorner returns the lower corner of cell (x, y) for cells of size
// cellSize laid out from origin.
func CellCorner(x, y int, origin Vec2, cellSize float64) Vec2 {
	return Vec2{X: cornerAxis(x, origin.X, cellSize), Y: cornerAxis(y, origin.Y, cellSize)}
}

// CellIndex returns the cell containing pos for cells of size cellSize laid
// out from origin. Cell k spans [CellCorner(k), CellCorner(k+1)), so
// CellIndex(CellCorner(x, y)) is always (x, y).
func CellIndex(pos, origin Vec2, cellSize float64) (x, y int) {
	return indexAxis(pos.X, origin.X, cellSize), indexAxis(pos.Y, origin.Y, cellSize)
}

func cornerAxis(k int, origin, cellSize float64) float64 {
	return origin + float64(k)*cellSize
}

func indexAxis(p, origin, cellSize float64) int {
	k := int(math.Floor((p - origin) / cellSize))
	// The division rounds differently from cornerAxis; settle on the corners.
	if cornerAxis(k+1, origin, cellSize) <= p {
		k++
	} else if cornerAxis(k, origin, cellSize) > p {
		k--
	}
	return k
}

// CellCenter returns the world position of the middle of cell (x, y).
func (g *Grid[T]) CellCenter(x, y int) Vec2 {
	return g.CellToWorld(x, y).Add(Vec2{X: g.cellSize * 0.5, Y: g.cellSize * 0.5})
}

// SetValue stores v at (x, y) and notifies subscribers. It reports false and
// changes nothing when (x, y) is out of range.
func (g *Grid[T]) SetValue(x, y int, v T) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.data[g.index(x, y)] = v
	g.changed(x, y)
	if g.debug && g.logger != nil {
		g.logger.Printf("[grid] value changed at (%d,%d)", x, y)
	}
	return true
}

// SetValueAt stores v in the cell containing pos.
func (g *Grid[T]) SetValueAt(pos Vec2, v T) bool {
	x, y := g.WorldToCell(pos)
	return g.SetValue(x, y, v)
}

// Value returns the value at (x, y), or the zero value when out of range.
func (g *Grid[T]) Value(x, y int) T {
	if !g.InBounds(x, y) {
		var zero T
		return zero
	}
	return g.data[g.index(x, y)]
}

// ValueAt returns the value of the cell containing pos.
func (g *Grid[T]) ValueAt(pos Vec2) T {
	x, y := g.WorldToCell(pos)
	return g.Value(x, y)
}

// NotifyChanged re-broadcasts a change for (x, y) after its value was mutated
// in place, e.g. through a pointer held elsewhere.
func (g *Grid[T]) NotifyChanged(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.changed(x, y)
	return true
}

func (g *Grid[T]) changed(x, y int) {
	if g.debug {
		idx := g.index(x, y)
		if l := g.labels[idx]; l != nil {
			l.SetText(g.format(g.data[idx]))
		}
	}
	ev := CellChanged{X: x, Y: y}
	for _, s := range g.subs {
		s.fn(ev)
	}
}

// Subscribe registers fn to run after every successful SetValue and
// NotifyChanged. Callbacks run synchronously in registration order. The
// returned func removes the subscription.
func (g *Grid[T]) Subscribe(fn func(CellChanged)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	id := g.nextID
	g.nextID++
	g.subs = append(g.subs, subscriber{id: id, fn: fn})
	return func() {
		// Copy so a dispatch already ranging over g.subs is unaffected.
		next := make([]subscriber, 0, len(g.subs))
		for _, s := range g.subs {
			if s.id != id {
				next = append(next, s)
			}
		}
		g.subs = next
	}
}

// Each calls fn for every cell in row-major order.
func (g *Grid[T]) Each(fn func(x, y int, v T)) {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			fn(x, y, g.data[g.index(x, y)])
		}
	}
}
