package core

import (
	"fmt"
	"image/color"
	"log"
	"sort"

	"worldgrid/internal/config"
	"worldgrid/pkg/grid"
)

// Size describes the dimensions of a grid in cells.
type Size struct {
	W int
	H int
}

// Geometry places a sim's grid in world space.
type Geometry struct {
	Size     Size
	CellSize float64
	Origin   grid.Vec2
}

// GeometryOf reads the geometry of any grid.
func GeometryOf[T any](g *grid.Grid[T]) Geometry {
	return Geometry{
		Size:     Size{W: g.Width(), H: g.Height()},
		CellSize: g.CellSize(),
		Origin:   g.Origin(),
	}
}

// WorldSize returns the extent of the grid in world units.
func (g Geometry) WorldSize() grid.Vec2 {
	return grid.Vec2{X: float64(g.Size.W) * g.CellSize, Y: float64(g.Size.H) * g.CellSize}
}

// WorldToCell returns the cell containing pos, using the same mapping as
// the grid itself. The result is not clamped.
func (g Geometry) WorldToCell(pos grid.Vec2) (x, y int) {
	return grid.CellIndex(pos, g.Origin, g.CellSize)
}

// CellToWorld returns the lower corner of cell (x, y).
func (g Geometry) CellToWorld(x, y int) grid.Vec2 {
	return grid.CellCorner(x, y, g.Origin, g.CellSize)
}

// Contains reports whether (x, y) is a cell of the grid.
func (g Geometry) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Size.W && y < g.Size.H
}

// Sim is a demo built around a single grid.
type Sim interface {
	Name() string
	Geometry() Geometry
	Reset(seed int64)
	Step()
	// Subscribe forwards to the underlying grid's change notifications.
	Subscribe(fn func(grid.CellChanged)) func()
}

// Clicker is implemented by sims that react to a pointer press in world
// space.
type Clicker interface {
	Click(pos grid.Vec2)
}

// Describer returns a one-line summary of the cell at pos for the HUD.
type Describer interface {
	Describe(pos grid.Vec2) string
}

// Shader colors cells for the background painter.
type Shader interface {
	Shade(x, y int) color.RGBA
}

// Env carries what a sim factory needs to build its grid.
type Env struct {
	Layout config.Layout
	// Renderer is nil unless Layout.Debug is set.
	Renderer grid.Renderer
	Logger   *log.Logger
	// Params carries sim-specific key=value settings; sims ignore keys
	// they do not know.
	Params map[string]string
}

// GridOptions converts the environment into grid options for a value type.
func GridOptions[T any](env Env) grid.Options[T] {
	return grid.Options[T]{
		Width:    env.Layout.Width,
		Height:   env.Layout.Height,
		CellSize: env.Layout.CellSize,
		Origin:   env.Layout.Origin.Vec(),
		Debug:    env.Layout.Debug,
		Renderer: env.Renderer,
		Logger:   env.Logger,
	}
}

// Factory constructs a Sim for an environment.
type Factory func(env Env) (Sim, error)

var sims = map[string]Factory{}

// Register adds a sim factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available sim factories.
func Sims() map[string]Factory {
	return sims
}

// Names returns the registered sim names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named sim.
func New(name string, env Env) (Sim, error) {
	f, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (have %v)", name, Names())
	}
	if !env.Layout.Debug {
		env.Renderer = nil
	}
	return f(env)
}
