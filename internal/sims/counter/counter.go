// Package counter is the simplest grid demo: every cell holds an integer that
// a click increments.
package counter

import (
	"fmt"
	"image/color"

	"worldgrid/internal/core"
	"worldgrid/internal/render"
	"worldgrid/pkg/grid"
)

// Config holds counter tunables.
type Config struct {
	// Max is the value shown at full brightness; clicks wrap back to 0 past it.
	Max int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Max: 9}
}

// Counter stores an int per cell.
type Counter struct {
	cfg Config
	g   *grid.Grid[int]
}

// New creates a Counter with the default config.
func New(env core.Env) (*Counter, error) {
	return NewWithConfig(env, DefaultConfig())
}

// NewWithConfig creates a Counter.
func NewWithConfig(env core.Env, cfg Config) (*Counter, error) {
	if cfg.Max <= 0 {
		cfg.Max = DefaultConfig().Max
	}
	g, err := grid.New(core.GridOptions[int](env))
	if err != nil {
		return nil, fmt.Errorf("counter: %w", err)
	}
	return &Counter{cfg: cfg, g: g}, nil
}

// Name identifies the simulation.
func (c *Counter) Name() string { return "counter" }

// Geometry returns the grid placement.
func (c *Counter) Geometry() core.Geometry { return core.GeometryOf(c.g) }

// Grid exposes the underlying grid.
func (c *Counter) Grid() *grid.Grid[int] { return c.g }

// Subscribe forwards to the grid's change notifications.
func (c *Counter) Subscribe(fn func(grid.CellChanged)) func() { return c.g.Subscribe(fn) }

// Reset fills the grid with random values in [0, Max].
func (c *Counter) Reset(seed int64) {
	rng := core.NewRNG(seed)
	core.FillGrid(c.g, func(int, int) int { return rng.IntN(c.cfg.Max + 1) })
}

// Step is a no-op; the counter only changes on clicks.
func (c *Counter) Step() {}

// Click increments the cell under pos, wrapping past Max.
func (c *Counter) Click(pos grid.Vec2) {
	v := c.g.ValueAt(pos) + 1
	if v > c.cfg.Max {
		v = 0
	}
	c.g.SetValueAt(pos, v)
}

// Describe reports the value of the cell under pos.
func (c *Counter) Describe(pos grid.Vec2) string {
	x, y := c.g.WorldToCell(pos)
	if !c.g.InBounds(x, y) {
		return "outside"
	}
	return fmt.Sprintf("cell (%d,%d) = %d", x, y, c.g.Value(x, y))
}

var (
	coldColor = color.RGBA{R: 20, G: 24, B: 40, A: 255}
	hotColor  = color.RGBA{R: 90, G: 200, B: 120, A: 255}
)

// Shade brightens cells with their value.
func (c *Counter) Shade(x, y int) color.RGBA {
	return render.Ramp(float64(c.g.Value(x, y))/float64(c.cfg.Max), coldColor, hotColor)
}

func init() {
	core.Register("counter", func(env core.Env) (core.Sim, error) {
		return New(env)
	})
}
