package elementary

import (
	"fmt"
	"image/color"
	"strconv"

	"worldgrid/internal/core"
	"worldgrid/pkg/grid"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Rule uint8
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Rule: 110}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	return c
}

// Bit is one cell of the automaton.
type Bit uint8

func (b Bit) String() string {
	if b != 0 {
		return "1"
	}
	return ""
}

// Elementary runs a one-dimensional Wolfram code. The newest generation is
// the top row; older generations scroll towards y = 0.
type Elementary struct {
	rule uint8
	g    *grid.Grid[Bit]
	prev []Bit
	next []Bit
}

// New creates an automaton for the environment, reading the rule from
// env.Params.
func New(env core.Env) (*Elementary, error) {
	return NewWithConfig(env, FromMap(env.Params))
}

// NewWithConfig creates an automaton with an explicit config.
func NewWithConfig(env core.Env, cfg Config) (*Elementary, error) {
	g, err := grid.New(core.GridOptions[Bit](env))
	if err != nil {
		return nil, fmt.Errorf("elementary: %w", err)
	}
	return &Elementary{rule: cfg.Rule, g: g, next: make([]Bit, g.Width()*g.Height())}, nil
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Geometry returns the grid placement.
func (e *Elementary) Geometry() core.Geometry { return core.GeometryOf(e.g) }

// Grid exposes the underlying grid.
func (e *Elementary) Grid() *grid.Grid[Bit] { return e.g }

// Rule returns the Wolfram code in use.
func (e *Elementary) Rule() uint8 { return e.rule }

// Subscribe forwards to the grid's change notifications.
func (e *Elementary) Subscribe(fn func(grid.CellChanged)) func() { return e.g.Subscribe(fn) }

// Reset clears the grid and seeds the top row with a single active cell.
func (e *Elementary) Reset(int64) {
	w, h := e.g.Width(), e.g.Height()
	core.FillGrid(e.g, func(x, y int) Bit {
		if y == h-1 && x == w/2 {
			return 1
		}
		return 0
	})
}

// Step computes the next generation and scrolls history downwards.
func (e *Elementary) Step() {
	w, h := e.g.Width(), e.g.Height()
	top := h - 1
	for y := 0; y < top; y++ {
		for x := 0; x < w; x++ {
			e.next[y*w+x] = e.g.Value(x, y+1)
		}
	}
	for x := 0; x < w; x++ {
		left := uint8(e.g.Value((x-1+w)%w, top))
		center := uint8(e.g.Value(x, top))
		right := uint8(e.g.Value((x+1)%w, top))
		idx := (left << 2) | (center << 1) | right
		e.next[top*w+x] = Bit((e.rule >> idx) & 1)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if v := e.next[y*w+x]; v != e.g.Value(x, y) {
				e.g.SetValue(x, y, v)
			}
		}
	}
}

// Click flips the cell under pos.
func (e *Elementary) Click(pos grid.Vec2) {
	x, y := e.g.WorldToCell(pos)
	if !e.g.InBounds(x, y) {
		return
	}
	e.g.SetValue(x, y, 1-e.g.Value(x, y))
}

// Shade paints active cells white.
func (e *Elementary) Shade(x, y int) color.RGBA {
	if e.g.Value(x, y) != 0 {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.RGBA{A: 255}
}

func init() {
	core.Register("elementary", func(env core.Env) (core.Sim, error) {
		return New(env)
	})
}
