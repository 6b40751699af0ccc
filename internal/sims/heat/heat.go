// Package heat diffuses temperature across a grid of shared cell objects.
//
// Each cell is a *Cell created by the grid factory and knows its own grid and
// coordinates. Cells are mutated in place and announce the change with
// NotifyChanged rather than being replaced through SetValue.
package heat

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"worldgrid/internal/core"
	"worldgrid/internal/render"
	"worldgrid/pkg/grid"
)

// Params holds tunable diffusion constants.
type Params struct {
	// Diffusion is the fraction of the neighbour difference absorbed per step.
	Diffusion float64
	// Cooling is the fraction of heat lost per step.
	Cooling float64
	// ClickHeat is added to a cell on click.
	ClickHeat float64
	// HotSpots is the number of random sources placed by Reset.
	HotSpots int
	// Epsilon is the smallest temperature change that triggers a notify.
	Epsilon float64
}

// DefaultParams returns the standard parameters.
func DefaultParams() Params {
	return Params{Diffusion: 0.2, Cooling: 0.01, ClickHeat: 100, HotSpots: 4, Epsilon: 0.05}
}

// Cell is one heat cell.
type Cell struct {
	g    *grid.Grid[*Cell]
	x, y int
	temp float64
}

// X returns the cell column.
func (c *Cell) X() int { return c.x }

// Y returns the cell row.
func (c *Cell) Y() int { return c.y }

// Temp returns the current temperature.
func (c *Cell) Temp() float64 { return c.temp }

// AddHeat changes the temperature and notifies the owning grid.
func (c *Cell) AddHeat(d float64) {
	c.setTemp(c.temp + d)
}

func (c *Cell) setTemp(t float64) {
	if t < 0 {
		t = 0
	}
	c.temp = t
	c.g.NotifyChanged(c.x, c.y)
}

func (c *Cell) String() string {
	return strconv.FormatFloat(c.temp, 'f', 0, 64)
}

// Heat runs the diffusion demo.
type Heat struct {
	params Params
	g      *grid.Grid[*Cell]
	next   []float64
}

// New creates a Heat sim with default parameters.
func New(env core.Env) (*Heat, error) {
	return NewWithParams(env, DefaultParams())
}

// NewWithParams creates a Heat sim.
func NewWithParams(env core.Env, params Params) (*Heat, error) {
	opts := core.GridOptions[*Cell](env)
	opts.Factory = func(g *grid.Grid[*Cell], x, y int) *Cell {
		return &Cell{g: g, x: x, y: y}
	}
	g, err := grid.New(opts)
	if err != nil {
		return nil, fmt.Errorf("heat: %w", err)
	}
	return &Heat{params: params, g: g, next: make([]float64, g.Width()*g.Height())}, nil
}

// Name identifies the simulation.
func (h *Heat) Name() string { return "heat" }

// Geometry returns the grid placement.
func (h *Heat) Geometry() core.Geometry { return core.GeometryOf(h.g) }

// Grid exposes the underlying grid.
func (h *Heat) Grid() *grid.Grid[*Cell] { return h.g }

// Subscribe forwards to the grid's change notifications.
func (h *Heat) Subscribe(fn func(grid.CellChanged)) func() { return h.g.Subscribe(fn) }

// Reset cools every cell and drops HotSpots random heat sources.
func (h *Heat) Reset(seed int64) {
	h.g.Each(func(_, _ int, c *Cell) {
		if c.temp != 0 {
			c.setTemp(0)
		}
	})
	rng := core.NewRNG(seed)
	for i := 0; i < h.params.HotSpots; i++ {
		h.g.Value(rng.IntN(h.g.Width()), rng.IntN(h.g.Height())).AddHeat(h.params.ClickHeat)
	}
}

// Step diffuses heat to the four neighbours and applies cooling. Edges are
// insulated. Cells whose temperature moves less than Epsilon are left
// untouched so they do not notify.
func (h *Heat) Step() {
	w, ht := h.g.Width(), h.g.Height()
	for y := 0; y < ht; y++ {
		for x := 0; x < w; x++ {
			c := h.g.Value(x, y)
			sum, n := 0.0, 0
			for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
				if nb := h.g.Value(x+d[0], y+d[1]); nb != nil {
					sum += nb.temp
					n++
				}
			}
			t := c.temp
			if n > 0 {
				t += h.params.Diffusion * (sum/float64(n) - c.temp)
			}
			h.next[y*w+x] = t * (1 - h.params.Cooling)
		}
	}
	for y := 0; y < ht; y++ {
		for x := 0; x < w; x++ {
			c := h.g.Value(x, y)
			t := h.next[y*w+x]
			if math.Abs(t-c.temp) < h.params.Epsilon {
				continue
			}
			c.setTemp(t)
		}
	}
}

// Click heats the cell under pos.
func (h *Heat) Click(pos grid.Vec2) {
	if c := h.g.ValueAt(pos); c != nil {
		c.AddHeat(h.params.ClickHeat)
	}
}

// Describe reports the temperature under pos.
func (h *Heat) Describe(pos grid.Vec2) string {
	c := h.g.ValueAt(pos)
	if c == nil {
		return "outside"
	}
	return fmt.Sprintf("cell (%d,%d) %.1f°", c.x, c.y, c.temp)
}

var (
	coldColor = color.RGBA{R: 10, G: 20, B: 60, A: 255}
	hotColor  = color.RGBA{R: 255, G: 120, B: 40, A: 255}
)

// Shade maps temperature onto a cold-to-hot ramp.
func (h *Heat) Shade(x, y int) color.RGBA {
	c := h.g.Value(x, y)
	if c == nil {
		return coldColor
	}
	return render.Ramp(c.temp/h.params.ClickHeat, coldColor, hotColor)
}

func init() {
	core.Register("heat", func(env core.Env) (core.Sim, error) {
		return New(env)
	})
}
