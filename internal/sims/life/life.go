package life

import (
	"fmt"
	"image/color"

	"worldgrid/internal/core"
	"worldgrid/pkg/grid"
)

// Cell is the state of one Life cell.
type Cell bool

// String renders live cells as "#" for debug labels.
func (c Cell) String() string {
	if c {
		return "#"
	}
	return "."
}

// Life implements Conway's Game of Life with toroidal wrapping on a grid.
type Life struct {
	g   *grid.Grid[Cell]
	nxt []Cell
}

// New returns a Life simulation for the environment's layout.
func New(env core.Env) (*Life, error) {
	g, err := grid.New(core.GridOptions[Cell](env))
	if err != nil {
		return nil, fmt.Errorf("life: %w", err)
	}
	return &Life{g: g, nxt: make([]Cell, g.Width()*g.Height())}, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Geometry returns the grid placement.
func (l *Life) Geometry() core.Geometry { return core.GeometryOf(l.g) }

// Grid exposes the underlying grid.
func (l *Life) Grid() *grid.Grid[Cell] { return l.g }

// Subscribe forwards to the grid's change notifications.
func (l *Life) Subscribe(fn func(grid.CellChanged)) func() { return l.g.Subscribe(fn) }

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	rng := core.NewRNG(seed)
	core.FillGrid(l.g, func(int, int) Cell { return Cell(rng.Bool()) })
}

// Step advances the simulation by one generation. Only cells whose state
// flips are written back, so subscribers see exactly the births and deaths.
func (l *Life) Step() {
	w, h := l.g.Width(), l.g.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					if l.g.Value(nx, ny) {
						neighbors++
					}
				}
			}
			alive := bool(l.g.Value(x, y))
			l.nxt[y*w+x] = Cell((alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3))
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if next := l.nxt[y*w+x]; next != l.g.Value(x, y) {
				l.g.SetValue(x, y, next)
			}
		}
	}
}

// Click toggles the cell under pos.
func (l *Life) Click(pos grid.Vec2) {
	l.g.SetValueAt(pos, !l.g.ValueAt(pos))
}

// Describe reports the state of the cell under pos.
func (l *Life) Describe(pos grid.Vec2) string {
	x, y := l.g.WorldToCell(pos)
	if !l.g.InBounds(x, y) {
		return "outside"
	}
	state := "dead"
	if l.g.Value(x, y) {
		state = "alive"
	}
	return fmt.Sprintf("cell (%d,%d) %s", x, y, state)
}

// Shade colors live cells white.
func (l *Life) Shade(x, y int) color.RGBA {
	if l.g.Value(x, y) {
		return color.RGBA{R: 235, G: 235, B: 235, A: 255}
	}
	return color.RGBA{R: 12, G: 12, B: 16, A: 255}
}

func init() {
	core.Register("life", func(env core.Env) (core.Sim, error) {
		return New(env)
	})
}
