package briansbrain

import (
	"fmt"
	"image/color"

	"worldgrid/internal/core"
	"worldgrid/pkg/grid"
)

// State is the state of one Brian's Brain cell.
type State uint8

const (
	Dead State = iota
	On
	Dying
)

func (s State) String() string {
	switch s {
	case On:
		return "on"
	case Dying:
		return "dying"
	default:
		return ""
	}
}

// Brain implements Brian's Brain cellular automaton on a grid.
type Brain struct {
	g   *grid.Grid[State]
	nxt []State
}

// New creates a Brain simulation for the environment's layout.
func New(env core.Env) (*Brain, error) {
	g, err := grid.New(core.GridOptions[State](env))
	if err != nil {
		return nil, fmt.Errorf("briansbrain: %w", err)
	}
	return &Brain{g: g, nxt: make([]State, g.Width()*g.Height())}, nil
}

// Name identifies the simulation.
func (b *Brain) Name() string { return "briansbrain" }

// Geometry returns the grid placement.
func (b *Brain) Geometry() core.Geometry { return core.GeometryOf(b.g) }

// Grid exposes the underlying grid.
func (b *Brain) Grid() *grid.Grid[State] { return b.g }

// Subscribe forwards to the grid's change notifications.
func (b *Brain) Subscribe(fn func(grid.CellChanged)) func() { return b.g.Subscribe(fn) }

// Reset randomizes cells into dead or firing states.
func (b *Brain) Reset(seed int64) {
	rng := core.NewRNG(seed)
	core.FillGrid(b.g, func(int, int) State {
		if rng.IntN(8) == 0 {
			return On
		}
		return Dead
	})
}

// Step advances the automaton by one tick.
func (b *Brain) Step() {
	w, h := b.g.Width(), b.g.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			switch b.g.Value(x, y) {
			case On:
				b.nxt[idx] = Dying
			case Dying:
				b.nxt[idx] = Dead
			default:
				neighbors := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						nx := (x + dx + w) % w
						ny := (y + dy + h) % h
						if b.g.Value(nx, ny) == On {
							neighbors++
						}
					}
				}
				if neighbors == 2 {
					b.nxt[idx] = On
				} else {
					b.nxt[idx] = Dead
				}
			}
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if next := b.nxt[y*w+x]; next != b.g.Value(x, y) {
				b.g.SetValue(x, y, next)
			}
		}
	}
}

// Click fires the cell under pos.
func (b *Brain) Click(pos grid.Vec2) {
	b.g.SetValueAt(pos, On)
}

// Shade colors firing cells bright and dying cells dim.
func (b *Brain) Shade(x, y int) color.RGBA {
	switch b.g.Value(x, y) {
	case On:
		return color.RGBA{R: 250, G: 250, B: 255, A: 255}
	case Dying:
		return color.RGBA{R: 60, G: 90, B: 200, A: 255}
	default:
		return color.RGBA{A: 255}
	}
}

func init() {
	core.Register("briansbrain", func(env core.Env) (core.Sim, error) {
		return New(env)
	})
}
