package heat

import (
	"image/color"
	"math"
	"testing"
	"time"

	"worldgrid/internal/config"
	"worldgrid/internal/core"
	"worldgrid/pkg/grid"
)

func newHeat(t *testing.T, w, h int) *Heat {
	t.Helper()
	s, err := New(core.Env{Layout: config.Layout{Width: w, Height: h, CellSize: 1}})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestFactoryBuildsOwnedCells(t *testing.T) {
	s := newHeat(t, 4, 3)
	seen := map[*Cell]bool{}
	s.Grid().Each(func(x, y int, c *Cell) {
		if c == nil {
			t.Fatalf("cell (%d,%d) is nil", x, y)
		}
		if c.X() != x || c.Y() != y {
			t.Fatalf("cell at (%d,%d) reports (%d,%d)", x, y, c.X(), c.Y())
		}
		if c.g != s.Grid() {
			t.Fatalf("cell (%d,%d) has the wrong owner", x, y)
		}
		seen[c] = true
	})
	if len(seen) != 12 {
		t.Fatalf("distinct cells = %d, want 12", len(seen))
	}
}

func TestAddHeatNotifies(t *testing.T) {
	s := newHeat(t, 3, 3)
	var events []grid.CellChanged
	s.Subscribe(func(ev grid.CellChanged) { events = append(events, ev) })

	s.Click(grid.V(1.5, 2.5))
	if len(events) != 1 || events[0] != (grid.CellChanged{X: 1, Y: 2}) {
		t.Fatalf("events = %v", events)
	}
	if got := s.Grid().Value(1, 2).Temp(); got != DefaultParams().ClickHeat {
		t.Fatalf("temp = %v", got)
	}

	s.Click(grid.V(-3, 0))
	if len(events) != 1 {
		t.Fatal("click outside the grid emitted an event")
	}
}

func TestStepDiffusesToNeighbours(t *testing.T) {
	s := newHeat(t, 5, 5)
	s.Grid().Value(2, 2).AddHeat(100)

	var events []grid.CellChanged
	s.Subscribe(func(ev grid.CellChanged) { events = append(events, ev) })
	s.Step()

	want := []grid.CellChanged{{X: 2, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 3}}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("event %d = %v, want %v", i, events[i], want[i])
		}
	}
	if got := s.Grid().Value(2, 2).Temp(); math.Abs(got-79.2) > 1e-9 {
		t.Fatalf("centre temp = %v, want 79.2", got)
	}
	if got := s.Grid().Value(1, 2).Temp(); math.Abs(got-4.95) > 1e-9 {
		t.Fatalf("neighbour temp = %v, want 4.95", got)
	}
	if got := s.Grid().Value(1, 1).Temp(); got != 0 {
		t.Fatalf("diagonal temp = %v, want 0", got)
	}
}

func TestResetPlacesHotSpots(t *testing.T) {
	s := newHeat(t, 8, 8)
	s.Grid().Value(0, 0).AddHeat(50)
	s.Reset(3)
	total := 0.0
	s.Grid().Each(func(_, _ int, c *Cell) { total += c.Temp() })
	p := DefaultParams()
	if want := float64(p.HotSpots) * p.ClickHeat; total != want {
		t.Fatalf("total heat = %v, want %v", total, want)
	}
}

type recordingLabel struct{ text string }

func (l *recordingLabel) SetText(text string) { l.text = text }
func (l *recordingLabel) Text() string        { return l.text }

type recordingRenderer struct{ labels []*recordingLabel }

func (r *recordingRenderer) CreateLabel(spec grid.LabelSpec) grid.Label {
	l := &recordingLabel{text: spec.Text}
	r.labels = append(r.labels, l)
	return l
}

func (r *recordingRenderer) DrawLine(grid.Vec2, grid.Vec2, color.Color, time.Duration) {}

func TestDebugLabelTracksInPlaceMutation(t *testing.T) {
	r := &recordingRenderer{}
	sim, err := core.New("heat", core.Env{
		Layout:   config.Layout{Width: 2, Height: 2, CellSize: 1, Debug: true},
		Renderer: r,
	})
	if err != nil {
		t.Fatal(err)
	}
	if r.labels[0].text != "0" {
		t.Fatalf("initial label = %q", r.labels[0].text)
	}
	sim.(core.Clicker).Click(grid.V(0.5, 0.5))
	if r.labels[0].text != "100" {
		t.Fatalf("label after click = %q, want 100", r.labels[0].text)
	}
	if got := sim.(core.Describer).Describe(grid.V(0.5, 0.5)); got != "cell (0,0) 100.0°" {
		t.Fatalf("Describe = %q", got)
	}
}
