package ui

import (
	"testing"

	"worldgrid/internal/core"
	"worldgrid/internal/render"
	"worldgrid/pkg/grid"
)

type describedSim struct{ geo core.Geometry }

func (s describedSim) Name() string                            { return "stub" }
func (s describedSim) Geometry() core.Geometry                 { return s.geo }
func (s describedSim) Reset(int64)                             {}
func (s describedSim) Step()                                   {}
func (s describedSim) Subscribe(func(grid.CellChanged)) func() { return func() {} }
func (s describedSim) Describe(pos grid.Vec2) string           { return "here" }

var testGeo = core.Geometry{Size: core.Size{W: 4, H: 2}, CellSize: 2, Origin: grid.V(-4, 1)}

func TestStatusLines(t *testing.T) {
	lines := Status{Seed: 7, Paused: true, Changes: 3, TPS: 59.96}.Lines("life")
	if lines[0] != "life  seed 7  paused" {
		t.Fatalf("line 0 = %q", lines[0])
	}
	if lines[1] != "tps 60.0  changed 3" {
		t.Fatalf("line 1 = %q", lines[1])
	}
}

func TestCellAt(t *testing.T) {
	cases := []struct {
		pos    grid.Vec2
		x, y   int
		inside bool
	}{
		{grid.V(-4, 1), 0, 0, true},
		{grid.V(3.9, 4.9), 3, 1, true},
		{grid.V(4, 1), 4, 0, false},
		{grid.V(-4.1, 1), -1, 0, false},
	}
	for _, tc := range cases {
		x, y, ok := cellAt(testGeo, tc.pos)
		if x != tc.x || y != tc.y || ok != tc.inside {
			t.Fatalf("cellAt(%v) = (%d,%d,%v), want (%d,%d,%v)", tc.pos, x, y, ok, tc.x, tc.y, tc.inside)
		}
	}

	// 4.3 is the corner of column 43 even though 4.3/0.1 floors to 42.
	fine := core.Geometry{Size: core.Size{W: 50, H: 1}, CellSize: 0.1}
	if x, _, ok := cellAt(fine, grid.V(4.3, 0)); x != 43 || !ok {
		t.Fatalf("cellAt(4.3) = %d,%v, want 43", x, ok)
	}
}

func TestCellRectFlipsY(t *testing.T) {
	view := render.FitViewport(testGeo.Origin, testGeo.WorldSize(), 10, 10)
	// Cell (0,1) is the top-left cell on screen.
	sx, sy, w, h := cellRect(testGeo, view, 0, 1)
	if sx != 0 || sy != 0 || w != 20 || h != 20 {
		t.Fatalf("rect = (%v,%v,%v,%v)", sx, sy, w, h)
	}
	sx, sy, _, _ = cellRect(testGeo, view, 3, 0)
	if sx != 60 || sy != 20 {
		t.Fatalf("rect origin = (%v,%v), want (60,20)", sx, sy)
	}
}

func TestHoverLines(t *testing.T) {
	sim := describedSim{geo: testGeo}
	lines := hoverLines(sim, grid.V(-3, 2))
	if len(lines) != 2 || lines[0] != "world (-3.00, 2.00)  cell (0,0)" || lines[1] != "here" {
		t.Fatalf("lines = %q", lines)
	}
	lines = hoverLines(sim, grid.V(10, 10))
	if len(lines) != 1 || lines[0] != "world (10.00, 10.00)" {
		t.Fatalf("outside lines = %q", lines)
	}
}
