package main

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"worldgrid/internal/core"
	"worldgrid/internal/render"
	"worldgrid/internal/render/termrender"
	"worldgrid/pkg/grid"
)

type stepSim struct {
	geo    core.Geometry
	steps  int
	clicks []grid.Vec2
}

func (s *stepSim) Name() string                            { return "steps" }
func (s *stepSim) Geometry() core.Geometry                 { return s.geo }
func (s *stepSim) Reset(int64)                             { s.steps = 0 }
func (s *stepSim) Step()                                   { s.steps++ }
func (s *stepSim) Subscribe(func(grid.CellChanged)) func() { return func() {} }
func (s *stepSim) Click(pos grid.Vec2)                     { s.clicks = append(s.clicks, pos) }

func newTestViewer(t *testing.T) (*viewer, *stepSim, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(24, 10)
	t.Cleanup(screen.Fini)

	sim := &stepSim{geo: core.Geometry{Size: core.Size{W: 3, H: 2}, CellSize: 1}}
	view := render.FitViewport(grid.Vec2{}, sim.geo.WorldSize(), 8, 4)
	v := newViewer(screen, sim, termrender.New(screen, view), 10, 1)
	t.Cleanup(v.close)
	return v, sim, screen
}

func key(ch rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, ch, tcell.ModNone)
}

func TestQuitKeys(t *testing.T) {
	v, _, _ := newTestViewer(t)
	if v.handle(key('q')) {
		t.Error("q should quit")
	}
	if v.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("escape should quit")
	}
	if !v.handle(key('x')) {
		t.Error("unbound key should not quit")
	}
}

func TestPauseAndSingleStep(t *testing.T) {
	v, sim, _ := newTestViewer(t)
	now := time.Unix(100, 0)

	v.tick(now)
	if sim.steps != 1 {
		t.Fatalf("steps after first tick = %d, want 1", sim.steps)
	}

	v.handle(key(' '))
	v.tick(now.Add(time.Second))
	if sim.steps != 1 {
		t.Fatalf("paused viewer stepped: %d", sim.steps)
	}

	v.handle(key('n'))
	v.tick(now.Add(2 * time.Second))
	v.tick(now.Add(3 * time.Second))
	if sim.steps != 2 {
		t.Fatalf("steps after n = %d, want 2", sim.steps)
	}

	v.handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if v.paused {
		t.Fatal("enter should resume")
	}
}

func TestMouseClickMapsToWorld(t *testing.T) {
	v, sim, _ := newTestViewer(t)

	v.handle(tcell.NewEventMouse(4, 5, tcell.Button1, tcell.ModNone))
	v.handle(tcell.NewEventMouse(5, 5, tcell.Button1, tcell.ModNone))
	if len(sim.clicks) != 1 {
		t.Fatalf("held button clicked %d times, want 1", len(sim.clicks))
	}
	// Screen (4.5, 5.5) is world (0.5625, 0.625) with an 8-row flipped view.
	if got := sim.clicks[0]; got != grid.V(0.5625, 0.625) {
		t.Fatalf("click at %v", got)
	}

	v.handle(tcell.NewEventMouse(5, 5, tcell.ButtonNone, tcell.ModNone))
	v.handle(tcell.NewEventMouse(20, 1, tcell.Button1, tcell.ModNone))
	if len(sim.clicks) != 2 {
		t.Fatalf("clicks = %d, want 2", len(sim.clicks))
	}
}

func TestToggleKeys(t *testing.T) {
	v, _, _ := newTestViewer(t)
	v.handle(key('1'))
	v.handle(key('2'))
	if v.renderer.ShowLabels || v.renderer.ShowLines {
		t.Fatal("1 and 2 should hide labels and lines")
	}
}

func TestDrawShowsStatus(t *testing.T) {
	v, _, screen := newTestViewer(t)
	v.handle(key(' '))
	v.draw()

	var sb strings.Builder
	for x := 0; x < 24; x++ {
		mainc, _, _, _ := screen.GetContent(x, 8)
		sb.WriteRune(mainc)
	}
	if got := strings.TrimSpace(sb.String()); got != "steps  seed 1  paused" {
		t.Fatalf("status line = %q", got)
	}
}
