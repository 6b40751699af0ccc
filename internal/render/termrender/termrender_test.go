package termrender

import (
	"image/color"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"worldgrid/internal/core"
	"worldgrid/internal/render"
	"worldgrid/pkg/grid"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func contentAt(screen tcell.Screen, x, y int) rune {
	mainc, _, _, _ := screen.GetContent(x, y)
	return mainc
}

func TestDebugGridOnScreen(t *testing.T) {
	screen := newScreen(t, 25, 9)
	view := render.FitViewport(grid.Vec2{}, grid.V(3, 2), 8, 4)
	r := New(screen, view)

	g, err := grid.New(grid.Options[int]{Width: 3, Height: 2, CellSize: 1, Debug: true, Renderer: r})
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	if r.Labels() != 6 {
		t.Fatalf("labels = %d, want 6", r.Labels())
	}

	r.Draw()
	screen.Show()

	lines := []struct {
		x, y int
		want rune
	}{
		{0, 6, runeVertical},
		{4, 8, runeHorizontal},
		{8, 4, runeCross},
		{24, 2, runeVertical},
		{12, 0, runeHorizontal},
	}
	for _, c := range lines {
		if got := contentAt(screen, c.x, c.y); got != c.want {
			t.Errorf("cell (%d,%d) = %q, want %q", c.x, c.y, got, c.want)
		}
	}

	// Cell (0,0) is centred at screen (4,6); a one-rune label starts half a
	// rune to the left and half a row up.
	if got := contentAt(screen, 3, 5); got != '0' {
		t.Fatalf("label for (0,0) = %q, want '0'", got)
	}

	g.SetValue(2, 1, 42)
	screen.Clear()
	r.Draw()
	screen.Show()
	if a, b := contentAt(screen, 19, 1), contentAt(screen, 20, 1); a != '4' || b != '2' {
		t.Fatalf("label for (2,1) = %q%q, want 42", a, b)
	}
}

func TestToggles(t *testing.T) {
	screen := newScreen(t, 10, 5)
	r := New(screen, render.FitViewport(grid.Vec2{}, grid.V(1, 1), 8, 4))
	r.CreateLabel(grid.LabelSpec{Text: "x", Position: grid.V(0.5, 0.5), Anchor: grid.AnchorUpperLeft})
	r.DrawLine(grid.V(0, 0), grid.V(1, 0), nil, time.Minute)

	r.ShowLabels = false
	r.ShowLines = false
	r.Draw()
	screen.Show()
	if got := contentAt(screen, 4, 2); got == 'x' {
		t.Fatal("label drawn while hidden")
	}
	if got := contentAt(screen, 2, 4); got == runeHorizontal {
		t.Fatal("line drawn while hidden")
	}

	r.ShowLabels = true
	r.ShowLines = true
	r.Draw()
	screen.Show()
	if got := contentAt(screen, 4, 2); got != 'x' {
		t.Fatalf("label = %q, want x", got)
	}
	if got := contentAt(screen, 2, 4); got != runeHorizontal {
		t.Fatalf("line = %q", got)
	}
}

func TestExpiredLinesNotDrawn(t *testing.T) {
	now := time.Unix(0, 0)
	screen := newScreen(t, 10, 5)
	r := NewWithClock(screen, render.FitViewport(grid.Vec2{}, grid.V(1, 1), 8, 4), func() time.Time { return now })
	r.DrawLine(grid.V(0, 0.5), grid.V(1, 0.5), nil, time.Second)

	now = now.Add(2 * time.Second)
	r.Draw()
	screen.Show()
	if got := contentAt(screen, 3, 2); got == runeHorizontal {
		t.Fatal("expired line drawn")
	}
}

func TestClippedLabelDoesNotPanic(t *testing.T) {
	screen := newScreen(t, 4, 2)
	r := New(screen, render.FitViewport(grid.Vec2{}, grid.V(1, 1), 4, 2))
	r.CreateLabel(grid.LabelSpec{Text: "longer than screen", Position: grid.V(-3, 0.5)})
	r.CreateLabel(grid.LabelSpec{Text: "below", Position: grid.V(0, -10)})
	r.DrawLine(grid.V(-5, -5), grid.V(5, 5), nil, time.Minute)
	r.Draw()
	screen.Show()
}

func TestShadeKeepsBackgroundUnderLines(t *testing.T) {
	screen := newScreen(t, 8, 2)
	r := New(screen, render.FitViewport(grid.Vec2{}, grid.V(2, 1), 4, 2))
	geo := core.Geometry{Size: core.Size{W: 2, H: 1}, CellSize: 1}
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	r.Shade(geo, func(x, _ int) color.RGBA {
		if x == 0 {
			return red
		}
		return blue
	})
	r.DrawLine(grid.V(0, 0.5), grid.V(2, 0.5), color.White, time.Minute)
	r.Draw()
	screen.Show()

	check := func(x, y int, wantFg, wantBg tcell.Color) {
		t.Helper()
		_, _, style, _ := screen.GetContent(x, y)
		fg, bg, _ := style.Decompose()
		if fg != wantFg || bg != wantBg {
			t.Errorf("colors at (%d,%d) = %v/%v, want %v/%v", x, y, fg, bg, wantFg, wantBg)
		}
	}
	// The horizontal line at world y 0.5 sits on screen row 1.
	check(1, 1, toTcell(color.White), toTcell(red))
	check(6, 1, toTcell(color.White), toTcell(blue))
	check(2, 0, tcell.ColorDefault, toTcell(red))
}
