package briansbrain

import (
	"image/color"
	"testing"
	"time"

	"worldgrid/internal/config"
	"worldgrid/internal/core"
	"worldgrid/pkg/grid"
)

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

func TestStateCycle(t *testing.T) {
	b, err := New(core.Env{Layout: config.Layout{Width: 6, Height: 6, CellSize: 1}})
	if err != nil {
		t.Fatal(err)
	}
	g := b.Grid()
	// Two adjacent firing cells make their shared neighbours fire next.
	g.SetValue(2, 2, On)
	g.SetValue(3, 2, On)

	b.Step()

	if g.Value(2, 2) != Dying || g.Value(3, 2) != Dying {
		t.Fatalf("firing cells should be dying, got %v %v", g.Value(2, 2), g.Value(3, 2))
	}
	for _, p := range [][2]int{{2, 1}, {3, 1}, {2, 3}, {3, 3}} {
		if g.Value(p[0], p[1]) != On {
			t.Fatalf("cell %v should fire", p)
		}
	}

	b.Step()
	if g.Value(2, 2) != Dead || g.Value(3, 2) != Dead {
		t.Fatal("dying cells should be dead")
	}
}

func TestDebugLabelsFollowState(t *testing.T) {
	r := &recordingRenderer{}
	b, err := core.New("briansbrain", core.Env{
		Layout:   config.Layout{Width: 3, Height: 3, CellSize: 1, Debug: true},
		Renderer: r,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(r.labels) != 9 {
		t.Fatalf("labels = %d, want 9", len(r.labels))
	}
	b.(core.Clicker).Click(grid.V(0.5, 0.5))
	// Labels are created column by column; (0,0) is the first.
	if r.labels[0].text != "on" {
		t.Fatalf("label = %q, want on", r.labels[0].text)
	}
	b.Step()
	if r.labels[0].text != "dying" {
		t.Fatalf("label after step = %q, want dying", r.labels[0].text)
	}
}
