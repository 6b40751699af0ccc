package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"worldgrid/internal/core"
	"worldgrid/internal/render/termrender"
	"worldgrid/internal/ui"
	"worldgrid/pkg/grid"
)

const (
	frameInterval    = 16 * time.Millisecond
	maxStepsPerFrame = 4
)

// viewer runs one sim on a terminal screen.
type viewer struct {
	screen   tcell.Screen
	sim      core.Sim
	renderer *termrender.Renderer
	timer    *core.FixedStep
	unsub    func()

	seed     int64
	paused   bool
	tickOnce bool
	buttons  tcell.ButtonMask
	changes  int
	lastStep int
}

func newViewer(screen tcell.Screen, sim core.Sim, r *termrender.Renderer, tps int, seed int64) *viewer {
	v := &viewer{
		screen:   screen,
		sim:      sim,
		renderer: r,
		timer:    core.NewFixedStep(tps),
		seed:     seed,
	}
	v.unsub = sim.Subscribe(func(grid.CellChanged) { v.changes++ })
	return v
}

func (v *viewer) close() {
	if v.unsub != nil {
		v.unsub()
		v.unsub = nil
	}
}

func (v *viewer) reset(seed int64) {
	v.seed = seed
	v.sim.Reset(seed)
	v.tickOnce = false
}

func (v *viewer) setPaused(paused bool) {
	v.paused = paused
	v.timer.SetPaused(paused)
}

// handle applies one input event and reports whether the viewer should keep
// running.
func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			v.setPaused(false)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				v.setPaused(!v.paused)
			case 'n':
				v.tickOnce = true
			case 'r':
				v.reset(v.seed)
			case 's':
				v.reset(time.Now().UnixNano())
			case '1':
				v.renderer.ShowLabels = !v.renderer.ShowLabels
			case '2':
				v.renderer.ShowLines = !v.renderer.ShowLines
			}
		}
	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0 && v.buttons&tcell.Button1 == 0
		v.buttons = ev.Buttons()
		if pressed {
			if c, ok := v.sim.(core.Clicker); ok {
				x, y := ev.Position()
				c.Click(v.renderer.Viewport().ScreenToWorld(float64(x)+0.5, float64(y)+0.5))
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

// tick advances the sim by however many steps are due at now.
func (v *viewer) tick(now time.Time) {
	steps := v.timer.Due(now, maxStepsPerFrame)
	if v.paused && v.tickOnce {
		steps = 1
	}
	if steps == 0 {
		return
	}
	v.changes = 0
	for i := 0; i < steps; i++ {
		v.sim.Step()
	}
	v.lastStep = v.changes
	v.tickOnce = false
}

func (v *viewer) draw() {
	v.screen.Clear()
	if shader, ok := v.sim.(core.Shader); ok {
		v.renderer.Shade(v.sim.Geometry(), shader.Shade)
	}
	v.renderer.Draw()

	status := ui.Status{Seed: v.seed, Paused: v.paused, Changes: v.lastStep}
	_, h := v.screen.Size()
	lines := status.Lines(v.sim.Name())
	for i, line := range lines {
		v.drawText(0, h-len(lines)+i, line)
	}
	v.screen.Show()
}

func (v *viewer) drawText(x, y int, s string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	for _, ch := range s {
		v.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}

// run polls input on a goroutine and draws at a fixed frame rate until the
// user quits.
func (v *viewer) run() {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	v.draw()
	for {
		select {
		case ev := <-events:
			if !v.handle(ev) {
				return
			}
		case now := <-ticker.C:
			v.tick(now)
			v.draw()
		}
	}
}
