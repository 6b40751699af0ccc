//go:build ebiten

package app

import (
	"image/color"
	"math"
	"time"

	"worldgrid/internal/core"
	"worldgrid/internal/render"
	"worldgrid/internal/render/ebitenrender"
	"worldgrid/internal/ui"
	"worldgrid/pkg/grid"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// maxStepsPerFrame bounds catch-up after a stalled frame.
const maxStepsPerFrame = 4

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim      core.Sim
	renderer *ebitenrender.Renderer
	painter  *ebitenrender.CellPainter
	overlay  *ui.Overlay
	hud      *ui.HUD
	timer    *core.FixedStep
	unsub    func()

	background color.Color

	paused   bool
	tickOnce bool
	seed     int64
	changes  int
	lastStep int
}

// New constructs a Game for the provided simulation. The renderer must be
// the one the sim's grid was built with so debug labels land on screen.
func New(sim core.Sim, r *ebitenrender.Renderer, tps int, seed int64) *Game {
	geo := sim.Geometry()
	g := &Game{
		sim:        sim,
		renderer:   r,
		painter:    ebitenrender.NewCellPainter(geo.Size.W, geo.Size.H),
		overlay:    ui.NewOverlay(r),
		hud:        ui.NewHUD(sim),
		timer:      core.NewFixedStep(tps),
		background: color.RGBA{R: 12, G: 12, B: 16, A: 255},
		seed:       seed,
	}
	g.unsub = sim.Subscribe(func(grid.CellChanged) { g.changes++ })
	return g
}

// Close detaches the game from the simulation.
func (g *Game) Close() {
	if g.unsub != nil {
		g.unsub()
		g.unsub = nil
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.timer.SetPaused(g.paused)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
		g.timer.SetPaused(false)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if c, ok := g.sim.(core.Clicker); ok {
			c.Click(g.cursorWorld())
		}
	}

	g.overlay.Update()

	steps := g.timer.Due(time.Now(), maxStepsPerFrame)
	if g.paused && g.tickOnce {
		steps = 1
	}
	if steps > 0 {
		g.changes = 0
		for i := 0; i < steps; i++ {
			g.sim.Step()
		}
		g.lastStep = g.changes
		g.tickOnce = false
	}

	g.hud.Update(g.renderer.Viewport(), ui.Status{
		Seed:    g.seed,
		Paused:  g.paused,
		Changes: g.lastStep,
		TPS:     ebiten.ActualTPS(),
	})
	return nil
}

func (g *Game) cursorWorld() grid.Vec2 {
	mx, my := ebiten.CursorPosition()
	return g.renderer.Viewport().ScreenToWorld(float64(mx)+0.5, float64(my)+0.5)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	if shader, ok := g.sim.(core.Shader); ok {
		g.painter.Blit(screen, g.sim.Geometry(), g.renderer.Viewport(), shader.Shade)
	}
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenSize(g.sim.Geometry(), g.renderer.Viewport())
}

// ScreenSize returns the window size that shows the whole grid.
func ScreenSize(geo core.Geometry, view render.Viewport) (int, int) {
	w, h := view.ScreenSize(geo.WorldSize())
	return int(math.Ceil(w)), int(math.Ceil(h))
}
