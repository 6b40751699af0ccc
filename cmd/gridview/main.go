//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"worldgrid/internal/app"
	"worldgrid/internal/config"
	"worldgrid/internal/core"
	"worldgrid/internal/render"
	"worldgrid/internal/render/ebitenrender"
	_ "worldgrid/internal/sims/briansbrain"
	_ "worldgrid/internal/sims/counter"
	_ "worldgrid/internal/sims/elementary"
	_ "worldgrid/internal/sims/heat"
	_ "worldgrid/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := config.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	layout, err := cfg.ResolveLayout()
	if err != nil {
		log.Fatal(err)
	}

	view := render.FitViewport(layout.Origin.Vec(), layout.WorldSize(), cfg.Scale, cfg.Scale)
	renderer := ebitenrender.New(view)

	env := core.Env{Layout: layout, Renderer: renderer, Params: cfg.Overrides.Map()}
	if cfg.Verbose {
		env.Logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	sim, err := core.New(cfg.Sim, env)
	if err != nil {
		log.Fatal(err)
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, renderer, cfg.TPS, cfg.Seed)
	defer game.Close()
	w, h := app.ScreenSize(sim.Geometry(), view)

	ebiten.SetWindowTitle("worldgrid - " + sim.Name())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
