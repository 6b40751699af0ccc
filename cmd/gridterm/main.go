// Command gridterm shows a grid demo in the terminal. Debug labels and lines
// are drawn with box runes over the shaded cells.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"worldgrid/internal/config"
	"worldgrid/internal/core"
	"worldgrid/internal/render"
	"worldgrid/internal/render/termrender"
	_ "worldgrid/internal/sims/briansbrain"
	_ "worldgrid/internal/sims/counter"
	_ "worldgrid/internal/sims/elementary"
	_ "worldgrid/internal/sims/heat"
	_ "worldgrid/internal/sims/life"
)

func main() {
	cfg := config.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "gridterm.log", "file receiving -v cell change logs of debug grids")
	flag.Parse()

	layout, err := cfg.ResolveLayout()
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()

	// Terminal cells are about twice as tall as wide.
	view := render.FitViewport(layout.Origin.Vec(), layout.WorldSize(), cfg.Scale, cfg.Scale/2)
	renderer := termrender.New(screen, view)

	env := core.Env{Layout: layout, Renderer: renderer, Params: cfg.Overrides.Map()}
	// Only debug grids log, so a plain grid leaves no empty log behind.
	if cfg.Verbose && layout.Debug {
		f, err := os.Create(*logPath)
		if err != nil {
			screen.Fini()
			log.Fatal(err)
		}
		defer f.Close()
		env.Logger = log.New(f, "", log.LstdFlags)
	}

	sim, err := core.New(cfg.Sim, env)
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	sim.Reset(cfg.Seed)

	v := newViewer(screen, sim, renderer, cfg.TPS, cfg.Seed)
	v.run()
	v.close()
	screen.Fini()
}
