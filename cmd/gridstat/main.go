// Command gridstat runs grid demos headless across seeds and reports how many
// cell change notifications each step produces.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"worldgrid/internal/config"
	"worldgrid/internal/core"
	_ "worldgrid/internal/sims/briansbrain"
	_ "worldgrid/internal/sims/counter"
	_ "worldgrid/internal/sims/elementary"
	_ "worldgrid/internal/sims/heat"
	_ "worldgrid/internal/sims/life"
)

func main() {
	cfg := config.NewConfig()
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 200, "steps to simulate per scenario")
	runs := flag.Int("runs", 4, "seeds per sim, starting at -seed")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	all := flag.Bool("all", false, "run every registered sim instead of -sim")
	format := flag.String("format", "text", "output format: text or yaml")
	flag.Parse()

	layout, err := cfg.ResolveLayout()
	if err != nil {
		log.Fatal(err)
	}
	// Debug labels need a renderer; the sweep has none.
	layout.Debug = false

	sims := []string{cfg.Sim}
	if *all {
		sims = core.Names()
	}
	scenarios := buildScenarios(sims, cfg.Seed, *runs)

	start := time.Now()
	results := sweep(core.Env{Layout: layout, Params: cfg.Overrides.Map()}, scenarios, *steps, *workers)
	elapsed := time.Since(start)

	switch strings.ToLower(*format) {
	case "yaml":
		out, err := yaml.Marshal(results)
		if err != nil {
			log.Fatalf("failed to encode results: %v", err)
		}
		os.Stdout.Write(out)
	default:
		fmt.Printf("Ran %d scenarios on a %dx%d grid (%d workers, %d steps, %s)\n",
			len(results), layout.Width, layout.Height, *workers, *steps, elapsed.Round(time.Millisecond))
		for _, res := range results {
			fmt.Println(res)
		}
	}
}
