package main

import (
	"fmt"
	"sort"
	"sync"

	"worldgrid/internal/core"
	"worldgrid/pkg/grid"
)

type scenario struct {
	sim  string
	seed int64
}

type scenarioResult struct {
	Sim         string  `yaml:"sim"`
	Seed        int64   `yaml:"seed"`
	Steps       int     `yaml:"steps"`
	Total       int     `yaml:"total"`
	MeanPerStep float64 `yaml:"meanPerStep"`
	PeakStep    int     `yaml:"peakStep"`
	LastStep    int     `yaml:"lastStep"`
	Err         string  `yaml:"error,omitempty"`
}

func (r scenarioResult) String() string {
	if r.Err != "" {
		return fmt.Sprintf("%-12s seed=%-6d error: %s", r.Sim, r.Seed, r.Err)
	}
	return fmt.Sprintf("%-12s seed=%-6d steps=%d total=%d mean=%.2f peak=%d last=%d",
		r.Sim, r.Seed, r.Steps, r.Total, r.MeanPerStep, r.PeakStep, r.LastStep)
}

// runScenario resets a fresh sim and counts change notifications per step.
func runScenario(env core.Env, sc scenario, steps int) scenarioResult {
	res := scenarioResult{Sim: sc.sim, Seed: sc.seed, Steps: steps}
	sim, err := core.New(sc.sim, env)
	if err != nil {
		res.Err = err.Error()
		return res
	}
	sim.Reset(sc.seed)

	changes := 0
	unsub := sim.Subscribe(func(grid.CellChanged) { changes++ })
	defer unsub()

	for step := 0; step < steps; step++ {
		changes = 0
		sim.Step()
		res.Total += changes
		if changes > res.PeakStep {
			res.PeakStep = changes
		}
		res.LastStep = changes
	}
	if steps > 0 {
		res.MeanPerStep = float64(res.Total) / float64(steps)
	}
	return res
}

// sweep runs every scenario on a pool of workers and returns the results
// ordered by sim name, then seed.
func sweep(env core.Env, scenarios []scenario, steps, workers int) []scenarioResult {
	if workers < 1 {
		workers = 1
	}
	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(env, sc, steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range scenarios {
			jobs <- sc
		}
		close(jobs)
	}()

	all := make([]scenarioResult, 0, len(scenarios))
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Sim != all[j].Sim {
			return all[i].Sim < all[j].Sim
		}
		return all[i].Seed < all[j].Seed
	})
	return all
}

func buildScenarios(sims []string, seed int64, runs int) []scenario {
	var out []scenario
	for _, name := range sims {
		for i := 0; i < runs; i++ {
			out = append(out, scenario{sim: name, seed: seed + int64(i)})
		}
	}
	return out
}
