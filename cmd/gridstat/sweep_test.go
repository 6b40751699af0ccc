package main

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"worldgrid/internal/config"
	"worldgrid/internal/core"
	_ "worldgrid/internal/sims/counter"
	_ "worldgrid/internal/sims/life"
)

var testEnv = core.Env{Layout: config.Layout{Width: 10, Height: 10, CellSize: 1}}

func TestRunScenarioCountsChanges(t *testing.T) {
	res := runScenario(testEnv, scenario{sim: "counter", seed: 1}, 5)
	if res.Err != "" {
		t.Fatal(res.Err)
	}
	if res.Total != 0 || res.PeakStep != 0 {
		t.Fatalf("counter should never change on step: %+v", res)
	}

	a := runScenario(testEnv, scenario{sim: "life", seed: 9}, 20)
	b := runScenario(testEnv, scenario{sim: "life", seed: 9}, 20)
	if a != b {
		t.Fatalf("same seed gave different results:\n%v\n%v", a, b)
	}
	if a.Total == 0 {
		t.Fatal("random life board never changed")
	}
	if a.MeanPerStep != float64(a.Total)/20 {
		t.Fatalf("mean = %v", a.MeanPerStep)
	}
}

func TestRunScenarioUnknownSim(t *testing.T) {
	res := runScenario(testEnv, scenario{sim: "nope", seed: 1}, 5)
	if !strings.Contains(res.Err, "unknown sim") {
		t.Fatalf("err = %q", res.Err)
	}
	if !strings.Contains(res.String(), "error:") {
		t.Fatalf("String() = %q", res.String())
	}
}

func TestSweepOrdersResults(t *testing.T) {
	scenarios := buildScenarios([]string{"life", "counter"}, 3, 3)
	if len(scenarios) != 6 {
		t.Fatalf("scenarios = %d, want 6", len(scenarios))
	}
	results := sweep(testEnv, scenarios, 4, 3)
	if len(results) != 6 {
		t.Fatalf("results = %d, want 6", len(results))
	}
	want := []struct {
		sim  string
		seed int64
	}{{"counter", 3}, {"counter", 4}, {"counter", 5}, {"life", 3}, {"life", 4}, {"life", 5}}
	for i, w := range want {
		if results[i].Sim != w.sim || results[i].Seed != w.seed {
			t.Fatalf("result %d = %s/%d, want %s/%d", i, results[i].Sim, results[i].Seed, w.sim, w.seed)
		}
	}
}

func TestResultsEncodeAsYAML(t *testing.T) {
	out, err := yaml.Marshal([]scenarioResult{{Sim: "life", Seed: 2, Steps: 3, Total: 7, MeanPerStep: 2.5}})
	if err != nil {
		t.Fatal(err)
	}
	var back []map[string]any
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatal(err)
	}
	if back[0]["sim"] != "life" || back[0]["meanPerStep"] != 2.5 {
		t.Fatalf("decoded = %v", back)
	}
	if _, ok := back[0]["error"]; ok {
		t.Fatal("empty error should be omitted")
	}
}
