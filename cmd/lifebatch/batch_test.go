package main

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"

	"github.com/sheikhrachel/gol-canvas/sim"
	"github.com/sheikhrachel/gol-canvas/utils"
)

func testBatch(runs, workers int) batch {
	config := utils.DefaultConfig()
	config.Window.Width = 100
	config.Window.Height = 100
	config.Grid.TileSize = 5
	config.Seed.Density = 0.3
	config.Headless.Generations = 30
	config.Headless.LogEvery = 0

	return batch{config: config, runs: runs, baseSeed: 100, workers: workers}
}

func TestBatchRunIsDeterministic(t *testing.T) {
	serial, err := testBatch(6, 1).run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	parallel, err := testBatch(6, 4).run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range serial {
		if serial[i] != parallel[i] {
			t.Errorf("run %d differs between serial and parallel: %+v vs %+v", i, serial[i], parallel[i])
		}
		if serial[i].Seed != 100+int64(i) {
			t.Errorf("run %d: expected seed %d, got %d", i, 100+i, serial[i].Seed)
		}
		if serial[i].Generations > 30 {
			t.Errorf("run %d exceeded the generation limit: %d", i, serial[i].Generations)
		}
	}
}

func TestBatchRunRejectsBadRuns(t *testing.T) {
	cases := []struct {
		name    string
		runs    int
		workers int
	}{
		{"negative runs", -1, 1},
		{"zero runs", 0, 1},
		{"negative workers", 4, -2},
	}

	for _, tc := range cases {
		results, err := testBatch(tc.runs, tc.workers).run(context.Background())
		if err == nil {
			t.Errorf("%s: expected an error for runs=%d workers=%d", tc.name, tc.runs, tc.workers)
		}
		if results != nil {
			t.Errorf("%s: expected no results, got %d", tc.name, len(results))
		}
	}
}

func TestApplyFlagsKeepsConfigDensity(t *testing.T) {
	config := utils.DefaultConfig()
	config.Seed.Density = 0.35
	config.Headless.Generations = 50

	if err := applyFlags(&config, -1, -1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Seed.Density != 0.35 || config.Headless.Generations != 50 {
		t.Errorf("unset flags overwrote config: density %v, generations %d", config.Seed.Density, config.Headless.Generations)
	}
	if config.Headless.LogEvery != 0 {
		t.Errorf("expected progress logs off, got every %d", config.Headless.LogEvery)
	}

	if err := applyFlags(&config, 0.1, 20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Seed.Density != 0.1 || config.Headless.Generations != 20 {
		t.Errorf("flags not applied: density %v, generations %d", config.Seed.Density, config.Headless.Generations)
	}

	empty := utils.DefaultConfig()
	if err := applyFlags(&empty, -1, -1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if empty.Seed.Density != defaultDensity {
		t.Errorf("expected fallback density %v, got %v", defaultDensity, empty.Seed.Density)
	}

	if err := applyFlags(&config, 1.5, -1); err == nil {
		t.Error("expected density above 1 to be rejected")
	}
}

func TestWriteResults(t *testing.T) {
	results := []sim.Result{
		{Seed: 1, Generations: 10, FinalPopulation: 4, PeakPopulation: 9, AvgPopulation: 5.5, Reason: sim.StopStagnation},
		{Seed: 2, Generations: 30, FinalPopulation: 0, PeakPopulation: 3, AvgPopulation: 1, Reason: sim.StopExtinction},
	}

	var buf bytes.Buffer
	if err := writeResults(&buf, results); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %d lines:\n%s", len(lines), buf.String())
	}
	if lines[0] != "seed,generations,final_population,peak_population,avg_population,stop_reason" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1,10,4,9,") || !strings.HasSuffix(lines[1], ",stagnation") {
		t.Errorf("unexpected first row %q", lines[1])
	}
}

func TestSummarize(t *testing.T) {
	s := summarize([]sim.Result{
		{FinalPopulation: 2, Generations: 10, Reason: sim.StopExtinction},
		{FinalPopulation: 4, Generations: 20, Reason: sim.StopGenerationLimit},
		{FinalPopulation: 6, Generations: 30, Reason: sim.StopGenerationLimit},
	})

	if s.MeanFinal != 4 || s.MeanGenerations != 20 {
		t.Errorf("unexpected means %+v", s)
	}
	if math.Abs(s.StdDevFinal-2) > 1e-9 {
		t.Errorf("expected sample stddev 2, got %v", s.StdDevFinal)
	}
	if s.Reasons[sim.StopGenerationLimit] != 2 || s.Reasons[sim.StopExtinction] != 1 {
		t.Errorf("unexpected reason counts %v", s.Reasons)
	}

	if empty := summarize(nil); empty.MeanFinal != 0 || len(empty.Reasons) != 0 {
		t.Errorf("empty batch should summarize to zero, got %+v", empty)
	}
}
