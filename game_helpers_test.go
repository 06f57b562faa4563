package main

import (
	"testing"

	"github.com/sheikhrachel/gol-canvas/utils"
)

func TestApplyOverrides(t *testing.T) {
	config := utils.DefaultConfig()
	if err := applyOverrides(&config, -1, -1, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Headless.Generations != utils.DefaultConfig().Headless.Generations {
		t.Error("unset flags should keep config values")
	}

	if err := applyOverrides(&config, 0, 0.4, 77); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Headless.Generations != 0 || config.Seed.Density != 0.4 || config.Seed.RandomSeed != 77 {
		t.Errorf("flags not applied: %+v %+v", config.Headless, config.Seed)
	}

	if err := applyOverrides(&config, -1, 2, 0); err == nil {
		t.Error("expected density above 1 to be rejected")
	}
}

func TestRunHeadlessFromConfig(t *testing.T) {
	config := utils.DefaultConfig()
	config.Seed.Patterns = []utils.PatternConfig{{Name: "block", Row: 4, Col: 4}}
	config.Headless.Generations = 10
	config.Headless.LogEvery = 0

	if err := runHeadless(config, 1, false, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
