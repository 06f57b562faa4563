package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-canvas/model"
	"github.com/sheikhrachel/gol-canvas/sim"
	"github.com/sheikhrachel/gol-canvas/utils"
)

// applyOverrides folds command line flags into the config. Negative or zero
// values mean the flag was not set.
func applyOverrides(config *utils.Config, generations int, density float64, seed int64) error {
	if generations >= 0 {
		config.Headless.Generations = generations
	}
	if density >= 0 {
		config.Seed.Density = density
	}
	if seed != 0 {
		config.Seed.RandomSeed = seed
	}
	return errors.Wrap(config.Validate(), "[applyOverrides] config rejected")
}

// displayGameInfo logs the window and grid dimensions at startup
func displayGameInfo(config utils.Config, seed int64) {
	slog.Info("starting game of life",
		"window_width", config.Window.Width,
		"window_height", config.Window.Height,
		"tile_size", config.Grid.TileSize,
		"rows", config.Rows(),
		"cols", config.Cols(),
		"density", config.Seed.Density,
		"seed", seed,
	)
}

// runHeadless advances the seeded grid in the terminal until it stops or Ctrl+C
func runHeadless(config utils.Config, seed int64, watch, printFinal bool) error {
	grid, err := sim.NewSeededGrid(config, seed)
	if err != nil {
		return errors.Wrap(err, "[runHeadless] failed to seed grid")
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	terminal := &model.TerminalRenderer{Out: os.Stdout}
	opts := sim.HeadlessOptionsFromConfig(config)
	if watch {
		opts.Display = terminal
		opts.FrameRate = config.Headless.FrameRate
	}

	result, err := sim.RunHeadless(ctx, grid, opts)
	if err != nil {
		return errors.Wrap(err, "[runHeadless] simulation failed")
	}
	result.Seed = seed

	slog.Info("headless run finished",
		"reason", result.Reason,
		"generations", result.Generations,
		"final_population", result.FinalPopulation,
		"peak_population", result.PeakPopulation,
		"avg_population", result.AvgPopulation,
	)

	if printFinal {
		return errors.Wrap(terminal.Display(grid), "[runHeadless] failed to print grid")
	}
	return nil
}
