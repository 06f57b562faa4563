// Command lifebatch runs many independently seeded headless simulations and
// reports how each one ended as CSV on stdout.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/sheikhrachel/gol-canvas/utils"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	runs := flag.Int("runs", 16, "Number of independent runs")
	baseSeed := flag.Int64("seed", 1, "Seed of the first run; run i uses seed+i")
	density := flag.Float64("density", -1, "Probability a cell starts live (-1 = use config, or 0.2 if unset there)")
	generations := flag.Int("generations", -1, "Stop each run after N generations (-1 = use config)")
	workers := flag.Int("workers", runtime.NumCPU(), "Runs computed at once")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err = applyFlags(&config, *density, *generations); err != nil {
		slog.Error("invalid flags", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	b := batch{
		config:   config,
		runs:     *runs,
		baseSeed: *baseSeed,
		workers:  *workers,
	}
	results, err := b.run(ctx)
	if err != nil {
		slog.Error("batch failed", "error", err)
		os.Exit(1)
	}

	if err = writeResults(os.Stdout, results); err != nil {
		slog.Error("failed to write results", "error", err)
		os.Exit(1)
	}

	s := summarize(results)
	slog.Info("batch finished",
		"runs", len(results),
		"mean_final_population", s.MeanFinal,
		"stddev_final_population", s.StdDevFinal,
		"mean_generations", s.MeanGenerations,
		"stopped_by", s.Reasons,
	)
}
