package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/sheikhrachel/gol-canvas/sim"
	"github.com/sheikhrachel/gol-canvas/utils"
	"github.com/sheikhrachel/gol-canvas/window"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without a window")
	generations := flag.Int("generations", -1, "Headless: stop after N generations (-1 = use config, 0 = unlimited)")
	density := flag.Float64("density", -1, "Probability a cell starts live (-1 = use config)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = use config, then time-based)")
	watch := flag.Bool("watch", false, "Headless: draw every generation in the terminal")
	printFinal := flag.Bool("print", false, "Headless: print the final grid")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err = applyOverrides(&config, *generations, *density, *seed); err != nil {
		slog.Error("invalid flags", "error", err)
		os.Exit(1)
	}

	rngSeed := sim.ResolveSeed(config)
	displayGameInfo(config, rngSeed)

	if *headless {
		if err = runHeadless(config, rngSeed, *watch, *printFinal); err != nil {
			slog.Error("headless run failed", "error", err)
			os.Exit(1)
		}
		return
	}

	loop, err := sim.NewLoopFromConfig(config, rngSeed)
	if err != nil {
		slog.Error("failed to initialize game", "error", err)
		os.Exit(1)
	}
	if err = window.Run(config, loop); err != nil {
		slog.Error("failed to run window", "error", err)
		os.Exit(1)
	}
}
