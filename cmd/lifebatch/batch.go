package main

import (
	"context"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/sheikhrachel/gol-canvas/model"
	"github.com/sheikhrachel/gol-canvas/sim"
	"github.com/sheikhrachel/gol-canvas/utils"
)

// defaultDensity seeds runs when neither the flag nor the config gives a
// density; an empty start would end every run in extinction at generation 0.
const defaultDensity = 0.2

// applyFlags folds the command line into config. Negative values mean the
// flag was not set. Per-run progress logs are always off.
func applyFlags(config *utils.Config, density float64, generations int) error {
	switch {
	case density >= 0:
		config.Seed.Density = density
	case config.Seed.Density == 0:
		config.Seed.Density = defaultDensity
	}
	if generations >= 0 {
		config.Headless.Generations = generations
	}
	config.Headless.LogEvery = 0
	return errors.Wrap(config.Validate(), "[applyFlags] config rejected")
}

// batch runs independent simulations; each run owns its grid, so runs share no state
type batch struct {
	config   utils.Config
	runs     int
	baseSeed int64
	workers  int
}

// run computes every run and returns the results ordered by seed
func (b batch) run(ctx context.Context) ([]sim.Result, error) {
	if b.runs <= 0 {
		return nil, errors.Errorf("[batch.run] runs must be positive, got %d", b.runs)
	}
	if b.workers < 0 {
		return nil, errors.Errorf("[batch.run] workers must not be negative, got %d", b.workers)
	}

	results := make([]sim.Result, b.runs)
	pool := model.NewGridPool()

	eg, ctx := errgroup.WithContext(ctx)
	if b.workers > 0 {
		eg.SetLimit(b.workers)
	}

	for i := 0; i < b.runs; i++ {
		i := i
		seed := b.baseSeed + int64(i)
		eg.Go(func() error {
			grid := pool.Get(b.config.Rows(), b.config.Cols())
			defer pool.Put(grid)

			if err := sim.SeedGrid(grid, b.config, seed); err != nil {
				return errors.Wrapf(err, "[batch.run] failed to seed run %d", i)
			}

			result, err := sim.RunHeadless(ctx, grid, sim.HeadlessOptionsFromConfig(b.config))
			if err != nil {
				return errors.Wrapf(err, "[batch.run] run %d failed", i)
			}
			result.Seed = seed
			results[i] = result
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// writeResults writes one CSV row per run
func writeResults(w io.Writer, results []sim.Result) error {
	if err := gocsv.Marshal(results, w); err != nil {
		return errors.Wrap(err, "[writeResults] failed to marshal csv")
	}
	return nil
}

// summary aggregates a batch
type summary struct {
	MeanFinal       float64
	StdDevFinal     float64
	MeanGenerations float64
	Reasons         map[sim.StopReason]int
}

func summarize(results []sim.Result) summary {
	s := summary{Reasons: make(map[sim.StopReason]int)}
	if len(results) == 0 {
		return s
	}

	finals := make([]float64, len(results))
	gens := make([]float64, len(results))
	for i, r := range results {
		finals[i] = float64(r.FinalPopulation)
		gens[i] = float64(r.Generations)
		s.Reasons[r.Reason]++
	}

	s.MeanFinal, s.StdDevFinal = stat.MeanStdDev(finals, nil)
	s.MeanGenerations = stat.Mean(gens, nil)
	return s
}
