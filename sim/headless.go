package sim

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-canvas/model"
	"github.com/sheikhrachel/gol-canvas/utils"
)

// StopReason says why a headless run ended
type StopReason string

const (
	StopGenerationLimit StopReason = "generation_limit"
	StopStagnation      StopReason = "stagnation"
	StopExtinction      StopReason = "extinction"
	StopCanceled        StopReason = "canceled"
)

// HeadlessOptions configures RunHeadless
type HeadlessOptions struct {
	// Generations caps the run; 0 means unlimited
	Generations int
	// StagnationThreshold stops the run after this many consecutive generations
	// that repeat a recent state; 0 disables the check
	StagnationThreshold int
	// FrameRate is the pause between generations; 0 runs flat out
	FrameRate time.Duration
	// LogEvery logs progress every N generations; 0 disables progress logs
	LogEvery int
	// Display, when set, redraws the grid every generation
	Display *model.TerminalRenderer
	Logger  *slog.Logger
}

// HeadlessOptionsFromConfig maps the headless config section onto options
func HeadlessOptionsFromConfig(config utils.Config) HeadlessOptions {
	return HeadlessOptions{
		Generations:         config.Headless.Generations,
		StagnationThreshold: config.Headless.StagnationThreshold,
		LogEvery:            config.Headless.LogEvery,
	}
}

// Result summarizes a headless run
type Result struct {
	Seed            int64      `csv:"seed"`
	Generations     int        `csv:"generations"`
	FinalPopulation int        `csv:"final_population"`
	PeakPopulation  int        `csv:"peak_population"`
	AvgPopulation   float64    `csv:"avg_population"`
	Reason          StopReason `csv:"stop_reason"`
}

// RunHeadless advances grid without a window until the generation limit,
// stagnation, extinction or cancellation of ctx.
func RunHeadless(ctx context.Context, grid *model.Grid, opts HeadlessOptions) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var (
		counts        = model.NewNeighborCounts(grid.Rows(), grid.Cols())
		history       = model.NewHistory()
		stats         = utils.NewStats(time.Now())
		result        Result
		stagnantCount = 0
	)

	for {
		if ctx.Err() != nil {
			result.Reason = StopCanceled
			break
		}

		population := grid.CountLivingCells()
		stats.Observe(result.Generations, population)

		if opts.Display != nil {
			if err := opts.Display.Clear(); err != nil {
				return result, errors.Wrap(err, "[RunHeadless] display failed")
			}
			if err := opts.Display.Display(grid); err != nil {
				return result, errors.Wrap(err, "[RunHeadless] display failed")
			}
		}

		if opts.LogEvery > 0 && result.Generations%opts.LogEvery == 0 {
			logger.Info("generation",
				"generation", result.Generations,
				"living", population,
				"gen_per_sec", stats.GenerationsPerSecond(time.Now()),
				"avg_population", stats.AveragePopulation,
			)
		}

		if population == 0 {
			result.Reason = StopExtinction
			break
		}

		// Update stagnation counter
		if history.Observe(grid) {
			stagnantCount++
		} else {
			stagnantCount = 0
		}
		if opts.StagnationThreshold > 0 && stagnantCount >= opts.StagnationThreshold {
			result.Reason = StopStagnation
			break
		}

		if opts.Generations > 0 && result.Generations >= opts.Generations {
			result.Reason = StopGenerationLimit
			break
		}

		model.Step(grid, counts)
		result.Generations++

		if opts.FrameRate > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(opts.FrameRate):
			}
		}
	}

	if opts.LogEvery > 0 {
		now := time.Now()
		logger.Info("run stopped",
			"reason", result.Reason,
			"generation", result.Generations,
			"elapsed", stats.Elapsed(now),
			"gen_per_sec", stats.GenerationsPerSecond(now),
		)
	}

	result.FinalPopulation = grid.CountLivingCells()
	result.PeakPopulation = stats.PeakPopulation
	result.AvgPopulation = stats.AveragePopulation
	return result, nil
}
