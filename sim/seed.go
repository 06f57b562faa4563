package sim

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-canvas/model"
	"github.com/sheikhrachel/gol-canvas/render"
	"github.com/sheikhrachel/gol-canvas/utils"
)

// ResolveSeed returns the configured random seed, or a time-based one when it is 0
func ResolveSeed(config utils.Config) int64 {
	if config.Seed.RandomSeed != 0 {
		return config.Seed.RandomSeed
	}
	return time.Now().UnixNano()
}

// NewSeededGrid builds the starting grid: random cells at the configured
// density, then the configured patterns stamped on top.
func NewSeededGrid(config utils.Config, seed int64) (*model.Grid, error) {
	grid := model.NewGrid(config.Rows(), config.Cols())
	if err := SeedGrid(grid, config, seed); err != nil {
		return nil, err
	}
	return grid, nil
}

// SeedGrid fills an already sized, dead grid the way NewSeededGrid does
func SeedGrid(grid *model.Grid, config utils.Config, seed int64) error {
	if config.Seed.Density > 0 {
		grid.Randomize(rand.New(rand.NewSource(seed)), config.Seed.Density)
	}

	for _, p := range config.Seed.Patterns {
		pattern, err := model.LookupPattern(p.Name)
		if err != nil {
			return errors.Wrap(err, "[SeedGrid] failed to place pattern")
		}
		grid.Stamp(pattern, p.Row, p.Col)
	}

	return nil
}

// NewLoopFromConfig seeds a grid and wraps it in a paused loop
func NewLoopFromConfig(config utils.Config, seed int64) (*Loop, error) {
	palette, err := config.Colors.Palette()
	if err != nil {
		return nil, errors.Wrap(err, "[NewLoopFromConfig] invalid palette")
	}

	grid, err := NewSeededGrid(config, seed)
	if err != nil {
		return nil, errors.Wrap(err, "[NewLoopFromConfig] failed to seed grid")
	}

	renderer := render.NewRenderer(palette, config.Grid.TileSize, config.Colors.BorderWidth)
	return NewLoop(grid, renderer, config.Grid.TileSize), nil
}
