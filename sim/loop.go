// Package sim couples the grid, the rule engine, input and rendering into the
// per-frame sequence the window drives, and runs the same engine without a window.
package sim

import (
	"github.com/sheikhrachel/gol-canvas/input"
	"github.com/sheikhrachel/gol-canvas/model"
	"github.com/sheikhrachel/gol-canvas/render"
)

// Loop owns the grid and advances it one frame at a time. It is not safe for
// concurrent use; the window's update/draw thread is its only caller.
type Loop struct {
	grid       *model.Grid
	counts     *model.NeighborCounts
	input      *input.Handler
	renderer   *render.Renderer
	tileSize   int
	generation int
}

// NewLoop creates a paused loop over grid
func NewLoop(grid *model.Grid, renderer *render.Renderer, tileSize int) *Loop {
	return &Loop{
		grid:     grid,
		counts:   model.NewNeighborCounts(grid.Rows(), grid.Cols()),
		input:    input.NewHandler(),
		renderer: renderer,
		tileSize: tileSize,
	}
}

// Frame runs one frame: apply every pending event, advance one generation if
// running, then paint under the cursor if painting. It reports whether the
// exit shortcut was pressed.
func (l *Loop) Frame(events []input.Event) (quit bool) {
	l.input.HandleAll(events)

	if l.input.Running() {
		model.Step(l.grid, l.counts)
		l.generation++
	}

	l.input.ApplyPaint(l.grid, l.tileSize)

	return l.input.Quit()
}

// Render draws the grid's current state
func (l *Loop) Render(c render.Canvas) {
	l.renderer.Draw(c, l.grid)
}

// Grid returns the grid the loop mutates
func (l *Loop) Grid() *model.Grid {
	return l.grid
}

// Generation returns how many generations have been computed
func (l *Loop) Generation() int {
	return l.generation
}

// Running reports whether the simulation is advancing
func (l *Loop) Running() bool {
	return l.input.Running()
}
