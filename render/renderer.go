package render

import (
	"image/color"

	"github.com/sheikhrachel/gol-canvas/model"
)

// Canvas is the set of drawing primitives the window system supplies
type Canvas interface {
	// Clear fills the whole frame
	Clear(c color.Color)
	// FillRect draws a filled rectangle
	FillRect(x, y, w, h float64, c color.Color)
	// StrokeRect draws the outline of a rectangle with the given stroke width
	StrokeRect(x, y, w, h, width float64, c color.Color)
}

// Palette holds the colors used to draw the grid
type Palette struct {
	Dead       color.Color
	Living     color.Color
	Border     color.Color
	Background color.Color
}

// Renderer draws every cell as a filled, bordered square
type Renderer struct {
	palette     Palette
	tileSize    int
	borderWidth float64
}

// NewRenderer creates a renderer for tiles of tileSize pixels
func NewRenderer(palette Palette, tileSize int, borderWidth float64) *Renderer {
	return &Renderer{
		palette:     palette,
		tileSize:    tileSize,
		borderWidth: borderWidth,
	}
}

// Draw clears the frame and draws the grid. It does not modify the grid.
func (r *Renderer) Draw(c Canvas, g *model.Grid) {
	c.Clear(r.palette.Background)

	size := float64(r.tileSize)
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			x, y := float64(col)*size, float64(row)*size

			fill := r.palette.Dead
			if g.Get(row, col) {
				fill = r.palette.Living
			}
			c.FillRect(x, y, size, size, fill)
			c.StrokeRect(x, y, size, size, r.borderWidth, r.palette.Border)
		}
	}
}
