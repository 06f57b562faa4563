package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screenCanvas draws onto the frame ebiten hands to Draw
type screenCanvas struct {
	screen *ebiten.Image
}

func (c screenCanvas) Clear(clr color.Color) {
	c.screen.Fill(clr)
}

func (c screenCanvas) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(c.screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (c screenCanvas) StrokeRect(x, y, w, h, width float64, clr color.Color) {
	if width <= 0 {
		return
	}
	vector.StrokeRect(c.screen, float32(x), float32(y), float32(w), float32(h), float32(width), clr, true)
}
