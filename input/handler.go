package input

import "github.com/sheikhrachel/gol-canvas/model"

// Handler tracks the run/pause and painting flags and the last known cursor position.
// Both flags start false.
type Handler struct {
	running     bool
	painting    bool
	quit        bool
	cursor      Point
	cursorKnown bool
}

// NewHandler creates a handler in the paused, not painting state
func NewHandler() *Handler {
	return &Handler{}
}

// Handle applies one event
func (h *Handler) Handle(ev Event) {
	switch e := ev.(type) {
	case PointerMove:
		h.cursor = e.Pos
		h.cursorKnown = true
	case KeyPress:
		switch e.Key {
		case KeySpace:
			h.running = !h.running
		case KeyEscape:
			h.quit = true
		}
	case ButtonPress:
		if e.Button == ButtonPrimary {
			h.painting = true
		}
	case ButtonRelease:
		if e.Button == ButtonPrimary {
			h.painting = false
		}
	}
}

// HandleAll applies events in order
func (h *Handler) HandleAll(events []Event) {
	for _, ev := range events {
		h.Handle(ev)
	}
}

// Running reports whether the simulation should advance
func (h *Handler) Running() bool {
	return h.running
}

// Painting reports whether the primary button is held
func (h *Handler) Painting() bool {
	return h.painting
}

// Quit reports whether the exit shortcut was pressed
func (h *Handler) Quit() bool {
	return h.quit
}

// Cursor returns the last known pointer position, if any
func (h *Handler) Cursor() (Point, bool) {
	return h.cursor, h.cursorKnown
}

// ApplyPaint paints under the cursor when painting and the cursor position is known.
// It reports whether a cell was set.
func (h *Handler) ApplyPaint(g *model.Grid, tileSize int) bool {
	if !h.painting || !h.cursorKnown {
		return false
	}
	return Paint(g, h.cursor, tileSize)
}

// Paint sets live every cell whose tile strictly contains p. Points on a tile
// edge or outside the grid paint nothing. Painting never kills a cell.
func Paint(g *model.Grid, p Point, tileSize int) bool {
	if tileSize <= 0 || p.X <= 0 || p.Y <= 0 {
		return false
	}
	size := float64(tileSize)
	col := int(p.X / size)
	row := int(p.Y / size)
	if row >= g.Rows() || col >= g.Cols() {
		return false
	}

	xStart, yStart := float64(col)*size, float64(row)*size
	if !(p.X > xStart && p.X < xStart+size && p.Y > yStart && p.Y < yStart+size) {
		return false
	}
	g.Set(row, col, true)
	return true
}
