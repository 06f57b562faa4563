package model

// historySize is how many recent generations are remembered for cycle detection
const historySize = 5

// History remembers the hashes of recent generations of a grid
type History struct {
	hashes []string
}

// NewHistory creates an empty history
func NewHistory() *History {
	return &History{hashes: make([]string, 0, historySize)}
}

// Observe records the grid's current state and reports whether it repeats one of
// the last three recorded states, i.e. the grid is static or in a period 2 or 3 cycle.
func (h *History) Observe(g *Grid) (stagnant bool) {
	current := g.Hash()

	for i := 1; i <= 3 && i <= len(h.hashes); i++ {
		if h.hashes[len(h.hashes)-i] == current {
			stagnant = true
			break
		}
	}

	h.hashes = append(h.hashes, current)
	// Keep only the last states needed for detection
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
	return stagnant
}

// Reset forgets all recorded states
func (h *History) Reset() {
	h.hashes = h.hashes[:0]
}
