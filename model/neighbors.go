package model

import "github.com/sheikhrachel/gol-canvas/rules"

// NeighborCounts holds the number of living neighbors of every cell of a grid.
// It is only meaningful between ComputeNeighborCounts and the next mutation of the grid.
type NeighborCounts struct {
	rows   int
	cols   int
	counts []uint8
}

// NewNeighborCounts creates a zeroed count buffer sized for a grid
func NewNeighborCounts(rows, cols int) *NeighborCounts {
	return &NeighborCounts{
		rows:   rows,
		cols:   cols,
		counts: make([]uint8, rows*cols),
	}
}

// At returns the neighbor count stored for a cell
func (n *NeighborCounts) At(row, col int) int {
	return int(n.counts[row*n.cols+col])
}

// ComputeNeighborCounts writes, for every cell of g, the number of live cells among
// its up to 8 adjacent cells. Cells beyond the edges are absent, the grid does not wrap.
func ComputeNeighborCounts(g *Grid, counts *NeighborCounts) {
	for row := 0; row < g.rows; row++ {
		minRow := max(0, row-1)
		maxRow := min(g.rows-1, row+1)

		for col := 0; col < g.cols; col++ {
			minCol := max(0, col-1)
			maxCol := min(g.cols-1, col+1)

			var count uint8
			for nr := minRow; nr <= maxRow; nr++ {
				for nc := minCol; nc <= maxCol; nc++ {
					if nr == row && nc == col {
						continue
					}
					if g.cells[nr*g.cols+nc] {
						count++
					}
				}
			}
			counts.counts[row*g.cols+col] = count
		}
	}
}

// Advance applies the B3/S23 rule to every cell of g using only the precomputed counts
func Advance(g *Grid, counts *NeighborCounts) {
	for i, alive := range g.cells {
		g.cells[i] = rules.Next(alive, int(counts.counts[i]))
	}
}

// Step advances g by one generation, using counts as scratch space
func Step(g *Grid, counts *NeighborCounts) {
	ComputeNeighborCounts(g, counts)
	Advance(g, counts)
}
