package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"
)

// Grid is the board of cells, stored row-major with the origin at the top-left
type Grid struct {
	rows  int
	cols  int
	cells []bool
}

// NewGrid creates a grid of dead cells with the specified dimensions
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]bool, rows*cols),
	}
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Set sets a cell to alive (true) or dead (false). Out of range writes are ignored.
func (g *Grid) Set(row, col int, alive bool) {
	if g.inBounds(row, col) {
		g.cells[row*g.cols+col] = alive
	}
}

// Get returns the state of a cell. Out of range cells read as dead.
func (g *Grid) Get(row, col int) bool {
	if !g.inBounds(row, col) {
		return false
	}
	return g.cells[row*g.cols+col]
}

// Reset resizes the grid, reusing its buffer when large enough, and kills all cells
func (g *Grid) Reset(rows, cols int) {
	g.rows = rows
	g.cols = cols
	if cap(g.cells) >= rows*cols {
		g.cells = g.cells[:rows*cols]
		clear(g.cells)
	} else {
		g.cells = make([]bool, rows*cols)
	}
}

// Clear kills all cells
func (g *Grid) Clear() {
	clear(g.cells)
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.rows, g.cols)
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, alive := range g.cells {
		if other.cells[i] != alive {
			return false
		}
	}
	return true
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// Hash returns an MD5 hash of the current grid state
func (g *Grid) Hash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i, alive := range g.cells {
		if alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Randomize sets every cell live independently with probability p
func (g *Grid) Randomize(rng *rand.Rand, p float64) {
	for i := range g.cells {
		g.cells[i] = rng.Float64() < p
	}
}
