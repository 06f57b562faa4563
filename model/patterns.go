package model

import (
	"sort"

	"github.com/pkg/errors"
)

// Pattern is a small block of cells, indexed [row][col]
type Pattern [][]bool

var patterns = map[string]Pattern{
	"block": {
		{true, true},
		{true, true},
	},
	"blinker": {
		{true, true, true},
	},
	"glider": {
		{false, true, false},
		{false, false, true},
		{true, true, true},
	},
}

// LookupPattern returns a named pattern
func LookupPattern(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return nil, errors.Errorf("[LookupPattern] unknown pattern %q (known: %v)", name, PatternNames())
	}
	return p, nil
}

// PatternNames returns the names of all known patterns in sorted order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stamp copies the pattern onto the grid with its top-left corner at (row, col).
// Dead pattern cells overwrite; cells falling outside the grid are dropped.
func (g *Grid) Stamp(p Pattern, row, col int) {
	for dr, line := range p {
		for dc, alive := range line {
			g.Set(row+dr, col+dc, alive)
		}
	}
}
