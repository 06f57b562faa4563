package model

import "sync"

// GridPool recycles grids between independent runs
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves a dead grid with the requested dimensions
func (p *GridPool) Get(rows, cols int) *Grid {
	g := p.pool.Get().(*Grid)
	g.Reset(rows, cols)
	return g
}

// Put returns a grid to the pool. A nil pool drops the grid.
func (p *GridPool) Put(g *Grid) {
	if p == nil || g == nil {
		return
	}
	p.pool.Put(g)
}
