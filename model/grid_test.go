package model

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
)

func TestNewGrid(t *testing.T) {
	g := NewGrid(96, 128)

	if g.Rows() != 96 || g.Cols() != 128 {
		t.Errorf("expected 96x128, got %dx%d", g.Rows(), g.Cols())
	}
	if g.CountLivingCells() != 0 {
		t.Errorf("expected empty grid, got %d living cells", g.CountLivingCells())
	}
}

func TestSetGetOutOfRange(t *testing.T) {
	g := NewGrid(3, 4)
	g.Set(-1, 0, true)
	g.Set(0, -1, true)
	g.Set(3, 0, true)
	g.Set(0, 4, true)

	if g.CountLivingCells() != 0 {
		t.Errorf("out of range writes should be ignored, got %d living cells", g.CountLivingCells())
	}
	if g.Get(-1, -1) || g.Get(3, 4) {
		t.Error("out of range reads should be dead")
	}

	g.Set(2, 3, true)
	if !g.Get(2, 3) {
		t.Error("expected (2,3) to be alive")
	}
	if g.Get(3, 2) {
		t.Error("row-major indexing mixed up rows and columns")
	}
}

func TestRandomizeSeeded(t *testing.T) {
	a := NewGrid(40, 40)
	b := NewGrid(40, 40)
	a.Randomize(rand.New(rand.NewSource(99)), 0.3)
	b.Randomize(rand.New(rand.NewSource(99)), 0.3)

	if !a.Equal(b) || a.Hash() != b.Hash() {
		t.Error("same seed should produce the same grid")
	}

	a.Randomize(rand.New(rand.NewSource(1)), 0)
	if a.CountLivingCells() != 0 {
		t.Errorf("p=0 should leave every cell dead, got %d", a.CountLivingCells())
	}
	a.Randomize(rand.New(rand.NewSource(1)), 1)
	if a.CountLivingCells() != 1600 {
		t.Errorf("p=1 should make every cell live, got %d", a.CountLivingCells())
	}
}

func TestHashChangesWithState(t *testing.T) {
	g := NewGrid(5, 5)
	before := g.Hash()
	g.Set(2, 2, true)

	if g.Hash() == before {
		t.Error("hash should change when a cell changes")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGrid(3, 3)
	c := g.Clone()
	c.Set(1, 1, true)

	if g.Get(1, 1) {
		t.Error("mutating a clone changed the original")
	}
	if g.Equal(c) {
		t.Error("grids with different cells should not be equal")
	}
	if g.Equal(NewGrid(3, 4)) {
		t.Error("grids with different dimensions should not be equal")
	}
}

func TestStampClipsAtEdges(t *testing.T) {
	g := NewGrid(4, 4)
	block, err := LookupPattern("block")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g.Stamp(block, 3, 3)

	if g.CountLivingCells() != 1 || !g.Get(3, 3) {
		t.Errorf("expected only (3,3) alive, got %d living cells", g.CountLivingCells())
	}
}

func TestLookupPatternUnknown(t *testing.T) {
	if _, err := LookupPattern("spaceship"); err == nil {
		t.Error("expected error for unknown pattern")
	}
}

func TestHistoryDetectsStaticAndCycles(t *testing.T) {
	h := NewHistory()
	g := NewGrid(5, 5)
	g.Set(2, 1, true)
	g.Set(2, 2, true)
	g.Set(2, 3, true)
	counts := NewNeighborCounts(5, 5)

	if h.Observe(g) {
		t.Fatal("first observation cannot be stagnant")
	}
	Step(g, counts)
	if h.Observe(g) {
		t.Fatal("blinker second phase is new")
	}
	Step(g, counts)
	if !h.Observe(g) {
		t.Error("blinker returning to its first phase should be a cycle")
	}

	h.Reset()
	static := NewGrid(5, 5)
	h.Observe(static)
	if !h.Observe(static) {
		t.Error("an unchanged grid should be stagnant")
	}
}

func TestTerminalRendererDisplay(t *testing.T) {
	g := NewGrid(2, 3)
	g.Set(0, 0, true)
	g.Set(1, 2, true)

	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf}
	if err := r.Display(g); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != gridPosBlock+gridPosEmpty+gridPosEmpty {
		t.Errorf("unexpected first line %q", lines[0])
	}
	if lines[1] != gridPosEmpty+gridPosEmpty+gridPosBlock {
		t.Errorf("unexpected second line %q", lines[1])
	}
}

func TestGridPoolReturnsDeadGrids(t *testing.T) {
	pool := NewGridPool()

	g := pool.Get(4, 5)
	g.Set(1, 1, true)
	pool.Put(g)

	again := pool.Get(3, 3)
	if again.Rows() != 3 || again.Cols() != 3 {
		t.Errorf("expected 3x3, got %dx%d", again.Rows(), again.Cols())
	}
	if again.CountLivingCells() != 0 {
		t.Errorf("pooled grid should come back dead, got %d living cells", again.CountLivingCells())
	}

	var nilPool *GridPool
	nilPool.Put(again)
}
