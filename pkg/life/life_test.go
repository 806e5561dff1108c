package life

import (
	"testing"

	"lifegrid/pkg/core"
)

func gridWith(rows, cols int, live ...[2]int) *core.Grid {
	g := NewGrid(rows, cols)
	for _, p := range live {
		g.Set(p[0], p[1], true)
	}
	return g
}

func assertLive(t *testing.T, g *core.Grid, want map[[2]int]bool, stage string) {
	t.Helper()
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			alive := g.Alive(r, c)
			if want[[2]int{r, c}] != alive {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", stage, r, c, alive, !alive)
			}
		}
	}
}

func TestNewGridAllDead(t *testing.T) {
	g := NewGrid(4, 7)
	if g.Rows() != 4 || g.Cols() != 7 {
		t.Fatalf("dims = %dx%d, want 4x7", g.Rows(), g.Cols())
	}
	if len(g.Cells()) != 28 {
		t.Fatalf("len(cells) = %d, want 28", len(g.Cells()))
	}
	if Population(g) != 0 {
		t.Fatalf("new grid has %d live cells", Population(g))
	}
	if !Clear(4, 7).Equal(g) {
		t.Fatal("Clear must match NewGrid")
	}
}

func TestCountNeighborsMatchesWrappedFormula(t *testing.T) {
	rng := core.NewRNG(7)
	for _, dims := range [][2]int{{1, 1}, {2, 3}, {3, 3}, {5, 8}, {9, 4}} {
		rows, cols := dims[0], dims[1]
		g := Randomize(NewGrid(rows, cols), rng, 0.5)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				want := 0
				for i := -1; i <= 1; i++ {
					for j := -1; j <= 1; j++ {
						if i == 0 && j == 0 {
							continue
						}
						if g.Alive((r+i+rows)%rows, (c+j+cols)%cols) {
							want++
						}
					}
				}
				got := CountNeighbors(g, r, c)
				if got != want {
					t.Fatalf("%dx%d (%d,%d): got %d neighbours, want %d", rows, cols, r, c, got, want)
				}
				if got < 0 || got > 8 {
					t.Fatalf("neighbour count %d out of range", got)
				}
			}
		}
	}
}

func TestCountNeighborsWrapsCorners(t *testing.T) {
	g := gridWith(3, 3, [2]int{0, 0})
	if n := CountNeighbors(g, 2, 2); n != 1 {
		t.Fatalf("CountNeighbors(2,2) = %d, want 1", n)
	}
	if n := CountNeighbors(g, 1, 1); n != 1 {
		t.Fatalf("CountNeighbors(1,1) = %d, want 1", n)
	}
	if n := CountNeighbors(g, 0, 0); n != 0 {
		t.Fatalf("a cell must not count itself, got %d", n)
	}
}

func TestNextEmptyStaysEmpty(t *testing.T) {
	g := NewGrid(6, 9)
	next := Next(g)
	if next.Rows() != 6 || next.Cols() != 9 {
		t.Fatalf("dims changed to %dx%d", next.Rows(), next.Cols())
	}
	if Population(next) != 0 {
		t.Fatalf("empty grid produced %d live cells", Population(next))
	}
}

func TestBlockStillLife(t *testing.T) {
	g := gridWith(6, 6, [2]int{2, 2}, [2]int{2, 3}, [2]int{3, 2}, [2]int{3, 3})
	next := Next(g)
	if !next.Equal(g) {
		t.Fatal("block must be unchanged by Next")
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := gridWith(5, 5, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})

	g = Next(g)
	assertLive(t, g, map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}, "first step")

	g = Next(g)
	assertLive(t, g, map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}, "second step")
}

func TestBlinkerAcrossEdge(t *testing.T) {
	g := gridWith(5, 5, [2]int{0, 4}, [2]int{0, 0}, [2]int{0, 1})

	g = Next(g)
	assertLive(t, g, map[[2]int]bool{{4, 0}: true, {0, 0}: true, {1, 0}: true}, "first step")

	g = Next(g)
	assertLive(t, g, map[[2]int]bool{{0, 4}: true, {0, 0}: true, {0, 1}: true}, "second step")
}

func TestNextDoesNotMutateInput(t *testing.T) {
	g := gridWith(5, 5, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})
	before := g.Clone()
	_ = Next(g)
	if !g.Equal(before) {
		t.Fatal("Next modified its input grid")
	}
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	g := Randomize(NewGrid(4, 5), core.NewRNG(3), 0.4)
	once := Toggle(g, 3, 4)
	if once.Alive(3, 4) == g.Alive(3, 4) {
		t.Fatal("Toggle did not flip the cell")
	}
	if !Toggle(once, 3, 4).Equal(g) {
		t.Fatal("double toggle must restore the grid")
	}
}

func TestTogglePanicsOutsideGrid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range toggle")
		}
	}()
	Toggle(NewGrid(3, 3), 0, 3)
}

func TestRandomizeDensity(t *testing.T) {
	g := NewGrid(100, 100)
	if Population(Randomize(g, core.NewRNG(1), 0)) != 0 {
		t.Fatal("density 0 must produce an empty grid")
	}
	if Population(Randomize(g, core.NewRNG(1), 1)) != 10000 {
		t.Fatal("density 1 must fill the grid")
	}
	pop := Population(Randomize(g, core.NewRNG(1), DefaultDensity))
	if pop < 2500 || pop > 3500 {
		t.Fatalf("population %d far from expected 3000", pop)
	}
}

func TestRandomizeDeterministicForSeed(t *testing.T) {
	g := NewGrid(16, 16)
	a := Randomize(g, core.NewRNG(42), DefaultDensity)
	b := Randomize(g, core.NewRNG(42), DefaultDensity)
	if !a.Equal(b) {
		t.Fatal("same seed must produce the same board")
	}
}
