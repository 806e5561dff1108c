// Package life implements Conway's Game of Life (B3/S23) on a toroidal grid.
//
// Every operation is pure: the input grid is never modified and a fresh grid
// is returned, so a generation is always computed from an untouched copy of
// the previous one.
package life

import "lifegrid/pkg/core"

// DefaultDensity is the probability that Randomize marks a cell live.
const DefaultDensity = 0.3

// NewGrid returns a rows×cols grid with every cell dead.
func NewGrid(rows, cols int) *core.Grid {
	return core.NewGrid(rows, cols)
}

// Clear is equivalent to NewGrid.
func Clear(rows, cols int) *core.Grid {
	return core.NewGrid(rows, cols)
}

// Toggle returns a copy of g with the cell at (row, col) flipped. It panics
// when the coordinates are outside the grid.
func Toggle(g *core.Grid, row, col int) *core.Grid {
	out := g.Clone()
	out.Set(row, col, !g.Alive(row, col))
	return out
}

// CountNeighbors counts live cells among the eight neighbours of (row, col),
// wrapping across opposite edges.
func CountNeighbors(g *core.Grid, row, col int) int {
	cols := g.Cols()
	cells := g.Cells()
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := g.Wrap(row+dr, col+dc)
			if cells[nr*cols+nc] {
				n++
			}
		}
	}
	return n
}

// Next advances g by one generation. A live cell survives with two or three
// live neighbours; a dead cell is born with exactly three.
func Next(g *core.Grid) *core.Grid {
	rows, cols := g.Rows(), g.Cols()
	cur := g.Cells()
	out := core.NewGrid(rows, cols)
	nxt := out.Cells()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			neighbors := CountNeighbors(g, r, c)
			idx := r*cols + c
			if cur[idx] {
				nxt[idx] = neighbors == 2 || neighbors == 3
			} else {
				nxt[idx] = neighbors == 3
			}
		}
	}
	return out
}

// Randomize returns a grid shaped like g where each cell is live with
// probability density.
func Randomize(g *core.Grid, rng *core.RNG, density float64) *core.Grid {
	out := core.NewGrid(g.Rows(), g.Cols())
	core.FillChance(rng, out.Cells(), density)
	return out
}

// Population returns the number of live cells.
func Population(g *core.Grid) int {
	n := 0
	for _, alive := range g.Cells() {
		if alive {
			n++
		}
	}
	return n
}
