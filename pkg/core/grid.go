package core

import "fmt"

// Grid stores a rows×cols board of live/dead cells in row-major order.
type Grid struct {
	rows, cols int
	data       []bool
}

// NewGrid allocates an all-dead grid. Non-positive dimensions are raised to 1.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Grid{rows: rows, cols: cols, data: make([]bool, rows*cols)}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Contains reports whether (row, col) lies on the board.
func (g *Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Index returns the linear index for (row, col). It panics when the
// coordinates are off the board so a bad column can never alias a cell in
// the next row.
func (g *Grid) Index(row, col int) int {
	if !g.Contains(row, col) {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", row, col, g.rows, g.cols))
	}
	return row*g.cols + col
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.rows + g.rows) % g.rows
	col = (col%g.cols + g.cols) % g.cols
	return row, col
}

// Alive reports whether the cell at (row, col) is live.
func (g *Grid) Alive(row, col int) bool { return g.data[g.Index(row, col)] }

// Set assigns the cell at (row, col).
func (g *Grid) Set(row, col int, alive bool) { g.data[g.Index(row, col)] = alive }

// Cells exposes the backing slice in row-major order.
func (g *Grid) Cells() []bool { return g.data }

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{rows: g.rows, cols: g.cols, data: make([]bool, len(g.data))}
	copy(c.data, g.data)
	return c
}

// Equal reports whether both grids have the same shape and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i, v := range g.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}
