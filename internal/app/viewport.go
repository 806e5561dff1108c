package app

import "lifegrid/internal/core"

const (
	// DefaultCellSize is the edge length of one cell in pixels.
	DefaultCellSize = 12
	// DefaultReservedBand is the height kept free for the control bar.
	DefaultReservedBand = 100
)

// Viewport sizes the board from the window: rows fill the height below the
// control band, columns fill the width.
type Viewport struct {
	CellSize     int
	ReservedBand int
}

func (v Viewport) cell() int {
	if v.CellSize <= 0 {
		return DefaultCellSize
	}
	return v.CellSize
}

// Dims returns the board dimensions for a window of width×height pixels,
// never less than 1×1.
func (v Viewport) Dims(width, height int) core.Dims {
	cell := v.cell()
	rows := (height - v.ReservedBand) / cell
	cols := width / cell
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return core.Dims{Rows: rows, Cols: cols}
}

// CellAt maps a screen position to board coordinates. Positions inside the
// control band or past the board report ok=false.
func (v Viewport) CellAt(x, y int, dims core.Dims) (row, col int, ok bool) {
	cell := v.cell()
	y -= v.ReservedBand
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y/cell, x/cell
	if row >= dims.Rows || col >= dims.Cols {
		return 0, 0, false
	}
	return row, col, true
}
