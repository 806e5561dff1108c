package life

import (
	"strconv"

	"lifegrid/pkg/core"
)

// Level is the display band of a live cell derived from its neighbour count.
type Level uint8

const (
	LevelNone Level = iota
	Level1
	Level2
	Level3
	Level4
)

// NeighborLevel maps a neighbour count onto its display band:
// 0 → none, 1–2 → 1, 3–4 → 2, 5–6 → 3, 7–8 → 4.
func NeighborLevel(neighbors int) Level {
	switch {
	case neighbors <= 0:
		return LevelNone
	case neighbors <= 2:
		return Level1
	case neighbors <= 4:
		return Level2
	case neighbors <= 6:
		return Level3
	default:
		return Level4
	}
}

// Class returns the presentation class name, empty for LevelNone.
func (l Level) Class() string {
	if l == LevelNone {
		return ""
	}
	return "level-" + strconv.Itoa(int(l))
}

// CellView describes how a single cell should be presented.
type CellView struct {
	Row, Col  int
	Alive     bool
	Neighbors int
	Level     Level
}

// Describe returns one view per cell in row-major order. Dead cells always
// carry LevelNone.
func Describe(g *core.Grid) []CellView {
	rows, cols := g.Rows(), g.Cols()
	cells := g.Cells()
	views := make([]CellView, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			n := CountNeighbors(g, r, c)
			v := CellView{Row: r, Col: c, Alive: cells[r*cols+c], Neighbors: n}
			if v.Alive {
				v.Level = NeighborLevel(n)
			}
			views = append(views, v)
		}
	}
	return views
}
