//go:build ebiten

package ui

import (
	"image/color"

	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws optional guides on top of the board: cell grid lines and a
// highlight around the hovered cell.
type Overlay struct {
	showGrid bool
	hoverRow int
	hoverCol int
	hovering bool
}

// NewOverlay constructs an overlay with grid lines hidden.
func NewOverlay() *Overlay { return &Overlay{} }

// ToggleGrid shows or hides the cell grid lines.
func (o *Overlay) ToggleGrid() { o.showGrid = !o.showGrid }

// Hover records the cell under the cursor; ok=false clears the highlight.
func (o *Overlay) Hover(row, col int, ok bool) {
	o.hoverRow, o.hoverCol, o.hovering = row, col, ok
}

// Draw renders the overlay for a board of dims cells whose top-left corner
// sits at offsetY.
func (o *Overlay) Draw(screen *ebiten.Image, dims core.Dims, offsetY, cell int) {
	if cell <= 0 {
		return
	}
	w := float32(dims.Cols * cell)
	h := float32(dims.Rows * cell)
	top := float32(offsetY)
	if o.showGrid && cell >= 4 {
		line := color.RGBA{R: 48, G: 48, B: 56, A: 255}
		for c := 0; c <= dims.Cols; c++ {
			x := float32(c * cell)
			vector.StrokeLine(screen, x, top, x, top+h, 1, line, false)
		}
		for r := 0; r <= dims.Rows; r++ {
			y := top + float32(r*cell)
			vector.StrokeLine(screen, 0, y, w, y, 1, line, false)
		}
	}
	if o.hovering {
		x := float32(o.hoverCol * cell)
		y := top + float32(o.hoverRow*cell)
		vector.StrokeRect(screen, x, y, float32(cell), float32(cell), 1, color.RGBA{R: 255, G: 255, B: 255, A: 160}, false)
	}
}
