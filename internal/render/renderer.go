//go:build ebiten

package render

import (
	"image/color"

	pcore "lifegrid/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps one pixel per cell in an offscreen image and scales it to
// the cell size when drawing.
type GridPainter struct {
	rows, cols int
	img        *ebiten.Image
	buf        []byte
	slots      []uint8
	palette    []color.RGBA
	dirty      bool
}

// NewGridPainter allocates a painter for a rows×cols board.
func NewGridPainter(rows, cols int, palette []color.RGBA) *GridPainter {
	return &GridPainter{
		rows:    rows,
		cols:    cols,
		img:     ebiten.NewImage(cols, rows),
		buf:     make([]byte, 4*rows*cols),
		palette: palette,
	}
}

// Update uploads the board into the painter image. A board of different
// dimensions reallocates the image.
func (gp *GridPainter) Update(g *pcore.Grid) {
	if g.Rows() != gp.rows || g.Cols() != gp.cols {
		gp.img.Dispose()
		gp.rows, gp.cols = g.Rows(), g.Cols()
		gp.img = ebiten.NewImage(gp.cols, gp.rows)
		gp.buf = make([]byte, 4*gp.rows*gp.cols)
	}
	gp.slots = Slots(g, gp.slots)
	fillPaletteRGBA(gp.buf, gp.slots, gp.palette)
	gp.dirty = true
}

// Blit draws the board onto dst at (offsetX, offsetY), each cell scaled to
// cellSize pixels.
func (gp *GridPainter) Blit(dst *ebiten.Image, offsetX, offsetY, cellSize int) {
	if gp.dirty {
		gp.img.WritePixels(gp.buf)
		gp.dirty = false
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellSize), float64(cellSize))
	op.GeoM.Translate(float64(offsetX), float64(offsetY))
	dst.DrawImage(gp.img, op)
}

// Size returns the board dimensions the painter currently holds.
func (gp *GridPainter) Size() (rows, cols int) { return gp.rows, gp.cols }
