// Package render turns a board into pixels. The palette mapping is plain Go;
// the ebiten painter lives behind the ebiten build tag.
package render

import (
	"image/color"

	pcore "lifegrid/pkg/core"
	"lifegrid/pkg/life"
)

// Palette indices: dead cells use slot 0, live cells use 1+Level.
const (
	slotDead = 0
	slotLive = 1
)

// DefaultPalette colours dead cells, undecorated live cells and the four
// neighbour levels from sparse to crowded.
func DefaultPalette() []color.RGBA {
	return []color.RGBA{
		{R: 18, G: 18, B: 22, A: 255},
		{R: 200, G: 200, B: 200, A: 255},
		{R: 120, G: 200, B: 255, A: 255},
		{R: 90, G: 220, B: 120, A: 255},
		{R: 250, G: 200, B: 70, A: 255},
		{R: 240, G: 80, B: 70, A: 255},
	}
}

// Slots converts a board into palette indices, one per cell in row-major
// order, reusing buf when it is large enough.
func Slots(g *pcore.Grid, buf []uint8) []uint8 {
	n := g.Rows() * g.Cols()
	if cap(buf) < n {
		buf = make([]uint8, n)
	}
	buf = buf[:n]
	for i, v := range life.Describe(g) {
		if !v.Alive {
			buf[i] = slotDead
			continue
		}
		buf[i] = slotLive + uint8(v.Level)
	}
	return buf
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range buf {
			buf[i] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
