//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"lifegrid/internal/core"
	"lifegrid/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Controls is the simulation surface the HUD drives.
type Controls interface {
	core.ParameterProvider
	core.ParameterControlsProvider
	core.IntParameterSetter
	core.FloatParameterSetter

	StartStop()
	Step()
	Clear()
	Randomize()
	State() sim.RunState
}

// HUD renders the control band above the board: command buttons, a status
// line and -/+ parameter controls.
type HUD struct {
	ctrl   Controls
	width  int
	height int
	panel  *ebiten.Image
	pixel  *ebiten.Image

	buttons  []commandButton
	controls []controlState
	snapshot core.ParameterSnapshot
}

// NewHUD constructs a HUD occupying a band of the given height.
func NewHUD(ctrl Controls, height int) *HUD {
	h := &HUD{ctrl: ctrl, height: height, buttons: layoutCommands()}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	for _, c := range ctrl.ParameterControls() {
		h.controls = append(h.controls, controlState{control: c, value: "--"})
	}
	return h
}

// Update refreshes cached values and handles clicks in the band. It reports
// whether a click was consumed.
func (h *HUD) Update(width int) bool {
	if h == nil || h.height <= 0 {
		return false
	}
	if width != h.width {
		h.width = width
		layoutControls(h.controls, width)
	}
	h.refresh()
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if my < 0 || my >= h.height {
		return false
	}
	h.handleClick(mx, my)
	h.refresh()
	return true
}

func (h *HUD) refresh() {
	h.snapshot = h.ctrl.Parameters()
	refreshControls(h.controls, h.snapshot)
}

func (h *HUD) handleClick(x, y int) {
	for _, b := range h.buttons {
		if pointInRect(x, y, b.rect) {
			h.run(b.command)
			return
		}
	}
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(x, y, state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if pointInRect(x, y, state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
}

func (h *HUD) run(cmd Command) {
	switch cmd {
	case CommandStartStop:
		h.ctrl.StartStop()
	case CommandStep:
		h.ctrl.Step()
	case CommandClear:
		h.ctrl.Clear()
	case CommandRandomize:
		h.ctrl.Randomize()
	}
}

func (h *HUD) applyAdjustment(state *controlState, direction int) {
	switch state.control.Type {
	case core.ParamTypeInt:
		if target, ok := stepInt(state.control, state.intValue, direction); ok {
			h.ctrl.SetIntParameter(state.control.Key, target)
		}
	case core.ParamTypeFloat:
		if target, ok := stepFloat(state.control, state.floatValue, direction); ok {
			h.ctrl.SetFloatParameter(state.control.Key, target)
		}
	}
}

func (h *HUD) canAdjust(state *controlState, direction int) bool {
	if !state.hasValue {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		_, ok := stepInt(state.control, state.intValue, direction)
		return ok
	case core.ParamTypeFloat:
		_, ok := stepFloat(state.control, state.floatValue, direction)
		return ok
	default:
		return false
	}
}

// Draw paints the band across the top of the screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.width <= 0 || h.height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.panel.Bounds().Dy() != h.height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(h.width, h.height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	running := h.ctrl.State() == sim.Running
	for _, b := range h.buttons {
		h.drawButton(b.rect, b.command.Label(running), true)
	}
	h.drawStatus()
	h.drawControls()

	screen.DrawImage(h.panel, &ebiten.DrawImageOptions{})
}

func (h *HUD) drawStatus() {
	value := func(key string) string {
		if p, ok := h.snapshot.Lookup(key); ok {
			return p.Value
		}
		return "--"
	}
	status := fmt.Sprintf("%s  gen %s  pop %s  %sx%s",
		value("state"), value("generation"), value("population"), value("rows"), value("cols"))
	text.Draw(h.panel, status, basicfont.Face7x13, panelPadding, statusBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	left := h.width - controlsWidth
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, left, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		h.drawButton(state.minusRect, "-", h.canAdjust(state, -1))
		h.drawButton(state.plusRect, "+", h.canAdjust(state, 1))
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
