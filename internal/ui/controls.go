package ui

import (
	"image"
	"math"
	"strconv"

	"lifegrid/internal/core"
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	commandWidth   = 84
	labelBaseline  = 24
	statusBaseline = 62
	controlsWidth  = 220
)

// Command names the actions on the control bar.
type Command int

const (
	CommandStartStop Command = iota
	CommandStep
	CommandClear
	CommandRandomize
)

var commandOrder = []Command{CommandStartStop, CommandStep, CommandClear, CommandRandomize}

// Label returns the button caption; running selects the start/stop wording.
func (c Command) Label(running bool) string {
	switch c {
	case CommandStartStop:
		if running {
			return "Stop"
		}
		return "Start"
	case CommandStep:
		return "Step"
	case CommandClear:
		return "Clear"
	case CommandRandomize:
		return "Randomize"
	default:
		return ""
	}
}

type commandButton struct {
	command Command
	rect    image.Rectangle
}

func layoutCommands() []commandButton {
	buttons := make([]commandButton, len(commandOrder))
	x := panelPadding
	for i, cmd := range commandOrder {
		buttons[i] = commandButton{
			command: cmd,
			rect:    image.Rect(x, panelPadding, x+commandWidth, panelPadding+buttonSize),
		}
		x += commandWidth + buttonGap
	}
	return buttons
}

type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

func layoutControls(controls []controlState, width int) {
	for i := range controls {
		top := i * lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		controls[i].top = top
		controls[i].minusRect = minusRect
		controls[i].plusRect = plusRect
	}
}

func refreshControls(controls []controlState, snapshot core.ParameterSnapshot) {
	for i := range controls {
		state := &controls[i]
		param, ok := snapshot.Lookup(state.control.Key)
		state.hasValue = false
		state.value = "--"
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control, parsed)
			state.hasValue = true
		}
	}
}

// stepInt returns the value one press in direction would set, clamped to the
// control's bounds. ok is false when the press would change nothing.
func stepInt(ctrl core.ParameterControl, current, direction int) (int, bool) {
	step := int(math.Round(ctrl.Step))
	if step <= 0 {
		step = 1
	}
	target := current + direction*step
	if ctrl.HasMin {
		if min := int(math.Round(ctrl.Min)); target < min {
			target = min
		}
	}
	if ctrl.HasMax {
		if max := int(math.Round(ctrl.Max)); target > max {
			target = max
		}
	}
	return target, target != current
}

// stepFloat is the floating-point counterpart of stepInt.
func stepFloat(ctrl core.ParameterControl, current float64, direction int) (float64, bool) {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	target := current + float64(direction)*step
	if ctrl.HasMin && target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	// Snap to the step grid so repeated presses do not drift.
	target = math.Round(target/step) * step
	return target, math.Abs(target-current) >= 1e-9
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
