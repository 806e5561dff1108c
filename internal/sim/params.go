package sim

import (
	"time"

	"lifegrid/internal/core"
	"lifegrid/pkg/life"
)

const (
	paramInterval = "interval_ms"
	paramDensity  = "density"

	minIntervalMS = 50
	maxIntervalMS = 5000
)

// Parameters reports the board and run state for display.
func (c *Controller) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				core.IntParam("rows", "Rows", c.grid.Rows()),
				core.IntParam("cols", "Cols", c.grid.Cols()),
				core.IntParam("generation", "Generation", c.generation),
				core.IntParam("population", "Population", life.Population(c.grid)),
			},
		},
		{
			Name: "Simulation",
			Params: []core.Parameter{
				core.TextParam("state", "State", c.state.String()),
				core.IntParam(paramInterval, "Interval (ms)", int(c.cfg.Interval/time.Millisecond)),
				core.FloatParam(paramDensity, "Density", c.cfg.Density),
			},
		},
	}}
}

// ParameterControls lists the values the HUD may adjust.
func (c *Controller) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: paramInterval, Label: "Interval (ms)", Type: core.ParamTypeInt, Step: 50, Min: minIntervalMS, Max: maxIntervalMS, HasMin: true, HasMax: true},
		{Key: paramDensity, Label: "Density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer tunable. Changing the interval while
// running replaces the ticker so only one stays active.
func (c *Controller) SetIntParameter(key string, value int) bool {
	if key != paramInterval || value < minIntervalMS || value > maxIntervalMS {
		return false
	}
	c.cfg.Interval = time.Duration(value) * time.Millisecond
	if c.state == Running {
		c.schedule()
	}
	c.logger.Printf("interval set to %s", c.cfg.Interval)
	return true
}

// SetFloatParameter updates a floating-point tunable.
func (c *Controller) SetFloatParameter(key string, value float64) bool {
	if key != paramDensity || value < 0 || value > 1 {
		return false
	}
	c.cfg.Density = value
	return true
}
