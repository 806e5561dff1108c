package sim

import (
	"fmt"
	"time"

	"lifegrid/pkg/life"
)

// Config holds the tunables of a simulation instance.
type Config struct {
	Rows int
	Cols int

	// Interval is the period between generations while running.
	Interval time.Duration
	// Density is the probability that Randomize marks a cell live.
	Density float64
	// Seed feeds the random source; zero seeds from the clock.
	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Rows:     40,
		Cols:     80,
		Interval: 500 * time.Millisecond,
		Density:  life.DefaultDensity,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Rows < 1 || c.Cols < 1 {
		return fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Rows, c.Cols)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", c.Interval)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("density must be within [0, 1], got %g", c.Density)
	}
	return nil
}
