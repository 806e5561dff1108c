package app

import (
	"flag"
	"fmt"
	"time"

	"lifegrid/internal/sim"
	"lifegrid/pkg/life"
)

// Config represents the command-line parameters for the windowed application.
type Config struct {
	Width    int
	Height   int
	Cell     int
	Reserved int
	TPS      int
	Interval time.Duration
	Density  float64
	Seed     int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:    960,
		Height:   720,
		Cell:     DefaultCellSize,
		Reserved: DefaultReservedBand,
		TPS:      60,
		Interval: 500 * time.Millisecond,
		Density:  life.DefaultDensity,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "initial window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height in pixels")
	fs.IntVar(&c.Cell, "cell", c.Cell, "cell size in pixels")
	fs.IntVar(&c.Reserved, "reserved", c.Reserved, "height of the control band in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between generations while running")
	fs.Float64Var(&c.Density, "density", c.Density, "probability of a live cell when randomizing")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomize (0 uses the clock)")
}

// Viewport returns the sizing policy described by the configuration.
func (c *Config) Viewport() Viewport {
	return Viewport{CellSize: c.Cell, ReservedBand: c.Reserved}
}

// Sim derives the simulation configuration for the initial window size.
func (c *Config) Sim() sim.Config {
	dims := c.Viewport().Dims(c.Width, c.Height)
	return sim.Config{
		Rows:     dims.Rows,
		Cols:     dims.Cols,
		Interval: c.Interval,
		Density:  c.Density,
		Seed:     c.Seed,
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Cell < 1 {
		return fmt.Errorf("cell size must be positive, got %d", c.Cell)
	}
	if c.Reserved < 0 {
		return fmt.Errorf("reserved band must not be negative, got %d", c.Reserved)
	}
	if c.TPS < 1 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if err := c.Sim().Validate(); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}
	return nil
}
