package term

import (
	"flag"
	"fmt"
	"time"

	"lifegrid/internal/sim"
)

// Config represents the command-line parameters for the terminal host.
type Config struct {
	Sim    sim.Config
	FPS    int
	Random bool
	Run    bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	sc := sim.DefaultConfig()
	sc.Rows, sc.Cols = 24, 40
	return &Config{Sim: sc, FPS: 20}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Sim.Rows, "rows", c.Sim.Rows, "board rows")
	fs.IntVar(&c.Sim.Cols, "cols", c.Sim.Cols, "board columns")
	fs.DurationVar(&c.Sim.Interval, "interval", c.Sim.Interval, "time between generations while running")
	fs.Float64Var(&c.Sim.Density, "density", c.Sim.Density, "probability of a live cell when randomizing")
	fs.Int64Var(&c.Sim.Seed, "seed", c.Sim.Seed, "seed for randomize (0 uses the clock)")
	fs.IntVar(&c.FPS, "fps", c.FPS, "terminal refresh rate")
	fs.BoolVar(&c.Random, "random", c.Random, "randomize the board on start")
	fs.BoolVar(&c.Run, "run", c.Run, "start running immediately")
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.FPS < 1 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	return c.Sim.Validate()
}

func (c *Config) frameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}
