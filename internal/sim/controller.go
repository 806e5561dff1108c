// Package sim owns the run state of a Game of Life board and mediates every
// host event into grid updates followed by a render.
package sim

import (
	"io"
	"log"
	"time"

	"lifegrid/internal/core"
	pcore "lifegrid/pkg/core"
	"lifegrid/pkg/life"
)

// RunState reports whether generations are advancing on their own.
type RunState int

const (
	Stopped RunState = iota
	Running
)

func (s RunState) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// RenderFunc receives the board after every state change. Grids handed to it
// are never modified afterwards and may be retained.
type RenderFunc func(g *pcore.Grid)

// Controller drives a single board. It is not safe for concurrent use; hosts
// deliver events one at a time.
type Controller struct {
	cfg    Config
	sched  core.Scheduler
	render RenderFunc
	rng    *pcore.RNG
	logger *log.Logger

	grid       *pcore.Grid
	state      RunState
	ticker     core.Canceler
	generation int
}

// New builds a stopped controller with an empty board of cfg.Rows×cfg.Cols.
// A nil render callback is replaced by a no-op.
func New(cfg Config, sched core.Scheduler, render RenderFunc) *Controller {
	def := DefaultConfig()
	if cfg.Interval <= 0 {
		cfg.Interval = def.Interval
	}
	if cfg.Density < 0 || cfg.Density > 1 {
		cfg.Density = def.Density
	}
	if render == nil {
		render = func(*pcore.Grid) {}
	}
	return &Controller{
		cfg:    cfg,
		sched:  sched,
		render: render,
		rng:    pcore.NewRNG(cfg.Seed),
		logger: log.New(io.Discard, "", 0),
		grid:   life.NewGrid(cfg.Rows, cfg.Cols),
	}
}

// SetLogger directs run-state and resize events to l.
func (c *Controller) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	c.logger = l
}

// Grid returns the current board.
func (c *Controller) Grid() *pcore.Grid { return c.grid }

// State returns the current run state.
func (c *Controller) State() RunState { return c.state }

// Generation returns the number of generations advanced since the last clear
// or resize.
func (c *Controller) Generation() int { return c.generation }

// Interval returns the current tick period.
func (c *Controller) Interval() time.Duration { return c.cfg.Interval }

// Density returns the current random-fill probability.
func (c *Controller) Density() float64 { return c.cfg.Density }

// Render re-emits the current board.
func (c *Controller) Render() { c.render(c.grid) }

// ToggleAt flips the cell at (row, col). Coordinates outside the board are
// ignored and reported with false; nothing is rendered in that case.
func (c *Controller) ToggleAt(row, col int) bool {
	if !c.grid.Contains(row, col) {
		return false
	}
	c.replace(life.Toggle(c.grid, row, col))
	return true
}

// StartStop flips the run state, scheduling or cancelling the generation
// ticker.
func (c *Controller) StartStop() {
	if c.state == Running {
		c.stop()
		return
	}
	c.start()
}

func (c *Controller) start() {
	c.state = Running
	c.schedule()
	c.logger.Printf("simulation started (interval %s)", c.cfg.Interval)
}

func (c *Controller) stop() {
	c.state = Stopped
	c.cancel()
	c.logger.Printf("simulation stopped at generation %d", c.generation)
}

func (c *Controller) schedule() {
	c.cancel()
	c.ticker = c.sched.Every(c.cfg.Interval, c.tick)
}

func (c *Controller) cancel() {
	if c.ticker == nil {
		return
	}
	c.ticker.Cancel()
	c.ticker = nil
}

func (c *Controller) tick() {
	c.generation++
	c.replace(life.Next(c.grid))
}

// Step advances a single generation regardless of the run state.
func (c *Controller) Step() { c.tick() }

// Randomize refills the board at the configured density.
func (c *Controller) Randomize() {
	c.replace(life.Randomize(c.grid, c.rng, c.cfg.Density))
}

// Clear kills every cell and resets the generation counter.
func (c *Controller) Clear() {
	c.generation = 0
	c.replace(life.Clear(c.grid.Rows(), c.grid.Cols()))
}

// Resize discards the board and starts over with an empty rows×cols grid. A
// running ticker keeps running on the new board.
func (c *Controller) Resize(rows, cols int) {
	c.generation = 0
	c.replace(life.NewGrid(rows, cols))
	c.cfg.Rows, c.cfg.Cols = c.grid.Rows(), c.grid.Cols()
	c.logger.Printf("board resized to %dx%d", c.grid.Rows(), c.grid.Cols())
}

func (c *Controller) replace(g *pcore.Grid) {
	c.grid = g
	c.render(g)
}
