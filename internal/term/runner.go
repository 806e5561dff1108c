package term

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/sim"
	pcore "lifegrid/pkg/core"
	"lifegrid/pkg/life"
)

// Runner owns a controller on a single goroutine: commands, clock ticks and
// frame emission are all serialized through Run.
type Runner struct {
	cfg    *Config
	clock  *core.Clock
	ctrl   *sim.Controller
	logger *log.Logger
	dirty  *pcore.Grid
}

// NewRunner builds a runner with a stopped, empty board.
func NewRunner(cfg *Config, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	r := &Runner{cfg: cfg, clock: core.NewClock(), logger: logger}
	r.ctrl = sim.New(cfg.Sim, r.clock, r.onRender)
	r.ctrl.SetLogger(logger)
	return r
}

// Controller exposes the underlying controller.
func (r *Runner) Controller() *sim.Controller { return r.ctrl }

func (r *Runner) onRender(g *pcore.Grid) { r.dirty = g }

// Apply executes one command. It reports false for OpQuit.
func (r *Runner) Apply(cmd Command) (bool, error) {
	switch cmd.Op {
	case OpStartStop:
		r.ctrl.StartStop()
	case OpStep:
		r.ctrl.Step()
	case OpClear:
		r.ctrl.Clear()
	case OpRandomize:
		r.ctrl.Randomize()
	case OpToggle:
		if !r.ctrl.ToggleAt(cmd.Row, cmd.Col) {
			g := r.ctrl.Grid()
			return true, fmt.Errorf("cell (%d,%d) is outside the %dx%d board", cmd.Row, cmd.Col, g.Rows(), g.Cols())
		}
	case OpQuit:
		return false, nil
	}
	// Run-state changes do not render, but the status line should follow.
	r.dirty = r.ctrl.Grid()
	return true, nil
}

// Status summarizes the run state for the line under the board.
func (r *Runner) Status() string {
	g := r.ctrl.Grid()
	return fmt.Sprintf("%s  gen %d  pop %d  %dx%d  [s]tart/stop [n]ext [c]lear [r]andom [t] row col [q]uit",
		r.ctrl.State(), r.ctrl.Generation(), life.Population(g), g.Rows(), g.Cols())
}

// Run processes commands and clock ticks until ctx is done or a quit command
// arrives. A closed cmds channel leaves the board running on its own. A frame
// is sent whenever the board changed since the previous one.
func (r *Runner) Run(ctx context.Context, cmds <-chan Command, frames chan<- string) error {
	defer close(frames)

	if r.cfg.Random {
		r.ctrl.Randomize()
	}
	if r.cfg.Run {
		r.ctrl.StartStop()
	}
	r.ctrl.Render()

	ticker := time.NewTicker(r.cfg.frameInterval())
	defer ticker.Stop()
	r.clock.Sync(time.Now())

	for {
		if r.dirty != nil {
			frame := Frame(r.dirty, r.Status())
			r.dirty = nil
			select {
			case frames <- frame:
			case <-ctx.Done():
				return nil
			}
		}
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			r.clock.Sync(now)
		case cmd, ok := <-cmds:
			if !ok {
				cmds = nil
				continue
			}
			more, err := r.Apply(cmd)
			if err != nil {
				r.logger.Print(err)
			}
			if !more {
				return nil
			}
		}
	}
}
