package sim

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"

	"lifegrid/internal/core"
	pcore "lifegrid/pkg/core"
	"lifegrid/pkg/life"
)

type recorder struct {
	frames []*pcore.Grid
}

func (r *recorder) render(g *pcore.Grid) { r.frames = append(r.frames, g) }

func (r *recorder) last() *pcore.Grid { return r.frames[len(r.frames)-1] }

func newTestController(rows, cols int) (*Controller, *core.Clock, *recorder) {
	clock := core.NewClock()
	rec := &recorder{}
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols, cfg.Seed = rows, cols, 11
	return New(cfg, clock, rec.render), clock, rec
}

func TestNewStartsStoppedAndEmpty(t *testing.T) {
	c, clock, rec := newTestController(4, 6)
	if c.State() != Stopped {
		t.Fatalf("state = %s, want stopped", c.State())
	}
	if c.Grid().Rows() != 4 || c.Grid().Cols() != 6 {
		t.Fatalf("dims = %dx%d", c.Grid().Rows(), c.Grid().Cols())
	}
	if life.Population(c.Grid()) != 0 {
		t.Fatal("new board must be empty")
	}
	if clock.Active() != 0 || len(rec.frames) != 0 {
		t.Fatal("construction must not schedule or render")
	}
}

func TestToggleAtRendersInEitherState(t *testing.T) {
	c, _, rec := newTestController(5, 5)
	if !c.ToggleAt(1, 2) {
		t.Fatal("ToggleAt rejected an in-range cell")
	}
	if !rec.last().Alive(1, 2) || len(rec.frames) != 1 {
		t.Fatal("toggle was not rendered")
	}
	c.StartStop()
	c.ToggleAt(1, 2)
	if rec.last().Alive(1, 2) || len(rec.frames) != 2 {
		t.Fatal("toggle while running was not applied")
	}
}

func TestToggleAtIgnoresOutOfRange(t *testing.T) {
	c, _, rec := newTestController(3, 3)
	for _, p := range [][2]int{{-1, 0}, {0, 3}, {3, 0}} {
		if c.ToggleAt(p[0], p[1]) {
			t.Fatalf("ToggleAt(%d,%d) accepted", p[0], p[1])
		}
	}
	if len(rec.frames) != 0 || life.Population(c.Grid()) != 0 {
		t.Fatal("out-of-range toggles must not change or render the board")
	}
}

func TestStartStopSchedulesOneTicker(t *testing.T) {
	c, clock, _ := newTestController(5, 5)
	c.StartStop()
	if c.State() != Running || clock.Active() != 1 {
		t.Fatalf("after start: state=%s active=%d", c.State(), clock.Active())
	}
	c.StartStop()
	if c.State() != Stopped || clock.Active() != 0 {
		t.Fatalf("after stop: state=%s active=%d", c.State(), clock.Active())
	}
}

func TestRunningAdvancesEveryInterval(t *testing.T) {
	c, clock, rec := newTestController(5, 5)
	c.ToggleAt(2, 1)
	c.ToggleAt(2, 2)
	c.ToggleAt(2, 3)
	rec.frames = nil

	c.StartStop()
	clock.Advance(499 * time.Millisecond)
	if len(rec.frames) != 0 {
		t.Fatal("ticked before the interval elapsed")
	}
	clock.Advance(time.Millisecond)
	if len(rec.frames) != 1 || c.Generation() != 1 {
		t.Fatalf("frames=%d generation=%d after one interval", len(rec.frames), c.Generation())
	}
	g := c.Grid()
	if !g.Alive(1, 2) || !g.Alive(3, 2) || g.Alive(2, 1) {
		t.Fatal("blinker did not rotate on tick")
	}

	clock.Advance(time.Second)
	if c.Generation() != 3 {
		t.Fatalf("generation = %d, want 3", c.Generation())
	}
}

func TestStopCancelsBeforeNextTick(t *testing.T) {
	c, clock, rec := newTestController(4, 4)
	c.StartStop()
	clock.Advance(400 * time.Millisecond)
	c.StartStop()
	clock.Advance(10 * time.Second)
	if len(rec.frames) != 0 || c.Generation() != 0 {
		t.Fatalf("ticked %d times after stop", len(rec.frames))
	}
}

func TestRestartSchedulesFreshTicker(t *testing.T) {
	c, clock, _ := newTestController(4, 4)
	c.StartStop()
	clock.Advance(400 * time.Millisecond)
	c.StartStop()
	c.StartStop()
	clock.Advance(400 * time.Millisecond)
	if c.Generation() != 0 {
		t.Fatal("restart must not inherit the cancelled ticker's progress")
	}
	if clock.Active() != 1 {
		t.Fatalf("active tickers = %d, want 1", clock.Active())
	}
}

func TestRandomizeAndClearKeepRunState(t *testing.T) {
	c, clock, rec := newTestController(20, 20)
	c.StartStop()
	c.Randomize()
	if life.Population(c.Grid()) == 0 {
		t.Fatal("randomize produced an empty board")
	}
	c.Clear()
	if life.Population(c.Grid()) != 0 {
		t.Fatal("clear left live cells")
	}
	if c.State() != Running || clock.Active() != 1 {
		t.Fatal("randomize/clear must not change the run state")
	}
	if len(rec.frames) != 2 {
		t.Fatalf("frames = %d, want 2", len(rec.frames))
	}
}

func TestResizeDiscardsBoardAndKeepsTicking(t *testing.T) {
	c, clock, rec := newTestController(5, 5)
	c.Randomize()
	c.StartStop()
	c.Resize(8, 3)
	g := rec.last()
	if g.Rows() != 8 || g.Cols() != 3 || life.Population(g) != 0 {
		t.Fatalf("resize rendered %dx%d with %d live cells", g.Rows(), g.Cols(), life.Population(g))
	}
	if c.State() != Running {
		t.Fatal("resize changed the run state")
	}
	clock.Advance(500 * time.Millisecond)
	if c.Grid().Rows() != 8 || c.Generation() != 1 {
		t.Fatal("ticker did not continue on the resized board")
	}
}

func TestRenderedGridsAreNotMutated(t *testing.T) {
	c, clock, rec := newTestController(5, 5)
	c.ToggleAt(0, 0)
	first := rec.last()
	snapshot := first.Clone()
	c.ToggleAt(0, 1)
	c.StartStop()
	clock.Advance(time.Second)
	if !first.Equal(snapshot) {
		t.Fatal("a previously rendered grid was modified")
	}
}

func TestSetIntervalWhileRunning(t *testing.T) {
	c, clock, _ := newTestController(5, 5)
	c.StartStop()
	if !c.SetIntParameter("interval_ms", 100) {
		t.Fatal("interval update rejected")
	}
	if clock.Active() != 1 {
		t.Fatalf("active tickers = %d, want 1", clock.Active())
	}
	clock.Advance(300 * time.Millisecond)
	if c.Generation() != 3 {
		t.Fatalf("generation = %d, want 3", c.Generation())
	}
	if c.SetIntParameter("interval_ms", 10) || c.SetIntParameter("rows", 100) {
		t.Fatal("invalid parameter update accepted")
	}
}

func TestSetDensity(t *testing.T) {
	c, _, _ := newTestController(10, 10)
	if !c.SetFloatParameter("density", 1) {
		t.Fatal("density update rejected")
	}
	c.Randomize()
	if life.Population(c.Grid()) != 100 {
		t.Fatal("density 1 must fill the board")
	}
	if c.SetFloatParameter("density", 1.5) {
		t.Fatal("density above 1 accepted")
	}
}

func TestParametersSnapshot(t *testing.T) {
	c, _, _ := newTestController(6, 7)
	c.ToggleAt(0, 0)
	c.StartStop()
	snap := c.Parameters()
	want := map[string]string{
		"rows":        "6",
		"cols":        "7",
		"population":  "1",
		"state":       "running",
		"interval_ms": "500",
		"density":     "0.3",
	}
	for key, value := range want {
		p, ok := snap.Lookup(key)
		if !ok {
			t.Fatalf("parameter %q missing", key)
		}
		if p.Value != value {
			t.Errorf("%s = %q, want %q", key, p.Value, value)
		}
	}
}

func TestLoggerRecordsTransitions(t *testing.T) {
	c, _, _ := newTestController(3, 3)
	var buf bytes.Buffer
	c.SetLogger(log.New(&buf, "", 0))
	c.StartStop()
	c.StartStop()
	c.Resize(2, 2)
	out := buf.String()
	for _, want := range []string{"started", "stopped", "resized to 2x2"} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q missing %q", out, want)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	bad := []Config{
		{Rows: 0, Cols: 1, Interval: time.Second},
		{Rows: 1, Cols: 1, Interval: 0},
		{Rows: 1, Cols: 1, Interval: time.Second, Density: 2},
	}
	for i, cfg := range bad {
		if cfg.Validate() == nil {
			t.Errorf("case %d: expected error", i)
		}
	}
}
