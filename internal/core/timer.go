package core

import "time"

// Clock is a Scheduler driven by its host's frame loop. Time only moves when
// Advance or Sync is called, and tasks fire on the caller's goroutine, so a
// single-threaded host never sees a tick overlap another event.
type Clock struct {
	tasks []*task
	last  time.Time
}

type task struct {
	clock       *Clock
	step        time.Duration
	accumulator time.Duration
	fn          func()
	cancelled   bool
}

type noopHandle struct{}

func (noopHandle) Cancel() {}

// NewClock constructs an idle Clock.
func NewClock() *Clock {
	return &Clock{}
}

// Every registers fn to run once per period. Non-positive periods are
// rejected with a handle that does nothing.
func (c *Clock) Every(period time.Duration, fn func()) Canceler {
	if period <= 0 || fn == nil {
		return noopHandle{}
	}
	t := &task{clock: c, step: period, fn: fn}
	c.tasks = append(c.tasks, t)
	return t
}

// Cancel removes the task. It is safe to call more than once and from within
// the task's own callback.
func (t *task) Cancel() {
	if t.cancelled {
		return
	}
	t.cancelled = true
	t.clock.remove(t)
}

func (c *Clock) remove(t *task) {
	for i, cur := range c.tasks {
		if cur == t {
			c.tasks = append(c.tasks[:i:i], c.tasks[i+1:]...)
			return
		}
	}
}

// Active returns the number of registered tasks.
func (c *Clock) Active() int { return len(c.tasks) }

// Advance moves the clock forward by delta and fires every task once for each
// full period it has accumulated.
func (c *Clock) Advance(delta time.Duration) {
	if delta <= 0 {
		return
	}
	pending := append([]*task(nil), c.tasks...)
	for _, t := range pending {
		if t.cancelled {
			continue
		}
		t.accumulator += delta
		for t.accumulator >= t.step && !t.cancelled {
			t.accumulator -= t.step
			t.fn()
		}
	}
}

// Sync advances the clock by the wall time elapsed since the previous Sync.
// The first call only records now.
func (c *Clock) Sync(now time.Time) {
	if c.last.IsZero() {
		c.last = now
		return
	}
	delta := now.Sub(c.last)
	c.last = now
	c.Advance(delta)
}
