package core

import "time"

// Dims describes the dimensions of a board in cells.
type Dims struct {
	Rows int
	Cols int
}

// Canceler stops a scheduled repeating task.
type Canceler interface {
	Cancel()
}

// Scheduler runs fn every period until the returned handle is cancelled.
// Cancellation takes effect before the next tick would fire.
type Scheduler interface {
	Every(period time.Duration, fn func()) Canceler
}
