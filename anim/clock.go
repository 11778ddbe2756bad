package anim

import (
	"sync"
	"time"
)

// Clock supplies the elapsed time, in seconds, that drives track
// evaluation. It is read once per update cycle.
type Clock interface {
	Elapsed() float64
}

// WallClock measures wall-clock seconds since the first call to Elapsed.
// There is no pause; Reset restarts the timeline on the next read.
type WallClock struct {
	mu      sync.Mutex
	start   time.Time
	started bool

	// Now defaults to time.Now.
	Now func() time.Time
}

func NewWallClock() *WallClock {
	return &WallClock{Now: time.Now}
}

func (c *WallClock) Elapsed() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if !c.started {
		c.start = now
		c.started = true
		return 0
	}
	return now.Sub(c.start).Seconds()
}

func (c *WallClock) Reset() {
	c.mu.Lock()
	c.started = false
	c.mu.Unlock()
}

func (c *WallClock) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// StepClock advances by a fixed step on each Tick, for fixed-rate hosts and
// headless runs.
type StepClock struct {
	Step  float64
	ticks uint64
}

// NewStepClock returns a clock stepping at tps ticks per second.
func NewStepClock(tps int) *StepClock {
	if tps <= 0 {
		tps = 60
	}
	return &StepClock{Step: 1 / float64(tps)}
}

func (c *StepClock) Tick() {
	c.ticks++
}

// Elapsed is computed from the tick count so it does not drift.
func (c *StepClock) Elapsed() float64 {
	return float64(c.ticks) * c.Step
}

func (c *StepClock) Reset() {
	c.ticks = 0
}
