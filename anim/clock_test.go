package anim

import (
	"testing"
	"time"
)

func TestWallClockStartsOnFirstRead(t *testing.T) {
	now := time.Unix(1000, 0)
	c := &WallClock{Now: func() time.Time { return now }}

	if got := c.Elapsed(); got != 0 {
		t.Fatalf("first Elapsed() = %v, want 0", got)
	}
	now = now.Add(1500 * time.Millisecond)
	if got := c.Elapsed(); got != 1.5 {
		t.Fatalf("Elapsed() = %v, want 1.5", got)
	}

	c.Reset()
	now = now.Add(time.Hour)
	if got := c.Elapsed(); got != 0 {
		t.Fatalf("Elapsed() after Reset = %v, want 0", got)
	}
	now = now.Add(250 * time.Millisecond)
	if got := c.Elapsed(); got != 0.25 {
		t.Fatalf("Elapsed() = %v, want 0.25", got)
	}
}

func TestStepClock(t *testing.T) {
	c := NewStepClock(4)
	if c.Elapsed() != 0 {
		t.Fatalf("Elapsed() = %v, want 0", c.Elapsed())
	}
	for i := 0; i < 10; i++ {
		c.Tick()
	}
	if got := c.Elapsed(); got != 2.5 {
		t.Fatalf("Elapsed() = %v, want 2.5", got)
	}
	c.Reset()
	if c.Elapsed() != 0 {
		t.Fatalf("Elapsed() after Reset = %v", c.Elapsed())
	}
	if d := NewStepClock(0).Step; d != 1.0/60 {
		t.Fatalf("default step = %v", d)
	}
}
