package animation

import (
	"sync"
	"time"
)

// Clock provides time for frame tickers. The default implementation uses
// system time. Tests and offline runs inject their own clock via SetClock
// to control frame deltas deterministically.
type Clock interface {
	Now() time.Time
}

// realClock uses system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

var (
	clockMu sync.RWMutex
	// clock is the package-level time source, replaceable for testing.
	clock Clock = realClock{}
)

// SetClock replaces the frame clock. Returns the previous clock
// so callers can restore it during cleanup.
func SetClock(c Clock) Clock {
	clockMu.Lock()
	defer clockMu.Unlock()
	prev := clock
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time {
	clockMu.RLock()
	defer clockMu.RUnlock()
	return clock.Now()
}

// StepClock is a Clock that only moves when Step is called. It drives
// offline simulations where every frame has the same delta.
type StepClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// NewStepClock returns a clock that advances by step on each Step call.
func NewStepClock(step time.Duration) *StepClock {
	return &StepClock{now: time.Unix(0, 0).UTC(), step: step}
}

// Now returns the current simulated time.
func (c *StepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Step advances the clock by one frame.
func (c *StepClock) Step() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(c.step)
}

// Interval returns the per-frame step.
func (c *StepClock) Interval() time.Duration {
	return c.step
}
