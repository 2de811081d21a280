package testing

import (
	"sync"
	"time"
)

// Epoch is the instant every FakeClock starts at.
var Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// FakeClock is a manually advanced [animation.Clock]. Timelines only see
// the deltas between readings, so the absolute instant never matters.
// All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock reading Epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: Epoch}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Elapsed returns how far the clock has moved past Epoch.
func (c *FakeClock) Elapsed() time.Duration {
	return c.Now().Sub(Epoch)
}

// Advance moves the clock forward by d. Negative values are ignored;
// a timeline is rewound through its direction, not its clock.
func (c *FakeClock) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set moves the clock to t. Earlier instants are accepted so tests can
// simulate a host clock jumping backwards.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}
