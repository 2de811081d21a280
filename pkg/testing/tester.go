package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/spantween/pkg/animation"
	"github.com/go-drift/spantween/pkg/ecs"
	"github.com/go-drift/spantween/pkg/world"
)

// DefaultFrame is the frame interval used by PumpAndSettle.
const DefaultFrame = 16 * time.Millisecond

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: players still active")

// Tester drives a world from a fake clock through an animation ticker,
// the same way a host frame loop does.
type Tester struct {
	world     *world.World
	clock     *FakeClock
	prevClock animation.Clock
	ticker    *animation.Ticker
	resolved  []ecs.Entity
}

// NewTester creates a tester for w and installs its fake clock.
// Call Cleanup() when done, or use NewTesterWithT() instead.
func NewTester(w *world.World) *Tester {
	clk := NewFakeClock()
	t := &Tester{
		world: w,
		clock: clk,
	}
	t.prevClock = animation.SetClock(clk)
	t.ticker = animation.NewTicker(func(delta time.Duration) {
		t.resolved = w.Update(delta)
	})
	t.ticker.Start()
	return t
}

// NewTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewTesterWithT(t *testing.T, w *world.World) *Tester {
	tester := NewTester(w)
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup stops the ticker and restores the animation clock.
func (t *Tester) Cleanup() {
	t.ticker.Stop()
	animation.SetClock(t.prevClock)
}

// World returns the world under test.
func (t *Tester) World() *world.World {
	return t.world
}

// Clock returns the fake clock for advancing time in tests.
func (t *Tester) Clock() *FakeClock {
	return t.clock
}

// Resolved returns the span entities resolved by the most recent frame.
func (t *Tester) Resolved() []ecs.Entity {
	return t.resolved
}

// Pump runs one frame with whatever time has been advanced since the
// previous frame.
func (t *Tester) Pump() {
	t.resolved = nil
	animation.StepTickers()
}

// PumpFrames advances the clock by frame and pumps, n times.
func (t *Tester) PumpFrames(n int, frame time.Duration) {
	for k := 0; k < n; k++ {
		t.clock.Advance(frame)
		t.Pump()
	}
}

// PumpAndSettle runs frames until no player is active or the timeout is
// reached. Each frame advances the fake clock by DefaultFrame.
// Returns ErrSettleTimeout if the world does not settle within timeout.
func (t *Tester) PumpAndSettle(timeout time.Duration) error {
	deadline := t.clock.Elapsed() + timeout
	for t.clock.Elapsed() < deadline {
		if !t.world.HasActivePlayers() {
			return nil
		}
		t.clock.Advance(DefaultFrame)
		t.Pump()
	}
	if t.world.HasActivePlayers() {
		return ErrSettleTimeout
	}
	return nil
}
