package animation

import (
	"testing"
	"time"
)

func TestTickerDelta(t *testing.T) {
	clock := NewStepClock(16 * time.Millisecond)
	prev := SetClock(clock)
	defer SetClock(prev)

	var deltas []time.Duration
	ticker := NewTicker(func(d time.Duration) {
		deltas = append(deltas, d)
	})
	ticker.Start()
	defer ticker.Stop()

	clock.Step()
	StepTickers()
	clock.Step()
	clock.Step()
	StepTickers()

	if len(deltas) != 2 || deltas[0] != 16*time.Millisecond || deltas[1] != 32*time.Millisecond {
		t.Errorf("deltas = %v", deltas)
	}
	if ticker.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", ticker.Frames())
	}
}

func TestTickerMaxDelta(t *testing.T) {
	clock := NewStepClock(time.Second)
	prev := SetClock(clock)
	defer SetClock(prev)

	var got time.Duration
	ticker := NewTicker(func(d time.Duration) { got = d })
	ticker.MaxDelta = 100 * time.Millisecond
	ticker.Start()
	defer ticker.Stop()

	clock.Step()
	StepTickers()
	if got != 100*time.Millisecond {
		t.Errorf("delta = %v, want capped 100ms", got)
	}
}

func TestTickerStop(t *testing.T) {
	clock := NewStepClock(time.Millisecond)
	prev := SetClock(clock)
	defer SetClock(prev)

	calls := 0
	ticker := NewTicker(func(time.Duration) { calls++ })
	ticker.Start()
	if !ticker.IsActive() || !HasActiveTickers() {
		t.Fatal("ticker should be active after Start")
	}
	ticker.Stop()
	clock.Step()
	StepTickers()
	if calls != 0 {
		t.Errorf("stopped ticker was called %d times", calls)
	}
	if ticker.IsActive() {
		t.Error("ticker should be inactive after Stop")
	}
}
