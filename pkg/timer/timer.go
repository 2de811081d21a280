// Package timer provides the playback clock that drives span tweens.
//
// A [Timer] tracks elapsed time within [0, Duration], the direction of
// play, a speed multiplier, and an optional [Repeat] policy. Each call to
// [Timer.Tick] advances it and records an [Elapsed] sample (previous and
// current instant plus the repeat style applied this tick), which span
// resolution reads.
package timer

import (
	"fmt"
	"time"
)

// Direction is the direction of play.
type Direction int8

const (
	// Forward plays from 0 toward Duration.
	Forward Direction = iota
	// Backward plays from Duration toward 0.
	Backward
)

// String returns a human-readable representation of the direction.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Forward {
		return Backward
	}
	return Forward
}

// RepeatStyle selects what happens when a repeating timer reaches an edge.
type RepeatStyle int8

const (
	// RepeatNone means no repeat style. On a timer it falls back to
	// WrapAround; on an [Elapsed] sample it means no repeat happened.
	RepeatNone RepeatStyle = iota
	// WrapAround restarts from the opposite edge.
	WrapAround
	// PingPong reflects off the edge and reverses direction.
	PingPong
)

// String returns a human-readable representation of the repeat style.
func (s RepeatStyle) String() string {
	switch s {
	case RepeatNone:
		return "none"
	case WrapAround:
		return "wrap_around"
	case PingPong:
		return "ping_pong"
	default:
		return fmt.Sprintf("RepeatStyle(%d)", int(s))
	}
}

// TickResult is the outcome of a single [Timer.Tick].
type TickResult int

const (
	// Continue means the timer moved without reaching an edge.
	Continue TickResult = iota
	// Repeated means the timer reached an edge and repeated.
	Repeated
	// AllDone means the timer reached an edge with no repeat left.
	AllDone
)

// String returns a human-readable representation of the tick result.
func (r TickResult) String() string {
	switch r {
	case Continue:
		return "continue"
	case Repeated:
		return "repeated"
	case AllDone:
		return "all_done"
	default:
		return fmt.Sprintf("TickResult(%d)", int(r))
	}
}

// Elapsed is the sample recorded by the most recent tick.
type Elapsed struct {
	// Previous is the instant before the tick.
	Previous time.Duration
	// Now is the instant after the tick.
	Now time.Duration
	// Repeat is the style applied during the tick, or RepeatNone.
	Repeat RepeatStyle
}

// Timer is the playback clock of a span tween player.
//
// Create timers with [New]; the zero value has a zero SpeedScale and never
// advances.
type Timer struct {
	// Paused stops the player from ticking the timer.
	Paused bool
	// Duration is the length of one cycle.
	Duration time.Duration
	// SpeedScale multiplies the frame delta before ticking (default 1).
	SpeedScale float64
	// Direction is the current direction of play. PingPong repeats flip it.
	Direction Direction
	// Repeat is the repeat policy, or nil to play once.
	Repeat *Repeat
	// RepeatStyle is the style used when repeating.
	RepeatStyle RepeatStyle

	elapsed Elapsed
}

// New returns a forward, non-repeating timer of the given duration.
func New(duration time.Duration) *Timer {
	return &Timer{
		Duration:   duration,
		SpeedScale: 1,
	}
}

// Elapsed returns the sample recorded by the most recent tick.
func (t *Timer) Elapsed() Elapsed {
	return t.elapsed
}

// SetElapsed seeks the timer to d, clamped to [0, Duration]. Both Previous
// and Now are set so the next tick starts from d.
func (t *Timer) SetElapsed(d time.Duration) {
	d = t.clamp(d)
	t.elapsed = Elapsed{Previous: d, Now: d}
}

// IsAllDone reports whether the timer is at its terminal edge for the
// current direction with no repeat left.
func (t *Timer) IsAllDone() bool {
	if t.Repeat != nil && !t.Repeat.Exhausted() && t.Duration > 0 {
		return false
	}
	if t.Direction == Forward {
		return t.elapsed.Now >= t.Duration
	}
	return t.elapsed.Now <= 0
}

// Tick advances the timer by delta in direction dir and records the new
// elapsed sample.
//
// Repeating more than once within a single tick is folded into one
// repeat; very long deltas on very short timers lose cycles.
func (t *Timer) Tick(delta time.Duration, dir Direction) TickResult {
	now := t.elapsed.Now
	if t.IsAllDone() {
		t.elapsed = Elapsed{Previous: now, Now: now}
		return AllDone
	}

	var next time.Duration
	var atEdge bool
	if dir == Forward {
		next = now + delta
		atEdge = next >= t.Duration
	} else {
		next = now - delta
		atEdge = next <= 0
	}

	t.elapsed = Elapsed{Previous: now}
	if !atEdge {
		t.elapsed.Now = next
		return Continue
	}

	if t.Duration <= 0 || t.Repeat == nil || !t.Repeat.advance() {
		if dir == Forward {
			t.elapsed.Now = max(t.Duration, 0)
		} else {
			t.elapsed.Now = 0
		}
		return AllDone
	}

	style := t.RepeatStyle
	if style == RepeatNone {
		style = WrapAround
	}

	switch style {
	case PingPong:
		if dir == Forward {
			over := (next - t.Duration) % t.Duration
			next = t.Duration - over
		} else {
			next = (-next) % t.Duration
		}
		t.Direction = dir.Reverse()
	default:
		if dir == Forward {
			next %= t.Duration
		} else {
			next = t.Duration - (-next)%t.Duration
		}
	}

	t.elapsed.Now = next
	t.elapsed.Repeat = style
	return Repeated
}

func (t *Timer) clamp(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	if d > t.Duration {
		return max(t.Duration, 0)
	}
	return d
}
