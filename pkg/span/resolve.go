// Package span resolves how far each span tween has progressed after a
// playback timer ticks.
//
// A span tween is an entity carrying a [timespan.Span] and a [State]. It is
// owned by a [Player]: either the player entity itself, or one of its direct
// children that is not a player. Each frame [System.Update] ticks every
// player's timer and calls [Resolve] for each owned span, replacing the
// span's State with the new local elapsed time.
//
// Resolution classifies the timer's previous and current instants against
// the span window and picks the local elapsed value from a fixed table keyed
// by direction, both classifications, and the repeat style applied during
// the tick. The table makes short spans and long frames report terminal
// values when a tick skips over a span entirely.
package span

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-drift/spantween/pkg/timer"
	"github.com/go-drift/spantween/pkg/timespan"
)

// ErrInconsistentTransition is reported when a tick without a repeat moves
// against the timer's direction. A correctly functioning timer never
// produces such a sample.
var ErrInconsistentTransition = errors.New("transition inconsistent with direction")

// Transition is the key of the resolution table.
type Transition struct {
	Direction timer.Direction
	Previous  timespan.Quotient
	Current   timespan.Quotient
	Repeat    timer.RepeatStyle
}

func (t Transition) String() string {
	return fmt.Sprintf("%v %v->%v repeat=%v", t.Direction, t.Previous, t.Current, t.Repeat)
}

// Outcome says how the table handled a transition.
type Outcome int8

const (
	// Resolved means the span has a new local elapsed value.
	Resolved Outcome = iota
	// Untouched means the sample stayed outside the span, or a repeat
	// carried it across without entering. The span keeps its state.
	Untouched
	// Inconsistent means the transition cannot come from a working timer.
	// The span keeps its state and the transition is reported.
	Inconsistent
)

func (o Outcome) String() string {
	switch o {
	case Resolved:
		return "resolved"
	case Untouched:
		return "untouched"
	case Inconsistent:
		return "inconsistent"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Resolve returns the span's local elapsed time after the tick described by
// sample, played in direction dir. ok is false when the span must keep its
// previous state.
func Resolve(s timespan.Span, sample timer.Elapsed, dir timer.Direction) (elapsed time.Duration, ok bool) {
	elapsed, outcome, _ := Classify(s, sample, dir)
	return elapsed, outcome == Resolved
}

// Classify is like [Resolve] but also returns the outcome and the table key.
func Classify(s timespan.Span, sample timer.Elapsed, dir timer.Direction) (time.Duration, Outcome, Transition) {
	tr := Transition{
		Direction: dir,
		Previous:  s.Quotient(sample.Previous),
		Current:   s.Quotient(sample.Now),
		Repeat:    sample.Repeat,
	}

	tweenMax := s.Length()
	tweenElapsed := min(max(sample.Now-s.Min().Duration(), 0), tweenMax)

	switch lookup(tr) {
	case toElapsed:
		return tweenElapsed, Resolved, tr
	case toMax:
		return tweenMax, Resolved, tr
	case toMin:
		return 0, Resolved, tr
	}
	if tr.Previous != timespan.Inside && tr.Current != timespan.Inside &&
		(tr.Previous == tr.Current || tr.Repeat != timer.RepeatNone) {
		return 0, Untouched, tr
	}
	return 0, Inconsistent, tr
}

type target int8

const (
	none target = iota
	toElapsed
	toMax
	toMin
)

func lookup(tr Transition) target {
	const (
		before = timespan.Before
		inside = timespan.Inside
		after  = timespan.After
	)
	prev, cur := tr.Previous, tr.Current
	forward := tr.Direction == timer.Forward

	switch tr.Repeat {
	case timer.RepeatNone:
		switch {
		case prev == inside && cur == inside:
			return toElapsed
		case forward && (prev == before && cur != before || prev == inside && cur == after):
			return toElapsed
		case !forward && (prev == after && cur != after || prev == inside && cur == before):
			return toElapsed
		}
		return none

	case timer.WrapAround:
		if forward {
			switch {
			case cur == before && prev != after:
				// Wrapped past the span and restarted before it.
				return toMax
			case prev == after && cur == before:
				return none
			}
			return toElapsed
		}
		switch {
		case cur == after && prev != before:
			// Wrapped past the span and restarted after it.
			return toMin
		case prev == before && cur == after:
			return none
		}
		return toElapsed

	case timer.PingPong:
		// The timer has already flipped its direction.
		if forward && prev == before && cur == before {
			return none
		}
		if !forward && prev == after && cur == after {
			return none
		}
		return toElapsed
	}
	return none
}
