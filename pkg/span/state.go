package span

import (
	"time"

	"github.com/go-drift/spantween/pkg/timer"
)

// NullDuration is a duration that may be absent.
type NullDuration struct {
	Duration time.Duration
	Valid    bool
}

// Some returns a present NullDuration.
func Some(d time.Duration) NullDuration {
	return NullDuration{Duration: d, Valid: true}
}

func (n NullDuration) String() string {
	if !n.Valid {
		return "none"
	}
	return n.Duration.String()
}

// State is the per-span progress written by [System.Update].
//
// The zero value means the span has never been reached.
type State struct {
	// LocalElapsed is the time elapsed inside the span, in [0, LocalEnd].
	LocalElapsed NullDuration
	// LocalPreviousElapsed is LocalElapsed from the previous resolution.
	LocalPreviousElapsed NullDuration
	// LocalEnd is the span's own length.
	LocalEnd time.Duration
	// Direction is the owning timer's direction at resolution time.
	Direction timer.Direction
}

// Progress returns LocalElapsed as a fraction of LocalEnd in [0, 1].
// A zero-length span is complete when played forward and at its start
// when played backward. An unresolved state reports 0.
func (s *State) Progress() float64 {
	if !s.LocalElapsed.Valid {
		return 0
	}
	if s.LocalEnd <= 0 {
		if s.Direction == timer.Forward {
			return 1
		}
		return 0
	}
	p := float64(s.LocalElapsed.Duration) / float64(s.LocalEnd)
	return min(max(p, 0), 1)
}

// IsResolved reports whether the span has been reached at least once.
func (s *State) IsResolved() bool {
	return s.LocalElapsed.Valid
}

// advance replaces the state with a freshly resolved value.
func (s *State) advance(elapsed, end time.Duration, dir timer.Direction) {
	*s = State{
		LocalElapsed:         Some(elapsed),
		LocalPreviousElapsed: s.LocalElapsed,
		LocalEnd:             end,
		Direction:            dir,
	}
}
