package span

import (
	"testing"
	"time"

	"github.com/go-drift/spantween/pkg/timer"
	"github.com/go-drift/spantween/pkg/timespan"
)

const (
	before = timespan.Before
	inside = timespan.Inside
	after  = timespan.After
)

// resolvedRows lists every transition that yields a value. All others must
// leave the span untouched or be reported as inconsistent.
var resolvedRows = []struct {
	dir       timer.Direction
	prev, cur timespan.Quotient
	repeat    timer.RepeatStyle
	want      target
}{
	{timer.Forward, inside, inside, timer.RepeatNone, toElapsed},
	{timer.Backward, inside, inside, timer.RepeatNone, toElapsed},
	{timer.Forward, before, inside, timer.RepeatNone, toElapsed},
	{timer.Forward, inside, after, timer.RepeatNone, toElapsed},
	{timer.Forward, before, after, timer.RepeatNone, toElapsed},
	{timer.Backward, after, inside, timer.RepeatNone, toElapsed},
	{timer.Backward, inside, before, timer.RepeatNone, toElapsed},
	{timer.Backward, after, before, timer.RepeatNone, toElapsed},

	{timer.Forward, before, before, timer.WrapAround, toMax},
	{timer.Forward, inside, before, timer.WrapAround, toMax},
	{timer.Forward, before, inside, timer.WrapAround, toElapsed},
	{timer.Forward, before, after, timer.WrapAround, toElapsed},
	{timer.Forward, inside, inside, timer.WrapAround, toElapsed},
	{timer.Forward, inside, after, timer.WrapAround, toElapsed},
	{timer.Forward, after, inside, timer.WrapAround, toElapsed},
	{timer.Forward, after, after, timer.WrapAround, toElapsed},

	{timer.Backward, after, after, timer.WrapAround, toMin},
	{timer.Backward, inside, after, timer.WrapAround, toMin},
	{timer.Backward, before, before, timer.WrapAround, toElapsed},
	{timer.Backward, before, inside, timer.WrapAround, toElapsed},
	{timer.Backward, inside, before, timer.WrapAround, toElapsed},
	{timer.Backward, inside, inside, timer.WrapAround, toElapsed},
	{timer.Backward, after, before, timer.WrapAround, toElapsed},
	{timer.Backward, after, inside, timer.WrapAround, toElapsed},

	{timer.Backward, before, before, timer.PingPong, toElapsed},
	{timer.Backward, before, inside, timer.PingPong, toElapsed},
	{timer.Backward, before, after, timer.PingPong, toElapsed},
	{timer.Backward, inside, before, timer.PingPong, toElapsed},
	{timer.Backward, inside, inside, timer.PingPong, toElapsed},
	{timer.Backward, inside, after, timer.PingPong, toElapsed},
	{timer.Backward, after, before, timer.PingPong, toElapsed},
	{timer.Backward, after, inside, timer.PingPong, toElapsed},

	{timer.Forward, before, inside, timer.PingPong, toElapsed},
	{timer.Forward, before, after, timer.PingPong, toElapsed},
	{timer.Forward, inside, before, timer.PingPong, toElapsed},
	{timer.Forward, inside, inside, timer.PingPong, toElapsed},
	{timer.Forward, inside, after, timer.PingPong, toElapsed},
	{timer.Forward, after, before, timer.PingPong, toElapsed},
	{timer.Forward, after, inside, timer.PingPong, toElapsed},
	{timer.Forward, after, after, timer.PingPong, toElapsed},
}

// inconsistentRows are the no-repeat transitions that run against the
// timer's direction.
var inconsistentRows = []Transition{
	{timer.Forward, inside, before, timer.RepeatNone},
	{timer.Forward, after, inside, timer.RepeatNone},
	{timer.Forward, after, before, timer.RepeatNone},
	{timer.Backward, before, inside, timer.RepeatNone},
	{timer.Backward, inside, after, timer.RepeatNone},
	{timer.Backward, before, after, timer.RepeatNone},
}

func TestClassifyExhaustive(t *testing.T) {
	window := timespan.Must(timespan.Range(time.Second, 2*time.Second))
	instant := map[timespan.Quotient]time.Duration{
		before: 500 * time.Millisecond,
		inside: 1500 * time.Millisecond,
		after:  2500 * time.Millisecond,
	}
	elapsedAt := map[timespan.Quotient]time.Duration{
		before: 0,
		inside: 500 * time.Millisecond,
		after:  time.Second,
	}

	resolved := make(map[Transition]target)
	for _, r := range resolvedRows {
		resolved[Transition{r.dir, r.prev, r.cur, r.repeat}] = r.want
	}
	inconsistent := make(map[Transition]bool)
	for _, tr := range inconsistentRows {
		inconsistent[tr] = true
	}

	count := 0
	for _, dir := range []timer.Direction{timer.Forward, timer.Backward} {
		for _, repeat := range []timer.RepeatStyle{timer.RepeatNone, timer.WrapAround, timer.PingPong} {
			for _, prev := range []timespan.Quotient{before, inside, after} {
				for _, cur := range []timespan.Quotient{before, inside, after} {
					count++
					tr := Transition{dir, prev, cur, repeat}
					sample := timer.Elapsed{Previous: instant[prev], Now: instant[cur], Repeat: repeat}
					got, outcome, key := Classify(window, sample, dir)
					if key != tr {
						t.Fatalf("%v: Classify key = %v", tr, key)
					}

					want, ok := resolved[tr]
					switch {
					case ok:
						if outcome != Resolved {
							t.Errorf("%v: outcome = %v, want resolved", tr, outcome)
							continue
						}
						var wantElapsed time.Duration
						switch want {
						case toElapsed:
							wantElapsed = elapsedAt[cur]
						case toMax:
							wantElapsed = time.Second
						case toMin:
							wantElapsed = 0
						}
						if got != wantElapsed {
							t.Errorf("%v: elapsed = %v, want %v", tr, got, wantElapsed)
						}
					case inconsistent[tr]:
						if outcome != Inconsistent {
							t.Errorf("%v: outcome = %v, want inconsistent", tr, outcome)
						}
					default:
						if outcome != Untouched {
							t.Errorf("%v: outcome = %v, want untouched", tr, outcome)
						}
					}
				}
			}
		}
	}
	if count != 54 {
		t.Fatalf("visited %d combinations, want 54", count)
	}
}

func TestResolveWrapSkipsShortSpan(t *testing.T) {
	window := timespan.Must(timespan.Range(100*time.Millisecond, 200*time.Millisecond))

	tm := timer.New(time.Second)
	r := timer.Infinitely()
	tm.Repeat = &r
	tm.RepeatStyle = timer.WrapAround

	tests := []struct {
		name  string
		start time.Duration
		delta time.Duration
	}{
		{"from start", 0, 1500 * time.Millisecond},
		{"from inside", 150 * time.Millisecond, 900 * time.Millisecond},
		{"from before", 50 * time.Millisecond, 1010 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm.SetElapsed(tt.start)
			if got := tm.Tick(tt.delta, timer.Forward); got != timer.Repeated {
				t.Fatalf("Tick = %v, want Repeated", got)
			}
			got, ok := Resolve(window, tm.Elapsed(), tm.Direction)
			if !ok || got != 100*time.Millisecond {
				t.Errorf("Resolve = %v, %v; want 100ms, true", got, ok)
			}
		})
	}
}

func TestResolveBackwardWrapClampsToStart(t *testing.T) {
	window := timespan.Must(timespan.Range(100*time.Millisecond, 200*time.Millisecond))
	tm := timer.New(time.Second)
	r := timer.Infinitely()
	tm.Repeat = &r
	tm.Direction = timer.Backward
	tm.SetElapsed(150 * time.Millisecond)

	if got := tm.Tick(300*time.Millisecond, timer.Backward); got != timer.Repeated {
		t.Fatalf("Tick = %v, want Repeated", got)
	}
	got, ok := Resolve(window, tm.Elapsed(), tm.Direction)
	if !ok || got != 0 {
		t.Errorf("Resolve = %v, %v; want 0, true", got, ok)
	}
}

func TestResolvePingPongUsesFlippedDirection(t *testing.T) {
	window := timespan.Must(timespan.RangeToInclusive(time.Second))
	tm := timer.New(time.Second)
	r := timer.Infinitely()
	tm.Repeat = &r
	tm.RepeatStyle = timer.PingPong
	tm.SetElapsed(800 * time.Millisecond)

	if got := tm.Tick(400*time.Millisecond, tm.Direction); got != timer.Repeated {
		t.Fatalf("Tick = %v, want Repeated", got)
	}
	if tm.Direction != timer.Backward {
		t.Fatalf("Direction = %v, want backward", tm.Direction)
	}
	got, ok := Resolve(window, tm.Elapsed(), tm.Direction)
	if !ok || got != 800*time.Millisecond {
		t.Errorf("Resolve = %v, %v; want 800ms, true", got, ok)
	}
}

func TestResolveZeroLengthSpan(t *testing.T) {
	jump := timespan.Must(timespan.RangeInclusive(time.Second, time.Second))
	sample := timer.Elapsed{Previous: 500 * time.Millisecond, Now: 1500 * time.Millisecond}
	got, ok := Resolve(jump, sample, timer.Forward)
	if !ok || got != 0 {
		t.Errorf("Resolve = %v, %v; want 0, true", got, ok)
	}
}

func TestOutcomeString(t *testing.T) {
	for o, want := range map[Outcome]string{Resolved: "resolved", Untouched: "untouched", Inconsistent: "inconsistent"} {
		if got := o.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
