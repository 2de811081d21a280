package timer

import (
	"testing"
	"time"
)

const ms = time.Millisecond

func TestTickForwardNoRepeat(t *testing.T) {
	tm := New(1000 * ms)

	steps := []struct {
		delta    time.Duration
		want     TickResult
		previous time.Duration
		now      time.Duration
	}{
		{400 * ms, Continue, 0, 400 * ms},
		{400 * ms, Continue, 400 * ms, 800 * ms},
		{400 * ms, AllDone, 800 * ms, 1000 * ms},
		{400 * ms, AllDone, 1000 * ms, 1000 * ms},
	}
	for i, step := range steps {
		got := tm.Tick(step.delta, tm.Direction)
		if got != step.want {
			t.Errorf("step %d: Tick = %v, want %v", i, got, step.want)
		}
		e := tm.Elapsed()
		if e.Previous != step.previous || e.Now != step.now || e.Repeat != RepeatNone {
			t.Errorf("step %d: Elapsed = %+v, want {%v %v none}", i, e, step.previous, step.now)
		}
	}
	if !tm.IsAllDone() {
		t.Error("expected timer to be all done")
	}
}

func TestTickBackward(t *testing.T) {
	tm := New(1000 * ms)
	tm.Direction = Backward
	tm.SetElapsed(1000 * ms)

	if got := tm.Tick(300*ms, Backward); got != Continue {
		t.Fatalf("Tick = %v, want Continue", got)
	}
	if e := tm.Elapsed(); e.Previous != 1000*ms || e.Now != 700*ms {
		t.Errorf("Elapsed = %+v", e)
	}
	if got := tm.Tick(900*ms, Backward); got != AllDone {
		t.Fatalf("Tick = %v, want AllDone", got)
	}
	if e := tm.Elapsed(); e.Now != 0 {
		t.Errorf("Now = %v, want 0", e.Now)
	}
	if !tm.IsAllDone() {
		t.Error("expected timer to be all done")
	}
}

func TestTickWrapAround(t *testing.T) {
	tm := New(1000 * ms)
	r := Infinitely()
	tm.Repeat = &r
	tm.RepeatStyle = WrapAround

	tm.SetElapsed(800 * ms)
	if got := tm.Tick(500*ms, Forward); got != Repeated {
		t.Fatalf("Tick = %v, want Repeated", got)
	}
	e := tm.Elapsed()
	if e.Previous != 800*ms || e.Now != 300*ms || e.Repeat != WrapAround {
		t.Errorf("Elapsed = %+v", e)
	}
	if tm.Direction != Forward {
		t.Errorf("Direction = %v, want forward", tm.Direction)
	}

	if got := tm.Tick(100*ms, Forward); got != Continue {
		t.Fatalf("Tick = %v, want Continue", got)
	}
	if e := tm.Elapsed(); e.Repeat != RepeatNone {
		t.Errorf("repeat flag should clear on a plain tick, got %v", e.Repeat)
	}
}

func TestTickWrapAroundBackward(t *testing.T) {
	tm := New(1000 * ms)
	r := Infinitely()
	tm.Repeat = &r
	tm.Direction = Backward
	tm.SetElapsed(200 * ms)

	if got := tm.Tick(500*ms, Backward); got != Repeated {
		t.Fatalf("Tick = %v, want Repeated", got)
	}
	e := tm.Elapsed()
	if e.Now != 700*ms || e.Repeat != WrapAround {
		t.Errorf("Elapsed = %+v, want now 700ms wrap_around", e)
	}
}

func TestTickPingPong(t *testing.T) {
	tm := New(1000 * ms)
	r := Infinitely()
	tm.Repeat = &r
	tm.RepeatStyle = PingPong
	tm.SetElapsed(800 * ms)

	if got := tm.Tick(400*ms, tm.Direction); got != Repeated {
		t.Fatalf("Tick = %v, want Repeated", got)
	}
	e := tm.Elapsed()
	if e.Now != 800*ms || e.Repeat != PingPong {
		t.Errorf("Elapsed = %+v, want now 800ms ping_pong", e)
	}
	if tm.Direction != Backward {
		t.Fatalf("Direction = %v, want backward after reflecting", tm.Direction)
	}

	tm.Tick(700*ms, tm.Direction)
	if got := tm.Tick(300*ms, tm.Direction); got != Repeated {
		t.Fatalf("Tick = %v, want Repeated", got)
	}
	if e := tm.Elapsed(); e.Now != 200*ms {
		t.Errorf("Now = %v, want 200ms", e.Now)
	}
	if tm.Direction != Forward {
		t.Errorf("Direction = %v, want forward after second reflection", tm.Direction)
	}
}

func TestTickRepeatTimes(t *testing.T) {
	tm := New(1000 * ms)
	r := Times(2)
	tm.Repeat = &r

	var results []TickResult
	for n := 0; n < 4; n++ {
		results = append(results, tm.Tick(1000*ms, Forward))
	}
	want := []TickResult{Repeated, Repeated, AllDone, AllDone}
	for i := range want {
		if results[i] != want[i] {
			t.Errorf("tick %d = %v, want %v", i, results[i], want[i])
		}
	}
	if !tm.Repeat.Exhausted() {
		t.Error("expected repeat to be exhausted")
	}
	if n, ok := tm.Repeat.Remaining(); !ok || n != 0 {
		t.Errorf("Remaining() = %d, %v", n, ok)
	}
	if tm.Elapsed().Now != 1000*ms {
		t.Errorf("Now = %v, want 1s", tm.Elapsed().Now)
	}
}

func TestZeroDurationIsDone(t *testing.T) {
	tm := New(0)
	r := Infinitely()
	tm.Repeat = &r
	if !tm.IsAllDone() {
		t.Fatal("zero-length timer should be done from the start")
	}
	if got := tm.Tick(time.Second, Forward); got != AllDone {
		t.Errorf("Tick = %v, want AllDone", got)
	}
}

func TestSetElapsedClamps(t *testing.T) {
	tm := New(time.Second)
	tm.SetElapsed(5 * time.Second)
	if got := tm.Elapsed(); got.Now != time.Second || got.Previous != time.Second {
		t.Errorf("Elapsed = %+v", got)
	}
	tm.SetElapsed(-time.Second)
	if got := tm.Elapsed().Now; got != 0 {
		t.Errorf("Now = %v, want 0", got)
	}
}

func TestRepeat(t *testing.T) {
	r := Times(1)
	if r.Exhausted() {
		t.Fatal("fresh Times(1) should not be exhausted")
	}
	if !r.advance() || !r.Exhausted() || r.Repeated() != 1 {
		t.Fatalf("after one advance: %v", r)
	}
	if r.advance() {
		t.Error("advance should fail once exhausted")
	}
	r.Reset()
	if r.Exhausted() {
		t.Error("Reset should restore repeats")
	}

	inf := Infinitely()
	for n := 0; n < 100; n++ {
		inf.advance()
	}
	if inf.Exhausted() {
		t.Error("infinite repeat should never be exhausted")
	}
	if _, ok := inf.Remaining(); ok {
		t.Error("infinite repeat should not report a remaining count")
	}
	if !Times(-3).Exhausted() {
		t.Error("negative times should clamp to zero")
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{Forward.String(), "forward"},
		{Backward.String(), "backward"},
		{WrapAround.String(), "wrap_around"},
		{PingPong.String(), "ping_pong"},
		{RepeatNone.String(), "none"},
		{Repeated.String(), "repeated"},
		{AllDone.String(), "all_done"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}
