package world

import (
	"slices"
	"testing"
	"time"

	"github.com/go-drift/spantween/pkg/animation"
	"github.com/go-drift/spantween/pkg/ecs"
	"github.com/go-drift/spantween/pkg/effect"
	"github.com/go-drift/spantween/pkg/errors"
	"github.com/go-drift/spantween/pkg/span"
	"github.com/go-drift/spantween/pkg/timer"
	"github.com/go-drift/spantween/pkg/timespan"
)

func TestUpdateAppliesEffects(t *testing.T) {
	w := New()
	target := w.Spawn()
	player := w.Spawn()
	w.AddPlayer(player, span.NewPlayer(2*time.Second))

	tween := w.SpawnChild(player)
	w.AddSpan(tween, timespan.Must(timespan.Range(0, time.Second)))
	w.SetEffect(tween, effect.Translation{
		Entity: target,
		To:     animation.Vec2{X: 100},
	})

	got := w.Update(500 * time.Millisecond)
	if !slices.Equal(got, []ecs.Entity{tween}) {
		t.Fatalf("Update resolved %v, want [%v]", got, tween)
	}
	if x := w.Properties(target).Translation.X; x != 50 {
		t.Errorf("Translation.X = %v, want 50", x)
	}

	w.Update(time.Second)
	if x := w.Properties(target).Translation.X; x != 100 {
		t.Errorf("Translation.X = %v, want 100 after leaving the span", x)
	}
}

func TestUpdateUsesCurve(t *testing.T) {
	w := New()
	target := w.Spawn()
	player := w.Spawn()
	w.AddPlayer(player, span.NewPlayer(time.Second))
	w.AddSpan(player, timespan.Must(timespan.RangeToInclusive(time.Second)))
	quad, _ := animation.Lookup("quad_in")
	w.SetCurve(player, quad)
	w.SetEffect(player, effect.Alpha{Entity: target, From: 0, To: 1})

	w.Update(500 * time.Millisecond)
	if a := w.Properties(target).Alpha; a != 0.25 {
		t.Errorf("Alpha = %v, want 0.25", a)
	}
}

func TestOverlappingSpansLastWriterWins(t *testing.T) {
	w := New()
	target := w.Spawn()
	player := w.Spawn()
	w.AddPlayer(player, span.NewPlayer(3*time.Second))

	first := w.SpawnChild(player)
	w.AddSpan(first, timespan.Must(timespan.Range(0, time.Second)))
	w.SetEffect(first, effect.Alpha{Entity: target, From: 1, To: 0})

	second := w.SpawnChild(player)
	w.AddSpan(second, timespan.Must(timespan.Range(2*time.Second, 3*time.Second)))
	w.SetEffect(second, effect.Alpha{Entity: target, From: 0, To: 1})

	w.Update(1500 * time.Millisecond)
	if a := w.Properties(target).Alpha; a != 0 {
		t.Fatalf("Alpha = %v, want 0 after first span", a)
	}
	// The first span is now after, after; it must not rewrite alpha.
	w.Update(1200 * time.Millisecond)
	if a := w.Properties(target).Alpha; a < 0.69 || a > 0.71 {
		t.Errorf("Alpha = %v, want 0.7 from second span", a)
	}
}

func TestEventsDeliveredAfterUpdate(t *testing.T) {
	w := New()
	player := w.Spawn()
	w.AddPlayer(player, span.NewPlayer(time.Second, span.WithRepeat(timer.Times(1))))

	var ended []span.PlayerEnded
	w.Events().AddListener(func(e span.PlayerEnded) { ended = append(ended, e) })

	w.Update(1100 * time.Millisecond)
	w.Update(1100 * time.Millisecond)
	if len(ended) != 2 {
		t.Fatalf("got %d events, want 2", len(ended))
	}
	if ended[0].Result != timer.Repeated || ended[1].Result != timer.AllDone {
		t.Errorf("results = %v, %v", ended[0].Result, ended[1].Result)
	}
	if w.Events().Len() != 0 {
		t.Error("queue should be empty after Update")
	}
	if w.HasActivePlayers() {
		t.Error("finished player should not be active")
	}
}

func TestDespawn(t *testing.T) {
	w := New()
	root := w.Spawn()
	child := w.SpawnChild(root)
	grandchild := w.SpawnChild(child)
	other := w.SpawnChild(root)
	w.SetName(child, "child")
	w.AddPlayer(child, span.NewPlayer(time.Second))
	w.AddSpan(grandchild, timespan.Default())

	w.Despawn(child)

	if _, ok := w.Lookup("child"); ok {
		t.Error("name should be released on despawn")
	}
	if _, ok := w.Player(child); ok {
		t.Error("player should be removed")
	}
	if _, _, ok := w.Span(grandchild); ok {
		t.Error("descendant span should be removed")
	}
	if got := w.Children(root); !slices.Equal(got, []ecs.Entity{other}) {
		t.Errorf("Children(root) = %v", got)
	}
}

func TestEffectPanicIsRecovered(t *testing.T) {
	var panics []*errors.PanicError
	prev := errors.DefaultHandler
	errors.SetHandler(&panicRecorder{onPanic: func(p *errors.PanicError) { panics = append(panics, p) }})
	defer errors.SetHandler(prev)

	w := New()
	target := w.Spawn()
	player := w.Spawn()
	w.AddPlayer(player, span.NewPlayer(time.Second))
	bad := w.SpawnChild(player)
	w.AddSpan(bad, timespan.Must(timespan.RangeTo(time.Second)))
	w.SetEffect(bad, panicEffect{target: target})
	good := w.SpawnChild(player)
	w.AddSpan(good, timespan.Must(timespan.RangeTo(time.Second)))
	w.SetEffect(good, effect.Rotation{Entity: target, To: 1})

	w.Update(500 * time.Millisecond)
	if len(panics) != 1 || panics[0].Op != "world.Update" {
		t.Fatalf("panics = %v", panics)
	}
	if r := w.Properties(target).Rotation; r != 0.5 {
		t.Errorf("Rotation = %v, want 0.5", r)
	}
}

type panicEffect struct{ target ecs.Entity }

func (p panicEffect) Target() ecs.Entity             { return p.target }
func (panicEffect) Apply(*effect.Properties, float64) { panic("boom") }

type panicRecorder struct {
	onPanic func(*errors.PanicError)
}

func (r *panicRecorder) HandleError(*errors.TweenError) {}
func (r *panicRecorder) HandlePanic(p *errors.PanicError) {
	r.onPanic(p)
}
