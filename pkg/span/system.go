package span

import (
	"fmt"
	"time"

	"github.com/go-drift/spantween/pkg/ecs"
	tweenerrors "github.com/go-drift/spantween/pkg/errors"
	"github.com/go-drift/spantween/pkg/timer"
	"github.com/go-drift/spantween/pkg/timespan"
)

// Host is the entity storage the tick system runs against.
type Host interface {
	// Players returns every entity carrying a Player, in a stable order.
	Players() []ecs.Entity
	// Player returns the player attached to e.
	Player(e ecs.Entity) (*Player, bool)
	// Children returns the direct children of e.
	Children(e ecs.Entity) []ecs.Entity
	// Span returns the span window and the mutable progress state of e.
	// ok is false unless e carries both.
	Span(e ecs.Entity) (s timespan.Span, state *State, ok bool)
}

// OwnedSpans returns the entities whose spans player drives: the player
// itself when it carries a span, then each direct child that is not a
// player and carries a span.
func OwnedSpans(h Host, player ecs.Entity) []ecs.Entity {
	var out []ecs.Entity
	if _, _, ok := h.Span(player); ok {
		out = append(out, player)
	}
	for _, c := range h.Children(player) {
		if _, isPlayer := h.Player(c); isPlayer {
			continue
		}
		if _, _, ok := h.Span(c); ok {
			out = append(out, c)
		}
	}
	return out
}

// System ticks players and resolves their spans.
type System struct {
	// Events receives a PlayerEnded for each timer that repeated or finished.
	Events Events
}

// Update advances every active player by delta and resolves the spans it
// owns. It returns the span entities whose state changed, in player order.
//
// Paused players and players whose timer is all done are skipped. Spans
// whose transition is inconsistent with the timer keep their state and are
// reported through the error handler.
func (s *System) Update(h Host, delta time.Duration) []ecs.Entity {
	var resolved []ecs.Entity
	for _, pe := range h.Players() {
		p, ok := h.Player(pe)
		if !ok || p.Timer == nil {
			continue
		}
		t := p.Timer
		if t.Paused || t.IsAllDone() {
			continue
		}

		scaled := time.Duration(float64(delta) * t.SpeedScale)
		result := t.Tick(scaled, t.Direction)
		if result == timer.Repeated || result == timer.AllDone {
			var repeat *timer.Repeat
			if t.Repeat != nil {
				r := *t.Repeat
				repeat = &r
			}
			s.Events.Send(PlayerEnded{
				Player:    pe,
				Direction: t.Direction,
				Repeat:    repeat,
				Result:    result,
			})
		}

		sample := t.Elapsed()
		for _, e := range OwnedSpans(h, pe) {
			window, state, ok := h.Span(e)
			if !ok || state == nil {
				continue
			}
			elapsed, outcome, tr := Classify(window, sample, t.Direction)
			switch outcome {
			case Resolved:
				state.advance(elapsed, window.Length(), t.Direction)
				resolved = append(resolved, e)
			case Inconsistent:
				tweenerrors.Report(&tweenerrors.TweenError{
					Op:     "span.System.Update",
					Kind:   tweenerrors.KindResolve,
					Entity: e.String(),
					Err:    fmt.Errorf("%w: %v in %v", ErrInconsistentTransition, tr, window),
				})
			}
		}
	}
	return resolved
}
