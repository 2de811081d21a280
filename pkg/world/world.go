// Package world hosts span tweens in an entity-component store.
//
// A [World] owns entities, their players, spans, curves, effects and
// animatable properties. [World.Update] runs one frame: it ticks every
// player through [span.System], applies effects for each span whose
// progress changed, then delivers PlayerEnded events to listeners.
package world

import (
	"fmt"
	"time"

	"github.com/go-drift/spantween/pkg/animation"
	"github.com/go-drift/spantween/pkg/ecs"
	"github.com/go-drift/spantween/pkg/effect"
	"github.com/go-drift/spantween/pkg/errors"
	"github.com/go-drift/spantween/pkg/span"
	"github.com/go-drift/spantween/pkg/timespan"
)

// World is the entity store span tweens run in. It is not safe for
// concurrent use.
type World struct {
	alloc     ecs.Allocator
	hierarchy *ecs.Hierarchy
	names     map[string]ecs.Entity

	players *ecs.Store[*span.Player]
	spans   *ecs.Store[timespan.Span]
	states  *ecs.Store[*span.State]
	curves  *ecs.Store[animation.Curve]
	effects *ecs.Store[effect.Effect]
	props   *ecs.Store[*effect.Properties]

	system span.System
}

// New returns an empty world.
func New() *World {
	return &World{
		hierarchy: ecs.NewHierarchy(),
		names:     make(map[string]ecs.Entity),
		players:   ecs.NewStore[*span.Player](),
		spans:     ecs.NewStore[timespan.Span](),
		states:    ecs.NewStore[*span.State](),
		curves:    ecs.NewStore[animation.Curve](),
		effects:   ecs.NewStore[effect.Effect](),
		props:     ecs.NewStore[*effect.Properties](),
	}
}

// Spawn creates a root entity.
func (w *World) Spawn() ecs.Entity {
	return w.alloc.Next()
}

// SpawnChild creates an entity under parent.
func (w *World) SpawnChild(parent ecs.Entity) ecs.Entity {
	e := w.alloc.Next()
	w.hierarchy.SetParent(e, parent)
	return e
}

// Despawn removes e, its descendants and all of their components.
func (w *World) Despawn(e ecs.Entity) {
	doomed := append(w.hierarchy.Descendants(e), e)
	for _, d := range doomed {
		w.players.Remove(d)
		w.spans.Remove(d)
		w.states.Remove(d)
		w.curves.Remove(d)
		w.effects.Remove(d)
		w.props.Remove(d)
		for name, named := range w.names {
			if named == d {
				delete(w.names, name)
			}
		}
	}
	for _, d := range doomed {
		w.hierarchy.Remove(d)
	}
}

// SetName registers a lookup name for e, replacing any previous holder.
func (w *World) SetName(e ecs.Entity, name string) {
	w.names[name] = e
}

// Lookup returns the entity registered under name.
func (w *World) Lookup(name string) (ecs.Entity, bool) {
	e, ok := w.names[name]
	return e, ok
}

// AddPlayer attaches a player to e.
func (w *World) AddPlayer(e ecs.Entity, p *span.Player) {
	w.players.Set(e, p)
}

// AddSpan attaches a span window and a fresh progress state to e.
func (w *World) AddSpan(e ecs.Entity, s timespan.Span) {
	w.spans.Set(e, s)
	w.states.Set(e, &span.State{})
}

// SetCurve sets the curve applied to e's progress. A nil curve is linear.
func (w *World) SetCurve(e ecs.Entity, c animation.Curve) {
	w.curves.Set(e, c)
}

// SetEffect sets the effect driven by e's progress.
func (w *World) SetEffect(e ecs.Entity, fx effect.Effect) {
	w.effects.Set(e, fx)
}

// Properties returns the animatable properties of e, creating defaults on
// first use.
func (w *World) Properties(e ecs.Entity) *effect.Properties {
	if p, ok := w.props.Get(e); ok {
		return p
	}
	p := effect.DefaultProperties()
	w.props.Set(e, &p)
	return &p
}

// State returns the progress state of the span on e.
func (w *World) State(e ecs.Entity) (*span.State, bool) {
	return w.states.Get(e)
}

// Events returns the PlayerEnded queue.
func (w *World) Events() *span.Events {
	return &w.system.Events
}

// Players implements span.Host.
func (w *World) Players() []ecs.Entity {
	return w.players.Entities()
}

// Player implements span.Host.
func (w *World) Player(e ecs.Entity) (*span.Player, bool) {
	return w.players.Get(e)
}

// Children implements span.Host.
func (w *World) Children(e ecs.Entity) []ecs.Entity {
	return w.hierarchy.Children(e)
}

// Parent returns the parent of e.
func (w *World) Parent(e ecs.Entity) (ecs.Entity, bool) {
	return w.hierarchy.Parent(e)
}

// Span implements span.Host.
func (w *World) Span(e ecs.Entity) (timespan.Span, *span.State, bool) {
	s, ok := w.spans.Get(e)
	if !ok {
		return timespan.Span{}, nil, false
	}
	st, ok := w.states.Get(e)
	if !ok {
		return timespan.Span{}, nil, false
	}
	return s, st, true
}

// HasActivePlayers reports whether any player will still advance.
func (w *World) HasActivePlayers() bool {
	for _, e := range w.players.Entities() {
		p, _ := w.players.Get(e)
		if p.Timer != nil && !p.Timer.Paused && !p.Timer.IsAllDone() {
			return true
		}
	}
	return false
}

// Update runs one frame of delta and returns the span entities whose
// progress changed.
func (w *World) Update(delta time.Duration) []ecs.Entity {
	resolved := w.system.Update(w, delta)
	for _, e := range resolved {
		w.applyEffect(e)
	}
	w.system.Events.Flush()
	return resolved
}

func (w *World) applyEffect(e ecs.Entity) {
	fx, ok := w.effects.Get(e)
	if !ok || fx == nil {
		return
	}
	st, ok := w.states.Get(e)
	if !ok || !st.IsResolved() {
		return
	}
	target := fx.Target()
	if !target.IsValid() {
		errors.Report(&errors.TweenError{
			Op:     "world.Update",
			Kind:   errors.KindEffect,
			Entity: e.String(),
			Err:    fmt.Errorf("effect %T has no target", fx),
		})
		return
	}
	defer errors.Recover("world.Update")

	curve, _ := w.curves.Get(e)
	fx.Apply(w.Properties(target), curve.Evaluate(st.Progress()))
}
