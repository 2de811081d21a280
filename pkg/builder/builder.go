// Package builder spawns many span tweens under one player with little
// boilerplate.
//
//	builder.Tweens(w, player).
//		Tween(timespan.Must(timespan.Range(0, time.Second)), animation.EaseOut, fadeIn).
//		Jump(2*time.Second, show)
package builder

import (
	"time"

	"github.com/go-drift/spantween/pkg/animation"
	"github.com/go-drift/spantween/pkg/ecs"
	"github.com/go-drift/spantween/pkg/effect"
	"github.com/go-drift/spantween/pkg/timespan"
	"github.com/go-drift/spantween/pkg/world"
)

// Builder spawns span tween children under a parent entity.
type Builder struct {
	w       *world.World
	parent  ecs.Entity
	spawned []ecs.Entity
}

// Tweens returns a builder that spawns children of parent in w.
func Tweens(w *world.World, parent ecs.Entity) *Builder {
	return &Builder{w: w, parent: parent}
}

// Tween spawns a child carrying s, curve and fx.
func (b *Builder) Tween(s timespan.Span, curve animation.Curve, fx effect.Effect) *Builder {
	return b.TweenAnd(s, curve, fx, nil)
}

// TweenAnd is like Tween and then calls fn with the new entity.
func (b *Builder) TweenAnd(s timespan.Span, curve animation.Curve, fx effect.Effect, fn func(ecs.Entity)) *Builder {
	e := b.w.SpawnChild(b.parent)
	b.w.AddSpan(e, s)
	b.w.SetCurve(e, curve)
	if fx != nil {
		b.w.SetEffect(e, fx)
	}
	b.spawned = append(b.spawned, e)
	if fn != nil {
		fn(e)
	}
	return b
}

// Jump spawns a zero-length tween at instant at, which sets the effect's
// end value once the timer passes at.
func (b *Builder) Jump(at time.Duration, fx effect.Effect) *Builder {
	return b.JumpAnd(at, fx, nil)
}

// JumpAnd is like Jump and then calls fn with the new entity.
func (b *Builder) JumpAnd(at time.Duration, fx effect.Effect, fn func(ecs.Entity)) *Builder {
	return b.TweenAnd(timespan.Must(timespan.RangeInclusive(at, at)), animation.LinearCurve, fx, fn)
}

// Spawned returns the entities spawned so far, in call order.
func (b *Builder) Spawned() []ecs.Entity {
	return b.spawned
}
