// Package effect applies resolved span progress to target properties.
//
// An [Effect] names a target entity and knows how to write one property of
// that target's [Properties] given eased progress t. Effects interpolate
// with the tweens from package animation.
package effect

import (
	"image/color"

	"github.com/go-drift/spantween/pkg/animation"
	"github.com/go-drift/spantween/pkg/ecs"
)

// Properties is the animatable state of a target entity.
type Properties struct {
	Translation animation.Vec2
	Scale       animation.Vec2
	// Rotation is in radians.
	Rotation float64
	Alpha    float64
	Color    color.RGBA
}

// DefaultProperties returns identity properties: no translation, unit
// scale, fully opaque white.
func DefaultProperties() Properties {
	return Properties{
		Scale: animation.Vec2{X: 1, Y: 1},
		Alpha: 1,
		Color: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// Effect writes one property of its target.
type Effect interface {
	// Target returns the entity whose properties are written.
	Target() ecs.Entity
	// Apply writes the property value at eased progress t.
	Apply(p *Properties, t float64)
}

// Translation moves the target from From to To.
type Translation struct {
	Entity   ecs.Entity
	From, To animation.Vec2
}

func (e Translation) Target() ecs.Entity { return e.Entity }

func (e Translation) Apply(p *Properties, t float64) {
	p.Translation = animation.LerpVec2(e.From, e.To, t)
}

// Scale scales the target from From to To.
type Scale struct {
	Entity   ecs.Entity
	From, To animation.Vec2
}

func (e Scale) Target() ecs.Entity { return e.Entity }

func (e Scale) Apply(p *Properties, t float64) {
	p.Scale = animation.LerpVec2(e.From, e.To, t)
}

// Rotation turns the target from From to To radians.
type Rotation struct {
	Entity   ecs.Entity
	From, To float64
}

func (e Rotation) Target() ecs.Entity { return e.Entity }

func (e Rotation) Apply(p *Properties, t float64) {
	p.Rotation = animation.Lerp(e.From, e.To, t)
}

// Alpha fades the target from From to To.
type Alpha struct {
	Entity   ecs.Entity
	From, To float64
}

func (e Alpha) Target() ecs.Entity { return e.Entity }

func (e Alpha) Apply(p *Properties, t float64) {
	p.Alpha = animation.Lerp(e.From, e.To, t)
}

// Color blends the target color from From to To.
type Color struct {
	Entity   ecs.Entity
	From, To color.RGBA
}

func (e Color) Target() ecs.Entity { return e.Entity }

func (e Color) Apply(p *Properties, t float64) {
	p.Color = animation.LerpColor(e.From, e.To, t)
}
