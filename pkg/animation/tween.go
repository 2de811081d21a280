package animation

import (
	"image/color"

	"golang.org/x/exp/constraints"
)

// Tween interpolates between Begin and End values based on eased progress.
//
// Tween maps the 0-1 progress of a span to any value range or type.
// Use the helper constructors ([TweenFloat64], [TweenColor], [TweenVec2]) for
// common types, or create custom tweens with a Lerp function.
//
// See ExampleTween and ExampleTween_customType for usage patterns.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp linearly interpolates between Begin and End. Receives the begin value,
	// end value, and progress t. Returns the interpolated value.
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t.
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Vec2 is a two-component vector used for translations and scales.
type Vec2 struct {
	X, Y float64
}

// Lerp linearly interpolates between two numbers. t of exactly 0 or 1
// returns the endpoint unchanged.
func Lerp[T constraints.Integer | constraints.Float](a, b T, t float64) T {
	switch t {
	case 0:
		return a
	case 1:
		return b
	default:
		return T(float64(a) + (float64(b)-float64(a))*t)
	}
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return Lerp(a, b, t)
}

// LerpVec2 linearly interpolates between two vectors.
func LerpVec2(a, b Vec2, t float64) Vec2 {
	return Vec2{
		X: Lerp(a.X, b.X, t),
		Y: Lerp(a.Y, b.Y, t),
	}
}

// LerpColor linearly interpolates each channel of two colors. Channels are
// clamped to [0, 255] so overshooting curves do not wrap.
func LerpColor(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
		A: lerpChannel(a.A, b.A, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := Lerp(float64(a), float64(b), t)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{
		Begin: begin,
		End:   end,
		Lerp:  LerpFloat64,
	}
}

// TweenVec2 creates a tween for Vec2 values.
func TweenVec2(begin, end Vec2) *Tween[Vec2] {
	return &Tween[Vec2]{
		Begin: begin,
		End:   end,
		Lerp:  LerpVec2,
	}
}

// TweenColor creates a tween for color values.
func TweenColor(begin, end color.RGBA) *Tween[color.RGBA] {
	return &Tween[color.RGBA]{
		Begin: begin,
		End:   end,
		Lerp:  LerpColor,
	}
}
