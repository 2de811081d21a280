package animation

import "math"

// Curve transforms linear span progress into eased progress.
//
// A curve takes a value t in [0, 1] and returns a transformed value, usually
// also in [0, 1] (elastic and back curves overshoot). Curves are looked up
// by name with [Lookup] when spans are built from scene files.
//
// Standard curves: [LinearCurve], [Ease], [EaseIn], [EaseOut], [EaseInOut].
// Use [CubicBezier] to create custom curves matching CSS cubic-bezier().
//
// See ExampleCubicBezier for custom curve usage.
type Curve func(t float64) float64

// Evaluate clamps t to [0, 1] and applies the curve. A nil curve is linear.
func (c Curve) Evaluate(t float64) float64 {
	t = clampUnit(t)
	if c == nil {
		return t
	}
	return c(t)
}

// LinearCurve returns linear progress (no easing).
func LinearCurve(t float64) float64 {
	return t
}

// Ease is a standard cubic bezier curve for general-purpose easing.
// Equivalent to CSS ease.
var Ease = CubicBezier(0.25, 0.1, 0.25, 1.0)

// EaseIn starts slowly and accelerates. Suits targets leaving their rest position.
// Equivalent to CSS ease-in.
var EaseIn = CubicBezier(0.4, 0.0, 1.0, 1.0)

// EaseOut starts quickly and decelerates. Suits targets settling into place.
// Equivalent to CSS ease-out.
var EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)

// EaseInOut starts and ends slowly with acceleration in the middle.
// Equivalent to CSS ease-in-out.
var EaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)

// CubicBezier returns a cubic-bezier easing function matching CSS cubic-bezier().
// The parameters define the two control points (x1,y1) and (x2,y2) of the curve.
// The curve starts at (0,0) and ends at (1,1).
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson converges quickly for most values.
		for n := 0; n < 8; n++ {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleCurve(y1, y2, clampUnit(u))
			}
			dx := sampleCurveDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Fallback to bisection to guarantee a stable solution in [0,1].
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for n := 0; n < 12; n++ {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return sampleCurve(y1, y2, u)
	}
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
