package animation

import (
	"slices"
	"sync"

	"github.com/tanema/gween/ease"
)

var (
	curvesMu sync.RWMutex
	curves   = map[string]Curve{
		"linear":      LinearCurve,
		"ease":        Ease,
		"ease_in":     EaseIn,
		"ease_out":    EaseOut,
		"ease_in_out": EaseInOut,
	}
)

func init() {
	families := []struct {
		name                  string
		in, out, inOut, outIn ease.TweenFunc
	}{
		{"quad", ease.InQuad, ease.OutQuad, ease.InOutQuad, ease.OutInQuad},
		{"cubic", ease.InCubic, ease.OutCubic, ease.InOutCubic, ease.OutInCubic},
		{"quart", ease.InQuart, ease.OutQuart, ease.InOutQuart, ease.OutInQuart},
		{"quint", ease.InQuint, ease.OutQuint, ease.InOutQuint, ease.OutInQuint},
		{"sine", ease.InSine, ease.OutSine, ease.InOutSine, ease.OutInSine},
		{"expo", ease.InExpo, ease.OutExpo, ease.InOutExpo, ease.OutInExpo},
		{"circ", ease.InCirc, ease.OutCirc, ease.InOutCirc, ease.OutInCirc},
		{"elastic", ease.InElastic, ease.OutElastic, ease.InOutElastic, ease.OutInElastic},
		{"back", ease.InBack, ease.OutBack, ease.InOutBack, ease.OutInBack},
		{"bounce", ease.InBounce, ease.OutBounce, ease.InOutBounce, ease.OutInBounce},
	}
	for _, f := range families {
		curves[f.name+"_in"] = FromTweenFunc(f.in)
		curves[f.name+"_out"] = FromTweenFunc(f.out)
		curves[f.name+"_in_out"] = FromTweenFunc(f.inOut)
		curves[f.name+"_out_in"] = FromTweenFunc(f.outIn)
	}
}

// FromTweenFunc adapts a gween easing function to a Curve over the unit
// interval.
func FromTweenFunc(fn ease.TweenFunc) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// Lookup returns the curve registered under name.
func Lookup(name string) (Curve, bool) {
	curvesMu.RLock()
	defer curvesMu.RUnlock()
	c, ok := curves[name]
	return c, ok
}

// Register adds or replaces a named curve.
func Register(name string, c Curve) {
	curvesMu.Lock()
	defer curvesMu.Unlock()
	curves[name] = c
}

// Names returns all registered curve names in sorted order.
func Names() []string {
	curvesMu.RLock()
	defer curvesMu.RUnlock()
	names := make([]string, 0, len(curves))
	for name := range curves {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
