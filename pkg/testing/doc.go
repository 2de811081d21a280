// Package testing drives span tween worlds frame by frame in tests.
//
// # Quick Start
//
// Create a tester for a world, advance time, and assert on properties:
//
//	func TestFadeIn(t *testing.T) {
//	    w := world.New()
//	    // ... spawn players and spans ...
//	    tester := tweentest.NewTesterWithT(t, w)
//
//	    tester.PumpFrames(30, 16*time.Millisecond)
//	    if w.Properties(box).Alpha < 0.4 {
//	        t.Error("expected box to be half visible")
//	    }
//	}
//
// # Time Control
//
// The tester installs a [FakeClock] as the animation clock. Frames only
// see time that was explicitly advanced:
//
//	tester.Clock().Advance(100 * time.Millisecond)
//	tester.Pump()
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import tweentest "github.com/go-drift/spantween/pkg/testing"
package testing
