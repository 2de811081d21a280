// Package animation provides the frame-driving and easing primitives used
// by span tweens.
//
// # Core Components
//
//   - [Curve]: Easing functions that transform linear span progress into
//     natural-feeling motion. Includes CSS-style cubic bezier curves and the
//     gween easing families, all addressable by name through [Lookup].
//
//   - [Ticker]: A frame callback that receives the delta since its previous
//     step. Tickers are driven by the host's frame loop via [StepTickers].
//
//   - [Tween]: Interpolates between begin and end values of any type given
//     eased progress. Used by effects to turn progress into property values.
//
// # Basic Usage
//
// Drive a world of span tween players from a ticker:
//
//	ticker := animation.NewTicker(w.Update)
//	ticker.Start()
//	defer ticker.Stop()
//
//	// once per frame
//	animation.StepTickers()
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active.
//
// The callback receives the time since the ticker's previous step (or since
// Start on the first step), capped at MaxDelta when MaxDelta is positive.
type Ticker struct {
	// MaxDelta caps the delta handed to the callback, so a long stall is
	// replayed as one bounded frame. Zero disables the cap.
	MaxDelta time.Duration

	callback func(delta time.Duration)
	isActive bool
	last     time.Time
	frames   uint64
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(delta time.Duration)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.last = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Frames returns how many times the ticker has been stepped.
func (t *Ticker) Frames() uint64 {
	return t.frames
}

func (t *Ticker) step(now time.Time) {
	delta := now.Sub(t.last)
	t.last = now
	if delta < 0 {
		delta = 0
	}
	if t.MaxDelta > 0 && delta > t.MaxDelta {
		delta = t.MaxDelta
	}
	t.frames++
	if t.callback != nil {
		t.callback(delta)
	}
}

// StepTickers advances all active tickers.
// This should be called once per frame from the host loop.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Make a copy to avoid holding lock during callbacks
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	now := Now()
	for _, ticker := range tickers {
		if ticker.isActive {
			ticker.step(now)
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
