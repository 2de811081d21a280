package span

import (
	"time"

	"github.com/go-drift/spantween/pkg/ecs"
	"github.com/go-drift/spantween/pkg/timer"
)

// Player drives the spans it owns with a playback timer.
type Player struct {
	Timer *timer.Timer
}

// Option configures a Player created by [NewPlayer].
type Option func(*Player)

// NewPlayer returns a forward, non-repeating player of the given duration.
func NewPlayer(duration time.Duration, opts ...Option) *Player {
	p := &Player{Timer: timer.New(duration)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WithPaused sets whether the player starts paused.
func WithPaused(paused bool) Option {
	return func(p *Player) { p.Timer.Paused = paused }
}

// WithDirection sets the initial direction. A backward player starts at the
// end of its timeline.
func WithDirection(dir timer.Direction) Option {
	return func(p *Player) {
		p.Timer.Direction = dir
		if dir == timer.Backward {
			p.Timer.SetElapsed(p.Timer.Duration)
		} else {
			p.Timer.SetElapsed(0)
		}
	}
}

// WithRepeat sets the repeat policy. Each player built with the option
// gets its own copy.
func WithRepeat(r timer.Repeat) Option {
	return func(p *Player) {
		r := r
		p.Timer.Repeat = &r
	}
}

// WithoutRepeat makes the player play once.
func WithoutRepeat() Option {
	return func(p *Player) { p.Timer.Repeat = nil }
}

// WithRepeatStyle sets the repeat style.
func WithRepeatStyle(style timer.RepeatStyle) Option {
	return func(p *Player) { p.Timer.RepeatStyle = style }
}

// WithSpeed sets the speed multiplier applied to every frame delta.
func WithSpeed(scale float64) Option {
	return func(p *Player) { p.Timer.SpeedScale = scale }
}

// PlayerEnded is sent when a player's timer reaches an edge, whether it
// repeated or finished.
type PlayerEnded struct {
	// Player is the entity carrying the player.
	Player ecs.Entity
	// Direction is the timer direction after the tick.
	Direction timer.Direction
	// Repeat is a snapshot of the repeat policy after the tick, or nil.
	Repeat *timer.Repeat
	// Result is Repeated or AllDone.
	Result timer.TickResult
}

// IsAllDone reports whether the player will not repeat again.
func (e PlayerEnded) IsAllDone() bool {
	return e.Repeat == nil || e.Repeat.Exhausted()
}
