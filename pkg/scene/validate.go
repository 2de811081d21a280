package scene

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/mod/semver"

	"github.com/go-drift/spantween/pkg/animation"
	"github.com/go-drift/spantween/pkg/ecs"
	"github.com/go-drift/spantween/pkg/effect"
	"github.com/go-drift/spantween/pkg/span"
	"github.com/go-drift/spantween/pkg/timer"
	"github.com/go-drift/spantween/pkg/timespan"
)

// SupportedMajor is the scene format major version this package reads.
const SupportedMajor = "v1"

// ErrVersion is returned for a missing, malformed or unsupported version.
var ErrVersion = errors.New("unsupported scene version")

// FieldError locates a validation failure inside a scene.
type FieldError struct {
	// Path is the location, such as "players[0].tweens[2].span".
	Path string
	Err  error
}

func (e *FieldError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldErr(path string, format string, args ...any) error {
	return &FieldError{Path: path, Err: fmt.Errorf(format, args...)}
}

// Validate checks the scene without building it.
func (s *Scene) Validate() error {
	_, err := s.compile()
	return err
}

// canonicalVersion accepts "1.2.3" as well as "v1.2.3".
func canonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}

type compiled struct {
	targets []Target
	players []compiledPlayer
}

type compiledPlayer struct {
	name   string
	player func() *span.Player
	self   *compiledTween
	tweens []compiledTween
}

type compiledTween struct {
	window timespan.Span
	curve  animation.Curve
	target string
	effect func(target ecs.Entity) effect.Effect
}

func (s *Scene) compile() (*compiled, error) {
	v := canonicalVersion(s.Version)
	if !semver.IsValid(v) {
		return nil, fmt.Errorf("%w: %q is not a semantic version", ErrVersion, s.Version)
	}
	if major := semver.Major(v); major != SupportedMajor {
		return nil, fmt.Errorf("%w: %s, want %s", ErrVersion, major, SupportedMajor)
	}

	names := make(map[string]string)
	claim := func(path, name string) error {
		if strings.TrimSpace(name) == "" {
			return fieldErr(path+".name", "name is required")
		}
		if prev, ok := names[name]; ok {
			return fieldErr(path+".name", "name %q already used by %s", name, prev)
		}
		names[name] = path
		return nil
	}

	out := &compiled{targets: s.Targets}
	targets := make(map[string]bool)
	for i, t := range s.Targets {
		path := fmt.Sprintf("targets[%d]", i)
		if err := claim(path, t.Name); err != nil {
			return nil, err
		}
		if t.Color != "" {
			if _, err := effect.ParseColor(t.Color); err != nil {
				return nil, &FieldError{Path: path + ".color", Err: err}
			}
		}
		targets[t.Name] = true
	}

	if len(s.Players) == 0 {
		return nil, fieldErr("players", "at least one player is required")
	}
	for i, p := range s.Players {
		path := fmt.Sprintf("players[%d]", i)
		if err := claim(path, p.Name); err != nil {
			return nil, err
		}
		cp, err := compilePlayer(path, p, targets)
		if err != nil {
			return nil, err
		}
		out.players = append(out.players, cp)
	}
	return out, nil
}

func compilePlayer(path string, p Player, targets map[string]bool) (compiledPlayer, error) {
	cp := compiledPlayer{name: p.Name}

	d, err := parseDuration(p.Duration)
	if err != nil {
		return cp, &FieldError{Path: path + ".duration", Err: err}
	}

	var opts []span.Option
	if p.Paused {
		opts = append(opts, span.WithPaused(true))
	}
	if p.Speed != nil {
		if *p.Speed < 0 {
			return cp, fieldErr(path+".speed", "speed must not be negative, got %v", *p.Speed)
		}
		opts = append(opts, span.WithSpeed(*p.Speed))
	}
	switch strings.ToLower(p.Direction) {
	case "", "forward":
	case "backward":
		opts = append(opts, span.WithDirection(timer.Backward))
	default:
		return cp, fieldErr(path+".direction", "unknown direction %q", p.Direction)
	}
	if p.Repeat != nil {
		r := timer.Times(p.Repeat.Times)
		if p.Repeat.Infinite {
			r = timer.Infinitely()
		}
		opts = append(opts, span.WithRepeat(r))
	}
	switch strings.ToLower(p.RepeatStyle) {
	case "":
	case "wrap_around":
		opts = append(opts, span.WithRepeatStyle(timer.WrapAround))
	case "ping_pong":
		opts = append(opts, span.WithRepeatStyle(timer.PingPong))
	default:
		return cp, fieldErr(path+".repeat_style", "unknown repeat style %q", p.RepeatStyle)
	}
	cp.player = func() *span.Player { return span.NewPlayer(d, opts...) }

	if p.Self != nil {
		ct, err := compileTween(path+".self", *p.Self, targets)
		if err != nil {
			return cp, err
		}
		cp.self = &ct
	}
	for j, tw := range p.Tweens {
		ct, err := compileTween(fmt.Sprintf("%s.tweens[%d]", path, j), tw, targets)
		if err != nil {
			return cp, err
		}
		cp.tweens = append(cp.tweens, ct)
	}
	return cp, nil
}

func compileTween(path string, tw Tween, targets map[string]bool) (compiledTween, error) {
	ct := compiledTween{target: tw.Target}

	switch {
	case tw.Span != "" && tw.Jump != "":
		return ct, fieldErr(path, "span and jump are mutually exclusive")
	case tw.Span != "":
		s, err := timespan.Parse(tw.Span)
		if err != nil {
			return ct, &FieldError{Path: path + ".span", Err: err}
		}
		ct.window = s
	case tw.Jump != "":
		at, err := parseDuration(tw.Jump)
		if err != nil {
			return ct, &FieldError{Path: path + ".jump", Err: err}
		}
		ct.window = timespan.Must(timespan.RangeInclusive(at, at))
		if tw.Curve == "" {
			ct.curve = animation.LinearCurve
		}
	default:
		return ct, fieldErr(path, "one of span or jump is required")
	}

	if tw.Curve != "" {
		c, ok := animation.Lookup(tw.Curve)
		if !ok {
			return ct, fieldErr(path+".curve", "unknown curve %q", tw.Curve)
		}
		ct.curve = c
	}

	if !targets[tw.Target] {
		return ct, fieldErr(path+".target", "unknown target %q", tw.Target)
	}

	fx, n, err := compileEffect(path, tw)
	if err != nil {
		return ct, err
	}
	if n != 1 {
		return ct, fieldErr(path, "exactly one of translation, scale, rotation, alpha or color is required, got %d", n)
	}
	ct.effect = fx
	return ct, nil
}

func compileEffect(path string, tw Tween) (func(ecs.Entity) effect.Effect, int, error) {
	var fx func(ecs.Entity) effect.Effect
	n := 0
	if r := tw.Translation; r != nil {
		n++
		fx = func(e ecs.Entity) effect.Effect {
			return effect.Translation{Entity: e, From: r.From.vec(), To: r.To.vec()}
		}
	}
	if r := tw.Scale; r != nil {
		n++
		fx = func(e ecs.Entity) effect.Effect {
			return effect.Scale{Entity: e, From: r.From.vec(), To: r.To.vec()}
		}
	}
	if r := tw.Rotation; r != nil {
		n++
		fx = func(e ecs.Entity) effect.Effect {
			return effect.Rotation{Entity: e, From: r.From, To: r.To}
		}
	}
	if r := tw.Alpha; r != nil {
		n++
		fx = func(e ecs.Entity) effect.Effect {
			return effect.Alpha{Entity: e, From: r.From, To: r.To}
		}
	}
	if r := tw.Color; r != nil {
		n++
		from, err := effect.ParseColor(r.From)
		if err != nil {
			return nil, n, &FieldError{Path: path + ".color.from", Err: err}
		}
		to, err := effect.ParseColor(r.To)
		if err != nil {
			return nil, n, &FieldError{Path: path + ".color.to", Err: err}
		}
		fx = func(e ecs.Entity) effect.Effect {
			return effect.Color{Entity: e, From: from, To: to}
		}
	}
	return fx, n, nil
}

func (v Vec2) vec() animation.Vec2 {
	return animation.Vec2{X: v[0], Y: v[1]}
}

func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("duration is required")
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("duration must not be negative, got %v", d)
	}
	return d, nil
}
