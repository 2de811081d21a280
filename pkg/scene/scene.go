// Package scene builds span tween worlds from YAML scene files.
//
// A scene lists named targets with their initial properties and the
// players that animate them:
//
//	version: v1.0.0
//	targets:
//	  - name: box
//	    color: white
//	players:
//	  - name: intro
//	    duration: 2s
//	    repeat: infinite
//	    repeat_style: ping_pong
//	    tweens:
//	      - span: 0s..1s
//	        curve: ease_out
//	        target: box
//	        translation: {from: [0, 0], to: [100, 0]}
//	      - jump: 1500ms
//	        target: box
//	        color: {from: white, to: tomato}
//
// Spans use range syntax (see timespan.Parse). Curves are names known to
// animation.Lookup. Scenes are construction input only; a world is never
// written back to a scene.
package scene

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scene is the root of a scene file.
type Scene struct {
	Version string   `yaml:"version"`
	Targets []Target `yaml:"targets,omitempty"`
	Players []Player `yaml:"players"`
}

// Vec2 is an [x, y] pair.
type Vec2 [2]float64

// Target is an entity whose properties tweens write.
type Target struct {
	Name        string   `yaml:"name"`
	Translation *Vec2    `yaml:"translation,omitempty"`
	Scale       *Vec2    `yaml:"scale,omitempty"`
	Rotation    *float64 `yaml:"rotation,omitempty"`
	Alpha       *float64 `yaml:"alpha,omitempty"`
	Color       string   `yaml:"color,omitempty"`
}

// Player is a playback timer and the tweens it drives.
type Player struct {
	Name        string   `yaml:"name"`
	Duration    string   `yaml:"duration"`
	Speed       *float64 `yaml:"speed,omitempty"`
	Paused      bool     `yaml:"paused,omitempty"`
	Direction   string   `yaml:"direction,omitempty"`
	Repeat      *Repeat  `yaml:"repeat,omitempty"`
	RepeatStyle string   `yaml:"repeat_style,omitempty"`
	// Self is a tween carried by the player entity itself.
	Self   *Tween  `yaml:"self,omitempty"`
	Tweens []Tween `yaml:"tweens,omitempty"`
}

// Repeat is either "infinite" or a repeat count.
type Repeat struct {
	Infinite bool
	Times    int
}

// UnmarshalYAML accepts "infinite" or a non-negative integer.
func (r *Repeat) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: repeat must be \"infinite\" or an integer", value.Line)
	}
	s := strings.TrimSpace(value.Value)
	if strings.EqualFold(s, "infinite") {
		*r = Repeat{Infinite: true}
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("line %d: repeat must be \"infinite\" or a non-negative integer, got %q", value.Line, value.Value)
	}
	*r = Repeat{Times: n}
	return nil
}

// MarshalYAML writes the same forms UnmarshalYAML accepts.
func (r Repeat) MarshalYAML() (any, error) {
	if r.Infinite {
		return "infinite", nil
	}
	return r.Times, nil
}

// Tween is one span tween. Exactly one of Span and Jump is set, and
// exactly one effect field is set.
type Tween struct {
	Span   string `yaml:"span,omitempty"`
	Jump   string `yaml:"jump,omitempty"`
	Curve  string `yaml:"curve,omitempty"`
	Target string `yaml:"target"`

	Translation *VecRange   `yaml:"translation,omitempty"`
	Scale       *VecRange   `yaml:"scale,omitempty"`
	Rotation    *FloatRange `yaml:"rotation,omitempty"`
	Alpha       *FloatRange `yaml:"alpha,omitempty"`
	Color       *ColorRange `yaml:"color,omitempty"`
}

// VecRange animates a vector property.
type VecRange struct {
	From Vec2 `yaml:"from"`
	To   Vec2 `yaml:"to"`
}

// FloatRange animates a scalar property.
type FloatRange struct {
	From float64 `yaml:"from"`
	To   float64 `yaml:"to"`
}

// ColorRange animates a color. Values are SVG color names or hex.
type ColorRange struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Load reads and validates the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scene.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
