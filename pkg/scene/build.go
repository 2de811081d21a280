package scene

import (
	"fmt"

	"github.com/go-drift/spantween/pkg/builder"
	"github.com/go-drift/spantween/pkg/ecs"
	"github.com/go-drift/spantween/pkg/effect"
	"github.com/go-drift/spantween/pkg/world"
)

// Build spawns the scene's targets and players into w. It returns every
// named entity; names are also registered with w.SetName.
//
// Nothing is spawned when the scene is invalid.
func (s *Scene) Build(w *world.World) (map[string]ecs.Entity, error) {
	c, err := s.compile()
	if err != nil {
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}

	named := make(map[string]ecs.Entity, len(c.targets)+len(c.players))
	for _, t := range c.targets {
		e := w.Spawn()
		w.SetName(e, t.Name)
		named[t.Name] = e
		applyInitial(w.Properties(e), t)
	}

	for _, cp := range c.players {
		pe := w.Spawn()
		w.SetName(pe, cp.name)
		named[cp.name] = pe
		w.AddPlayer(pe, cp.player())

		if self := cp.self; self != nil {
			w.AddSpan(pe, self.window)
			w.SetCurve(pe, self.curve)
			w.SetEffect(pe, self.effect(named[self.target]))
		}
		b := builder.Tweens(w, pe)
		for _, ct := range cp.tweens {
			b.Tween(ct.window, ct.curve, ct.effect(named[ct.target]))
		}
	}
	return named, nil
}

func applyInitial(p *effect.Properties, t Target) {
	if t.Translation != nil {
		p.Translation = t.Translation.vec()
	}
	if t.Scale != nil {
		p.Scale = t.Scale.vec()
	}
	if t.Rotation != nil {
		p.Rotation = *t.Rotation
	}
	if t.Alpha != nil {
		p.Alpha = *t.Alpha
	}
	if t.Color != "" {
		// Already validated.
		p.Color, _ = effect.ParseColor(t.Color)
	}
}
