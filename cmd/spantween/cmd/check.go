package cmd

import (
	"fmt"

	"github.com/go-drift/spantween/pkg/scene"
)

func init() {
	RegisterCommand(&Command{
		Name:  "check",
		Short: "Validate a scene file",
		Long: `Validate a scene file without running it.

The scene version, every span, curve name, target reference and color is
checked. The first problem found is reported with its location, for
example "players[0].tweens[2].span".`,
		Usage: "spantween check <scene.yaml>",
		Run:   runCheck,
	})
}

func runCheck(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("exactly one scene file is required\n\nUsage: spantween check <scene.yaml>")
	}
	s, err := scene.Load(args[0])
	if err != nil {
		return err
	}
	fmt.Println(summarize(s))
	return nil
}

func summarize(s *scene.Scene) string {
	tweens := 0
	for _, p := range s.Players {
		tweens += len(p.Tweens)
		if p.Self != nil {
			tweens++
		}
	}
	return fmt.Sprintf("ok: version %s, %d targets, %d players, %d tweens",
		s.Version, len(s.Targets), len(s.Players), tweens)
}
