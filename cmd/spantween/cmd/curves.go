package cmd

import (
	"fmt"

	"github.com/go-drift/spantween/pkg/animation"
)

func init() {
	RegisterCommand(&Command{
		Name:  "curves",
		Short: "List curve names usable in scene files",
		Long: `List every curve name accepted by the "curve" key of a tween.

With --sample, each curve is also evaluated at 0.25, 0.5 and 0.75.`,
		Usage: "spantween curves [--sample]",
		Run:   runCurves,
	})
}

func runCurves(args []string) error {
	sample := false
	for _, arg := range args {
		switch arg {
		case "--sample":
			sample = true
		default:
			return fmt.Errorf("unknown flag %q", arg)
		}
	}
	for _, name := range animation.Names() {
		if !sample {
			fmt.Println(name)
			continue
		}
		c, _ := animation.Lookup(name)
		fmt.Printf("%-16s %.3f %.3f %.3f\n", name, c.Evaluate(0.25), c.Evaluate(0.5), c.Evaluate(0.75))
	}
	return nil
}
