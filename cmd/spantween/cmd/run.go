package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-drift/spantween/pkg/animation"
	"github.com/go-drift/spantween/pkg/ecs"
	"github.com/go-drift/spantween/pkg/effect"
	"github.com/go-drift/spantween/pkg/scene"
	"github.com/go-drift/spantween/pkg/span"
	"github.com/go-drift/spantween/pkg/world"
)

// maxSettle bounds a run without --duration when some player never ends.
const maxSettle = time.Minute

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Step a scene with a fixed frame delta",
		Long: `Load a scene and step it offline with a fixed frame delta.

Each frame advances every player, resolves its spans and applies their
effects to the targets. Player events are printed as they happen, and
target properties are printed every N frames and once at the end.

Flags:
  --fps N          Frames per second (default: 60)
  --duration D     Simulated time to run, e.g. 2.5s (default: until every
                   player has finished, at most 1m)
  --every N        Print target properties every N frames (default: 0, off)`,
		Usage: "spantween run <scene.yaml> [--fps N] [--duration D] [--every N]",
		Run:   runRun,
	})
}

type runOptions struct {
	fps      int
	duration time.Duration
	every    int
}

func runRun(args []string) error {
	files, opts, err := parseRunArgs(args)
	if err != nil {
		return err
	}
	if len(files) != 1 {
		return fmt.Errorf("exactly one scene file is required\n\nUsage: spantween run <scene.yaml> [--fps N]")
	}

	s, err := scene.Load(files[0])
	if err != nil {
		return err
	}
	return simulate(os.Stdout, s, opts)
}

func parseRunArgs(args []string) ([]string, runOptions, error) {
	opts := runOptions{fps: 60}
	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, value, hasValue := strings.Cut(arg, "=")
		switch name {
		case "--fps", "--duration", "--every":
			if !hasValue {
				if i+1 >= len(args) {
					return nil, opts, fmt.Errorf("%s requires a value", name)
				}
				value = args[i+1]
				i++
			}
		default:
			filtered = append(filtered, arg)
			continue
		}

		switch name {
		case "--fps":
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return nil, opts, fmt.Errorf("--fps must be a positive integer, got %q", value)
			}
			opts.fps = n
		case "--duration":
			d, err := time.ParseDuration(value)
			if err != nil || d <= 0 {
				return nil, opts, fmt.Errorf("--duration must be a positive duration, got %q", value)
			}
			opts.duration = d
		case "--every":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return nil, opts, fmt.Errorf("--every must be a non-negative integer, got %q", value)
			}
			opts.every = n
		}
	}
	return filtered, opts, nil
}

// simulate builds s into a fresh world and steps it through a frame ticker
// driven by a fixed-step clock.
func simulate(out io.Writer, s *scene.Scene, opts runOptions) error {
	w := world.New()
	named, err := s.Build(w)
	if err != nil {
		return err
	}
	names := make(map[ecs.Entity]string, len(named))
	for name, e := range named {
		names[e] = name
	}
	var targets []string
	for _, t := range s.Targets {
		targets = append(targets, t.Name)
	}

	frame := time.Second / time.Duration(opts.fps)
	clock := animation.NewStepClock(frame)
	prev := animation.SetClock(clock)
	defer animation.SetClock(prev)

	var now time.Duration
	ticker := animation.NewTicker(func(delta time.Duration) {
		w.Update(delta)
	})
	ticker.Start()
	defer ticker.Stop()

	unsubscribe := w.Events().AddListener(func(e span.PlayerEnded) {
		fmt.Fprintf(out, "%10v  %s %s (%s)\n", now, names[e.Player], e.Result, e.Direction)
	})
	defer unsubscribe()

	limit := opts.duration
	if limit == 0 {
		limit = maxSettle
	}
	frames := 0
	for now < limit {
		if opts.duration == 0 && !w.HasActivePlayers() {
			break
		}
		clock.Step()
		now += frame
		frames++
		animation.StepTickers()
		if opts.every > 0 && frames%opts.every == 0 {
			printTargets(out, w, now, named, targets)
		}
	}
	if opts.duration == 0 && w.HasActivePlayers() {
		log.Printf("warning: players still active after %v; pass --duration to bound the run", maxSettle)
	}

	fmt.Fprintf(out, "%d frames, %v simulated\n", frames, now)
	printTargets(out, w, now, named, targets)
	return nil
}

func printTargets(out io.Writer, w *world.World, now time.Duration, named map[string]ecs.Entity, targets []string) {
	sorted := slices.Clone(targets)
	slices.Sort(sorted)
	for _, name := range sorted {
		fmt.Fprintf(out, "%10v  %s %s\n", now, name, formatProperties(w.Properties(named[name])))
	}
}

func formatProperties(p *effect.Properties) string {
	return fmt.Sprintf("translation=(%.2f, %.2f) scale=(%.2f, %.2f) rotation=%.3f alpha=%.3f color=#%02x%02x%02x%02x",
		p.Translation.X, p.Translation.Y, p.Scale.X, p.Scale.Y, p.Rotation, p.Alpha,
		p.Color.R, p.Color.G, p.Color.B, p.Color.A)
}
