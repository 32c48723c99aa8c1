// Choreo demo - headless walk through the scene choreography.
// Seeds a stage, cycles tree → scatter → focus, and prints where the
// objects settle. Handy for eyeballing layout changes without a window.
package main

import (
	"flag"
	"fmt"

	"github.com/teslashibe/go-ornament/internal/log"
	"github.com/teslashibe/go-ornament/pkg/gesture"
	"github.com/teslashibe/go-ornament/pkg/scene"
	"github.com/teslashibe/go-ornament/pkg/stage"
)

func main() {
	count := flag.Int("objects", 12, "Decoration count to seed")
	photos := flag.Int("photos", 2, "Photo count to seed")
	ticks := flag.Int("ticks", 240, "Settling ticks per mode")
	seed := flag.Int64("seed", 1, "Layout RNG seed")
	flag.Parse()

	log.Init("warn")

	cfg := stage.DefaultConfig()
	cfg.Seed = *seed
	st := stage.New(cfg)
	director := stage.NewDirector(st, gesture.NewClassifier(gesture.DefaultConfig()), nil)

	for i := 0; i < *count; i++ {
		st.AddObject(scene.NopHandle{}, scene.RoleDecoration)
	}
	for i := 0; i < *photos; i++ {
		st.AddObject(scene.NopHandle{}, scene.RolePhoto)
	}

	steps := []struct {
		name  string
		apply func()
	}{
		{"tree", func() { director.SetMode(stage.ModeTree) }},
		{"scatter", func() { director.SetMode(stage.ModeScatter) }},
		{"focus", func() { director.FocusLatest() }},
	}

	for _, step := range steps {
		step.apply()
		for i := 0; i < *ticks; i++ {
			director.Step()
		}
		snap := director.Snapshot()
		fmt.Printf("== %s (mode=%s, orientation %.3f/%.3f)\n",
			step.name, snap.Mode, snap.Orientation.X, snap.Orientation.Y)
		printSpread(st)
	}
}

// printSpread summarizes how far the settled objects sit from the origin.
func printSpread(st *stage.Stage) {
	min, max := -1.0, 0.0
	st.Each(func(obj *scene.Object) {
		n := obj.Current().Pos.Norm()
		if min < 0 || n < min {
			min = n
		}
		if n > max {
			max = n
		}
	})
	fmt.Printf("   %d objects, distance from origin %.1f .. %.1f\n", st.Objects(), min, max)
}
