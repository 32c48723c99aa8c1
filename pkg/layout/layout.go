// Package layout computes target transforms for the three stage layouts:
// a descending tree helix, a spherical scatter shell, and a single-subject
// focus arrangement. All randomness is drawn fresh on every call, so
// re-entering a layout reshuffles placements.
package layout

import (
	"math"
	"math/rand"

	"github.com/teslashibe/go-ornament/pkg/scene"
)

// Config holds the tunable layout parameters.
type Config struct {
	// TreeRadius is the helix radius at the base. The radius tapers
	// linearly to zero at the apex.
	TreeRadius float64
	// TreeTurns is how many full turns the helix makes top to bottom.
	TreeTurns float64
	// TreeHeight is the total vertical span, centered on the origin.
	TreeHeight float64
	// TreeJitter is the uniform jitter amplitude applied to X and Z so the
	// helix does not look machine-perfect.
	TreeJitter float64

	// ShellInner and ShellThickness bound the scatter shell radius:
	// [ShellInner, ShellInner+ShellThickness]. The radius is sampled
	// linear-uniform rather than uniform-in-volume, which biases objects
	// toward the outer shell.
	ShellInner     float64
	ShellThickness float64

	// FocusPos is where the focus subject sits, directly ahead of the
	// camera's resting frame.
	FocusPos scene.Vec3
	// FocusScale multiplies the subject's base scale while focused.
	FocusScale float64
	// ClearFactor pushes non-subject objects outward by this factor while
	// a subject is focused, clearing the stage.
	ClearFactor float64

	// SpinMax bounds the per-axis spin velocity sampled for new objects.
	SpinMax float64
}

// DefaultConfig returns the stage dimensions used by the application.
func DefaultConfig() Config {
	return Config{
		TreeRadius:     15,
		TreeTurns:      25,
		TreeHeight:     40,
		TreeJitter:     0.5,
		ShellInner:     8,
		ShellThickness: 12,
		FocusPos:       scene.Vec3{X: 0, Y: 2, Z: 40},
		FocusScale:     3,
		ClearFactor:    2,
		SpinMax:        0.01,
	}
}

// Generator produces layout targets. Not safe for concurrent use; the stage
// serializes all calls under its own lock.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

// NewGenerator creates a generator seeded for reproducible placement.
func NewGenerator(cfg Config, seed int64) *Generator {
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Tree returns the helix target for the object at the given collection
// index. Index order determines helix phase: index 0 sits at the wide base,
// the last index near the apex, with height rising as the index grows.
func (g *Generator) Tree(index, total int, baseScale float64) scene.Transform {
	t := float64(index) / float64(total)
	theta := g.cfg.TreeTurns * 2 * math.Pi * t
	radius := g.cfg.TreeRadius * (1 - t)

	pos := scene.Vec3{
		X: radius*math.Cos(theta) + g.jitter(),
		Y: g.cfg.TreeHeight*t - g.cfg.TreeHeight/2,
		Z: radius*math.Sin(theta) + g.jitter(),
	}
	rot := scene.Vec3{
		X: g.rng.Float64() * math.Pi,
		Y: g.rng.Float64() * math.Pi,
		Z: 0,
	}

	return scene.Transform{Pos: pos, Rot: rot, Scale: scene.Uniform(baseScale)}
}

// ScatterPoint samples a position in the spherical shell. Rotation is not
// part of the result: scattered objects free-spin, so their rotation
// target is left wherever it was.
func (g *Generator) ScatterPoint() scene.Vec3 {
	r := g.cfg.ShellInner + g.cfg.ShellThickness*g.rng.Float64()
	theta := 2 * math.Pi * g.rng.Float64()
	phi := math.Acos(2*g.rng.Float64() - 1)

	return scene.Vec3{
		X: r * math.Sin(phi) * math.Cos(theta),
		Y: r * math.Sin(phi) * math.Sin(theta),
		Z: r * math.Cos(phi),
	}
}

// Focus returns the subject target: front and center, neutral orientation,
// enlarged.
func (g *Generator) Focus(baseScale float64) scene.Transform {
	return scene.Transform{
		Pos:   g.cfg.FocusPos,
		Rot:   scene.Vec3{},
		Scale: scene.Uniform(baseScale * g.cfg.FocusScale),
	}
}

// ClearPoint samples a scatter position pushed outward by the clear factor,
// used for every non-subject object while a subject is focused.
func (g *Generator) ClearPoint() scene.Vec3 {
	return g.ScatterPoint().Scale(g.cfg.ClearFactor)
}

// Spin samples a fixed per-axis spin velocity for a new object.
func (g *Generator) Spin() scene.Vec3 {
	return scene.Vec3{
		X: (g.rng.Float64()*2 - 1) * g.cfg.SpinMax,
		Y: (g.rng.Float64()*2 - 1) * g.cfg.SpinMax,
		Z: (g.rng.Float64()*2 - 1) * g.cfg.SpinMax,
	}
}

func (g *Generator) jitter() float64 {
	return g.rng.Float64() - 0.5
}
