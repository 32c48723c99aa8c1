package stage

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/teslashibe/go-ornament/internal/log"
	"github.com/teslashibe/go-ornament/pkg/gesture"
	"github.com/teslashibe/go-ornament/pkg/layout"
	"github.com/teslashibe/go-ornament/pkg/scene"
)

// Config holds the stage parameters.
type Config struct {
	// Layout holds the layout generator dimensions.
	Layout layout.Config

	// DecorationScale and PhotoScale are the base scales for new objects.
	DecorationScale float64
	PhotoScale      float64

	// Seed seeds both layout placement and focus selection. Zero seeds
	// from the clock.
	Seed int64
}

// DefaultConfig returns the stage defaults.
func DefaultConfig() Config {
	return Config{
		Layout:          layout.DefaultConfig(),
		DecorationScale: 1,
		PhotoScale:      1,
	}
}

// Stage owns the ordered object collection and the global layout state.
// All mutation goes through its methods; a mutex covers the one cross-tick
// operation (AddObject from a UI handler) that may interleave with Tick.
type Stage struct {
	mu sync.Mutex

	cfg     Config
	gen     *layout.Generator
	pick    *rand.Rand
	objects []*scene.Object

	mode  Mode
	focus *scene.Object

	hand   gesture.Signal
	orient Orientation
}

// New creates an empty stage in tree mode.
func New(cfg Config) *Stage {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Stage{
		cfg:  cfg,
		gen:  layout.NewGenerator(cfg.Layout, seed),
		pick: rand.New(rand.NewSource(seed + 1)),
		mode: ModeTree,
	}
}

// Mode returns the active mode.
func (s *Stage) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Focus returns the current focus subject, or nil outside focus mode.
func (s *Stage) Focus() *scene.Object {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.focus
}

// Objects returns the object count.
func (s *Stage) Objects() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

// Each calls fn for every object in insertion order. fn must not call back
// into the stage.
func (s *Stage) Each(fn func(*scene.Object)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.objects {
		fn(o)
	}
}

// AddObject appends a new object wrapping the given render handle. The
// object materializes at a scatter placement so it never flies in from the
// origin, then immediately receives the target of the active layout.
func (s *Stage) AddObject(handle scene.Handle, role scene.Role) *scene.Object {
	s.mu.Lock()
	defer s.mu.Unlock()

	base := s.cfg.DecorationScale
	if role == scene.RolePhoto {
		base = s.cfg.PhotoScale
	}

	obj := scene.NewObject(handle, role, base, s.gen.Spin())
	obj.Place(scene.Transform{
		Pos:   s.gen.ScatterPoint(),
		Scale: scene.Uniform(base),
	})
	s.objects = append(s.objects, obj)

	// Animate the newcomer into the live layout. Existing objects keep
	// their targets; only the new object is placed.
	switch s.mode {
	case ModeTree:
		obj.SetTarget(s.gen.Tree(len(s.objects)-1, len(s.objects), base))
	case ModeScatter:
		obj.SetTarget(scene.Transform{
			Pos:   s.gen.ScatterPoint(),
			Rot:   obj.Target().Rot,
			Scale: scene.Uniform(base),
		})
	case ModeFocus:
		obj.SetTarget(scene.Transform{
			Pos:   s.gen.ClearPoint(),
			Rot:   obj.Target().Rot,
			Scale: scene.Uniform(base),
		})
	}

	log.Debug("object added", "id", obj.ID, "role", role.String(), "mode", s.mode.String())
	return obj
}

// SetMode transitions the stage to the given mode. Re-entering the active
// mode is a no-op. Entering focus mode picks a photo uniformly at random;
// with no photos on stage the transition falls back to tree mode.
func (s *Stage) SetMode(mode Mode) error {
	if !mode.valid() {
		return fmt.Errorf("invalid mode %d", int(mode))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.setModeLocked(mode)
	return nil
}

// FocusLatest enters focus mode on the most recently added photo. This is
// the "photo just added" path; unlike SetMode(ModeFocus) the subject is
// deterministic. Falls back to tree mode when no photo exists.
func (s *Stage) FocusLatest() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var latest *scene.Object
	for _, o := range s.objects {
		if o.Role == scene.RolePhoto {
			latest = o
		}
	}
	if latest == nil {
		s.setModeLocked(ModeTree)
		return
	}

	// Explicit re-selection: applies even when focus mode is already
	// active on another subject.
	s.applyFocus(latest)
	s.focus = latest
	if s.mode != ModeFocus {
		s.mode = ModeFocus
		log.Info("mode changed", "mode", ModeFocus.String())
	}
}

// Reset returns the stage to its initial state: tree mode, no focus
// subject, neutral orientation.
func (s *Stage) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orient.Reset()
	s.hand = gesture.Signal{}
	s.focus = nil
	s.setModeLocked(ModeTree)
}

func (s *Stage) setModeLocked(mode Mode) {
	if mode == s.mode {
		return
	}

	switch mode {
	case ModeTree:
		s.applyTree()
		s.focus = nil
	case ModeScatter:
		s.applyScatter()
		s.focus = nil
	case ModeFocus:
		subject := s.randomPhoto()
		if subject == nil {
			// No photos to focus on. Not an error: fall back to the
			// tree, which is itself a no-op when already showing it.
			log.Info("focus requested with no photos, falling back to tree")
			s.focus = nil
			if s.mode != ModeTree {
				s.applyTree()
				s.mode = ModeTree
			}
			return
		}
		s.applyFocus(subject)
		s.focus = subject
	}

	s.mode = mode
	log.Info("mode changed", "mode", mode.String())
}

func (s *Stage) applyTree() {
	for i, o := range s.objects {
		o.SetTarget(s.gen.Tree(i, len(s.objects), o.BaseScale))
	}
}

func (s *Stage) applyScatter() {
	for _, o := range s.objects {
		o.SetTarget(scene.Transform{
			Pos:   s.gen.ScatterPoint(),
			Rot:   o.Target().Rot,
			Scale: scene.Uniform(o.BaseScale),
		})
	}
}

func (s *Stage) applyFocus(subject *scene.Object) {
	for _, o := range s.objects {
		if o == subject {
			o.SetTarget(s.gen.Focus(o.BaseScale))
			continue
		}
		o.SetTarget(scene.Transform{
			Pos:   s.gen.ClearPoint(),
			Rot:   o.Target().Rot,
			Scale: scene.Uniform(o.BaseScale),
		})
	}
}

func (s *Stage) randomPhoto() *scene.Object {
	var photos []*scene.Object
	for _, o := range s.objects {
		if o.Role == scene.RolePhoto {
			photos = append(photos, o)
		}
	}
	if len(photos) == 0 {
		return nil
	}
	return photos[s.pick.Intn(len(photos))]
}

// SetHandSignal records the latest pointing output from the classifier.
func (s *Stage) SetHandSignal(sig gesture.Signal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hand = sig
}

// HandSignal returns the latest pointing signal.
func (s *Stage) HandSignal() gesture.Signal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hand
}

// Orientation returns the damped whole-composition rotation.
func (s *Stage) Orientation() scene.Vec3 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orient.Current()
}

// Tick advances every object one step and updates the composition
// orientation. The rotation motion is resolved once from the mode and
// broadcast to all objects: scatter free-spins, everything else seeks.
func (s *Stage) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	motion := scene.MotionSeek
	if s.mode == ModeScatter {
		motion = scene.MotionFreeSpin
	}
	for _, o := range s.objects {
		o.Tick(motion)
	}

	s.orient.Update(s.mode, s.hand)
}
