package stage

import (
	"github.com/teslashibe/go-ornament/pkg/gesture"
)

// FrameSource is the boundary with the vision collaborator: it returns the
// newest landmark frame if one is available, or nil when no hand was
// detected or no new frame has arrived since the last call.
type FrameSource interface {
	Latest() *gesture.Frame
}

// Director drives one full update step per rendered frame, in a fixed
// order: consume the newest landmark frame, apply at most one gesture-
// driven mode transition, advance every object, update the composition
// orientation. The renderer calls Step once per frame and then draws.
type Director struct {
	stage      *Stage
	classifier *gesture.Classifier
	source     FrameSource
}

// NewDirector wires the stage to a gesture classifier and a frame source.
// The source may be nil when running without a camera.
func NewDirector(s *Stage, c *gesture.Classifier, src FrameSource) *Director {
	return &Director{stage: s, classifier: c, source: src}
}

// Step executes one tick.
func (d *Director) Step() {
	if d.source != nil {
		sig, ev := d.classifier.Classify(d.source.Latest())
		d.stage.SetHandSignal(sig)
		d.applyEvent(ev)
	}
	d.stage.Tick()
}

// applyEvent maps a discrete gesture to a mode request.
func (d *Director) applyEvent(ev gesture.Event) {
	switch ev {
	case gesture.EventPinch:
		d.stage.SetMode(ModeFocus)
	case gesture.EventFist:
		d.stage.SetMode(ModeTree)
	case gesture.EventOpen:
		d.stage.SetMode(ModeScatter)
	}
}

// SetMode requests a layout transition.
func (d *Director) SetMode(mode Mode) error {
	return d.stage.SetMode(mode)
}

// FocusLatest focuses the most recently added photo.
func (d *Director) FocusLatest() {
	d.stage.FocusLatest()
}

// Reset returns the stage to tree mode with neutral orientation.
func (d *Director) Reset() {
	d.stage.Reset()
}

// SetGestureEnabled toggles gesture input. Distinct from whether a hand is
// currently visible.
func (d *Director) SetGestureEnabled(enabled bool) {
	d.classifier.SetEnabled(enabled)
	if !enabled {
		d.stage.SetHandSignal(gesture.Signal{})
	}
}

// GestureEnabled reports whether gesture input is active.
func (d *Director) GestureEnabled() bool {
	return d.classifier.Enabled()
}

// Snapshot returns the stage state with the gesture flag filled in.
func (d *Director) Snapshot() State {
	st := d.stage.Snapshot()
	st.GestureEnabled = d.classifier.Enabled()
	return st
}
