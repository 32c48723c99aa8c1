package gesture

import "sync/atomic"

// Event is a discrete gesture classification for one frame.
type Event int

const (
	// EventNone means no hand, a stale frame, or the openness dead zone.
	EventNone Event = iota
	// EventPinch is thumb tip touching index tip.
	EventPinch
	// EventFist is all fingers curled toward the wrist.
	EventFist
	// EventOpen is all fingers extended.
	EventOpen
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventPinch:
		return "pinch"
	case EventFist:
		return "fist"
	case EventOpen:
		return "open"
	default:
		return "none"
	}
}

// Signal is the continuous pointing output: palm-center position in
// screen coordinates, mirrored horizontally for the front-facing camera.
type Signal struct {
	Present bool    `json:"present"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

// Config holds the classification thresholds.
type Config struct {
	// PinchThreshold is the thumb-index distance below which (strictly)
	// the frame classifies as a pinch.
	PinchThreshold float64

	// FistMax and OpenMin bound the openness metric: mean fingertip to
	// wrist distance. Below FistMax is a fist, above OpenMin is an open
	// hand, and the band between is a dead zone that prevents jitter at
	// the boundary.
	FistMax float64
	OpenMin float64
}

// DefaultConfig returns the thresholds tuned for a webcam at arm's length.
func DefaultConfig() Config {
	return Config{
		PinchThreshold: 0.05,
		FistMax:        0.25,
		OpenMin:        0.40,
	}
}

// Classifier turns a stream of landmark frames into gesture events.
// Classify is driven from the stage tick only; the enabled flag is atomic
// because web handlers toggle it while the tick runs.
type Classifier struct {
	cfg     Config
	enabled atomic.Bool

	lastSeen Frame
	hasSeen  bool
}

// NewClassifier creates a classifier with gestures initially disabled.
func NewClassifier(cfg Config) *Classifier {
	return &Classifier{cfg: cfg}
}

// SetEnabled toggles gesture input. While disabled, frames are still
// consumed for liveness but the classifier reports no hand and never
// emits an event.
func (c *Classifier) SetEnabled(enabled bool) {
	c.enabled.Store(enabled)
}

// Enabled reports whether gesture input is active.
func (c *Classifier) Enabled() bool {
	return c.enabled.Load()
}

// Classify processes one frame. A nil frame means no hand was detected.
// A frame with the same capture timestamp as the previous call is treated
// as stale and yields no signal change and no event.
func (c *Classifier) Classify(frame *Frame) (Signal, Event) {
	if frame == nil {
		return Signal{}, EventNone
	}
	if c.hasSeen && frame.Captured.Equal(c.lastSeen.Captured) {
		return c.signalFor(c.lastSeen), EventNone
	}
	c.lastSeen = *frame
	c.hasSeen = true

	if !c.enabled.Load() {
		return Signal{}, EventNone
	}

	return c.signalFor(*frame), c.classify(*frame)
}

// signalFor builds the pointing signal from the palm center. X is mirrored
// so a hand on the viewer's left points left on screen.
func (c *Classifier) signalFor(frame Frame) Signal {
	if !c.enabled.Load() {
		return Signal{}
	}
	palm := frame.Points[PalmCenter]
	return Signal{Present: true, X: 1 - palm.X, Y: palm.Y}
}

func (c *Classifier) classify(frame Frame) Event {
	// Pinch takes priority over the openness tests.
	pinch := frame.Points[ThumbTip].Dist(frame.Points[IndexTip])
	if pinch < c.cfg.PinchThreshold {
		return EventPinch
	}

	open := c.openness(frame)
	switch {
	case open < c.cfg.FistMax:
		return EventFist
	case open > c.cfg.OpenMin:
		return EventOpen
	default:
		return EventNone
	}
}

// openness is the mean distance from the four non-thumb fingertips to the
// wrist.
func (c *Classifier) openness(frame Frame) float64 {
	wrist := frame.Points[Wrist]
	sum := 0.0
	for _, tip := range []int{IndexTip, MiddleTip, RingTip, PinkyTip} {
		sum += frame.Points[tip].Dist(wrist)
	}
	return sum / 4
}
