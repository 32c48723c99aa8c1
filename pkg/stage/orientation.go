package stage

import (
	"github.com/teslashibe/go-ornament/pkg/gesture"
	"github.com/teslashibe/go-ornament/pkg/scene"
)

// Orientation damping and idle-motion constants, applied once per tick.
const (
	// orientAlpha is the per-axis blend factor toward the target rotation.
	orientAlpha = 0.1
	// idleYawStep is the slow auto-rotate applied while no hand steers.
	idleYawStep = 0.002
	// idlePitchDecay self-levels pitch while idle.
	idlePitchDecay = 0.95
	// yawSpan and pitchSpan map the pointing signal (centered on 0.5) to
	// rotation targets in radians.
	yawSpan   = 4
	pitchSpan = 2
)

// Orientation turns the continuous pointing signal into a damped rotation
// of the whole composition. While a subject is focused it overrides any
// hand signal and levels the stage so the subject faces the viewer.
type Orientation struct {
	current scene.Vec3
}

// Current returns the composition rotation (Euler angles, radians).
func (o *Orientation) Current() scene.Vec3 {
	return o.current
}

// Reset snaps the composition back to neutral.
func (o *Orientation) Reset() {
	o.current = scene.Vec3{}
}

// Update advances the rotation one tick.
func (o *Orientation) Update(mode Mode, hand gesture.Signal) {
	switch {
	case mode == ModeFocus:
		o.current = o.current.Approach(scene.Vec3{}, orientAlpha)
	case hand.Present:
		target := scene.Vec3{
			X: (hand.Y - 0.5) * pitchSpan,
			Y: (hand.X - 0.5) * yawSpan,
		}
		o.current = o.current.Approach(target, orientAlpha)
	default:
		o.current.Y += idleYawStep
		o.current.X *= idlePitchDecay
	}
}
