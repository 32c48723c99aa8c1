// Package gesture classifies hand-landmark frames into discrete gesture
// events and a continuous pointing signal. It consumes the 21-point
// normalized hand skeleton produced by the vision collaborator.
package gesture

import (
	"math"
	"time"
)

// LandmarkCount is the number of points in one hand skeleton.
const LandmarkCount = 21

// Landmark indices for the points the classifier cares about.
const (
	Wrist      = 0
	ThumbTip   = 4
	IndexTip   = 8
	PalmCenter = 9
	MiddleTip  = 12
	RingTip    = 16
	PinkyTip   = 20
)

// Landmark is one normalized point: x and y in [0,1] with the origin at the
// top-left of the camera frame.
type Landmark struct {
	X, Y float64
}

// Dist returns the Euclidean distance between two landmarks.
func (l Landmark) Dist(other Landmark) float64 {
	dx := l.X - other.X
	dy := l.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Frame is one detector output: a full hand skeleton plus the capture
// timestamp, which identifies the frame so it is never processed twice.
type Frame struct {
	Captured time.Time
	Points   [LandmarkCount]Landmark
}
