package render

import (
	"math"

	"github.com/teslashibe/go-ornament/pkg/scene"
)

// Camera constants. The camera rests on the +Z axis looking at the origin;
// the focus layout places its subject at z=40, between the stage center
// and the camera.
const (
	cameraZ     = 50.0
	focalLength = 620.0
	nearPlane   = 1.0
)

// rotate applies the whole-composition orientation to a world position:
// yaw about Y, then pitch about X. Roll is unused by the orientation
// controller.
func rotate(p scene.Vec3, orient scene.Vec3) scene.Vec3 {
	sinY, cosY := math.Sincos(orient.Y)
	x := p.X*cosY + p.Z*sinY
	z := -p.X*sinY + p.Z*cosY

	sinX, cosX := math.Sincos(orient.X)
	y := p.Y*cosX - z*sinX
	z = p.Y*sinX + z*cosX

	return scene.Vec3{X: x, Y: y, Z: z}
}

// projected is a screen-space placement with the view depth retained for
// painter's-order sorting and perspective sizing.
type projected struct {
	x, y  float64
	depth float64
	// px is the on-screen size of one world unit at this depth.
	px float64
}

// project maps a rotated world position to screen coordinates. Returns
// false when the point sits behind the near plane.
func project(p scene.Vec3, orient scene.Vec3, w, h int) (projected, bool) {
	v := rotate(p, orient)
	depth := cameraZ - v.Z
	if depth < nearPlane {
		return projected{}, false
	}

	px := focalLength / depth
	return projected{
		x:     float64(w)/2 + v.X*px,
		y:     float64(h)/2 - v.Y*px,
		depth: depth,
		px:    px,
	}, true
}
