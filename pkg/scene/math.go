// Package scene provides the animated-object model for the ornament stage.
// Each object owns a current and a target transform; every tick the current
// transform converges toward the target by a fixed fractional step.
package scene

import "math"

// Vec3 is a 3-component vector. It doubles as a set of Euler angles
// (rotation about X, Y, Z in radians) for object orientation.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum of v and other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns the component-wise difference of v and other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v multiplied by s on every component.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Approach moves v toward target by the fraction alpha on each component.
// Repeated calls converge exponentially without overshoot for alpha in (0,1].
func (v Vec3) Approach(target Vec3, alpha float64) Vec3 {
	return Vec3{
		X: v.X + (target.X-v.X)*alpha,
		Y: v.Y + (target.Y-v.Y)*alpha,
		Z: v.Z + (target.Z-v.Z)*alpha,
	}
}

// Uniform returns a vector with all three components set to s.
func Uniform(s float64) Vec3 {
	return Vec3{s, s, s}
}

// Transform is a full placement: position, Euler rotation, and scale.
type Transform struct {
	Pos   Vec3
	Rot   Vec3
	Scale Vec3
}
