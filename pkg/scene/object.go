package scene

import "github.com/google/uuid"

// Role distinguishes the two kinds of objects on the stage.
type Role int

const (
	// RoleDecoration is a fixed ornament created at startup.
	RoleDecoration Role = iota
	// RolePhoto is a user-added photo card, eligible for focus.
	RolePhoto
)

// String returns the role name for logs and the dashboard.
func (r Role) String() string {
	switch r {
	case RoleDecoration:
		return "decoration"
	case RolePhoto:
		return "photo"
	default:
		return "unknown"
	}
}

// Motion selects how rotation advances during a tick. It is resolved once
// per stage tick from the global mode and broadcast to every object, rather
// than each object consulting global state.
type Motion int

const (
	// MotionSeek eases rotation toward the target orientation.
	MotionSeek Motion = iota
	// MotionFreeSpin accumulates each object's spin velocity and ignores
	// the rotation target. Position and scale still seek.
	MotionFreeSpin
)

// easeAlpha is the per-tick blend factor for position, scale and seeking
// rotation. The easing is frame-rate-coupled: a fixed fraction per call at
// the nominal 60 Hz tick.
const easeAlpha = 0.05

// spinRate multiplies an object's spin velocity while free-spinning.
const spinRate = 2.0

// Object is one placeable item: an opaque render handle plus a current and
// a target transform. The current transform is the authoritative on-screen
// state; the target changes only when a layout is applied.
type Object struct {
	ID        uuid.UUID
	Role      Role
	BaseScale float64

	handle  Handle
	current Transform
	target  Transform

	// spin is the fixed per-axis angular velocity used while free-spinning.
	spin Vec3
}

// NewObject creates an object wrapping the given render handle. The spin
// velocity is fixed for the object's lifetime.
func NewObject(handle Handle, role Role, baseScale float64, spin Vec3) *Object {
	o := &Object{
		ID:        uuid.New(),
		Role:      role,
		BaseScale: baseScale,
		handle:    handle,
		spin:      spin,
	}
	o.current.Scale = Uniform(baseScale)
	o.target.Scale = Uniform(baseScale)
	return o
}

// SetTarget overwrites the target transform. The current transform is not
// touched; motion toward the new target is emergent from Tick.
func (o *Object) SetTarget(t Transform) {
	o.target = t
}

// Place overwrites both current and target, so the object appears at the
// given transform immediately. Used when an object enters the scene.
func (o *Object) Place(t Transform) {
	o.current = t
	o.target = t
	if o.handle != nil {
		o.handle.Apply(o.current)
	}
}

// Current returns the on-screen transform.
func (o *Object) Current() Transform {
	return o.current
}

// Target returns the transform the object is converging toward.
func (o *Object) Target() Transform {
	return o.target
}

// Tick advances the current transform one step toward the target and writes
// it through to the render handle. It cannot fail.
func (o *Object) Tick(motion Motion) {
	o.current.Pos = o.current.Pos.Approach(o.target.Pos, easeAlpha)
	o.current.Scale = o.current.Scale.Approach(o.target.Scale, easeAlpha)

	switch motion {
	case MotionFreeSpin:
		o.current.Rot.X += o.spin.X * spinRate
		o.current.Rot.Y += o.spin.Y * spinRate
	default:
		o.current.Rot = o.current.Rot.Approach(o.target.Rot, easeAlpha)
	}

	if o.handle != nil {
		o.handle.Apply(o.current)
	}
}
