package scene

import (
	"math"
	"testing"
)

func TestObject_TickConvergesWithoutOvershoot(t *testing.T) {
	o := NewObject(NopHandle{}, RoleDecoration, 1, Vec3{})
	o.SetTarget(Transform{Pos: Vec3{X: 10, Y: -4, Z: 7}, Scale: Uniform(1)})

	initial := o.Target().Pos.Sub(o.Current().Pos).Norm()
	prev := initial

	for i := 0; i < 200; i++ {
		o.Tick(MotionSeek)
		d := o.Target().Pos.Sub(o.Current().Pos).Norm()
		if d > prev+1e-12 {
			t.Fatalf("distance increased at tick %d: %v -> %v", i, prev, d)
		}
		prev = d
	}

	// After K ticks the remaining distance is (1-alpha)^K of the initial.
	bound := math.Pow(0.95, 200) * initial
	if prev > bound+1e-9 {
		t.Errorf("expected distance <= %v after 200 ticks, got %v", bound, prev)
	}
}

func TestObject_ScaleEasesToTarget(t *testing.T) {
	o := NewObject(NopHandle{}, RolePhoto, 1, Vec3{})
	o.SetTarget(Transform{Scale: Uniform(3)})

	for i := 0; i < 300; i++ {
		o.Tick(MotionSeek)
	}

	if math.Abs(o.Current().Scale.X-3) > 0.01 {
		t.Errorf("expected scale near 3, got %v", o.Current().Scale.X)
	}
}

func TestObject_FreeSpinIgnoresRotationTarget(t *testing.T) {
	spin := Vec3{X: 0.01, Y: 0.02}
	o := NewObject(NopHandle{}, RoleDecoration, 1, spin)
	o.SetTarget(Transform{Rot: Vec3{X: 5, Y: 5, Z: 5}, Scale: Uniform(1)})

	for i := 0; i < 10; i++ {
		o.Tick(MotionFreeSpin)
	}

	rot := o.Current().Rot
	// Spin accumulates at twice the per-axis velocity, Z is untouched.
	if math.Abs(rot.X-10*spin.X*2) > 1e-9 {
		t.Errorf("rot X: got %v, want %v", rot.X, 10*spin.X*2)
	}
	if math.Abs(rot.Y-10*spin.Y*2) > 1e-9 {
		t.Errorf("rot Y: got %v, want %v", rot.Y, 10*spin.Y*2)
	}
	if rot.Z != 0 {
		t.Errorf("rot Z should stay 0 in free spin, got %v", rot.Z)
	}
}

func TestObject_SeekRotationAfterFreeSpin(t *testing.T) {
	o := NewObject(NopHandle{}, RoleDecoration, 1, Vec3{X: 0.05, Y: 0.05})
	o.SetTarget(Transform{Scale: Uniform(1)})

	for i := 0; i < 50; i++ {
		o.Tick(MotionFreeSpin)
	}
	if o.Current().Rot.X == 0 {
		t.Fatal("expected accumulated spin")
	}

	// Switching back to seeking pulls rotation toward the target again.
	for i := 0; i < 400; i++ {
		o.Tick(MotionSeek)
	}
	if math.Abs(o.Current().Rot.X) > 0.01 {
		t.Errorf("expected rotation to return to target, got %v", o.Current().Rot.X)
	}
}

func TestObject_PlaceIsImmediate(t *testing.T) {
	o := NewObject(NopHandle{}, RoleDecoration, 1, Vec3{})
	tr := Transform{Pos: Vec3{X: 1, Y: 2, Z: 3}, Scale: Uniform(1)}
	o.Place(tr)

	if o.Current() != tr {
		t.Errorf("current = %+v, want %+v", o.Current(), tr)
	}
	if o.Target() != tr {
		t.Errorf("target = %+v, want %+v", o.Target(), tr)
	}
}

func TestObject_SetTargetDoesNotMoveCurrent(t *testing.T) {
	o := NewObject(NopHandle{}, RoleDecoration, 1, Vec3{})
	before := o.Current()
	o.SetTarget(Transform{Pos: Vec3{X: 100}, Scale: Uniform(1)})
	if o.Current() != before {
		t.Error("SetTarget must not alter the current transform")
	}
}
