package stage

import (
	"math"
	"testing"

	"github.com/teslashibe/go-ornament/pkg/gesture"
	"github.com/teslashibe/go-ornament/pkg/scene"
)

func TestOrientation_FocusLevelsToNeutral(t *testing.T) {
	o := &Orientation{current: scene.Vec3{X: 1, Y: -2, Z: 0.5}}

	// A focus override wins even with a hand steering hard left.
	hand := gesture.Signal{Present: true, X: 0, Y: 0}
	for i := 0; i < 300; i++ {
		o.Update(ModeFocus, hand)
	}

	cur := o.Current()
	if cur.Norm() > 0.01 {
		t.Errorf("orientation %+v should have leveled to neutral", cur)
	}
}

func TestOrientation_HandSteering(t *testing.T) {
	tests := []struct {
		name      string
		x, y      float64
		wantYaw   float64
		wantPitch float64
	}{
		{"centered hand", 0.5, 0.5, 0, 0},
		{"far left", 0, 0.5, -2, 0},
		{"far right", 1, 0.5, 2, 0},
		{"top", 0.5, 0, 0, -1},
		{"bottom", 0.5, 1, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Orientation{}
			hand := gesture.Signal{Present: true, X: tt.x, Y: tt.y}
			for i := 0; i < 500; i++ {
				o.Update(ModeScatter, hand)
			}

			cur := o.Current()
			if math.Abs(cur.Y-tt.wantYaw) > 0.01 {
				t.Errorf("yaw = %v, want %v", cur.Y, tt.wantYaw)
			}
			if math.Abs(cur.X-tt.wantPitch) > 0.01 {
				t.Errorf("pitch = %v, want %v", cur.X, tt.wantPitch)
			}
		})
	}
}

func TestOrientation_SingleStepBlend(t *testing.T) {
	o := &Orientation{}
	hand := gesture.Signal{Present: true, X: 1, Y: 0.5}

	o.Update(ModeTree, hand)
	// One step moves a tenth of the way toward yaw target 2.
	if math.Abs(o.Current().Y-0.2) > 1e-9 {
		t.Errorf("yaw after one step = %v, want 0.2", o.Current().Y)
	}
}

func TestOrientation_IdleAutoRotate(t *testing.T) {
	o := &Orientation{current: scene.Vec3{X: 0.4}}

	for i := 0; i < 100; i++ {
		o.Update(ModeTree, gesture.Signal{})
	}

	cur := o.Current()
	want := 100 * 0.002
	if math.Abs(cur.Y-want) > 1e-9 {
		t.Errorf("idle yaw = %v, want %v", cur.Y, want)
	}
	// Pitch self-levels by decay.
	wantPitch := 0.4 * math.Pow(0.95, 100)
	if math.Abs(cur.X-wantPitch) > 1e-9 {
		t.Errorf("idle pitch = %v, want %v", cur.X, wantPitch)
	}
}

func TestOrientation_Reset(t *testing.T) {
	o := &Orientation{current: scene.Vec3{X: 1, Y: 1, Z: 1}}
	o.Reset()
	if o.Current() != (scene.Vec3{}) {
		t.Errorf("orientation after reset = %+v", o.Current())
	}
}
