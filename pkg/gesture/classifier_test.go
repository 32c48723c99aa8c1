package gesture

import (
	"math"
	"sync"
	"testing"
	"time"
)

// frameWithPinch builds a frame whose thumb-index distance is exactly d and
// whose openness falls in the dead zone, isolating the pinch test.
func frameWithPinch(d float64) *Frame {
	f := &Frame{Captured: time.Now()}
	for i := range f.Points {
		f.Points[i] = Landmark{X: 0.5, Y: 0.5}
	}
	// Non-thumb fingertips at dead-zone distance from the wrist, thumb tip
	// exactly d from the index tip.
	f.Points[Wrist] = Landmark{X: 0.5, Y: 0.9}
	for _, tip := range []int{IndexTip, MiddleTip, RingTip, PinkyTip} {
		f.Points[tip] = Landmark{X: 0.5, Y: 0.6}
	}
	f.Points[ThumbTip] = Landmark{X: 0.5 + d, Y: 0.6}
	return f
}

// frameWithOpenness builds a frame whose four non-thumb fingertips all sit
// exactly d from the wrist, with the thumb far from the index tip.
func frameWithOpenness(d float64) *Frame {
	f := &Frame{Captured: time.Now()}
	for i := range f.Points {
		f.Points[i] = Landmark{X: 0.5, Y: 0.5}
	}
	f.Points[Wrist] = Landmark{X: 0.5, Y: 0.9}
	for _, tip := range []int{IndexTip, MiddleTip, RingTip, PinkyTip} {
		f.Points[tip] = Landmark{X: 0.5, Y: 0.9 - d}
	}
	f.Points[ThumbTip] = Landmark{X: 0.1, Y: 0.9}
	return f
}

func newEnabled(t *testing.T) *Classifier {
	t.Helper()
	c := NewClassifier(DefaultConfig())
	c.SetEnabled(true)
	return c
}

func TestClassifier_PinchBoundary(t *testing.T) {
	tests := []struct {
		name string
		dist float64
		want Event
	}{
		{"clearly pinched", 0.01, EventPinch},
		{"just under threshold", 0.04, EventPinch},
		{"just over threshold", 0.06, EventNone},
		{"exactly at threshold", 0.05, EventNone}, // strict <
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newEnabled(t)
			_, ev := c.Classify(frameWithPinch(tt.dist))
			if ev != tt.want {
				t.Errorf("distance %v: got %v, want %v", tt.dist, ev, tt.want)
			}
		})
	}
}

func TestClassifier_Openness(t *testing.T) {
	tests := []struct {
		name     string
		openness float64
		want     Event
	}{
		{"fist", 0.20, EventFist},
		{"dead zone", 0.30, EventNone},
		{"open hand", 0.45, EventOpen},
		{"lower dead-zone edge", 0.25, EventNone},
		{"upper dead-zone edge", 0.40, EventNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newEnabled(t)
			_, ev := c.Classify(frameWithOpenness(tt.openness))
			if ev != tt.want {
				t.Errorf("openness %v: got %v, want %v", tt.openness, ev, tt.want)
			}
		})
	}
}

func TestClassifier_PinchPriority(t *testing.T) {
	// A pinched thumb on an otherwise open hand is still a pinch.
	f := frameWithOpenness(0.45)
	f.Points[ThumbTip] = f.Points[IndexTip]

	c := newEnabled(t)
	_, ev := c.Classify(f)
	if ev != EventPinch {
		t.Errorf("got %v, want pinch", ev)
	}
}

func TestClassifier_PointingSignalMirrored(t *testing.T) {
	f := frameWithOpenness(0.30)
	f.Points[PalmCenter] = Landmark{X: 0.2, Y: 0.7}

	c := newEnabled(t)
	sig, _ := c.Classify(f)
	if !sig.Present {
		t.Fatal("expected hand present")
	}
	if math.Abs(sig.X-0.8) > 1e-9 || math.Abs(sig.Y-0.7) > 1e-9 {
		t.Errorf("signal = (%v,%v), want (0.8,0.7)", sig.X, sig.Y)
	}
}

func TestClassifier_NoHand(t *testing.T) {
	c := newEnabled(t)
	sig, ev := c.Classify(nil)
	if sig.Present {
		t.Error("no frame should mean no hand")
	}
	if ev != EventNone {
		t.Errorf("got %v, want none", ev)
	}
}

func TestClassifier_DisabledSuppressesEverything(t *testing.T) {
	c := NewClassifier(DefaultConfig())

	sig, ev := c.Classify(frameWithOpenness(0.45))
	if sig.Present {
		t.Error("disabled classifier must report no hand")
	}
	if ev != EventNone {
		t.Errorf("disabled classifier emitted %v", ev)
	}
}

func TestClassifier_StaleFrameEmitsNoEvent(t *testing.T) {
	c := newEnabled(t)
	f := frameWithOpenness(0.45)

	_, ev := c.Classify(f)
	if ev != EventOpen {
		t.Fatalf("got %v, want open", ev)
	}

	// Same capture timestamp: the signal holds, the event does not repeat.
	sig, ev := c.Classify(f)
	if ev != EventNone {
		t.Errorf("stale frame emitted %v", ev)
	}
	if !sig.Present {
		t.Error("stale frame should keep the hand signal present")
	}
}

func TestClassifier_EnableToggleDuringClassify(t *testing.T) {
	// The dashboard toggles gesture input from its own goroutine while the
	// tick loop classifies. Run both concurrently; the race detector
	// verifies the enabled flag is safe.
	c := NewClassifier(DefaultConfig())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			c.SetEnabled(i%2 == 0)
		}
	}()

	base := time.Now()
	for i := 0; i < 1000; i++ {
		f := frameWithOpenness(0.45)
		f.Captured = base.Add(time.Duration(i) * time.Millisecond)
		sig, ev := c.Classify(f)
		// Whatever the flag reads, the outputs must stay consistent.
		if ev == EventOpen && !sig.Present {
			t.Fatal("event emitted without a hand signal")
		}
	}
	wg.Wait()

	c.SetEnabled(true)
	if !c.Enabled() {
		t.Error("final enable was lost")
	}
}
