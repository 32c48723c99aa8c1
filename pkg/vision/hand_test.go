package vision

import (
	"errors"
	"testing"
	"time"

	"github.com/teslashibe/go-ornament/pkg/gesture"
)

func TestHandLandmarker_FailuresAgeOutLastFrame(t *testing.T) {
	h := &HandLandmarker{}
	readErr := errors.New("camera read failed")

	h.record(&gesture.Frame{Captured: time.Now()}, nil)
	if h.Latest() == nil {
		t.Fatal("successful detection should be stored")
	}

	// A short failure burst keeps the last frame.
	for i := 0; i < missLimit-1; i++ {
		h.record(nil, readErr)
	}
	if h.Latest() == nil {
		t.Fatalf("frame dropped after %d failures, limit is %d", missLimit-1, missLimit)
	}

	// Hitting the limit drops it: a dead camera reads as no hand.
	h.record(nil, readErr)
	if h.Latest() != nil {
		t.Error("frame should be cleared after consecutive failures")
	}
}

func TestHandLandmarker_SuccessResetsMissCount(t *testing.T) {
	h := &HandLandmarker{}
	readErr := errors.New("camera read failed")

	for i := 0; i < missLimit-1; i++ {
		h.record(nil, readErr)
	}
	h.record(&gesture.Frame{Captured: time.Now()}, nil)

	// The count restarts: another short burst must not drop the frame.
	for i := 0; i < missLimit-1; i++ {
		h.record(nil, readErr)
	}
	if h.Latest() == nil {
		t.Error("miss count should reset after a successful detection")
	}
}
