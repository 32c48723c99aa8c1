// Gesture probe - prints classified hand gestures from the webcam.
// Useful for tuning thresholds and checking camera/model wiring without
// opening the full scene window.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/teslashibe/go-ornament/internal/log"
	"github.com/teslashibe/go-ornament/pkg/gesture"
	"github.com/teslashibe/go-ornament/pkg/vision"
)

func main() {
	device := flag.Int("camera", 0, "Webcam device index")
	model := flag.String("hand-model", "models/hand_landmark.onnx", "Hand landmark ONNX model path")
	pinch := flag.Float64("pinch", gesture.DefaultConfig().PinchThreshold, "Pinch distance threshold")
	fist := flag.Float64("fist", gesture.DefaultConfig().FistMax, "Fist openness ceiling")
	open := flag.Float64("open", gesture.DefaultConfig().OpenMin, "Open-hand openness floor")
	flag.Parse()

	log.Init("info")

	visionCfg := vision.DefaultConfig()
	visionCfg.Device = *device
	visionCfg.ModelPath = *model
	landmarker, err := vision.NewHandLandmarker(visionCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Camera init failed: %v\n", err)
		os.Exit(1)
	}
	defer landmarker.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	go landmarker.Start(ctx)

	classifier := gesture.NewClassifier(gesture.Config{
		PinchThreshold: *pinch,
		FistMax:        *fist,
		OpenMin:        *open,
	})
	classifier.SetEnabled(true)

	fmt.Println("👋 Show a hand to the camera. Ctrl-C to quit.")

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sig, event := classifier.Classify(landmarker.Latest())
			if event != gesture.EventNone {
				fmt.Printf("✋ %s  hand=(%.2f, %.2f)\n", event, sig.X, sig.Y)
			}
		}
	}
}
