// Package vision captures webcam frames and runs hand-landmark inference,
// producing the 21-point skeletons the gesture classifier consumes. The
// capture loop runs on its own cadence; the stage only ever reads the most
// recent completed result and never waits on inference.
package vision

import (
	"context"
	"fmt"
	"image"
	"os"
	"sync"
	"time"

	"gocv.io/x/gocv"

	"github.com/teslashibe/go-ornament/internal/log"
	"github.com/teslashibe/go-ornament/pkg/gesture"
)

// Config holds the landmark source parameters.
type Config struct {
	// Device is the webcam device index.
	Device int
	// ModelPath is the hand-landmark ONNX model.
	ModelPath string
	// InputSize is the square model input resolution.
	InputSize int
	// ScoreThreshold gates hand presence on the model's confidence output.
	ScoreThreshold float64
	// Interval is the capture/inference cadence, decoupled from the
	// render tick.
	Interval time.Duration
}

// DefaultConfig returns production defaults for the MediaPipe-style
// hand-landmark model.
func DefaultConfig() Config {
	return Config{
		Device:         0,
		ModelPath:      "models/hand_landmark.onnx",
		InputSize:      224,
		ScoreThreshold: 0.5,
		Interval:       50 * time.Millisecond,
	}
}

// HandLandmarker reads webcam frames and infers hand landmarks with the
// OpenCV DNN module.
type HandLandmarker struct {
	cfg Config
	cap *gocv.VideoCapture
	net gocv.Net

	mu     sync.Mutex
	latest *gesture.Frame
	misses int

	inferMu sync.Mutex // protects the capture and the net
}

// missLimit is how many consecutive capture/inference failures are
// tolerated before the last frame is discarded. A dead camera must read
// as "no hand", not as the last hand it ever saw.
const missLimit = 5

// NewHandLandmarker opens the webcam and loads the landmark model.
func NewHandLandmarker(cfg Config) (*HandLandmarker, error) {
	if _, err := os.Stat(cfg.ModelPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("model file not found: %s", cfg.ModelPath)
	}

	cap, err := gocv.OpenVideoCapture(cfg.Device)
	if err != nil {
		return nil, fmt.Errorf("open camera %d: %w", cfg.Device, err)
	}

	net := gocv.ReadNet(cfg.ModelPath, "")
	if net.Empty() {
		cap.Close()
		return nil, fmt.Errorf("load model %s", cfg.ModelPath)
	}

	return &HandLandmarker{cfg: cfg, cap: cap, net: net}, nil
}

// Start runs the capture loop until the context is cancelled. Call in a
// goroutine.
func (h *HandLandmarker) Start(ctx context.Context) {
	ticker := time.NewTicker(h.cfg.Interval)
	defer ticker.Stop()

	log.Info("hand landmarker started",
		"device", h.cfg.Device, "interval", h.cfg.Interval)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.record(h.detect())
		}
	}
}

// record stores a detection result. Failures do not overwrite the last
// frame immediately (a single dropped capture is noise), but after
// missLimit consecutive failures the frame is cleared so downstream sees
// the hand as gone.
func (h *HandLandmarker) record(frame *gesture.Frame, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err != nil {
		h.misses++
		log.Debug("landmark inference failed", "err", err, "misses", h.misses)
		if h.misses == missLimit {
			log.Warn("camera unresponsive, dropping last hand frame", "err", err)
			h.latest = nil
		}
		return
	}
	h.misses = 0
	h.latest = frame
}

// Latest returns the newest completed landmark frame, or nil when no hand
// is visible. Frames carry capture timestamps, so a caller polling faster
// than the capture cadence can recognize repeats.
func (h *HandLandmarker) Latest() *gesture.Frame {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.latest
}

// detect grabs one frame and runs the landmark model.
func (h *HandLandmarker) detect() (*gesture.Frame, error) {
	h.inferMu.Lock()
	defer h.inferMu.Unlock()

	img := gocv.NewMat()
	defer img.Close()

	if ok := h.cap.Read(&img); !ok || img.Empty() {
		return nil, fmt.Errorf("camera read failed")
	}

	size := h.cfg.InputSize
	blob := gocv.BlobFromImage(img, 1.0/255.0, image.Pt(size, size),
		gocv.NewScalar(0, 0, 0, 0), true, false)
	defer blob.Close()

	h.net.SetInput(blob, "")
	outputs := h.net.ForwardLayers([]string{"landmarks", "score"})
	defer func() {
		for _, m := range outputs {
			m.Close()
		}
	}()
	if len(outputs) < 2 {
		return nil, fmt.Errorf("unexpected model outputs: %d", len(outputs))
	}

	score := float64(outputs[1].GetFloatAt(0, 0))
	if score < h.cfg.ScoreThreshold {
		return nil, nil
	}

	// The model emits 21 (x, y, z) triples in input-pixel coordinates.
	// Normalize x and y to [0,1]; depth is ignored.
	frame := &gesture.Frame{Captured: time.Now()}
	lm := outputs[0]
	for i := 0; i < gesture.LandmarkCount; i++ {
		frame.Points[i] = gesture.Landmark{
			X: float64(lm.GetFloatAt(0, i*3)) / float64(size),
			Y: float64(lm.GetFloatAt(0, i*3+1)) / float64(size),
		}
	}
	return frame, nil
}

// Close releases the camera and the model.
func (h *HandLandmarker) Close() error {
	h.inferMu.Lock()
	defer h.inferMu.Unlock()
	h.net.Close()
	return h.cap.Close()
}
