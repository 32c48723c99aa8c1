// Ornament - gesture-choreographed 3D ornament scene.
// Opens an Ebitengine window, serves a control dashboard, and (when a
// camera and hand model are available) drives the scene from hand gestures.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/teslashibe/go-ornament/internal/config"
	"github.com/teslashibe/go-ornament/internal/log"
	"github.com/teslashibe/go-ornament/pkg/gesture"
	"github.com/teslashibe/go-ornament/pkg/render"
	"github.com/teslashibe/go-ornament/pkg/stage"
	"github.com/teslashibe/go-ornament/pkg/vision"
	"github.com/teslashibe/go-ornament/pkg/web"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Configuration error: %v\n", err)
		os.Exit(1)
	}
	log.Init(cfg.LogLevel)

	// os.Exit skips defers, so the camera and server teardown lives in run.
	if err := run(cfg); err != nil {
		log.Error("renderer exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.App) error {
	stageCfg := stage.DefaultConfig()
	stageCfg.Seed = cfg.Seed
	st := stage.New(stageCfg)

	gestureCfg := gesture.DefaultConfig()
	if cfg.Gesture.PinchThreshold > 0 {
		gestureCfg.PinchThreshold = cfg.Gesture.PinchThreshold
	}
	if cfg.Gesture.FistMax > 0 {
		gestureCfg.FistMax = cfg.Gesture.FistMax
	}
	if cfg.Gesture.OpenMin > 0 {
		gestureCfg.OpenMin = cfg.Gesture.OpenMin
	}
	classifier := gesture.NewClassifier(gestureCfg)
	classifier.SetEnabled(cfg.GestureEnabled)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// The scene runs without a camera; gestures just stay dormant.
	var source stage.FrameSource
	visionCfg := vision.DefaultConfig()
	visionCfg.Device = cfg.CameraDevice
	visionCfg.ModelPath = cfg.HandModelPath
	landmarker, err := vision.NewHandLandmarker(visionCfg)
	if err != nil {
		log.Warn("hand tracking unavailable, keyboard and dashboard only", "error", err)
	} else {
		defer landmarker.Close()
		go landmarker.Start(ctx)
		source = landmarker
	}

	director := stage.NewDirector(st, classifier, source)

	server := web.NewServer(cfg.WebPort, director)
	server.StartAsync()
	defer server.Shutdown()

	game := render.NewGame(director, st, server)
	game.SeedDecorations(cfg.Decorations)

	log.Info("ornament starting",
		"decorations", cfg.Decorations,
		"web_port", cfg.WebPort,
		"gestures", cfg.GestureEnabled)

	return game.Run()
}

// loadConfig layers command-line flags over the file/env configuration.
func loadConfig() (config.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}

	logLevel := flag.String("log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	webPort := flag.String("web-port", cfg.WebPort, "Dashboard HTTP port")
	camera := flag.Int("camera", cfg.CameraDevice, "Webcam device index")
	model := flag.String("hand-model", cfg.HandModelPath, "Hand landmark ONNX model path")
	gestures := flag.Bool("gestures", cfg.GestureEnabled, "Start with gesture input enabled")
	decorations := flag.Int("decorations", cfg.Decorations, "Decoration count to seed")
	seed := flag.Int64("seed", cfg.Seed, "Layout RNG seed (0 = from clock)")
	flag.Parse()

	cfg.LogLevel = *logLevel
	cfg.WebPort = *webPort
	cfg.CameraDevice = *camera
	cfg.HandModelPath = *model
	cfg.GestureEnabled = *gestures
	cfg.Decorations = *decorations
	cfg.Seed = *seed
	return cfg, nil
}
