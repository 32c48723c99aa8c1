// Package config provides application configuration for go-ornament commands.
// Values come from built-in defaults, an optional YAML file, then environment
// variable overrides, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// App holds the top-level application configuration.
type App struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// WebPort is the dashboard HTTP port.
	WebPort string `yaml:"web_port"`

	// CameraDevice is the V4L2/AVFoundation device index for the webcam.
	CameraDevice int `yaml:"camera_device"`

	// HandModelPath is the path to the hand-landmark ONNX model.
	HandModelPath string `yaml:"hand_model_path"`

	// GestureEnabled controls whether gesture input starts enabled.
	GestureEnabled bool `yaml:"gesture_enabled"`

	// Decorations is how many decoration objects to seed at startup.
	Decorations int `yaml:"decorations"`

	// Seed is the layout RNG seed. Zero means seed from the clock.
	Seed int64 `yaml:"seed"`

	// Gesture overrides the classifier thresholds. Zero fields keep the
	// package defaults.
	Gesture GestureTuning `yaml:"gesture"`
}

// GestureTuning holds the optional gesture-threshold overrides.
type GestureTuning struct {
	PinchThreshold float64 `yaml:"pinch_threshold"`
	FistMax        float64 `yaml:"fist_max"`
	OpenMin        float64 `yaml:"open_min"`
}

// Default returns the built-in application defaults.
func Default() App {
	return App{
		LogLevel:       "info",
		WebPort:        "8090",
		CameraDevice:   0,
		HandModelPath:  "models/hand_landmark.onnx",
		GestureEnabled: false,
		Decorations:    60,
	}
}

// Load builds the configuration from defaults, the YAML file named by
// ORNAMENT_CONFIG (if set), and individual environment overrides.
func Load() (App, error) {
	cfg := Default()

	if path := os.Getenv("ORNAMENT_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := os.Getenv("ORNAMENT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("ORNAMENT_WEB_PORT"); v != "" {
		cfg.WebPort = v
	}
	if v := os.Getenv("ORNAMENT_CAMERA"); v != "" {
		dev, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("ORNAMENT_CAMERA: %w", err)
		}
		cfg.CameraDevice = dev
	}
	if v := os.Getenv("ORNAMENT_HAND_MODEL"); v != "" {
		cfg.HandModelPath = v
	}

	return cfg, nil
}
