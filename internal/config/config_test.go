package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, v := range []string{"ORNAMENT_CONFIG", "ORNAMENT_LOG_LEVEL", "ORNAMENT_WEB_PORT", "ORNAMENT_CAMERA", "ORNAMENT_HAND_MODEL"} {
		t.Setenv(v, "")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ornament.yaml")
	body := []byte("web_port: \"9000\"\ndecorations: 12\ngesture:\n  pinch_threshold: 0.08\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ORNAMENT_CONFIG", path)
	t.Setenv("ORNAMENT_WEB_PORT", "9001")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.WebPort != "9001" {
		t.Errorf("env should override file: port = %q", cfg.WebPort)
	}
	if cfg.Decorations != 12 {
		t.Errorf("decorations = %d, want 12", cfg.Decorations)
	}
	if cfg.Gesture.PinchThreshold != 0.08 {
		t.Errorf("pinch threshold = %v, want 0.08", cfg.Gesture.PinchThreshold)
	}
}

func TestLoad_BadCameraEnv(t *testing.T) {
	t.Setenv("ORNAMENT_CONFIG", "")
	t.Setenv("ORNAMENT_CAMERA", "front")
	if _, err := Load(); err == nil {
		t.Error("expected an error for a non-numeric camera index")
	}
}
