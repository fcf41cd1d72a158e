package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/propsim/internal/motion"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Swing.Speed != 0.01 || cfg.Swing.MaxAngle != 0.9 {
		t.Errorf("unexpected swing defaults %+v", cfg.Swing)
	}
	if cfg.Spin.Speed != 0.1 {
		t.Errorf("expected spin 0.1, got %f", cfg.Spin.Speed)
	}
	if cfg.Frames <= 0 || cfg.FPS <= 0 {
		t.Error("frames and fps should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestParams(t *testing.T) {
	p := DefaultConfig().Params()
	if p != motion.DefaultParams() {
		t.Errorf("expected default params, got %+v", p)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero frames", func(c *Config) { c.Frames = 0 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"negative speed", func(c *Config) { c.Swing.Speed = -0.01 }},
		{"zero bound", func(c *Config) { c.Swing.MaxAngle = 0 }},
		{"bad direction", func(c *Config) { c.Swing.Direction = 3 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, motion.ErrParameterBounds) {
				t.Errorf("expected ErrParameterBounds, got %v", err)
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "propsim.yaml")

	cfg := DefaultConfig()
	cfg.Swing.MaxAngle = 1.2
	cfg.Spin.Speed = 0.25
	cfg.Paced = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("expected %+v, got %+v", cfg, loaded)
	}
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("swing:\n  max_angle: 0.5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Swing.MaxAngle != 0.5 {
		t.Errorf("expected max angle 0.5, got %f", cfg.Swing.MaxAngle)
	}
	if cfg.Swing.Speed != 0.01 || cfg.Spin.Speed != 0.1 || cfg.FPS != DefaultFPS {
		t.Errorf("expected untouched defaults, got %+v", cfg)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("gentle")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Swing.MaxAngle != 0.5 {
		t.Errorf("expected max angle 0.5, got %f", cfg.Swing.MaxAngle)
	}

	cfg.Swing.MaxAngle = 3
	if Presets["gentle"].Swing.MaxAngle != 0.5 {
		t.Error("GetPreset must return a copy")
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsValidate(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 || names[0] != "default" {
		t.Fatalf("expected sorted presets starting with default, got %v", names)
	}
	for _, name := range names {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestParseEnv(t *testing.T) {
	t.Setenv("PROPSIM_DATA_DIR", "/tmp/runs")
	t.Setenv("PROPSIM_FPS", "144")
	t.Setenv("PROPSIM_AUDIO", "true")

	e, err := ParseEnv()
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if e.DataDir != "/tmp/runs" || e.FPS != 144 || !e.Audio {
		t.Errorf("unexpected env %+v", e)
	}

	cfg := DefaultConfig()
	cfg.ApplyEnv(e)
	if cfg.FPS != 144 || !cfg.Audio {
		t.Errorf("expected env overlay, got %+v", cfg)
	}
}

func TestParseEnvDefaults(t *testing.T) {
	t.Setenv("PROPSIM_DATA_DIR", "")
	os.Unsetenv("PROPSIM_DATA_DIR")

	e, err := ParseEnv()
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if e.DataDir != ".propsim" {
		t.Errorf("expected default data dir, got %q", e.DataDir)
	}
}

func TestParseEnvInvalid(t *testing.T) {
	t.Setenv("PROPSIM_FPS", "fast")
	if _, err := ParseEnv(); err == nil {
		t.Error("expected error for non-numeric fps")
	}
}
