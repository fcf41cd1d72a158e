package config

import "sort"

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"gentle": {
		Swing:  SwingConfig{Speed: 0.005, MaxAngle: 0.5, Direction: 1},
		Spin:   SpinConfig{Speed: 0.05},
		Frames: 1200, FPS: 60,
		Window: WindowConfig{Width: DefaultWidth, Height: DefaultHeight},
	},
	"wide": {
		Swing:  SwingConfig{Speed: 0.02, MaxAngle: 1.4, Direction: 1},
		Spin:   SpinConfig{Speed: 0.1},
		Frames: 600, FPS: 60,
		Window: WindowConfig{Width: DefaultWidth, Height: DefaultHeight},
	},
	"turbo": {
		Swing:  SwingConfig{Speed: 0.03, MaxAngle: 0.9, Direction: 1},
		Spin:   SpinConfig{Speed: 0.4},
		Frames: 600, FPS: 60,
		Window: WindowConfig{Width: DefaultWidth, Height: DefaultHeight},
	},
	"still": {
		Swing:  SwingConfig{Speed: 0.01, MaxAngle: 0.9, Direction: 1},
		Spin:   SpinConfig{Speed: 0},
		Frames: 360, FPS: 60,
		Window: WindowConfig{Width: DefaultWidth, Height: DefaultHeight},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
