package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/propsim/internal/motion"
)

const (
	DefaultFrames = 600
	DefaultFPS    = 60
	DefaultWidth  = 1280
	DefaultHeight = 720
)

type Config struct {
	Swing  SwingConfig  `yaml:"swing"`
	Spin   SpinConfig   `yaml:"spin"`
	Frames int          `yaml:"frames"`
	FPS    int          `yaml:"fps"`
	Paced  bool         `yaml:"paced"`
	Window WindowConfig `yaml:"window"`
	Audio  bool         `yaml:"audio"`
}

type SwingConfig struct {
	Speed     float64 `yaml:"speed"`
	MaxAngle  float64 `yaml:"max_angle"`
	Angle     float64 `yaml:"angle"`
	Direction int     `yaml:"direction"`
}

type SpinConfig struct {
	Speed float64 `yaml:"speed"`
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Swing: SwingConfig{
			Speed:     motion.DefaultSwingSpeed,
			MaxAngle:  motion.DefaultMaxAngle,
			Direction: int(motion.Forward),
		},
		Spin:   SpinConfig{Speed: motion.DefaultSpinSpeed},
		Frames: DefaultFrames,
		FPS:    DefaultFPS,
		Window: WindowConfig{Width: DefaultWidth, Height: DefaultHeight},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params converts the config into rig parameters.
func (c *Config) Params() motion.Params {
	return motion.Params{
		SwingSpeed:       c.Swing.Speed,
		MaxAngle:         c.Swing.MaxAngle,
		SpinSpeed:        c.Spin.Speed,
		InitialAngle:     c.Swing.Angle,
		InitialDirection: motion.Direction(c.Swing.Direction),
	}
}

func (c *Config) Validate() error {
	if c.Frames <= 0 {
		return fmt.Errorf("%w: frames=%d must be positive", motion.ErrParameterBounds, c.Frames)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps=%d must be positive", motion.ErrParameterBounds, c.FPS)
	}
	return motion.NewRig(c.Params()).Validate()
}

func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
