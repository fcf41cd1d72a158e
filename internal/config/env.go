package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds process-level settings read from the environment.
type Env struct {
	DataDir    string `env:"PROPSIM_DATA_DIR"    envDefault:".propsim"`
	ConfigFile string `env:"PROPSIM_CONFIG"`
	Preset     string `env:"PROPSIM_PRESET"`
	FPS        int    `env:"PROPSIM_FPS"`
	Audio      bool   `env:"PROPSIM_AUDIO"`
}

func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// ApplyEnv overlays the non-zero environment settings onto cfg.
func (c *Config) ApplyEnv(e Env) {
	if e.FPS > 0 {
		c.FPS = e.FPS
	}
	if e.Audio {
		c.Audio = true
	}
}
