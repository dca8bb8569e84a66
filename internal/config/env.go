package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ApplyEnv overlays TETRIS_* environment variables onto cfg.
// Unset variables leave the corresponding field untouched.
func ApplyEnv(cfg *TetrisConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}

// HostEnv holds host-level settings that have no place in the game file.
type HostEnv struct {
	LogFile  string `env:"TETRIS_LOG_FILE"`
	LogLevel string `env:"TETRIS_LOG_LEVEL" envDefault:"info"`
	Seed     int64  `env:"TETRIS_SEED"`
}

// LoadHostEnv reads HostEnv from the environment.
func LoadHostEnv() (HostEnv, error) {
	var h HostEnv
	if err := env.Parse(&h); err != nil {
		return h, fmt.Errorf("config: parse env: %w", err)
	}
	return h, nil
}
