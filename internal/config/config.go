// Package config loads tumbler settings from an optional YAML file with
// TUMBLER_* environment overrides. Flags resolved by the CLI layer win over
// both.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/castdice/tumbler/pkg/domain"
	"github.com/castdice/tumbler/pkg/spin"
)

// Config holds the user-tunable settings.
type Config struct {
	// Dice is the number of dice shown at startup.
	Dice int `env:"TUMBLER_DICE"`

	// FrameInterval is the animation frame interval. Zero disables the
	// spin animation; rolls settle immediately.
	FrameInterval time.Duration `env:"TUMBLER_FRAME_INTERVAL"`

	// NoColor disables styled output.
	NoColor bool `env:"TUMBLER_NO_COLOR"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Dice:          domain.MinDice,
		FrameInterval: spin.DefaultFrameInterval,
	}
}

// fileConfig is the raw YAML shape. Durations are strings ("25ms") so the
// file stays human-writable; fields are pointers so absence is detectable.
type fileConfig struct {
	Dice          *int    `yaml:"dice"`
	FrameInterval *string `yaml:"frame_interval"`
	NoColor       *bool   `yaml:"no_color"`
}

// Load resolves the configuration: defaults, then the YAML file at path
// (if any), then environment overrides. An explicitly given path must
// exist; the implicit default path is allowed to be absent.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist) && !explicit:
			// Optional default file, nothing to merge.
		case err != nil:
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		default:
			var raw fileConfig
			if err := yaml.Unmarshal(data, &raw); err != nil {
				return cfg, fmt.Errorf("parsing config %s: %w", path, err)
			}
			if raw.Dice != nil {
				cfg.Dice = *raw.Dice
			}
			if raw.FrameInterval != nil {
				d, err := time.ParseDuration(*raw.FrameInterval)
				if err != nil {
					return cfg, fmt.Errorf("parsing frame_interval: %w", err)
				}
				cfg.FrameInterval = d
			}
			if raw.NoColor != nil {
				cfg.NoColor = *raw.NoColor
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing environment: %w", err)
	}

	if cfg.Dice < domain.MinDice || cfg.Dice > domain.MaxDice {
		return cfg, fmt.Errorf("%w: %d", domain.ErrCountOutOfRange, cfg.Dice)
	}
	if cfg.FrameInterval < 0 {
		cfg.FrameInterval = 0
	}
	return cfg, nil
}

// DefaultPath returns the conventional config file location, or "" when the
// user config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tumbler", "config.yaml")
}
