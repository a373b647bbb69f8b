// Package config resolves the startup settings for sitwatch. Settings are
// read once and never change while the program runs.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/stigoleg/sitwatch/internal/posture"
	"github.com/stigoleg/sitwatch/internal/util"
	"gopkg.in/yaml.v3"
)

const fileName = "config.yaml"

var (
	// ErrInvalidThreshold is returned when a posture limit is not positive.
	ErrInvalidThreshold = errors.New("threshold must be positive")
	// ErrInvalidTick is returned when the tick interval is not positive.
	ErrInvalidTick = errors.New("tick interval must be positive")
)

// Config holds every setting the program reads at startup.
type Config struct {
	MaxSitting   time.Duration
	MaxStanding  time.Duration
	TickInterval time.Duration
	DebugLog     string
}

type yamlConfig struct {
	MaxSitting   string `yaml:"max_sitting"`
	MaxStanding  string `yaml:"max_standing"`
	TickInterval string `yaml:"tick_interval"`
	DebugLog     string `yaml:"debug_log"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		MaxSitting:   posture.DefaultMaxSittingTime,
		MaxStanding:  posture.DefaultMaxStandingTime,
		TickInterval: posture.DefaultTickInterval,
	}
}

// DefaultPath returns the per-user config file location for appName.
func DefaultPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, fileName), nil
}

// Load reads settings from path on top of the defaults. A missing file is an
// error unless optional is set.
func Load(path string, optional bool) (Config, error) {
	cfg := Default()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	var fileData yamlConfig
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return cfg, fmt.Errorf("parse config yaml: %w", err)
	}

	if err := applyYaml(&cfg, fileData); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func applyYaml(cfg *Config, fileData yamlConfig) error {
	fields := []struct {
		key    string
		value  string
		target *time.Duration
	}{
		{"max_sitting", fileData.MaxSitting, &cfg.MaxSitting},
		{"max_standing", fileData.MaxStanding, &cfg.MaxStanding},
		{"tick_interval", fileData.TickInterval, &cfg.TickInterval},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		d, err := util.ParseDuration(f.value)
		if err != nil {
			return fmt.Errorf("%s: %w", f.key, err)
		}
		*f.target = d
	}
	if fileData.DebugLog != "" {
		cfg.DebugLog = fileData.DebugLog
	}
	return nil
}

// Validate checks that every duration is usable.
func (c Config) Validate() error {
	if c.MaxSitting <= 0 {
		return fmt.Errorf("max sitting %v: %w", c.MaxSitting, ErrInvalidThreshold)
	}
	if c.MaxStanding <= 0 {
		return fmt.Errorf("max standing %v: %w", c.MaxStanding, ErrInvalidThreshold)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick %v: %w", c.TickInterval, ErrInvalidTick)
	}
	return nil
}

// Thresholds converts the settings into posture limits.
func (c Config) Thresholds() posture.Thresholds {
	return posture.Thresholds{
		MaxSitting:  c.MaxSitting,
		MaxStanding: c.MaxStanding,
	}
}
