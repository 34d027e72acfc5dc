// Package config loads demo settings from YAML over embedded defaults.
package config

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Loop       LoopConfig       `yaml:"loop"`
	Input      InputConfig      `yaml:"input"`
	Controller ControllerConfig `yaml:"controller"`
	Scene      SceneConfig      `yaml:"scene"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type WindowConfig struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"target_fps"`
}

type LoopConfig struct {
	FixedStep float32 `yaml:"fixed_step"`
	MaxSteps  int     `yaml:"max_steps"`
}

type InputConfig struct {
	MouseScale float32 `yaml:"mouse_scale"`
}

// ControllerConfig overrides the chosen variant's defaults. Nil fields are
// left alone.
type ControllerConfig struct {
	Variant        string   `yaml:"variant"`
	WalkSpeed      *float32 `yaml:"walk_speed"`
	RunSpeed       *float32 `yaml:"run_speed"`
	SmoothMovement *float32 `yaml:"smooth_movement"`
	Sensitivity    *float32 `yaml:"sensitivity"`
	Smooth         *float32 `yaml:"smooth"`
	InvertedCamera *bool    `yaml:"inverted_camera"`
	PitchLimit     *float32 `yaml:"pitch_limit"`
}

type SceneConfig struct {
	Path string `yaml:"path"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

const (
	VariantFPS       = "fps"
	VariantMouseLook = "mouselook"
)

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in the file.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings the loop can't run without. Controller tuning
// is deliberately left unchecked.
func (c *Config) Validate() error {
	switch c.Controller.Variant {
	case VariantFPS, VariantMouseLook:
	default:
		return fmt.Errorf("controller.variant %q: want %q or %q", c.Controller.Variant, VariantFPS, VariantMouseLook)
	}
	if c.Loop.FixedStep <= 0 {
		return fmt.Errorf("loop.fixed_step must be positive, got %v", c.Loop.FixedStep)
	}
	if _, err := c.Logging.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses Level ("debug", "info", "warn", "error").
func (l LoggingConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("logging.level: %w", err)
	}
	return lvl, nil
}

// NewLogger builds the process logger described by the logging section.
func (l LoggingConfig) NewLogger(w *os.File) (*slog.Logger, error) {
	lvl, err := l.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
