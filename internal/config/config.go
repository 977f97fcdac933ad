// Package config loads adstudio configuration from an optional YAML file
// with environment overrides. Missing files are fine; every field has a
// usable default so the tool runs with zero setup.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all adstudio settings.
type Config struct {
	// Theme selects the color scheme: auto, light, or dark.
	Theme string `yaml:"theme"`

	// ExportDir is where the export command writes files.
	ExportDir string `yaml:"export_dir"`

	Brand   BrandConfig   `yaml:"brand"`
	Logging LoggingConfig `yaml:"logging"`
}

// BrandConfig seeds the wizard's brand step.
type BrandConfig struct {
	Name     string `yaml:"name"`
	Tone     string `yaml:"tone"`
	Audience string `yaml:"audience"`
}

// LoggingConfig controls the file logger. The TUI owns the terminal, so
// logs always go to a file, never stderr.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Theme:     "auto",
		ExportDir: "exports",
		Brand: BrandConfig{
			Name: "Willow & Wick Home",
			Tone: "friendly-professional",
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(".adstudio", "adstudio.log"),
		},
	}
}

// Load reads the config at path, layered over defaults, then applies env
// overrides. An empty path means defaults only; a missing file is not an
// error, a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to env overrides
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(raw, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv layers ADSTUDIO_* variables over the file values.
func (c *Config) applyEnv() {
	if v := os.Getenv("ADSTUDIO_THEME"); v != "" {
		c.Theme = v
	}
	if v := os.Getenv("ADSTUDIO_EXPORT_DIR"); v != "" {
		c.ExportDir = v
	}
	if v := os.Getenv("ADSTUDIO_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("ADSTUDIO_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
}

func (c *Config) validate() error {
	switch c.Theme {
	case "auto", "light", "dark":
	default:
		return fmt.Errorf("config: theme must be auto, light, or dark, got %q", c.Theme)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
