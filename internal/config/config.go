// Package config loads settings for the huffcode command.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/chronos-tachyon/huffcode/codec"
)

// Mode selects how input is split into symbols.
type Mode string

const (
	ModeBytes Mode = "bytes"
	ModeRunes Mode = "runes"
)

// Color selects when text output is styled.
type Color string

const (
	ColorAuto   Color = "auto"
	ColorAlways Color = "always"
	ColorNever  Color = "never"
)

// FormatText is the human-readable table format.  All other formats come
// from the codec package.
const FormatText = "text"

// Config holds every setting.  Fields left out of the YAML file keep their
// Default values.
type Config struct {
	Mode     Mode   `yaml:"mode"`
	Format   string `yaml:"format"`
	Color    Color  `yaml:"color"`
	Encode   bool   `yaml:"encode"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Mode:     ModeRunes,
		Format:   FormatText,
		Color:    ColorAuto,
		LogLevel: "warn",
	}
}

// Load reads the YAML file at path over the defaults.  An empty path returns
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field.
func (cfg Config) Validate() error {
	var errs []error

	switch cfg.Mode {
	case ModeBytes, ModeRunes:
	default:
		errs = append(errs, fmt.Errorf("mode: %q is not %q or %q", cfg.Mode, ModeBytes, ModeRunes))
	}

	if !strings.EqualFold(cfg.Format, FormatText) {
		if _, err := codec.ForFormat[struct{}](cfg.Format); err != nil {
			errs = append(errs, fmt.Errorf("format: %w", err))
		}
	}

	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, fmt.Errorf("color: %q is not %q, %q, or %q", cfg.Color, ColorAuto, ColorAlways, ColorNever))
	}

	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log_level: %q is not debug, info, warn, or error", cfg.LogLevel))
	}

	return errors.Join(errs...)
}
