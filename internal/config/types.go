// Package config loads the YAML engine configuration: the theme to compose,
// cache sizing, logging and additional render backends.
package config

import (
	"github.com/alexisbeaulieu97/stylekit/internal/adapter"
	"github.com/alexisbeaulieu97/stylekit/internal/logger"
	"github.com/alexisbeaulieu97/stylekit/internal/theme"
)

// Config represents the full stylekit configuration document.
type Config struct {
	Version  string                 `yaml:"version" validate:"required,semver"`
	Theme    ThemeConfig            `yaml:"theme,omitempty"`
	Cache    CacheConfig            `yaml:"cache,omitempty"`
	Logging  LoggingConfig          `yaml:"logging,omitempty"`
	Backends []adapter.Capabilities `yaml:"backends,omitempty" validate:"omitempty,dive"`
}

// ThemeConfig selects the design language and mode plus user overrides.
type ThemeConfig struct {
	Design    string          `yaml:"design,omitempty" validate:"omitempty,design"`
	Mode      string          `yaml:"mode,omitempty" validate:"omitempty,mode"`
	Overrides theme.Overrides `yaml:"overrides,omitempty"`
}

// CacheConfig sizes the style cache. Zero selects the default capacity.
type CacheConfig struct {
	Capacity int `yaml:"capacity,omitempty" validate:"omitempty,min=1,max=100000"`
}

// LoggingConfig controls the zerolog output.
type LoggingConfig struct {
	Level         string `yaml:"level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	HumanReadable bool   `yaml:"human_readable,omitempty"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Version: "1.0",
		Theme:   ThemeConfig{Design: theme.DesignFlat.String(), Mode: theme.ModeLight.String()},
		Logging: LoggingConfig{Level: "warn"},
	}
}

// ComposeTheme builds the theme described by the configuration. Fields are
// assumed valid; unknown names fall back to flat and light.
func (c *Config) ComposeTheme() theme.Theme {
	design, _ := theme.ParseDesign(c.Theme.Design)
	mode, _ := theme.ParseMode(c.Theme.Mode)
	overrides := c.Theme.Overrides
	return theme.Compose(design, mode, &overrides)
}

// RegisterBackends adds every configured backend to b.
func (c *Config) RegisterBackends(b *adapter.Backends) error {
	for _, caps := range c.Backends {
		if err := b.Register(caps); err != nil {
			return err
		}
	}
	return nil
}

// LoggerOptions converts the logging section into logger options.
func (c *Config) LoggerOptions() logger.Options {
	return logger.Options{Level: c.Logging.Level, HumanReadable: c.Logging.HumanReadable}
}
