// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"strings"

	"github.com/skelgen/cli/internal/layout"
)

// Config holds the skelgen CLI configuration.
type Config struct {
	// OutputDir is the default parent directory for generated skeletons.
	OutputDir string `mapstructure:"outputDir" yaml:"outputDir,omitempty"`

	// Layout is the default layout name for gen without arguments.
	Layout string `mapstructure:"layout" yaml:"layout,omitempty"`

	// Log holds logging preferences.
	Log LogSettings `mapstructure:"log" yaml:"log,omitempty"`
}

// LogSettings holds logging configuration.
type LogSettings struct {
	// Timestamps toggles timestamps in log output. Nil means default.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// WithDefaults returns a copy of the config with defaults applied.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.OutputDir == "" {
		out.OutputDir = "."
	}
	if out.Layout == "" {
		out.Layout = layout.DefaultLayoutName
	}
	return &out
}

// Validate checks config values against known layouts.
func (c *Config) Validate() error {
	if c.Layout != "" {
		if _, err := layout.Get(c.Layout); err != nil {
			return fmt.Errorf("layout: %w", err)
		}
	}
	if strings.TrimSpace(c.OutputDir) == "" && c.OutputDir != "" {
		return fmt.Errorf("outputDir: blank path")
	}
	return nil
}
