package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DefaultConfigTemplate is the config file written by skelgen config init.
const DefaultConfigTemplate = `# skelgen configuration
# Values here are overridden by SKELGEN_* environment variables and flags.

# Parent directory for generated skeletons.
outputDir: .

# Default layout for 'skelgen gen' without arguments.
layout: flutter-app

log:
  # Show timestamps in log output.
  timestamps: false
`

// ParseStrict parses raw YAML into a Config, rejecting unknown fields.
// Used by config vet so typos in the config file surface as errors
// instead of being silently ignored.
func ParseStrict(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty config file is valid; everything defaults.
			return &Config{}, nil
		}
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// Marshal renders a Config back to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
