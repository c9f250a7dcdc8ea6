package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a configuration from a YAML file, applies default values,
// compiles the metadata schema if one is configured, and validates the
// result. Any inconsistency is reported here, before validation starts.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	return LoadBytes(data)
}

// LoadBytes parses a configuration from YAML bytes. See Load.
func LoadBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.CompileMetadataSchema(); err != nil {
		return nil, fmt.Errorf("failed to compile metadata schema %q: %w", cfg.MetadataSchema, err)
	}

	return &cfg, nil
}
