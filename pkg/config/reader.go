package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the configuration file name at the project root.
const DefaultFileName = "seed.yaml"

// DefaultPath returns the standard seed.yaml location for a project.
func DefaultPath(projectRoot string) string {
	return filepath.Join(projectRoot, DefaultFileName)
}

// Read reads and parses a seed.yaml file.
func Read(path string) (*SeedConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg := &SeedConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks fields that would produce a broken seed if left
// malformed. Empty fields are fine; the generator fills defaults.
func (c *SeedConfig) Validate() error {
	for i, u := range c.Users {
		if u.Name == "" {
			return fmt.Errorf("users[%d]: name is required", i)
		}
	}
	return nil
}
