// Package models defines data structures for configuration and parsing.
package models

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is read when --config is not given and the file exists.
const DefaultConfigFile = "product-page-parser.yaml"

// Config holds runtime configuration for the parse and check commands.
// Values come from the optional YAML file; CLI flags override them.
type Config struct {
	Inputs         []string `yaml:"inputs,omitempty"`
	WorkerCount    int      `yaml:"workers"`
	Format         string   `yaml:"format"` // json | yaml
	Sections       string   `yaml:"sections"`
	OutputDir      string   `yaml:"output_dir,omitempty"`
	DetectLanguage bool     `yaml:"detect_language"`
	Languages      []string `yaml:"languages,omitempty"` // ISO 639-1 codes for the language fallback
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		WorkerCount: 4,
		Format:      "json",
		Sections:    "all",
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
// A missing file at DefaultConfigFile is not an error.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		path = DefaultConfigFile
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// Validate checks values a YAML file or flag could get wrong.
func (c *Config) Validate() error {
	if c.WorkerCount < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.WorkerCount)
	}
	switch c.Format {
	case "json", "yaml":
	default:
		return fmt.Errorf("unsupported format %q (want json or yaml)", c.Format)
	}
	if _, err := ParseSections(c.Sections); err != nil {
		return err
	}
	return nil
}
