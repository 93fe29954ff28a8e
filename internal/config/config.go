package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds user defaults merged under the command line flags.
type Config struct {
	// Extensions are file suffixes always rendered
	Extensions []string `yaml:"extensions"`

	// Filenames are file names always rendered
	Filenames []string `yaml:"filenames"`

	// ExcludeSuffixes are file suffixes never copied
	ExcludeSuffixes []string `yaml:"exclude_suffixes"`

	// Verbose enables informational logging
	Verbose bool `yaml:"verbose"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Extensions:      []string{},
		Filenames:       []string{},
		ExcludeSuffixes: []string{".pyc"},
	}
}

// Load reads the config file at path.
// A missing file yields Default(); keys absent from the file keep their
// default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// MergeFlags appends command line render rules to the configured ones.
// The verbose flag can only turn logging on.
func (c *Config) MergeFlags(extensions, filenames []string, verbose bool) {
	c.Extensions = append(c.Extensions, extensions...)
	c.Filenames = append(c.Filenames, filenames...)
	c.Verbose = c.Verbose || verbose
}
