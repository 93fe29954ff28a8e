// Package config manages skeletor configuration and filesystem paths.
//
// The default root is ~/.skeletor/ and holds an optional config.yaml with
// default render rules. The root can be moved with the SKELETOR_ROOT
// environment variable.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the filesystem paths used by skeletor.
type Paths struct {
	// Root is the base directory for skeletor data (default: ~/.skeletor)
	Root string

	// Config is the path to the global config file
	Config string
}

// DefaultPaths returns the default paths for skeletor.
// Paths can be overridden with environment variables:
// - SKELETOR_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("SKELETOR_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".skeletor")
	}

	return &Paths{
		Root:   root,
		Config: filepath.Join(root, "config.yaml"),
	}, nil
}
