// Package config manages deckplan configuration and filesystem paths.
//
// Configuration includes the locations of deckplan data directories, which
// can be customized via environment variables. The default root is
// ~/.deckplan/ containing runs/ and the global config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the filesystem paths used by deckplan.
type Paths struct {
	// Root is the base directory for all deckplan data (default: ~/.deckplan)
	Root string

	// Runs is the default output directory for generated plan and script
	// artifacts
	Runs string

	// Config is the path to the global config file
	Config string
}

// DefaultPaths returns the default paths for deckplan.
// Paths can be overridden with environment variables:
// - DECKPLAN_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("DECKPLAN_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".deckplan")
	}

	return &Paths{
		Root:   root,
		Runs:   filepath.Join(root, "runs"),
		Config: filepath.Join(root, "config.yaml"),
	}, nil
}

// EnsureDirectories creates all necessary directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{
		p.Root,
		p.Runs,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
