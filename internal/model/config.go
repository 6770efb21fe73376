package model

import "fmt"

// InstallerConfig is the optional operator configuration for the installer
// binary itself. Step scripts own their own configuration artifacts, this only
// covers where the binary finds things and what it passes down.
type InstallerConfig struct {
	// ScriptsDir is the directory holding the per-step shell scripts.
	ScriptsDir string
	// StateDir, when set, forces a single progress store location instead of
	// the phase-dependent candidate dirs.
	StateDir string
	// Env is extra environment passed to every step script.
	Env map[string]string
}

// Validate validates the installer configuration.
func (c *InstallerConfig) Validate() error {
	for k := range c.Env {
		if k == "" {
			return fmt.Errorf("env keys can't be empty: %w", ErrNotValid)
		}
	}
	return nil
}
