package io

import (
	"context"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/JotaRandom/alie/internal/model"
)

// ConfigYAMLRepository loads installer configuration from YAML files.
type ConfigYAMLRepository struct {
	fs fs.FS
}

// NewConfigYAMLRepository creates a new YAML config repository.
func NewConfigYAMLRepository(filesystem fs.FS) *ConfigYAMLRepository {
	return &ConfigYAMLRepository{fs: filesystem}
}

// GetConfig loads an installer configuration from a YAML file and returns a
// validated domain model.
func (r *ConfigYAMLRepository) GetConfig(ctx context.Context, path string) (model.InstallerConfig, error) {
	data, err := fs.ReadFile(r.fs, path)
	if err != nil {
		return model.InstallerConfig{}, fmt.Errorf("reading config file: %w", err)
	}

	if ctx.Err() != nil {
		return model.InstallerConfig{}, ctx.Err()
	}

	var cfg installerConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return model.InstallerConfig{}, fmt.Errorf("parsing YAML: %w", err)
	}

	mCfg := cfg.toModel()
	if err := mCfg.Validate(); err != nil {
		return model.InstallerConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return mCfg, nil
}

// installerConfig represents the YAML structure for installer configuration.
type installerConfig struct {
	ScriptsDir string            `yaml:"scripts_dir"`
	StateDir   string            `yaml:"state_dir"`
	Env        map[string]string `yaml:"env"`
}

func (c installerConfig) toModel() model.InstallerConfig {
	return model.InstallerConfig{
		ScriptsDir: c.ScriptsDir,
		StateDir:   c.StateDir,
		Env:        c.Env,
	}
}
