package io

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JotaRandom/alie/internal/model"
)

func TestConfigYAMLRepository_GetConfig(t *testing.T) {
	tests := map[string]struct {
		fs     fstest.MapFS
		path   string
		expCfg model.InstallerConfig
		expErr bool
	}{
		"Full config should load successfully": {
			fs: fstest.MapFS{
				"config.yaml": &fstest.MapFile{
					Data: []byte(`scripts_dir: /opt/alie/steps
state_dir: /var/lib/alie
env:
  ALIE_USER: jota
  ALIE_HOSTNAME: archbox
`),
				},
			},
			path: "config.yaml",
			expCfg: model.InstallerConfig{
				ScriptsDir: "/opt/alie/steps",
				StateDir:   "/var/lib/alie",
				Env: map[string]string{
					"ALIE_USER":     "jota",
					"ALIE_HOSTNAME": "archbox",
				},
			},
		},

		"Empty config should load successfully": {
			fs: fstest.MapFS{
				"config.yaml": &fstest.MapFile{
					Data: []byte("---\n"),
				},
			},
			path:   "config.yaml",
			expCfg: model.InstallerConfig{},
		},

		"Missing file should fail": {
			fs:     fstest.MapFS{},
			path:   "config.yaml",
			expErr: true,
		},

		"Invalid YAML should fail": {
			fs: fstest.MapFS{
				"config.yaml": &fstest.MapFile{
					Data: []byte("scripts_dir: [unclosed"),
				},
			},
			path:   "config.yaml",
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			repo := NewConfigYAMLRepository(test.fs)
			cfg, err := repo.GetConfig(context.Background(), test.path)

			if test.expErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expCfg, cfg)
		})
	}
}
