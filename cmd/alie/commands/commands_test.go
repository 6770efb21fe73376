package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JotaRandom/alie/internal/conventions"
	"github.com/JotaRandom/alie/internal/log"
	"github.com/JotaRandom/alie/internal/model"
)

func TestRootCommandLoadConfig(t *testing.T) {
	writeConfig := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	tests := map[string]struct {
		config     string
		scriptsDir string
		stateDir   string
		expScripts string
		expState   string
		expEnv     map[string]string
		expErr     bool
	}{
		"A missing file should yield the defaults": {
			expScripts: conventions.DefaultScriptsDir,
		},

		"File values should be used": {
			config: `
scripts_dir: /opt/alie/steps
state_dir: /var/lib/alie
env:
  ALIE_USER: jota
`,
			expScripts: "/opt/alie/steps",
			expState:   "/var/lib/alie",
			expEnv:     map[string]string{"ALIE_USER": "jota"},
		},

		"Flags should win over file values": {
			config: `
scripts_dir: /opt/alie/steps
state_dir: /var/lib/alie
`,
			scriptsDir: "/flag/steps",
			stateDir:   "/flag/state",
			expScripts: "/flag/steps",
			expState:   "/flag/state",
		},

		"An unparseable file should fail": {
			config: "scripts_dir: [",
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "does-not-exist.yaml")
			if test.config != "" {
				path = writeConfig(t, test.config)
			}

			rootCmd := &RootCommand{
				ConfigPath: path,
				ScriptsDir: test.scriptsDir,
				StateDir:   test.stateDir,
				Logger:     log.Noop,
			}

			cfg, err := rootCmd.LoadConfig(context.Background())

			if test.expErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, test.expScripts, cfg.ScriptsDir)
			assert.Equal(t, test.expState, cfg.StateDir)
			if test.expEnv != nil {
				assert.Equal(t, test.expEnv, cfg.Env)
			}
		})
	}
}

func TestRootCommandNewProgressRepository(t *testing.T) {
	rootCmd := &RootCommand{Logger: log.Noop}

	repo, err := rootCmd.NewProgressRepository(model.InstallerConfig{StateDir: t.TempDir()}, model.EnvironmentLiveMedia)
	require.NoError(t, err)
	assert.NotNil(t, repo)
}
