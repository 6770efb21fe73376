package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"k8s.io/client-go/util/homedir"

	"github.com/JotaRandom/alie/internal/conventions"
	"github.com/JotaRandom/alie/internal/log"
	"github.com/JotaRandom/alie/internal/model"
	"github.com/JotaRandom/alie/internal/storage/file"
	storageio "github.com/JotaRandom/alie/internal/storage/io"
)

const (
	// LoggerTypeDefault is the logger default type.
	LoggerTypeDefault = "default"
	// LoggerTypeJSON is the logger json type.
	LoggerTypeJSON = "json"
)

// Command represents an application command, all commands that want to be executed
// should implement and setup on main.
type Command interface {
	Name() string
	Run(ctx context.Context) error
}

// RootCommand represents the root command configuration and global configuration
// for all the commands.
type RootCommand struct {
	// Global flags.
	Debug      bool
	NoLog      bool
	NoColor    bool
	LoggerType string
	ConfigPath string
	ScriptsDir string
	StateDir   string

	// Global instances.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger log.Logger
}

// NewRootCommand initializes the main root configuration.
func NewRootCommand(app *kingpin.Application) *RootCommand {
	c := &RootCommand{}

	app.Flag("debug", "Enable debug mode.").BoolVar(&c.Debug)
	app.Flag("no-log", "Disable logger.").BoolVar(&c.NoLog)
	app.Flag("no-color", "Disable logger color.").BoolVar(&c.NoColor)
	app.Flag("logger", "Selects the logger type.").Default(LoggerTypeDefault).EnumVar(&c.LoggerType, LoggerTypeDefault, LoggerTypeJSON)

	defaultConfigPath := filepath.Join(homedir.HomeDir(), conventions.DefaultConfigDir, conventions.DefaultConfigFile)
	app.Flag("config", "Path to the installer YAML configuration file.").Envar("ALIE_CONFIG").Default(defaultConfigPath).StringVar(&c.ConfigPath)
	app.Flag("scripts-dir", "Directory holding the per-step shell scripts.").Envar("ALIE_SCRIPTS_DIR").StringVar(&c.ScriptsDir)
	app.Flag("state-dir", "Force a single progress state directory instead of the phase-dependent ones.").Envar("ALIE_STATE_DIR").StringVar(&c.StateDir)

	return c
}

// LoadConfig loads the optional YAML configuration file and merges it with the
// global flags, flags winning. A missing file is not an error, the installer
// runs fine without one.
func (c *RootCommand) LoadConfig(ctx context.Context) (model.InstallerConfig, error) {
	repo := storageio.NewConfigYAMLRepository(os.DirFS("/"))

	cfg, err := repo.GetConfig(ctx, strings.TrimPrefix(c.ConfigPath, "/"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.Logger.Debugf("No configuration file at %s", c.ConfigPath)
			cfg = model.InstallerConfig{}
		} else {
			return model.InstallerConfig{}, fmt.Errorf("could not load config %s: %w", c.ConfigPath, err)
		}
	}

	if c.ScriptsDir != "" {
		cfg.ScriptsDir = c.ScriptsDir
	}
	if cfg.ScriptsDir == "" {
		cfg.ScriptsDir = conventions.DefaultScriptsDir
	}
	if c.StateDir != "" {
		cfg.StateDir = c.StateDir
	}

	return cfg, nil
}

// NewProgressRepository creates the file progress repository for the detected
// environment, honoring a forced state dir when one is configured.
func (c *RootCommand) NewProgressRepository(cfg model.InstallerConfig, env model.Environment) (*file.Repository, error) {
	repoCfg := file.RepositoryConfig{
		Environment: env,
		Logger:      c.Logger,
	}
	if cfg.StateDir != "" {
		// A single forced location replaces every candidate dir.
		repoCfg.InstalledDir = cfg.StateDir
		repoCfg.TargetRootDir = cfg.StateDir
		repoCfg.TempDir = cfg.StateDir
	}

	return file.NewRepository(repoCfg)
}
