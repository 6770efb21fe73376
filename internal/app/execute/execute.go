// Package execute runs a single installation step: privilege gate, script
// lookup, child process execution and progress recording on success.
package execute

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/JotaRandom/alie/internal/conventions"
	"github.com/JotaRandom/alie/internal/log"
	"github.com/JotaRandom/alie/internal/model"
	"github.com/JotaRandom/alie/internal/runner"
	"github.com/JotaRandom/alie/internal/storage"
)

// ServiceConfig is the configuration for the execute service.
type ServiceConfig struct {
	Runner     runner.Runner
	Repository storage.Repository
	// ScriptsDir is where step scripts live. Defaults to the packaged dir.
	ScriptsDir string
	// EUID returns the effective UID of this process, injectable for tests.
	EUID func() int
	// StatScript checks a script path exists, injectable for tests.
	StatScript func(path string) error
	Logger     log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Runner == nil {
		return fmt.Errorf("runner is required")
	}
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}
	if c.ScriptsDir == "" {
		c.ScriptsDir = conventions.DefaultScriptsDir
	}
	if c.EUID == nil {
		c.EUID = os.Geteuid
	}
	if c.StatScript == nil {
		c.StatScript = func(path string) error {
			_, err := os.Stat(path)
			return err
		}
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Execute"})
	return nil
}

// Service executes installation steps.
type Service struct {
	runner     runner.Runner
	repo       storage.Repository
	scriptsDir string
	euid       func() int
	statScript func(path string) error
	logger     log.Logger
}

// NewService creates a new execute service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		runner:     cfg.Runner,
		repo:       cfg.Repository,
		scriptsDir: cfg.ScriptsDir,
		euid:       cfg.EUID,
		statScript: cfg.StatScript,
		logger:     cfg.Logger,
	}, nil
}

// Request contains the parameters for executing a step.
type Request struct {
	Step model.StepDefinition
	// Env is extra environment handed to the step script.
	Env map[string]string
}

// Execute runs the step. Progress is recorded only when the script exits
// zero; on a privilege mismatch the runner is never invoked.
func (s *Service) Execute(ctx context.Context, req Request) error {
	// 1. Validate step.
	if err := req.Step.Validate(); err != nil {
		return fmt.Errorf("invalid step: %w", err)
	}

	// 2. Privilege gate, before anything is spawned.
	if err := s.checkPrivilege(req.Step); err != nil {
		return err
	}

	// 3. The step script must exist.
	scriptPath := filepath.Join(s.scriptsDir, req.Step.Script)
	if err := s.statScript(scriptPath); err != nil {
		return fmt.Errorf("step %q script expected at %s: %w", req.Step.ID, scriptPath, model.ErrNotFound)
	}

	// 4. Run it, streaming to the operator.
	s.logger.Infof("Running step %q: %s", req.Step.ID, req.Step.Description)
	exitCode, err := s.runner.Run(ctx, scriptPath, req.Env)
	if err != nil {
		return fmt.Errorf("could not run step %q: %w", req.Step.ID, err)
	}
	if exitCode != 0 {
		// No progress write, no retry at this layer: the step scripts own
		// their transient retries, the resolver is safe to re-invoke.
		return fmt.Errorf("step %q exited with status %d: %w", req.Step.ID, exitCode, model.ErrStepFailed)
	}

	// 5. Record progress.
	if err := s.repo.RecordCompleted(ctx, req.Step.ID); err != nil {
		return fmt.Errorf("step %q succeeded but progress could not be recorded: %w", req.Step.ID, err)
	}

	s.logger.Infof("Step %q completed", req.Step.ID)

	return nil
}

func (s *Service) checkPrivilege(step model.StepDefinition) error {
	root := s.euid() == 0
	switch {
	case step.Privilege == model.PrivilegeRoot && !root:
		return fmt.Errorf("step %q must run as root: %w", step.ID, model.ErrPrivilegeMismatch)
	case step.Privilege == model.PrivilegeUser && root:
		return fmt.Errorf("step %q must run as a regular user, not root: %w", step.ID, model.ErrPrivilegeMismatch)
	}
	return nil
}
