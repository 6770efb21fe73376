// Package fake provides a script runner that never spawns processes, for
// tests and dry experiments.
package fake

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/JotaRandom/alie/internal/log"
)

// Call records one runner invocation.
type Call struct {
	ScriptPath string
	Env        map[string]string
}

// RunnerConfig is the configuration for the fake runner.
type RunnerConfig struct {
	// ExitCodes maps script file names (base name, not full path) to the exit
	// code the fake returns. Unlisted scripts exit 0.
	ExitCodes map[string]int
	Logger    log.Logger
}

func (c *RunnerConfig) defaults() error {
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "runner.Fake"})
	return nil
}

// Runner is a fake implementation of runner.Runner that records calls and
// returns scripted exit codes.
type Runner struct {
	exitCodes map[string]int
	calls     []Call
	mu        sync.Mutex
	logger    log.Logger
}

// NewRunner creates a new fake runner.
func NewRunner(cfg RunnerConfig) (*Runner, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Runner{
		exitCodes: cfg.ExitCodes,
		logger:    cfg.Logger,
	}, nil
}

// Run records the call and returns the scripted exit code.
func (r *Runner) Run(ctx context.Context, scriptPath string, env map[string]string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, Call{ScriptPath: scriptPath, Env: env})

	code := r.exitCodes[filepath.Base(scriptPath)]
	r.logger.Debugf("Fake run %s -> %d", scriptPath, code)

	return code, nil
}

// Calls returns a copy of the recorded invocations.
func (r *Runner) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()

	calls := make([]Call, len(r.calls))
	copy(calls, r.calls)
	return calls
}
