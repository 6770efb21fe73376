package exec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	osexec "os/exec"
	"sort"

	"github.com/JotaRandom/alie/internal/log"
)

// RunnerConfig is the configuration for the exec runner.
type RunnerConfig struct {
	// Stdin, Stdout and Stderr are handed straight to the child process so
	// the script's interaction reaches the operator unmodified.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger log.Logger
}

func (c *RunnerConfig) defaults() error {
	if c.Stdin == nil {
		c.Stdin = os.Stdin
	}
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "runner.Exec"})
	return nil
}

// Runner runs step scripts as child processes.
type Runner struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger log.Logger
}

// NewRunner creates a new exec runner.
func NewRunner(cfg RunnerConfig) (*Runner, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Runner{
		stdin:  cfg.Stdin,
		stdout: cfg.Stdout,
		stderr: cfg.Stderr,
		logger: cfg.Logger,
	}, nil
}

// Run executes the script and returns its exit code. The child inherits the
// process environment plus the given extra variables.
func (r *Runner) Run(ctx context.Context, scriptPath string, env map[string]string) (int, error) {
	cmd := osexec.CommandContext(ctx, scriptPath)
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	cmd.Env = append(os.Environ(), sortedEnv(env)...)

	r.logger.Debugf("Running %s", scriptPath)

	err := cmd.Run()
	if err != nil {
		var exitErr *osexec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 0, fmt.Errorf("could not run %s: %w", scriptPath, err)
	}

	return 0, nil
}

func sortedEnv(env map[string]string) []string {
	vars := make([]string, 0, len(env))
	for k, v := range env {
		vars = append(vars, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(vars)
	return vars
}
