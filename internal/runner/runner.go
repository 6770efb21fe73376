package runner

import "context"

// Runner is the interface for executing a step's external script. The unit of
// work is an opaque executable: it communicates only through its exit status
// and inherited stdio.
type Runner interface {
	// Run executes the script as a child process with the given extra
	// environment. It returns the script's exit code; a non-nil error means
	// the script could not be run at all (not that it failed).
	Run(ctx context.Context, scriptPath string, env map[string]string) (int, error)
}
