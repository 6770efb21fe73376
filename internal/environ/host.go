package environ

import (
	"fmt"
	"os"
	"syscall"
)

// Host provides the raw host introspection signals the classifier reads.
// Implementations must not mutate host state.
type Host interface {
	// PathID returns a stable identity (device and inode) for a path.
	PathID(path string) (string, error)
	// KernelCmdline returns the kernel command line the host booted with.
	KernelCmdline() (string, error)
	// FileExists reports whether a path exists (symlinks count, they are not
	// followed so a registered unit alias is detected even when dangling).
	FileExists(path string) (bool, error)
}

// NewSystemHost returns a Host backed by the real system (/proc and friends).
func NewSystemHost() Host {
	return systemHost{}
}

type systemHost struct{}

func (systemHost) PathID(path string) (string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("could not stat %s: %w", path, err)
	}

	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return "", fmt.Errorf("no raw stat data for %s", path)
	}

	return fmt.Sprintf("%d:%d", st.Dev, st.Ino), nil
}

func (systemHost) KernelCmdline() (string, error) {
	data, err := os.ReadFile("/proc/cmdline")
	if err != nil {
		return "", fmt.Errorf("could not read kernel cmdline: %w", err)
	}
	return string(data), nil
}

func (systemHost) FileExists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("could not stat %s: %w", path, err)
}
