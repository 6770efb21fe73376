package conventions

import "path/filepath"

const (
	// TempStateDir holds progress state while booted from the live media,
	// before the target root filesystem is mounted.
	TempStateDir = "/tmp/alie"
	// TargetRootStateDir holds progress state under the target system's /root
	// once it is mounted at /mnt.
	TargetRootStateDir = "/mnt/root/.alie"
	// InstalledStateDir holds progress state on the installed system (and
	// inside the chroot, where / already is the target root).
	InstalledStateDir = "/root/.alie"

	// State files.

	// ProgressFile is the append-only marker file with completed step ids.
	ProgressFile = "progress"
	// AuditLogFile is the append-only human-readable audit log.
	AuditLogFile = "install.log"

	// DefaultScriptsDir is where the per-step shell scripts are installed.
	DefaultScriptsDir = "/usr/share/alie/steps"

	// DefaultConfigDir is the installer config directory name (relative to home).
	DefaultConfigDir = ".alie"
	// DefaultConfigFile is the installer config filename.
	DefaultConfigFile = "config.yaml"
)

// ProgressPath returns the progress marker file path inside a state dir.
func ProgressPath(stateDir string) string {
	return filepath.Join(stateDir, ProgressFile)
}

// AuditLogPath returns the audit log path inside a state dir.
func AuditLogPath(stateDir string) string {
	return filepath.Join(stateDir, AuditLogFile)
}
