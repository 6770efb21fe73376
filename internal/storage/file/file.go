// Package file implements the progress repository on top of a plain
// line-oriented marker file plus a companion audit log. The files must be
// usable from the live ISO, from inside the chroot and on the installed
// system, so the repository knows several candidate locations: every
// candidate is read, the write location depends on the installation phase.
package file

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/JotaRandom/alie/internal/conventions"
	"github.com/JotaRandom/alie/internal/log"
	"github.com/JotaRandom/alie/internal/model"
)

// RepositoryConfig is the configuration for the file repository.
type RepositoryConfig struct {
	// Environment selects the preferred write location for this invocation.
	// Reads always merge every candidate location.
	Environment model.Environment
	// InstalledDir, TargetRootDir and TempDir override the default candidate
	// state dirs. Mainly for tests.
	InstalledDir  string
	TargetRootDir string
	TempDir       string
	Logger        log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.Environment == "" {
		c.Environment = model.EnvironmentUnknown
	}
	if c.InstalledDir == "" {
		c.InstalledDir = conventions.InstalledStateDir
	}
	if c.TargetRootDir == "" {
		c.TargetRootDir = conventions.TargetRootStateDir
	}
	if c.TempDir == "" {
		c.TempDir = conventions.TempStateDir
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.File"})
	return nil
}

// Repository is a file backed implementation of storage.Repository.
type Repository struct {
	env           model.Environment
	installedDir  string
	targetRootDir string
	tempDir       string
	sessionID     string
	logger        log.Logger
}

// NewRepository creates a new file repository. Every repository instance gets
// its own session ID, stamped on the audit log lines it writes.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Repository{
		env:           cfg.Environment,
		installedDir:  cfg.InstalledDir,
		targetRootDir: cfg.TargetRootDir,
		tempDir:       cfg.TempDir,
		sessionID:     ulid.Make().String(),
		logger:        cfg.Logger,
	}, nil
}

// RecordCompleted appends the step to the marker file if not already present
// and writes an audit log line. The marker file is only ever appended to,
// previously recorded entries are never rewritten.
func (r *Repository) RecordCompleted(ctx context.Context, stepID string) error {
	if stepID == "" {
		return fmt.Errorf("step id is required: %w", model.ErrNotValid)
	}

	completed, err := r.IsCompleted(ctx, stepID)
	if err != nil {
		return err
	}
	if completed {
		r.logger.Debugf("Step %q already recorded, keeping existing entry", stepID)
		return nil
	}

	dir := r.writeDir()
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("could not create state dir %s: %w", dir, err)
	}

	now := time.Now().UTC()
	line := fmt.Sprintf("%s\t%s\n", stepID, now.Format(time.RFC3339))
	if err := appendLine(conventions.ProgressPath(dir), line); err != nil {
		return fmt.Errorf("could not record step %q: %w", stepID, err)
	}

	// The marker file is the source of truth, a failed audit line is only a
	// warning.
	auditLine := fmt.Sprintf("%s %s completed %s\n", now.Format(time.RFC3339), r.sessionID, stepID)
	if err := appendLine(conventions.AuditLogPath(dir), auditLine); err != nil {
		r.logger.Warningf("Could not write audit log line: %s", err)
	}

	r.logger.Debugf("Recorded step %q in %s", stepID, dir)

	return nil
}

// IsCompleted reports whether the step is marked completed in any candidate
// location.
func (r *Repository) IsCompleted(ctx context.Context, stepID string) (bool, error) {
	entries, err := r.ListCompleted(ctx)
	if err != nil {
		return false, err
	}

	for _, e := range entries {
		if e.StepID == stepID {
			return true, nil
		}
	}
	return false, nil
}

// ListCompleted merges the marker files of every candidate location. A
// missing file means nothing completed there, unparseable lines are skipped.
func (r *Repository) ListCompleted(ctx context.Context) ([]model.ProgressEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var entries []model.ProgressEntry
	seen := map[string]bool{}

	for _, dir := range r.candidateDirs() {
		dirEntries, err := readMarkerFile(conventions.ProgressPath(dir))
		if err != nil {
			return nil, fmt.Errorf("could not read progress in %s: %w", dir, err)
		}

		for _, e := range dirEntries {
			if seen[e.StepID] {
				continue
			}
			seen[e.StepID] = true
			entries = append(entries, e)
		}
	}

	return entries, nil
}

// Reset deletes the marker file and audit log in every candidate location.
func (r *Repository) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, dir := range r.candidateDirs() {
		for _, path := range []string{conventions.ProgressPath(dir), conventions.AuditLogPath(dir)} {
			err := os.Remove(path)
			if err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("could not remove %s: %w", path, err)
			}
		}
	}

	r.logger.Infof("Progress store reset")

	return nil
}

// candidateDirs returns every read location, most current first.
func (r *Repository) candidateDirs() []string {
	return []string{r.installedDir, r.targetRootDir, r.tempDir}
}

// writeDir picks the write location for the current installation phase.
func (r *Repository) writeDir() string {
	switch r.env {
	case model.EnvironmentLiveMedia:
		// Once the target root is mounted progress must land on it so it
		// survives the reboot off the live media.
		if dirExists(filepath.Dir(r.targetRootDir)) {
			return r.targetRootDir
		}
		return r.tempDir
	case model.EnvironmentChroot,
		model.EnvironmentInstalledNoDesktop,
		model.EnvironmentInstalledWithDesktop:
		// Inside the chroot / is already the target root.
		return r.installedDir
	default:
		// Unknown phase: reuse wherever progress already lives, otherwise the
		// temp dir so an unclassified host is never polluted.
		for _, dir := range r.candidateDirs() {
			if fileExists(conventions.ProgressPath(dir)) {
				return dir
			}
		}
		return r.tempDir
	}
}

func readMarkerFile(path string) ([]model.ProgressEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var entries []model.ProgressEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		stepID, rawTime, ok := strings.Cut(strings.TrimSpace(scanner.Text()), "\t")
		if !ok || stepID == "" {
			continue
		}

		ts, err := time.Parse(time.RFC3339, rawTime)
		if err != nil {
			// Torn or corrupted line, the store is advisory state so this is
			// best-effort recovery, not an error.
			continue
		}

		entries = append(entries, model.ProgressEntry{StepID: stepID, CompletedAt: ts})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}

	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func dirExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
