package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/JotaRandom/alie/internal/log"
	"github.com/JotaRandom/alie/internal/model"
)

// RepositoryConfig is the configuration for the memory repository.
type RepositoryConfig struct {
	Logger log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.Memory"})
	return nil
}

// Repository is an in-memory implementation of storage.Repository, mainly for
// tests.
type Repository struct {
	entries map[string]model.ProgressEntry
	order   []string
	mu      sync.RWMutex
	logger  log.Logger
}

// NewRepository creates a new memory repository.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Repository{
		entries: map[string]model.ProgressEntry{},
		logger:  cfg.Logger,
	}, nil
}

// RecordCompleted marks the step completed, keeping the first entry on repeats.
func (r *Repository) RecordCompleted(ctx context.Context, stepID string) error {
	if stepID == "" {
		return fmt.Errorf("step id is required: %w", model.ErrNotValid)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[stepID]; ok {
		return nil
	}

	r.entries[stepID] = model.ProgressEntry{StepID: stepID, CompletedAt: time.Now().UTC()}
	r.order = append(r.order, stepID)
	r.logger.Debugf("Recorded step %q", stepID)

	return nil
}

// IsCompleted reports whether the step is marked completed.
func (r *Repository) IsCompleted(ctx context.Context, stepID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entries[stepID]
	return ok, nil
}

// ListCompleted returns the entries in recording order.
func (r *Repository) ListCompleted(ctx context.Context) ([]model.ProgressEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]model.ProgressEntry, 0, len(r.order))
	for _, stepID := range r.order {
		entries = append(entries, r.entries[stepID])
	}

	return entries, nil
}

// Reset deletes all progress.
func (r *Repository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = map[string]model.ProgressEntry{}
	r.order = nil

	return nil
}
