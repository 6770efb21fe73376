package storage

import (
	"context"

	"github.com/JotaRandom/alie/internal/model"
)

// Repository is the interface for installation progress persistence.
type Repository interface {
	// RecordCompleted marks a step as completed. It is idempotent: recording
	// an already completed step keeps the single existing entry.
	RecordCompleted(ctx context.Context, stepID string) error
	// IsCompleted reports whether a step is marked completed.
	IsCompleted(ctx context.Context, stepID string) (bool, error)
	// ListCompleted returns every completed entry.
	ListCompleted(ctx context.Context) ([]model.ProgressEntry, error)
	// Reset deletes all progress. Irreversible, confirmation is the caller's
	// responsibility.
	Reset(ctx context.Context) error
}
