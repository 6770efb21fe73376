package reset

import (
	"context"
	"fmt"

	"github.com/JotaRandom/alie/internal/log"
	"github.com/JotaRandom/alie/internal/storage"
)

// ServiceConfig is the configuration for the reset service.
type ServiceConfig struct {
	Repository storage.Repository
	Logger     log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Reset"})
	return nil
}

// Service wipes the installation progress.
type Service struct {
	repo   storage.Repository
	logger log.Logger
}

// NewService creates a new reset service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Run deletes all recorded progress. Irreversible: confirming with the
// operator is the caller's job.
func (s *Service) Run(ctx context.Context) error {
	if err := s.repo.Reset(ctx); err != nil {
		return fmt.Errorf("could not reset progress: %w", err)
	}

	s.logger.Infof("Installation progress reset")

	return nil
}
