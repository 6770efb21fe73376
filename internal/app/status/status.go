package status

import (
	"context"
	"fmt"

	"github.com/JotaRandom/alie/internal/environ"
	"github.com/JotaRandom/alie/internal/log"
	"github.com/JotaRandom/alie/internal/model"
	"github.com/JotaRandom/alie/internal/steps"
	"github.com/JotaRandom/alie/internal/storage"
)

// ServiceConfig is the configuration for the status service.
type ServiceConfig struct {
	Classifier environ.Classifier
	Repository storage.Repository
	Steps      []model.StepDefinition
	Logger     log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Classifier == nil {
		return fmt.Errorf("classifier is required")
	}
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}
	if c.Steps == nil {
		c.Steps = steps.Definitions()
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Status"})
	return nil
}

// Service reports installation progress.
type Service struct {
	classifier environ.Classifier
	repo       storage.Repository
	steps      []model.StepDefinition
	logger     log.Logger
}

// NewService creates a new status service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		classifier: cfg.Classifier,
		repo:       cfg.Repository,
		steps:      cfg.Steps,
		logger:     cfg.Logger,
	}, nil
}

// Run returns the status of every step plus the detected environment.
func (s *Service) Run(ctx context.Context) (*model.StatusReport, error) {
	entries, err := s.repo.ListCompleted(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not read progress: %w", err)
	}

	completedAt := make(map[string]model.ProgressEntry, len(entries))
	for _, e := range entries {
		completedAt[e.StepID] = e
	}

	report := &model.StatusReport{
		Environment: s.classifier.Classify(ctx),
		Steps:       make([]model.StepStatus, 0, len(s.steps)),
	}
	for _, step := range s.steps {
		st := model.StepStatus{Step: step}
		if e, ok := completedAt[step.ID]; ok {
			st.Completed = true
			ts := e.CompletedAt
			st.CompletedAt = &ts
		}
		report.Steps = append(report.Steps, st)
	}

	return report, nil
}
