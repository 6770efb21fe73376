// Package resolve implements the step resolver: given the classified
// environment and the persisted progress it decides the single next action.
package resolve

import (
	"context"
	"fmt"

	"github.com/JotaRandom/alie/internal/environ"
	"github.com/JotaRandom/alie/internal/log"
	"github.com/JotaRandom/alie/internal/model"
	"github.com/JotaRandom/alie/internal/steps"
	"github.com/JotaRandom/alie/internal/storage"
)

// ServiceConfig is the configuration for the resolve service.
type ServiceConfig struct {
	Classifier environ.Classifier
	Repository storage.Repository
	// Steps overrides the installation sequence. Defaults to the static table.
	Steps  []model.StepDefinition
	Logger log.Logger
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Resolve"})
	return nil
}

// Service resolves the next installation step.
type Service struct {
	classifier environ.Classifier
	repo       storage.Repository
	steps      []model.StepDefinition
	logger     log.Logger
}

// NewService creates a new resolve service.
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

// Resolve classifies the environment, reads the progress store and returns
// what to do next. It never executes anything itself and it never picks a
// recovery action on its own: wrong automatic guesses during an OS install
// are too expensive.
func (s *Service) Resolve(ctx context.Context) (*model.Resolution, error) {
	env := s.classifier.Classify(ctx)

	entries, err := s.repo.ListCompleted(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not read progress: %w", err)
	}
	highest := steps.HighestCompleted(s.steps, entries)

	s.logger.Debugf("Resolved environment %q with highest completed ordinal %d", env, highest)

	res := &model.Resolution{
		Environment:      env,
		HighestCompleted: highest,
	}

	if env == model.EnvironmentUnknown {
		res.Kind = model.ResolutionManualRequired
		return res, nil
	}

	next := steps.NextAfter(s.steps, highest)
	if next == nil {
		res.Kind = model.ResolutionComplete
		return res, nil
	}

	if next.AdmitsEnvironment(env) {
		res.Kind = model.ResolutionProposal
		res.Proposed = next
		return res, nil
	}

	// The next step in the total order disagrees with the detected
	// environment: either the operator missed a reboot or environment switch,
	// or the progress store is stale.
	res.Kind = model.ResolutionMismatch
	res.RecoveryActions = []model.RecoveryAction{model.RecoveryReset, model.RecoveryAbort}
	if highest > 0 {
		last, err := steps.ByOrdinal(s.steps, highest)
		if err == nil {
			res.LastCompleted = last
			res.RecoveryActions = append([]model.RecoveryAction{model.RecoveryRetryLast}, res.RecoveryActions...)
		}
	}

	return res, nil
}
