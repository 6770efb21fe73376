package resolve_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/JotaRandom/alie/internal/app/resolve"
	"github.com/JotaRandom/alie/internal/model"
	"github.com/JotaRandom/alie/internal/storage/storagemock"
)

// staticClassifier always returns the same environment.
type staticClassifier model.Environment

func (c staticClassifier) Classify(ctx context.Context) model.Environment {
	return model.Environment(c)
}

func entries(stepIDs ...string) []model.ProgressEntry {
	var es []model.ProgressEntry
	for _, id := range stepIDs {
		es = append(es, model.ProgressEntry{StepID: id})
	}
	return es
}

func TestNewService(t *testing.T) {
	tests := map[string]struct {
		cfg    resolve.ServiceConfig
		expErr bool
		errMsg string
	}{
		"Valid config": {
			cfg: resolve.ServiceConfig{
				Classifier: staticClassifier(model.EnvironmentChroot),
				Repository: &storagemock.MockRepository{},
			},
		},
		"Missing classifier returns error": {
			cfg: resolve.ServiceConfig{
				Repository: &storagemock.MockRepository{},
			},
			expErr: true,
			errMsg: "classifier is required",
		},
		"Missing repository returns error": {
			cfg: resolve.ServiceConfig{
				Classifier: staticClassifier(model.EnvironmentChroot),
			},
			expErr: true,
			errMsg: "repository is required",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			svc, err := resolve.NewService(test.cfg)

			if test.expErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), test.errMsg)
				assert.Nil(t, svc)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, svc)
			}
		})
	}
}

func TestServiceResolve(t *testing.T) {
	tests := map[string]struct {
		environment model.Environment
		completed   []model.ProgressEntry
		validateRes func(t *testing.T, res *model.Resolution)
	}{
		"Live media with an empty store proposes the base install": {
			environment: model.EnvironmentLiveMedia,
			completed:   nil,
			validateRes: func(t *testing.T, res *model.Resolution) {
				assert.Equal(t, model.ResolutionProposal, res.Kind)
				assert.Equal(t, 0, res.HighestCompleted)
				require.NotNil(t, res.Proposed)
				assert.Equal(t, 1, res.Proposed.Ordinal)
				assert.Equal(t, "base-install", res.Proposed.ID)
			},
		},

		"Chroot with the base install done proposes the chroot setup": {
			environment: model.EnvironmentChroot,
			completed:   entries("base-install"),
			validateRes: func(t *testing.T, res *model.Resolution) {
				assert.Equal(t, model.ResolutionProposal, res.Kind)
				assert.Equal(t, 1, res.HighestCompleted)
				require.NotNil(t, res.Proposed)
				assert.Equal(t, 2, res.Proposed.Ordinal)
			},
		},

		"Installed without desktop with steps 1 and 2 done proposes the first admissible later step": {
			environment: model.EnvironmentInstalledNoDesktop,
			completed:   entries("base-install", "chroot-setup"),
			validateRes: func(t *testing.T, res *model.Resolution) {
				assert.Equal(t, model.ResolutionProposal, res.Kind)
				require.NotNil(t, res.Proposed)
				assert.Greater(t, res.Proposed.Ordinal, 2)
				assert.True(t, res.Proposed.AdmitsEnvironment(model.EnvironmentInstalledNoDesktop))
				assert.Equal(t, "post-install", res.Proposed.ID)
			},
		},

		"Every step completed reports completion": {
			environment: model.EnvironmentInstalledWithDesktop,
			completed:   entries("base-install", "chroot-setup", "post-install", "desktop-install", "config-deploy"),
			validateRes: func(t *testing.T, res *model.Resolution) {
				assert.Equal(t, model.ResolutionComplete, res.Kind)
				assert.Nil(t, res.Proposed)
			},
		},

		"Unknown environment requires manual mode": {
			environment: model.EnvironmentUnknown,
			completed:   entries("base-install"),
			validateRes: func(t *testing.T, res *model.Resolution) {
				assert.Equal(t, model.ResolutionManualRequired, res.Kind)
				assert.Nil(t, res.Proposed)
			},
		},

		"Environment ahead of progress is a mismatch without a retry target": {
			environment: model.EnvironmentInstalledNoDesktop,
			completed:   nil,
			validateRes: func(t *testing.T, res *model.Resolution) {
				assert.Equal(t, model.ResolutionMismatch, res.Kind)
				assert.Nil(t, res.LastCompleted)
				assert.Equal(t, []model.RecoveryAction{model.RecoveryReset, model.RecoveryAbort}, res.RecoveryActions)
			},
		},

		"Environment behind progress is a mismatch with a retry target": {
			environment: model.EnvironmentLiveMedia,
			completed:   entries("base-install", "chroot-setup"),
			validateRes: func(t *testing.T, res *model.Resolution) {
				assert.Equal(t, model.ResolutionMismatch, res.Kind)
				require.NotNil(t, res.LastCompleted)
				assert.Equal(t, "chroot-setup", res.LastCompleted.ID)
				assert.Equal(t, []model.RecoveryAction{
					model.RecoveryRetryLast,
					model.RecoveryReset,
					model.RecoveryAbort,
				}, res.RecoveryActions)
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			mockRepo := storagemock.NewMockRepository(t)
			mockRepo.On("ListCompleted", mock.Anything).Return(test.completed, nil)

			svc, err := resolve.NewService(resolve.ServiceConfig{
				Classifier: staticClassifier(test.environment),
				Repository: mockRepo,
			})
			require.NoError(t, err)

			res, err := svc.Resolve(context.Background())
			require.NoError(t, err)
			test.validateRes(t, res)
		})
	}
}

func TestServiceResolveRepositoryError(t *testing.T) {
	mockRepo := storagemock.NewMockRepository(t)
	mockRepo.On("ListCompleted", mock.Anything).Return(nil, errors.New("disk error"))

	svc, err := resolve.NewService(resolve.ServiceConfig{
		Classifier: staticClassifier(model.EnvironmentChroot),
		Repository: mockRepo,
	})
	require.NoError(t, err)

	_, err = svc.Resolve(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not read progress")
}
