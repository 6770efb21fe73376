package model_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JotaRandom/alie/internal/model"
)

func TestStepDefinitionValidate(t *testing.T) {
	tests := map[string]struct {
		step   model.StepDefinition
		expErr bool
	}{
		"A valid step should not fail": {
			step: model.StepDefinition{
				ID:           "base-install",
				Ordinal:      1,
				Environments: []model.Environment{model.EnvironmentLiveMedia},
				Privilege:    model.PrivilegeRoot,
				Script:       "base-install.sh",
			},
			expErr: false,
		},

		"Missing id should fail": {
			step: model.StepDefinition{
				Ordinal:      1,
				Environments: []model.Environment{model.EnvironmentLiveMedia},
				Privilege:    model.PrivilegeRoot,
				Script:       "base-install.sh",
			},
			expErr: true,
		},

		"Zero ordinal should fail": {
			step: model.StepDefinition{
				ID:           "base-install",
				Environments: []model.Environment{model.EnvironmentLiveMedia},
				Privilege:    model.PrivilegeRoot,
				Script:       "base-install.sh",
			},
			expErr: true,
		},

		"Missing environments should fail": {
			step: model.StepDefinition{
				ID:        "base-install",
				Ordinal:   1,
				Privilege: model.PrivilegeRoot,
				Script:    "base-install.sh",
			},
			expErr: true,
		},

		"Unknown privilege should fail": {
			step: model.StepDefinition{
				ID:           "base-install",
				Ordinal:      1,
				Environments: []model.Environment{model.EnvironmentLiveMedia},
				Privilege:    model.Privilege("sudo"),
				Script:       "base-install.sh",
			},
			expErr: true,
		},

		"Missing script should fail": {
			step: model.StepDefinition{
				ID:           "base-install",
				Ordinal:      1,
				Environments: []model.Environment{model.EnvironmentLiveMedia},
				Privilege:    model.PrivilegeRoot,
			},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			err := test.step.Validate()

			if test.expErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, model.ErrNotValid))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStepDefinitionAdmitsEnvironment(t *testing.T) {
	step := model.StepDefinition{
		ID:      "post-install",
		Ordinal: 3,
		Environments: []model.Environment{
			model.EnvironmentInstalledNoDesktop,
			model.EnvironmentInstalledWithDesktop,
		},
		Privilege: model.PrivilegeUser,
		Script:    "post-install.sh",
	}

	assert.True(t, step.AdmitsEnvironment(model.EnvironmentInstalledNoDesktop))
	assert.True(t, step.AdmitsEnvironment(model.EnvironmentInstalledWithDesktop))
	assert.False(t, step.AdmitsEnvironment(model.EnvironmentLiveMedia))
	assert.False(t, step.AdmitsEnvironment(model.EnvironmentUnknown))
}
