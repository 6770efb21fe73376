package model

import (
	"fmt"
	"time"
)

// Privilege is the privilege level a step must be executed with.
type Privilege string

const (
	// PrivilegeRoot requires the step to run as root.
	PrivilegeRoot Privilege = "root"
	// PrivilegeUser requires the step to run as a regular (non-root) user.
	PrivilegeUser Privilege = "user"
)

// StepDefinition describes one externally implemented installation step and
// its position in the total installation order. Definitions are static, the
// operator can't mutate them at runtime.
type StepDefinition struct {
	ID           string
	Ordinal      int
	Description  string
	Environments []Environment
	Privilege    Privilege
	Script       string
}

// AdmitsEnvironment returns true if the step may run in the given environment.
func (s StepDefinition) AdmitsEnvironment(env Environment) bool {
	for _, e := range s.Environments {
		if e == env {
			return true
		}
	}
	return false
}

// Validate validates the step definition.
func (s StepDefinition) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("step id is required: %w", ErrNotValid)
	}
	if s.Ordinal <= 0 {
		return fmt.Errorf("step ordinal must be positive: %w", ErrNotValid)
	}
	if len(s.Environments) == 0 {
		return fmt.Errorf("step requires at least one environment: %w", ErrNotValid)
	}
	if s.Privilege != PrivilegeRoot && s.Privilege != PrivilegeUser {
		return fmt.Errorf("unknown step privilege %q: %w", s.Privilege, ErrNotValid)
	}
	if s.Script == "" {
		return fmt.Errorf("step script is required: %w", ErrNotValid)
	}
	return nil
}

// ProgressEntry is a persisted record that a step completed successfully.
type ProgressEntry struct {
	StepID      string
	CompletedAt time.Time
}

// StepStatus is a step definition combined with its completion state.
type StepStatus struct {
	Step        StepDefinition
	Completed   bool
	CompletedAt *time.Time
}

// StatusReport is the full progress report for the installation sequence.
type StatusReport struct {
	Environment Environment
	Steps       []StepStatus
}
