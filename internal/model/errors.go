package model

import "errors"

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when a resource already exists.
	ErrAlreadyExists = errors.New("already exists")
	// ErrNotValid is returned when a resource is not valid.
	ErrNotValid = errors.New("not valid")
	// ErrPrivilegeMismatch is returned when a step is executed with the wrong
	// privilege level (e.g. a root step as a regular user).
	ErrPrivilegeMismatch = errors.New("privilege mismatch")
	// ErrStepFailed is returned when a step script exits with a non-zero status.
	ErrStepFailed = errors.New("step failed")
)
