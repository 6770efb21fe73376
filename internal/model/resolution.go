package model

// ResolutionKind is the outcome kind of a resolver run.
type ResolutionKind string

const (
	// ResolutionProposal means exactly one next step is admissible.
	ResolutionProposal ResolutionKind = "proposal"
	// ResolutionComplete means every defined step has completed.
	ResolutionComplete ResolutionKind = "complete"
	// ResolutionMismatch means the next step exists but its declared
	// environments disagree with the detected one. The operator must choose a
	// recovery action, the resolver never picks one automatically.
	ResolutionMismatch ResolutionKind = "mismatch"
	// ResolutionManualRequired means the environment could not be classified
	// and the operator has to pick a step manually.
	ResolutionManualRequired ResolutionKind = "manual-required"
)

// RecoveryAction is an operator choice offered on a mismatch.
type RecoveryAction string

const (
	// RecoveryRetryLast re-runs the highest completed step.
	RecoveryRetryLast RecoveryAction = "retry-last"
	// RecoveryReset wipes the progress store.
	RecoveryReset RecoveryAction = "reset"
	// RecoveryAbort exits without doing anything.
	RecoveryAbort RecoveryAction = "abort"
)

// Resolution is the resolver's answer for one invocation: the detected
// environment, the progress position, and what to do next.
type Resolution struct {
	Kind             ResolutionKind
	Environment      Environment
	HighestCompleted int
	// Proposed is set when Kind is ResolutionProposal.
	Proposed *StepDefinition
	// LastCompleted is set on a mismatch when at least one step completed,
	// it is the retry target.
	LastCompleted *StepDefinition
	// RecoveryActions are the choices offered on a mismatch.
	RecoveryActions []RecoveryAction
}
