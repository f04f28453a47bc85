package wfcrun

import "errors"

// Sentinel errors for the run controller. Contradiction itself is not an
// error: it is reported via StepResult/RunResult/State, not via these
// values. These cover the remaining error kinds: programmer errors
// (out-of-range coordinates or pattern ids), failed retries, and an error
// value naming the BudgetExhausted condition.
var (
	// ErrPatternOutOfRange indicates Forbid or Force was called with a
	// pattern id outside [0, P).
	ErrPatternOutOfRange = errors.New("wfcrun: pattern id out of range")

	// ErrCellOutOfRange indicates Forbid or Force was called with
	// coordinates outside the grid.
	ErrCellOutOfRange = errors.New("wfcrun: cell coordinates out of range")

	// ErrBudgetExhausted names the step-budget-exhausted condition as an
	// error value. No function in this package returns it: StepAll reports
	// budget exhaustion as RunBudgetExhausted, and CollapseRetrying counts
	// an attempt that exhausts its budget as failed.
	ErrBudgetExhausted = errors.New("wfcrun: step budget exhausted")

	// ErrNoAttemptsSucceeded indicates CollapseRetrying exhausted all
	// attempts without reaching Complete.
	ErrNoAttemptsSucceeded = errors.New("wfcrun: no attempt reached completion")

	// ErrContradictionReached is wrapped into the error returned by
	// Forbid/Force when the constraint itself (or its propagation)
	// empties a cell's possibility set.
	ErrContradictionReached = errors.New("wfcrun: contradiction")
)
