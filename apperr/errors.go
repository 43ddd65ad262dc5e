package apperr

import "errors"

// Sentinels for the reconciliation core. Services wrap these with
// context via fmt.Errorf("...: %w", ...); controllers match with
// errors.Is to pick the HTTP status.
var (
	ErrValidation       = errors.New("validation failed")
	ErrNotFound         = errors.New("not found")
	ErrAlreadyCancelled = errors.New("order already cancelled")
	ErrAlreadySponsored = errors.New("already sponsored")
	ErrConflict         = errors.New("concurrent update conflict")

	// ErrReconcileFailed marks a multi-employee operation that failed
	// AND could not be rolled back cleanly. Manual reconciliation is
	// required; it must never be reported as a generic failure.
	ErrReconcileFailed = errors.New("reconciliation failed, manual review required")
)
