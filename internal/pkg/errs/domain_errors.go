package errs

import "errors"

// Sentinel taxonomy shared by the inventory, order and gateway layers.
var (
	// Business outcomes. Callers get these as result codes, never as failures.
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")

	// Infrastructure faults
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrStorageFailure        = errors.New("storage failure")
	ErrReservationFailed     = errors.New("reservation failed")

	// Idempotency replay. Resolved transparently into the stored result.
	ErrDuplicateRequest = errors.New("duplicate request")

	// Validation
	ErrInvalidArgument = errors.New("invalid argument")
)
