package pool

import (
	"errors"
	"fmt"
)

// Sentinel errors for package pool.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Run setup errors
	ErrLockCreate   = errors.New("unable to create pool lock")
	ErrDuplicateKey = errors.New("duplicate resource key")
	ErrEmptyPath    = errors.New("job source and destination must be set")

	// Lock errors
	ErrLockIntegrity = errors.New("lock integrity failure")
	ErrLockNotHeld   = errors.New("unlock of a lock that is not held")

	// Dispatch errors
	ErrConverterPanic = errors.New("converter panicked")

	// Configuration errors
	ErrUnknownMode   = errors.New("unknown progress mode")
	ErrUnknownPolicy = errors.New("unknown lock failure policy")
)

// JobError records a conversion failure for one job.
type JobError struct {
	Key string
	Err error
}

func (e *JobError) Error() string {
	return fmt.Sprintf("%s: %v", e.Key, e.Err)
}

func (e *JobError) Unwrap() error {
	return e.Err
}
