package usecase

import (
	"errors"
	"fmt"

	"bengkel_service/internal/domain/entities"
)

var (
	ErrJobNotFound                  = errors.New("job not found")
	ErrInvalidJobID                 = errors.New("invalid job id")
	ErrInvalidSaveType              = errors.New("invalid save type")
	ErrLifecycleFieldInPatch        = errors.New("close state can only change through close/reopen")
	ErrCloseNotConfirmed            = errors.New("closing a job with posted cost requires confirmation")
	ErrZeroCostCloseNotAcknowledged = errors.New("closing a job without posted cost requires an explicit override")
	ErrDocumentNumberConflict       = errors.New("document number already assigned to this job")
	ErrNumberAllocationExhausted    = errors.New("could not reserve a free document number")
)

// ValidationError is a local, pre-I/O rejection the user can fix.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Err.Error()
	}
	return fmt.Sprintf("validation failed on %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// AuthorizationError blocks an operation the acting role may not perform.
type AuthorizationError struct {
	Operation string
	Role      entities.Role
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("role %q is not allowed to %s", e.Role, e.Operation)
}

// PersistenceError wraps a ledger store failure. It is never retried.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: store failure: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func validationErr(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}
