package domain

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrTaskNotFound    = errors.New("task not found")
)

// ValidationError reports a structural constraint violation detected by an
// explicit Validate call. Constructors and mutators never produce it.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// DatabaseError wraps a storage-layer failure so callers can distinguish it
// from the not-found sentinels while still unwrapping the driver error.
type DatabaseError struct {
	Err error
}

func (e *DatabaseError) Error() string {
	return "database error: " + e.Err.Error()
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}

type InternalError struct {
	Message string
}

func (e *InternalError) Error() string {
	return "internal error: " + e.Message
}
