package apperrors

import "errors"

// Common errors
var (
	// ErrStore marks any failure reaching or querying the course store.
	// Connection and execution faults are deliberately not distinguished.
	ErrStore = errors.New("course store error")
)

// StoreError is the single error kind surfaced by the store layer
type StoreError struct {
	Op  string
	Err error
}

// NewStoreError wraps err as a StoreError for the given operation
func NewStoreError(op string, err error) *StoreError {
	return &StoreError{
		Op:  op,
		Err: err,
	}
}

// Error implements error interface
func (e *StoreError) Error() string {
	if e.Err == nil {
		if e.Op != "" {
			return e.Op
		}
		return ErrStore.Error()
	}
	if e.Op == "" {
		return e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

// Unwrap implements errors.Unwrap interface
func (e *StoreError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrStore) match every StoreError
func (e *StoreError) Is(target error) bool {
	return target == ErrStore
}

// IsStoreError reports whether err is, or wraps, a StoreError
func IsStoreError(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr)
}
