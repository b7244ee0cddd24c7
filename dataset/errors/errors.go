// Package errors provides standardized error types for dataset loading.
package errors

import (
	"fmt"
)

// Error constants for dataset loading
var (
	// ErrResourceNotFound is returned when the dataset file cannot be found
	ErrResourceNotFound = &LoadError{code: "resource_not_found", msg: "dataset resource not found"}

	// ErrLoadFailure is returned for any parse or schema failure while loading
	ErrLoadFailure = &LoadError{code: "load_failure", msg: "dataset load failure"}
)

// LoadError represents a dataset loading error. Loading errors are fatal:
// the caller must halt instead of serving partial data.
type LoadError struct {
	code string
	msg  string
	err  error // wrapped error
}

// Error implements the error interface
func (e *LoadError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Code returns the error code
func (e *LoadError) Code() string {
	return e.code
}

// Unwrap returns the wrapped error
func (e *LoadError) Unwrap() error {
	return e.err
}

// Is matches LoadErrors by code so that errors.Is works against the
// exported constants regardless of wrapping.
func (e *LoadError) Is(target error) bool {
	if t, ok := target.(*LoadError); ok {
		return e.code == t.code
	}
	return false
}

// New creates a new LoadError with a formatted message
func New(code, format string, args ...interface{}) *LoadError {
	return &LoadError{
		code: code,
		msg:  fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error with a dataset error
func Wrap(err error, code, format string, args ...interface{}) *LoadError {
	return &LoadError{
		code: code,
		msg:  fmt.Sprintf(format, args...),
		err:  err,
	}
}

// IsResourceNotFound checks if an error indicates a missing dataset file
func IsResourceNotFound(err error) bool {
	return Is(err, ErrResourceNotFound)
}

// IsLoadFailure checks if an error indicates a parse or schema failure
func IsLoadFailure(err error) bool {
	return Is(err, ErrLoadFailure)
}

// Is implements the errors.Is functionality for LoadError
func Is(err, target error) bool {
	if err == nil {
		return err == target
	}

	if err == target {
		return true
	}

	if e, ok := err.(interface{ Is(error) bool }); ok && e.Is(target) {
		return true
	}

	if e, ok := err.(interface{ Unwrap() error }); ok {
		return Is(e.Unwrap(), target)
	}

	return false
}
