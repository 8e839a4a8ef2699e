package errors

import (
	"errors"
	"fmt"
)

// Common error types used across the goexec library

var (
	// ErrTimeout indicates that an operation timed out
	ErrTimeout = errors.New("operation timed out")

	// ErrInvalidConfiguration indicates invalid configuration parameters
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrNotRunning indicates that work was submitted to an executor that is not running
	ErrNotRunning = errors.New("executor is not running")

	// ErrAlreadyStarted indicates that Start was called more than once
	ErrAlreadyStarted = errors.New("executor already started")

	// ErrCanceled indicates that a task was canceled before it could complete normally
	ErrCanceled = errors.New("task canceled")

	// ErrPanicked indicates that a task panicked while running
	ErrPanicked = errors.New("task panicked")

	// ErrAborted indicates that a task ended its goroutine without returning
	ErrAborted = errors.New("task exited without returning")
)

// ValidationError describes an invalid argument or configuration value.
type ValidationError struct {
	Module string
	Field  string
	Value  interface{}
	Reason string
	Hint   string
}

// NewValidationError creates a ValidationError without a hint.
func NewValidationError(module, field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{
		Module: module,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// WithHint attaches a remediation hint and returns the same error for chaining.
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s=%v (%s)", e.Module, e.Field, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " - " + e.Hint
	}
	return msg
}

// Unwrap returns ErrInvalidConfiguration so callers can match with errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// OperationError wraps the failure of a named operation.
type OperationError struct {
	Module    string
	Operation string
	Cause     error
	Context   string
}

// NewOperationError creates an OperationError for module.operation.
func NewOperationError(module, operation string, cause error) *OperationError {
	return &OperationError{
		Module:    module,
		Operation: operation,
		Cause:     cause,
	}
}

// WithContext attaches extra detail and returns the same error for chaining.
func (e *OperationError) WithContext(context string) *OperationError {
	e.Context = context
	return e
}

func (e *OperationError) Error() string {
	msg := fmt.Sprintf("%s.%s failed: %v", e.Module, e.Operation, e.Cause)
	if e.Context != "" {
		msg += " (" + e.Context + ")"
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	return e.Cause
}

// LifecycleError reports an operation attempted while a component was in the
// wrong lifecycle state. These are programmer errors, not transient failures.
type LifecycleError struct {
	Module    string
	Operation string
	State     string
	Err       error
}

// NewLifecycleError creates a LifecycleError wrapping one of the sentinel errors.
func NewLifecycleError(module, operation, state string, err error) *LifecycleError {
	return &LifecycleError{
		Module:    module,
		Operation: operation,
		State:     state,
		Err:       err,
	}
}

func (e *LifecycleError) Error() string {
	return fmt.Sprintf("%s.%s: %v (state %s)", e.Module, e.Operation, e.Err, e.State)
}

func (e *LifecycleError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// IsLifecycleError reports whether err is or wraps a *LifecycleError.
func IsLifecycleError(err error) bool {
	var lerr *LifecycleError
	return errors.As(err, &lerr)
}
