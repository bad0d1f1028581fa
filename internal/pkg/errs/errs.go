package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation is the sentinel for all client-input validation failures.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidTransition marks a status transition rejected by the order
	// state machine. It wraps ErrValidation: an invalid transition is a
	// specialization of a validation failure, and callers that only care about
	// the broad class can match on ErrValidation.
	ErrInvalidTransition = fmt.Errorf("invalid status transition: %w", ErrValidation)

	// ErrObjectNotFound is the sentinel for lookups that match no row.
	ErrObjectNotFound = errors.New("object not found")

	// ErrDependencyFailure marks a collaborator failure (persistence conflict,
	// payment provider error). The order is left unchanged; the caller must
	// retry with fresh state.
	ErrDependencyFailure = errors.New("dependency failure")
)

// sanitize strips newlines from values embedded in error messages so a single
// error always renders as one log line.
func sanitize(v any) string {
	s := fmt.Sprintf("%s", v)
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// ValidationError reports that caller-supplied input violates a business rule.
// It carries a human-readable message and an optional cause.
type ValidationError struct {
	Message string
	Cause   error
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NewValidationErrorWithCause creates a ValidationError with the given message
// and underlying cause.
func NewValidationErrorWithCause(message string, cause error) *ValidationError {
	return &ValidationError{Message: message, Cause: cause}
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validation failed: %s (cause: %s)", sanitize(e.Message), sanitize(e.Cause))
	}
	return fmt.Sprintf("validation failed: %s", sanitize(e.Message))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// InvalidTransitionError reports that the state machine rejects moving an
// order from one status to another. From and To carry the offending pair.
type InvalidTransitionError struct {
	From  string
	To    string
	Cause error
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// status pair.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError for the
// given status pair with an underlying cause.
func NewInvalidTransitionErrorWithCause(from, to string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cannot transition order from %s to %s (cause: %s)",
			sanitize(e.From), sanitize(e.To), sanitize(e.Cause))
	}
	return fmt.Sprintf("cannot transition order from %s to %s", sanitize(e.From), sanitize(e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ObjectNotFoundError reports that no object matches the requested identifier.
// ParamName names the lookup key, ID its value.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given lookup key.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError with an
// underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("object not found: param is: %s, ID is: %s (cause: %s)",
			sanitize(e.ParamName), sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("object not found: %s", sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// DependencyFailureError reports that an external collaborator failed while
// executing the named operation. The order state is guaranteed unchanged.
type DependencyFailureError struct {
	Op    string
	Cause error
}

// NewDependencyFailureError creates a DependencyFailureError for the given
// operation and cause.
func NewDependencyFailureError(op string, cause error) *DependencyFailureError {
	return &DependencyFailureError{Op: op, Cause: cause}
}

func (e *DependencyFailureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("dependency failure: %s (cause: %s)", sanitize(e.Op), sanitize(e.Cause))
	}
	return fmt.Sprintf("dependency failure: %s", sanitize(e.Op))
}

func (e *DependencyFailureError) Unwrap() error {
	return ErrDependencyFailure
}
