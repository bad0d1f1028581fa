// Package errs provides the standardized error types for the order-management core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The taxonomy mirrors the failure modes of order operations:
//   - ValidationError: the caller supplied bad input (items, address, amounts)
//   - InvalidTransitionError: the status state machine rejected a transition;
//     a specialization of ValidationError, so errors.Is(err, ErrValidation) holds
//   - ObjectNotFoundError: no order matches the requested identifier
//   - DependencyFailureError: a collaborator (persistence, payment) failed and
//     the order was left unchanged
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValidation)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel for errors.Is classification
//
// Validation and transition errors are always detected before any mutation and
// never leave partial state behind.
package errs
