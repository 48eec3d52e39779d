// Package errs provides standardized error types for the fulfillment service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the service's error taxonomy:
//   - ObjectNotFoundError: an entity, assignment, or delivery is missing
//   - ConflictError: a transition was already applied or a uniqueness rule collides
//   - InvalidStateError: a transition is not legal from the current state
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     validation failures on supplied input
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// Command handlers classify errors against the sentinels to produce the
// uniform operation result (not-found/conflict/bad-request/internal) that the
// HTTP layer translates to a response.
package errs
