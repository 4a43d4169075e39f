// Package errs provides the standardized error types used across the
// application. It implements one consistent pattern for error creation,
// formatting, and unwrapping.
//
// The taxonomy mirrors how failures are handled at the edges of the system:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     malformed or out-of-range input, recoverable by correcting the input
//   - ObjectNotFoundError: the referenced object does not exist or is not
//     visible to the caller (the two are indistinguishable on purpose)
//   - ForbiddenError: the acting party lacks privilege for the action
//   - InvalidTransitionError: a state change that is not a legal edge from
//     the current state, reported with both states
//   - ConflictError: a storage uniqueness violation or an exhausted
//     candidate-generation loop
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct type with fields for error details
//   - constructor functions with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel,
//     so errors.Is classification works throughout the application
package errs
