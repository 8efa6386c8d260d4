// Package errs provides standardized error types for the application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the codebase.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type carrying the error details
//   - Constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() for errors.Is support
//
// Validation failures use ValueIsInvalidError/ValueIsRequiredError and are
// reported before any state change; missing referents use
// ObjectNotFoundError. Invariant-protection errors (insufficient stock,
// illegal status transitions) are sentinel errors declared next to the
// domain types they protect.
package errs
