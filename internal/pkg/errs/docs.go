// Package errs provides standardized error types for the Rapiditos admin backend.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - OperationForbiddenError: For when an object is not eligible for an operation
//   - StateIsInvalidError: For when an object's state rejects an operation
//   - DataIsMissingError: For when a record lacks data an operation depends on
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The coordinator treats every error in this package as a deterministic domain
// error: it is returned to the caller unchanged and is never retried. Transient
// store failures live elsewhere (see ports.ErrTransactionContention).
package errs
