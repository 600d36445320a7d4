// Package errs provides the typed errors shared by every layer of the service.
//
// Each error kind follows the same shape:
//   - a sentinel variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - a struct type carrying the details (parameter name, offending value, cause)
//   - constructors with and without a cause
//   - Unwrap returning the sentinel
//
// The HTTP adapter classifies errors only through the sentinels, so domain
// packages are free to wrap these errors with fmt.Errorf("...: %w", err).
//
// Validation failures are split in three kinds (required, invalid, out of range);
// IsValidation groups them.
package errs
