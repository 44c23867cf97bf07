// Package errs provides standardized error types for the order service.
//
// Error kinds:
//   - ValueIsRequiredError: a mandatory field is empty
//   - ValueIsInvalidError: a field cannot be parsed, such as an unknown status name
//   - ValueIsOutOfRangeError: a quantity or price below its lower bound
//   - ObjectNotFoundError: no order row for the requested id
//   - StorageFailureError: the database rejected a read or write
//
// Every kind pairs a sentinel (ErrValueIsRequired and so on) with a struct that
// carries the details and an optional cause. Unwrap always exposes the sentinel,
// so errors.Is works whether or not a cause is attached.
//
// Callers classify errors with errors.Is against the sentinels; the HTTP adapter
// uses this to pick a response status.
package errs
