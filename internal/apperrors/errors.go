package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the authenticated user may not perform the operation.
var ErrForbidden = errors.New("operation not permitted")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrUnsupportedCurrency indicates a currency code outside the supported set.
// Detected before any I/O; recoverable by the caller correcting input.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// ErrProvider indicates the external rate-quoting service returned a
// business-level error or a non-success status. The provider's message is
// carried by the wrapping error.
var ErrProvider = errors.New("rate provider error")

// ErrInvalidResponse indicates the rate-quoting service returned success but
// the expected numeric conversion_rate field was missing or malformed.
var ErrInvalidResponse = errors.New("invalid rate provider response")

// ErrPersistence indicates the data store rejected a read or a bulk upsert.
var ErrPersistence = errors.New("persistence error")

// ErrPartialConversion indicates a currency conversion failed after the
// expense upsert succeeded: expenses are in the new currency, income records
// are not. Callers must surface this as a fatal, user-visible failure.
// Retrying the whole conversion is safe because already-converted records no
// longer match the source currency filter.
var ErrPartialConversion = errors.New("partial currency conversion")
