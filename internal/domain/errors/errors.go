package errors

import (
	"fmt"
	"strings"

	"tracker/internal/errors"
)

// Kind classifies a failure independently of its message so callers can
// branch on it (exit codes, retries, metrics labels).
type Kind string

const (
	KindInvalidArgument  Kind = "INVALID_ARGUMENT"
	KindValidationFailed Kind = "VALIDATION_FAILED"
	KindBadRequest       Kind = "BAD_REQUEST"
	KindNotFound         Kind = "NOT_FOUND"
	KindConcurrentUpdate Kind = "CONCURRENT_UPDATE"
	KindInternal         Kind = "INTERNAL_ERROR"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Failure classification
	ErrorCode() string // Business error code
	Message() string   // Operator-facing error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches any BaseError carrying the same error code, so a copy produced by
// WithDetails still satisfies errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the failure classification
func (e *BaseError) Kind() Kind {
	return e.kind
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the operator-facing error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithDetailsf is WithDetails with a format string.
func (e *BaseError) WithDetailsf(format string, args ...any) *BaseError {
	return e.WithDetails(fmt.Sprintf(format, args...))
}

// Predefined error types
var (
	// Geometry errors
	ErrInvalidCoordinates = NewBaseError(
		KindInvalidArgument,
		"INVALID_COORDINATES",
		"coordinates must be non-null and contain exactly [longitude, latitude]",
		"",
	)

	// Route errors
	ErrRouteValidationFailed = NewBaseError(
		KindValidationFailed,
		"ROUTE_VALIDATION_FAILED",
		"route segments are invalid",
		"",
	)

	ErrRouteNotFound = NewBaseError(
		KindNotFound,
		"ROUTE_NOT_FOUND",
		"route not found",
		"",
	)

	ErrUnknownRouteDevices = NewBaseError(
		KindBadRequest,
		"UNKNOWN_ROUTE_DEVICES",
		"cannot process route, devices are not registered",
		"",
	)

	ErrSegmentNotOnRoute = NewBaseError(
		KindBadRequest,
		"SEGMENT_NOT_ON_ROUTE",
		"segment cannot be updated as it was not found on the route",
		"",
	)

	ErrDuplicateSegmentID = NewBaseError(
		KindBadRequest,
		"DUPLICATE_SEGMENT_ID",
		"segment is listed more than once in the submission",
		"",
	)

	ErrRouteConcurrentUpdate = NewBaseError(
		KindConcurrentUpdate,
		"CONCURRENT_UPDATE",
		"the data was concurrently modified by another transaction",
		"",
	)

	// Telemetry errors
	ErrTelemetryNotFound = NewBaseError(
		KindNotFound,
		"TELEMETRY_NOT_FOUND",
		"telemetry data missing for devices",
		"",
	)

	ErrInvalidPosition = NewBaseError(
		KindBadRequest,
		"INVALID_POSITION",
		"device position is invalid",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		KindInternal,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		KindInternal,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)

// ValidationError carries every violation found in one validation pass.
type ValidationError struct {
	*BaseError
	violations []string
}

// NewValidationError builds a VALIDATION_FAILED error from the collected violations.
func NewValidationError(violations []string) *ValidationError {
	copied := make([]string, len(violations))
	copy(copied, violations)

	return &ValidationError{
		BaseError:  ErrRouteValidationFailed.WithDetails(strings.Join(copied, "; ")),
		violations: copied,
	}
}

// Violations returns the individual violation messages in detection order.
func (e *ValidationError) Violations() []string {
	return e.violations
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Kind returns the failure classification
func (e *DatabaseExecuteError) Kind() Kind {
	return KindInternal
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the operator-facing error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// KindOf returns the Kind of the first AppError in err's chain, or
// KindInternal for anything else.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}
