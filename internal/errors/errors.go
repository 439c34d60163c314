// Package errors provides custom error types for the habit store.
// All store- and service-layer errors should use AppError so that callers
// (the UI layer) always receive a stable error code they can act on,
// without internal details leaking through.
package errors

// AppError represents a structured application error with an error code,
// human-readable message, and optional internal error.
type AppError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Internal error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:     sentinel.Code,
		Message:  sentinel.Message,
		Internal: internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:     sentinel.Code,
		Message:  message,
		Internal: sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput = &AppError{Code: "INVALID_INPUT", Message: "Invalid input"}
	ErrNotFound     = &AppError{Code: "NOT_FOUND", Message: "Resource not found"}
	ErrInternal     = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred"}
)

// Storage errors.
var (
	// ErrStorageUnavailable signals that the backing database could not be
	// opened or written. Callers fall back to the null store instead of
	// crashing.
	ErrStorageUnavailable = &AppError{Code: "STORAGE_UNAVAILABLE", Message: "Local storage is unavailable"}
)

// Constraint errors. ErrConstraintViolation is the shared class: the
// concrete sentinels unwrap to it, so errors.Is(err, ErrConstraintViolation)
// matches any data-invariant breach.
var (
	ErrConstraintViolation = &AppError{Code: "CONSTRAINT_VIOLATION", Message: "Operation would break a data invariant"}
	ErrDuplicateTitle      = &AppError{Code: "DUPLICATE_TITLE", Message: "A category with this title already exists", Internal: ErrConstraintViolation}
	// ErrScheduleConflict is returned when a tracker would end up with both a
	// recurring schedule and a target date, or with neither.
	ErrScheduleConflict = &AppError{Code: "SCHEDULE_CONFLICT", Message: "A tracker needs either a weekday schedule or a target date, but not both", Internal: ErrConstraintViolation}
)

// Category errors.
var (
	ErrCategoryNotFound = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found"}
)

// Tracker errors.
var (
	ErrTrackerNotFound = &AppError{Code: "TRACKER_NOT_FOUND", Message: "Tracker not found"}
)
