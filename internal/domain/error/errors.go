package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidUserID  = 4003
	CodeDuplicateEmail = 4005
	CodeInvalidRecord  = 4006
	CodeUserNotFound   = 4040

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeStorageUnavailable = 5030
)

// Base error types
var (
	// ErrUserNotFound signals that no user matched the lookup key. It is
	// not a failure condition: callers represent it as absence, and the
	// session layer swallows it silently on login.
	ErrUserNotFound = errors.New("user not found")

	// ErrStorageUnavailable is returned when the persistence backend could
	// not be opened, read, or written. Fatal for the triggering operation,
	// propagated unchanged, never retried.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrDuplicateEmail is returned when an insert would violate the
	// unique email constraint.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidUserID is returned when a user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidName is returned when a user's display name is empty
	ErrInvalidName = errors.New("name cannot be empty")

	// ErrInvalidEmail is returned when a user's email is empty
	ErrInvalidEmail = errors.New("email cannot be empty")

	// ErrInvalidDate is returned when a transaction date is empty
	ErrInvalidDate = errors.New("date cannot be empty")

	// ErrInvalidDescription is returned when a transaction description is empty
	ErrInvalidDescription = errors.New("description cannot be empty")

	// ErrNegativeAmount is returned when a transaction amount magnitude is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrDuplicateEmail):
		return CodeDuplicateEmail
	case errors.Is(err, ErrInvalidName),
		errors.Is(err, ErrInvalidEmail),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrInvalidDescription),
		errors.Is(err, ErrNegativeAmount):
		return CodeInvalidRecord
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrStorageUnavailable):
		return CodeStorageUnavailable
	default:
		return CodeInternalServer
	}
}

// StorageError carries the backend failure that made a store operation
// unusable, alongside the operation that triggered it.
type StorageError struct {
	Operation string
	Err       error
}

// Error implements the error interface for StorageError
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage unavailable during %s: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying error
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrStorageUnavailable
func (e *StorageError) Is(target error) bool {
	return target == ErrStorageUnavailable
}

// LogFields returns a map of fields for structured logging
func (e *StorageError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "storage_error",
		"operation":  e.Operation,
		"error":      e.Err.Error(),
		"error_code": CodeStorageUnavailable,
	}
}

// NewStorageError wraps a backend failure for the given operation
func NewStorageError(operation string, err error) error {
	return &StorageError{Operation: operation, Err: err}
}

// IsNotFoundError checks if the error is a "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsStorageUnavailableError checks if the error is a storage backend failure
func IsStorageUnavailableError(err error) bool {
	return errors.Is(err, ErrStorageUnavailable)
}

// IsDuplicateEmailError checks if the error is a unique email violation
func IsDuplicateEmailError(err error) bool {
	return errors.Is(err, ErrDuplicateEmail)
}
