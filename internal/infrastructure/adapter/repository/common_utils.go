package repository

import (
	"strings"
)

// ErrorClassifier inspects driver errors by message. SQLite surfaces
// constraint and I/O failures as flat strings, so substring matching is
// the only classification available.
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// IsDuplicateKeyError checks if the error is a unique constraint violation
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint") ||
		strings.Contains(err.Error(), "constraint failed") ||
		strings.Contains(err.Error(), "duplicate key")
}

// IsUnavailableError checks if the error means the store itself could not
// be read or written (locked file, missing file, bad handle, I/O failure)
func (c *ErrorClassifier) IsUnavailableError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "unable to open") ||
		strings.Contains(msg, "disk I/O error") ||
		strings.Contains(msg, "database is closed") ||
		strings.Contains(msg, "no such table") ||
		strings.Contains(msg, "file is not a database")
}
