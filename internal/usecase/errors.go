package usecase

import (
	"errors"
)

// ErrNotFound marks lookups for records that do not exist
var ErrNotFound = errors.New("not found")

// ValidationError carries a rejection message for a malformed submission.
// Handlers map it to HTTP 400; nothing is persisted when one is returned.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}
