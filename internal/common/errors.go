// Package common provides shared utilities and types used across the
// application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// ErrNotFound indicates a lookup matched no record.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEntry indicates a category key already exists in its
	// partition.
	ErrDuplicateEntry = errors.New("duplicate entry")
	// ErrInvalidInput indicates the caller supplied malformed input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrStorageUnavailable indicates the underlying store rejected an
	// operation.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
