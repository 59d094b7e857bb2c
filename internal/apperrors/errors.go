package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers branch on these with errors.Is; handlers map them
// to HTTP status codes.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrBackendUnavailable = errors.New("backend unavailable")
)

// Error wraps a sentinel with human-readable detail.
type Error struct {
	Err     error
	Details string
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func InvalidInput(format string, args ...any) error {
	return &Error{Err: ErrInvalidInput, Details: fmt.Sprintf(format, args...)}
}

func InvalidTransition(format string, args ...any) error {
	return &Error{Err: ErrInvalidTransition, Details: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) error {
	return &Error{Err: ErrNotFound, Details: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) error {
	return &Error{Err: ErrConflict, Details: fmt.Sprintf(format, args...)}
}

func Backend(err error) error {
	return &Error{Err: ErrBackendUnavailable, Details: err.Error()}
}
