package apperror

import (
	"errors"
	"fmt"
)

// Sentinel kinds. Callers branch with errors.Is rather than matching
// message text.
var (
	ErrParse         = errors.New("parse error")
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("not found")
	ErrDuplicate     = errors.New("duplicate")
	ErrAlreadyMarked = errors.New("already marked")
	ErrNotMarked     = errors.New("not marked")
	ErrStorage       = errors.New("storage error")
)

// AppError pairs a human-readable message with one of the sentinel kinds.
// Unwrap exposes the kind (and, for storage errors, the underlying cause)
// so errors.Is works through it.
type AppError struct {
	Kind    error
	Message string
	Cause   error // optional underlying error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}

func Parse(format string, args ...any) *AppError {
	return &AppError{
		Kind:    ErrParse,
		Message: fmt.Sprintf(format, args...),
	}
}

func Validation(format string, args ...any) *AppError {
	return &AppError{
		Kind:    ErrValidation,
		Message: fmt.Sprintf(format, args...),
	}
}

func NotFound(name string) *AppError {
	return &AppError{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("habit %s not found", name),
	}
}

func Duplicate(name string) *AppError {
	return &AppError{
		Kind:    ErrDuplicate,
		Message: fmt.Sprintf("habit %s already exists", name),
	}
}

func AlreadyMarked(name, date string) *AppError {
	return &AppError{
		Kind:    ErrAlreadyMarked,
		Message: fmt.Sprintf("habit %s already marked for %s", name, date),
	}
}

func NotMarked(name, date string) *AppError {
	return &AppError{
		Kind:    ErrNotMarked,
		Message: fmt.Sprintf("habit %s is not marked for %s", name, date),
	}
}

// Storage wraps an underlying persistence failure. The cause stays
// reachable through errors.Is/errors.As.
func Storage(op string, err error) *AppError {
	return &AppError{
		Kind:    ErrStorage,
		Message: fmt.Sprintf("%s: %v", op, err),
		Cause:   err,
	}
}
