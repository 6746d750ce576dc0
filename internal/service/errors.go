package service

import (
	"errors"
	"fmt"

	"novel-annotator/internal/editor"
)

var (
	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when a requested resource is not found.
	ErrNotFound = errors.New("not found")
	// ErrPersistence is returned when a computed change could not be saved.
	ErrPersistence = errors.New("persistence failed")
)

// ValidationError represents a validation error with a field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// Unwrap lets errors.Is(err, ErrInvalidInput) match validation errors.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// PersistError is returned when a mutation was computed and applied in memory
// but saving it failed. Result holds the computed state; it stays cached and
// is written again by the next successful save of the same novel.
type PersistError struct {
	Op     string
	Result MutationResult
	Err    error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("%s: changes kept in memory but not saved: %v", e.Op, e.Err)
}

func (e *PersistError) Unwrap() []error {
	return []error{ErrPersistence, e.Err}
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// editorError maps a rejected editor operation to a service error. field names
// the request field the rejection is about.
func editorError(err error, field string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, editor.ErrChapterNotFound) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	var opErr *editor.OpError
	if errors.As(err, &opErr) {
		return &ValidationError{Field: field, Message: opErr.Error()}
	}
	return err
}
