// Package apperr defines the error taxonomy shared by the data-access
// layer: validation, not-found and storage failures are distinct and
// are never silently swallowed.
package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound marks a lookup that matched no row. It is distinct from
// a storage failure so callers can render a 404 instead of a 500.
var ErrNotFound = errors.New("record not found")

// ValidationError reports malformed form input, keyed by field name.
// Nothing is written to storage when one is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}

// Validation builds a single-field validation error.
func Validation(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// StorageError wraps a database failure with the operation that hit it.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Storage wraps err unless it is already part of the taxonomy.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	var ve *ValidationError
	if errors.Is(err, ErrNotFound) || errors.As(err, &ve) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}

// IsNotFound reports whether err is a not-found outcome.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
