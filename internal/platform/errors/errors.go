package apperrors

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	// ErrCatalogUnavailable marks a backing data file that does not exist.
	// Callers report it and abort the current operation.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)
