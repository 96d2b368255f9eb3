// Package errors defines all exported error sentinels for the minqueue library.
//
// This is the single source of truth for error values. The top-level
// minqueue package and the command import from here, so errors.Is checks
// work across package boundaries.
package errors

import "errors"

// Construction errors
var (
	ErrZeroWidth            = errors.New("minqueue: window width must be positive")
	ErrWidthTooLarge        = errors.New("minqueue: window width exceeds maximum (2^30)")
	ErrUnsupportedAlgorithm = errors.New("minqueue: hash algorithm does not support this element kind")
	ErrUnknownAlgorithm     = errors.New("minqueue: unknown hash algorithm")
)

// Query errors
var (
	ErrEmptyQueue = errors.New("minqueue: queue is empty")
)

// Winnowing errors
var (
	ErrInvalidGramSize = errors.New("minqueue: k-gram size must be positive")
	ErrNotRegularFile  = errors.New("minqueue: input is not a regular file")
)
