package structural

import "errors"

// Package-level error definitions for deep-structure operations.
var (
	// ErrCycleDetected indicates that a structure references itself,
	// directly or through intermediate containers.
	ErrCycleDetected = errors.New("cycle detected in nested structure")

	// ErrNotCloneable indicates that a value falls outside the supported
	// domain of primitives, []any sequences and map[string]any mappings.
	ErrNotCloneable = errors.New("value is not cloneable")

	// ErrNilMapping is returned when an operation requires a non-nil mapping.
	ErrNilMapping = errors.New("nil mapping")

	// ErrEmptyPath is returned when an empty path is passed to Set.
	ErrEmptyPath = errors.New("empty path")
)
