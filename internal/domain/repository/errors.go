package repository

import "errors"

var (
	// ErrNotFound is returned when no record matches the lookup.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a write loses to a unique
	// constraint (email, SKU, storage key). Pre-checks catch most
	// duplicates; this is the backstop for races lost at commit time.
	ErrDuplicate = errors.New("duplicate key")
)
