package models

import "errors"

// Error kinds shared by every store. Package-level sentinels wrap one of
// these so callers can branch on the kind with errors.Is.
var (
	// ErrNotFound indicates an operation referenced an id that is not stored
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates a request that cannot be applied at all
	ErrInvalidInput = errors.New("invalid input")
)
