package repositories

import "errors"

// Sentinel errors returned by repository implementations. Callers match
// them with errors.Is; implementations wrap them with context via fmt.Errorf.
var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a uniqueness constraint.
	ErrDuplicate = errors.New("duplicate record")
)
