package catalog

import "errors"

var (
	// ErrRemoteUnavailable marks a failed remote listing.
	ErrRemoteUnavailable = errors.New("remote listing unavailable")
	// ErrLayout marks a local path that does not fit its path schema.
	ErrLayout = errors.New("unexpected directory layout")
	// ErrLocked is returned when another build holds the artifact lock.
	ErrLocked = errors.New("catalog build already running")
	// ErrInvalidEntry marks an entry with an empty field.
	ErrInvalidEntry = errors.New("invalid catalog entry")
)
