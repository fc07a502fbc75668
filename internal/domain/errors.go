package domain

import "errors"

// Common domain errors, translated by the delivery layer into typed
// API errors.
var (
	ErrNotFound = errors.New("resource not found")
	// ErrDuplicate is returned when a storage uniqueness constraint is
	// violated, e.g. a second application for the same (candidate, job)
	// pair. The constraint lives in the database; check-then-act cannot
	// close the race.
	ErrDuplicate = errors.New("resource already exists")
)
