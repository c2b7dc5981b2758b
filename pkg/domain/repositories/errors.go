package repositories

import "errors"

// ErrNotFound is returned when a lookup id has no corresponding record.
// Callers branch on it with errors.Is.
var ErrNotFound = errors.New("repositories: entity not found")
