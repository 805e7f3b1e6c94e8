package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist in the store.
var ErrNotFound = errors.New("not found")

// ErrNotConfigured is returned by write operations while the backend runs in
// mock mode. It is distinct from remote failures, which are passed through
// unclassified.
var ErrNotConfigured = errors.New("backend not configured")
