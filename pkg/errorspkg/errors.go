// Package errorspkg provides common app errors.
package errorspkg

import "errors"

var (
	// ErrInternal indicates internal server error.
	ErrInternal = errors.New("internal")
	// ErrUnavailable indicates that the store could not complete the operation in time.
	// The operation left no trace and is safe to retry with the same reference.
	ErrUnavailable = errors.New("store unavailable")
	// ErrConflict indicates contention with a concurrent write. Safe to retry.
	ErrConflict = errors.New("concurrent update conflict")
)
