package bareblog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested post or page does not exist.
var ErrNotFound = errors.New("bareblog: not found")

// ValidationError reports a user-correctable input problem. The operation
// that raised it has not written anything to storage.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Sentinel validation failures raised by SavePost and SavePage. Handlers
// surface Reason verbatim as flash feedback.
var (
	ErrTitleRequired = &ValidationError{Reason: "Title is required"}
	ErrSlugRequired  = &ValidationError{Reason: "Slug could not be generated"}
	ErrSlugTaken     = &ValidationError{Reason: "Slug already exists"}
)

// StorageError wraps an I/O or decoding failure on the backing file. It is
// not recovered locally; callers propagate it to the request or process
// boundary.
type StorageError struct {
	Op   string // "read", "write", "decode", "mkdir", "stat"
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("bareblog: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
