package boxed

import "errors"

var (
	// ErrReadOnly is returned when a write targets a container which is not
	// from package mutable.  Use Load or Mutable to get an editable root.
	ErrReadOnly = errors.New("read-only value")
)
