package sdf

import (
	"errors"
	"fmt"
)

// Sentinel errors for the sdf package.
var (
	// ErrInvalidOutline is returned when the outline passed to Generate
	// or GenerateInto fails validation: an empty outline, a contour
	// with fewer than two segments, a degenerate line or curve, or a
	// contour whose segments don't connect end-to-start.
	ErrInvalidOutline = errors.New("sdf: invalid outline")
)

// ScratchError reports misuse of a reused *Scratch, such as passing a
// negative size.
type ScratchError struct {
	Field  string
	Reason string
}

func (e *ScratchError) Error() string {
	return fmt.Sprintf("sdf: invalid %s: %s", e.Field, e.Reason)
}
