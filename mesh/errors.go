package mesh

import "errors"

// Startup failures; neither leaves a partially constructed simulation behind
var (
	// ErrSurfaceUnavailable reports that the host has no drawing surface
	ErrSurfaceUnavailable = errors.New("drawing surface unavailable")

	// ErrContextUnavailable reports that the host surface cannot be drawn on
	ErrContextUnavailable = errors.New("2D drawing context unavailable")
)
