package glview

import (
	"errors"

	"github.com/BrandonKowalski/glview/pkg/glview/internal"
)

// Sentinel errors returned by view creation and mode changes.
var (
	// ErrInvalidMonitor indicates a monitor index outside the connected displays.
	ErrInvalidMonitor = internal.ErrInvalidMonitor

	// ErrWindowCreation indicates SDL could not create the native window.
	ErrWindowCreation = internal.ErrWindowCreation

	// ErrContextCreation indicates SDL could not create the graphics context.
	ErrContextCreation = internal.ErrContextCreation

	// ErrNotInitialized indicates an operation on a view that was never
	// created or has already ended.
	ErrNotInitialized = internal.ErrNotInitialized

	ErrInvalidZoom = internal.ErrInvalidZoom
)

// PlatformError represents a failure in SDL or the windowing system (window
// creation failed, no display mode, context could not be made current).
// These errors are typically fatal for the view that reported them.
type PlatformError = internal.PlatformError

// NewPlatformError creates a new platform error.
func NewPlatformError(op string, err error) *PlatformError {
	return internal.NewPlatformError(op, err)
}

// IsPlatformError checks if an error is a platform error.
func IsPlatformError(err error) bool {
	var platformErr *PlatformError
	return errors.As(err, &platformErr)
}
