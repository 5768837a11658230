package internal

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMonitor  = errors.New("monitor index out of range")
	ErrWindowCreation  = errors.New("window creation failed")
	ErrContextCreation = errors.New("graphics context creation failed")
	ErrNotInitialized  = errors.New("view not initialized")
	ErrInvalidZoom     = errors.New("frame zoom factor must be larger than 0")
)

// PlatformError is a failure reported by SDL or the windowing system.
type PlatformError struct {
	Op  string // Operation that failed (e.g., "create_window", "set_fullscreen")
	Err error  // Underlying error
}

func (e *PlatformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("glview: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("glview: %s", e.Op)
}

func (e *PlatformError) Unwrap() error {
	return e.Err
}

func NewPlatformError(op string, err error) *PlatformError {
	return &PlatformError{Op: op, Err: err}
}

// wrapSDLError joins a sentinel with the SDL error text so both errors.Is
// and the log show something useful.
func wrapSDLError(op string, sentinel, cause error) *PlatformError {
	return NewPlatformError(op, fmt.Errorf("%w: %v", sentinel, cause))
}
