// Package constants defines shared constants, engine enumerations, and
// configuration values used throughout the glview platform layer.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by the platform layer.
const (
	WindowWidthEnvVar  = "WINDOW_WIDTH"  // Overrides the window width in dev mode
	WindowHeightEnvVar = "WINDOW_HEIGHT" // Overrides the window height in dev mode
	ConfigPathEnvVar   = "GLVIEW_CONFIG" // Path to the TOML configuration file
	DebugEnvVar        = "GLVIEW_DEBUG"  // Enables debug level internal logging
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Custom events dispatched by the view when the window is resized, gains or loses focus.
const (
	EventWindowResized   = "glview_window_resized"
	EventWindowFocused   = "glview_window_focused"
	EventWindowUnfocused = "glview_window_unfocused"
)

// Default view geometry.
const (
	DefaultFrameWidth  float32 = 960
	DefaultFrameHeight float32 = 640
	DefaultViewName            = "GLVIEW"
	DefaultDevWidth    int32   = 1024
	DefaultDevHeight   int32   = 768
)

// AxisMax is the magnitude of a fully deflected SDL controller axis.
const AxisMax = 32767.0

// EvdevRetryDelay is the pause between failed reads of an auxiliary input device.
const EvdevRetryDelay = 100 * time.Millisecond

// RenderBackend selects the graphics API the window is created for.
type RenderBackend int

const (
	RenderBackendGL    RenderBackend = iota // Desktop OpenGL core profile
	RenderBackendGLES                       // OpenGL ES through the native ES driver
	RenderBackendMetal                      // Metal layer (macOS)
)

func (b RenderBackend) String() string {
	switch b {
	case RenderBackendGL:
		return "gl"
	case RenderBackendGLES:
		return "gles"
	case RenderBackendMetal:
		return "metal"
	default:
		return "unknown"
	}
}

// ParseRenderBackend maps a configuration string to a RenderBackend.
// Unknown values fall back to RenderBackendGL.
func ParseRenderBackend(s string) RenderBackend {
	switch s {
	case "gles", "es":
		return RenderBackendGLES
	case "metal":
		return RenderBackendMetal
	default:
		return RenderBackendGL
	}
}

// ResolutionPolicy decides how the design resolution is fitted into the frame.
type ResolutionPolicy int

const (
	ResolutionPolicyUnknown     ResolutionPolicy = iota
	ResolutionPolicyExactFit                     // Stretch both axes independently
	ResolutionPolicyNoBorder                     // Fill the frame, cropping one axis
	ResolutionPolicyShowAll                      // Fit inside the frame, letterboxing one axis
	ResolutionPolicyFixedHeight                  // Keep design height, widen design width to fill
	ResolutionPolicyFixedWidth                   // Keep design width, grow design height to fill
)

func (p ResolutionPolicy) String() string {
	switch p {
	case ResolutionPolicyExactFit:
		return "exact_fit"
	case ResolutionPolicyNoBorder:
		return "no_border"
	case ResolutionPolicyShowAll:
		return "show_all"
	case ResolutionPolicyFixedHeight:
		return "fixed_height"
	case ResolutionPolicyFixedWidth:
		return "fixed_width"
	default:
		return "unknown"
	}
}

// MouseButton identifies an engine mouse button.
type MouseButton int

const (
	MouseButtonUnset MouseButton = iota - 1
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
	MouseButton4
	MouseButton5
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	case MouseButton4:
		return "button4"
	case MouseButton5:
		return "button5"
	default:
		return "unset"
	}
}
