// Package internal contains the SDL-facing implementation of the glview
// platform layer: window and graphics context management, event
// translation, controller discovery, configuration, and logging.
// Types and functions in this package are not part of the public API.
package internal
