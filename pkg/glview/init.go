// Package glview binds SDL2 to a game engine's window, input and rendering
// context abstractions.
//
// It creates the native window and its OpenGL (or GLES, or Metal) context,
// keeps frame, zoom, retina and design resolution state, and translates
// SDL keyboard, mouse, text input, window, application and game controller
// events into engine events handed to a Dispatcher.
package glview

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/glview/pkg/glview/constants"
	"github.com/BrandonKowalski/glview/pkg/glview/event"
	"github.com/BrandonKowalski/glview/pkg/glview/internal"
)

// Options configures glview initialization.
type Options struct {
	ConfigPath string           // TOML configuration file; GLVIEW_CONFIG is used when empty
	Config     *Config          // Used instead of reading a file when set
	LogPath    string           // Full path for log file including filename (creates parent directories)
	Dispatcher event.Dispatcher // Receives translated events; a new event.Bus when nil
}

// Config is the decoded configuration file.
type Config = internal.Config

// View is the window and graphics context created by Init.
type View = internal.GLView

// Controller is a connected game controller.
type Controller = internal.Controller

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return internal.DefaultConfig()
}

// LoadConfig reads a TOML configuration file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	return internal.LoadConfig(path)
}

// Init initializes SDL, opens the view and starts controller discovery as
// configured. Must be called from the main goroutine before any other glview
// function.
func Init(options Options) error {
	cfg, err := resolveConfig(options)
	if err != nil {
		return err
	}

	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	} else if cfg.Log.Path != "" {
		internal.SetLogPath(cfg.Log.Path)
	}

	internal.SetRawLogLevel(cfg.Log.Level)
	if os.Getenv(constants.DebugEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(internal.ParseLogLevel(cfg.Log.InternalLevel))
	}

	cfg.ApplyDevOverrides()

	if err := internal.Init(cfg, options.Dispatcher); err != nil {
		internal.GetInternalLogger().Error("Failed to initialize view", "error", err)
		return err
	}
	return nil
}

func resolveConfig(options Options) (Config, error) {
	if options.Config != nil {
		return *options.Config, nil
	}
	path := options.ConfigPath
	if path == "" {
		path = os.Getenv(constants.ConfigPathEnvVar)
	}
	if path == "" {
		return internal.DefaultConfig(), nil
	}
	return internal.LoadConfig(path)
}

// Close releases the view, the controllers and SDL.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
}

// GetView returns the view created by Init, or nil before Init.
func GetView() *View {
	return internal.GetView()
}

// Dispatcher returns the dispatcher events are delivered to.
func Dispatcher() event.Dispatcher {
	return internal.GetDispatcher()
}

// Controllers returns the connected game controllers in attach order.
func Controllers() []*Controller {
	if r := internal.GetControllers(); r != nil {
		return r.All()
	}
	return nil
}

// StartControllerDiscovery enables controller events and registers the
// controllers already attached.
func StartControllerDiscovery() {
	if r := internal.GetControllers(); r != nil {
		r.StartDiscovery()
	}
}

// StopControllerDiscovery disconnects every controller and disables
// controller events.
func StopControllerDiscovery() {
	if r := internal.GetControllers(); r != nil {
		r.StopDiscovery()
	}
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
