package internal

import (
	"fmt"

	"github.com/BrandonKowalski/glview/pkg/glview/constants"
	"github.com/BrandonKowalski/glview/pkg/glview/event"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

const sdlSubsystems = sdl.INIT_VIDEO | sdl.INIT_JOYSTICK | sdl.INIT_GAMECONTROLLER

var (
	view        *GLView
	controllers *ControllerRegistry
	dispatcher  event.Dispatcher
)

// Replaced in tests to run Init without a display.
var (
	initSubsystems = initSDL
	createView     = createConfiguredView
	shutdownSDL    = quitSDL
)

// Init brings up SDL, the controller registry and the view described by cfg.
// Events are handed to d; a nil d selects a new event.Bus. Package state is
// only published once every step has succeeded.
func Init(cfg Config, d event.Dispatcher) error {
	if view != nil {
		return nil
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if d == nil {
		d = event.NewBus()
	}

	mapping, err := NewControllerMapping(cfg.Controller.Buttons)
	if err != nil {
		return fmt.Errorf("controller.buttons: %w", err)
	}

	if err := initSubsystems(); err != nil {
		return err
	}

	registry := NewControllerRegistry(nil, d)
	registry.SetMapping(mapping)
	if cfg.Controller.MappingFile != "" {
		if err := registry.LoadMappingDatabase(cfg.Controller.MappingFile); err != nil {
			GetInternalLogger().Warn("Failed to load controller mapping database", "error", err)
		}
	}

	aux, err := OpenEvdevKeySource(cfg.Input.EvdevDevices)
	if err != nil {
		GetInternalLogger().Warn("Auxiliary input devices unavailable", "error", err)
	}

	backend := constants.ParseRenderBackend(cfg.View.Backend)
	if backend.String() != cfg.View.Backend {
		GetInternalLogger().Debug("Render backend resolved", "configured", cfg.View.Backend, "backend", backend.String())
	}

	opts := ViewOptions{
		Backend:      backend,
		Context:      cfg.Context,
		Dispatcher:   d,
		Controllers:  registry,
		AuxKeys:      aux,
		Retina:       cfg.View.Retina,
		TouchDevice:  !cfg.View.TouchEmulated,
		DefaultIcons: cfg.View.Icons,
	}

	v, err := createView(cfg.View, opts)
	if err != nil {
		if aux != nil {
			aux.Close()
		}
		shutdownSDL()
		return err
	}

	view, controllers, dispatcher = v, registry, d

	if cfg.View.DesignWidth > 0 && cfg.View.DesignHeight > 0 {
		view.SetDesignResolutionSize(cfg.View.DesignWidth, cfg.View.DesignHeight, cfg.View.ResolutionPolicy())
	}
	view.refreshViewport()
	if cfg.View.HideCursor {
		view.SetCursorVisible(false)
	}
	if cfg.Controller.Discover {
		controllers.StartDiscovery()
	}

	return nil
}

func initSDL() error {
	if err := sdl.InitSubSystem(sdlSubsystems); err != nil {
		return NewPlatformError("init_sdl", err)
	}
	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		GetInternalLogger().Warn("Failed to initialize SDL_image; raster icons disabled", "error", err)
	}
	return nil
}

func createConfiguredView(vc ViewConfig, opts ViewOptions) (*GLView, error) {
	if vc.Fullscreen {
		mode, err := sdl.GetDesktopDisplayMode(vc.Monitor)
		if err != nil {
			return nil, NewPlatformError("desktop_display_mode", err)
		}
		return CreateWithFullScreenMode(vc.Name, mode, vc.Monitor, opts)
	}
	rect := NewRect(0, 0, vc.Width, vc.Height)
	return CreateWithRect(vc.Name, rect, vc.Zoom, vc.Resizable, opts)
}

// GetView returns the view created by Init, or nil.
func GetView() *GLView {
	return view
}

// GetControllers returns the controller registry created by Init, or nil.
func GetControllers() *ControllerRegistry {
	return controllers
}

// GetDispatcher returns the dispatcher events are delivered to.
func GetDispatcher() event.Dispatcher {
	return dispatcher
}

func quitSDL() {
	img.Quit()
	sdl.QuitSubSystem(sdlSubsystems)
	sdl.Quit()
}

// SDLCleanup tears down everything Init created.
func SDLCleanup() {
	if controllers != nil {
		controllers.StopDiscovery()
		controllers = nil
	}
	if view != nil {
		view.End()
		view = nil
	}
	shutdownSDL()
	dispatcher = nil
	CloseLogger()
}
