package internal

import (
	"github.com/BrandonKowalski/glview/pkg/glview/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// WindowOptions selects the SDL window flags a view is created with.
type WindowOptions struct {
	Resizable   bool                    // Allow window resizing (SDL_WINDOW_RESIZABLE)
	Fullscreen  bool                    // Exclusive fullscreen (SDL_WINDOW_FULLSCREEN)
	Borderless  bool                    // Remove window decorations (SDL_WINDOW_BORDERLESS)
	AlwaysOnTop bool                    // Window stays above others (SDL_WINDOW_ALWAYS_ON_TOP)
	Hidden      bool                    // Start hidden (omits SDL_WINDOW_SHOWN)
	LowDPI      bool                    // Omit SDL_WINDOW_ALLOW_HIGHDPI
	Backend     constants.RenderBackend // Graphics API the window is bound to
}

// ViewWindowOptions returns the options used by the view constructors: a
// resizable window, or an exclusive fullscreen one when not resizable.
func ViewWindowOptions(resizable bool, backend constants.RenderBackend) WindowOptions {
	return WindowOptions{
		Resizable:  resizable,
		Fullscreen: !resizable,
		Backend:    backend,
	}
}

func (wo WindowOptions) ToSDLFlags() uint32 {
	var flags uint32

	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}

	if !wo.LowDPI {
		flags |= sdl.WINDOW_ALLOW_HIGHDPI
	}

	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	} else if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}

	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}

	if wo.AlwaysOnTop {
		flags |= sdl.WINDOW_ALWAYS_ON_TOP
	}

	return flags | windowFlagsForBackend(wo.Backend)
}
