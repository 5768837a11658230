package internal

import (
	"github.com/BrandonKowalski/glview/pkg/glview/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Added in SDL 2.0.6 and 2.0.14; go-sdl2 does not export them.
const (
	hintOpenGLESDriver        = "SDL_OPENGL_ES_DRIVER"
	windowMetal        uint32 = 0x20000000
)

// GLContextAttrs describes the framebuffer the graphics context is created with.
type GLContextAttrs struct {
	RedBits            int  `toml:"red_bits"`
	GreenBits          int  `toml:"green_bits"`
	BlueBits           int  `toml:"blue_bits"`
	AlphaBits          int  `toml:"alpha_bits"`
	DepthBits          int  `toml:"depth_bits"`
	StencilBits        int  `toml:"stencil_bits"`
	MultisamplingCount int  `toml:"multisampling_count"`
	VSync              bool `toml:"vsync"`
	GLESMajor          int  `toml:"gles_major"`
	GLESMinor          int  `toml:"gles_minor"`
}

// DefaultGLContextAttrs returns RGBA8 with a 24-bit depth buffer, an 8-bit
// stencil buffer, no multisampling, and vsync on.
func DefaultGLContextAttrs() GLContextAttrs {
	return GLContextAttrs{
		RedBits:     8,
		GreenBits:   8,
		BlueBits:    8,
		AlphaBits:   8,
		DepthBits:   24,
		StencilBits: 8,
		VSync:       true,
		GLESMajor:   2,
	}
}

type glAttribute struct {
	attr  sdl.GLattr
	value int
}

// contextProfile returns the profile attributes and hints for a backend.
// Metal has no GL profile; it only selects the metal render driver.
func contextProfile(backend constants.RenderBackend, attrs GLContextAttrs) (list []glAttribute, hints map[string]string) {
	switch backend {
	case constants.RenderBackendGLES:
		return []glAttribute{
			{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_ES},
			{sdl.GL_CONTEXT_MAJOR_VERSION, attrs.GLESMajor},
			{sdl.GL_CONTEXT_MINOR_VERSION, attrs.GLESMinor},
		}, map[string]string{hintOpenGLESDriver: "1"}
	case constants.RenderBackendMetal:
		return nil, map[string]string{sdl.HINT_RENDER_DRIVER: "metal"}
	default:
		return []glAttribute{
			{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
			{sdl.GL_CONTEXT_MAJOR_VERSION, 3},
			{sdl.GL_CONTEXT_MINOR_VERSION, 3},
		}, nil
	}
}

// framebufferAttributes returns the color/depth/stencil/multisample sizes.
func framebufferAttributes(attrs GLContextAttrs) []glAttribute {
	list := []glAttribute{
		{sdl.GL_RED_SIZE, attrs.RedBits},
		{sdl.GL_GREEN_SIZE, attrs.GreenBits},
		{sdl.GL_BLUE_SIZE, attrs.BlueBits},
		{sdl.GL_ALPHA_SIZE, attrs.AlphaBits},
		{sdl.GL_DEPTH_SIZE, attrs.DepthBits},
		{sdl.GL_STENCIL_SIZE, attrs.StencilBits},
		{sdl.GL_MULTISAMPLESAMPLES, attrs.MultisamplingCount},
	}
	if attrs.MultisamplingCount > 0 {
		list = append(list, glAttribute{sdl.GL_MULTISAMPLEBUFFERS, 1})
	}
	return list
}

// applyContextAttributes sets the hints and GL attributes that must be in
// place before the window is created. Failures are logged; SDL falls back to
// the closest supported configuration.
func applyContextAttributes(backend constants.RenderBackend, attrs GLContextAttrs) {
	profile, hints := contextProfile(backend, attrs)

	for name, value := range hints {
		if !sdl.SetHint(name, value) {
			GetInternalLogger().Warn("Failed to set SDL hint", "hint", name, "value", value)
		}
	}

	for _, a := range append(profile, framebufferAttributes(attrs)...) {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			GetInternalLogger().Warn("Failed to set GL attribute", "attribute", a.attr, "value", a.value, "error", err)
		}
	}
}

// windowFlagsForBackend returns the window flag that binds the window to
// the backend's graphics API.
func windowFlagsForBackend(backend constants.RenderBackend) uint32 {
	if backend == constants.RenderBackendMetal {
		return windowMetal
	}
	return sdl.WINDOW_OPENGL
}
