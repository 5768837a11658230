package internal

import (
	"fmt"
	"math"

	"github.com/BrandonKowalski/glview/pkg/glview/constants"
	"github.com/BrandonKowalski/glview/pkg/glview/event"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
)

const zoomEpsilon = 1.192092896e-07

// ViewOptions carries the collaborators and context settings shared by the
// view constructors.
type ViewOptions struct {
	Backend      constants.RenderBackend
	Context      GLContextAttrs
	Dispatcher   event.Dispatcher
	Controllers  *ControllerRegistry
	AuxKeys      AuxKeySource
	Retina       bool
	TouchDevice  bool // true disables mouse touch emulation
	DefaultIcons []string
}

// GLView owns the SDL window and its graphics context, and translates SDL
// events for the engine. All methods must be called from the goroutine that
// created the view.
type GLView struct {
	window    *sdl.Window
	glContext sdl.GLContext
	wmInfo    *sdl.SysWMInfo

	viewName     string
	backend      constants.RenderBackend
	attrs        GLContextAttrs
	dispatcher   event.Dispatcher
	controllers  *ControllerRegistry
	auxKeys      AuxKeySource
	icons        *IconCache
	defaultIcons []string

	frameZoomFactor   float32
	retinaFactor      int
	isRetinaEnabled   bool
	isInRetinaMonitor bool
	monitorIndex      int

	screenSize           Size
	designResolutionSize Size
	resolutionPolicy     constants.ResolutionPolicy
	viewPortRect         Rect
	scaleX, scaleY       float32
	defaultViewport      Viewport
	scissorRect          Viewport

	mouseX, mouseY float32
	captured       bool
	isTouchDevice  bool

	quit atomic.Bool
}

func newGLView(opts ViewOptions) *GLView {
	return &GLView{
		backend:         opts.Backend,
		attrs:           opts.Context,
		dispatcher:      opts.Dispatcher,
		controllers:     opts.Controllers,
		auxKeys:         opts.AuxKeys,
		icons:           NewIconCache(),
		defaultIcons:    opts.DefaultIcons,
		frameZoomFactor: 1,
		retinaFactor:    1,
		isRetinaEnabled: opts.Retina,
		monitorIndex:    -1,
		scaleX:          1,
		scaleY:          1,
		isTouchDevice:   opts.TouchDevice,
	}
}

// Create opens a 960x640 window at zoom 1.
func Create(name string, resizable bool, opts ViewOptions) (*GLView, error) {
	rect := NewRect(0, 0, constants.DefaultFrameWidth, constants.DefaultFrameHeight)
	return CreateWithRect(name, rect, 1, resizable, opts)
}

// CreateWithRect opens a window whose frame is rect.Size scaled by zoom.
func CreateWithRect(name string, rect Rect, zoom float32, resizable bool, opts ViewOptions) (*GLView, error) {
	if zoom <= 0 {
		return nil, ErrInvalidZoom
	}
	v := newGLView(opts)
	if err := v.initWithRect(name, rect, zoom, resizable, 0); err != nil {
		v.End()
		return nil, err
	}
	return v, nil
}

// CreateWithFullScreen opens a fullscreen window in the desktop mode of the
// first display.
func CreateWithFullScreen(name string, opts ViewOptions) (*GLView, error) {
	mode, err := sdl.GetDesktopDisplayMode(0)
	if err != nil {
		return nil, NewPlatformError("desktop_display_mode", err)
	}
	return CreateWithFullScreenMode(name, mode, 0, opts)
}

// CreateWithFullScreenMode opens a fullscreen window of the size of mode on
// the given monitor.
func CreateWithFullScreenMode(name string, mode sdl.DisplayMode, monitor int, opts ViewOptions) (*GLView, error) {
	if err := checkMonitor(monitor); err != nil {
		return nil, err
	}
	v := newGLView(opts)
	rect := NewRect(0, 0, float32(mode.W), float32(mode.H))
	if err := v.initWithRect(name, rect, 1, false, monitor); err != nil {
		v.End()
		return nil, err
	}
	v.monitorIndex = monitor
	return v, nil
}

func checkMonitor(monitor int) error {
	n, err := sdl.GetNumVideoDisplays()
	if err != nil {
		return NewPlatformError("num_video_displays", err)
	}
	if monitor < 0 || monitor >= n {
		return fmt.Errorf("%w: %d of %d", ErrInvalidMonitor, monitor, n)
	}
	return nil
}

func (v *GLView) initWithRect(name string, rect Rect, zoom float32, resizable bool, display int) error {
	v.viewName = name
	v.frameZoomFactor = zoom

	applyContextAttributes(v.backend, v.attrs)

	flags := ViewWindowOptions(resizable, v.backend).ToSDLFlags()
	neededW := int32(rect.Size.Width * zoom)
	neededH := int32(rect.Size.Height * zoom)
	pos := int32(sdl.WINDOWPOS_CENTERED_MASK) | int32(display)

	GetInternalLogger().Debug("Creating SDL window", "name", name, "width", neededW, "height", neededH,
		"backend", v.backend.String(), "resizable", resizable)

	window, err := sdl.CreateWindow(name, pos, pos, neededW, neededH, flags)
	if err != nil {
		return wrapSDLError("create_window", ErrWindowCreation, err)
	}
	v.window = window

	if v.backend != constants.RenderBackendMetal {
		ctx, err := window.GLCreateContext()
		if err != nil {
			return wrapSDLError("create_context", ErrContextCreation, err)
		}
		v.glContext = ctx
	}

	if info, err := window.GetWMInfo(); err != nil {
		GetInternalLogger().Warn("Failed to query window manager info", "error", err)
	} else {
		v.wmInfo = info
	}

	realW, realH := window.GetSize()
	frame := reconcileFrameSize(rect.Size, neededW, neededH, realW, realH, zoom)
	v.SetFrameSize(frame.Width, frame.Height)

	if v.glContext != nil {
		interval := 0
		if v.attrs.VSync {
			interval = 1
		}
		if err := sdl.GLSetSwapInterval(interval); err != nil {
			return NewPlatformError("swap_interval", err)
		}
	}

	if len(v.defaultIcons) > 0 {
		v.SetDefaultIcon()
	}

	return nil
}

// IsOpenGLReady reports whether the window and its context exist.
func (v *GLView) IsOpenGLReady() bool {
	if v.window == nil {
		return false
	}
	return v.backend == constants.RenderBackendMetal || v.glContext != nil
}

// End releases the context and the window. Calling it again is a no-op.
func (v *GLView) End() {
	if v.auxKeys != nil {
		v.auxKeys.Close()
		v.auxKeys = nil
	}
	if v.glContext != nil {
		sdl.GLDeleteContext(v.glContext)
		v.glContext = nil
	}
	if v.window != nil {
		if err := v.window.Destroy(); err != nil {
			GetInternalLogger().Warn("Failed to destroy window", "error", err)
		}
		v.window = nil
	}
	if v.icons != nil {
		v.icons.Destroy()
	}
}

func (v *GLView) SwapBuffers() {
	if v.window == nil || v.glContext == nil {
		return
	}
	v.window.GLSwap()
}

// WindowShouldClose reports whether a quit was requested.
func (v *GLView) WindowShouldClose() bool {
	return v.quit.Load()
}

// RequestClose marks the view as closing, as a QUIT event would.
func (v *GLView) RequestClose() {
	v.quit.Store(true)
}

func (v *GLView) Name() string {
	return v.viewName
}

func (v *GLView) Backend() constants.RenderBackend {
	return v.backend
}

// Window exposes the SDL window for callers that need native access.
func (v *GLView) Window() *sdl.Window {
	return v.window
}

// WMInfo returns the window manager information, or nil if it could not be
// queried.
func (v *GLView) WMInfo() *sdl.SysWMInfo {
	return v.wmInfo
}

func (v *GLView) FrameZoomFactor() float32 {
	return v.frameZoomFactor
}

// SetFrameZoomFactor scales the window relative to the frame size.
func (v *GLView) SetFrameZoomFactor(zoom float32) error {
	if zoom <= 0 {
		return ErrInvalidZoom
	}
	if math.Abs(float64(v.frameZoomFactor-zoom)) < zoomEpsilon {
		return nil
	}
	v.frameZoomFactor = zoom
	v.updateFrameSize()
	return nil
}

// IsFullscreen reports whether the view is bound to a monitor.
func (v *GLView) IsFullscreen() bool {
	return v.monitorIndex >= 0
}

func (v *GLView) MonitorIndex() int {
	return v.monitorIndex
}

// SetFullscreen switches to fullscreen on monitor. Width, height and
// refreshRate of -1 keep the desktop mode value. A negative monitor selects
// the first display.
func (v *GLView) SetFullscreen(monitor int, width, height, refreshRate int32) error {
	if v.window == nil {
		return ErrNotInitialized
	}
	if monitor < 0 {
		monitor = 0
	}
	if err := checkMonitor(monitor); err != nil {
		return err
	}

	mode, err := sdl.GetDesktopDisplayMode(monitor)
	if err != nil {
		return NewPlatformError("desktop_display_mode", err)
	}
	mode = applyModeOverrides(mode, width, height, refreshRate)

	if err := v.window.SetDisplayMode(&mode); err != nil {
		GetInternalLogger().Warn("Failed to set display mode", "monitor", monitor, "error", err)
	}

	if !v.IsFullscreen() || v.monitorIndex != monitor {
		pos := int32(sdl.WINDOWPOS_CENTERED_MASK) | int32(monitor)
		v.window.SetPosition(pos, pos)
		if err := v.window.SetFullscreen(sdl.WINDOW_FULLSCREEN); err != nil {
			return NewPlatformError("set_fullscreen", err)
		}
		v.monitorIndex = monitor
	}

	v.updateWindowSize()
	return nil
}

func applyModeOverrides(mode sdl.DisplayMode, width, height, refreshRate int32) sdl.DisplayMode {
	if width != -1 {
		mode.W = width
	}
	if height != -1 {
		mode.H = height
	}
	if refreshRate != -1 {
		mode.RefreshRate = refreshRate
	}
	return mode
}

// SetWindowed leaves fullscreen and resizes the frame to width x height,
// centered on the display the window is on.
func (v *GLView) SetWindowed(width, height float32) error {
	if v.window == nil {
		return ErrNotInitialized
	}
	if v.IsFullscreen() {
		if err := v.window.SetFullscreen(0); err != nil {
			return NewPlatformError("set_windowed", err)
		}
		v.monitorIndex = -1
	}

	v.SetFrameSize(width, height)

	if display, err := v.window.GetDisplayIndex(); err == nil {
		pos := int32(sdl.WINDOWPOS_CENTERED_MASK) | int32(display)
		v.window.SetPosition(pos, pos)
	} else {
		GetInternalLogger().Warn("Failed to query window display", "error", err)
	}

	v.updateWindowSize()
	return nil
}

// MonitorCount returns the number of connected displays.
func (v *GLView) MonitorCount() int {
	n, err := sdl.GetNumVideoDisplays()
	if err != nil {
		GetInternalLogger().Warn("Failed to count displays", "error", err)
		return 0
	}
	return n
}

// MonitorSize returns the current mode size of the display the window is
// on, or a zero size if it cannot be determined.
func (v *GLView) MonitorSize() Size {
	if v.window == nil {
		return Size{}
	}
	display, err := v.window.GetDisplayIndex()
	if err != nil {
		GetInternalLogger().Warn("Failed to query window display", "error", err)
		return Size{}
	}
	mode, err := sdl.GetCurrentDisplayMode(display)
	if err != nil {
		GetInternalLogger().Warn("Failed to query display mode", "display", display, "error", err)
		return Size{}
	}
	return Size{Width: float32(mode.W), Height: float32(mode.H)}
}

// EnableRetina toggles rendering at the full drawable resolution on high-DPI
// monitors.
func (v *GLView) EnableRetina(enabled bool) {
	v.isRetinaEnabled = enabled
	if enabled {
		v.retinaFactor = 1
	} else {
		v.retinaFactor = 2
	}
	if !v.isInRetinaMonitor {
		v.retinaFactor = 1
	}
	v.updateFrameSize()
}

func (v *GLView) IsRetinaEnabled() bool {
	return v.isRetinaEnabled
}

func (v *GLView) RetinaFactor() int {
	return v.retinaFactor
}

// IsRetinaDisplay reports whether the window is on a 2x monitor.
func (v *GLView) IsRetinaDisplay() bool {
	return v.isInRetinaMonitor
}

// updateFrameSize resizes the window to the frame size, accounting for
// zoom and the retina factor of the monitor.
func (v *GLView) updateFrameSize() {
	if v.screenSize.Width <= 0 || v.screenSize.Height <= 0 || v.window == nil {
		return
	}
	winW, winH := v.window.GetSize()
	drawW, drawH := v.window.GLGetDrawableSize()
	w, h := v.retinaWindowSize(winW, winH, drawW, drawH)
	if w != winW || h != winH {
		v.window.SetSize(w, h)
	}
}

// UpdateFrameSize re-applies the frame size to the window.
func (v *GLView) UpdateFrameSize() {
	v.updateFrameSize()
}

// updateWindowSize adopts the window's current size as the frame after a
// mode change and notifies listeners.
func (v *GLView) updateWindowSize() {
	if v.window == nil {
		return
	}
	w, h := v.window.GetSize()
	v.SetFrameSize(float32(w)/v.frameZoomFactor, float32(h)/v.frameZoomFactor)
	v.updateDesignResolutionSize()
	v.refreshViewport()
	v.dispatchCustom(constants.EventWindowResized, nil)
}

// SetCursorVisible shows or hides the system cursor over the window.
func (v *GLView) SetCursorVisible(visible bool) {
	if v.window == nil {
		return
	}
	toggle := sdl.DISABLE
	if visible {
		toggle = sdl.ENABLE
	}
	if _, err := sdl.ShowCursor(toggle); err != nil {
		GetInternalLogger().Warn("Failed to change cursor visibility", "visible", visible, "error", err)
	}
}

// SetIMEKeyboardState starts or stops SDL text input.
func (v *GLView) SetIMEKeyboardState(open bool) {
	if open {
		sdl.StartTextInput()
	} else {
		sdl.StopTextInput()
	}
}

func (v *GLView) dispatch(e event.Event) {
	if v.dispatcher != nil {
		v.dispatcher.Dispatch(e)
	}
}

func (v *GLView) dispatchCustom(name string, data any) {
	v.dispatch(event.CustomEvent{Name: name, Data: data})
}
