package internal

import (
	"bytes"

	"github.com/BrandonKowalski/glview/pkg/glview/constants"
	"github.com/BrandonKowalski/glview/pkg/glview/event"
	"github.com/veandco/go-sdl2/sdl"
)

// touchID is the id of the single touch emulated by the left mouse button.
const touchID = 0

// PollEvents drains the auxiliary key queue and the SDL event queue.
func (v *GLView) PollEvents() {
	if v.auxKeys != nil {
		v.auxKeys.Drain(v.onKey)
	}
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		v.HandleEvent(ev)
	}
}

// HandleEvent translates a single SDL event.
func (v *GLView) HandleEvent(ev sdl.Event) {
	if v.controllers != nil && v.controllers.HandleEvent(ev) {
		return
	}

	switch e := ev.(type) {
	case *sdl.QuitEvent:
		GetInternalLogger().Debug("Quit requested")
		v.quit.Store(true)
	case *sdl.WindowEvent:
		v.onWindowEvent(e.Event, e.Data1, e.Data2)
	case *sdl.DisplayEvent:
		v.dispatch(event.DisplayEvent{Display: e.Display, Type: e.Event})
	case *sdl.MouseButtonEvent:
		v.onMouseButton(e.Button, e.State == sdl.PRESSED, float32(e.X), float32(e.Y))
	case *sdl.MouseMotionEvent:
		v.onMouseMotion(float32(e.X), float32(e.Y), e.State)
	case *sdl.MouseWheelEvent:
		x, y := e.PreciseX, e.PreciseY
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			x, y = -x, -y
		}
		v.onMouseWheel(x, y)
	case *sdl.KeyboardEvent:
		v.onKey(TranslateKeycode(e.Keysym.Sym), e.Type == sdl.KEYDOWN)
	case *sdl.TextInputEvent:
		v.onTextInput(textInputString(e.Text[:]))
	case *sdl.RenderEvent:
		GetInternalLogger().Warn("Render event", "type", renderEventName(e.Type))
	default:
		if typ, ok := appEventType(ev.GetType()); ok {
			GetInternalLogger().Info("Application event", "type", typ.String())
			v.dispatch(event.AppEvent{Type: typ})
		}
	}
}

func appEventType(sdlType uint32) (event.AppEventType, bool) {
	switch sdlType {
	case sdl.APP_TERMINATING:
		return event.AppTerminating, true
	case sdl.APP_LOWMEMORY:
		return event.AppLowMemory, true
	case sdl.APP_WILLENTERBACKGROUND, sdl.APP_DIDENTERBACKGROUND:
		return event.AppDidEnterBackground, true
	case sdl.APP_WILLENTERFOREGROUND, sdl.APP_DIDENTERFOREGROUND:
		return event.AppWillEnterForeground, true
	}
	return 0, false
}

func renderEventName(sdlType uint32) string {
	switch sdlType {
	case sdl.RENDER_TARGETS_RESET:
		return "targets_reset"
	case sdl.RENDER_DEVICE_RESET:
		return "device_reset"
	}
	return "unknown"
}

func (v *GLView) onWindowEvent(kind uint8, data1, data2 int32) {
	switch kind {
	case sdl.WINDOWEVENT_MOVED:
		v.refreshViewport()
	case sdl.WINDOWEVENT_SIZE_CHANGED:
		v.onWindowSizeChanged(float32(data1), float32(data2))
	case sdl.WINDOWEVENT_HIDDEN, sdl.WINDOWEVENT_MINIMIZED:
		v.dispatch(event.AppEvent{Type: event.AppDidEnterBackground})
	case sdl.WINDOWEVENT_SHOWN, sdl.WINDOWEVENT_RESTORED:
		v.dispatch(event.AppEvent{Type: event.AppWillEnterForeground})
	case sdl.WINDOWEVENT_FOCUS_GAINED:
		v.dispatchCustom(constants.EventWindowFocused, nil)
	case sdl.WINDOWEVENT_FOCUS_LOST:
		v.dispatchCustom(constants.EventWindowUnfocused, nil)
	case sdl.WINDOWEVENT_MAXIMIZED:
		GetInternalLogger().Debug("Window maximized")
	}
}

// onWindowSizeChanged keeps the design resolution when the user resizes the
// window and recomputes the viewport for the new frame. width and height are
// in window coordinates, which include the zoom factor.
func (v *GLView) onWindowSizeChanged(width, height float32) {
	if width <= 0 || height <= 0 {
		return
	}
	width, height = width/v.frameZoomFactor, height/v.frameZoomFactor
	if v.resolutionPolicy != constants.ResolutionPolicyUnknown {
		design := v.designResolutionSize
		v.SetFrameSize(width, height)
		v.SetDesignResolutionSize(design.Width, design.Height, v.resolutionPolicy)
	} else {
		v.SetFrameSize(width, height)
		v.updateDesignResolutionSize()
	}
	v.refreshViewport()
	v.dispatchCustom(constants.EventWindowResized, nil)
}

func sdlMouseButton(button uint8) (constants.MouseButton, bool) {
	switch button {
	case sdl.BUTTON_LEFT:
		return constants.MouseButtonLeft, true
	case sdl.BUTTON_RIGHT:
		return constants.MouseButtonRight, true
	case sdl.BUTTON_MIDDLE:
		return constants.MouseButtonMiddle, true
	case sdl.BUTTON_X1:
		return constants.MouseButton4, true
	case sdl.BUTTON_X2:
		return constants.MouseButton5, true
	}
	return constants.MouseButtonUnset, false
}

// buttonFromState returns the lowest pressed button in an SDL button mask.
func buttonFromState(state uint32) constants.MouseButton {
	for _, b := range []uint8{sdl.BUTTON_LEFT, sdl.BUTTON_MIDDLE, sdl.BUTTON_RIGHT, sdl.BUTTON_X1, sdl.BUTTON_X2} {
		if state&(1<<(uint32(b)-1)) != 0 {
			mb, _ := sdlMouseButton(b)
			return mb
		}
	}
	return constants.MouseButtonUnset
}

func (v *GLView) scaledCursor(x, y float32) (float32, float32) {
	if v.isInRetinaMonitor && v.retinaFactor == 1 {
		return x * 2, y * 2
	}
	return x, y
}

func (v *GLView) onMouseButton(button uint8, pressed bool, x, y float32) {
	v.mouseX, v.mouseY = v.scaledCursor(x, y)

	if button == sdl.BUTTON_LEFT && !v.isTouchDevice {
		if pressed {
			v.beginTouch()
		} else if v.captured {
			v.endTouch()
		}
	}

	mb, ok := sdlMouseButton(button)
	if !ok {
		return
	}
	cx, cy := v.cursorToView(v.mouseX, v.mouseY)
	typ := event.MouseUp
	if pressed {
		typ = event.MouseDown
	}
	v.dispatch(event.MouseEvent{Type: typ, Button: mb, X: cx, Y: cy})
}

func (v *GLView) beginTouch() {
	pt := Vec2{X: v.mouseX, Y: v.mouseY}
	if !v.viewPortRect.IsZero() && !v.viewPortRect.ContainsPoint(pt) {
		return
	}
	v.captured = true
	tx, ty := v.touchToView(v.mouseX, v.mouseY)
	v.dispatch(event.TouchEvent{Phase: event.TouchBegan, ID: touchID, X: tx, Y: ty})
}

func (v *GLView) endTouch() {
	v.captured = false
	tx, ty := v.touchToView(v.mouseX, v.mouseY)
	v.dispatch(event.TouchEvent{Phase: event.TouchEnded, ID: touchID, X: tx, Y: ty})
}

func (v *GLView) onMouseMotion(x, y float32, state uint32) {
	v.mouseX, v.mouseY = v.scaledCursor(x, y)

	if v.captured && !v.isTouchDevice {
		tx, ty := v.touchToView(v.mouseX, v.mouseY)
		v.dispatch(event.TouchEvent{Phase: event.TouchMoved, ID: touchID, X: tx, Y: ty})
	}

	cx, cy := v.cursorToView(v.mouseX, v.mouseY)
	v.dispatch(event.MouseEvent{Type: event.MouseMove, Button: buttonFromState(state), X: cx, Y: cy})
}

func (v *GLView) onMouseWheel(x, y float32) {
	cx, cy := v.cursorToView(v.mouseX, v.mouseY)
	v.dispatch(event.MouseEvent{Type: event.MouseScroll, Button: constants.MouseButtonUnset, X: cx, Y: cy, ScrollX: x, ScrollY: -y})
}

// onKey forwards a key transition and, on key down, the matching IME action.
func (v *GLView) onKey(code constants.KeyCode, pressed bool) {
	v.dispatch(event.KeyboardEvent{Code: code, Pressed: pressed})
	if !pressed {
		return
	}
	switch {
	case code == constants.KeyBackspace:
		v.dispatch(event.IMEEvent{Type: event.IMEDeleteBackward})
	case isIMEControlKey(code):
		v.dispatch(event.IMEEvent{Type: event.IMEControlKey, Key: code})
	}
}

func (v *GLView) onTextInput(text string) {
	if text == "" {
		return
	}
	v.dispatch(event.IMEEvent{Type: event.IMEInsertText, Text: text})
}

// textInputString returns the NUL-terminated UTF-8 text of a text input event.
func textInputString(raw []byte) string {
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	return string(raw)
}
