// Package event defines the engine-side event types produced by the
// platform layer and a small dispatcher that delivers them to listeners.
package event

import "github.com/BrandonKowalski/glview/pkg/glview/constants"

// Kind identifies the family an Event belongs to.
type Kind int

const (
	KindKeyboard Kind = iota
	KindMouse
	KindTouch
	KindIME
	KindController
	KindApp
	KindDisplay
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindKeyboard:
		return "keyboard"
	case KindMouse:
		return "mouse"
	case KindTouch:
		return "touch"
	case KindIME:
		return "ime"
	case KindController:
		return "controller"
	case KindApp:
		return "app"
	case KindDisplay:
		return "display"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Event is implemented by every event the platform layer emits.
type Event interface {
	Kind() Kind
}

// Dispatcher receives translated events. The engine's event system
// implements it; Bus is the default implementation.
type Dispatcher interface {
	Dispatch(e Event)
}

// KeyboardEvent reports a key press or release.
type KeyboardEvent struct {
	Code    constants.KeyCode
	Pressed bool
}

func (KeyboardEvent) Kind() Kind { return KindKeyboard }

// MouseEventType distinguishes the mouse event variants.
type MouseEventType int

const (
	MouseDown MouseEventType = iota
	MouseUp
	MouseMove
	MouseScroll
)

func (t MouseEventType) String() string {
	switch t {
	case MouseDown:
		return "down"
	case MouseUp:
		return "up"
	case MouseMove:
		return "move"
	case MouseScroll:
		return "scroll"
	default:
		return "unknown"
	}
}

// MouseEvent carries a cursor position in view coordinates, origin at the
// bottom-left corner of the viewport.
type MouseEvent struct {
	Type    MouseEventType
	Button  constants.MouseButton
	X, Y    float32
	ScrollX float32
	ScrollY float32
}

func (MouseEvent) Kind() Kind { return KindMouse }

// TouchPhase is the stage of an emulated touch.
type TouchPhase int

const (
	TouchBegan TouchPhase = iota
	TouchMoved
	TouchEnded
)

// TouchEvent is a single-finger touch, emulated from the left mouse button
// on devices without a touch screen. X and Y are in design coordinates with
// the origin at the top-left corner.
type TouchEvent struct {
	Phase TouchPhase
	ID    int
	X, Y  float32
}

func (TouchEvent) Kind() Kind { return KindTouch }

// IMEKind distinguishes text-input events.
type IMEKind int

const (
	IMEInsertText IMEKind = iota
	IMEDeleteBackward
	IMEControlKey
)

// IMEEvent is delivered to whatever text field owns keyboard focus.
type IMEEvent struct {
	Type IMEKind
	Text string
	Key  constants.KeyCode
}

func (IMEEvent) Kind() Kind { return KindIME }

// KeyStatus is the last known state of a controller key.
type KeyStatus struct {
	IsPressed bool
	Value     float32
	IsAnalog  bool
}

// ControllerEventType distinguishes controller notifications.
type ControllerEventType int

const (
	ControllerConnected ControllerEventType = iota
	ControllerDisconnected
	ControllerKeyDown
	ControllerKeyUp
	ControllerKeyRepeat
	ControllerAxis
)

func (t ControllerEventType) String() string {
	switch t {
	case ControllerConnected:
		return "connected"
	case ControllerDisconnected:
		return "disconnected"
	case ControllerKeyDown:
		return "key_down"
	case ControllerKeyUp:
		return "key_up"
	case ControllerKeyRepeat:
		return "key_repeat"
	case ControllerAxis:
		return "axis"
	default:
		return "unknown"
	}
}

// ControllerEvent reports a gamepad connection change or input.
type ControllerEvent struct {
	Type       ControllerEventType
	DeviceID   int
	DeviceName string
	Key        constants.ControllerKey
	Status     KeyStatus
}

func (ControllerEvent) Kind() Kind { return KindController }

// AppEventType is an application lifecycle transition.
type AppEventType int

const (
	AppDidEnterBackground AppEventType = iota
	AppWillEnterForeground
	AppLowMemory
	AppTerminating
)

func (t AppEventType) String() string {
	switch t {
	case AppDidEnterBackground:
		return "did_enter_background"
	case AppWillEnterForeground:
		return "will_enter_foreground"
	case AppLowMemory:
		return "low_memory"
	case AppTerminating:
		return "terminating"
	default:
		return "unknown"
	}
}

// AppEvent notifies the application about lifecycle changes.
type AppEvent struct {
	Type AppEventType
}

func (AppEvent) Kind() Kind { return KindApp }

// DisplayEvent forwards a monitor notification. Type is the platform's
// display event id (orientation, connected, disconnected).
type DisplayEvent struct {
	Display uint32
	Type    uint8
}

func (DisplayEvent) Kind() Kind { return KindDisplay }

// CustomEvent is a named notification such as constants.EventWindowResized.
type CustomEvent struct {
	Name string
	Data any
}

func (CustomEvent) Kind() Kind { return KindCustom }
