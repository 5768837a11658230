package internal

import (
	"fmt"

	"github.com/BrandonKowalski/glview/pkg/glview/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Buttons added in SDL 2.0.14. go-sdl2 stops its enum at DPAD_RIGHT.
const (
	controllerButtonMisc1 sdl.GameControllerButton = iota + 15
	controllerButtonPaddle1
	controllerButtonPaddle2
	controllerButtonPaddle3
	controllerButtonPaddle4
	controllerButtonTouchpad
)

// sdlButtonMap translates SDL game controller buttons to engine keys.
// Buttons the engine has no key for map to ControllerKeyNone.
var sdlButtonMap = map[sdl.GameControllerButton]constants.ControllerKey{
	sdl.CONTROLLER_BUTTON_INVALID:       constants.ControllerKeyNone,
	sdl.CONTROLLER_BUTTON_A:             constants.ControllerButtonA,
	sdl.CONTROLLER_BUTTON_B:             constants.ControllerButtonB,
	sdl.CONTROLLER_BUTTON_X:             constants.ControllerButtonX,
	sdl.CONTROLLER_BUTTON_Y:             constants.ControllerButtonY,
	sdl.CONTROLLER_BUTTON_BACK:          constants.ControllerButtonSelect,
	sdl.CONTROLLER_BUTTON_GUIDE:         constants.ControllerButtonPause,
	sdl.CONTROLLER_BUTTON_START:         constants.ControllerButtonStart,
	sdl.CONTROLLER_BUTTON_LEFTSTICK:     constants.ControllerButtonLeftThumbstick,
	sdl.CONTROLLER_BUTTON_RIGHTSTICK:    constants.ControllerButtonRightThumbstick,
	sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  constants.ControllerButtonLeftShoulder,
	sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: constants.ControllerButtonRightShoulder,
	sdl.CONTROLLER_BUTTON_DPAD_UP:       constants.ControllerButtonDpadUp,
	sdl.CONTROLLER_BUTTON_DPAD_DOWN:     constants.ControllerButtonDpadDown,
	sdl.CONTROLLER_BUTTON_DPAD_LEFT:     constants.ControllerButtonDpadLeft,
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    constants.ControllerButtonDpadRight,
	controllerButtonMisc1:               constants.ControllerKeyNone,
	controllerButtonPaddle1:             constants.ControllerKeyNone,
	controllerButtonPaddle2:             constants.ControllerKeyNone,
	controllerButtonPaddle3:             constants.ControllerKeyNone,
	controllerButtonPaddle4:             constants.ControllerKeyNone,
	controllerButtonTouchpad:            constants.ControllerKeyNone,
}

// sdlAxisMap translates SDL game controller axes to engine keys.
var sdlAxisMap = map[sdl.GameControllerAxis]constants.ControllerKey{
	sdl.CONTROLLER_AXIS_INVALID:      constants.ControllerKeyNone,
	sdl.CONTROLLER_AXIS_LEFTX:        constants.ControllerJoystickLeftX,
	sdl.CONTROLLER_AXIS_LEFTY:        constants.ControllerJoystickLeftY,
	sdl.CONTROLLER_AXIS_RIGHTX:       constants.ControllerJoystickRightX,
	sdl.CONTROLLER_AXIS_RIGHTY:       constants.ControllerJoystickRightY,
	sdl.CONTROLLER_AXIS_TRIGGERLEFT:  constants.ControllerAxisLeftTrigger,
	sdl.CONTROLLER_AXIS_TRIGGERRIGHT: constants.ControllerAxisRightTrigger,
}

// sdlButtonNames are the names used for button overrides in configuration files.
var sdlButtonNames = map[string]sdl.GameControllerButton{
	"a":             sdl.CONTROLLER_BUTTON_A,
	"b":             sdl.CONTROLLER_BUTTON_B,
	"x":             sdl.CONTROLLER_BUTTON_X,
	"y":             sdl.CONTROLLER_BUTTON_Y,
	"back":          sdl.CONTROLLER_BUTTON_BACK,
	"guide":         sdl.CONTROLLER_BUTTON_GUIDE,
	"start":         sdl.CONTROLLER_BUTTON_START,
	"leftstick":     sdl.CONTROLLER_BUTTON_LEFTSTICK,
	"rightstick":    sdl.CONTROLLER_BUTTON_RIGHTSTICK,
	"leftshoulder":  sdl.CONTROLLER_BUTTON_LEFTSHOULDER,
	"rightshoulder": sdl.CONTROLLER_BUTTON_RIGHTSHOULDER,
	"dpup":          sdl.CONTROLLER_BUTTON_DPAD_UP,
	"dpdown":        sdl.CONTROLLER_BUTTON_DPAD_DOWN,
	"dpleft":        sdl.CONTROLLER_BUTTON_DPAD_LEFT,
	"dpright":       sdl.CONTROLLER_BUTTON_DPAD_RIGHT,
	"misc1":         controllerButtonMisc1,
	"paddle1":       controllerButtonPaddle1,
	"paddle2":       controllerButtonPaddle2,
	"paddle3":       controllerButtonPaddle3,
	"paddle4":       controllerButtonPaddle4,
	"touchpad":      controllerButtonTouchpad,
}

// TranslateButton returns the engine key for an SDL controller button.
func TranslateButton(button sdl.GameControllerButton) constants.ControllerKey {
	return sdlButtonMap[button]
}

// TranslateAxis returns the engine key for an SDL controller axis.
func TranslateAxis(axis sdl.GameControllerAxis) constants.ControllerKey {
	return sdlAxisMap[axis]
}

// NormalizeAxis converts a raw axis reading to the [-1, 1] range.
func NormalizeAxis(raw int16) float32 {
	v := float32(raw) / constants.AxisMax
	if v < -1 {
		v = -1
	}
	return v
}

// ControllerMapping layers per-button overrides on top of the static tables.
// The zero value uses the static tables unchanged.
type ControllerMapping struct {
	buttons map[sdl.GameControllerButton]constants.ControllerKey
}

// NewControllerMapping builds a mapping from configuration overrides keyed by
// SDL button name (see sdlButtonNames) with engine key names as values.
func NewControllerMapping(overrides map[string]string) (ControllerMapping, error) {
	m := ControllerMapping{}
	if len(overrides) == 0 {
		return m, nil
	}

	m.buttons = make(map[sdl.GameControllerButton]constants.ControllerKey, len(overrides))
	for buttonName, keyName := range overrides {
		button, ok := sdlButtonNames[buttonName]
		if !ok {
			return ControllerMapping{}, fmt.Errorf("unknown controller button %q", buttonName)
		}
		key, ok := constants.ParseControllerKey(keyName)
		if !ok || key.IsAxis() {
			return ControllerMapping{}, fmt.Errorf("invalid engine key %q for button %q", keyName, buttonName)
		}
		m.buttons[button] = key
	}
	return m, nil
}

// Button translates a button, honouring overrides.
func (m ControllerMapping) Button(button sdl.GameControllerButton) constants.ControllerKey {
	if key, ok := m.buttons[button]; ok {
		return key
	}
	return TranslateButton(button)
}

// Axis translates an axis. Axes cannot be overridden.
func (m ControllerMapping) Axis(axis sdl.GameControllerAxis) constants.ControllerKey {
	return TranslateAxis(axis)
}
