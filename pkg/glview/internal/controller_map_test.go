package internal

import (
	"testing"

	"github.com/BrandonKowalski/glview/pkg/glview/constants"
	"github.com/veandco/go-sdl2/sdl"
)

func TestTranslateButton(t *testing.T) {
	tests := []struct {
		button sdl.GameControllerButton
		want   constants.ControllerKey
	}{
		{sdl.CONTROLLER_BUTTON_A, constants.ControllerButtonA},
		{sdl.CONTROLLER_BUTTON_Y, constants.ControllerButtonY},
		{sdl.CONTROLLER_BUTTON_BACK, constants.ControllerButtonSelect},
		{sdl.CONTROLLER_BUTTON_GUIDE, constants.ControllerButtonPause},
		{sdl.CONTROLLER_BUTTON_START, constants.ControllerButtonStart},
		{sdl.CONTROLLER_BUTTON_LEFTSTICK, constants.ControllerButtonLeftThumbstick},
		{sdl.CONTROLLER_BUTTON_RIGHTSHOULDER, constants.ControllerButtonRightShoulder},
		{sdl.CONTROLLER_BUTTON_DPAD_LEFT, constants.ControllerButtonDpadLeft},
		{controllerButtonMisc1, constants.ControllerKeyNone},
		{controllerButtonPaddle4, constants.ControllerKeyNone},
		{controllerButtonTouchpad, constants.ControllerKeyNone},
		{sdl.CONTROLLER_BUTTON_INVALID, constants.ControllerKeyNone},
		{sdl.GameControllerButton(200), constants.ControllerKeyNone},
	}

	for _, tt := range tests {
		if got := TranslateButton(tt.button); got != tt.want {
			t.Fatalf("TranslateButton(%d) = %v, want %v", tt.button, got, tt.want)
		}
	}
}

func TestTranslateAxis(t *testing.T) {
	tests := []struct {
		axis sdl.GameControllerAxis
		want constants.ControllerKey
	}{
		{sdl.CONTROLLER_AXIS_LEFTX, constants.ControllerJoystickLeftX},
		{sdl.CONTROLLER_AXIS_LEFTY, constants.ControllerJoystickLeftY},
		{sdl.CONTROLLER_AXIS_RIGHTX, constants.ControllerJoystickRightX},
		{sdl.CONTROLLER_AXIS_RIGHTY, constants.ControllerJoystickRightY},
		{sdl.CONTROLLER_AXIS_TRIGGERLEFT, constants.ControllerAxisLeftTrigger},
		{sdl.CONTROLLER_AXIS_TRIGGERRIGHT, constants.ControllerAxisRightTrigger},
		{sdl.CONTROLLER_AXIS_INVALID, constants.ControllerKeyNone},
	}

	for _, tt := range tests {
		if got := TranslateAxis(tt.axis); got != tt.want {
			t.Fatalf("TranslateAxis(%d) = %v, want %v", tt.axis, got, tt.want)
		}
	}
}

func TestMappedAxesAreAxes(t *testing.T) {
	for axis, key := range sdlAxisMap {
		if key != constants.ControllerKeyNone && !key.IsAxis() {
			t.Fatalf("axis %d maps to non-axis key %v", axis, key)
		}
	}
	for button, key := range sdlButtonMap {
		if key.IsAxis() {
			t.Fatalf("button %d maps to axis key %v", button, key)
		}
	}
}

func TestEveryButtonNameIsMapped(t *testing.T) {
	for name, button := range sdlButtonNames {
		if _, ok := sdlButtonMap[button]; !ok {
			t.Fatalf("button %q has no entry in the button table", name)
		}
	}
}

func TestNormalizeAxis(t *testing.T) {
	tests := []struct {
		raw  int16
		want float32
	}{
		{0, 0},
		{32767, 1},
		{-32767, -1},
		{-32768, -1},
	}
	for _, tt := range tests {
		if got := NormalizeAxis(tt.raw); got != tt.want {
			t.Fatalf("NormalizeAxis(%d) = %v, want %v", tt.raw, got, tt.want)
		}
	}

	if got := NormalizeAxis(16384); got <= 0.49 || got >= 0.51 {
		t.Fatalf("NormalizeAxis(16384) = %v, want about 0.5", got)
	}
}

func TestControllerMappingOverrides(t *testing.T) {
	m, err := NewControllerMapping(map[string]string{
		"a": "button_b",
		"b": "button_a",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := m.Button(sdl.CONTROLLER_BUTTON_A); got != constants.ControllerButtonB {
		t.Fatalf("expected A to be swapped to button_b, got %v", got)
	}
	if got := m.Button(sdl.CONTROLLER_BUTTON_START); got != constants.ControllerButtonStart {
		t.Fatalf("unmapped buttons must use the static table, got %v", got)
	}
	if got := TranslateButton(sdl.CONTROLLER_BUTTON_A); got != constants.ControllerButtonA {
		t.Fatalf("overrides must not change the static table, got %v", got)
	}
	if got := m.Axis(sdl.CONTROLLER_AXIS_LEFTX); got != constants.ControllerJoystickLeftX {
		t.Fatalf("axis translation changed: %v", got)
	}
}

func TestControllerMappingZeroValue(t *testing.T) {
	var m ControllerMapping
	if got := m.Button(sdl.CONTROLLER_BUTTON_GUIDE); got != constants.ControllerButtonPause {
		t.Fatalf("zero mapping should use the static table, got %v", got)
	}
}

func TestControllerMappingRejectsInvalidEntries(t *testing.T) {
	tests := []map[string]string{
		{"turbo": "button_a"},
		{"a": "button_q"},
		{"a": "joystick_left_x"},
	}
	for _, overrides := range tests {
		if _, err := NewControllerMapping(overrides); err == nil {
			t.Fatalf("expected error for %v", overrides)
		}
	}
}

func TestExtendedButtonValuesMatchSDL(t *testing.T) {
	if controllerButtonMisc1 != sdl.CONTROLLER_BUTTON_DPAD_RIGHT+1 {
		t.Fatalf("misc1 = %d, want %d", controllerButtonMisc1, sdl.CONTROLLER_BUTTON_DPAD_RIGHT+1)
	}
	if controllerButtonPaddle1 != 16 || controllerButtonTouchpad != 20 {
		t.Fatalf("paddle1 = %d, touchpad = %d", controllerButtonPaddle1, controllerButtonTouchpad)
	}
	if key, ok := sdlButtonNames["paddle3"]; !ok || key != controllerButtonPaddle3 {
		t.Fatalf("paddle3 override name not registered")
	}
}
