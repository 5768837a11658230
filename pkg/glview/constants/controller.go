package constants

// ControllerKey represents an engine-level gamepad input, mapped from the
// platform's button and axis enumerations.
type ControllerKey int

const (
	ControllerKeyNone ControllerKey = iota

	ControllerJoystickLeftX
	ControllerJoystickLeftY
	ControllerJoystickRightX
	ControllerJoystickRightY

	ControllerButtonA
	ControllerButtonB
	ControllerButtonC
	ControllerButtonX
	ControllerButtonY
	ControllerButtonZ

	ControllerButtonLeftShoulder
	ControllerButtonRightShoulder

	ControllerAxisLeftTrigger
	ControllerAxisRightTrigger

	ControllerButtonDpadUp
	ControllerButtonDpadDown
	ControllerButtonDpadLeft
	ControllerButtonDpadRight
	ControllerButtonDpadCenter

	ControllerButtonLeftThumbstick
	ControllerButtonRightThumbstick

	ControllerButtonStart
	ControllerButtonSelect
	ControllerButtonPause

	controllerKeyCount
)

func (k ControllerKey) String() string {
	switch k {
	case ControllerKeyNone:
		return "none"
	case ControllerJoystickLeftX:
		return "joystick_left_x"
	case ControllerJoystickLeftY:
		return "joystick_left_y"
	case ControllerJoystickRightX:
		return "joystick_right_x"
	case ControllerJoystickRightY:
		return "joystick_right_y"
	case ControllerButtonA:
		return "button_a"
	case ControllerButtonB:
		return "button_b"
	case ControllerButtonC:
		return "button_c"
	case ControllerButtonX:
		return "button_x"
	case ControllerButtonY:
		return "button_y"
	case ControllerButtonZ:
		return "button_z"
	case ControllerButtonLeftShoulder:
		return "button_left_shoulder"
	case ControllerButtonRightShoulder:
		return "button_right_shoulder"
	case ControllerAxisLeftTrigger:
		return "axis_left_trigger"
	case ControllerAxisRightTrigger:
		return "axis_right_trigger"
	case ControllerButtonDpadUp:
		return "button_dpad_up"
	case ControllerButtonDpadDown:
		return "button_dpad_down"
	case ControllerButtonDpadLeft:
		return "button_dpad_left"
	case ControllerButtonDpadRight:
		return "button_dpad_right"
	case ControllerButtonDpadCenter:
		return "button_dpad_center"
	case ControllerButtonLeftThumbstick:
		return "button_left_thumbstick"
	case ControllerButtonRightThumbstick:
		return "button_right_thumbstick"
	case ControllerButtonStart:
		return "button_start"
	case ControllerButtonSelect:
		return "button_select"
	case ControllerButtonPause:
		return "button_pause"
	default:
		return "unknown"
	}
}

// IsAxis reports whether the key carries an analog axis value.
func (k ControllerKey) IsAxis() bool {
	switch k {
	case ControllerJoystickLeftX, ControllerJoystickLeftY,
		ControllerJoystickRightX, ControllerJoystickRightY,
		ControllerAxisLeftTrigger, ControllerAxisRightTrigger:
		return true
	}
	return false
}

// ControllerKeyCount is the number of defined controller keys, ControllerKeyNone included.
func ControllerKeyCount() int {
	return int(controllerKeyCount)
}

// ParseControllerKey looks up a controller key by its String() name.
func ParseControllerKey(name string) (ControllerKey, bool) {
	for k := ControllerKeyNone; k < controllerKeyCount; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return ControllerKeyNone, false
}
