package internal

import (
	"github.com/BrandonKowalski/glview/pkg/glview/constants"
	"github.com/BrandonKowalski/glview/pkg/glview/event"
)

// Controller is the engine-side view of a connected gamepad. It records the
// current and previous status of every key so listeners can tell presses,
// releases, and repeats apart.
type Controller struct {
	deviceID   int
	deviceName string
	dispatcher event.Dispatcher

	status     map[constants.ControllerKey]event.KeyStatus
	prevStatus map[constants.ControllerKey]event.KeyStatus
}

func newController(deviceID int, deviceName string, dispatcher event.Dispatcher) *Controller {
	return &Controller{
		deviceID:   deviceID,
		deviceName: deviceName,
		dispatcher: dispatcher,
		status:     make(map[constants.ControllerKey]event.KeyStatus),
		prevStatus: make(map[constants.ControllerKey]event.KeyStatus),
	}
}

// DeviceID returns the platform instance id of the controller.
func (c *Controller) DeviceID() int {
	return c.deviceID
}

// DeviceName returns the name reported by the platform.
func (c *Controller) DeviceName() string {
	return c.deviceName
}

// KeyStatus returns the last known status of key. Keys that never changed
// report the zero status.
func (c *Controller) KeyStatus(key constants.ControllerKey) event.KeyStatus {
	return c.status[key]
}

func (c *Controller) dispatch(typ event.ControllerEventType, key constants.ControllerKey) {
	if c.dispatcher == nil {
		return
	}
	c.dispatcher.Dispatch(event.ControllerEvent{
		Type:       typ,
		DeviceID:   c.deviceID,
		DeviceName: c.deviceName,
		Key:        key,
		Status:     c.status[key],
	})
}

func (c *Controller) onConnected() {
	GetInternalLogger().Info("Controller connected", "device_id", c.deviceID, "name", c.deviceName)
	c.dispatch(event.ControllerConnected, constants.ControllerKeyNone)
}

func (c *Controller) onDisconnected() {
	GetInternalLogger().Info("Controller disconnected", "device_id", c.deviceID, "name", c.deviceName)
	c.dispatch(event.ControllerDisconnected, constants.ControllerKeyNone)
}

// onButtonEvent records a digital (or analog) button change and emits
// key-down, key-up, or key-repeat depending on the previous state.
func (c *Controller) onButtonEvent(key constants.ControllerKey, pressed bool, value float32, analog bool) {
	prev := c.status[key]
	c.prevStatus[key] = prev
	c.status[key] = event.KeyStatus{IsPressed: pressed, Value: value, IsAnalog: analog}

	switch {
	case pressed && !prev.IsPressed:
		c.dispatch(event.ControllerKeyDown, key)
	case !pressed && prev.IsPressed:
		c.dispatch(event.ControllerKeyUp, key)
	case pressed && prev.IsPressed:
		c.dispatch(event.ControllerKeyRepeat, key)
	}
}

func (c *Controller) onAxisEvent(key constants.ControllerKey, value float32, analog bool) {
	prev := c.status[key]
	c.prevStatus[key] = prev
	c.status[key] = event.KeyStatus{IsPressed: prev.IsPressed, Value: value, IsAnalog: analog}
	c.dispatch(event.ControllerAxis, key)
}

// PreviousKeyStatus returns the status key had before its last change.
func (c *Controller) PreviousKeyStatus(key constants.ControllerKey) event.KeyStatus {
	return c.prevStatus[key]
}
