package internal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BrandonKowalski/glview/pkg/glview/constants"
	"github.com/BrandonKowalski/glview/pkg/glview/event"
	"github.com/veandco/go-sdl2/sdl"
)

// GameControllerHandle is an open platform game controller.
// *sdl.GameController satisfies it.
type GameControllerHandle interface {
	Name() string
	Close()
}

// GameControllerBackend is the slice of the SDL game controller API the
// registry depends on.
type GameControllerBackend interface {
	NumDevices() int
	IsGameController(deviceIndex int) bool
	InstanceID(deviceIndex int) sdl.JoystickID
	Open(deviceIndex int) (GameControllerHandle, error)
	SetEventState(enabled bool)
	AddMappingsFromFile(path string) (int, error)
}

type sdlControllerBackend struct{}

func (sdlControllerBackend) NumDevices() int {
	return sdl.NumJoysticks()
}

func (sdlControllerBackend) IsGameController(deviceIndex int) bool {
	return sdl.IsGameController(deviceIndex)
}

func (sdlControllerBackend) InstanceID(deviceIndex int) sdl.JoystickID {
	return sdl.JoystickGetDeviceInstanceID(deviceIndex)
}

func (sdlControllerBackend) Open(deviceIndex int) (GameControllerHandle, error) {
	gc := sdl.GameControllerOpen(deviceIndex)
	if gc == nil {
		return nil, fmt.Errorf("open game controller %d: %w", deviceIndex, sdl.GetError())
	}
	return gc, nil
}

func (sdlControllerBackend) SetEventState(enabled bool) {
	state := sdl.DISABLE
	if enabled {
		state = sdl.ENABLE
	}
	sdl.JoystickEventState(state)
	sdl.GameControllerEventState(state)
}

func (sdlControllerBackend) AddMappingsFromFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("load controller mappings: %w", err)
	}
	defer f.Close()

	n, err := addMappings(f, sdl.GameControllerAddMapping)
	if err != nil {
		return n, fmt.Errorf("load controller mappings %s: %w", path, err)
	}
	return n, nil
}

// addMappings feeds every gamecontrollerdb line of r to add and returns how
// many new mappings were added. Blank lines and comments are skipped. add
// follows SDL_GameControllerAddMapping: 1 for a new mapping, 0 for an
// update, -1 on error.
func addMappings(r io.Reader, add func(string) int) (int, error) {
	var added int
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		mapping := strings.TrimSpace(scanner.Text())
		if mapping == "" || strings.HasPrefix(mapping, "#") {
			continue
		}
		switch add(mapping) {
		case 1:
			added++
		case 0:
		default:
			if err := sdl.GetError(); err != nil {
				return added, fmt.Errorf("line %d: %w", line, err)
			}
			return added, fmt.Errorf("line %d: invalid mapping", line)
		}
	}
	return added, scanner.Err()
}

// ControllerRegistry owns every connected Controller and the SDL handle
// backing it. It must be used from the goroutine that polls SDL events.
type ControllerRegistry struct {
	backend     GameControllerBackend
	dispatcher  event.Dispatcher
	mapping     ControllerMapping
	controllers []*Controller
	handles     map[sdl.JoystickID]GameControllerHandle
	discovering bool
}

// NewControllerRegistry creates a registry. A nil backend selects SDL.
func NewControllerRegistry(backend GameControllerBackend, dispatcher event.Dispatcher) *ControllerRegistry {
	if backend == nil {
		backend = sdlControllerBackend{}
	}
	return &ControllerRegistry{
		backend:    backend,
		dispatcher: dispatcher,
		handles:    make(map[sdl.JoystickID]GameControllerHandle),
	}
}

// SetMapping replaces the button/axis mapping used for new input.
func (r *ControllerRegistry) SetMapping(m ControllerMapping) {
	r.mapping = m
}

// SetDispatcher replaces the dispatcher for the registry and every
// controller it already owns.
func (r *ControllerRegistry) SetDispatcher(d event.Dispatcher) {
	r.dispatcher = d
	for _, c := range r.controllers {
		c.dispatcher = d
	}
}

// LoadMappingDatabase adds SDL controller mappings (gamecontrollerdb format).
func (r *ControllerRegistry) LoadMappingDatabase(path string) error {
	n, err := r.backend.AddMappingsFromFile(path)
	if err != nil {
		return err
	}
	GetInternalLogger().Debug("Loaded controller mappings", "path", path, "count", n)
	return nil
}

// StartDiscovery enables controller events and registers controllers that
// are already attached.
func (r *ControllerRegistry) StartDiscovery() {
	r.backend.SetEventState(true)
	r.discovering = true

	for i := 0; i < r.backend.NumDevices(); i++ {
		if r.backend.IsGameController(i) {
			r.addController(i)
		}
	}
}

// StopDiscovery disables controller events, disconnects every controller,
// and closes the platform handles.
func (r *ControllerRegistry) StopDiscovery() {
	r.backend.SetEventState(false)
	r.discovering = false

	controllers := r.controllers
	r.controllers = nil
	for _, c := range controllers {
		c.onDisconnected()
	}

	for id, h := range r.handles {
		h.Close()
		delete(r.handles, id)
	}
}

// IsDiscovering reports whether StartDiscovery is in effect.
func (r *ControllerRegistry) IsDiscovering() bool {
	return r.discovering
}

// All returns the connected controllers in attach order.
func (r *ControllerRegistry) All() []*Controller {
	out := make([]*Controller, len(r.controllers))
	copy(out, r.controllers)
	return out
}

// Find returns the controller with the given instance id.
func (r *ControllerRegistry) Find(id sdl.JoystickID) (*Controller, bool) {
	i := r.indexOf(id)
	if i < 0 {
		return nil, false
	}
	return r.controllers[i], true
}

func (r *ControllerRegistry) indexOf(id sdl.JoystickID) int {
	for i, c := range r.controllers {
		if sdl.JoystickID(c.deviceID) == id {
			return i
		}
	}
	return -1
}

func (r *ControllerRegistry) addController(deviceIndex int) {
	id := r.backend.InstanceID(deviceIndex)
	if r.indexOf(id) >= 0 {
		return
	}

	gc, err := r.backend.Open(deviceIndex)
	if err != nil {
		GetInternalLogger().Error("Failed to open controller", "device_index", deviceIndex, "error", err)
		return
	}
	r.handles[id] = gc

	c := newController(int(id), gc.Name(), r.dispatcher)
	r.controllers = append(r.controllers, c)
	c.onConnected()
}

func (r *ControllerRegistry) removeController(id sdl.JoystickID) {
	i := r.indexOf(id)
	if i < 0 {
		GetInternalLogger().Error("Could not remove controller", "device_id", id)
		return
	}

	c := r.controllers[i]
	r.controllers = append(r.controllers[:i], r.controllers[i+1:]...)
	c.onDisconnected()

	if gc, ok := r.handles[id]; ok {
		gc.Close()
		delete(r.handles, id)
	}
}

// HandleEvent processes SDL controller events and reports whether ev was one.
func (r *ControllerRegistry) HandleEvent(ev sdl.Event) bool {
	switch e := ev.(type) {
	case *sdl.ControllerDeviceEvent:
		switch e.Type {
		case sdl.CONTROLLERDEVICEADDED:
			// Which is the device index for additions.
			r.addController(int(e.Which))
		case sdl.CONTROLLERDEVICEREMOVED:
			// Which is the instance id for removals.
			r.removeController(e.Which)
		case sdl.CONTROLLERDEVICEREMAPPED:
			r.onRemapped(e.Which)
		}
		return true

	case *sdl.ControllerButtonEvent:
		c, ok := r.Find(e.Which)
		if !ok {
			GetInternalLogger().Debug("Ignoring event from unknown controller", "device_id", e.Which)
			return true
		}
		key := r.mapping.Button(sdl.GameControllerButton(e.Button))
		if key == constants.ControllerKeyNone {
			return true
		}
		c.onButtonEvent(key, e.State == sdl.PRESSED, 0, false)
		return true

	case *sdl.ControllerAxisEvent:
		c, ok := r.Find(e.Which)
		if !ok {
			GetInternalLogger().Debug("Ignoring event from unknown controller", "device_id", e.Which)
			return true
		}
		key := r.mapping.Axis(sdl.GameControllerAxis(e.Axis))
		if key == constants.ControllerKeyNone {
			return true
		}
		c.onAxisEvent(key, NormalizeAxis(e.Value), true)
		return true
	}

	return false
}

func (r *ControllerRegistry) onRemapped(id sdl.JoystickID) {
	c, ok := r.Find(id)
	if !ok {
		return
	}
	if gc, ok := r.handles[id]; ok {
		c.deviceName = gc.Name()
	}
	GetInternalLogger().Debug("Controller remapped", "device_id", id, "name", c.deviceName)
}
