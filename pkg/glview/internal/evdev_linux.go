//go:build linux

package internal

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/BrandonKowalski/glview/pkg/glview/constants"
	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// evdevKeyMap covers the keys SDL does not see on handhelds whose power and
// volume buttons live on a separate input device.
var evdevKeyMap = map[evdev.EvCode]constants.KeyCode{
	evdev.KEY_POWER:      constants.KeyPower,
	evdev.KEY_VOLUMEUP:   constants.KeyVolumeUp,
	evdev.KEY_VOLUMEDOWN: constants.KeyVolumeDown,
	evdev.KEY_PLAYPAUSE:  constants.KeyPlay,
	evdev.KEY_PLAY:       constants.KeyPlay,
	evdev.KEY_MENU:       constants.KeyMenu,
	evdev.KEY_BACK:       constants.KeyBack,
	evdev.KEY_ESC:        constants.KeyEscape,
	evdev.KEY_ENTER:      constants.KeyEnter,
	evdev.KEY_SPACE:      constants.KeySpace,
	evdev.KEY_UP:         constants.KeyDpadUp,
	evdev.KEY_DOWN:       constants.KeyDpadDown,
	evdev.KEY_LEFT:       constants.KeyDpadLeft,
	evdev.KEY_RIGHT:      constants.KeyDpadRight,
}

// translateEvdevKey maps an EV_KEY event to a key transition. Autorepeat
// (value 2) is reported as another press.
func translateEvdevKey(typ evdev.EvType, code evdev.EvCode, value int32) (constants.KeyCode, bool, bool) {
	if typ != evdev.EV_KEY {
		return constants.KeyNone, false, false
	}
	key, ok := evdevKeyMap[code]
	if !ok {
		return constants.KeyNone, false, false
	}
	return key, value != 0, true
}

type evdevDevice struct {
	path string
	dev  *evdev.InputDevice
}

// EvdevKeySource reads key events from evdev devices on background
// goroutines and queues them for PollEvents.
type EvdevKeySource struct {
	*keyQueue
	devices []evdevDevice
	running atomic.Bool
	wg      sync.WaitGroup
}

// OpenEvdevKeySource opens every device in paths and starts reading. It
// returns nil when paths is empty. Devices that cannot be opened are
// skipped; it fails only when none can.
func OpenEvdevKeySource(paths []string) (AuxKeySource, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	s := &EvdevKeySource{keyQueue: newKeyQueue(auxKeyQueueSize)}
	var errs []error
	for _, path := range paths {
		dev, err := evdev.Open(path)
		if err != nil {
			GetInternalLogger().Warn("Failed to open input device", "path", path, "error", err)
			errs = append(errs, fmt.Errorf("open %s: %w", path, err))
			continue
		}
		name, _ := dev.Name()
		GetInternalLogger().Debug("Opened input device", "path", path, "name", name)
		s.devices = append(s.devices, evdevDevice{path: path, dev: dev})
	}
	if len(s.devices) == 0 {
		return nil, errors.Join(errs...)
	}

	s.running.Store(true)
	for _, d := range s.devices {
		s.wg.Add(1)
		go s.read(d)
	}
	return s, nil
}

func (s *EvdevKeySource) read(d evdevDevice) {
	defer s.wg.Done()

	for s.running.Load() {
		ev, err := d.dev.ReadOne()
		if err != nil {
			if !s.running.Load() {
				return
			}
			GetInternalLogger().Error("Failed to read input event", "path", d.path, "error", err)
			time.Sleep(constants.EvdevRetryDelay)
			continue
		}
		if key, pressed, ok := translateEvdevKey(ev.Type, ev.Code, ev.Value); ok {
			s.push(key, pressed)
		}
	}
}

// Close stops the readers and closes the devices.
func (s *EvdevKeySource) Close() error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}
	var errs []error
	for _, d := range s.devices {
		if err := d.dev.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.wg.Wait()
	return errors.Join(errs...)
}
