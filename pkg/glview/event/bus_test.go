package event

import (
	"testing"

	"github.com/BrandonKowalski/glview/pkg/glview/constants"
)

func TestBusDeliversByKindInOrder(t *testing.T) {
	bus := NewBus()
	var got []string

	bus.AddListener(KindKeyboard, func(Event) { got = append(got, "first") })
	bus.AddListener(KindMouse, func(Event) { got = append(got, "mouse") })
	bus.AddListener(KindKeyboard, func(Event) { got = append(got, "second") })

	bus.Dispatch(KeyboardEvent{Code: constants.KeyA, Pressed: true})

	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Fatalf("unexpected delivery order: %v", got)
	}
}

func TestBusCustomListenerFiltersByName(t *testing.T) {
	bus := NewBus()
	resized, all := 0, 0

	bus.AddCustomListener(constants.EventWindowResized, func(Event) { resized++ })
	bus.AddListener(KindCustom, func(Event) { all++ })

	bus.DispatchCustom(constants.EventWindowResized, nil)
	bus.DispatchCustom(constants.EventWindowFocused, nil)

	if resized != 1 {
		t.Fatalf("expected 1 resized notification, got %d", resized)
	}
	if all != 2 {
		t.Fatalf("expected unnamed custom listener to see 2 events, got %d", all)
	}
}

func TestBusRemoveDuringDispatch(t *testing.T) {
	bus := NewBus()
	calls := 0

	var second ListenerID
	bus.AddListener(KindApp, func(Event) { bus.RemoveListener(second) })
	second = bus.AddListener(KindApp, func(Event) { calls++ })

	bus.Dispatch(AppEvent{Type: AppLowMemory})
	bus.Dispatch(AppEvent{Type: AppLowMemory})

	if calls != 0 {
		t.Fatalf("removed listener was called %d times", calls)
	}
	if bus.Len() != 1 {
		t.Fatalf("expected 1 listener left, got %d", bus.Len())
	}
}

func TestRecorderOfKind(t *testing.T) {
	var r Recorder
	r.Dispatch(KeyboardEvent{Code: constants.KeyB})
	r.Dispatch(MouseEvent{Type: MouseMove})
	r.Dispatch(KeyboardEvent{Code: constants.KeyC})

	keys := r.OfKind(KindKeyboard)
	if len(keys) != 2 {
		t.Fatalf("expected 2 keyboard events, got %d", len(keys))
	}
	if keys[1].(KeyboardEvent).Code != constants.KeyC {
		t.Fatalf("unexpected second key: %v", keys[1])
	}

	r.Reset()
	if len(r.Events()) != 0 {
		t.Fatal("expected recorder to be empty after Reset")
	}
}
