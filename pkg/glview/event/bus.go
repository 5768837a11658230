package event

import (
	"sync"

	"go.uber.org/atomic"
)

// ListenerID identifies a registered listener so it can be removed later.
type ListenerID uint64

// Listener is called synchronously for every matching event.
type Listener func(Event)

type listener struct {
	id      ListenerID
	kind    Kind
	name    string // custom event name, empty for non-custom listeners
	fn      Listener
	removed atomic.Bool
}

// Bus is an in-process Dispatcher. Listeners are invoked in registration
// order on the goroutine that calls Dispatch.
type Bus struct {
	mu        sync.Mutex
	nextID    ListenerID
	listeners []*listener
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{}
}

// AddListener registers fn for every event of the given kind.
func (b *Bus) AddListener(kind Kind, fn Listener) ListenerID {
	return b.add(kind, "", fn)
}

// AddCustomListener registers fn for CustomEvents with the given name.
func (b *Bus) AddCustomListener(name string, fn Listener) ListenerID {
	return b.add(KindCustom, name, fn)
}

func (b *Bus) add(kind Kind, name string, fn Listener) ListenerID {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.listeners = append(b.listeners, &listener{id: b.nextID, kind: kind, name: name, fn: fn})
	return b.nextID
}

// RemoveListener unregisters a listener. It is safe to call from inside a
// listener; a removed listener is not invoked again, even for the event
// currently being dispatched.
func (b *Bus) RemoveListener(id ListenerID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, l := range b.listeners {
		if l.id == id {
			l.removed.Store(true)
			b.listeners = append(b.listeners[:i:i], b.listeners[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered listeners.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}

// Dispatch delivers e to every listener registered for its kind.
func (b *Bus) Dispatch(e Event) {
	b.mu.Lock()
	snapshot := make([]*listener, len(b.listeners))
	copy(snapshot, b.listeners)
	b.mu.Unlock()

	kind := e.Kind()
	var name string
	if custom, ok := e.(CustomEvent); ok {
		name = custom.Name
	}

	for _, l := range snapshot {
		if l.kind != kind || l.removed.Load() {
			continue
		}
		if kind == KindCustom && l.name != "" && l.name != name {
			continue
		}
		l.fn(e)
	}
}

// DispatchCustom is shorthand for dispatching a CustomEvent.
func (b *Bus) DispatchCustom(name string, data any) {
	b.Dispatch(CustomEvent{Name: name, Data: data})
}

// Recorder is a Dispatcher that keeps every event it receives.
// It is useful for tests and for input capture tools.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Dispatch(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// OfKind returns the recorded events of one kind, in order.
func (r *Recorder) OfKind(kind Kind) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Event
	for _, e := range r.events {
		if e.Kind() == kind {
			out = append(out, e)
		}
	}
	return out
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
