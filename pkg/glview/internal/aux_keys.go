package internal

import (
	"github.com/BrandonKowalski/glview/pkg/glview/constants"
	"go.uber.org/atomic"
)

const auxKeyQueueSize = 64

// AuxKeySource delivers key transitions that arrive outside SDL, such as
// power or volume buttons read from evdev.
type AuxKeySource interface {
	// Drain calls fn for every queued transition. It never blocks.
	Drain(fn func(code constants.KeyCode, pressed bool))
	Close() error
}

type auxKey struct {
	code    constants.KeyCode
	pressed bool
}

// keyQueue hands key transitions from reader goroutines to the goroutine
// polling events. Transitions are dropped when the queue is full.
type keyQueue struct {
	ch      chan auxKey
	dropped atomic.Int64
}

func newKeyQueue(size int) *keyQueue {
	return &keyQueue{ch: make(chan auxKey, size)}
}

func (q *keyQueue) push(code constants.KeyCode, pressed bool) {
	select {
	case q.ch <- auxKey{code: code, pressed: pressed}:
	default:
		if n := q.dropped.Inc(); n == 1 || n%100 == 0 {
			GetInternalLogger().Warn("Auxiliary key queue full; dropping input", "dropped", n)
		}
	}
}

func (q *keyQueue) Drain(fn func(code constants.KeyCode, pressed bool)) {
	for {
		select {
		case k := <-q.ch:
			fn(k.code, k.pressed)
		default:
			return
		}
	}
}

// Dropped returns the number of transitions lost to a full queue.
func (q *keyQueue) Dropped() int64 {
	return q.dropped.Load()
}
