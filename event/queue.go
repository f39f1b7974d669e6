package event

import (
	"sync"

	"github.com/lixenwraith/doomdash/parameter"
)

// EventQueue buffers gesture events between the frame driver and whoever reports them
// Push and Drain may be called from any goroutine
//
// Capacity is bounded: once full, the oldest pending event is dropped and counted
type EventQueue struct {
	mu      sync.Mutex
	ring    []GameEvent
	start   int
	count   int
	dropped uint64
}

func NewEventQueue() *EventQueue {
	return NewEventQueueSize(parameter.EventQueueSize)
}

// NewEventQueueSize builds a queue holding at most size pending events, minimum 1
func NewEventQueueSize(size int) *EventQueue {
	if size < 1 {
		size = 1
	}
	return &EventQueue{ring: make([]GameEvent, size)}
}

// Push satisfies gesture.Emitter
func (q *EventQueue) Push(ev GameEvent) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.count == len(q.ring) {
		q.start = (q.start + 1) % len(q.ring)
		q.count--
		q.dropped++
	}
	q.ring[(q.start+q.count)%len(q.ring)] = ev
	q.count++
}

// Drain returns pending events oldest first and empties the queue, nil when nothing is pending
func (q *EventQueue) Drain() []GameEvent {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.count == 0 {
		return nil
	}
	out := make([]GameEvent, q.count)
	for i := range out {
		out[i] = q.ring[(q.start+i)%len(q.ring)]
	}
	q.start, q.count = 0, 0
	return out
}

func (q *EventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count
}

// Dropped reports how many events were overwritten before being drained
func (q *EventQueue) Dropped() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}
