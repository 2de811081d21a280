package span

import (
	"slices"
	"sync"
)

// Events queues PlayerEnded notifications during a tick pass and delivers
// them to listeners afterwards.
type Events struct {
	mu        sync.Mutex
	queue     []PlayerEnded
	listeners map[int]func(PlayerEnded)
	nextID    int
}

// Send queues an event.
func (q *Events) Send(e PlayerEnded) {
	q.mu.Lock()
	q.queue = append(q.queue, e)
	q.mu.Unlock()
}

// Len returns the number of queued events.
func (q *Events) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.queue)
}

// Drain returns and clears the queued events in send order.
func (q *Events) Drain() []PlayerEnded {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.queue
	q.queue = nil
	return out
}

// AddListener registers a callback invoked by Flush for every event.
// Returns an unsubscribe function.
func (q *Events) AddListener(fn func(PlayerEnded)) func() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.listeners == nil {
		q.listeners = make(map[int]func(PlayerEnded))
	}
	id := q.nextID
	q.nextID++
	q.listeners[id] = fn
	return func() {
		q.mu.Lock()
		delete(q.listeners, id)
		q.mu.Unlock()
	}
}

// Flush delivers queued events to listeners in send order, then clears the
// queue. Listeners registered later are called later.
func (q *Events) Flush() {
	events := q.Drain()
	if len(events) == 0 {
		return
	}
	q.mu.Lock()
	ids := make([]int, 0, len(q.listeners))
	for id := range q.listeners {
		ids = append(ids, id)
	}
	listeners := make([]func(PlayerEnded), 0, len(ids))
	slices.Sort(ids)
	for _, id := range ids {
		listeners = append(listeners, q.listeners[id])
	}
	q.mu.Unlock()

	for _, e := range events {
		for _, fn := range listeners {
			fn(e)
		}
	}
}
