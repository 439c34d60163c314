package liveset

import "sync"

type event struct {
	ops []Op
	err error
}

// eventQueue hands events to the observer from a single goroutine, in
// push order. Pushing never blocks the producer, so publication can
// happen while the result-set lock is held.
type eventQueue struct {
	mu       sync.Mutex
	cond     *sync.Cond
	events   []event
	closed   bool
	observer Observer
}

func newEventQueue(observer Observer) *eventQueue {
	q := &eventQueue{observer: observer}
	q.cond = sync.NewCond(&q.mu)
	go q.run()
	return q
}

func (q *eventQueue) push(ev event) {
	q.mu.Lock()
	if !q.closed {
		q.events = append(q.events, ev)
		q.cond.Signal()
	}
	q.mu.Unlock()
}

func (q *eventQueue) close() {
	q.mu.Lock()
	q.closed = true
	q.cond.Signal()
	q.mu.Unlock()
}

func (q *eventQueue) run() {
	for {
		q.mu.Lock()
		for len(q.events) == 0 && !q.closed {
			q.cond.Wait()
		}
		if q.closed {
			q.mu.Unlock()
			return
		}
		ev := q.events[0]
		q.events = q.events[1:]
		q.mu.Unlock()

		if ev.err != nil {
			q.observer.QueryFailed(ev.err)
		} else {
			q.observer.Changes(ev.ops)
		}
	}
}
