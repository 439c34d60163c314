package liveset

import (
	"sync"
	"time"

	"habitstore/internal/logger"
	"habitstore/internal/models"
	"habitstore/internal/query"
)

// Observer receives ordered change batches from a live result set.
// Both callbacks arrive on a single delivery goroutine, in the order the
// batches were produced; an observer never sees reordered or interleaved
// events.
type Observer interface {
	// Changes delivers one batch of operations. The first batch after
	// Subscribe resets the observer: it inserts the whole initial
	// snapshot (and may be empty when the store is empty).
	Changes(ops []Op)
	// QueryFailed reports a recompute that could not read the store. The
	// last good snapshot stays in place.
	QueryFailed(err error)
}

// LiveResultSet owns the last published snapshot for one query and keeps
// it in sync: every mutation or parameter change triggers a recompute,
// the result is diffed against the owned snapshot, and a non-empty diff
// is published to the observer.
//
// Recomputes are serialized. Triggers arriving while one is running are
// coalesced into a single follow-up run; a parameter change supersedes an
// in-flight run, whose result is discarded unpublished.
type LiveResultSet struct {
	engine *query.Engine
	now    func() time.Time

	mu          sync.Mutex
	params      query.Params
	last        query.Snapshot
	generation  uint64
	recomputing bool
	pending     bool
	published   bool

	queue *eventQueue
}

// Subscribe creates a live result set for the given query parameters and
// starts delivering to the observer, beginning with the initial reset
// batch.
func Subscribe(engine *query.Engine, params query.Params, observer Observer) *LiveResultSet {
	l := &LiveResultSet{
		engine: engine,
		now:    time.Now,
		params: params,
		queue:  newEventQueue(observer),
	}
	l.Refresh()
	return l
}

// Refresh triggers a recompute. The mutation API calls this through the
// hub after every successful write.
func (l *LiveResultSet) Refresh() {
	l.mu.Lock()
	if l.recomputing {
		l.pending = true
		l.mu.Unlock()
		return
	}
	l.recomputing = true
	params, generation := l.params, l.generation
	l.mu.Unlock()

	go l.recompute(params, generation)
}

// SetDate changes the reference date and re-triggers the query.
func (l *LiveResultSet) SetDate(date time.Time) {
	l.mu.Lock()
	l.params.Date = models.DayOf(date)
	l.generation++
	l.mu.Unlock()
	l.Refresh()
}

// SetSearchText changes the search text and re-triggers the query.
func (l *LiveResultSet) SetSearchText(text string) {
	l.mu.Lock()
	l.params.Search = text
	l.generation++
	l.mu.Unlock()
	l.Refresh()
}

// SetFilter changes the completion filter and re-triggers the query.
// Selecting the "today" filter also snaps the reference date to the
// current day.
func (l *LiveResultSet) SetFilter(filter query.Filter) {
	l.mu.Lock()
	l.params.Filter = filter
	if filter == query.FilterToday {
		l.params.Date = models.DayOf(l.now())
	}
	l.generation++
	l.mu.Unlock()
	l.Refresh()
}

// Params returns a copy of the current query parameters.
func (l *LiveResultSet) Params() query.Params {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.params
}

// Snapshot returns a copy of the last published snapshot.
func (l *LiveResultSet) Snapshot() query.Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.last.Clone()
}

// Close stops delivery. Pending queued events are dropped.
func (l *LiveResultSet) Close() {
	l.queue.close()
}

// recompute runs the engine off the trigger's goroutine, then publishes
// under the lock. It loops while coalesced or superseding triggers are
// pending, so at most one recompute runs at a time.
func (l *LiveResultSet) recompute(params query.Params, generation uint64) {
	for {
		snapshot, err := l.engine.Run(params)

		l.mu.Lock()
		if generation != l.generation {
			// Parameters changed mid-run; discard this result and rerun
			// with the current ones.
			params, generation = l.params, l.generation
			l.pending = false
			l.mu.Unlock()
			continue
		}

		if err != nil {
			logger.Get().Errorw("live result set recompute failed", "error", err)
			l.queue.push(event{err: err})
		} else {
			ops := Diff(l.last, snapshot)
			if len(ops) > 0 || !l.published {
				l.last = snapshot
				l.published = true
				l.queue.push(event{ops: ops})
			}
		}

		if l.pending {
			l.pending = false
			params, generation = l.params, l.generation
			l.mu.Unlock()
			continue
		}
		l.recomputing = false
		l.mu.Unlock()
		return
	}
}
