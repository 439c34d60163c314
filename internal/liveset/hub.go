package liveset

import (
	"sync"
	"time"
)

// Hub fans mutation notifications out to every attached live result set.
// The mutation services hold one hub per store and call NotifyMutation
// after each successful write.
type Hub struct {
	mu   sync.Mutex
	sets map[*LiveResultSet]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{sets: make(map[*LiveResultSet]struct{})}
}

// Attach registers a live result set for mutation notifications.
func (h *Hub) Attach(l *LiveResultSet) {
	h.mu.Lock()
	h.sets[l] = struct{}{}
	h.mu.Unlock()
}

// Detach unregisters a live result set. Detaching one that was never
// attached is a no-op.
func (h *Hub) Detach(l *LiveResultSet) {
	h.mu.Lock()
	delete(h.sets, l)
	h.mu.Unlock()
}

// NotifyMutation triggers a recompute on every attached set.
func (h *Hub) NotifyMutation() {
	for _, l := range h.snapshot() {
		l.Refresh()
	}
}

// RollDate pushes a new reference date to every attached set. The day
// rollover scheduler calls this at midnight.
func (h *Hub) RollDate(date time.Time) {
	for _, l := range h.snapshot() {
		l.SetDate(date)
	}
}

func (h *Hub) snapshot() []*LiveResultSet {
	h.mu.Lock()
	defer h.mu.Unlock()
	sets := make([]*LiveResultSet, 0, len(h.sets))
	for l := range h.sets {
		sets = append(sets, l)
	}
	return sets
}
