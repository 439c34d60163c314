package services

import (
	"time"

	"habitstore/internal/liveset"
	"habitstore/internal/store"
)

// completionService handles completion-record mutations.
type completionService struct {
	store store.Store
	hub   *liveset.Hub
}

// NewCompletionService creates a new CompletionServicer.
func NewCompletionService(s store.Store, hub *liveset.Hub) CompletionServicer {
	return &completionService{store: s, hub: hub}
}

// ToggleCompletion flips the completion state for (trackerID, date): an
// existing record is removed, a missing one is created. The store rejects
// duplicate rows, so toggling is idempotent-safe under repeated calls.
func (s *completionService) ToggleCompletion(trackerID string, date time.Time) (bool, error) {
	exists, err := s.store.HasRecord(trackerID, date)
	if err != nil {
		return false, err
	}

	if exists {
		if err := s.store.DeleteRecord(trackerID, date); err != nil {
			return true, err
		}
		s.hub.NotifyMutation()
		return false, nil
	}

	if err := s.store.CreateRecord(trackerID, date); err != nil {
		return false, err
	}
	s.hub.NotifyMutation()
	return true, nil
}

// IsCompleted reports whether the tracker has a completion record for the
// given day.
func (s *completionService) IsCompleted(trackerID string, date time.Time) (bool, error) {
	return s.store.HasRecord(trackerID, date)
}

// CompletedCount returns the total number of completion records, the
// figure behind the statistics screen.
func (s *completionService) CompletedCount() (int64, error) {
	return s.store.CountRecords()
}
