package services

import (
	apperrors "habitstore/internal/errors"
	"habitstore/internal/liveset"
	"habitstore/internal/models"
	"habitstore/internal/store"
	"habitstore/internal/validator"
)

// trackerService handles tracker mutations.
type trackerService struct {
	store store.Store
	hub   *liveset.Hub
}

// NewTrackerService creates a new TrackerServicer.
func NewTrackerService(s store.Store, hub *liveset.Hub) TrackerServicer {
	return &trackerService{store: s, hub: hub}
}

// validateInput checks field rules and the schedule-XOR-target-date
// invariant before anything reaches the store.
func validateInput(input *TrackerInput) error {
	if err := validator.Get().Struct(input); err != nil {
		return apperrors.Wrap(apperrors.ErrInvalidInput, err)
	}

	hasSchedule := len(input.Weekdays) > 0
	hasTarget := input.TargetDate != nil
	if hasSchedule == hasTarget {
		return apperrors.ErrScheduleConflict
	}

	seen := make(map[models.Weekday]bool, len(input.Weekdays))
	for _, day := range input.Weekdays {
		if seen[day] {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "duplicate weekday in schedule")
		}
		seen[day] = true
	}
	return nil
}

func (input *TrackerInput) toModel() *models.Tracker {
	tracker := &models.Tracker{
		CategoryID: input.CategoryID,
		Title:      input.Title,
		Color:      input.Color,
		Emoji:      input.Emoji,
		IsPinned:   input.IsPinned,
	}
	if input.TargetDate != nil {
		day := models.DayOf(*input.TargetDate)
		tracker.TargetDate = &day
		return tracker
	}
	for _, weekday := range input.Weekdays {
		tracker.ScheduleEntries = append(tracker.ScheduleEntries, models.ScheduleEntry{Weekday: weekday})
	}
	return tracker
}

// AddTracker creates a tracker in the given category.
func (s *trackerService) AddTracker(input TrackerInput) (*models.Tracker, error) {
	if err := validateInput(&input); err != nil {
		return nil, err
	}

	tracker := input.toModel()
	if err := s.store.CreateTracker(tracker); err != nil {
		return nil, err
	}

	s.hub.NotifyMutation()
	return s.store.GetTracker(tracker.ID)
}

// UpdateTracker rewrites a tracker from the input. The weekday schedule
// is replaced wholesale, so dropping a weekday from the input drops it
// from storage.
func (s *trackerService) UpdateTracker(trackerID string, input TrackerInput) (*models.Tracker, error) {
	if err := validateInput(&input); err != nil {
		return nil, err
	}

	if _, err := s.store.GetTracker(trackerID); err != nil {
		return nil, err
	}

	tracker := input.toModel()
	tracker.ID = trackerID
	if err := s.store.UpdateTracker(tracker); err != nil {
		return nil, err
	}

	s.hub.NotifyMutation()
	return s.store.GetTracker(trackerID)
}

// DeleteTracker removes a tracker with its schedule entries and
// completion records.
func (s *trackerService) DeleteTracker(trackerID string) error {
	if err := s.store.DeleteTracker(trackerID); err != nil {
		return err
	}

	s.hub.NotifyMutation()
	return nil
}

// GetTrackerByID retrieves a tracker with its schedule and records.
func (s *trackerService) GetTrackerByID(trackerID string) (*models.Tracker, error) {
	return s.store.GetTracker(trackerID)
}
