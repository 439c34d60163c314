// Package services is the mutation API of the habit store. Every write
// goes through a service, which validates the data-model invariants,
// delegates to the entity store, and notifies the subscribed live result
// sets on success. UI layers never write to storage directly.
package services

import (
	"time"

	"habitstore/internal/models"
)

// TrackerInput carries the fields for creating or updating a tracker.
// Exactly one of Weekdays (non-empty) or TargetDate must be set: a
// tracker either repeats on a weekday schedule or targets a single day.
type TrackerInput struct {
	Title      string          `validate:"required,max=38"`
	Color      string          `validate:"omitempty,hex_color"`
	Emoji      string          `validate:"omitempty,emoji"`
	IsPinned   bool            `validate:"-"`
	CategoryID string          `validate:"required,uuid"`
	Weekdays   []models.Weekday `validate:"omitempty,dive,weekday"`
	TargetDate *time.Time      `validate:"-"`
}

// CategoryServicer defines the contract for category mutations.
type CategoryServicer interface {
	AddCategory(title string) (*models.Category, error)
	RenameCategory(categoryID, title string) (*models.Category, error)
	// DeleteCategory removes the category and cascades to its trackers.
	DeleteCategory(categoryID string) error
	GetCategoryByID(categoryID string) (*models.Category, error)
	ListCategories() ([]models.Category, error)
}

// TrackerServicer defines the contract for tracker mutations.
type TrackerServicer interface {
	AddTracker(input TrackerInput) (*models.Tracker, error)
	UpdateTracker(trackerID string, input TrackerInput) (*models.Tracker, error)
	DeleteTracker(trackerID string) error
	GetTrackerByID(trackerID string) (*models.Tracker, error)
}

// CompletionServicer defines the contract for completion-record mutations
// and the statistics read model built on them.
type CompletionServicer interface {
	// ToggleCompletion flips the completion state of (trackerID, date)
	// and returns the resulting state. Toggling twice restores the
	// original state; duplicates are never created.
	ToggleCompletion(trackerID string, date time.Time) (bool, error)
	IsCompleted(trackerID string, date time.Time) (bool, error)
	CompletedCount() (int64, error)
}
