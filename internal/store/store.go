// Package store is the durable entity store for categories, trackers,
// schedule entries and completion records. All multi-row writes are
// transactional; partial state is never committed.
package store

import (
	"time"

	"habitstore/internal/models"
)

// Store is the persistence contract the rest of the core works against.
// The gorm implementation backs it with SQLite; NewNullStore provides the
// degraded fallback used when the database cannot be opened.
//
// Reads hand out value snapshots: callers own the returned structs and
// mutating them has no effect on stored state.
type Store interface {
	// Categories.
	CreateCategory(category *models.Category) error
	GetCategory(id string) (*models.Category, error)
	GetCategoryByTitle(title string) (*models.Category, error)
	ListCategories() ([]models.Category, error)
	RenameCategory(id, title string) error
	// DeleteCategory cascades to the category's trackers and their
	// schedule entries and completion records.
	DeleteCategory(id string) error

	// Trackers. Create and Update persist the tracker together with its
	// schedule entries in one transaction; Update replaces the existing
	// entries wholesale.
	CreateTracker(tracker *models.Tracker) error
	GetTracker(id string) (*models.Tracker, error)
	ListTrackers() ([]models.Tracker, error)
	ListTrackersByCategory(categoryID string) ([]models.Tracker, error)
	UpdateTracker(tracker *models.Tracker) error
	DeleteTracker(id string) error

	// Completion records. Dates are truncated to day granularity before
	// any lookup or write.
	CreateRecord(trackerID string, date time.Time) error
	DeleteRecord(trackerID string, date time.Time) error
	HasRecord(trackerID string, date time.Time) (bool, error)
	CountRecords() (int64, error)
}
