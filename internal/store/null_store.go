package store

import (
	"time"

	apperrors "habitstore/internal/errors"
	"habitstore/internal/models"
)

// nullStore is the degraded fallback used when the database cannot be
// opened. Reads come back empty, writes fail with ErrStorageUnavailable,
// and the UI stays usable in a read-only/empty state.
type nullStore struct{}

// NewNullStore creates the no-op fallback Store.
func NewNullStore() Store {
	return nullStore{}
}

func (nullStore) CreateCategory(*models.Category) error { return apperrors.ErrStorageUnavailable }

func (nullStore) GetCategory(string) (*models.Category, error) {
	return nil, apperrors.ErrCategoryNotFound
}

func (nullStore) GetCategoryByTitle(string) (*models.Category, error) {
	return nil, apperrors.ErrCategoryNotFound
}

func (nullStore) ListCategories() ([]models.Category, error) { return nil, nil }

func (nullStore) RenameCategory(string, string) error { return apperrors.ErrStorageUnavailable }

func (nullStore) DeleteCategory(string) error { return apperrors.ErrStorageUnavailable }

func (nullStore) CreateTracker(*models.Tracker) error { return apperrors.ErrStorageUnavailable }

func (nullStore) GetTracker(string) (*models.Tracker, error) {
	return nil, apperrors.ErrTrackerNotFound
}

func (nullStore) ListTrackers() ([]models.Tracker, error) { return nil, nil }

func (nullStore) ListTrackersByCategory(string) ([]models.Tracker, error) { return nil, nil }

func (nullStore) UpdateTracker(*models.Tracker) error { return apperrors.ErrStorageUnavailable }

func (nullStore) DeleteTracker(string) error { return apperrors.ErrStorageUnavailable }

func (nullStore) CreateRecord(string, time.Time) error { return apperrors.ErrStorageUnavailable }

func (nullStore) DeleteRecord(string, time.Time) error { return apperrors.ErrStorageUnavailable }

func (nullStore) HasRecord(string, time.Time) (bool, error) { return false, nil }

func (nullStore) CountRecords() (int64, error) { return 0, nil }
