package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "habitstore/internal/errors"
	"habitstore/internal/models"
)

// gormStore is the SQLite-backed Store implementation.
type gormStore struct {
	db *gorm.DB
}

// New creates a Store backed by the given database handle.
func New(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// validateMode enforces the schedule-XOR-target-date invariant before any
// tracker write reaches the database.
func validateMode(tracker *models.Tracker) error {
	hasSchedule := len(tracker.ScheduleEntries) > 0
	hasTarget := tracker.TargetDate != nil
	if hasSchedule == hasTarget {
		return apperrors.ErrScheduleConflict
	}
	return nil
}

func (s *gormStore) CreateCategory(category *models.Category) error {
	var count int64
	if err := s.db.Model(&models.Category{}).Where("title = ?", category.Title).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternal, err)
	}
	if count > 0 {
		return apperrors.ErrDuplicateTitle
	}

	if err := s.db.Create(category).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return nil
}

func (s *gormStore) GetCategory(id string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return &category, nil
}

func (s *gormStore) GetCategoryByTitle(title string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("title = ?", title).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return &category, nil
}

func (s *gormStore) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("title").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return categories, nil
}

func (s *gormStore) RenameCategory(id, title string) error {
	var count int64
	if err := s.db.Model(&models.Category{}).Where("title = ? AND id <> ?", title, id).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternal, err)
	}
	if count > 0 {
		return apperrors.ErrDuplicateTitle
	}

	result := s.db.Model(&models.Category{}).Where("id = ?", id).Update("title", title)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternal, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrCategoryNotFound
	}
	return nil
}

// DeleteCategory removes the category and everything hanging off it. The
// cascade is spelled out as explicit foreign-key deletes inside one
// transaction rather than left to the driver.
func (s *gormStore) DeleteCategory(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.Where("id = ?", id).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrCategoryNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternal, err)
		}

		var trackerIDs []string
		if err := tx.Model(&models.Tracker{}).Where("category_id = ?", id).Pluck("id", &trackerIDs).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternal, err)
		}

		if len(trackerIDs) > 0 {
			if err := tx.Where("tracker_id IN ?", trackerIDs).Delete(&models.CompletionRecord{}).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternal, err)
			}
			if err := tx.Where("tracker_id IN ?", trackerIDs).Delete(&models.ScheduleEntry{}).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternal, err)
			}
			if err := tx.Where("id IN ?", trackerIDs).Delete(&models.Tracker{}).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternal, err)
			}
		}

		if err := tx.Delete(&category).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternal, err)
		}
		return nil
	})
}

func (s *gormStore) CreateTracker(tracker *models.Tracker) error {
	if err := validateMode(tracker); err != nil {
		return err
	}
	if tracker.TargetDate != nil {
		day := models.DayOf(*tracker.TargetDate)
		tracker.TargetDate = &day
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Category{}).Where("id = ?", tracker.CategoryID).Count(&count).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternal, err)
		}
		if count == 0 {
			return apperrors.ErrCategoryNotFound
		}

		// Creates the schedule entries along with the tracker row.
		if err := tx.Create(tracker).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternal, err)
		}
		return nil
	})
}

func (s *gormStore) GetTracker(id string) (*models.Tracker, error) {
	var tracker models.Tracker
	err := s.db.Preload("ScheduleEntries").Preload("Records").Where("id = ?", id).First(&tracker).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTrackerNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return &tracker, nil
}

func (s *gormStore) ListTrackers() ([]models.Tracker, error) {
	var trackers []models.Tracker
	err := s.db.Preload("ScheduleEntries").Preload("Records").Preload("Category").
		Order("id").Find(&trackers).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return trackers, nil
}

func (s *gormStore) ListTrackersByCategory(categoryID string) ([]models.Tracker, error) {
	var trackers []models.Tracker
	err := s.db.Preload("ScheduleEntries").Preload("Records").
		Where("category_id = ?", categoryID).Order("id").Find(&trackers).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return trackers, nil
}

// UpdateTracker rewrites the tracker's scalar fields and replaces its
// schedule entries wholesale, all in one transaction. Replacing instead of
// patching keeps stale weekday rows from surviving a schedule edit.
func (s *gormStore) UpdateTracker(tracker *models.Tracker) error {
	if err := validateMode(tracker); err != nil {
		return err
	}
	if tracker.TargetDate != nil {
		day := models.DayOf(*tracker.TargetDate)
		tracker.TargetDate = &day
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Category{}).Where("id = ?", tracker.CategoryID).Count(&count).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternal, err)
		}
		if count == 0 {
			return apperrors.ErrCategoryNotFound
		}

		updates := map[string]interface{}{
			"title":       tracker.Title,
			"color":       tracker.Color,
			"emoji":       tracker.Emoji,
			"is_pinned":   tracker.IsPinned,
			"category_id": tracker.CategoryID,
			"target_date": tracker.TargetDate,
		}
		result := tx.Model(&models.Tracker{}).Where("id = ?", tracker.ID).Updates(updates)
		if result.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternal, result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrTrackerNotFound
		}

		if err := tx.Where("tracker_id = ?", tracker.ID).Delete(&models.ScheduleEntry{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternal, err)
		}
		if len(tracker.ScheduleEntries) > 0 {
			entries := make([]models.ScheduleEntry, len(tracker.ScheduleEntries))
			for i, e := range tracker.ScheduleEntries {
				entries[i] = models.ScheduleEntry{TrackerID: tracker.ID, Weekday: e.Weekday}
			}
			if err := tx.Create(&entries).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternal, err)
			}
		}
		return nil
	})
}

func (s *gormStore) DeleteTracker(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var tracker models.Tracker
		if err := tx.Where("id = ?", id).First(&tracker).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTrackerNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternal, err)
		}

		if err := tx.Where("tracker_id = ?", id).Delete(&models.CompletionRecord{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternal, err)
		}
		if err := tx.Where("tracker_id = ?", id).Delete(&models.ScheduleEntry{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternal, err)
		}
		if err := tx.Delete(&tracker).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternal, err)
		}
		return nil
	})
}

// CreateRecord inserts a completion record for (trackerID, day). Inserting
// a duplicate is a no-op, never a second row.
func (s *gormStore) CreateRecord(trackerID string, date time.Time) error {
	day := models.DayOf(date)

	return s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Tracker{}).Where("id = ?", trackerID).Count(&count).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternal, err)
		}
		if count == 0 {
			return apperrors.ErrTrackerNotFound
		}

		if err := tx.Model(&models.CompletionRecord{}).
			Where("tracker_id = ? AND date = ?", trackerID, day).Count(&count).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternal, err)
		}
		if count > 0 {
			return nil
		}

		record := models.CompletionRecord{TrackerID: trackerID, Date: day}
		if err := tx.Create(&record).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternal, err)
		}
		return nil
	})
}

func (s *gormStore) DeleteRecord(trackerID string, date time.Time) error {
	day := models.DayOf(date)
	if err := s.db.Where("tracker_id = ? AND date = ?", trackerID, day).
		Delete(&models.CompletionRecord{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return nil
}

func (s *gormStore) HasRecord(trackerID string, date time.Time) (bool, error) {
	day := models.DayOf(date)
	var count int64
	if err := s.db.Model(&models.CompletionRecord{}).
		Where("tracker_id = ? AND date = ?", trackerID, day).Count(&count).Error; err != nil {
		return false, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return count > 0, nil
}

func (s *gormStore) CountRecords() (int64, error) {
	var count int64
	if err := s.db.Model(&models.CompletionRecord{}).Count(&count).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return count, nil
}
