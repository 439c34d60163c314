package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"habitstore/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestCategory creates a category with a unique title.
func CreateTestCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()
	return CreateTestCategoryWithTitle(t, db, fmt.Sprintf("Category %d", nextID()))
}

// CreateTestCategoryWithTitle creates a category with the given title.
func CreateTestCategoryWithTitle(t *testing.T, db *gorm.DB, title string) *models.Category {
	t.Helper()

	category := &models.Category{Title: title}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestTracker creates a regular tracker recurring on the given
// weekdays (every day when none are given).
func CreateTestTracker(t *testing.T, db *gorm.DB, categoryID string, weekdays ...models.Weekday) *models.Tracker {
	t.Helper()
	return CreateTestTrackerWithTitle(t, db, categoryID, fmt.Sprintf("Tracker %d", nextID()), weekdays...)
}

// CreateTestTrackerWithTitle creates a regular tracker with the given title.
func CreateTestTrackerWithTitle(t *testing.T, db *gorm.DB, categoryID, title string, weekdays ...models.Weekday) *models.Tracker {
	t.Helper()

	if len(weekdays) == 0 {
		weekdays = []models.Weekday{
			models.Sunday, models.Monday, models.Tuesday, models.Wednesday,
			models.Thursday, models.Friday, models.Saturday,
		}
	}

	tracker := &models.Tracker{
		CategoryID: categoryID,
		Title:      title,
		Color:      "#FF0000",
		Emoji:      "X",
	}
	for _, weekday := range weekdays {
		tracker.ScheduleEntries = append(tracker.ScheduleEntries, models.ScheduleEntry{Weekday: weekday})
	}

	if err := db.Create(tracker).Error; err != nil {
		t.Fatalf("failed to create test tracker: %v", err)
	}
	return tracker
}

// CreateTestSpecialTracker creates a one-shot tracker targeting the given date.
func CreateTestSpecialTracker(t *testing.T, db *gorm.DB, categoryID string, target time.Time) *models.Tracker {
	t.Helper()

	day := models.DayOf(target)
	tracker := &models.Tracker{
		CategoryID: categoryID,
		Title:      fmt.Sprintf("Special %d", nextID()),
		Color:      "#00FF00",
		Emoji:      "Y",
		TargetDate: &day,
	}
	if err := db.Create(tracker).Error; err != nil {
		t.Fatalf("failed to create test special tracker: %v", err)
	}
	return tracker
}

// CreateTestRecord marks a tracker completed on the given day.
func CreateTestRecord(t *testing.T, db *gorm.DB, trackerID string, date time.Time) *models.CompletionRecord {
	t.Helper()

	record := &models.CompletionRecord{TrackerID: trackerID, Date: models.DayOf(date)}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create test completion record: %v", err)
	}
	return record
}
