package models

import "time"

// Tracker represents a single habit or event being tracked. A tracker is
// either "regular" (it repeats on a set of weekdays, held as ScheduleEntry
// rows) or "special" (it happens once, on TargetDate). Exactly one of the
// two modes is present at any time; the store and services reject writes
// that would violate this.
type Tracker struct {
	Base
	CategoryID string     `gorm:"type:uuid;not null;index" json:"category_id"`
	Title      string     `gorm:"not null" json:"title"`
	Color      string     `json:"color"`
	Emoji      string     `json:"emoji"`
	IsPinned   bool       `gorm:"default:false" json:"is_pinned"`
	TargetDate *time.Time `json:"target_date,omitempty"`

	// Relationships
	Category        Category           `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	ScheduleEntries []ScheduleEntry    `gorm:"foreignKey:TrackerID;constraint:OnDelete:CASCADE" json:"schedule_entries,omitempty"`
	Records         []CompletionRecord `gorm:"foreignKey:TrackerID;constraint:OnDelete:CASCADE" json:"records,omitempty"`
}

// IsRegular reports whether the tracker repeats on a weekday schedule.
func (t *Tracker) IsRegular() bool {
	return t.TargetDate == nil
}

// Weekdays returns the tracker's recurring weekdays.
func (t *Tracker) Weekdays() []Weekday {
	days := make([]Weekday, 0, len(t.ScheduleEntries))
	for _, e := range t.ScheduleEntries {
		days = append(days, e.Weekday)
	}
	return days
}

// RecursOn reports whether the tracker's schedule includes the given weekday.
func (t *Tracker) RecursOn(day Weekday) bool {
	for _, e := range t.ScheduleEntries {
		if e.Weekday == day {
			return true
		}
	}
	return false
}

// CompletedOn reports whether a completion record exists for the given day.
// The date is truncated before comparison.
func (t *Tracker) CompletedOn(date time.Time) bool {
	day := DayOf(date)
	for _, r := range t.Records {
		if r.Date.Equal(day) {
			return true
		}
	}
	return false
}
