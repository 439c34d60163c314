package models

// ScheduleEntry is one weekday a regular tracker recurs on. Entries for a
// tracker are always replaced wholesale (delete then insert) when its
// schedule changes, never patched row by row.
type ScheduleEntry struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	TrackerID string  `gorm:"type:uuid;not null;uniqueIndex:idx_schedule_tracker_weekday" json:"tracker_id"`
	Weekday   Weekday `gorm:"not null;uniqueIndex:idx_schedule_tracker_weekday" json:"weekday"`
}
