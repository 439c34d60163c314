package models

import "time"

// CompletionRecord marks a tracker as done on a specific day. At most one
// record exists per (tracker, day); Date is stored truncated to midnight
// UTC and the unique index enforces the pair.
type CompletionRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TrackerID string    `gorm:"type:uuid;not null;uniqueIndex:idx_record_tracker_date" json:"tracker_id"`
	Date      time.Time `gorm:"not null;uniqueIndex:idx_record_tracker_date" json:"date"`
	CreatedAt time.Time `json:"created_at"`
}
