package models

// MaxTitleLength caps category and tracker titles, matching the input
// limit enforced by the app's editing screens.
const MaxTitleLength = 38

// Category represents a named grouping of trackers. Its title doubles as
// the section header in query results.
type Category struct {
	Base
	Title string `gorm:"uniqueIndex;not null" json:"title"`

	// Relationships
	Trackers []Tracker `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"trackers,omitempty"`
}
