package models

import "time"

// Weekday numbers the days of the week, Sunday=1 through Saturday=7.
// This is the encoding persisted in schedule entries.
type Weekday int

const (
	Sunday Weekday = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// WeekdayOf converts a time.Weekday (Sunday=0) to the persisted encoding.
func WeekdayOf(d time.Weekday) Weekday {
	return Weekday(int(d) + 1)
}

// Valid reports whether w is in the Sunday..Saturday range.
func (w Weekday) Valid() bool {
	return w >= Sunday && w <= Saturday
}
