// Package predicate builds pure matching functions over trackers. A
// matcher inspects only the tracker value snapshot it is given (including
// its preloaded schedule entries and completion records), so evaluation is
// side-effect free and deterministic.
package predicate

import (
	"strings"
	"time"

	"habitstore/internal/models"
)

// Matcher reports whether a tracker belongs in a result set.
type Matcher func(tracker *models.Tracker) bool

// OccursOn matches trackers active on the given date: special trackers
// whose target date is that day, and regular trackers whose schedule
// includes that day's weekday.
func OccursOn(date time.Time) Matcher {
	day := models.DayOf(date)
	weekday := models.WeekdayOf(date.Weekday())

	return func(tracker *models.Tracker) bool {
		if tracker.TargetDate != nil {
			return tracker.TargetDate.Equal(day)
		}
		return tracker.RecursOn(weekday)
	}
}

// MatchesSearch matches trackers whose title contains text,
// case-insensitively. Empty text matches everything.
func MatchesSearch(text string) Matcher {
	needle := strings.ToLower(strings.TrimSpace(text))

	return func(tracker *models.Tracker) bool {
		if needle == "" {
			return true
		}
		return strings.Contains(strings.ToLower(tracker.Title), needle)
	}
}

// IsCompletedOn matches trackers with a completion record for the given day.
func IsCompletedOn(date time.Time) Matcher {
	return func(tracker *models.Tracker) bool {
		return tracker.CompletedOn(date)
	}
}

// IsNotCompletedOn matches trackers that occur on the given day and have
// no completion record for it.
func IsNotCompletedOn(date time.Time) Matcher {
	occurs := OccursOn(date)

	return func(tracker *models.Tracker) bool {
		return occurs(tracker) && !tracker.CompletedOn(date)
	}
}

// And matches when every given matcher matches. With no arguments it
// matches everything.
func And(matchers ...Matcher) Matcher {
	return func(tracker *models.Tracker) bool {
		for _, m := range matchers {
			if !m(tracker) {
				return false
			}
		}
		return true
	}
}

// Or matches when at least one given matcher matches. With no arguments it
// matches nothing.
func Or(matchers ...Matcher) Matcher {
	return func(tracker *models.Tracker) bool {
		for _, m := range matchers {
			if m(tracker) {
				return true
			}
		}
		return false
	}
}
