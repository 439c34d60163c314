package query

import (
	"time"

	"habitstore/internal/models"
	"habitstore/internal/predicate"
)

// Filter is one of the completion filters offered by the tracker list UI.
type Filter string

const (
	// FilterAll shows every tracker occurring on the reference date.
	FilterAll Filter = "all"
	// FilterToday behaves like FilterAll; selecting it also snaps the
	// reference date to the current day.
	FilterToday Filter = "today"
	// FilterCompleted shows trackers occurring on the reference date that
	// have a completion record for it.
	FilterCompleted Filter = "completed"
	// FilterNotCompleted shows trackers occurring on the reference date
	// without a completion record for it.
	FilterNotCompleted Filter = "not_completed"
)

// Valid reports whether f is a known filter.
func (f Filter) Valid() bool {
	switch f {
	case FilterAll, FilterToday, FilterCompleted, FilterNotCompleted:
		return true
	}
	return false
}

// Params are the inputs of one engine run.
type Params struct {
	Date   time.Time
	Filter Filter
	Search string
}

// NewParams builds params with the given reference date and the default
// filter and empty search.
func NewParams(date time.Time) Params {
	return Params{Date: models.DayOf(date), Filter: FilterAll}
}

// Matcher composes the predicate for these params. The completion filters
// narrow the occurrence predicate; the search text narrows everything.
func (p Params) Matcher() predicate.Matcher {
	var base predicate.Matcher
	switch p.Filter {
	case FilterCompleted:
		base = predicate.And(predicate.OccursOn(p.Date), predicate.IsCompletedOn(p.Date))
	case FilterNotCompleted:
		base = predicate.IsNotCompletedOn(p.Date)
	default:
		base = predicate.OccursOn(p.Date)
	}

	if p.Search == "" {
		return base
	}
	return predicate.And(base, predicate.MatchesSearch(p.Search))
}
