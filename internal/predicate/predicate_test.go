package predicate

import (
	"testing"
	"time"

	"habitstore/internal/models"
)

// 2024-01-01 is a Monday.
var (
	monday  = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tuesday = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
)

func regularTracker(title string, weekdays ...models.Weekday) *models.Tracker {
	tracker := &models.Tracker{Title: title}
	tracker.ID = "regular-" + title
	for _, weekday := range weekdays {
		tracker.ScheduleEntries = append(tracker.ScheduleEntries, models.ScheduleEntry{Weekday: weekday})
	}
	return tracker
}

func specialTracker(title string, target time.Time) *models.Tracker {
	day := models.DayOf(target)
	tracker := &models.Tracker{Title: title, TargetDate: &day}
	tracker.ID = "special-" + title
	return tracker
}

func TestOccursOn(t *testing.T) {
	t.Run("regular_matching_weekday", func(t *testing.T) {
		tracker := regularTracker("Run", models.Monday, models.Wednesday)
		if !OccursOn(monday)(tracker) {
			t.Error("expected tracker scheduled on Monday to occur on a Monday")
		}
	})

	t.Run("regular_other_weekday", func(t *testing.T) {
		tracker := regularTracker("Run", models.Monday, models.Wednesday)
		if OccursOn(tuesday)(tracker) {
			t.Error("expected tracker scheduled on Mon/Wed not to occur on a Tuesday")
		}
	})

	t.Run("special_target_date", func(t *testing.T) {
		tracker := specialTracker("Dentist", monday)
		if !OccursOn(monday)(tracker) {
			t.Error("expected special tracker to occur on its target date")
		}
		if OccursOn(tuesday)(tracker) {
			t.Error("expected special tracker not to occur on another date")
		}
	})

	t.Run("special_ignores_time_of_day", func(t *testing.T) {
		tracker := specialTracker("Dentist", monday)
		lateMonday := monday.Add(23*time.Hour + 59*time.Minute)
		if !OccursOn(lateMonday)(tracker) {
			t.Error("expected day-granular match regardless of time of day")
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		tracker := regularTracker("Run", models.Monday)
		matcher := OccursOn(monday)
		first := matcher(tracker)
		for i := 0; i < 10; i++ {
			if matcher(tracker) != first {
				t.Fatal("expected repeated evaluation to return the same result")
			}
		}
	})
}

func TestMatchesSearch(t *testing.T) {
	tracker := regularTracker("Morning Run", models.Monday)

	t.Run("case_insensitive_substring", func(t *testing.T) {
		if !MatchesSearch("run")(tracker) {
			t.Error("expected lowercased substring to match")
		}
		if !MatchesSearch("MORNING")(tracker) {
			t.Error("expected uppercased substring to match")
		}
	})

	t.Run("no_match", func(t *testing.T) {
		if MatchesSearch("swim")(tracker) {
			t.Error("expected unrelated text not to match")
		}
	})

	t.Run("empty_matches_everything", func(t *testing.T) {
		if !MatchesSearch("")(tracker) {
			t.Error("expected empty search to match")
		}
		if !MatchesSearch("   ")(tracker) {
			t.Error("expected whitespace-only search to match")
		}
	})
}

func TestCompletionMatchers(t *testing.T) {
	tracker := regularTracker("Run", models.Monday)
	tracker.Records = []models.CompletionRecord{{TrackerID: tracker.ID, Date: models.DayOf(monday)}}

	t.Run("is_completed_on", func(t *testing.T) {
		if !IsCompletedOn(monday)(tracker) {
			t.Error("expected completion record to match")
		}
		if IsCompletedOn(tuesday)(tracker) {
			t.Error("expected no completion record for Tuesday")
		}
	})

	t.Run("is_not_completed_on", func(t *testing.T) {
		if IsNotCompletedOn(monday)(tracker) {
			t.Error("expected completed tracker not to match notCompleted")
		}
	})

	t.Run("not_completed_requires_occurrence", func(t *testing.T) {
		// Occurs Mondays only: on a Tuesday it neither occurs nor counts
		// as "not completed".
		fresh := regularTracker("Read", models.Monday)
		if IsNotCompletedOn(tuesday)(fresh) {
			t.Error("expected notCompleted to be false on a day the tracker does not occur")
		}
		if !IsNotCompletedOn(monday)(fresh) {
			t.Error("expected uncompleted tracker to match notCompleted on its day")
		}
	})
}

func TestCombinators(t *testing.T) {
	tracker := regularTracker("Run", models.Monday)

	yes := func(*models.Tracker) bool { return true }
	no := func(*models.Tracker) bool { return false }

	t.Run("and", func(t *testing.T) {
		if !And(yes, yes)(tracker) {
			t.Error("expected And(yes, yes) to match")
		}
		if And(yes, no)(tracker) {
			t.Error("expected And(yes, no) not to match")
		}
		if !And()(tracker) {
			t.Error("expected empty And to match")
		}
	})

	t.Run("or", func(t *testing.T) {
		if !Or(no, yes)(tracker) {
			t.Error("expected Or(no, yes) to match")
		}
		if Or(no, no)(tracker) {
			t.Error("expected Or(no, no) not to match")
		}
		if Or()(tracker) {
			t.Error("expected empty Or not to match")
		}
	})
}
