// Package query executes tracker queries against the entity store and
// arranges the matches into the ordered section/item snapshot consumed by
// the live result set.
package query

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"habitstore/internal/models"
	"habitstore/internal/store"
)

// Engine runs queries. It is stateless apart from its store handle and
// collator; identical store contents and params always produce the same
// snapshot.
type Engine struct {
	store    store.Store
	collator *collate.Collator
}

// NewEngine creates an engine ordering titles with the given BCP-47
// locale. An unparseable locale falls back to English collation.
func NewEngine(s store.Store, locale string) *Engine {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Engine{
		store:    s,
		collator: collate.New(tag),
	}
}

// Run fetches all trackers, applies the params' predicate, and groups the
// matches: pinned trackers into the reserved pinned section first, the
// rest under their category's title in collation order.
func (e *Engine) Run(params Params) (Snapshot, error) {
	trackers, err := e.store.ListTrackers()
	if err != nil {
		return Snapshot{}, err
	}

	matcher := params.Matcher()

	type bucket struct {
		title    string
		trackers []models.Tracker
	}
	var pinned []models.Tracker
	byTitle := make(map[string]*bucket)

	for _, tracker := range trackers {
		if !matcher(&tracker) {
			continue
		}
		if tracker.IsPinned {
			pinned = append(pinned, tracker)
			continue
		}
		title := tracker.Category.Title
		b, ok := byTitle[title]
		if !ok {
			b = &bucket{title: title}
			byTitle[title] = b
		}
		b.trackers = append(b.trackers, tracker)
	}

	buckets := make([]*bucket, 0, len(byTitle))
	for _, b := range byTitle {
		buckets = append(buckets, b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return e.collator.CompareString(buckets[i].title, buckets[j].title) < 0
	})

	var snapshot Snapshot
	if len(pinned) > 0 {
		snapshot.Sections = append(snapshot.Sections, e.section(PinnedSectionTitle, pinned, params))
	}
	for _, b := range buckets {
		snapshot.Sections = append(snapshot.Sections, e.section(b.title, b.trackers, params))
	}
	return snapshot, nil
}

// section sorts trackers by title (id as tie-break, so equal titles still
// order deterministically) and materializes the items.
func (e *Engine) section(title string, trackers []models.Tracker, params Params) Section {
	sort.Slice(trackers, func(i, j int) bool {
		if c := e.collator.CompareString(trackers[i].Title, trackers[j].Title); c != 0 {
			return c < 0
		}
		return trackers[i].ID < trackers[j].ID
	})

	items := make([]Item, len(trackers))
	for i, tracker := range trackers {
		items[i] = Item{
			ID:          tracker.ID,
			Fingerprint: fingerprint(&tracker, params),
		}
	}
	return Section{Title: title, Items: items}
}

// fingerprint captures the fields whose change should surface as an
// item update: title, color, emoji, and completion state for the query
// date. Placement-only changes (pin, category) are covered by moves.
func fingerprint(tracker *models.Tracker, params Params) string {
	return fmt.Sprintf("%s|%s|%s|%t",
		tracker.Title, tracker.Color, tracker.Emoji, tracker.CompletedOn(params.Date))
}
