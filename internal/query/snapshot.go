package query

// PinnedSectionTitle is the reserved label for the synthetic section that
// collects pinned trackers. It always ranks before every category section.
const PinnedSectionTitle = "Pinned"

// Item is one tracker in a snapshot. Fingerprint summarizes the fields
// rendered by the UI (title, color, emoji, completion state for the query
// date); the differ compares fingerprints to detect in-place updates.
type Item struct {
	ID          string
	Fingerprint string
}

// Section is an ordered run of trackers under one section title.
type Section struct {
	Title string
	Items []Item
}

// Snapshot is the ordered result of one engine run: the pinned section
// first (when non-empty), then category sections in collation order, each
// holding trackers in title order.
type Snapshot struct {
	Sections []Section
}

// IsEmpty reports whether the snapshot has no sections.
func (s Snapshot) IsEmpty() bool { return len(s.Sections) == 0 }

// SectionTitles returns the ordered section titles.
func (s Snapshot) SectionTitles() []string {
	titles := make([]string, len(s.Sections))
	for i, sec := range s.Sections {
		titles[i] = sec.Title
	}
	return titles
}

// Find returns the (section, index) position of a tracker id, or ok=false.
func (s Snapshot) Find(id string) (section int, index int, ok bool) {
	for si, sec := range s.Sections {
		for ii, item := range sec.Items {
			if item.ID == id {
				return si, ii, true
			}
		}
	}
	return 0, 0, false
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{Sections: make([]Section, len(s.Sections))}
	for i, sec := range s.Sections {
		items := make([]Item, len(sec.Items))
		copy(items, sec.Items)
		out.Sections[i] = Section{Title: sec.Title, Items: items}
	}
	return out
}
