// Package liveset keeps a query snapshot synchronized with store
// mutations and publishes minimal change batches to an observer, so UI
// layers can animate incremental updates instead of reloading.
package liveset

import "habitstore/internal/query"

// OpKind enumerates the change operations a diff can emit.
type OpKind string

const (
	OpSectionDeleted  OpKind = "section_deleted"
	OpSectionInserted OpKind = "section_inserted"
	OpItemDeleted     OpKind = "item_deleted"
	OpItemInserted    OpKind = "item_inserted"
	OpItemMoved       OpKind = "item_moved"
	OpItemUpdated     OpKind = "item_updated"
)

// Op is a single change operation between two snapshots.
//
// Section and Index locate the op's target: the old position for deletes,
// the new position for inserts, moves and updates. Sections are addressed
// by title, which is stable across the index shifts that deletes and
// inserts cause while a batch is applied.
type Op struct {
	Kind         OpKind
	Section      string
	SectionIndex int
	ID           string
	Index        int
	Fingerprint  string
	// FromSection/FromIndex hold the old position for OpItemMoved.
	FromSection string
	FromIndex   int
}

type position struct {
	section      string
	sectionIndex int
	index        int
	fingerprint  string
}

func indexSnapshot(s query.Snapshot) map[string]position {
	positions := make(map[string]position)
	for si, sec := range s.Sections {
		for ii, item := range sec.Items {
			positions[item.ID] = position{
				section:      sec.Title,
				sectionIndex: si,
				index:        ii,
				fingerprint:  item.Fingerprint,
			}
		}
	}
	return positions
}

// Diff computes the ordered change batch turning old into new. Emission
// order follows UI batch-update expectations: deletions, then insertions,
// then moves, then updates. An item that both moved and changed content
// gets one move and one update, never a merged or dropped op.
func Diff(oldSnap, newSnap query.Snapshot) []Op {
	oldPos := indexSnapshot(oldSnap)
	newPos := indexSnapshot(newSnap)

	oldSections := make(map[string]int, len(oldSnap.Sections))
	for i, sec := range oldSnap.Sections {
		oldSections[sec.Title] = i
	}
	newSections := make(map[string]int, len(newSnap.Sections))
	for i, sec := range newSnap.Sections {
		newSections[sec.Title] = i
	}

	var deletes, inserts, moves, updates []Op

	for si, sec := range oldSnap.Sections {
		for ii, item := range sec.Items {
			if _, ok := newPos[item.ID]; ok {
				continue
			}
			deletes = append(deletes, Op{
				Kind:         OpItemDeleted,
				Section:      sec.Title,
				SectionIndex: si,
				ID:           item.ID,
				Index:        ii,
			})
		}
	}
	for si, sec := range oldSnap.Sections {
		if _, ok := newSections[sec.Title]; ok {
			continue
		}
		deletes = append(deletes, Op{
			Kind:         OpSectionDeleted,
			Section:      sec.Title,
			SectionIndex: si,
		})
	}

	for si, sec := range newSnap.Sections {
		if _, ok := oldSections[sec.Title]; ok {
			continue
		}
		inserts = append(inserts, Op{
			Kind:         OpSectionInserted,
			Section:      sec.Title,
			SectionIndex: si,
		})
	}
	for si, sec := range newSnap.Sections {
		for ii, item := range sec.Items {
			prev, existed := oldPos[item.ID]
			if !existed {
				inserts = append(inserts, Op{
					Kind:         OpItemInserted,
					Section:      sec.Title,
					SectionIndex: si,
					ID:           item.ID,
					Index:        ii,
					Fingerprint:  item.Fingerprint,
				})
				continue
			}
			if prev.section != sec.Title || prev.index != ii {
				moves = append(moves, Op{
					Kind:         OpItemMoved,
					Section:      sec.Title,
					SectionIndex: si,
					ID:           item.ID,
					Index:        ii,
					Fingerprint:  item.Fingerprint,
					FromSection:  prev.section,
					FromIndex:    prev.index,
				})
			}
			if prev.fingerprint != item.Fingerprint {
				updates = append(updates, Op{
					Kind:         OpItemUpdated,
					Section:      sec.Title,
					SectionIndex: si,
					ID:           item.ID,
					Index:        ii,
					Fingerprint:  item.Fingerprint,
				})
			}
		}
	}

	var ops []Op
	ops = append(ops, deletes...)
	ops = append(ops, inserts...)
	ops = append(ops, moves...)
	ops = append(ops, updates...)
	return ops
}

// Apply replays a change batch onto a snapshot and returns the result.
// Applying Diff(a, b) to a yields b. Consumers mirroring the snapshot in
// their own structures can follow the same steps.
func Apply(snap query.Snapshot, ops []Op) query.Snapshot {
	out := snap.Clone()

	sectionAt := func(title string) int {
		for i, sec := range out.Sections {
			if sec.Title == title {
				return i
			}
		}
		return -1
	}

	removeItem := func(id string) {
		for si := range out.Sections {
			items := out.Sections[si].Items
			for ii := range items {
				if items[ii].ID == id {
					out.Sections[si].Items = append(items[:ii:ii], items[ii+1:]...)
					return
				}
			}
		}
	}

	insertItem := func(title string, index int, item query.Item) {
		si := sectionAt(title)
		if si < 0 {
			return
		}
		items := out.Sections[si].Items
		if index > len(items) {
			index = len(items)
		}
		items = append(items[:index:index], append([]query.Item{item}, items[index:]...)...)
		out.Sections[si].Items = items
	}

	for _, op := range ops {
		switch op.Kind {
		case OpItemDeleted:
			removeItem(op.ID)
		case OpSectionDeleted:
			if si := sectionAt(op.Section); si >= 0 {
				out.Sections = append(out.Sections[:si:si], out.Sections[si+1:]...)
			}
		case OpSectionInserted:
			index := op.SectionIndex
			if index > len(out.Sections) {
				index = len(out.Sections)
			}
			out.Sections = append(out.Sections[:index:index],
				append([]query.Section{{Title: op.Section}}, out.Sections[index:]...)...)
		case OpItemInserted:
			insertItem(op.Section, op.Index, query.Item{ID: op.ID, Fingerprint: op.Fingerprint})
		case OpItemMoved:
			removeItem(op.ID)
			insertItem(op.Section, op.Index, query.Item{ID: op.ID, Fingerprint: op.Fingerprint})
		case OpItemUpdated:
			si := sectionAt(op.Section)
			if si < 0 || op.Index >= len(out.Sections[si].Items) {
				continue
			}
			out.Sections[si].Items[op.Index].Fingerprint = op.Fingerprint
		}
	}
	return out
}
