package liveset

import (
	"reflect"
	"testing"

	"habitstore/internal/query"
)

func snap(sections ...query.Section) query.Snapshot {
	return query.Snapshot{Sections: sections}
}

func sec(title string, ids ...string) query.Section {
	items := make([]query.Item, len(ids))
	for i, id := range ids {
		items[i] = query.Item{ID: id, Fingerprint: "fp-" + id}
	}
	return query.Section{Title: title, Items: items}
}

func kinds(ops []Op) []OpKind {
	out := make([]OpKind, len(ops))
	for i, op := range ops {
		out[i] = op.Kind
	}
	return out
}

func assertRoundTrip(t *testing.T, oldSnap, newSnap query.Snapshot) {
	t.Helper()
	ops := Diff(oldSnap, newSnap)
	got := Apply(oldSnap, ops)
	if !reflect.DeepEqual(got, newSnap) {
		t.Errorf("applying diff did not reproduce new snapshot\nold: %+v\nnew: %+v\nops: %+v\ngot: %+v",
			oldSnap, newSnap, ops, got)
	}
}

func TestDiffBasics(t *testing.T) {
	t.Run("identical_snapshots_empty_diff", func(t *testing.T) {
		a := snap(sec("Sport", "r1", "r2"), sec("Work", "w1"))
		if ops := Diff(a, a.Clone()); len(ops) != 0 {
			t.Errorf("expected empty diff, got %+v", ops)
		}
	})

	t.Run("item_inserted", func(t *testing.T) {
		oldSnap := snap(sec("Sport", "r1"))
		newSnap := snap(sec("Sport", "r1", "r2"))
		ops := Diff(oldSnap, newSnap)
		if len(ops) != 1 || ops[0].Kind != OpItemInserted || ops[0].ID != "r2" || ops[0].Index != 1 {
			t.Errorf("expected single item insert at index 1, got %+v", ops)
		}
		assertRoundTrip(t, oldSnap, newSnap)
	})

	t.Run("item_deleted", func(t *testing.T) {
		oldSnap := snap(sec("Sport", "r1", "r2"))
		newSnap := snap(sec("Sport", "r1"))
		ops := Diff(oldSnap, newSnap)
		if len(ops) != 1 || ops[0].Kind != OpItemDeleted || ops[0].ID != "r2" {
			t.Errorf("expected single item delete, got %+v", ops)
		}
		assertRoundTrip(t, oldSnap, newSnap)
	})

	t.Run("last_item_removes_section", func(t *testing.T) {
		oldSnap := snap(sec("Sport", "r1"), sec("Work", "w1"))
		newSnap := snap(sec("Work", "w1"))
		ops := Diff(oldSnap, newSnap)
		// "Work" keeps its title and w1 keeps index 0 within it, so only
		// the vanished tracker and its section are touched.
		want := []OpKind{OpItemDeleted, OpSectionDeleted}
		if !reflect.DeepEqual(kinds(ops), want) {
			t.Errorf("expected kinds %v, got %+v", want, ops)
		}
		assertRoundTrip(t, oldSnap, newSnap)
	})

	t.Run("update_in_place", func(t *testing.T) {
		oldSnap := snap(sec("Sport", "r1"))
		newSnap := snap(query.Section{Title: "Sport", Items: []query.Item{{ID: "r1", Fingerprint: "changed"}}})
		ops := Diff(oldSnap, newSnap)
		if len(ops) != 1 || ops[0].Kind != OpItemUpdated || ops[0].Fingerprint != "changed" {
			t.Errorf("expected single update, got %+v", ops)
		}
		assertRoundTrip(t, oldSnap, newSnap)
	})

	t.Run("moved_and_updated_emits_both", func(t *testing.T) {
		oldSnap := snap(sec("Sport", "r1", "r2"))
		newSnap := snap(query.Section{Title: "Sport", Items: []query.Item{
			{ID: "r2", Fingerprint: "fp-r2"},
			{ID: "r1", Fingerprint: "changed"},
		}})
		ops := Diff(oldSnap, newSnap)
		want := []OpKind{OpItemMoved, OpItemMoved, OpItemUpdated}
		if !reflect.DeepEqual(kinds(ops), want) {
			t.Errorf("expected one move per repositioned item plus one update, got %+v", ops)
		}
		assertRoundTrip(t, oldSnap, newSnap)
	})

	t.Run("cross_section_move", func(t *testing.T) {
		oldSnap := snap(sec("Home", "d1"), sec("Sport", "r1"))
		newSnap := snap(sec("Home", "d1", "r1"))
		ops := Diff(oldSnap, newSnap)
		var move *Op
		for i := range ops {
			if ops[i].Kind == OpItemMoved {
				move = &ops[i]
			}
		}
		if move == nil || move.FromSection != "Sport" || move.Section != "Home" || move.Index != 1 {
			t.Errorf("expected move from Sport to Home index 1, got %+v", ops)
		}
		assertRoundTrip(t, oldSnap, newSnap)
	})
}

func TestDiffOpOrdering(t *testing.T) {
	// One change of every kind in a single diff: deletions must come
	// before insertions, insertions before moves, moves before updates.
	oldSnap := snap(
		sec("Gone", "g1"),
		sec("Sport", "r1", "r2"),
	)
	newSnap := snap(
		sec("New", "n1"),
		query.Section{Title: "Sport", Items: []query.Item{
			{ID: "r2", Fingerprint: "fp-r2"},
			{ID: "r1", Fingerprint: "changed"},
		}},
	)

	ops := Diff(oldSnap, newSnap)

	rank := map[OpKind]int{
		OpItemDeleted: 0, OpSectionDeleted: 0,
		OpSectionInserted: 1, OpItemInserted: 1,
		OpItemMoved:   2,
		OpItemUpdated: 3,
	}
	last := -1
	for _, op := range ops {
		r := rank[op.Kind]
		if r < last {
			t.Fatalf("operations out of order: %+v", ops)
		}
		last = r
	}
	assertRoundTrip(t, oldSnap, newSnap)
}

func TestDiffSectionRename(t *testing.T) {
	// A renamed category surfaces as delete+insert of the section with a
	// move per surviving tracker, never a full reset.
	oldSnap := snap(sec("Foo", "t1", "t2"))
	newSnap := snap(sec("Bar", "t1", "t2"))

	ops := Diff(oldSnap, newSnap)

	want := []OpKind{OpSectionDeleted, OpSectionInserted, OpItemMoved, OpItemMoved}
	if !reflect.DeepEqual(kinds(ops), want) {
		t.Errorf("expected kinds %v, got %+v", want, ops)
	}
	for _, op := range ops {
		if op.Kind == OpItemMoved && (op.FromSection != "Foo" || op.Section != "Bar") {
			t.Errorf("expected moves from Foo to Bar, got %+v", op)
		}
	}
	assertRoundTrip(t, oldSnap, newSnap)
}

func TestDiffRoundTrip(t *testing.T) {
	cases := []struct {
		name     string
		old, new query.Snapshot
	}{
		{"from_empty", snap(), snap(sec("Pinned", "p1"), sec("Sport", "r1", "r2"))},
		{"to_empty", snap(sec("Sport", "r1", "r2")), snap()},
		{"reorder_within_section", snap(sec("S", "a", "b", "c")), snap(sec("S", "c", "a", "b"))},
		{"swap_first_two", snap(sec("S", "a", "b")), snap(sec("S", "b", "a"))},
		{
			"mixed",
			snap(sec("A", "a1", "a2"), sec("B", "b1"), sec("C", "c1")),
			snap(sec("B", "a2", "b1", "b2"), sec("C", "c1"), sec("D", "d1")),
		},
		{
			"pinned_appears",
			snap(sec("Sport", "r1", "r2")),
			snap(sec("Pinned", "r2"), sec("Sport", "r1")),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assertRoundTrip(t, tc.old, tc.new)
		})
	}
}
