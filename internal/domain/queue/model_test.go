package queue

import (
	"errors"
	"testing"
)

func build(t *testing.T, players ...string) []Entry {
	t.Helper()

	var (
		out []Entry
		err error
	)
	for _, p := range players {
		out, err = Append(out, Entry{UserID: "u1", LeagueID: "l1", PlayerID: p})
		if err != nil {
			t.Fatalf("append %s: %v", p, err)
		}
	}
	return out
}

func players(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.PlayerID
	}
	return out
}

func assertDense(t *testing.T, entries []Entry) {
	t.Helper()
	for i, e := range entries {
		if e.Position != i {
			t.Fatalf("position gap at %d: %+v", i, entries)
		}
	}
}

func assertOrder(t *testing.T, entries []Entry, want ...string) {
	t.Helper()
	got := players(entries)
	if len(got) != len(want) {
		t.Fatalf("unexpected queue: got=%v want=%v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected queue: got=%v want=%v", got, want)
		}
	}
	assertDense(t, entries)
}

func TestAppend_RejectsDuplicates(t *testing.T) {
	t.Parallel()

	entries := build(t, "a", "b")
	if _, err := Append(entries, Entry{PlayerID: "a"}); !errors.Is(err, ErrDuplicateEntry) {
		t.Fatalf("expected ErrDuplicateEntry, got %v", err)
	}
	assertOrder(t, entries, "a", "b")
}

func TestRemove_RenumbersDensely(t *testing.T) {
	t.Parallel()

	entries, err := Remove(build(t, "a", "b", "c", "d"), "b")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	assertOrder(t, entries, "a", "c", "d")

	if _, err := Remove(entries, "zz"); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestMove(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		player string
		to     int
		want   []string
	}{
		{name: "down", player: "a", to: 2, want: []string{"b", "c", "a", "d", "e"}},
		{name: "up", player: "d", to: 0, want: []string{"d", "a", "b", "c", "e"}},
		{name: "same", player: "c", to: 2, want: []string{"a", "b", "c", "d", "e"}},
		{name: "clamp tail", player: "b", to: 99, want: []string{"a", "c", "d", "e", "b"}},
	}
	for _, tc := range cases {
		got, err := Move(build(t, "a", "b", "c", "d", "e"), tc.player, tc.to, nil)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		assertOrder(t, got, tc.want...)
	}
}

func TestMove_RejectsDraftedEntry(t *testing.T) {
	t.Parallel()

	drafted := map[string]struct{}{"b": {}}
	if _, err := Move(build(t, "a", "b", "c"), "b", 0, drafted); !errors.Is(err, ErrEntryDrafted) {
		t.Fatalf("expected ErrEntryDrafted, got %v", err)
	}
	if _, err := Move(build(t, "a"), "a", -1, nil); err == nil {
		t.Fatalf("expected error for negative position")
	}
}

func TestNextEligible_SkipsDrafted(t *testing.T) {
	t.Parallel()

	entries := build(t, "a", "b", "c")
	drafted := map[string]struct{}{"a": {}, "b": {}}

	next, ok := NextEligible(entries, drafted)
	if !ok || next.PlayerID != "c" {
		t.Fatalf("unexpected next eligible: %+v ok=%v", next, ok)
	}

	drafted["c"] = struct{}{}
	if _, ok := NextEligible(entries, drafted); ok {
		t.Fatalf("expected no eligible entry")
	}
}

func TestPurgeDrafted(t *testing.T) {
	t.Parallel()

	entries := PurgeDrafted(build(t, "a", "b", "c", "d"), map[string]struct{}{"a": {}, "c": {}})
	assertOrder(t, entries, "b", "d")
}
