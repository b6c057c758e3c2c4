package queue

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

var (
	ErrDuplicateEntry = errors.New("player already queued")
	ErrEntryNotFound  = errors.New("player not in queue")
	ErrEntryDrafted   = errors.New("drafted entries cannot be reordered")
)

// Entry is one row of a user's per-league draft wishlist. Positions are dense
// 0..N-1 after every mutation.
type Entry struct {
	UserID   string
	LeagueID string
	PlayerID string
	Position int
	AddedAt  time.Time
}

// Append adds playerID at the tail.
func Append(entries []Entry, e Entry) ([]Entry, error) {
	if indexOf(entries, e.PlayerID) >= 0 {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateEntry, e.PlayerID)
	}
	out := append(slices.Clone(entries), e)
	return Renumber(out), nil
}

// Remove drops playerID and closes the gap.
func Remove(entries []Entry, playerID string) ([]Entry, error) {
	idx := indexOf(entries, playerID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, playerID)
	}
	out := slices.Delete(slices.Clone(entries), idx, idx+1)
	return Renumber(out), nil
}

// Move places playerID at position to, shifting the entries in between.
// Positions past the tail clamp to the tail. Drafted entries cannot be moved.
func Move(entries []Entry, playerID string, to int, drafted map[string]struct{}) ([]Entry, error) {
	idx := indexOf(entries, playerID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, playerID)
	}
	if _, ok := drafted[playerID]; ok {
		return nil, fmt.Errorf("%w: %s", ErrEntryDrafted, playerID)
	}
	if to < 0 {
		return nil, fmt.Errorf("position must be >= 0, got %d", to)
	}

	out := slices.Clone(entries)
	entry := out[idx]
	out = slices.Delete(out, idx, idx+1)
	if to > len(out) {
		to = len(out)
	}
	out = slices.Insert(out, to, entry)
	return Renumber(out), nil
}

// PurgeDrafted removes every drafted entry.
func PurgeDrafted(entries []Entry, drafted map[string]struct{}) []Entry {
	out := slices.DeleteFunc(slices.Clone(entries), func(e Entry) bool {
		_, ok := drafted[e.PlayerID]
		return ok
	})
	return Renumber(out)
}

// NextEligible is the first entry whose player is still available.
func NextEligible(entries []Entry, drafted map[string]struct{}) (Entry, bool) {
	for _, e := range sorted(entries) {
		if _, ok := drafted[e.PlayerID]; ok {
			continue
		}
		return e, true
	}
	return Entry{}, false
}

// Renumber rewrites positions densely following slice order.
func Renumber(entries []Entry) []Entry {
	for i := range entries {
		entries[i].Position = i
	}
	return entries
}

// Sorted returns entries ordered by stored position.
func Sorted(entries []Entry) []Entry {
	return sorted(entries)
}

func sorted(entries []Entry) []Entry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b Entry) int { return a.Position - b.Position })
	return out
}

func indexOf(entries []Entry, playerID string) int {
	return slices.IndexFunc(entries, func(e Entry) bool { return e.PlayerID == playerID })
}
