package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/roster"
)

type RosterRepository struct {
	mu    sync.RWMutex
	slots map[string]roster.DaySlot
}

func NewRosterRepository() *RosterRepository {
	return &RosterRepository{slots: make(map[string]roster.DaySlot)}
}

func (r *RosterRepository) ListByTeamDate(ctx context.Context, teamID string, date time.Time) ([]roster.DaySlot, error) {
	return r.ListByTeamRange(ctx, teamID, date, date)
}

func (r *RosterRepository) ListByTeamRange(_ context.Context, teamID string, from, to time.Time) ([]roster.DaySlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]roster.DaySlot, 0)
	for _, slot := range r.slots {
		if slot.TeamID != teamID || slot.Date.Before(from) || slot.Date.After(to) {
			continue
		}
		out = append(out, cloneSlot(slot))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out, nil
}

func (r *RosterRepository) UpsertUnlocked(_ context.Context, slots []roster.DaySlot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, slot := range slots {
		if existing, ok := r.slots[slot.Key()]; ok && existing.IsLocked {
			return roster.ErrSlotLocked
		}
	}
	for _, slot := range slots {
		slot.IsLocked = false
		slot.LockedAt = nil
		slot.Points = 0
		slot.Stats = nil
		r.slots[slot.Key()] = slot
	}
	return nil
}

func (r *RosterRepository) LockIfUnlocked(_ context.Context, req roster.LockRequest) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := req.Key()
	existing, ok := r.slots[key]
	if ok && existing.IsLocked {
		return false, nil
	}

	var prior *roster.DaySlot
	if ok {
		prior = &existing
	}
	r.slots[key] = req.Apply(prior)
	return true, nil
}

func cloneSlot(s roster.DaySlot) roster.DaySlot {
	s.Stats = s.Stats.Clone()
	if s.LockedAt != nil {
		v := *s.LockedAt
		s.LockedAt = &v
	}
	return s
}
