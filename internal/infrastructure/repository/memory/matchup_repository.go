package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/matchup"
)

type MatchupRepository struct {
	mu    sync.RWMutex
	items map[string]matchup.Matchup
}

func NewMatchupRepository(matchups []matchup.Matchup) *MatchupRepository {
	items := make(map[string]matchup.Matchup, len(matchups))
	for _, m := range matchups {
		items[m.ID] = m
	}
	return &MatchupRepository{items: items}
}

func (r *MatchupRepository) ListByLeague(_ context.Context, leagueID string) ([]matchup.Matchup, error) {
	return r.list(func(m matchup.Matchup) bool { return m.LeagueID == leagueID }), nil
}

func (r *MatchupRepository) ListByLeagueWeek(_ context.Context, leagueID string, week int) ([]matchup.Matchup, error) {
	return r.list(func(m matchup.Matchup) bool { return m.LeagueID == leagueID && m.Week == week }), nil
}

func (r *MatchupRepository) Create(_ context.Context, matchups []matchup.Matchup) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range matchups {
		if _, exists := r.items[m.ID]; exists {
			return fmt.Errorf("matchup %s already exists", m.ID)
		}
	}
	for _, m := range matchups {
		r.items[m.ID] = m
	}
	return nil
}

func (r *MatchupRepository) UpdateScores(_ context.Context, u matchup.ScoreUpdate) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.items[u.MatchupID]
	if !ok || m.LockedSlots > u.LockedSlots {
		return false, nil
	}

	m.ScoreA = u.ScoreA
	m.ScoreB = u.ScoreB
	m.LockedDays = u.LockedDays
	m.LockedSlots = u.LockedSlots
	m.Status = matchup.Advance(m.Status, u.Status)
	m.UpdatedAt = u.At
	r.items[m.ID] = m
	return true, nil
}

func (r *MatchupRepository) list(keep func(matchup.Matchup) bool) []matchup.Matchup {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]matchup.Matchup, 0)
	for _, m := range r.items {
		if keep(m) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Week != out[j].Week {
			return out[i].Week < out[j].Week
		}
		return out[i].ID < out[j].ID
	})
	return out
}
