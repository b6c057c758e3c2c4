package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/draft"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/league"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/scoring"
)

type LeagueRepository struct {
	mu     sync.RWMutex
	items  map[string]league.League
	orders []string
}

func NewLeagueRepository(leagues []league.League) *LeagueRepository {
	items := make(map[string]league.League, len(leagues))
	orders := make([]string, 0, len(leagues))

	for _, l := range leagues {
		items[l.ID] = cloneLeague(l)
		orders = append(orders, l.ID)
	}

	return &LeagueRepository{
		items:  items,
		orders: orders,
	}
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, cloneLeague(r.items[id]))
	}

	return out, nil
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.items[leagueID]
	if !ok {
		return league.League{}, false, nil
	}

	return cloneLeague(l), true, nil
}

func (r *LeagueRepository) Create(_ context.Context, l league.League) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[l.ID]; exists {
		return fmt.Errorf("league %s already exists", l.ID)
	}
	r.items[l.ID] = cloneLeague(l)
	r.orders = append(r.orders, l.ID)
	return nil
}

func (r *LeagueRepository) TransitionDraft(_ context.Context, t league.DraftTransition) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.items[t.LeagueID]
	if !ok || l.DraftStatus != t.From {
		return false, nil
	}

	l.DraftStatus = t.To
	if len(t.FrozenOrder) > 0 {
		l.FrozenOrder = slices.Clone(t.FrozenOrder)
	}
	if t.StartedAt != nil {
		startedAt := *t.StartedAt
		l.DraftStartedAt = &startedAt
	}
	if t.CompletedAt != nil {
		completedAt := *t.CompletedAt
		l.DraftCompletedAt = &completedAt
	}
	l.UpdatedAt = t.At
	r.items[l.ID] = l
	return true, nil
}

func (r *LeagueRepository) UpdateDraftOrder(_ context.Context, leagueID string, customOrder []string, randomize bool) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.items[leagueID]
	if !ok {
		return false, nil
	}
	if l.DraftStatus != draft.StatusNotStarted && l.DraftStatus != draft.StatusLobby {
		return false, nil
	}

	l.CustomOrder = slices.Clone(customOrder)
	l.RandomizeOrder = randomize
	r.items[leagueID] = l
	return true, nil
}

func (r *LeagueRepository) UpdateScoringWeights(_ context.Context, leagueID string, schedule scoring.WeightSchedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.items[leagueID]
	if !ok {
		return fmt.Errorf("league %s not found", leagueID)
	}
	l.Weights = cloneSchedule(schedule)
	r.items[leagueID] = l
	return nil
}

// draftStatus is read by DraftRepository to guard inserts the way the SQL
// EXISTS clause does.
func (r *LeagueRepository) draftStatus(leagueID string) draft.Status {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.items[leagueID].DraftStatus
}

func cloneLeague(l league.League) league.League {
	l.CustomOrder = slices.Clone(l.CustomOrder)
	l.FrozenOrder = slices.Clone(l.FrozenOrder)
	l.Weights = cloneSchedule(l.Weights)
	if l.DraftStartedAt != nil {
		v := *l.DraftStartedAt
		l.DraftStartedAt = &v
	}
	if l.DraftCompletedAt != nil {
		v := *l.DraftCompletedAt
		l.DraftCompletedAt = &v
	}
	return l
}

func cloneSchedule(s scoring.WeightSchedule) scoring.WeightSchedule {
	if s == nil {
		return nil
	}
	out := make(scoring.WeightSchedule, len(s))
	for i, v := range s {
		out[i] = scoring.WeightVersion{EffectiveFromWeek: v.EffectiveFromWeek, Weights: v.Weights.Clone()}
	}
	return out
}
