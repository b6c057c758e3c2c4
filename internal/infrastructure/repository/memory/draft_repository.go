package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/draft"
)

// DraftRepository keeps the pick log in memory. The active-draft guard reads
// the league repository it was built with.
type DraftRepository struct {
	mu      sync.Mutex
	leagues *LeagueRepository
	picks   map[string][]draft.Pick
}

func NewDraftRepository(leagues *LeagueRepository) *DraftRepository {
	return &DraftRepository{
		leagues: leagues,
		picks:   make(map[string][]draft.Pick),
	}
}

func (r *DraftRepository) ListPicks(_ context.Context, leagueID string) ([]draft.Pick, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.livePicks(leagueID), nil
}

func (r *DraftRepository) CountPicks(_ context.Context, leagueID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.livePicks(leagueID)), nil
}

func (r *DraftRepository) InsertPick(_ context.Context, pick draft.Pick) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.leagues != nil && r.leagues.draftStatus(pick.LeagueID) != draft.StatusActive {
		return false, nil
	}

	live := r.livePicks(pick.LeagueID)
	if len(live) != pick.PickNumber-1 {
		return false, nil
	}
	for _, p := range live {
		if p.PlayerID == pick.PlayerID {
			return false, nil
		}
	}

	pick.DeletedAt = nil
	r.picks[pick.LeagueID] = append(r.picks[pick.LeagueID], pick)
	return true, nil
}

func (r *DraftRepository) SoftDeleteLastPick(_ context.Context, leagueID string, deletedAt time.Time) (draft.Pick, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := r.picks[leagueID]
	last := -1
	for i, p := range rows {
		if p.DeletedAt != nil {
			continue
		}
		if last < 0 || p.PickNumber > rows[last].PickNumber {
			last = i
		}
	}
	if last < 0 {
		return draft.Pick{}, false, nil
	}

	at := deletedAt
	rows[last].DeletedAt = &at
	return rows[last], true, nil
}

func (r *DraftRepository) livePicks(leagueID string) []draft.Pick {
	out := make([]draft.Pick, 0, len(r.picks[leagueID]))
	for _, p := range r.picks[leagueID] {
		if p.DeletedAt == nil {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PickNumber < out[j].PickNumber })
	return out
}
