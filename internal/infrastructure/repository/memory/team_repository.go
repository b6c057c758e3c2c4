package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/team"
)

type TeamRepository struct {
	mu       sync.RWMutex
	byLeague map[string][]team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	byLeague := make(map[string][]team.Team)
	for _, t := range teams {
		byLeague[t.LeagueID] = append(byLeague[t.LeagueID], t)
	}
	return &TeamRepository{byLeague: byLeague}
}

func (r *TeamRepository) ListByLeague(_ context.Context, leagueID string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.byLeague[leagueID]), nil
}

func (r *TeamRepository) GetByID(_ context.Context, leagueID, teamID string) (team.Team, bool, error) {
	return r.find(leagueID, func(t team.Team) bool { return t.ID == teamID })
}

func (r *TeamRepository) GetByOwner(_ context.Context, leagueID, userID string) (team.Team, bool, error) {
	return r.find(leagueID, func(t team.Team) bool { return t.OwnerUserID == userID })
}

func (r *TeamRepository) find(leagueID string, match func(team.Team) bool) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	teams := r.byLeague[leagueID]
	if i := slices.IndexFunc(teams, match); i >= 0 {
		return teams[i], true, nil
	}
	return team.Team{}, false, nil
}

// Create mirrors the unique team id and one-team-per-owner constraints of
// the teams table.
func (r *TeamRepository) Create(_ context.Context, t team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byLeague[t.LeagueID] {
		switch {
		case existing.ID == t.ID:
			return fmt.Errorf("team %s already exists", t.ID)
		case existing.OwnerUserID == t.OwnerUserID:
			return fmt.Errorf("user %s already owns a team in league %s", t.OwnerUserID, t.LeagueID)
		}
	}
	r.byLeague[t.LeagueID] = append(r.byLeague[t.LeagueID], t)
	return nil
}
