package usecase

import (
	"context"
	"fmt"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/league"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/matchup"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/team"
)

type MatchupService struct {
	leagueRepo  league.Repository
	teamRepo    team.Repository
	matchupRepo matchup.Repository
}

func NewMatchupService(leagueRepo league.Repository, teamRepo team.Repository, matchupRepo matchup.Repository) *MatchupService {
	return &MatchupService{
		leagueRepo:  leagueRepo,
		teamRepo:    teamRepo,
		matchupRepo: matchupRepo,
	}
}

// ListMatchups returns one week's matchups, or the whole season when week is 0.
func (s *MatchupService) ListMatchups(ctx context.Context, leagueID string, week int) ([]matchup.Matchup, error) {
	l, err := loadLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return nil, err
	}
	if week < 0 {
		return nil, fmt.Errorf("%w: week must be >= 1", ErrInvalidInput)
	}

	var items []matchup.Matchup
	if week == 0 {
		items, err = s.matchupRepo.ListByLeague(ctx, l.ID)
	} else {
		items, err = s.matchupRepo.ListByLeagueWeek(ctx, l.ID, week)
	}
	if err != nil {
		return nil, fmt.Errorf("list matchups: %w", err)
	}
	return items, nil
}

func (s *MatchupService) Standings(ctx context.Context, leagueID string) ([]matchup.Standing, error) {
	ctx, span := startSpan(ctx, "MatchupService.Standings", leagueAttr(leagueID))
	defer span.End()

	l, err := loadLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return nil, err
	}
	teams, err := s.teamRepo.ListByLeague(ctx, l.ID)
	if err != nil {
		return nil, fmt.Errorf("list teams by league: %w", err)
	}
	items, err := s.matchupRepo.ListByLeague(ctx, l.ID)
	if err != nil {
		return nil, fmt.Errorf("list matchups: %w", err)
	}

	teamIDs := make([]string, 0, len(teams))
	for _, t := range teams {
		teamIDs = append(teamIDs, t.ID)
	}
	return matchup.ComputeStandings(teamIDs, items), nil
}
