package matchup

import "context"

type Repository interface {
	ListByLeague(ctx context.Context, leagueID string) ([]Matchup, error)
	ListByLeagueWeek(ctx context.Context, leagueID string, week int) ([]Matchup, error)
	Create(ctx context.Context, matchups []Matchup) error
	// UpdateScores applies u unless the stored row already reflects more
	// locked days. Stored status is never moved backwards.
	UpdateScores(ctx context.Context, u ScoreUpdate) (bool, error)
}
