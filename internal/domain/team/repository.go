package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	// ListByLeague returns teams in insertion order.
	ListByLeague(ctx context.Context, leagueID string) ([]Team, error)
	GetByID(ctx context.Context, leagueID, teamID string) (Team, bool, error)
	GetByOwner(ctx context.Context, leagueID, userID string) (Team, bool, error)
	Create(ctx context.Context, t Team) error
}
