package draft

import (
	"context"
	"time"
)

// Repository persists the pick log. Turn state is never stored; it is always
// derived from the count of non-deleted picks.
type Repository interface {
	// ListPicks returns non-deleted picks ordered by pick number.
	ListPicks(ctx context.Context, leagueID string) ([]Pick, error)
	CountPicks(ctx context.Context, leagueID string) (int, error)
	// InsertPick writes pick only if the league draft is active, exactly
	// pick.PickNumber-1 non-deleted picks exist and the player is still
	// available. inserted is false when any of those guards failed.
	InsertPick(ctx context.Context, pick Pick) (inserted bool, err error)
	// SoftDeleteLastPick marks the highest non-deleted pick as deleted.
	SoftDeleteLastPick(ctx context.Context, leagueID string, deletedAt time.Time) (Pick, bool, error)
}
