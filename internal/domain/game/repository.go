package game

import (
	"context"
	"time"
)

// Repository exposes the ingested schedule.
type Repository interface {
	ListByDate(ctx context.Context, date time.Time) ([]Game, error)
	Upsert(ctx context.Context, games []Game) error
	// MarkSynced records that the full schedule for date has been ingested,
	// including the case where it has no games.
	MarkSynced(ctx context.Context, date, at time.Time) error
	IsSynced(ctx context.Context, date time.Time) (bool, error)
}
