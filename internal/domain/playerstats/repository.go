package playerstats

import (
	"context"
	"time"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/scoring"
)

type Repository interface {
	// ListByDate returns stat lines keyed by player id. Players without a
	// line are simply absent.
	ListByDate(ctx context.Context, date time.Time, playerIDs []string) (map[string]scoring.StatLine, error)
	Upsert(ctx context.Context, stats []DayStats) error
}
