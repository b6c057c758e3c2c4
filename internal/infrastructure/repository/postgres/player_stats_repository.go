package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/playerstats"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/scoring"
	qb "github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/querybuilder"
)

type PlayerStatsRepository struct {
	db *sqlx.DB
}

func NewPlayerStatsRepository(db *sqlx.DB) *PlayerStatsRepository {
	return &PlayerStatsRepository{db: db}
}

func (r *PlayerStatsRepository) ListByDate(ctx context.Context, date time.Time, playerIDs []string) (map[string]scoring.StatLine, error) {
	out := make(map[string]scoring.StatLine, len(playerIDs))
	if len(playerIDs) == 0 {
		return out, nil
	}

	query, args, err := qb.Select("player_public_id", "stats::text AS stats").
		From("player_day_stats").
		Where(
			qb.Eq("stat_date", dateParam(date)),
			qb.In("player_public_id", stringSliceToAny(playerIDs)),
		).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player day stats query: %w", err)
	}

	var rows []playerDayStatsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select player day stats: %w", err)
	}

	for _, row := range rows {
		var line scoring.StatLine
		if err := decodeJSON(row.Stats, &line); err != nil {
			return nil, fmt.Errorf("decode stats player=%s: %w", row.PlayerID, err)
		}
		out[row.PlayerID] = line
	}
	return out, nil
}

// Upsert replaces each (player, date) line. Corrections after a day locked
// are stored here and never reach the frozen roster slot.
func (r *PlayerStatsRepository) Upsert(ctx context.Context, stats []playerstats.DayStats) error {
	if len(stats) == 0 {
		return nil
	}

	builder := qb.InsertInto("player_day_stats").Columns("player_public_id", "stat_date", "game_public_id", "stats")
	for _, s := range dedupeLast(stats, func(s playerstats.DayStats) string { return s.PlayerID + "::" + dateParam(s.Date) }) {
		raw, err := encodeJSON(nonNilStats(s.Stats))
		if err != nil {
			return fmt.Errorf("encode stats player=%s: %w", s.PlayerID, err)
		}
		builder = builder.Values(s.PlayerID, dateParam(s.Date), optionalString(s.GameID), raw)
	}
	query, args, err := builder.Suffix(`ON CONFLICT (player_public_id, stat_date)
DO UPDATE SET
    game_public_id = EXCLUDED.game_public_id,
    stats = EXCLUDED.stats,
    updated_at = NOW()`).ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert player day stats query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert player day stats: %w", err)
	}
	return nil
}
