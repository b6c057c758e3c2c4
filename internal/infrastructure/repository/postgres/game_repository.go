package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/game"
	qb "github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/querybuilder"
)

type GameRepository struct {
	db *sqlx.DB
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) ListByDate(ctx context.Context, date time.Time) ([]game.Game, error) {
	query, args, err := qb.Select("public_id", "game_date", "home_team", "away_team", "starts_at", "status").
		From("games").
		Where(qb.Eq("game_date", dateParam(date))).
		OrderBy("starts_at", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select games by date query: %w", err)
	}

	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select games by date: %w", err)
	}

	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		g := game.Game{
			ID:       row.PublicID,
			Date:     civilDate(row.GameDate),
			HomeTeam: row.HomeTeam,
			AwayTeam: row.AwayTeam,
			Status:   game.NormalizeStatus(row.Status),
		}
		if row.StartsAt != nil {
			g.StartsAt = row.StartsAt.UTC()
		}
		out = append(out, g)
	}
	return out, nil
}

// Upsert keeps the latest provider view of each game. A postponed game moved
// to another date follows its new game_date.
func (r *GameRepository) Upsert(ctx context.Context, games []game.Game) error {
	if len(games) == 0 {
		return nil
	}

	builder := qb.InsertInto("games").Columns("public_id", "game_date", "home_team", "away_team", "starts_at", "status")
	for _, g := range dedupeLast(games, func(g game.Game) string { return g.ID }) {
		var startsAt *time.Time
		if !g.StartsAt.IsZero() {
			startsAt = nullableTime(&g.StartsAt)
		}
		builder = builder.Values(g.ID, dateParam(g.Date), g.HomeTeam, g.AwayTeam, startsAt, game.NormalizeStatus(g.Status))
	}
	query, args, err := builder.Suffix(`ON CONFLICT (public_id)
DO UPDATE SET
    game_date = EXCLUDED.game_date,
    home_team = EXCLUDED.home_team,
    away_team = EXCLUDED.away_team,
    starts_at = EXCLUDED.starts_at,
    status = EXCLUDED.status,
    updated_at = NOW()`).ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert games query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert games: %w", err)
	}
	return nil
}

func (r *GameRepository) MarkSynced(ctx context.Context, date, at time.Time) error {
	query, args, err := qb.InsertInto("schedule_sync_days").
		Columns("game_date", "synced_at").
		Values(dateParam(date), at.UTC()).
		Suffix(`ON CONFLICT (game_date) DO UPDATE SET synced_at = EXCLUDED.synced_at`).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build mark schedule synced query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("mark schedule synced date=%s: %w", dateParam(date), err)
	}
	return nil
}

func (r *GameRepository) IsSynced(ctx context.Context, date time.Time) (bool, error) {
	var synced bool
	if err := r.db.GetContext(ctx, &synced,
		`SELECT EXISTS (SELECT 1 FROM schedule_sync_days WHERE game_date = $1)`, dateParam(date)); err != nil {
		return false, fmt.Errorf("read schedule sync date=%s: %w", dateParam(date), err)
	}
	return synced, nil
}
