package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/matchup"
	qb "github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/querybuilder"
)

type MatchupRepository struct {
	db *sqlx.DB
}

func NewMatchupRepository(db *sqlx.DB) *MatchupRepository {
	return &MatchupRepository{db: db}
}

func (r *MatchupRepository) ListByLeague(ctx context.Context, leagueID string) ([]matchup.Matchup, error) {
	return r.list(ctx, qb.Eq("league_public_id", leagueID))
}

func (r *MatchupRepository) ListByLeagueWeek(ctx context.Context, leagueID string, week int) ([]matchup.Matchup, error) {
	return r.list(ctx, qb.Eq("league_public_id", leagueID), qb.Eq("week", week))
}

func (r *MatchupRepository) Create(ctx context.Context, matchups []matchup.Matchup) error {
	if len(matchups) == 0 {
		return nil
	}

	builder := qb.InsertInto("matchups").
		Columns("public_id", "league_public_id", "week", "team_a_public_id", "team_b_public_id", "score_a", "score_b", "locked_days", "locked_slots", "status")
	for _, m := range matchups {
		status := m.Status
		if status == "" {
			status = matchup.StatusScheduled
		}
		builder = builder.Values(m.ID, m.LeagueID, m.Week, m.TeamAID, m.TeamBID, m.ScoreA, m.ScoreB, m.LockedDays, m.LockedSlots, string(status))
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return fmt.Errorf("build insert matchups query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("matchup id already exists: %w", err)
		}
		return fmt.Errorf("insert matchups: %w", err)
	}
	return nil
}

// UpdateScores never lets an older aggregate overwrite a newer one and never
// moves status backwards. Locked slots only accumulate, so an update carrying
// fewer of them than the row was computed from a stale read.
func (r *MatchupRepository) UpdateScores(ctx context.Context, u matchup.ScoreUpdate) (bool, error) {
	const updateQuery = `
UPDATE matchups
SET score_a = :score_a,
    score_b = :score_b,
    locked_days = :locked_days,
    locked_slots = :locked_slots,
    status = CASE
        WHEN status = 'completed' THEN status
        WHEN status = 'in_progress' AND :status = 'scheduled' THEN status
        ELSE :status
    END,
    updated_at = :updated_at
WHERE public_id = :public_id
  AND locked_slots <= :locked_slots`

	sqlQuery, args, err := sqlx.Named(updateQuery, map[string]any{
		"score_a":      u.ScoreA,
		"score_b":      u.ScoreB,
		"locked_days":  u.LockedDays,
		"locked_slots": u.LockedSlots,
		"status":       string(u.Status),
		"updated_at":   u.At.UTC(),
		"public_id":    u.MatchupID,
	})
	if err != nil {
		return false, fmt.Errorf("bind update matchup scores query: %w", err)
	}
	sqlQuery = r.db.Rebind(sqlQuery)

	res, err := r.db.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return false, fmt.Errorf("update matchup scores matchup=%s: %w", u.MatchupID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read update matchup scores rows affected: %w", err)
	}
	return affected == 1, nil
}

func (r *MatchupRepository) list(ctx context.Context, where ...qb.Condition) ([]matchup.Matchup, error) {
	query, args, err := qb.Select("*").From("matchups").
		Where(where...).
		OrderBy("week", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matchups query: %w", err)
	}

	var rows []matchupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matchups: %w", err)
	}

	out := make([]matchup.Matchup, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchup.Matchup{
			ID:          row.PublicID,
			LeagueID:    row.LeagueID,
			Week:        row.Week,
			TeamAID:     row.TeamAID,
			TeamBID:     row.TeamBID,
			ScoreA:      row.ScoreA,
			ScoreB:      row.ScoreB,
			LockedDays:  row.LockedDays,
			LockedSlots: row.LockedSlots,
			Status:      matchup.Status(row.Status),
			UpdatedAt:   row.UpdatedAt,
		})
	}
	return out, nil
}
