package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/draft"
	qb "github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/querybuilder"
)

type DraftRepository struct {
	db *sqlx.DB
}

func NewDraftRepository(db *sqlx.DB) *DraftRepository {
	return &DraftRepository{db: db}
}

func (r *DraftRepository) ListPicks(ctx context.Context, leagueID string) ([]draft.Pick, error) {
	query, args, err := qb.Select("*").From("draft_picks").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("pick_number").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select draft picks query: %w", err)
	}

	var rows []draftPickTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select draft picks: %w", err)
	}

	out := make([]draft.Pick, 0, len(rows))
	for _, row := range rows {
		out = append(out, pickFromRow(row))
	}
	return out, nil
}

func (r *DraftRepository) CountPicks(ctx context.Context, leagueID string) (int, error) {
	query, args, err := qb.Select("COUNT(1)").From("draft_picks").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count draft picks query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count draft picks: %w", err)
	}
	return count, nil
}

// InsertPick is one guarded INSERT ... SELECT. Two requests racing for the same
// pick number both pass the count guard under READ COMMITTED; the partial
// unique indexes on (league, pick_number) and (league, player) then reject
// the loser, which ON CONFLICT turns into zero rows affected.
func (r *DraftRepository) InsertPick(ctx context.Context, pick draft.Pick) (bool, error) {
	model := draftPickInsertModel{
		PublicID:   pick.ID,
		LeagueID:   pick.LeagueID,
		TeamID:     pick.TeamID,
		PlayerID:   pick.PlayerID,
		Round:      pick.Round,
		PickNumber: pick.PickNumber,
		PickedAt:   pick.PickedAt.UTC(),
	}
	query, args, err := qb.InsertModelWhere("draft_picks", model, []qb.Condition{
		qb.Expr(`EXISTS (
    SELECT 1 FROM leagues
    WHERE public_id = ? AND draft_status = ? AND deleted_at IS NULL
)`, pick.LeagueID, string(draft.StatusActive)),
		qb.Expr(`(
    SELECT COUNT(1) FROM draft_picks
    WHERE league_public_id = ? AND deleted_at IS NULL
) = ?`, pick.LeagueID, pick.PickNumber-1),
		qb.Expr(`NOT EXISTS (
    SELECT 1 FROM draft_picks
    WHERE league_public_id = ? AND player_public_id = ? AND deleted_at IS NULL
)`, pick.LeagueID, pick.PlayerID),
	}, "ON CONFLICT DO NOTHING")
	if err != nil {
		return false, fmt.Errorf("build insert draft pick query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return false, nil
		}
		return false, fmt.Errorf("insert draft pick league=%s pick=%d: %w", pick.LeagueID, pick.PickNumber, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read insert draft pick rows affected: %w", err)
	}
	return affected == 1, nil
}

func (r *DraftRepository) SoftDeleteLastPick(ctx context.Context, leagueID string, deletedAt time.Time) (draft.Pick, bool, error) {
	const softDeleteQuery = `
UPDATE draft_picks
SET deleted_at = :deleted_at
WHERE id = (
    SELECT id FROM draft_picks
    WHERE league_public_id = :league_public_id
      AND deleted_at IS NULL
    ORDER BY pick_number DESC
    LIMIT 1
    FOR UPDATE
)
  AND deleted_at IS NULL
RETURNING id, public_id, league_public_id, team_public_id, player_public_id, round, pick_number, picked_at, deleted_at`

	sqlQuery, args, err := sqlx.Named(softDeleteQuery, map[string]any{
		"deleted_at":       deletedAt.UTC(),
		"league_public_id": leagueID,
	})
	if err != nil {
		return draft.Pick{}, false, fmt.Errorf("bind soft delete last pick query: %w", err)
	}
	sqlQuery = r.db.Rebind(sqlQuery)

	var row draftPickTableModel
	if err := r.db.GetContext(ctx, &row, sqlQuery, args...); err != nil {
		if isNotFound(err) {
			return draft.Pick{}, false, nil
		}
		return draft.Pick{}, false, fmt.Errorf("soft delete last pick league=%s: %w", leagueID, err)
	}
	return pickFromRow(row), true, nil
}

func pickFromRow(row draftPickTableModel) draft.Pick {
	return draft.Pick{
		ID:         row.PublicID,
		LeagueID:   row.LeagueID,
		TeamID:     row.TeamID,
		PlayerID:   row.PlayerID,
		Round:      row.Round,
		PickNumber: row.PickNumber,
		PickedAt:   row.PickedAt,
		DeletedAt:  nullableTime(row.DeletedAt),
	}
}
