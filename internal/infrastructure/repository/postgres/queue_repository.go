package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/queue"
	qb "github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/querybuilder"
)

type QueueRepository struct {
	db *sqlx.DB
}

func NewQueueRepository(db *sqlx.DB) *QueueRepository {
	return &QueueRepository{db: db}
}

func (r *QueueRepository) List(ctx context.Context, userID, leagueID string) ([]queue.Entry, error) {
	query, args, err := qb.Select("user_id", "league_public_id", "player_public_id", "position", "added_at").
		From("draft_queue_entries").
		Where(
			qb.Eq("user_id", userID),
			qb.Eq("league_public_id", leagueID),
		).
		OrderBy("position").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select queue entries query: %w", err)
	}

	var rows []queueEntryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select queue entries: %w", err)
	}

	out := make([]queue.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, queue.Entry{
			UserID:   row.UserID,
			LeagueID: row.LeagueID,
			PlayerID: row.PlayerID,
			Position: row.Position,
			AddedAt:  row.AddedAt,
		})
	}
	return out, nil
}

// Replace rewrites the whole queue in one transaction so readers never see a
// gap or a duplicated position.
func (r *QueueRepository) Replace(ctx context.Context, userID, leagueID string, entries []queue.Entry) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for queue replace: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const deleteQuery = `
DELETE FROM draft_queue_entries
WHERE user_id = :user_id
  AND league_public_id = :league_public_id`
	deleteSQL, deleteArgs, err := sqlx.Named(deleteQuery, map[string]any{
		"user_id":          userID,
		"league_public_id": leagueID,
	})
	if err != nil {
		return fmt.Errorf("bind delete queue entries query: %w", err)
	}
	deleteSQL = tx.Rebind(deleteSQL)
	if _, err := tx.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
		return fmt.Errorf("delete queue entries: %w", err)
	}

	if len(entries) > 0 {
		builder := qb.InsertInto("draft_queue_entries").
			Columns("user_id", "league_public_id", "player_public_id", "position", "added_at")
		for i, e := range queue.Sorted(entries) {
			builder = builder.Values(userID, leagueID, e.PlayerID, i, e.AddedAt.UTC())
		}
		insertSQL, insertArgs, err := builder.ToSQL()
		if err != nil {
			return fmt.Errorf("build insert queue entries query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
			return fmt.Errorf("insert queue entries: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit queue replace tx: %w", err)
	}
	return nil
}
