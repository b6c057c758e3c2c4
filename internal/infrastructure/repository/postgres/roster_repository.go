package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/roster"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/scoring"
	qb "github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/querybuilder"
)

type RosterRepository struct {
	db *sqlx.DB
}

var rosterSelectColumns = []string{
	"league_public_id",
	"team_public_id",
	"player_public_id",
	"slot_date",
	"slot_type",
	"is_goalie",
	"is_locked",
	"locked_at",
	"points",
	"COALESCE(stats::text, '') AS stats",
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

func (r *RosterRepository) ListByTeamDate(ctx context.Context, teamID string, date time.Time) ([]roster.DaySlot, error) {
	return r.ListByTeamRange(ctx, teamID, date, date)
}

func (r *RosterRepository) ListByTeamRange(ctx context.Context, teamID string, from, to time.Time) ([]roster.DaySlot, error) {
	query, args, err := qb.Select(rosterSelectColumns...).From("roster_day_slots").
		Where(
			qb.Eq("team_public_id", teamID),
			qb.Gte("slot_date", dateParam(from)),
			qb.Lte("slot_date", dateParam(to)),
		).
		OrderBy("slot_date", "player_public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select roster slots query: %w", err)
	}

	var rows []rosterDaySlotTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select roster slots team=%s: %w", teamID, err)
	}

	out := make([]roster.DaySlot, 0, len(rows))
	for _, row := range rows {
		slot, err := slotFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, slot)
	}
	return out, nil
}

// UpsertUnlocked locks the target rows first so a concurrent scoring pass
// cannot lock one of them between the check and the write.
func (r *RosterRepository) UpsertUnlocked(ctx context.Context, slots []roster.DaySlot) error {
	if len(slots) == 0 {
		return nil
	}
	slots = dedupeLast(slots, func(s roster.DaySlot) string { return s.Key() })

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for roster upsert: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, slot := range slots {
		var locked bool
		err := tx.GetContext(ctx, &locked, `
SELECT is_locked FROM roster_day_slots
WHERE team_public_id = $1
  AND player_public_id = $2
  AND slot_date = $3
FOR UPDATE`, slot.TeamID, slot.PlayerID, dateParam(slot.Date))
		if err != nil && !isNotFound(err) {
			return fmt.Errorf("check roster slot lock %s: %w", slot.Key(), err)
		}
		if locked {
			return roster.ErrSlotLocked
		}
	}

	builder := qb.InsertInto("roster_day_slots").
		Columns("league_public_id", "team_public_id", "player_public_id", "slot_date", "slot_type", "is_goalie", "is_locked", "points")
	for _, slot := range slots {
		builder = builder.Values(slot.LeagueID, slot.TeamID, slot.PlayerID, dateParam(slot.Date), string(slot.SlotType), slot.IsGoalie, false, 0.0)
	}
	query, args, err := builder.Suffix(`ON CONFLICT (team_public_id, player_public_id, slot_date)
DO UPDATE SET
    slot_type = EXCLUDED.slot_type,
    is_goalie = EXCLUDED.is_goalie,
    updated_at = NOW()
WHERE roster_day_slots.is_locked = FALSE`).ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert roster slots query: %w", err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("upsert roster slots: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read upsert roster slots rows affected: %w", err)
	}
	if affected != int64(len(slots)) {
		return roster.ErrSlotLocked
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit roster upsert tx: %w", err)
	}
	return nil
}

// LockIfUnlocked inserts a locked row or locks the existing unlocked one. The
// stored slot type decides whether the frozen points are the active points or
// zero.
func (r *RosterRepository) LockIfUnlocked(ctx context.Context, req roster.LockRequest) (bool, error) {
	const lockQuery = `
INSERT INTO roster_day_slots (
    league_public_id,
    team_public_id,
    player_public_id,
    slot_date,
    slot_type,
    is_goalie,
    is_locked,
    locked_at,
    points,
    stats
) VALUES (
    :league_public_id,
    :team_public_id,
    :player_public_id,
    :slot_date,
    :slot_type,
    :is_goalie,
    TRUE,
    :locked_at,
    :fresh_points,
    :stats
)
ON CONFLICT (team_public_id, player_public_id, slot_date)
DO UPDATE SET
    is_locked = TRUE,
    locked_at = EXCLUDED.locked_at,
    is_goalie = EXCLUDED.is_goalie,
    stats = EXCLUDED.stats,
    points = CASE
        WHEN roster_day_slots.slot_type = 'active' THEN :active_points
        ELSE 0
    END,
    updated_at = NOW()
WHERE roster_day_slots.is_locked = FALSE`

	fresh := req.Apply(nil)
	stats, err := encodeJSON(nonNilStats(req.Stats))
	if err != nil {
		return false, fmt.Errorf("encode locked stats: %w", err)
	}

	sqlQuery, args, err := sqlx.Named(lockQuery, map[string]any{
		"league_public_id": req.LeagueID,
		"team_public_id":   req.TeamID,
		"player_public_id": req.PlayerID,
		"slot_date":        dateParam(req.Date),
		"slot_type":        string(fresh.SlotType),
		"is_goalie":        req.IsGoalie,
		"locked_at":        req.LockedAt.UTC(),
		"fresh_points":     fresh.Points,
		"stats":            stats,
		"active_points":    req.ActivePoints,
	})
	if err != nil {
		return false, fmt.Errorf("bind lock roster slot query: %w", err)
	}
	sqlQuery = r.db.Rebind(sqlQuery)

	res, err := r.db.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return false, fmt.Errorf("lock roster slot %s: %w", req.Key(), err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read lock roster slot rows affected: %w", err)
	}
	return affected == 1, nil
}

func slotFromRow(row rosterDaySlotTableModel) (roster.DaySlot, error) {
	slot := roster.DaySlot{
		LeagueID: row.LeagueID,
		TeamID:   row.TeamID,
		PlayerID: row.PlayerID,
		Date:     civilDate(row.SlotDate),
		SlotType: roster.SlotType(row.SlotType),
		IsGoalie: row.IsGoalie,
		IsLocked: row.IsLocked,
		LockedAt: nullableTime(row.LockedAt),
		Points:   row.Points,
	}
	if err := decodeJSON(row.Stats, &slot.Stats); err != nil {
		return roster.DaySlot{}, fmt.Errorf("decode roster slot stats %s: %w", slot.Key(), err)
	}
	return slot, nil
}

func nonNilStats(stats scoring.StatLine) scoring.StatLine {
	if stats == nil {
		return scoring.StatLine{}
	}
	return stats
}
