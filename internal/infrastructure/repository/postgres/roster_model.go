package postgres

import "time"

type rosterDaySlotTableModel struct {
	LeagueID string     `db:"league_public_id"`
	TeamID   string     `db:"team_public_id"`
	PlayerID string     `db:"player_public_id"`
	SlotDate time.Time  `db:"slot_date"`
	SlotType string     `db:"slot_type"`
	IsGoalie bool       `db:"is_goalie"`
	IsLocked bool       `db:"is_locked"`
	LockedAt *time.Time `db:"locked_at"`
	Points   float64    `db:"points"`
	Stats    string     `db:"stats"`
}
