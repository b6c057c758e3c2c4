package postgres

import "time"

type queueEntryTableModel struct {
	UserID   string    `db:"user_id"`
	LeagueID string    `db:"league_public_id"`
	PlayerID string    `db:"player_public_id"`
	Position int       `db:"position"`
	AddedAt  time.Time `db:"added_at"`
}
