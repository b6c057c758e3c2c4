package postgres

import "time"

type draftPickTableModel struct {
	ID         int64      `db:"id"`
	PublicID   string     `db:"public_id"`
	LeagueID   string     `db:"league_public_id"`
	TeamID     string     `db:"team_public_id"`
	PlayerID   string     `db:"player_public_id"`
	Round      int        `db:"round"`
	PickNumber int        `db:"pick_number"`
	PickedAt   time.Time  `db:"picked_at"`
	DeletedAt  *time.Time `db:"deleted_at"`
}

type draftPickInsertModel struct {
	PublicID   string    `db:"public_id"`
	LeagueID   string    `db:"league_public_id"`
	TeamID     string    `db:"team_public_id"`
	PlayerID   string    `db:"player_public_id"`
	Round      int       `db:"round"`
	PickNumber int       `db:"pick_number"`
	PickedAt   time.Time `db:"picked_at"`
}
