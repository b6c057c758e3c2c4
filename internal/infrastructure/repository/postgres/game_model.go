package postgres

import "time"

type gameTableModel struct {
	PublicID string     `db:"public_id"`
	GameDate time.Time  `db:"game_date"`
	HomeTeam string     `db:"home_team"`
	AwayTeam string     `db:"away_team"`
	StartsAt *time.Time `db:"starts_at"`
	Status   string     `db:"status"`
}

type playerDayStatsTableModel struct {
	PlayerID string `db:"player_public_id"`
	Stats    string `db:"stats"`
}
