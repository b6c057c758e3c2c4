package postgres

import "time"

type matchupTableModel struct {
	ID          int64     `db:"id"`
	PublicID    string    `db:"public_id"`
	LeagueID    string    `db:"league_public_id"`
	Week        int       `db:"week"`
	TeamAID     string    `db:"team_a_public_id"`
	TeamBID     string    `db:"team_b_public_id"`
	ScoreA      float64   `db:"score_a"`
	ScoreB      float64   `db:"score_b"`
	LockedDays  int       `db:"locked_days"`
	LockedSlots int       `db:"locked_slots"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type jobRunTableModel struct {
	RunID        string     `db:"run_id"`
	JobName      string     `db:"job_name"`
	Status       string     `db:"status"`
	Leagues      int        `db:"leagues"`
	Locked       int        `db:"locked"`
	Updated      int        `db:"updated"`
	Errored      int        `db:"errored"`
	ErrorMessage *string    `db:"error_message"`
	StartedAt    time.Time  `db:"started_at"`
	FinishedAt   *time.Time `db:"finished_at"`
}
