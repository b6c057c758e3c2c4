package postgres

import "time"

type leagueTableModel struct {
	ID                 int64      `db:"id"`
	PublicID           string     `db:"public_id"`
	Name               string     `db:"name"`
	Season             string     `db:"season"`
	CommissionerUserID string     `db:"commissioner_user_id"`
	RosterSize         int        `db:"roster_size"`
	DraftRounds        int        `db:"draft_rounds"`
	DraftType          string     `db:"draft_type"`
	DraftStatus        string     `db:"draft_status"`
	CustomOrder        string     `db:"custom_order"`
	RandomizeOrder     bool       `db:"randomize_order"`
	FrozenOrder        string     `db:"frozen_order"`
	DraftStartedAt     *time.Time `db:"draft_started_at"`
	DraftCompletedAt   *time.Time `db:"draft_completed_at"`
	ScoringWeights     string     `db:"scoring_weights"`
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at"`
	DeletedAt          *time.Time `db:"deleted_at"`
}

type leagueInsertModel struct {
	PublicID           string `db:"public_id"`
	Name               string `db:"name"`
	Season             string `db:"season"`
	CommissionerUserID string `db:"commissioner_user_id"`
	RosterSize         int    `db:"roster_size"`
	DraftRounds        int    `db:"draft_rounds"`
	DraftType          string `db:"draft_type"`
	DraftStatus        string `db:"draft_status"`
	CustomOrder        string `db:"custom_order"`
	RandomizeOrder     bool   `db:"randomize_order"`
	FrozenOrder        string `db:"frozen_order"`
	ScoringWeights     string `db:"scoring_weights"`
}
