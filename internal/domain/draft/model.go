package draft

import (
	"errors"
	"time"
)

// Type selects how the frozen order is walked each round.
type Type string

const (
	TypeSerpentine Type = "serpentine"
	TypeStandard   Type = "standard"
)

func (t Type) Valid() bool {
	return t == TypeSerpentine || t == TypeStandard
}

// Status is a league's draft state.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusLobby      Status = "lobby"
	StatusActive     Status = "active"
	StatusPaused     Status = "paused"
	StatusCompleted  Status = "completed"
)

// MinTeams is the smallest league that may start drafting.
const MinTeams = 4

var (
	ErrDraftNotActive       = errors.New("draft is not active")
	ErrWrongTurn            = errors.New("not this team's turn")
	ErrPlayerAlreadyDrafted = errors.New("player already drafted")
	ErrPickConflict         = errors.New("pick was taken by a concurrent request")
	ErrDraftComplete        = errors.New("draft is complete")
	ErrInvalidTransition    = errors.New("invalid draft transition")
	ErrNotEnoughTeams       = errors.New("not enough teams to start draft")
	ErrInvalidOrder         = errors.New("invalid draft order")
	ErrWrongRound           = errors.New("pick round does not match current round")
)

// Pick is an accepted draft selection. Picks are never updated; undo sets DeletedAt.
type Pick struct {
	ID         string
	LeagueID   string
	TeamID     string
	PlayerID   string
	Round      int
	PickNumber int
	PickedAt   time.Time
	DeletedAt  *time.Time
}

// Turn identifies one slot of the draft board.
type Turn struct {
	PickNumber int
	Round      int
	TeamID     string
}
