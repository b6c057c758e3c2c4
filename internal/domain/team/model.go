package team

import (
	"fmt"
	"time"
)

// Team is one owner's fantasy franchise inside a league.
type Team struct {
	ID          string
	LeagueID    string
	OwnerUserID string
	Name        string
	CreatedAt   time.Time
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.LeagueID == "" {
		return fmt.Errorf("team league id is required")
	}
	if t.OwnerUserID == "" {
		return fmt.Errorf("team owner is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
