package league

import (
	"fmt"
	"time"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/draft"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/scoring"
)

// League is one fantasy hockey league and its draft configuration.
type League struct {
	ID                 string
	Name               string
	Season             string
	CommissionerUserID string
	RosterSize         int
	DraftRounds        int
	DraftType          draft.Type
	DraftStatus        draft.Status
	CustomOrder        []string
	RandomizeOrder     bool
	// FrozenOrder is set once, when the draft leaves the lobby.
	FrozenOrder      []string
	DraftStartedAt   *time.Time
	DraftCompletedAt *time.Time
	Weights          scoring.WeightSchedule
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if l.CommissionerUserID == "" {
		return fmt.Errorf("league commissioner is required")
	}
	if l.RosterSize <= 0 {
		return fmt.Errorf("league roster size must be greater than zero")
	}
	if l.DraftRounds <= 0 {
		return fmt.Errorf("league draft rounds must be greater than zero")
	}
	if l.DraftRounds > l.RosterSize {
		return fmt.Errorf("league draft rounds cannot exceed roster size")
	}
	if !l.DraftType.Valid() {
		return fmt.Errorf("invalid draft type: %s", l.DraftType)
	}

	return nil
}

func (l League) IsCommissioner(userID string) bool {
	return userID != "" && userID == l.CommissionerUserID
}

// DraftTransition is a compare-and-swap on a league's draft status.
type DraftTransition struct {
	LeagueID    string
	From        draft.Status
	To          draft.Status
	FrozenOrder []string
	StartedAt   *time.Time
	CompletedAt *time.Time
	At          time.Time
}
