package playerstats

import (
	"time"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/scoring"
)

// DayStats is one player's box score line for one calendar date.
type DayStats struct {
	PlayerID string
	Date     time.Time
	GameID   string
	Stats    scoring.StatLine
}
