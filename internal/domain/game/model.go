package game

import (
	"strings"
	"time"
)

const (
	StatusScheduled = "SCHEDULED"
	StatusLive      = "LIVE"
	StatusFinal     = "FINAL"
	StatusPostponed = "POSTPONED"
	StatusCancelled = "CANCELLED"
)

// Game is one NHL game from the schedule feed.
type Game struct {
	ID       string
	Date     time.Time
	HomeTeam string
	AwayTeam string
	StartsAt time.Time
	Status   string
}

func (g Game) Involves(proTeam string) bool {
	return g.HomeTeam == proTeam || g.AwayTeam == proTeam
}

// Started reports whether the game has begun by now: its puck-drop time has
// passed or the feed already reports it live or finished.
func (g Game) Started(now time.Time) bool {
	if IsLiveStatus(g.Status) || IsTerminalStatus(g.Status) {
		return true
	}
	return !g.StartsAt.IsZero() && !now.Before(g.StartsAt)
}

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	return status
}

func IsLiveStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusLive, "IN_PROGRESS", "CRIT", "INTERMISSION":
		return true
	default:
		return false
	}
}

func IsFinalStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusFinal, "OFF", "F/OT", "F/SO", "COMPLETED":
		return true
	default:
		return false
	}
}

// IsTerminalStatus reports a game that will produce no further stats.
// Unknown statuses are not terminal.
func IsTerminalStatus(status string) bool {
	if IsFinalStatus(status) {
		return true
	}
	switch NormalizeStatus(status) {
	case StatusPostponed, StatusCancelled, "PPD", "CNCL":
		return true
	default:
		return false
	}
}

// DayLockable decides whether date may be locked given the games on that date
// that involve the league's pro teams. A date with games is lockable once all
// of them are terminal. A date without games is lockable only once it has
// passed and its schedule was confirmed by a feed sync; otherwise the empty
// list may just be missing data.
func DayLockable(date, today time.Time, games []Game, scheduleSynced bool) bool {
	if date.After(today) {
		return false
	}
	if len(games) == 0 {
		return scheduleSynced && date.Before(today)
	}
	for _, g := range games {
		if !IsTerminalStatus(g.Status) {
			return false
		}
	}
	return true
}
