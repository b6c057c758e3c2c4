package roster

import (
	"errors"
	"fmt"
	"time"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/scoring"
)

type SlotType string

const (
	SlotActive SlotType = "active"
	SlotBench  SlotType = "bench"
)

func (s SlotType) Valid() bool {
	return s == SlotActive || s == SlotBench
}

var (
	// ErrSlotLocked is returned for any write that targets a locked day slot.
	ErrSlotLocked = errors.New("roster day is locked")
	ErrPastDate   = errors.New("lineup date is in the past")
)

// DaySlot is one player's assignment on a team for one calendar date. Once
// IsLocked is set the row is write-once: Points and Stats are frozen with it.
type DaySlot struct {
	LeagueID string
	TeamID   string
	PlayerID string
	Date     time.Time
	SlotType SlotType
	IsGoalie bool
	IsLocked bool
	LockedAt *time.Time
	Points   float64
	Stats    scoring.StatLine
}

func (s DaySlot) Key() string {
	return s.TeamID + "::" + s.PlayerID + "::" + s.Date.Format(time.DateOnly)
}

func (s DaySlot) Validate() error {
	if s.TeamID == "" {
		return fmt.Errorf("slot team id is required")
	}
	if s.PlayerID == "" {
		return fmt.Errorf("slot player id is required")
	}
	if s.Date.IsZero() {
		return fmt.Errorf("slot date is required")
	}
	if !s.SlotType.Valid() {
		return fmt.Errorf("invalid slot type: %s", s.SlotType)
	}
	return nil
}

// LockRequest freezes one (team, player, date). When no row exists yet the
// player is locked into DefaultSlot. An existing unlocked row keeps its slot
// type. Points are ActivePoints for an active slot and zero on the bench.
type LockRequest struct {
	LeagueID     string
	TeamID       string
	PlayerID     string
	Date         time.Time
	DefaultSlot  SlotType
	IsGoalie     bool
	ActivePoints float64
	Stats        scoring.StatLine
	LockedAt     time.Time
}

func (r LockRequest) Key() string {
	return r.TeamID + "::" + r.PlayerID + "::" + r.Date.Format(time.DateOnly)
}

// Apply returns the locked slot that results from locking existing (or a
// fresh row when existing is nil).
func (r LockRequest) Apply(existing *DaySlot) DaySlot {
	slotType := r.DefaultSlot
	if existing != nil {
		slotType = existing.SlotType
	}
	points := 0.0
	if slotType == SlotActive {
		points = r.ActivePoints
	}
	lockedAt := r.LockedAt
	return DaySlot{
		LeagueID: r.LeagueID,
		TeamID:   r.TeamID,
		PlayerID: r.PlayerID,
		Date:     r.Date,
		SlotType: slotType,
		IsGoalie: r.IsGoalie,
		IsLocked: true,
		LockedAt: &lockedAt,
		Points:   points,
		Stats:    r.Stats.Clone(),
	}
}

// Lineup is a team's assignment for one date.
type Lineup struct {
	TeamID   string
	Date     time.Time
	Active   []string
	Bench    []string
	IsLocked bool
}

// ValidateAssignment checks that every rostered player appears at most once
// and that no unrostered player is assigned.
func ValidateAssignment(rostered map[string]struct{}, active, bench []string) error {
	seen := make(map[string]struct{}, len(active)+len(bench))
	for _, group := range [][]string{active, bench} {
		for _, playerID := range group {
			if _, ok := rostered[playerID]; !ok {
				return fmt.Errorf("player %s is not on the roster", playerID)
			}
			if _, dup := seen[playerID]; dup {
				return fmt.Errorf("player %s assigned more than once", playerID)
			}
			seen[playerID] = struct{}{}
		}
	}
	return nil
}

// SumLockedPoints is the weekly total for a team: only locked slots count,
// each exactly once per (player, date). lockedSlots only grows as locks land,
// so it orders two reads of the same week.
func SumLockedPoints(slots []DaySlot) (total float64, lockedDays, lockedSlots int) {
	seen := make(map[string]struct{}, len(slots))
	days := make(map[time.Time]struct{})
	for _, s := range slots {
		if !s.IsLocked {
			continue
		}
		key := s.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		days[s.Date] = struct{}{}
		total += s.Points
	}
	return total, len(days), len(seen)
}
