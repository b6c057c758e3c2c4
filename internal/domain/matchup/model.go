package matchup

import (
	"fmt"
	"sort"
	"time"
)

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func (s Status) rank() int {
	switch s {
	case StatusInProgress:
		return 1
	case StatusCompleted:
		return 2
	default:
		return 0
	}
}

// Advance returns the later of two statuses. Status never moves backwards.
func Advance(current, next Status) Status {
	if next.rank() > current.rank() {
		return next
	}
	return current
}

// Matchup is a head-to-head pairing for one league week. Scores are always the
// sum of each team's locked day points for the week; LockedSlots counts the
// locked roster-days of both teams behind them.
type Matchup struct {
	ID          string
	LeagueID    string
	Week        int
	TeamAID     string
	TeamBID     string
	ScoreA      float64
	ScoreB      float64
	LockedDays  int
	LockedSlots int
	Status      Status
	UpdatedAt   time.Time
}

func (m Matchup) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("matchup id is required")
	}
	if m.LeagueID == "" {
		return fmt.Errorf("matchup league id is required")
	}
	if m.Week < 1 {
		return fmt.Errorf("matchup week must be >= 1")
	}
	if m.TeamAID == "" || m.TeamBID == "" {
		return fmt.Errorf("matchup teams are required")
	}
	if m.TeamAID == m.TeamBID {
		return fmt.Errorf("matchup teams must differ")
	}
	return nil
}

// ScoreUpdate is written by the scoring job. LockedSlots counts locked
// roster-days across both teams; an update with fewer locked slots than the
// stored row was read before some locks landed and is dropped.
type ScoreUpdate struct {
	MatchupID   string
	ScoreA      float64
	ScoreB      float64
	LockedDays  int
	LockedSlots int
	Status      Status
	At          time.Time
}

// Standing is a team's record over completed matchups.
type Standing struct {
	TeamID        string
	Wins          int
	Losses        int
	Ties          int
	PointsFor     float64
	PointsAgainst float64
	// WeeklyAverage is PointsFor/(Wins+Losses); nil while no matchup is decided.
	WeeklyAverage *float64
}

// ComputeStandings aggregates completed matchups for teamIDs, ordered by wins
// then points for.
func ComputeStandings(teamIDs []string, matchups []Matchup) []Standing {
	byTeam := make(map[string]*Standing, len(teamIDs))
	out := make([]*Standing, 0, len(teamIDs))
	for _, id := range teamIDs {
		s := &Standing{TeamID: id}
		byTeam[id] = s
		out = append(out, s)
	}

	for _, m := range matchups {
		if m.Status != StatusCompleted {
			continue
		}
		a, okA := byTeam[m.TeamAID]
		b, okB := byTeam[m.TeamBID]
		if !okA || !okB {
			continue
		}
		a.PointsFor += m.ScoreA
		a.PointsAgainst += m.ScoreB
		b.PointsFor += m.ScoreB
		b.PointsAgainst += m.ScoreA
		switch {
		case m.ScoreA > m.ScoreB:
			a.Wins++
			b.Losses++
		case m.ScoreB > m.ScoreA:
			b.Wins++
			a.Losses++
		default:
			a.Ties++
			b.Ties++
		}
	}

	result := make([]Standing, 0, len(out))
	for _, s := range out {
		if decided := s.Wins + s.Losses; decided > 0 {
			avg := s.PointsFor / float64(decided)
			s.WeeklyAverage = &avg
		}
		result = append(result, *s)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Wins != result[j].Wins {
			return result[i].Wins > result[j].Wins
		}
		return result[i].PointsFor > result[j].PointsFor
	})
	return result
}
