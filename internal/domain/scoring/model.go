package scoring

// Stat is a raw per-day counting stat reported by the game feed.
type Stat string

const (
	StatGoals             Stat = "goals"
	StatAssists           Stat = "assists"
	StatPowerPlayPoints   Stat = "power_play_points"
	StatShortHandedPoints Stat = "short_handed_points"
	StatShotsOnGoal       Stat = "shots_on_goal"
	StatBlockedShots      Stat = "blocked_shots"
	StatHits              Stat = "hits"
	StatPenaltyMinutes    Stat = "penalty_minutes"

	StatWins         Stat = "wins"
	StatSaves        Stat = "saves"
	StatShutouts     Stat = "shutouts"
	StatGoalsAgainst Stat = "goals_against"
)

// SkaterStats and GoalieStats fix the order in which contributions are summed.
var (
	SkaterStats = []Stat{
		StatGoals,
		StatAssists,
		StatPowerPlayPoints,
		StatShortHandedPoints,
		StatShotsOnGoal,
		StatBlockedShots,
		StatHits,
		StatPenaltyMinutes,
	}
	GoalieStats = []Stat{
		StatWins,
		StatSaves,
		StatShutouts,
		StatGoalsAgainst,
	}
)

// StatLine holds one player's counts for one day. Missing keys count as zero.
type StatLine map[Stat]int

// Add returns the element-wise sum of two stat lines.
func (s StatLine) Add(other StatLine) StatLine {
	out := make(StatLine, len(s)+len(other))
	for k, v := range s {
		out[k] += v
	}
	for k, v := range other {
		out[k] += v
	}
	return out
}

func (s StatLine) Clone() StatLine {
	if s == nil {
		return nil
	}
	out := make(StatLine, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Table maps a stat to its point value.
type Table map[Stat]float64

// Weights is a league's scoring configuration.
type Weights struct {
	Skater Table `json:"skater"`
	Goalie Table `json:"goalie"`
}

func (w Weights) table(isGoalie bool) Table {
	if isGoalie {
		return w.Goalie
	}
	return w.Skater
}

func (w Weights) Clone() Weights {
	out := Weights{
		Skater: make(Table, len(w.Skater)),
		Goalie: make(Table, len(w.Goalie)),
	}
	for k, v := range w.Skater {
		out.Skater[k] = v
	}
	for k, v := range w.Goalie {
		out.Goalie[k] = v
	}
	return out
}

func DefaultWeights() Weights {
	return Weights{
		Skater: Table{
			StatGoals:             3,
			StatAssists:           2,
			StatPowerPlayPoints:   1,
			StatShortHandedPoints: 2,
			StatShotsOnGoal:       0.4,
			StatBlockedShots:      0.5,
			StatHits:              0.2,
			StatPenaltyMinutes:    0.5,
		},
		Goalie: Table{
			StatWins:         4,
			StatSaves:        0.2,
			StatShutouts:     3,
			StatGoalsAgainst: -1,
		},
	}
}

// Contribution is one non-zero line of a points breakdown.
type Contribution struct {
	Stat     Stat    `json:"stat"`
	Count    int     `json:"count"`
	Weight   float64 `json:"weight"`
	Subtotal float64 `json:"subtotal"`
}

// Breakdown is the audit view of a points computation.
type Breakdown struct {
	Total         float64        `json:"total"`
	Contributions []Contribution `json:"contributions"`
}

// ByStat indexes the contributions for map-shaped consumers.
func (b Breakdown) ByStat() map[Stat]Contribution {
	out := make(map[Stat]Contribution, len(b.Contributions))
	for _, c := range b.Contributions {
		out[c.Stat] = c
	}
	return out
}
