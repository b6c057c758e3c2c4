package scoring

import (
	"math"
	"testing"
)

func TestComputePoints_Skater(t *testing.T) {
	t.Parallel()

	stats := StatLine{
		StatGoals:          2,
		StatAssists:        1,
		StatShotsOnGoal:    5,
		StatHits:           3,
		StatPenaltyMinutes: 2,
	}
	weights := Weights{Skater: Table{
		StatGoals:          3,
		StatAssists:        2,
		StatShotsOnGoal:    0.5,
		StatHits:           1,
		StatPenaltyMinutes: 0.5,
	}}

	got := ComputePoints(stats, false, weights)
	want := 2*3.0 + 1*2.0 + 5*0.5 + 3*1.0 + 2*0.5
	if got != want {
		t.Fatalf("unexpected points: got=%v want=%v", got, want)
	}
}

func TestComputePoints_GoalieAppliesConfiguredSign(t *testing.T) {
	t.Parallel()

	stats := StatLine{StatWins: 1, StatSaves: 30, StatGoalsAgainst: 2}
	weights := DefaultWeights()

	got := ComputePoints(stats, true, weights)
	want := 4.0 + 30*0.2 - 2.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("unexpected goalie points: got=%v want=%v", got, want)
	}

	weights.Goalie[StatGoalsAgainst] = 1
	if got := ComputePoints(StatLine{StatGoalsAgainst: 2}, true, weights); got != 2 {
		t.Fatalf("positive goals against weight should be applied as configured: got=%v", got)
	}
}

func TestComputePoints_IgnoresStatsOfOtherPosition(t *testing.T) {
	t.Parallel()

	stats := StatLine{StatGoals: 1, StatSaves: 20}
	weights := DefaultWeights()

	if got, want := ComputePoints(stats, false, weights), 3.0; got != want {
		t.Fatalf("unexpected skater points: got=%v want=%v", got, want)
	}
	if got, want := ComputePoints(stats, true, weights), 20*0.2; math.Abs(got-want) > 1e-9 {
		t.Fatalf("unexpected goalie points: got=%v want=%v", got, want)
	}
}

func TestComputePoints_MissingStatsAndWeightsAreZero(t *testing.T) {
	t.Parallel()

	if got := ComputePoints(nil, false, DefaultWeights()); got != 0 {
		t.Fatalf("nil stats should score zero: got=%v", got)
	}
	if got := ComputePoints(StatLine{StatGoals: 4}, false, Weights{}); got != 0 {
		t.Fatalf("missing weights should score zero: got=%v", got)
	}
	if got := ComputePoints(StatLine{StatGoals: 1, StatHits: 2}, false, Weights{Skater: Table{StatHits: 1}}); got != 2 {
		t.Fatalf("unweighted stat should be skipped: got=%v", got)
	}
}

func TestComputePoints_LinearPerStat(t *testing.T) {
	t.Parallel()

	weights := DefaultWeights()
	base := StatLine{
		StatGoals:          1,
		StatAssists:        2,
		StatShotsOnGoal:    4,
		StatBlockedShots:   1,
		StatHits:           3,
		StatPenaltyMinutes: 2,
	}

	for _, stat := range SkaterStats {
		single := ComputePoints(StatLine{stat: 3}, false, weights)
		double := ComputePoints(StatLine{stat: 6}, false, weights)
		if math.Abs(double-2*single) > 1e-9 {
			t.Fatalf("stat %s is not linear: single=%v double=%v", stat, single, double)
		}

		doubled := base.Add(StatLine{stat: base[stat]})
		delta := ComputePoints(doubled, false, weights) - ComputePoints(base, false, weights)
		contribution := ComputePoints(StatLine{stat: base[stat]}, false, weights)
		if math.Abs(delta-contribution) > 1e-9 {
			t.Fatalf("doubling %s changed more than its own contribution: delta=%v contribution=%v", stat, delta, contribution)
		}
	}
}

func TestComputeBreakdown_SumsExactlyToPoints(t *testing.T) {
	t.Parallel()

	weights := Weights{
		Skater: Table{
			StatGoals:          0.1,
			StatAssists:        0.2,
			StatShotsOnGoal:    0.3,
			StatBlockedShots:   0.7,
			StatHits:           0.01,
			StatPenaltyMinutes: 1.0 / 3.0,
		},
		Goalie: DefaultWeights().Goalie,
	}
	lines := []struct {
		stats    StatLine
		isGoalie bool
	}{
		{StatLine{StatGoals: 3, StatAssists: 7, StatShotsOnGoal: 11, StatBlockedShots: 13, StatHits: 17, StatPenaltyMinutes: 19}, false},
		{StatLine{StatGoals: 1}, false},
		{StatLine{StatWins: 1, StatSaves: 33, StatShutouts: 1}, true},
		{StatLine{StatSaves: 17, StatGoalsAgainst: 5}, true},
		{StatLine{}, false},
	}

	for _, line := range lines {
		breakdown := ComputeBreakdown(line.stats, line.isGoalie, weights)
		var sum float64
		for _, c := range breakdown.Contributions {
			sum += c.Subtotal
		}
		points := ComputePoints(line.stats, line.isGoalie, weights)
		if sum != points || breakdown.Total != points {
			t.Fatalf("breakdown drifted from total: sum=%v total=%v points=%v", sum, breakdown.Total, points)
		}
	}
}

func TestComputeBreakdown_OnlyNonZeroContributions(t *testing.T) {
	t.Parallel()

	weights := DefaultWeights()
	weights.Skater[StatHits] = 0

	breakdown := ComputeBreakdown(StatLine{StatGoals: 1, StatAssists: 0, StatHits: 4}, false, weights)
	if len(breakdown.Contributions) != 1 {
		t.Fatalf("unexpected contribution count: got=%d want=1", len(breakdown.Contributions))
	}

	c, ok := breakdown.ByStat()[StatGoals]
	if !ok {
		t.Fatalf("expected goals contribution")
	}
	if c.Count != 1 || c.Weight != 3 || c.Subtotal != 3 {
		t.Fatalf("unexpected goals contribution: %+v", c)
	}
}
