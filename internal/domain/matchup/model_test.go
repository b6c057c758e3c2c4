package matchup

import "testing"

func TestAdvance_NeverMovesBackwards(t *testing.T) {
	t.Parallel()

	if got := Advance(StatusScheduled, StatusInProgress); got != StatusInProgress {
		t.Fatalf("unexpected status: %s", got)
	}
	if got := Advance(StatusCompleted, StatusInProgress); got != StatusCompleted {
		t.Fatalf("completed must not regress: %s", got)
	}
	if got := Advance(StatusInProgress, StatusScheduled); got != StatusInProgress {
		t.Fatalf("in_progress must not regress: %s", got)
	}
}

func TestComputeStandings(t *testing.T) {
	t.Parallel()

	matchups := []Matchup{
		{TeamAID: "a", TeamBID: "b", ScoreA: 50, ScoreB: 40, Status: StatusCompleted},
		{TeamAID: "c", TeamBID: "d", ScoreA: 30, ScoreB: 30, Status: StatusCompleted},
		{TeamAID: "a", TeamBID: "c", ScoreA: 10, ScoreB: 70, Status: StatusCompleted},
		{TeamAID: "b", TeamBID: "d", ScoreA: 99, ScoreB: 0, Status: StatusInProgress},
	}

	standings := ComputeStandings([]string{"a", "b", "c", "d"}, matchups)
	byTeam := make(map[string]Standing, len(standings))
	for _, s := range standings {
		byTeam[s.TeamID] = s
	}

	a := byTeam["a"]
	if a.Wins != 1 || a.Losses != 1 || a.PointsFor != 60 || a.PointsAgainst != 110 {
		t.Fatalf("unexpected standing for a: %+v", a)
	}
	if a.WeeklyAverage == nil || *a.WeeklyAverage != 30 {
		t.Fatalf("unexpected weekly average for a: %v", a.WeeklyAverage)
	}

	d := byTeam["d"]
	if d.Ties != 1 || d.Wins != 0 || d.Losses != 0 {
		t.Fatalf("unexpected standing for d: %+v", d)
	}
	if d.WeeklyAverage != nil {
		t.Fatalf("weekly average must be absent without decided matchups, got %v", *d.WeeklyAverage)
	}

	if standings[0].TeamID != "c" {
		t.Fatalf("unexpected leader: %s", standings[0].TeamID)
	}
}
