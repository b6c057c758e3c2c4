package scoring

import "testing"

func TestWeightSchedule_ForWeek(t *testing.T) {
	t.Parallel()

	initial := DefaultWeights()
	changed := DefaultWeights()
	changed.Skater[StatGoals] = 5

	schedule, err := NewWeightSchedule(initial).With(4, changed)
	if err != nil {
		t.Fatalf("schedule weights: %v", err)
	}

	for week, want := range map[int]float64{1: 3, 3: 3, 4: 5, 20: 5} {
		if got := schedule.ForWeek(week).Skater[StatGoals]; got != want {
			t.Fatalf("unexpected goals weight for week %d: got=%v want=%v", week, got, want)
		}
	}
	if got := schedule.Latest().Skater[StatGoals]; got != 5 {
		t.Fatalf("unexpected latest goals weight: got=%v", got)
	}
}

func TestWeightSchedule_WithReplacesLaterVersions(t *testing.T) {
	t.Parallel()

	a, b, c := DefaultWeights(), DefaultWeights(), DefaultWeights()
	b.Skater[StatHits] = 1
	c.Skater[StatHits] = 2

	schedule, err := NewWeightSchedule(a).With(6, b)
	if err != nil {
		t.Fatalf("schedule b: %v", err)
	}
	schedule, err = schedule.With(3, c)
	if err != nil {
		t.Fatalf("schedule c: %v", err)
	}

	if len(schedule) != 2 {
		t.Fatalf("unexpected version count: got=%d want=2", len(schedule))
	}
	if got := schedule.ForWeek(8).Skater[StatHits]; got != 2 {
		t.Fatalf("later version should be replaced: got=%v", got)
	}
	if got := schedule.ForWeek(2).Skater[StatHits]; got != 0.2 {
		t.Fatalf("earlier version should be kept: got=%v", got)
	}
}

func TestWeightSchedule_WithClonesWeights(t *testing.T) {
	t.Parallel()

	w := DefaultWeights()
	schedule, err := WeightSchedule(nil).With(1, w)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	w.Skater[StatGoals] = 100

	if got := schedule.ForWeek(1).Skater[StatGoals]; got != 3 {
		t.Fatalf("schedule must not alias caller weights: got=%v", got)
	}
}

func TestWeightSchedule_EmptyUsesDefaults(t *testing.T) {
	t.Parallel()

	if got := WeightSchedule(nil).ForWeek(3).Skater[StatGoals]; got != DefaultWeights().Skater[StatGoals] {
		t.Fatalf("unexpected default weight: got=%v", got)
	}
	if _, err := WeightSchedule(nil).With(0, DefaultWeights()); err == nil {
		t.Fatalf("expected error for week 0")
	}
}
