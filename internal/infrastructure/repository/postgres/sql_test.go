package postgres

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/scoring"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Run("matches wrapped unique violation", func(t *testing.T) {
		err := fmt.Errorf("insert pick: %w", &pq.Error{Code: "23505"})
		if !isUniqueViolation(err) {
			t.Fatalf("expected true for unique violation")
		}
	})

	t.Run("ignores other pq errors", func(t *testing.T) {
		if isUniqueViolation(&pq.Error{Code: "42P01"}) {
			t.Fatalf("expected false for undefined table")
		}
	})

	t.Run("ignores plain errors", func(t *testing.T) {
		if isUniqueViolation(sql.ErrNoRows) {
			t.Fatalf("expected false for sql.ErrNoRows")
		}
	})
}

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get league: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped sql.ErrNoRows to be not found")
	}
}

func TestCivilDate(t *testing.T) {
	loc := time.FixedZone("", 0)
	got := civilDate(time.Date(2025, 10, 6, 0, 0, 0, 0, loc))
	want := time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) || got.Location() != time.UTC {
		t.Fatalf("unexpected civil date: %v", got)
	}
	if dateParam(time.Date(2025, 10, 6, 23, 30, 0, 0, time.UTC)) != "2025-10-06" {
		t.Fatalf("unexpected date param")
	}
}

func TestWeightScheduleJSON(t *testing.T) {
	schedule := scoring.NewWeightSchedule(scoring.DefaultWeights())

	raw, err := encodeJSON(schedule)
	if err != nil {
		t.Fatalf("encode schedule: %v", err)
	}

	var decoded scoring.WeightSchedule
	if err := decodeJSON(raw, &decoded); err != nil {
		t.Fatalf("decode schedule: %v", err)
	}
	if len(decoded) != 1 || decoded[0].EffectiveFromWeek != 1 {
		t.Fatalf("unexpected decoded schedule: %+v", decoded)
	}
	if decoded[0].Weights.Skater[scoring.StatGoals] != 3 {
		t.Fatalf("unexpected goals weight: %v", decoded[0].Weights.Skater[scoring.StatGoals])
	}

	var empty []string
	if err := decodeJSON("", &empty); err != nil || empty != nil {
		t.Fatalf("expected empty decode to be a no-op, got %v %v", empty, err)
	}
}

func TestDedupeLast(t *testing.T) {
	got := dedupeLast([]string{"a:1", "b:1", "a:2"}, func(s string) string { return s[:1] })
	if len(got) != 2 || got[0] != "a:2" || got[1] != "b:1" {
		t.Fatalf("unexpected dedupe result: %v", got)
	}
}
