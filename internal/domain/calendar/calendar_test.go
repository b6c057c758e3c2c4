package calendar

import (
	"testing"
	"time"
)

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("load location %s: %v", name, err)
	}
	return loc
}

func TestNewSeason_AnchorsOnMondayOnOrAfterCompletion(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		completed time.Time
		want      time.Time
	}{
		{
			name:      "wednesday rolls forward",
			completed: time.Date(2025, 10, 1, 20, 0, 0, 0, time.UTC),
			want:      time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "monday stays",
			completed: time.Date(2025, 10, 6, 9, 30, 0, 0, time.UTC),
			want:      time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "sunday rolls one day",
			completed: time.Date(2025, 10, 5, 23, 59, 0, 0, time.UTC),
			want:      time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			season := NewSeason(tc.completed, time.UTC)
			if got := season.Week1Start(); !got.Equal(tc.want) {
				t.Fatalf("unexpected week1 start: got=%s want=%s", got, tc.want)
			}
			if got := season.Week1Start().Weekday(); got != time.Monday {
				t.Fatalf("week1 start is not monday: %s", got)
			}
		})
	}
}

func TestNewSeason_UsesLeagueTimezone(t *testing.T) {
	t.Parallel()

	// 2025-10-06 02:00 UTC is still Sunday evening in New York.
	completed := time.Date(2025, 10, 6, 2, 0, 0, 0, time.UTC)
	season := NewSeason(completed, mustLoad(t, "America/New_York"))

	want := time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC)
	if got := season.Week1Start(); !got.Equal(want) {
		t.Fatalf("unexpected week1 start: got=%s want=%s", got, want)
	}

	season = NewSeason(time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC), mustLoad(t, "Asia/Tokyo"))
	if got := season.Week1Start(); !got.Equal(want) {
		t.Fatalf("unexpected week1 start in tokyo: got=%s want=%s", got, want)
	}
}

func TestSeason_WeekBoundaries(t *testing.T) {
	t.Parallel()

	season := SeasonFromWeek1(time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC))

	if got, want := season.WeekStart(3), time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("unexpected week 3 start: got=%s want=%s", got, want)
	}
	if got, want := season.WeekEnd(3), time.Date(2025, 10, 26, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("unexpected week 3 end: got=%s want=%s", got, want)
	}
	if got := season.WeekStart(0); !got.Equal(season.Week1Start()) {
		t.Fatalf("week 0 should clamp to week 1: got=%s", got)
	}

	dates := season.WeekDates(2)
	if len(dates) != 7 {
		t.Fatalf("unexpected week length: got=%d want=7", len(dates))
	}
	if !dates[0].Equal(season.WeekStart(2)) || !dates[6].Equal(season.WeekEnd(2)) {
		t.Fatalf("week dates do not match boundaries: %v", dates)
	}
}

func TestSeason_WeekEndSpansDSTChange(t *testing.T) {
	t.Parallel()

	// US DST ends 2025-11-02; civil dates must not drift by an hour.
	season := SeasonFromWeek1(time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC))
	if got, want := season.WeekEnd(1), time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("unexpected week end: got=%s want=%s", got, want)
	}
	if got := season.WeekNumber(time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)); got != 2 {
		t.Fatalf("unexpected week number after dst: got=%d want=2", got)
	}
}

func TestSeason_WeekNumber(t *testing.T) {
	t.Parallel()

	week1 := time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC)
	season := SeasonFromWeek1(week1)

	for day := 0; day < 7; day++ {
		date := week1.AddDate(0, 0, day)
		if got := season.WeekNumber(date); got != 1 {
			t.Fatalf("unexpected week for %s: got=%d want=1", date.Format(time.DateOnly), got)
		}
	}

	for n := 2; n <= 26; n++ {
		start := season.WeekStart(n)
		for _, date := range []time.Time{start, start.AddDate(0, 0, 3), season.WeekEnd(n)} {
			if got := season.WeekNumber(date); got != n {
				t.Fatalf("unexpected week for %s: got=%d want=%d", date.Format(time.DateOnly), got, n)
			}
		}
	}

	for _, before := range []time.Time{week1.AddDate(0, 0, -1), week1.AddDate(0, 0, -8), week1.AddDate(-1, 0, 0)} {
		if got := season.WeekNumber(before); got != 1 {
			t.Fatalf("week number below 1 for %s: got=%d", before.Format(time.DateOnly), got)
		}
	}
}

func TestSeason_CurrentWeekNumber(t *testing.T) {
	t.Parallel()

	season := SeasonFromWeek1(time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC))
	ny := mustLoad(t, "America/New_York")

	// Monday 2025-10-13 01:00 UTC is Sunday evening in New York: still week 1.
	now := time.Date(2025, 10, 13, 1, 0, 0, 0, time.UTC)
	if got := season.CurrentWeekNumber(now, ny); got != 1 {
		t.Fatalf("unexpected current week: got=%d want=1", got)
	}
	if got := season.CurrentWeekNumber(now, time.UTC); got != 2 {
		t.Fatalf("unexpected current week in utc: got=%d want=2", got)
	}
}
