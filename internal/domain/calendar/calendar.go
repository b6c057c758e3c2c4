package calendar

import "time"

const DaysPerWeek = 7

// Date truncates an instant to its civil date in loc. Civil dates are carried
// as midnight UTC so day arithmetic never crosses a DST boundary.
func Date(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Season derives week boundaries from the instant a league's draft completed.
type Season struct {
	week1Start time.Time
}

// NewSeason anchors week 1 on the Monday on or after the draft completion date.
func NewSeason(draftCompletedAt time.Time, loc *time.Location) Season {
	return Season{week1Start: MondayOnOrAfter(Date(draftCompletedAt, loc))}
}

// SeasonFromWeek1 is used when the week 1 start is already known.
func SeasonFromWeek1(week1Start time.Time) Season {
	return Season{week1Start: Date(week1Start, time.UTC)}
}

func MondayOnOrAfter(date time.Time) time.Time {
	offset := (int(time.Monday) - int(date.Weekday()) + DaysPerWeek) % DaysPerWeek
	return date.AddDate(0, 0, offset)
}

func (s Season) Week1Start() time.Time {
	return s.week1Start
}

// WeekStart returns the Monday of week n. Weeks below 1 are treated as week 1.
func (s Season) WeekStart(n int) time.Time {
	if n < 1 {
		n = 1
	}
	return s.week1Start.AddDate(0, 0, DaysPerWeek*(n-1))
}

// WeekEnd returns the Sunday of week n.
func (s Season) WeekEnd(n int) time.Time {
	return s.WeekStart(n).AddDate(0, 0, DaysPerWeek-1)
}

func (s Season) WeekDates(n int) []time.Time {
	start := s.WeekStart(n)
	out := make([]time.Time, 0, DaysPerWeek)
	for i := 0; i < DaysPerWeek; i++ {
		out = append(out, start.AddDate(0, 0, i))
	}
	return out
}

// WeekNumber is floor((date - week1Start) / 7) + 1, never below 1.
func (s Season) WeekNumber(date time.Time) int {
	days := daysBetween(s.week1Start, Date(date, time.UTC))
	week := floorDiv(days, DaysPerWeek) + 1
	if week < 1 {
		return 1
	}
	return week
}

// CurrentWeekNumber evaluates WeekNumber for the civil date of now in loc.
func (s Season) CurrentWeekNumber(now time.Time, loc *time.Location) int {
	return s.WeekNumber(Date(now, loc))
}

// HasStarted reports whether date falls on or after week 1's Monday.
func (s Season) HasStarted(date time.Time) bool {
	return !Date(date, time.UTC).Before(s.week1Start)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
