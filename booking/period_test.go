package booking

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTotalDays(t *testing.T) {
	cases := []struct {
		period Period
		count  int
		want   int
	}{
		{PeriodDay, 1, 1},
		{PeriodDay, 5, 5},
		{PeriodWeek, 1, 7},
		{PeriodWeek, 3, 21},
		{PeriodFortnight, 1, 14},
		{PeriodFortnight, 2, 28},
		{PeriodMonth, 1, 30},
		{PeriodMonth, 12, 360},
	}
	for _, c := range cases {
		if got := TotalDays(c.period, c.count); got != c.want {
			t.Errorf("TotalDays(%s, %d) = %d, want %d", c.period, c.count, got, c.want)
		}
	}
}

// Billable days for a month are always 30, no matter which calendar month the
// stay falls in.
func TestTotalDaysIgnoresCalendar(t *testing.T) {
	if got := TotalDays(PeriodMonth, 1); got != 30 {
		t.Fatalf("month must always count 30 billable days, got %d", got)
	}
}

func TestEndDate(t *testing.T) {
	cases := []struct {
		name   string
		start  time.Time
		period Period
		count  int
		want   time.Time
	}{
		{"five days", date(2024, 1, 1), PeriodDay, 5, date(2024, 1, 5)},
		{"single day", date(2024, 1, 1), PeriodDay, 1, date(2024, 1, 1)},
		{"one week", date(2024, 1, 1), PeriodWeek, 1, date(2024, 1, 7)},
		{"two fortnights", date(2024, 1, 1), PeriodFortnight, 2, date(2024, 1, 28)},
		{"month mid-january", date(2024, 1, 15), PeriodMonth, 1, date(2024, 2, 14)},
		{"month over leap february", date(2024, 2, 1), PeriodMonth, 1, date(2024, 2, 29)},
		{"three months", date(2024, 1, 15), PeriodMonth, 3, date(2024, 4, 14)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := EndDate(c.start, c.period, c.count)
			if !got.Equal(c.want) {
				t.Errorf("EndDate(%s, %s, %d) = %s, want %s",
					c.start.Format("2006-01-02"), c.period, c.count,
					got.Format("2006-01-02"), c.want.Format("2006-01-02"))
			}
			if got.Before(c.start) {
				t.Errorf("end date %s precedes start %s", got, c.start)
			}
		})
	}
}

// A one-month stay prices at 30 flat days while its calendar range can span
// 28-31 real days. Both sides of the asymmetry are pinned here on purpose.
func TestMonthFlatVersusCalendar(t *testing.T) {
	start := date(2024, 1, 15)
	if end := EndDate(start, PeriodMonth, 1); !end.Equal(date(2024, 2, 14)) {
		t.Errorf("calendar end = %s, want 2024-02-14", end.Format("2006-01-02"))
	}
	if days := TotalDays(PeriodMonth, 1); days != 30 {
		t.Errorf("billable days = %d, want flat 30", days)
	}
}

func TestPeriodValid(t *testing.T) {
	for _, p := range []Period{PeriodDay, PeriodWeek, PeriodFortnight, PeriodMonth} {
		if !p.Valid() {
			t.Errorf("%s should be valid", p)
		}
	}
	for _, p := range []Period{"", "year", "Month", "days"} {
		if p.Valid() {
			t.Errorf("%q should be invalid", p)
		}
	}
}

func TestDateOnly(t *testing.T) {
	ts := time.Date(2024, 6, 3, 17, 45, 12, 999, time.UTC)
	if got := DateOnly(ts); !got.Equal(date(2024, 6, 3)) {
		t.Errorf("DateOnly = %s, want midnight of same day", got)
	}
}
