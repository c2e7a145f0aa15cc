package booking

import "time"

// Period is the billing granularity of a reservation.
type Period string

const (
	PeriodDay       Period = "day"
	PeriodWeek      Period = "week"
	PeriodFortnight Period = "fortnight"
	PeriodMonth     Period = "month"
)

// Fixed day equivalence per period used for billing. A month always counts
// as 30 billable days no matter where it falls on the calendar.
var periodDays = map[Period]int{
	PeriodDay:       1,
	PeriodWeek:      7,
	PeriodFortnight: 14,
}

func (p Period) Valid() bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodFortnight, PeriodMonth:
		return true
	}
	return false
}

// TotalDays returns the billable days for count periods. Months use the flat
// 30-day equivalence, never the calendar length; EndDate is the calendar-aware
// counterpart and the two intentionally disagree on months shorter or longer
// than 30 days.
func TotalDays(p Period, count int) int {
	if p == PeriodMonth {
		return count * 30
	}
	return count * periodDays[p]
}

// EndDate returns the inclusive last day of a reservation starting at start.
// Day, week and fortnight advance a fixed number of days; month advances by
// calendar months, so a one-month stay starting Jan 15 ends Feb 14.
func EndDate(start time.Time, p Period, count int) time.Time {
	start = DateOnly(start)
	if p == PeriodMonth {
		return start.AddDate(0, count, -1)
	}
	return start.AddDate(0, 0, TotalDays(p, count)-1)
}

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
