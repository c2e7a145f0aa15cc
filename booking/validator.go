package booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	MaxPeriodsCount = 365
	MaxNotesLen     = 500
)

// Request is a reservation submission before it becomes a stored reservation.
type Request struct {
	GuestID      uuid.UUID
	RoomID       uuid.UUID
	StartDate    time.Time
	Period       Period
	PeriodsCount int
	Notes        string
}

// Draft is the validated outcome: the derived range and quoted price for a
// reservation that may now be persisted with status pending.
type Draft struct {
	StartDate time.Time
	EndDate   time.Time
	TotalDays int
	Total     float64
}

// Result carries either a Draft or the accumulated field errors. A detected
// availability conflict additionally exposes the blocking reservation so the
// caller can display its range.
type Result struct {
	Errors   FieldErrors
	Conflict *Conflict
	Draft    *Draft
}

func (r Result) OK() bool {
	return r.Errors.OK()
}

// Validate checks every field of req and accumulates all problems rather than
// stopping at the first. Only when the fields are individually valid does it
// derive the end date and run the availability check against the supplied
// reservation snapshot; a conflict is reported as the "availability" field
// error, not an exception. Existence of the guest and room beyond a non-zero
// id is the caller's concern. today anchors the past-date rule; same-day
// starts are allowed.
func Validate(req Request, nightlyRate float64, existing []ExistingReservation, today time.Time) Result {
	res := Result{Errors: FieldErrors{}}

	if req.GuestID == uuid.Nil {
		res.Errors.Add("guest_id", "guest is required")
	}
	if req.RoomID == uuid.Nil {
		res.Errors.Add("room_id", "room is required")
	}
	if req.StartDate.IsZero() {
		res.Errors.Add("start_date", "start date is required")
	} else if DateOnly(req.StartDate).Before(DateOnly(today)) {
		res.Errors.Add("start_date", "start date cannot be in the past")
	}
	if !req.Period.Valid() {
		res.Errors.Add("period", "period must be one of day, week, fortnight or month")
	}
	if req.PeriodsCount < 1 || req.PeriodsCount > MaxPeriodsCount {
		res.Errors.Add("periods_count", fmt.Sprintf("periods count must be between 1 and %d", MaxPeriodsCount))
	}
	if len(req.Notes) > MaxNotesLen {
		res.Errors.Add("notes", fmt.Sprintf("notes must be at most %d characters", MaxNotesLen))
	}

	// No point checking availability against a malformed request.
	if !res.Errors.OK() {
		return res
	}

	start := DateOnly(req.StartDate)
	end := EndDate(start, req.Period, req.PeriodsCount)
	if conflict := FindConflict(req.RoomID, start, end, existing); conflict != nil {
		res.Conflict = conflict
		res.Errors.Add("availability", fmt.Sprintf("room is already reserved from %s", conflict.RangeLabel()))
		return res
	}

	totalDays := TotalDays(req.Period, req.PeriodsCount)
	res.Draft = &Draft{
		StartDate: start,
		EndDate:   end,
		TotalDays: totalDays,
		Total:     QuoteTotal(nightlyRate, totalDays),
	}
	return res
}
