package booking

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

var today = date(2024, 1, 1)

func validRequest() Request {
	return Request{
		GuestID:      uuid.New(),
		RoomID:       uuid.New(),
		StartDate:    date(2024, 1, 1),
		Period:       PeriodDay,
		PeriodsCount: 5,
	}
}

func TestValidateQuote(t *testing.T) {
	// Room at 100 VES/night for five days starting 2024-01-01.
	res := Validate(validRequest(), 100, nil, today)
	if !res.OK() {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	d := res.Draft
	if d == nil {
		t.Fatal("missing draft")
	}
	if !d.EndDate.Equal(date(2024, 1, 5)) {
		t.Errorf("end date = %s, want 2024-01-05", d.EndDate.Format("2006-01-02"))
	}
	if d.TotalDays != 5 {
		t.Errorf("total days = %d, want 5", d.TotalDays)
	}
	if d.Total != 500 {
		t.Errorf("quoted total = %v, want 500", d.Total)
	}
}

func TestValidateAccumulatesAllErrors(t *testing.T) {
	req := Request{
		StartDate:    date(2023, 12, 31),
		Period:       "year",
		PeriodsCount: 0,
		Notes:        strings.Repeat("n", MaxNotesLen+1),
	}
	res := Validate(req, 100, nil, today)
	if res.OK() {
		t.Fatal("expected validation failure")
	}
	for _, field := range []string{"guest_id", "room_id", "start_date", "period", "periods_count", "notes"} {
		if _, ok := res.Errors[field]; !ok {
			t.Errorf("missing error for %s: %v", field, res.Errors)
		}
	}
	if res.Draft != nil {
		t.Error("invalid request must not produce a draft")
	}
}

func TestValidateStartDate(t *testing.T) {
	req := validRequest()
	req.StartDate = date(2023, 12, 31)
	if res := Validate(req, 100, nil, today); res.Errors["start_date"] == "" {
		t.Error("yesterday must be rejected")
	}

	// Same-day start is allowed, even late in the day.
	req.StartDate = time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC)
	if res := Validate(req, 100, nil, today); !res.OK() {
		t.Errorf("same-day start rejected: %v", res.Errors)
	}

	req.StartDate = time.Time{}
	if res := Validate(req, 100, nil, today); res.Errors["start_date"] == "" {
		t.Error("missing start date must be rejected")
	}
}

func TestValidatePeriodsCountBounds(t *testing.T) {
	req := validRequest()
	for count, ok := range map[int]bool{0: false, 1: true, 365: true, 366: false, -3: false} {
		req.PeriodsCount = count
		res := Validate(req, 100, nil, today)
		if ok && !res.OK() {
			t.Errorf("count %d rejected: %v", count, res.Errors)
		}
		if !ok && res.Errors["periods_count"] == "" {
			t.Errorf("count %d accepted", count)
		}
	}
}

func TestValidateConflict(t *testing.T) {
	req := validRequest()
	existingID := uuid.New()
	existing := []ExistingReservation{{
		ID:     existingID,
		RoomID: req.RoomID,
		Start:  date(2024, 1, 3),
		End:    date(2024, 1, 10),
		Status: StatusActive,
	}}

	res := Validate(req, 100, existing, today)
	if res.OK() {
		t.Fatal("expected availability conflict")
	}
	if res.Errors["availability"] == "" {
		t.Fatalf("missing availability error: %v", res.Errors)
	}
	if res.Conflict == nil || res.Conflict.ReservationID != existingID {
		t.Fatalf("conflict detail missing or wrong: %+v", res.Conflict)
	}
	if !strings.Contains(res.Errors["availability"], "2024-01-03 to 2024-01-10") {
		t.Errorf("availability message should name the blocking range, got %q", res.Errors["availability"])
	}
	if res.Draft != nil {
		t.Error("conflicting request must not produce a draft")
	}
}

// Availability is only consulted once every field is individually valid.
func TestValidateSkipsAvailabilityOnFieldErrors(t *testing.T) {
	req := validRequest()
	req.PeriodsCount = 0
	existing := []ExistingReservation{{
		ID:     uuid.New(),
		RoomID: req.RoomID,
		Start:  date(2024, 1, 1),
		End:    date(2024, 1, 31),
		Status: StatusActive,
	}}
	res := Validate(req, 100, existing, today)
	if _, ok := res.Errors["availability"]; ok {
		t.Error("availability must not be checked against a malformed request")
	}
	if res.Conflict != nil {
		t.Error("no conflict should be reported for a malformed request")
	}
}

func TestValidateBackToBack(t *testing.T) {
	req := validRequest()
	existing := []ExistingReservation{{
		ID:     uuid.New(),
		RoomID: req.RoomID,
		Start:  date(2024, 1, 5), // candidate ends 2024-01-05
		End:    date(2024, 1, 9),
		Status: StatusActive,
	}}
	res := Validate(req, 100, existing, today)
	if !res.OK() {
		t.Fatalf("shared boundary day must not conflict: %v", res.Errors)
	}
}
