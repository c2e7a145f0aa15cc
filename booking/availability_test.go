package booking

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestFindConflict(t *testing.T) {
	room := uuid.New()
	otherRoom := uuid.New()
	existingID := uuid.New()

	existing := func(status Status) []ExistingReservation {
		return []ExistingReservation{{
			ID:     existingID,
			RoomID: room,
			Start:  date(2024, 3, 1),
			End:    date(2024, 3, 10),
			Status: status,
		}}
	}

	cases := []struct {
		name       string
		roomID     uuid.UUID
		start, end time.Time
		existing   []ExistingReservation
		conflict   bool
	}{
		{"back to back on checkout day", room, date(2024, 3, 10), date(2024, 3, 15), existing(StatusActive), false},
		{"overlap by one day", room, date(2024, 3, 9), date(2024, 3, 12), existing(StatusActive), true},
		{"fully inside", room, date(2024, 3, 3), date(2024, 3, 5), existing(StatusActive), true},
		{"fully covering", room, date(2024, 2, 1), date(2024, 4, 1), existing(StatusActive), true},
		{"ends on check-in day", room, date(2024, 2, 20), date(2024, 3, 1), existing(StatusActive), false},
		{"entirely before", room, date(2024, 2, 1), date(2024, 2, 15), existing(StatusActive), false},
		{"entirely after", room, date(2024, 3, 20), date(2024, 3, 25), existing(StatusActive), false},
		{"pending blocks too", room, date(2024, 3, 5), date(2024, 3, 6), existing(StatusPending), true},
		{"cancelled never blocks", room, date(2024, 3, 5), date(2024, 3, 6), existing(StatusCancelled), false},
		{"checked out never blocks", room, date(2024, 3, 5), date(2024, 3, 6), existing(StatusCheckedOut), false},
		{"different room", otherRoom, date(2024, 3, 5), date(2024, 3, 6), existing(StatusActive), false},
		{"empty snapshot", room, date(2024, 3, 5), date(2024, 3, 6), nil, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := FindConflict(c.roomID, c.start, c.end, c.existing)
			if c.conflict && got == nil {
				t.Fatal("expected a conflict, got none")
			}
			if !c.conflict && got != nil {
				t.Fatalf("expected no conflict, got %+v", got)
			}
			if got != nil {
				if got.ReservationID != existingID {
					t.Errorf("conflict references %s, want %s", got.ReservationID, existingID)
				}
				if !got.Start.Equal(date(2024, 3, 1)) || !got.End.Equal(date(2024, 3, 10)) {
					t.Errorf("conflict range %s..%s, want existing reservation range", got.Start, got.End)
				}
			}
		})
	}
}

func TestFindConflictIgnoresTimeOfDay(t *testing.T) {
	room := uuid.New()
	existing := []ExistingReservation{{
		ID:     uuid.New(),
		RoomID: room,
		Start:  time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC),
		End:    time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC),
		Status: StatusActive,
	}}
	// Candidate starts on the checkout day at an earlier clock time; still no
	// conflict because availability works on whole days.
	if got := FindConflict(room, time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC), date(2024, 3, 15), existing); got != nil {
		t.Fatalf("same-day turnover must be allowed, got %+v", got)
	}
}

func TestConflictRangeLabel(t *testing.T) {
	c := Conflict{Start: date(2024, 3, 1), End: date(2024, 3, 10)}
	if got := c.RangeLabel(); got != "2024-03-01 to 2024-03-10" {
		t.Errorf("RangeLabel = %q", got)
	}
}
