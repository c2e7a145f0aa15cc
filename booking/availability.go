package booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ExistingReservation is the snapshot of a stored reservation the checker
// works against. The caller (persistence layer) fetches and hands over the
// room's reservation list; this package never touches storage.
type ExistingReservation struct {
	ID     uuid.UUID
	RoomID uuid.UUID
	Start  time.Time
	End    time.Time
	Status Status
}

// Conflict identifies the reservation blocking a candidate range.
type Conflict struct {
	ReservationID uuid.UUID
	Start         time.Time
	End           time.Time
}

// RangeLabel renders the blocking range for user display.
func (c *Conflict) RangeLabel() string {
	return fmt.Sprintf("%s to %s", c.Start.Format("2006-01-02"), c.End.Format("2006-01-02"))
}

// FindConflict returns any reservation on roomID that overlaps the inclusive
// candidate range [start, end], or nil when the range is free. Cancelled and
// checked-out reservations never block. Two inclusive ranges conflict only
// when each starts strictly before the other ends, so a checkout day shared
// with the next check-in day is allowed (same-day turnover).
func FindConflict(roomID uuid.UUID, start, end time.Time, existing []ExistingReservation) *Conflict {
	start = DateOnly(start)
	end = DateOnly(end)
	for _, r := range existing {
		if r.RoomID != roomID || r.Status.Terminal() {
			continue
		}
		rStart := DateOnly(r.Start)
		rEnd := DateOnly(r.End)
		if start.Before(rEnd) && rStart.Before(end) {
			return &Conflict{ReservationID: r.ID, Start: rStart, End: rEnd}
		}
	}
	return nil
}
