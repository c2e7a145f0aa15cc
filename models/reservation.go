package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostal-backend/booking"
)

// Reservation is a booking intent for a room over an inclusive date range.
// Rows are never deleted; they only move through the booking status graph.
// StartDate, EndDate and QuotedTotal are derived by the booking engine on
// creation and are not writable through the API.
type Reservation struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`

	GuestID         uuid.UUID `gorm:"type:uuid;index;not null"`
	RoomID          uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index;not null"`

	StartDate    time.Time      `gorm:"type:date;not null"`
	EndDate      time.Time      `gorm:"type:date;not null;index"`
	Period       booking.Period `gorm:"type:varchar(10);not null"`
	PeriodsCount int            `gorm:"not null"`

	QuotedTotal float64 `gorm:"type:decimal(10,2);not null"`
	Currency    string  `gorm:"type:varchar(3);not null"`

	Status             booking.Status `gorm:"type:varchar(15);not null;index;default:'pending'"`
	Notes              string
	CancellationReason string // set only when status is cancelled

	ConfirmedAt  *time.Time
	CheckedOutAt *time.Time
	CancelledAt  *time.Time

	Guest Guest `gorm:"foreignKey:GuestID"`
	Room  Room  `gorm:"foreignKey:RoomID"`

	gorm.Model
}

// Snapshot converts a stored reservation into the engine's conflict-check
// representation.
func (r Reservation) Snapshot() booking.ExistingReservation {
	return booking.ExistingReservation{
		ID:     r.ID,
		RoomID: r.RoomID,
		Start:  r.StartDate,
		End:    r.EndDate,
		Status: r.Status,
	}
}
