package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Occupancy records a guest physically occupying a room. Opened when the
// reservation is confirmed, closed at check-out; a nil CheckOut means the
// guest is still in the room.
type Occupancy struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`

	ReservationID uuid.UUID `gorm:"type:uuid;index;not null"`
	GuestID       uuid.UUID `gorm:"type:uuid;index;not null"`
	RoomID        uuid.UUID `gorm:"type:uuid;index;not null"`

	CheckIn  time.Time `gorm:"not null"`
	CheckOut *time.Time

	Guest Guest `gorm:"foreignKey:GuestID"`
	Room  Room  `gorm:"foreignKey:RoomID"`

	gorm.Model
}
