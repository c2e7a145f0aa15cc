package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Room struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`

	Number      string `gorm:"not null;uniqueIndex"`
	Type        string `gorm:"type:varchar(20);not null;default:'single'"` // 'single', 'double' or 'suite'
	Description string

	NightlyRate float64 `gorm:"type:decimal(10,2);not null"`
	Currency    string  `gorm:"type:varchar(3);not null;default:'VES'"`

	Status string `gorm:"type:varchar(20);not null;default:'available'"` // 'available', 'occupied', 'maintenance'

	Reservations        []Reservation        `gorm:"foreignKey:RoomID"`
	Occupancies         []Occupancy          `gorm:"foreignKey:RoomID"`
	MaintenanceRequests []MaintenanceRequest `gorm:"foreignKey:RoomID"`

	gorm.Model
}
