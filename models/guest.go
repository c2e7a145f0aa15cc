package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Guest struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`

	Name        string `gorm:"not null"`
	DocumentID  string `gorm:"not null;uniqueIndex"` // cédula or passport number
	Phone       string
	Email       string
	Nationality string
	Notes       string
	IsActive    bool `gorm:"default:true"`

	Reservations []Reservation `gorm:"foreignKey:GuestID"`
	Occupancies  []Occupancy   `gorm:"foreignKey:GuestID"`

	gorm.Model
}
