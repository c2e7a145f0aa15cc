package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationLog records every arrival/departure notice attempt so the daily
// scheduler never re-sends for the same reservation and day.
type NotificationLog struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	GuestID       uuid.UUID `gorm:"type:uuid;index;not null"`
	ReservationID uuid.UUID `gorm:"type:uuid;index;not null"`

	Kind         string `gorm:"type:varchar(10);not null"` // 'arrival' or 'departure'
	Channel      string `gorm:"type:varchar(10);not null"` // 'sms' or 'whatsapp'
	Message      string
	Status       string `gorm:"type:varchar(10);not null"` // 'sent' or 'failed'
	ErrorMessage string

	SentAt time.Time

	gorm.Model
}
