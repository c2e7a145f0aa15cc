package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Payment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	InvoiceID uuid.UUID `gorm:"type:uuid;index;not null"`

	Amount     float64   `gorm:"type:decimal(10,2);not null"`
	Currency   string    `gorm:"type:varchar(3);not null;default:'VES'"`
	Method     string    `gorm:"type:varchar(20);not null"` // 'cash', 'transfer', 'card', 'mobile'
	Reference  string    // bank or mobile-payment reference number
	ReceivedAt time.Time `gorm:"default:CURRENT_TIMESTAMP"`

	gorm.Model
}
