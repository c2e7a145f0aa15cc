package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaintenanceRequest struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	RoomID uuid.UUID `gorm:"type:uuid;index;not null"`

	Description string `gorm:"not null"`
	Priority    string `gorm:"type:varchar(10);not null;default:'normal'"` // 'low', 'normal', 'urgent'
	Status      string `gorm:"type:varchar(15);not null;default:'open'"`   // 'open', 'in_progress', 'resolved'

	ReportedByUserID uuid.UUID `gorm:"type:uuid;index;not null"`
	ResolvedAt       *time.Time

	Room Room `gorm:"foreignKey:RoomID"`

	gorm.Model
}
