package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostal-backend/booking"
)

// Invoice carries a snapshot of the client taken at creation time, not a live
// guest reference. Subtotal, tax and total are always recomputed from the
// lines before every save; they are stored only so reports can aggregate in
// SQL.
type Invoice struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index;not null"`

	InvoiceNumber string `gorm:"uniqueIndex;not null"`

	ClientName  string `gorm:"not null"`
	ClientTaxID string
	ClientEmail string
	ClientPhone string

	Currency    string    `gorm:"type:varchar(3);not null;default:'VES'"`
	InvoiceDate time.Time `gorm:"default:CURRENT_TIMESTAMP"`
	DueDate     *time.Time

	Subtotal  float64 `gorm:"type:decimal(10,2);not null"`
	TaxAmount float64 `gorm:"type:decimal(10,2);not null"`
	Total     float64 `gorm:"type:decimal(10,2);not null"`

	Notes string

	Lines    []InvoiceLine `gorm:"foreignKey:InvoiceID"`
	Payments []Payment     `gorm:"foreignKey:InvoiceID"`

	gorm.Model
}

type InvoiceLine struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	InvoiceID uuid.UUID `gorm:"type:uuid;index;not null"`

	Description string  `gorm:"not null"`
	Quantity    int     `gorm:"default:1"`
	UnitPrice   float64 `gorm:"type:decimal(10,2);not null"`
	IsTaxable   bool    `gorm:"default:true"`
	TaxPercent  float64 `gorm:"type:decimal(5,2);default:16.0"`
}

// Recalculate derives the stored totals from the lines via the pricing
// engine. Call before every save; client-supplied totals are never trusted.
func (inv *Invoice) Recalculate() {
	lines := make([]booking.Line, len(inv.Lines))
	for i, l := range inv.Lines {
		lines[i] = booking.Line{
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Taxable:     l.IsTaxable,
			TaxPercent:  l.TaxPercent,
		}
	}
	totals := booking.InvoiceTotals(lines)
	inv.Subtotal = totals.Subtotal
	inv.TaxAmount = totals.TaxAmount
	inv.Total = totals.Total
}
