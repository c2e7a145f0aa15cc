package booking

import (
	"math"
	"time"
)

// DefaultTaxPercent is the Venezuelan IVA rate applied to taxable invoice
// lines unless overridden per line.
const DefaultTaxPercent = 16.0

// QuoteTotal prices a stay: nightly rate times billable days. The currency is
// the room's and is never converted here.
func QuoteTotal(nightlyRate float64, totalDays int) float64 {
	return nightlyRate * float64(totalDays)
}

// Line is one invoice line item.
type Line struct {
	Description string
	Quantity    int
	UnitPrice   float64
	Taxable     bool
	TaxPercent  float64
}

// Totals are always derived from the lines, never stored independently.
type Totals struct {
	Subtotal  float64
	TaxAmount float64
	Total     float64
}

// InvoiceTotals sums quantity × unit price per line into the subtotal and
// applies each taxable line's own percentage to the tax amount. Non-taxable
// lines contribute zero tax regardless of their stored percentage. No rounding
// happens here; callers round at presentation time.
func InvoiceTotals(lines []Line) Totals {
	var t Totals
	for _, l := range lines {
		lineTotal := float64(l.Quantity) * l.UnitPrice
		t.Subtotal += lineTotal
		if l.Taxable {
			t.TaxAmount += lineTotal * l.TaxPercent / 100
		}
	}
	t.Total = t.Subtotal + t.TaxAmount
	return t
}

// NightsBetween counts billable nights for an occupancy, rounding any started
// day up. An open occupancy (no checkout yet) is measured against now.
func NightsBetween(checkIn time.Time, checkOut *time.Time, now time.Time) int {
	end := now
	if checkOut != nil {
		end = *checkOut
	}
	if !end.After(checkIn) {
		return 0
	}
	return int(math.Ceil(end.Sub(checkIn).Hours() / 24))
}

// OccupancyLine derives the invoice line for one occupancy: nights stayed at
// the room's nightly rate, taxable at the default IVA rate.
func OccupancyLine(description string, nightlyRate float64, checkIn time.Time, checkOut *time.Time, now time.Time) Line {
	return Line{
		Description: description,
		Quantity:    NightsBetween(checkIn, checkOut, now),
		UnitPrice:   nightlyRate,
		Taxable:     true,
		TaxPercent:  DefaultTaxPercent,
	}
}
