package booking

import (
	"math"
	"testing"
	"time"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestQuoteTotal(t *testing.T) {
	if got := QuoteTotal(100, 5); !almostEqual(got, 500) {
		t.Errorf("QuoteTotal(100, 5) = %v, want 500", got)
	}
	// Linear in the day count.
	for _, n := range []int{1, 3, 10, 180} {
		if a, b := QuoteTotal(75.5, 2*n), 2*QuoteTotal(75.5, n); !almostEqual(a, b) {
			t.Errorf("QuoteTotal not linear at n=%d: %v != %v", n, a, b)
		}
	}
}

func TestInvoiceTotals(t *testing.T) {
	lines := []Line{
		{Description: "Room 12, 2 nights", Quantity: 2, UnitPrice: 50, Taxable: true, TaxPercent: 16},
		{Description: "Laundry", Quantity: 1, UnitPrice: 30, Taxable: false, TaxPercent: 16},
	}
	got := InvoiceTotals(lines)
	if !almostEqual(got.Subtotal, 130) {
		t.Errorf("subtotal = %v, want 130", got.Subtotal)
	}
	if !almostEqual(got.TaxAmount, 16) {
		t.Errorf("tax = %v, want 16", got.TaxAmount)
	}
	if !almostEqual(got.Total, 146) {
		t.Errorf("total = %v, want 146", got.Total)
	}
}

func TestInvoiceTotalsNoTaxableLines(t *testing.T) {
	lines := []Line{
		{Quantity: 3, UnitPrice: 20, Taxable: false, TaxPercent: 16},
		{Quantity: 1, UnitPrice: 99.9, Taxable: false, TaxPercent: 50},
	}
	got := InvoiceTotals(lines)
	if got.TaxAmount != 0 {
		t.Errorf("non-taxable lines must yield zero tax, got %v", got.TaxAmount)
	}
	if !almostEqual(got.Total, got.Subtotal) {
		t.Errorf("total %v must equal subtotal %v when tax is zero", got.Total, got.Subtotal)
	}
}

func TestInvoiceTotalsInvariant(t *testing.T) {
	lines := []Line{
		{Quantity: 2, UnitPrice: 33.33, Taxable: true, TaxPercent: 16},
		{Quantity: 5, UnitPrice: 12.5, Taxable: true, TaxPercent: 8},
		{Quantity: 1, UnitPrice: 7, Taxable: false},
	}
	got := InvoiceTotals(lines)
	if !almostEqual(got.Total, got.Subtotal+got.TaxAmount) {
		t.Errorf("total %v != subtotal %v + tax %v", got.Total, got.Subtotal, got.TaxAmount)
	}
	if got := InvoiceTotals(nil); got.Subtotal != 0 || got.TaxAmount != 0 || got.Total != 0 {
		t.Errorf("empty invoice must total zero, got %+v", got)
	}
}

func TestNightsBetween(t *testing.T) {
	checkIn := time.Date(2024, 5, 1, 14, 0, 0, 0, time.UTC)
	now := time.Date(2024, 5, 4, 10, 0, 0, 0, time.UTC)

	out := time.Date(2024, 5, 3, 14, 0, 0, 0, time.UTC)
	if got := NightsBetween(checkIn, &out, now); got != 2 {
		t.Errorf("exact two days = %d nights, want 2", got)
	}

	partial := time.Date(2024, 5, 3, 15, 30, 0, 0, time.UTC)
	if got := NightsBetween(checkIn, &partial, now); got != 3 {
		t.Errorf("started day must round up, got %d, want 3", got)
	}

	// Open occupancy measures against now.
	if got := NightsBetween(checkIn, nil, now); got != 3 {
		t.Errorf("open occupancy = %d nights, want 3", got)
	}

	same := checkIn
	if got := NightsBetween(checkIn, &same, now); got != 0 {
		t.Errorf("zero-length stay = %d nights, want 0", got)
	}
}

func TestOccupancyLine(t *testing.T) {
	checkIn := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	now := time.Date(2024, 5, 3, 9, 0, 0, 0, time.UTC)
	line := OccupancyLine("Room 7", 80, checkIn, nil, now)
	if line.Quantity != 2 {
		t.Errorf("quantity = %d, want 2", line.Quantity)
	}
	if line.UnitPrice != 80 || !line.Taxable || line.TaxPercent != DefaultTaxPercent {
		t.Errorf("unexpected line: %+v", line)
	}
}
