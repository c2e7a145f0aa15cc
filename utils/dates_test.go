package utils

import (
	"testing"
	"time"
)

func TestDaysBetween(t *testing.T) {
	start := time.Date(2024, 3, 1, 22, 15, 0, 0, time.UTC)
	end := time.Date(2024, 3, 4, 6, 0, 0, 0, time.UTC)
	if got := DaysBetween(start, end); got != 3 {
		t.Errorf("DaysBetween = %d, want 3 (clock time must not matter)", got)
	}
	if got := DaysBetween(start, start); got != 0 {
		t.Errorf("DaysBetween same day = %d, want 0", got)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-01-15")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got.Year() != 2024 || got.Month() != time.January || got.Day() != 15 {
		t.Errorf("ParseDate = %v", got)
	}
	if _, err := ParseDate("15/01/2024"); err == nil {
		t.Error("non-ISO date must be rejected")
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(130.456); got != 130.46 {
		t.Errorf("Round2(130.456) = %v, want 130.46", got)
	}
	if got := Round2(16.0000001); got != 16 {
		t.Errorf("Round2 = %v, want 16", got)
	}
}
