package booking

import (
	"errors"
	"strings"
	"testing"
)

const goodReason = "guest requested a refund" // comfortably over the minimum

func TestConfirm(t *testing.T) {
	got, err := Confirm(StatusPending)
	if err != nil {
		t.Fatalf("confirm from pending: %v", err)
	}
	if got != StatusActive {
		t.Fatalf("confirm = %s, want active", got)
	}

	for _, from := range []Status{StatusActive, StatusCheckedOut, StatusCancelled} {
		got, err := Confirm(from)
		var ite *InvalidTransitionError
		if !errors.As(err, &ite) {
			t.Errorf("confirm from %s: want InvalidTransitionError, got %v", from, err)
		}
		if got != from {
			t.Errorf("confirm from %s changed state to %s", from, got)
		}
	}
}

func TestCheckOut(t *testing.T) {
	got, err := CheckOut(StatusActive)
	if err != nil {
		t.Fatalf("check-out from active: %v", err)
	}
	if got != StatusCheckedOut {
		t.Fatalf("check-out = %s, want checked_out", got)
	}

	for _, from := range []Status{StatusPending, StatusCheckedOut, StatusCancelled} {
		got, err := CheckOut(from)
		var ite *InvalidTransitionError
		if !errors.As(err, &ite) {
			t.Errorf("check-out from %s: want InvalidTransitionError, got %v", from, err)
		}
		if got != from {
			t.Errorf("check-out from %s changed state to %s", from, got)
		}
	}
}

func TestCancel(t *testing.T) {
	for _, from := range []Status{StatusPending, StatusActive} {
		got, err := Cancel(from, goodReason)
		if err != nil {
			t.Fatalf("cancel from %s: %v", from, err)
		}
		if got != StatusCancelled {
			t.Fatalf("cancel from %s = %s, want cancelled", from, got)
		}
	}

	for _, from := range []Status{StatusCheckedOut, StatusCancelled} {
		got, err := Cancel(from, goodReason)
		var ite *InvalidTransitionError
		if !errors.As(err, &ite) {
			t.Errorf("cancel from %s: want InvalidTransitionError, got %v", from, err)
		}
		if got != from {
			t.Errorf("cancel from %s changed state to %s", from, got)
		}
	}
}

func TestCancelReasonLength(t *testing.T) {
	// Nine characters fails, exactly ten succeeds.
	got, err := Cancel(StatusActive, "123456789")
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("short reason: want ValidationError, got %v", err)
	}
	if ve.Field != "cancellation_reason" {
		t.Errorf("validation error field = %q", ve.Field)
	}
	if got != StatusActive {
		t.Errorf("rejected cancellation changed state to %s", got)
	}

	if _, err := Cancel(StatusActive, "1234567890"); err != nil {
		t.Fatalf("ten-character reason must pass, got %v", err)
	}

	if _, err := Cancel(StatusActive, strings.Repeat("x", MaxCancelReasonLen+1)); err == nil {
		t.Fatal("over-length reason must fail validation")
	}

	// Padding cannot smuggle a short reason past the minimum.
	if _, err := Cancel(StatusPending, "  short   "); err == nil {
		t.Fatal("whitespace-padded short reason must fail")
	}
}

func TestTerminal(t *testing.T) {
	cases := map[Status]bool{
		StatusPending:    false,
		StatusActive:     false,
		StatusCheckedOut: true,
		StatusCancelled:  true,
	}
	for s, want := range cases {
		if got := s.Terminal(); got != want {
			t.Errorf("%s.Terminal() = %v, want %v", s, got, want)
		}
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusActive, StatusCheckedOut, StatusCancelled} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if Status("confirmed").Valid() || Status("").Valid() {
		t.Error("unknown statuses must be invalid")
	}
}
