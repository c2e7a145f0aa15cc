package booking

import (
	"fmt"
	"strings"
)

// Status of a reservation. Reservations are never deleted, only moved through
// this graph: pending -> active -> checked_out, with cancellation possible
// from pending or active. checked_out and cancelled are terminal.
type Status string

const (
	StatusPending    Status = "pending"
	StatusActive     Status = "active"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
)

const (
	MinCancelReasonLen = 10
	MaxCancelReasonLen = 500
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusActive, StatusCheckedOut, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is legal from s.
func (s Status) Terminal() bool {
	return s == StatusCheckedOut || s == StatusCancelled
}

// InvalidTransitionError signals a transition the state graph forbids. This is
// a caller defect, not a user input problem, and is surfaced separately from
// ValidationError.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid reservation transition from %s to %s", e.From, e.To)
}

// Confirm moves a pending reservation to active.
func Confirm(current Status) (Status, error) {
	if current != StatusPending {
		return current, &InvalidTransitionError{From: current, To: StatusActive}
	}
	return StatusActive, nil
}

// CheckOut completes an active stay.
func CheckOut(current Status) (Status, error) {
	if current != StatusActive {
		return current, &InvalidTransitionError{From: current, To: StatusCheckedOut}
	}
	return StatusCheckedOut, nil
}

// Cancel aborts a pending or active reservation. The reason is mandatory and
// length-bounded; a bad reason is a validation failure and leaves the state
// untouched, while cancelling from a terminal state is an InvalidTransitionError.
func Cancel(current Status, reason string) (Status, error) {
	if current != StatusPending && current != StatusActive {
		return current, &InvalidTransitionError{From: current, To: StatusCancelled}
	}
	reason = strings.TrimSpace(reason)
	if len(reason) < MinCancelReasonLen {
		return current, &ValidationError{
			Field:   "cancellation_reason",
			Message: fmt.Sprintf("cancellation reason must be at least %d characters", MinCancelReasonLen),
		}
	}
	if len(reason) > MaxCancelReasonLen {
		return current, &ValidationError{
			Field:   "cancellation_reason",
			Message: fmt.Sprintf("cancellation reason must be at most %d characters", MaxCancelReasonLen),
		}
	}
	return StatusCancelled, nil
}
