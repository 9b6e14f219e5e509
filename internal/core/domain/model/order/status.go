package order

import (
	"fmt"

	"tableside/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct floor workflow.
//
// State transitions:
//
//	Active ──> Ready ──┬──> Paid
//	   │        │      │
//	   │        └──────┼──> Cancelled
//	   └───────────────┘
//
// Paid and Cancelled are terminal: no transition leaves either state.
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Active is the initial status when an order is opened for a table.
	// Items may be appended and individually cancelled in this status.
	Active

	// Ready indicates the kitchen has finished preparing the order.
	// Items may still be appended and individually cancelled.
	Ready

	// Paid indicates the order has been settled. Terminal.
	Paid

	// Cancelled indicates the whole order was cancelled. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Active:    "active",
		Ready:     "ready",
		Paid:      "paid",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Active:    "active",
		Ready:     "ready",
		Paid:      "paid",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses a persisted status string back into a Status.
// Returns an error for anything outside the valid status set.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are: Active, Ready, Paid, Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status as stored and serialized.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Paid || s == Cancelled
}

// CanAcceptItems reports whether items may still be appended to or
// individually cancelled on an order in this status.
func (s Status) CanAcceptItems() bool {
	return s == Active || s == Ready
}

// MarkReady transitions the status to Ready.
//
// Valid transitions:
//   - Active -> Ready
//
// Marking an already-ready, paid or cancelled order is a conflict, not a
// no-op: the caller raced with another terminal acting on the same order.
func (s Status) MarkReady() (Status, error) {
	if s != Active {
		return Unknown, errs.NewConflictError(
			fmt.Sprintf("order in status %s cannot be marked ready", s),
		)
	}
	return Ready, nil
}

// Pay transitions the status to Paid.
//
// Valid transitions:
//   - Active -> Paid
//   - Ready -> Paid
func (s Status) Pay() (Status, error) {
	if s != Active && s != Ready {
		return Unknown, errs.NewConflictError(
			fmt.Sprintf("order in status %s cannot be paid", s),
		)
	}
	return Paid, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Active -> Cancelled
//   - Ready -> Cancelled
func (s Status) Cancel() (Status, error) {
	if s != Active && s != Ready {
		return Unknown, errs.NewConflictError(
			fmt.Sprintf("order in status %s cannot be cancelled", s),
		)
	}
	return Cancelled, nil
}
