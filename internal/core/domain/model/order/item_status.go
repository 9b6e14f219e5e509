package order

import (
	"fmt"

	"tableside/internal/pkg/errs"
)

// ItemStatus represents the lifecycle state of a single item line.
// An item starts Active and may transition to ItemCancelled exactly once;
// ItemCancelled is terminal.
type ItemStatus int

const (
	// ItemUnknown represents an invalid or undefined item status.
	ItemUnknown ItemStatus = iota

	// ItemActive is the initial status of an item; active items count
	// toward the order total.
	ItemActive

	// ItemCancelled indicates the item line was struck from the order.
	// Terminal; the item no longer counts toward the order total.
	ItemCancelled
)

func getItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		ItemUnknown:   "unknown",
		ItemActive:    "active",
		ItemCancelled: "cancelled",
	}
}

// ItemStatusFromString parses a persisted item status string.
func ItemStatusFromString(s string) (ItemStatus, error) {
	switch s {
	case "active":
		return ItemActive, nil
	case "cancelled":
		return ItemCancelled, nil
	default:
		return ItemUnknown, errs.NewValueIsInvalidErrorWithCause(
			"itemStatus",
			fmt.Errorf("%q is not a valid item status", s),
		)
	}
}

// Validate checks if the ItemStatus value is valid.
func (s ItemStatus) Validate() error {
	if s != ItemActive && s != ItemCancelled {
		return errs.NewValueIsInvalidErrorWithCause("itemStatus", fmt.Errorf("%d is not a valid item status", s))
	}
	return nil
}

// String returns the lowercase name of the item status.
func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Cancel transitions the item status to ItemCancelled.
// Cancelling an already-cancelled item is a conflict; this guard is what makes
// a retried cancellation fail cleanly instead of double-decrementing totals.
func (s ItemStatus) Cancel() (ItemStatus, error) {
	if s != ItemActive {
		return ItemUnknown, errs.NewConflictError(
			fmt.Sprintf("item in status %s cannot be cancelled", s),
		)
	}
	return ItemCancelled, nil
}
