// Package cancellation contains the append-only audit record written whenever
// an item line or a whole order is cancelled. Records are immutable once
// created and are never consulted to derive order or item state; they exist
// for reporting only.
package cancellation

import (
	"errors"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
)

// ErrRecordIsNotConstructed is returned when a Record instance was not created
// through one of the factory methods.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewItemCancellation or NewOrderCancellation")

// Kind distinguishes the two cancellation shapes in the ledger.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown Kind = iota

	// KindItem marks the cancellation of a single item line.
	KindItem

	// KindFullOrder marks the cancellation of a whole order. A full-order
	// record does not enumerate which items were already cancelled versus
	// newly cancelled; it covers the order as a unit.
	KindFullOrder
)

// KindFromString parses a persisted kind string.
func KindFromString(s string) (Kind, error) {
	switch s {
	case "item":
		return KindItem, nil
	case "full_order":
		return KindFullOrder, nil
	default:
		return KindUnknown, errs.NewValueIsInvalidError("kind")
	}
}

// String returns the persisted representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindItem:
		return "item"
	case KindFullOrder:
		return "full_order"
	default:
		return "unknown"
	}
}

// Validate checks if the Kind value is valid.
func (k Kind) Validate() error {
	if k != KindItem && k != KindFullOrder {
		return errs.NewValueIsInvalidError("kind")
	}
	return nil
}

// Record is one immutable ledger entry: who cancelled what, when, and why.
// ItemID is set only for KindItem records.
type Record struct {
	id         kernel.UUID
	orderID    kernel.UUID
	itemID     *kernel.UUID
	reason     string
	canceledBy kernel.UUID
	canceledAt time.Time
	kind       Kind

	isConstructed bool
}

// NewItemCancellation creates a ledger record for a single cancelled item line.
// The reason is free text and must be non-empty.
func NewItemCancellation(
	id kernel.UUID,
	orderID kernel.UUID,
	itemID kernel.UUID,
	reason string,
	canceledBy kernel.UUID,
	canceledAt time.Time,
) (*Record, error) {
	record, err := newRecord(id, orderID, reason, canceledBy, canceledAt, KindItem)
	if err != nil {
		return nil, err
	}

	if err = itemID.Validate(); err != nil {
		return nil, err
	}
	record.itemID = &itemID

	return record, nil
}

// NewOrderCancellation creates a ledger record for a whole-order cancellation.
// The reason is free text and must be non-empty.
func NewOrderCancellation(
	id kernel.UUID,
	orderID kernel.UUID,
	reason string,
	canceledBy kernel.UUID,
	canceledAt time.Time,
) (*Record, error) {
	return newRecord(id, orderID, reason, canceledBy, canceledAt, KindFullOrder)
}

// RestoreRecord reconstructs a Record from persistence.
// Used only by the storage layer.
func RestoreRecord(
	id kernel.UUID,
	orderID kernel.UUID,
	itemID *kernel.UUID,
	reason string,
	canceledBy kernel.UUID,
	canceledAt time.Time,
	kind Kind,
) (*Record, error) {
	record, err := newRecord(id, orderID, reason, canceledBy, canceledAt, kind)
	if err != nil {
		return nil, err
	}

	if itemID != nil {
		if err = itemID.Validate(); err != nil {
			return nil, err
		}
	}
	record.itemID = itemID

	return record, nil
}

func newRecord(
	id kernel.UUID,
	orderID kernel.UUID,
	reason string,
	canceledBy kernel.UUID,
	canceledAt time.Time,
	kind Kind,
) (*Record, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		canceledBy.Validate(),
		kind.Validate(),
	); err != nil {
		return nil, err
	}

	if reason == "" {
		return nil, errs.NewValueIsRequiredError("reason")
	}
	if canceledAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("canceledAt")
	}

	return &Record{
		id:            id,
		orderID:       orderID,
		reason:        reason,
		canceledBy:    canceledBy,
		canceledAt:    canceledAt,
		kind:          kind,
		isConstructed: true,
	}, nil
}

// Validate ensures the Record instance was properly constructed through a
// factory method.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (r *Record) ID() kernel.UUID {
	return r.id
}

// OrderID returns the order the cancellation applies to.
func (r *Record) OrderID() kernel.UUID {
	return r.orderID
}

// ItemID returns the cancelled item line for KindItem records, nil otherwise.
func (r *Record) ItemID() *kernel.UUID {
	return r.itemID
}

// Reason returns the free-text reason supplied by the waiter.
func (r *Record) Reason() string {
	return r.reason
}

// CanceledBy returns the waiter who performed the cancellation.
func (r *Record) CanceledBy() kernel.UUID {
	return r.canceledBy
}

// CanceledAt returns when the cancellation happened.
func (r *Record) CanceledAt() time.Time {
	return r.canceledAt
}

// Kind returns whether this record covers an item line or a whole order.
func (r *Record) Kind() Kind {
	return r.kind
}
