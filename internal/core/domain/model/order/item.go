package order

import (
	"errors"
	"fmt"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem or RestoreItem factory methods.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one ordered dish line within an Order: a name, a quantity and the
// unit price captured at ordering time. Items are entities owned by the Order
// aggregate; all mutations go through the aggregate root.
//
// Invariants:
//   - Name must be non-empty
//   - Quantity must be at least 1
//   - Unit price must not be negative
//   - Status transitions ItemActive -> ItemCancelled at most once
type Item struct {
	// id is the unique identifier for the item line
	id kernel.UUID

	// name is the dish name as captured from the menu at ordering time
	name string

	// quantity is the number of units ordered (>= 1)
	quantity int

	// price is the unit price captured at ordering time
	price float64

	// status is the current state of the item line
	status ItemStatus

	// addedAt is when the line was appended to the order
	addedAt time.Time

	// addedBy is the waiter who appended the line
	addedBy kernel.UUID

	// isConstructed ensures the item was created via a factory method
	isConstructed bool
}

// NewItem creates a new active Item with validation. This is the only way to
// create a valid item line for a fresh order or an append operation.
func NewItem(
	id kernel.UUID,
	name string,
	quantity int,
	price float64,
	addedBy kernel.UUID,
	addedAt time.Time,
) (*Item, error) {
	item := &Item{
		status:        ItemActive,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setQuantity(quantity),
		item.setPrice(price),
		item.setAddedBy(addedBy),
		item.setAddedAt(addedAt),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an Item from persistence, including its stored
// status. Used only by the storage layer.
func RestoreItem(
	id kernel.UUID,
	name string,
	quantity int,
	price float64,
	status ItemStatus,
	addedBy kernel.UUID,
	addedAt time.Time,
) (*Item, error) {
	item, err := NewItem(id, name, quantity, price, addedBy, addedAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	item.status = status

	return item, nil
}

// Validate ensures the Item instance was properly constructed through a
// factory method.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Name returns the dish name.
func (i *Item) Name() string {
	return i.name
}

// Quantity returns the number of units ordered.
func (i *Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price captured at ordering time.
func (i *Item) Price() float64 {
	return i.price
}

// Status returns the current status of the item line.
func (i *Item) Status() ItemStatus {
	return i.status
}

// AddedAt returns when the line was appended to its order.
func (i *Item) AddedAt() time.Time {
	return i.addedAt
}

// AddedBy returns the waiter who appended the line.
func (i *Item) AddedBy() kernel.UUID {
	return i.addedBy
}

// Amount returns the line total: unit price multiplied by quantity.
func (i *Item) Amount() float64 {
	return i.price * float64(i.quantity)
}

// Cancel transitions the item to ItemCancelled.
// Returns a conflict error if the item is already cancelled.
func (i *Item) Cancel() error {
	newStatus, err := i.status.Cancel()
	if err != nil {
		return err
	}

	i.status = newStatus
	return nil
}

// cancelUnconditionally marks the item cancelled regardless of its prior
// status. Used only by whole-order cancellation, which freezes every line.
func (i *Item) cancelUnconditionally() {
	i.status = ItemCancelled
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not at least 1", quantity),
		)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%v is negative", price),
		)
	}
	i.price = price
	return nil
}

func (i *Item) setAddedBy(addedBy kernel.UUID) error {
	if err := addedBy.Validate(); err != nil {
		return err
	}
	i.addedBy = addedBy
	return nil
}

func (i *Item) setAddedAt(addedAt time.Time) error {
	if addedAt.IsZero() {
		return errs.NewValueIsRequiredError("addedAt")
	}
	i.addedAt = addedAt
	return nil
}
