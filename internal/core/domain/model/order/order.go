package order

import (
	"errors"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents a tab opened for one table. It is the aggregate root that
// owns the item lines and the only place where order/item status transitions
// and total maintenance happen.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, table number and owning waiter
//   - Holds at least one item at creation time
//   - TotalAmount equals the sum of price x quantity over its active items,
//     except on a cancelled order, where the total stays frozen at its last
//     active value for historical display
//   - Status transitions follow the Status state machine; Paid and Cancelled
//     are terminal and freeze the item lines
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// tableNumber is the physical table this tab belongs to
	tableNumber kernel.TableNumber

	// waiterID is the waiter who opened the tab
	waiterID kernel.UUID

	// sessionID is the optional daily session the tab was opened under
	sessionID *kernel.UUID

	// status is the current state in the order lifecycle
	status Status

	// totalAmount is the derived sum over active item lines
	totalAmount float64

	// createdAt is when the tab was opened
	createdAt time.Time

	// paidAt is set exactly once, on the transition to Paid
	paidAt *time.Time

	// items are the item lines, ordered by the time they were added
	items []*Item

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in Active status with the given item lines.
// An order cannot be opened empty; items must contain at least one valid Item.
// The total amount is computed from the items.
//
// Example:
//
//	table, _ := kernel.NewTableNumber(5)
//	item, _ := order.NewItem(kernel.NewUUID(), "Butter Chicken", 2, 380, waiterID, time.Now())
//	o, err := order.NewOrder(kernel.NewUUID(), table, waiterID, nil, []*order.Item{item}, time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	tableNumber kernel.TableNumber,
	waiterID kernel.UUID,
	sessionID *kernel.UUID,
	items []*Item,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        Active,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setTableNumber(tableNumber),
		order.setWaiterID(waiterID),
		order.setSessionID(sessionID),
		order.setCreatedAt(createdAt),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	order.totalAmount = order.activeItemsAmount()

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence. The stored total is
// trusted as-is rather than recomputed, because a cancelled order keeps its
// last active total even though all of its items are cancelled.
// Used only by the storage layer.
func RestoreOrder(
	id kernel.UUID,
	tableNumber kernel.TableNumber,
	waiterID kernel.UUID,
	sessionID *kernel.UUID,
	status Status,
	totalAmount float64,
	createdAt time.Time,
	paidAt *time.Time,
	items []*Item,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setTableNumber(tableNumber),
		order.setWaiterID(waiterID),
		order.setSessionID(sessionID),
		order.setCreatedAt(createdAt),
		order.setItems(items),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	order.status = status
	order.totalAmount = totalAmount
	order.paidAt = paidAt

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Should be called when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TableNumber returns the table this tab belongs to.
func (o *Order) TableNumber() kernel.TableNumber {
	return o.tableNumber
}

// WaiterID returns the waiter who opened the tab.
func (o *Order) WaiterID() kernel.UUID {
	return o.waiterID
}

// SessionID returns the daily session the tab was opened under.
// Returns nil if the tab was opened outside a session.
func (o *Order) SessionID() *kernel.UUID {
	return o.sessionID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the current order total.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// CreatedAt returns when the tab was opened.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// PaidAt returns when the order was paid, or nil if it was not.
func (o *Order) PaidAt() *time.Time {
	return o.paidAt
}

// Items returns the item lines in the order they were added.
func (o *Order) Items() []*Item {
	return o.items
}

// AddItems appends item lines to the order and raises the total by the sum of
// their amounts. Appending is legal while the order is Active or Ready;
// appending to a paid or cancelled order is a conflict.
func (o *Order) AddItems(items []*Item) error {
	if !o.status.CanAcceptItems() {
		return errs.NewConflictError(
			"order in status " + o.status.String() + " cannot accept items",
		)
	}

	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	for _, item := range items {
		o.items = append(o.items, item)
		o.totalAmount += item.Amount()
	}

	return nil
}

// MarkReady transitions the order from Active to Ready.
func (o *Order) MarkReady() error {
	newStatus, err := o.status.MarkReady()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Pay transitions the order to Paid and records the payment time.
// Legal from Active or Ready; Paid is terminal.
func (o *Order) Pay(paidAt time.Time) error {
	newStatus, err := o.status.Pay()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.paidAt = &paidAt
	return nil
}

// Cancel transitions the order to Cancelled and marks every item line
// cancelled regardless of its prior status. The total amount is left at its
// last active value for historical display. Legal from Active or Ready;
// Cancelled is terminal.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	for _, item := range o.items {
		item.cancelUnconditionally()
	}
	return nil
}

// CancelItem strikes a single item line from the order and lowers the total
// by the line amount. Legal only while the order is Active or Ready and the
// item is still active; re-cancelling an already-cancelled item is a conflict,
// which keeps the total decremented exactly once under retries.
func (o *Order) CancelItem(itemID kernel.UUID) (*Item, error) {
	if !o.status.CanAcceptItems() {
		return nil, errs.NewConflictError(
			"items on a " + o.status.String() + " order are frozen",
		)
	}

	item, err := o.findItem(itemID)
	if err != nil {
		return nil, err
	}

	if err = item.Cancel(); err != nil {
		return nil, err
	}

	o.totalAmount -= item.Amount()
	return item, nil
}

// activeItemsAmount sums price x quantity over active item lines.
func (o *Order) activeItemsAmount() float64 {
	var total float64
	for _, item := range o.items {
		if item.Status() == ItemActive {
			total += item.Amount()
		}
	}
	return total
}

func (o *Order) findItem(itemID kernel.UUID) (*Item, error) {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("item", itemID.String())
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTableNumber(tableNumber kernel.TableNumber) error {
	if err := tableNumber.Validate(); err != nil {
		return err
	}
	o.tableNumber = tableNumber
	return nil
}

func (o *Order) setWaiterID(waiterID kernel.UUID) error {
	if err := waiterID.Validate(); err != nil {
		return err
	}
	o.waiterID = waiterID
	return nil
}

func (o *Order) setSessionID(sessionID *kernel.UUID) error {
	if sessionID != nil {
		if err := sessionID.Validate(); err != nil {
			return err
		}
	}
	o.sessionID = sessionID
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}
