package commands

import (
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to open a tab for a table.
// Carries the table number, the waiter opening the tab, an optional session
// reference, and the initial item lines. A tab cannot be opened empty.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, table, waiterID, nil, []ItemSpec{
//	    {Name: "Butter Chicken", Quantity: 2, Price: 380},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to open tab: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	tableNumber kernel.TableNumber
	waiterID    kernel.UUID
	sessionID   *kernel.UUID
	items       []ItemSpec

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a tab.
// Validates the order id, table number, waiter id and every item line.
// Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	tableNumber kernel.TableNumber,
	waiterID kernel.UUID,
	sessionID *kernel.UUID,
	items []ItemSpec,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setTableNumber(tableNumber),
		orderCommand.setWaiterID(waiterID),
		orderCommand.setSessionID(sessionID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TableNumber returns the table the tab is opened for.
func (c CreateOrderCommand) TableNumber() kernel.TableNumber {
	return c.tableNumber
}

// WaiterID returns the waiter opening the tab.
func (c CreateOrderCommand) WaiterID() kernel.UUID {
	return c.waiterID
}

// SessionID returns the optional daily session reference.
func (c CreateOrderCommand) SessionID() *kernel.UUID {
	return c.sessionID
}

// Items returns the initial item lines.
func (c CreateOrderCommand) Items() []ItemSpec {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setTableNumber(tableNumber kernel.TableNumber) error {
	if err := tableNumber.Validate(); err != nil {
		return err
	}

	c.tableNumber = tableNumber
	return nil
}

func (c *CreateOrderCommand) setWaiterID(waiterID kernel.UUID) error {
	if err := waiterID.Validate(); err != nil {
		return err
	}

	c.waiterID = waiterID
	return nil
}

func (c *CreateOrderCommand) setSessionID(sessionID *kernel.UUID) error {
	if sessionID != nil {
		if err := sessionID.Validate(); err != nil {
			return err
		}
	}

	c.sessionID = sessionID
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemSpec) error {
	if err := validateItemSpecs(items); err != nil {
		return err
	}

	c.items = items
	return nil
}
