package commands

import (
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/guard"
)

var ErrAddItemsCommandIsNotConstructed = errors.New(
	"AddItemsCommand must be created via NewAddItemsCommand constructor",
)

// AddItemsCommand represents a request to append item lines to an open tab.
type AddItemsCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	waiterID kernel.UUID
	items    []ItemSpec

	guard guard.ConstructorGuard
}

// NewAddItemsCommand creates a command to append item lines.
// Validates the order id, the appending waiter and every item line.
func NewAddItemsCommand(
	orderID kernel.UUID,
	waiterID kernel.UUID,
	items []ItemSpec,
) (AddItemsCommand, error) {
	cmd := AddItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setWaiterID(waiterID),
		cmd.setItems(items),
	); err != nil {
		return AddItemsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddItemsCommandIsNotConstructed if validation fails.
func (c AddItemsCommand) Validate() error {
	return c.guard.Validate(ErrAddItemsCommandIsNotConstructed)
}

// OrderID returns the tab the lines are appended to.
func (c AddItemsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// WaiterID returns the waiter appending the lines.
func (c AddItemsCommand) WaiterID() kernel.UUID {
	return c.waiterID
}

// Items returns the item lines to append.
func (c AddItemsCommand) Items() []ItemSpec {
	return c.items
}

func (c *AddItemsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddItemsCommand) setWaiterID(waiterID kernel.UUID) error {
	if err := waiterID.Validate(); err != nil {
		return err
	}

	c.waiterID = waiterID
	return nil
}

func (c *AddItemsCommand) setItems(items []ItemSpec) error {
	if err := validateItemSpecs(items); err != nil {
		return err
	}

	c.items = items
	return nil
}
