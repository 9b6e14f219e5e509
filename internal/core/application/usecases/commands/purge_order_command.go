package commands

import (
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/guard"
)

var ErrPurgeOrderCommandIsNotConstructed = errors.New(
	"PurgeOrderCommand must be created via NewPurgeOrderCommand constructor",
)

// PurgeOrderCommand represents a manager permanently deleting an order.
// Unlike cancellation, purging removes the rows entirely, including the
// order's ledger records.
type PurgeOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPurgeOrderCommand creates a command to purge an order.
func NewPurgeOrderCommand(orderID kernel.UUID) (PurgeOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return PurgeOrderCommand{}, err
	}

	return PurgeOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPurgeOrderCommandIsNotConstructed if validation fails.
func (c PurgeOrderCommand) Validate() error {
	return c.guard.Validate(ErrPurgeOrderCommandIsNotConstructed)
}

// OrderID returns the order to purge.
func (c PurgeOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
