package commands

import (
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

var ErrCancelItemCommandIsNotConstructed = errors.New(
	"CancelItemCommand must be created via NewCancelItemCommand constructor",
)

// CancelItemCommand represents a request to strike a single item line.
// Clients address the line by its own id; the engine resolves the owning
// order itself.
type CancelItemCommand struct { //nolint:recvcheck //using for validation
	itemID     kernel.UUID
	reason     string
	canceledBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelItemCommand creates a command to strike an item line.
// Validates the item id, the non-empty reason and the cancelling waiter.
func NewCancelItemCommand(
	itemID kernel.UUID,
	reason string,
	canceledBy kernel.UUID,
) (CancelItemCommand, error) {
	cmd := CancelItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setReason(reason),
		cmd.setCanceledBy(canceledBy),
	); err != nil {
		return CancelItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelItemCommandIsNotConstructed if validation fails.
func (c CancelItemCommand) Validate() error {
	return c.guard.Validate(ErrCancelItemCommandIsNotConstructed)
}

// ItemID returns the item line to strike.
func (c CancelItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Reason returns the free-text cancellation reason.
func (c CancelItemCommand) Reason() string {
	return c.reason
}

// CanceledBy returns the waiter performing the cancellation.
func (c CancelItemCommand) CanceledBy() kernel.UUID {
	return c.canceledBy
}

func (c *CancelItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *CancelItemCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}

func (c *CancelItemCommand) setCanceledBy(canceledBy kernel.UUID) error {
	if err := canceledBy.Validate(); err != nil {
		return err
	}

	c.canceledBy = canceledBy
	return nil
}
