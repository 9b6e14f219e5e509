package commands

import (
	"context"
)

// PurgeOrderCommandHandler handles permanent order deletion. The order, its
// item lines and its ledger records disappear in one transaction.
type PurgeOrderCommandHandler struct {
	uowFactory CancelUoWFactory
}

// NewPurgeOrderCommandHandler creates a handler for purge operations.
// Requires a CancelUoWFactory because both the order store and the ledger
// are touched.
func NewPurgeOrderCommandHandler(uowFactory CancelUoWFactory) PurgeOrderCommandHandler {
	return PurgeOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command. Fails with a not-found error when the order
// does not exist; purging works on orders of any status.
func (h *PurgeOrderCommandHandler) Handle(ctx context.Context, cmd PurgeOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = uow.CancellationRepository().PurgeByOrder(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = orderRepo.Purge(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
