package commands

import (
	"context"
	"time"

	"tableside/internal/core/domain/model/cancellation"
	"tableside/internal/core/domain/model/kernel"
)

// CancelOrderCommandHandler handles whole-tab cancellation. The status
// transition, the item freeze and the ledger record commit in one
// transaction, so the ledger never references a tab that is still open.
type CancelOrderCommandHandler struct {
	uowFactory CancelUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for tab cancellations.
// Requires a CancelUoWFactory for transactional persistence across the order
// and the ledger.
func NewCancelOrderCommandHandler(uowFactory CancelUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command. Cancelling is legal from active or ready;
// a single full-order ledger record is written regardless of how many item
// lines the tab held. The total stays frozen at its last active value.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	record, err := cancellation.NewOrderCancellation(
		kernel.NewUUID(), aggregate.ID(), cmd.Reason(), cmd.CanceledBy(), time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.CancellationRepository().Add(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
