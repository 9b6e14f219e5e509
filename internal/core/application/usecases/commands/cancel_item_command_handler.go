package commands

import (
	"context"
	"time"

	"tableside/internal/core/domain/model/cancellation"
	"tableside/internal/core/domain/model/kernel"
)

// CancelItemCommandHandler handles striking a single item line. The status
// flip, the total decrement and the ledger record commit in one transaction.
type CancelItemCommandHandler struct {
	uowFactory CancelUoWFactory
}

// NewCancelItemCommandHandler creates a handler for item cancellations.
// Requires a CancelUoWFactory for transactional persistence across the order
// and the ledger.
func NewCancelItemCommandHandler(uowFactory CancelUoWFactory) CancelItemCommandHandler {
	return CancelItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the id of the order owning the
// struck line, so callers can load the updated snapshot. Loading the order
// by item id under a row lock makes concurrent double cancels serialize:
// the second one finds the line already cancelled and fails with a conflict,
// leaving the total decremented exactly once.
func (h *CancelItemCommandHandler) Handle(ctx context.Context, cmd CancelItemCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.GetByItemForUpdate(ctx, cmd.ItemID())
	if err != nil {
		return kernel.UUID{}, err
	}

	if _, err = aggregate.CancelItem(cmd.ItemID()); err != nil {
		return kernel.UUID{}, err
	}

	record, err := cancellation.NewItemCancellation(
		kernel.NewUUID(), aggregate.ID(), cmd.ItemID(), cmd.Reason(), cmd.CanceledBy(), time.Now().UTC(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.CancellationRepository().Add(ctx, record); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}
