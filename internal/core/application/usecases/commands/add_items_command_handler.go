package commands

import (
	"context"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
)

// AddItemsCommandHandler handles the business logic for appending item lines
// to an open tab. The total moves up together with the new lines in one
// transaction.
type AddItemsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddItemsCommandHandler creates a handler for append operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewAddItemsCommandHandler(uowFactory OrderUoWFactory) AddItemsCommandHandler {
	return AddItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command. Loads the order under a row lock so
// concurrent appends and transitions serialize, appends the lines, and
// persists the updated aggregate. Appending to a paid or cancelled order
// fails with a conflict.
func (h *AddItemsCommandHandler) Handle(ctx context.Context, cmd AddItemsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	items := make([]*order.Item, 0, len(cmd.Items()))
	for _, spec := range cmd.Items() {
		item, err := order.NewItem(kernel.NewUUID(), spec.Name, spec.Quantity, spec.Price, cmd.WaiterID(), now)
		if err != nil {
			return err
		}
		items = append(items, item)
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

	if err = aggregate.AddItems(items); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
