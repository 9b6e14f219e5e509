package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/domain/model/cancellation"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing := testOrder(mustTable(6))
	originalTotal := existing.TotalAmount()
	canceledBy := kernel.NewUUID()

	cmd, err := commands.NewCancelOrderCommand(existing.ID(), "table left", canceledBy)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	ledger := new(MockCancellationRepository)
	uow := new(MockCancelUoW)
	factory := new(MockCancelUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, existing.ID()).Return(existing, nil).Once(),
		orderRepo.On("Update", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.Status() == order.Cancelled && o.TotalAmount() == originalTotal
		})).Return(nil).Once(),
		uow.On("CancellationRepository").Return(ledger).Once(),
		ledger.On("Add", ctx, mock.MatchedBy(func(r *cancellation.Record) bool {
			return r.Kind() == cancellation.KindFullOrder &&
				r.OrderID().IsEqual(existing.ID()) &&
				r.ItemID() == nil &&
				r.Reason() == "table left" &&
				r.CanceledBy().IsEqual(canceledBy)
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCancelOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	ledger.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_PaidOrder_ReturnsConflict(t *testing.T) {
	ctx := t.Context()
	existing := testOrder(mustTable(6))
	require.NoError(t, existing.Pay(testTime()))

	cmd, err := commands.NewCancelOrderCommand(existing.ID(), "oops", kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockCancelUoW)
	factory := new(MockCancelUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, existing.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCancelOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "CancellationRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewCancelOrderCommand_RequiresReason(t *testing.T) {
	_, err := commands.NewCancelOrderCommand(kernel.NewUUID(), "", kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
