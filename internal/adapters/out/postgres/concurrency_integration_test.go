package postgres_test

import (
	"context"
	"time"

	"tableside/internal/adapters/out/postgres/cancellationrepo"
	"tableside/internal/adapters/out/postgres/orderrepo"
	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"
)

type orderUoWFactoryFunc func() commands.OrderUoW

func (f orderUoWFactoryFunc) Create() commands.OrderUoW {
	return f()
}

type cancelUoWFactoryFunc func() commands.CancelUoW

func (f cancelUoWFactoryFunc) Create() commands.CancelUoW {
	return f()
}

// Two waiters race to open a tab for the same table. The partial unique
// index serializes the inserts, so exactly one create wins and the loser
// surfaces a conflict regardless of how the transactions interleave.
func (suite *UnitOfWorkTestSuite) TestConcurrentCreate_SameTable_ExactlyOneWins() {
	ctx := context.Background()

	handler := commands.NewCreateOrderCommandHandler(orderUoWFactoryFunc(func() commands.OrderUoW {
		return suite.factory.Create()
	}))

	tableNumber, err := kernel.NewTableNumber(9)
	suite.Require().NoError(err)

	gate := make(chan struct{})
	results := make(chan error, 2)
	for range 2 {
		go func() {
			cmd, cmdErr := commands.NewCreateOrderCommand(
				kernel.NewUUID(), tableNumber, kernel.NewUUID(), nil,
				[]commands.ItemSpec{{Name: "Masala Chai", Quantity: 1, Price: 40}},
			)
			if cmdErr != nil {
				results <- cmdErr
				return
			}
			<-gate
			results <- handler.Handle(ctx, cmd)
		}()
	}
	close(gate)

	var successes, conflicts int
	for range 2 {
		if resErr := <-results; resErr != nil {
			suite.Require().ErrorIs(resErr, errs.ErrConflict)
			conflicts++
		} else {
			successes++
		}
	}
	suite.Equal(1, successes)
	suite.Equal(1, conflicts)

	var openRows int64
	err = suite.db.Model(&orderrepo.OrderDTO{}).
		Where("table_number = ? AND status IN ?", 9, []string{"active", "ready"}).
		Count(&openRows).Error
	suite.Require().NoError(err)
	suite.Equal(int64(1), openRows)
}

// Two devices race to strike the same item line. The order-row lock makes
// the second transaction re-read the line after the first commits, so the
// strike lands once: one conflict, one ledger row, total decremented once.
func (suite *UnitOfWorkTestSuite) TestConcurrentCancelItem_DecrementsTotalOnce() {
	ctx := context.Background()
	now := time.Now().UTC()

	tableNumber, err := kernel.NewTableNumber(4)
	suite.Require().NoError(err)

	chicken, err := order.NewItem(kernel.NewUUID(), "Butter Chicken", 2, 380, kernel.NewUUID(), now)
	suite.Require().NoError(err)
	naan, err := order.NewItem(kernel.NewUUID(), "Butter Naan", 3, 60, kernel.NewUUID(), now)
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(), tableNumber, kernel.NewUUID(), nil,
		[]*order.Item{chicken, naan}, now,
	)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	handler := commands.NewCancelItemCommandHandler(cancelUoWFactoryFunc(func() commands.CancelUoW {
		return suite.factory.Create()
	}))

	gate := make(chan struct{})
	results := make(chan error, 2)
	for range 2 {
		go func() {
			cmd, cmdErr := commands.NewCancelItemCommand(naan.ID(), "changed mind", kernel.NewUUID())
			if cmdErr != nil {
				results <- cmdErr
				return
			}
			<-gate
			_, handleErr := handler.Handle(ctx, cmd)
			results <- handleErr
		}()
	}
	close(gate)

	var successes, conflicts int
	for range 2 {
		if resErr := <-results; resErr != nil {
			suite.Require().ErrorIs(resErr, errs.ErrConflict)
			conflicts++
		} else {
			successes++
		}
	}
	suite.Equal(1, successes)
	suite.Equal(1, conflicts)

	reloaded, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Active, reloaded.Status())
	suite.InDelta(760.0, reloaded.TotalAmount(), 0.001)

	var ledgerRows int64
	err = suite.db.Model(&cancellationrepo.RecordDTO{}).
		Where("order_id = ?", o.ID().Bytes()).Count(&ledgerRows).Error
	suite.Require().NoError(err)
	suite.Equal(int64(1), ledgerRows)
}
