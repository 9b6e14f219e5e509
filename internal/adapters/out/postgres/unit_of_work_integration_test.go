package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tableside/internal/adapters/out/postgres"
	"tableside/internal/adapters/out/postgres/cancellationrepo"
	"tableside/internal/core/domain/model/cancellation"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/domain/model/session"
	"tableside/internal/pkg/errs"
)

type UnitOfWorkTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres.Migrate(db))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, cancellations CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkTestSuite) newOrder(table int) *order.Order {
	tableNumber, err := kernel.NewTableNumber(table)
	suite.Require().NoError(err)

	item, err := order.NewItem(
		kernel.NewUUID(), "Butter Chicken", 2, 380, kernel.NewUUID(), time.Now().UTC(),
	)
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(), tableNumber, kernel.NewUUID(), nil,
		[]*order.Item{item}, time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkTestSuite) TestCommit_PersistsOrderAndLedgerTogether() {
	ctx := context.Background()

	o := suite.newOrder(5)
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	loaded, err := uow.OrderRepository().GetForUpdate(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.Cancel())

	record, err := cancellation.NewOrderCancellation(
		kernel.NewUUID(), loaded.ID(), "table left", kernel.NewUUID(), time.Now().UTC(),
	)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.OrderRepository().Update(ctx, loaded))
	suite.Require().NoError(uow.CancellationRepository().Add(ctx, record))
	suite.Require().NoError(uow.Commit(ctx))

	reloaded, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, reloaded.Status())

	var ledgerCount int64
	err = suite.db.Model(&cancellationrepo.RecordDTO{}).
		Where("order_id = ?", o.ID().Bytes()).Count(&ledgerCount).Error
	suite.Require().NoError(err)
	suite.Equal(int64(1), ledgerCount)
}

func (suite *UnitOfWorkTestSuite) TestRollback_DiscardsOrderAndLedgerTogether() {
	ctx := context.Background()

	o := suite.newOrder(6)
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	record, err := cancellation.NewOrderCancellation(
		kernel.NewUUID(), o.ID(), "mistake", kernel.NewUUID(), time.Now().UTC(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.CancellationRepository().Add(ctx, record))

	suite.Require().NoError(uow.Rollback(ctx))

	_, err = suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var ledgerCount int64
	err = suite.db.Model(&cancellationrepo.RecordDTO{}).Count(&ledgerCount).Error
	suite.Require().NoError(err)
	suite.Zero(ledgerCount)
}

func (suite *UnitOfWorkTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	err := uow.Commit(context.Background())
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkTestSuite) TestSessionRepository_UpsertRefreshesStartTime() {
	ctx := context.Background()
	waiterID := kernel.NewUUID()
	date := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)

	first, err := sessionAggregate(waiterID, date, date.Add(9*time.Hour))
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.SessionRepository().Upsert(ctx, first))
	suite.Require().NoError(uow.Commit(ctx))

	second, err := sessionAggregate(waiterID, date, date.Add(14*time.Hour))
	suite.Require().NoError(err)

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.SessionRepository().Upsert(ctx, second))
	suite.Require().NoError(uow.Commit(ctx))

	var count int64
	err = suite.db.Table("daily_sessions").Where("waiter_id = ?", waiterID.Bytes()).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)
}

func sessionAggregate(waiterID kernel.UUID, date, startedAt time.Time) (*session.Session, error) {
	return session.NewSession(kernel.NewUUID(), waiterID, date, startedAt)
}

func TestUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkTestSuite))
}
