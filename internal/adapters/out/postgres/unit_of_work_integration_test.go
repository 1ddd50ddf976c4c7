package postgres_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	postgres_adapter "bakery/internal/adapters/out/postgres"
	"bakery/internal/adapters/out/postgres/pgtest"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// UnitOfWorkIntegrationTestSuite exercises transactions against a real
// PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	factory  ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(database.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.ProductRepository())
	suite.NotNil(uow1.StoreSettingsRepository())
	suite.NotNil(uow1.CustomerRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Rollback(ctx), "Rollback after commit should be a no-op")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitWithoutBegin_ReturnsError() {
	err := suite.factory.Create().Commit(context.Background())
	suite.Require().Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersists() {
	ctx := context.Background()
	placed := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, placed))

	got, err := uow.OrderRepository().Get(ctx, placed.ID())
	suite.Require().NoError(err, "Order should be visible inside the transaction")
	suite.Equal(placed.ID(), got.ID())

	suite.Require().NoError(uow.Commit(ctx))

	got, err = suite.factory.Create().OrderRepository().Get(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.Equal(placed.ID(), got.ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsOrderAndItems() {
	ctx := context.Background()
	placed := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, placed))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, placed.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var items int64
	suite.Require().NoError(suite.database.DB.Table("order_items").Count(&items).Error)
	suite.Zero(items)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := context.Background()
	suite.Require().NoError(postgres_adapter.Seed(ctx, suite.database.DB, slog.New(slog.NewTextHandler(io.Discard, nil))))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	settings, err := uow.StoreSettingsRepository().Get(ctx)
	suite.Require().NoError(err)
	settings.Toggle(time.Now())
	suite.Require().NoError(uow.StoreSettingsRepository().Save(ctx, settings))

	product, err := uow.ProductRepository().Get(ctx, 1)
	suite.Require().NoError(err)
	price, _ := kernel.MoneyFromString("1.23")
	product.ChangePrice(price)
	suite.Require().NoError(uow.ProductRepository().Update(ctx, product))

	suite.Require().NoError(uow.Rollback(ctx))

	fresh := suite.factory.Create()
	settings, err = fresh.StoreSettingsRepository().Get(ctx)
	suite.Require().NoError(err)
	suite.True(settings.IsOpen(), "Toggle should have been rolled back")

	product, err = fresh.ProductRepository().Get(ctx, 1)
	suite.Require().NoError(err)
	suite.NotEqual("1.23", product.Price().String(), "Price edit should have been rolled back")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSeed_IsIdempotent() {
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	suite.Require().NoError(postgres_adapter.Seed(ctx, suite.database.DB, log))
	suite.Require().NoError(postgres_adapter.Seed(ctx, suite.database.DB, log))

	n, err := suite.factory.Create().ProductRepository().Count(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(7), n)
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder() *order.Order {
	details, err := order.NewDeliveryDetails("Ana", "11999990000", "Rua das Flores, 10")
	suite.Require().NoError(err)
	price, _ := kernel.MoneyFromString("15.00")
	productID := int64(2)
	item, err := order.NewItem(kernel.NewUUID(), &productID, "Pão Caseiro", price, 2)
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), details, []*order.Item{item}, order.PaymentCash, "", time.Now())
	suite.Require().NoError(err)
	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
