package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/assignmentrepo"
	"fulfillment/internal/adapters/out/postgres/catalogrepo"
	"fulfillment/internal/adapters/out/postgres/deliveryrepo"
	"fulfillment/internal/adapters/out/postgres/driverrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/postrepo"
	"fulfillment/internal/adapters/out/postgres/reportrepo"
	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/report"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes the PostgreSQL container and runs migrations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&driverrepo.DriverDTO{},
		&assignmentrepo.AssignmentDTO{},
		&deliveryrepo.DeliveryDTO{},
		&deliveryrepo.FailedDeliveryDTO{},
		&catalogrepo.FoodDTO{},
		&reportrepo.ReportDTO{},
		&postrepo.PostDTO{},
	)
	suite.Require().NoError(err)

	err = assignmentrepo.Migrate(db)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, drivers, assignments, deliveries, failed_deliveries, foods, reports, posts",
	).Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up the PostgreSQL container.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.DriverRepository())
	suite.NotNil(uow2.DeliveryRepository())
	suite.NotNil(uow2.AssignmentRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Repeated Begin must not open a nested transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderRoundTrip() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	retrieved, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrieved.ID())
	suite.Equal(testOrder.CustomerID(), retrieved.CustomerID())
	suite.Equal(testOrder.Transaction(), retrieved.Transaction())
	suite.Equal(order.NotProcessed, retrieved.Status())
	suite.Equal(100, retrieved.Points())
	suite.True(retrieved.IsAvailable())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TimestampsPopulated() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	var created orderrepo.OrderDTO
	err = suite.db.First(&created, "id = ?", testOrder.ID().Bytes()).Error
	suite.Require().NoError(err)
	suite.False(created.CreatedAt.IsZero())
	suite.False(created.UpdatedAt.IsZero())

	testOrder.ApplyReportPenalty()
	uow = suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	var updated orderrepo.OrderDTO
	err = suite.db.First(&updated, "id = ?", testOrder.ID().Bytes()).Error
	suite.Require().NoError(err)
	suite.Equal(created.CreatedAt, updated.CreatedAt)
	suite.False(updated.UpdatedAt.Before(created.UpdatedAt))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderItemsPersist() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()
	food := suite.createTestFood()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.CatalogRepository().Add(ctx, food)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	price, err := food.SalePrice()
	suite.Require().NoError(err)
	item, err := order.NewItem(kernel.NewUUID(), testOrder.ID(), food.ID(), food.Name(), price, 2)
	suite.Require().NoError(err)
	err = testOrder.AddItem(item)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	retrieved, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().Len(retrieved.Items(), 1)
	suite.Equal(food.Name(), retrieved.Items()[0].Name())
	suite.Equal(int64(1800), retrieved.Items()[0].Subtotal().Amount())
	suite.Equal(int64(1800), retrieved.Amount().Amount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()
	testDriver := suite.createTestDriver()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)
	err = uow.DriverRepository().Add(ctx, testDriver)
	suite.Require().NoError(err)

	// Both are visible inside the transaction
	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	_, err = uow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")
	_, err = newUow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().Error(err, "Driver should not exist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_FulfillmentWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	testOrder := suite.createTestOrder()
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	testDriver := suite.createTestDriver()
	err = uow.DriverRepository().Add(ctx, testDriver)
	suite.Require().NoError(err)

	// Payment confirmation opens the fulfillment record
	err = testOrder.ConfirmPayment()
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	record, err := delivery.NewDelivery(kernel.NewUUID(), testOrder.ID())
	suite.Require().NoError(err)
	err = uow.DeliveryRepository().Add(ctx, record)
	suite.Require().NoError(err)

	// Offer the order and let the driver accept it
	offer, err := assignment.NewAssignment(kernel.NewUUID(), testOrder.ID(), testDriver.ID())
	suite.Require().NoError(err)
	err = uow.AssignmentRepository().Add(ctx, offer)
	suite.Require().NoError(err)

	err = offer.Accept()
	suite.Require().NoError(err)
	err = uow.AssignmentRepository().Update(ctx, offer)
	suite.Require().NoError(err)

	err = record.AssignDriver(testDriver.ID())
	suite.Require().NoError(err)
	err = record.MarkPickedUp()
	suite.Require().NoError(err)
	err = record.MarkDelivered("customer signature")
	suite.Require().NoError(err)
	err = uow.DeliveryRepository().Update(ctx, record)
	suite.Require().NoError(err)

	err = testOrder.StartShipping()
	suite.Require().NoError(err)
	err = testOrder.MarkDelivered()
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, retrievedOrder.Status())
	suite.True(retrievedOrder.IsPaid())

	retrievedRecord, err := newUow.DeliveryRepository().GetByOrder(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.Delivered, retrievedRecord.Status())
	suite.True(retrievedRecord.IsCompleted())
	suite.Equal("customer signature", retrievedRecord.Signature())
	suite.Require().NotNil(retrievedRecord.DriverID())
	suite.Equal(testDriver.ID(), *retrievedRecord.DriverID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PendingAssignmentUniquePerOrder() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()
	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	first, err := assignment.NewAssignment(kernel.NewUUID(), testOrder.ID(), kernel.NewUUID())
	suite.Require().NoError(err)
	err = uow.AssignmentRepository().Add(ctx, first)
	suite.Require().NoError(err)

	second, err := assignment.NewAssignment(kernel.NewUUID(), testOrder.ID(), kernel.NewUUID())
	suite.Require().NoError(err)
	err = uow.AssignmentRepository().Add(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConflict)

	// Resolving the pending offer frees the slot for the next one
	err = first.Reject()
	suite.Require().NoError(err)
	err = uow.AssignmentRepository().Update(ctx, first)
	suite.Require().NoError(err)

	err = uow.AssignmentRepository().Add(ctx, second)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OneDeliveryPerOrder() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()
	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	first, err := delivery.NewDelivery(kernel.NewUUID(), testOrder.ID())
	suite.Require().NoError(err)
	err = uow.DeliveryRepository().Add(ctx, first)
	suite.Require().NoError(err)

	second, err := delivery.NewDelivery(kernel.NewUUID(), testOrder.ID())
	suite.Require().NoError(err)
	err = uow.DeliveryRepository().Add(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConflict)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_FailureLogPersists() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()
	driverID := kernel.NewUUID()

	record, err := delivery.NewDelivery(kernel.NewUUID(), testOrder.ID())
	suite.Require().NoError(err)
	err = record.AssignDriver(driverID)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.DeliveryRepository().Add(ctx, record)
	suite.Require().NoError(err)

	entry, err := record.MarkFailed(kernel.NewUUID(), "customer unreachable")
	suite.Require().NoError(err)
	err = uow.DeliveryRepository().AddFailure(ctx, entry)
	suite.Require().NoError(err)
	err = uow.DeliveryRepository().Update(ctx, record)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	retrieved, err := suite.factory.Create().DeliveryRepository().GetByOrder(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.Failed, retrieved.Status())

	var count int64
	err = suite.db.Table("failed_deliveries").Where("order_id = ?", testOrder.ID().Bytes()).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DuplicateReportConflict() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()
	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	reporterID := kernel.NewUUID()
	target, err := report.NewTarget(report.KindOrder, testOrder.ID())
	suite.Require().NoError(err)

	first, err := report.NewReport(kernel.NewUUID(), target, reporterID, "spam", testOrder.Points())
	suite.Require().NoError(err)
	err = uow.ReportRepository().Add(ctx, first)
	suite.Require().NoError(err)

	exists, err := uow.ReportRepository().Exists(ctx, target, reporterID)
	suite.Require().NoError(err)
	suite.True(exists)

	duplicate, err := report.NewReport(kernel.NewUUID(), target, reporterID, "spam again", testOrder.Points())
	suite.Require().NoError(err)
	err = uow.ReportRepository().Add(ctx, duplicate)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConflict)

	// A different reporter can still file against the same target
	other, err := report.NewReport(kernel.NewUUID(), target, kernel.NewUUID(), "fraud", testOrder.Points())
	suite.Require().NoError(err)
	err = uow.ReportRepository().Add(ctx, other)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_GetAllPaidUnassigned() {
	ctx := context.Background()
	uow := suite.factory.Create()

	paid := suite.createTestOrder()
	err := paid.ConfirmPayment()
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, paid)
	suite.Require().NoError(err)

	unpaid := suite.createTestOrder()
	err = uow.OrderRepository().Add(ctx, unpaid)
	suite.Require().NoError(err)

	offered := suite.createTestOrder()
	err = offered.ConfirmPayment()
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, offered)
	suite.Require().NoError(err)

	offer, err := assignment.NewAssignment(kernel.NewUUID(), offered.ID(), kernel.NewUUID())
	suite.Require().NoError(err)
	err = uow.AssignmentRepository().Add(ctx, offer)
	suite.Require().NoError(err)

	candidates, err := uow.OrderRepository().GetAllPaidUnassigned(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(candidates, 1)
	suite.Equal(paid.ID(), candidates[0].ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_GetAllEligibleDrivers() {
	ctx := context.Background()
	uow := suite.factory.Create()

	eligible := suite.createTestDriver()
	err := uow.DriverRepository().Add(ctx, eligible)
	suite.Require().NoError(err)

	unverified, err := driver.NewDriver(kernel.NewUUID(), "Unverified Driver")
	suite.Require().NoError(err)
	err = uow.DriverRepository().Add(ctx, unverified)
	suite.Require().NoError(err)

	inactive := suite.createTestDriver()
	inactive.SetActive(false)
	err = uow.DriverRepository().Add(ctx, inactive)
	suite.Require().NoError(err)

	drivers, err := uow.DriverRepository().GetAllEligible(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(drivers, 1)
	suite.Equal(eligible.ID(), drivers[0].ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := suite.createTestOrder()
	order2 := suite.createTestOrder()

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)
	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)
	err = uow2.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	_, err = uow1.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")
	_, err = uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)
	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")
	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()

	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrieved, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrieved.ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *order.Order {
	address, err := order.NewAddress("5th Avenue", "New York", "+15550100")
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), address)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestDriver() *driver.Driver {
	testDriver, err := driver.NewDriver(kernel.NewUUID(), "Test Driver")
	suite.Require().NoError(err)
	testDriver.Verify()
	testDriver.SetActive(true)
	return testDriver
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestFood() *catalog.Food {
	price, err := kernel.NewMoney(1000)
	suite.Require().NoError(err)
	sale, err := kernel.NewMoney(900)
	suite.Require().NoError(err)

	food, err := catalog.NewFood(kernel.NewUUID(), "Pad Thai", price, &sale)
	suite.Require().NoError(err)
	return food
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
