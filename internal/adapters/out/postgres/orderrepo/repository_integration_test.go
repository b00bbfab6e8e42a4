package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"printship/internal/adapters/out/postgres/orderrepo"
	"printship/internal/core/domain/model/order"
	"printship/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id int64, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(1, "ORD-1001")
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnconstructedOrder_IsRefused() {
	ctx := context.Background()

	err := suite.repository.Add(ctx, &order.Order{})
	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)

	suite.assertOrderCount(0)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAllFields() {
	ctx := context.Background()

	original := suite.createTestOrder(7, "ORD-1007")
	suite.Require().NoError(original.AssignLabel("1Z777", "SHP-777", "https://labels/777.pdf"))
	scannedAt := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	set, err := original.RecordCarrierScan(scannedAt)
	suite.Require().NoError(err)
	suite.Require().True(set)

	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, 7)
	suite.Require().NoError(err)

	suite.Equal(int64(7), retrieved.ID())
	suite.Equal("ORD-1007", retrieved.OrderNumber())
	suite.Require().NotNil(retrieved.TrackingNumber())
	suite.Equal("1Z777", *retrieved.TrackingNumber())
	suite.Require().NotNil(retrieved.CarrierShipmentID())
	suite.Equal("SHP-777", *retrieved.CarrierShipmentID())
	suite.Require().NotNil(retrieved.LabelURL())
	suite.Equal("https://labels/777.pdf", *retrieved.LabelURL())
	suite.Require().NotNil(retrieved.FirstCarrierScanAt())
	suite.True(scannedAt.Equal(*retrieved.FirstCarrierScanAt()))
	suite.Equal(order.Shipped, retrieved.LabelStatus())
	suite.True(retrieved.IsLocked())

	lengthMM, widthMM, heightMM := retrieved.ModelDimensionsMM()
	suite.Require().NotNil(lengthMM)
	suite.InDelta(100.0, *lengthMM, 1e-9)
	suite.Require().NotNil(widthMM)
	suite.InDelta(75.0, *widthMM, 1e-9)
	suite.Require().NotNil(heightMM)
	suite.InDelta(50.0, *heightMM, 1e-9)
	suite.Equal(3, retrieved.Quantity())
	suite.InDelta(38.5, retrieved.UnitWeightGrams(), 1e-9)
	suite.Equal("usps_priority", retrieved.ShippingMethod())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, 404)

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByTrackingNumber() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(11, "ORD-1011")
	suite.Require().NoError(testOrder.AssignLabel("1Z111", "SHP-111", "https://labels/111.pdf"))
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Run("existing tracking number", func() {
		retrieved, err := suite.repository.GetByTrackingNumber(ctx, "1Z111")
		suite.Require().NoError(err)
		suite.Equal(int64(11), retrieved.ID())
	})

	suite.Run("unknown tracking number", func() {
		retrieved, err := suite.repository.GetByTrackingNumber(ctx, "1Z-FOREIGN")
		suite.Nil(retrieved)

		var notFoundErr *errs.ObjectNotFoundError
		suite.Require().ErrorAs(err, &notFoundErr)
	})
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_LabelLifecyclePersists() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(21, "ORD-1021")
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(4)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// First label.
	suite.Require().NoError(testOrder.AssignLabel("1Z-A", "SHP-A", "https://labels/a.pdf"))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, 21)
	suite.Require().NoError(err)
	suite.Equal(order.Created, retrieved.LabelStatus())
	suite.Equal("1Z-A", *retrieved.TrackingNumber())

	// Regeneration replaces the identifiers in place.
	suite.Require().NoError(testOrder.AssignLabel("1Z-B", "SHP-B", "https://labels/b.pdf"))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err = suite.repository.Get(ctx, 21)
	suite.Require().NoError(err)
	suite.Equal("1Z-B", *retrieved.TrackingNumber())
	suite.Equal("SHP-B", *retrieved.CarrierShipmentID())
	suite.Nil(retrieved.FirstCarrierScanAt())

	// Scan detection locks the row.
	set, err := testOrder.RecordCarrierScan(time.Date(2026, 4, 2, 8, 30, 0, 0, time.UTC))
	suite.Require().NoError(err)
	suite.Require().True(set)
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err = suite.repository.Get(ctx, 21)
	suite.Require().NoError(err)
	suite.True(retrieved.IsLocked())
	suite.Equal(order.Shipped, retrieved.LabelStatus())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsRecordNotFound() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(31, "ORD-1031")

	err := suite.repository.Update(ctx, testOrder)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllAwaitingScan_ReturnsOnlyUnlockedLabeledOrders() {
	ctx := context.Background()

	unlabeled := suite.createTestOrder(41, "ORD-1041")

	labeled := suite.createTestOrder(42, "ORD-1042")
	suite.Require().NoError(labeled.AssignLabel("1Z-42", "SHP-42", "https://labels/42.pdf"))

	labeledSecond := suite.createTestOrder(43, "ORD-1043")
	suite.Require().NoError(labeledSecond.AssignLabel("1Z-43", "SHP-43", "https://labels/43.pdf"))

	locked := suite.createTestOrder(44, "ORD-1044")
	suite.Require().NoError(locked.AssignLabel("1Z-44", "SHP-44", "https://labels/44.pdf"))
	set, err := locked.RecordCarrierScan(time.Now())
	suite.Require().NoError(err)
	suite.Require().True(set)

	for _, o := range []*order.Order{unlabeled, labeled, labeledSecond, locked} {
		suite.tracker.On("TrackAggregate", o.ID(), o).Once()
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	awaiting, err := suite.repository.GetAllAwaitingScan(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(awaiting, 2)
	suite.Equal(int64(42), awaiting[0].ID())
	suite.Equal(int64(43), awaiting[1].ID())
	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrder creates a valid order aggregate for persistence tests.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(id int64, orderNumber string) *order.Order {
	lengthMM, widthMM, heightMM := 100.0, 75.0, 50.0
	testOrder, err := order.NewOrder(
		id, orderNumber, &lengthMM, &widthMM, &heightMM, 3, 38.5, "usps_priority",
	)
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
