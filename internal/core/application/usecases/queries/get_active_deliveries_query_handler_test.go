package queries_test

import (
	"context"
	"testing"
	"time"

	"galeteria/internal/adapters/out/postgres/clientrepo"
	"galeteria/internal/adapters/out/postgres/deliveryrepo"
	"galeteria/internal/adapters/out/postgres/orderrepo"
	"galeteria/internal/core/application/usecases/queries"
	"galeteria/internal/core/domain/model/client"
	"galeteria/internal/core/domain/model/delivery"
	"galeteria/internal/core/domain/model/kernel"
	"galeteria/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetActiveDeliveriesQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	handler      queries.GetActiveDeliveriesQueryHandler
	orderRepo    *orderrepo.GormOrderRepository
	clientRepo   *clientrepo.GormClientRepository
	deliveryRepo *deliveryrepo.GormDeliveryRepository
	testClient   *client.Client
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&clientrepo.ClientDTO{}, &orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{}, &deliveryrepo.DeliveryDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetActiveDeliveriesQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.clientRepo = clientrepo.NewGormClientRepository(db, &mockAggregateTracker{})
	suite.deliveryRepo = deliveryrepo.NewGormDeliveryRepository(db, &mockAggregateTracker{})

	suite.testClient, err = client.NewClient(kernel.NewUUID(), "Bruno Lima", "+55 51 97777-0002", "Av. Central 940")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.clientRepo.Add(ctx, suite.testClient))
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE deliveries, order_lines, orders").Error)
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetActiveDeliveriesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) TestHandle_ExcludesCompletedDeliveries() {
	suite.addOrder(1, order.StatusOutForDelivery)
	suite.addDelivery(1, 1, false)

	suite.addOrder(2, order.StatusDelivered)
	suite.addDelivery(2, 2, true)

	query := queries.NewGetActiveDeliveriesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(int64(1), result[0].ID)
	suite.Equal(int64(1), result[0].OrderID)
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) TestHandle_CancelledOrderRecordIsHidden() {
	// Cancelling an order never touches its delivery record, so the record
	// stays en_route in storage. The board must not show it.
	suite.addOrder(1, order.StatusCancelled)
	suite.addDelivery(1, 1, false)

	suite.addOrder(2, order.StatusReady)
	suite.addDelivery(2, 2, false)

	query := queries.NewGetActiveDeliveriesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(int64(2), result[0].OrderID)
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) TestHandle_MapsClientAndDeparture() {
	suite.addOrder(1, order.StatusReady)
	suite.addDelivery(1, 1, false)

	suite.addOrder(2, order.StatusOutForDelivery)
	departed := time.Now().UTC().Truncate(time.Microsecond)
	suite.startDelivery(2, 2, departed)

	query := queries.NewGetActiveDeliveriesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal(order.StatusReady.String(), result[0].OrderStatus)
	suite.Equal("Bruno Lima", result[0].ClientName)
	suite.Equal("Av. Central 940", result[0].ClientAddress)
	suite.Nil(result[0].StartedAt, "departure is unset until the courier leaves")

	suite.Equal(order.StatusOutForDelivery.String(), result[1].OrderStatus)
	suite.Require().NotNil(result[1].StartedAt)
	suite.True(departed.Equal(result[1].StartedAt.UTC()))
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetActiveDeliveriesQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetActiveDeliveriesQuery constructor")
}

// addOrder persists a one-line delivery order for the suite's client in the
// given status.
func (suite *GetActiveDeliveriesQueryHandlerTestSuite) addOrder(id int64, status order.Status) {
	line, err := order.NewLine(kernel.NewUUID(), 1)
	suite.Require().NoError(err)
	total, err := kernel.NewMoneyFromCents(2500)
	suite.Require().NoError(err)

	o, err := order.RestoreOrder(id, suite.testClient.ID(), order.TypeDelivery,
		[]order.Line{line}, total, status, time.Now().UTC(), false)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) addDelivery(id, orderID int64, completed bool) {
	d, err := delivery.NewDelivery(id, orderID)
	suite.Require().NoError(err)
	if completed {
		suite.Require().NoError(d.Complete())
	}
	suite.Require().NoError(suite.deliveryRepo.Add(context.Background(), d))
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) startDelivery(id, orderID int64, at time.Time) {
	d, err := delivery.NewDelivery(id, orderID)
	suite.Require().NoError(err)
	suite.Require().NoError(d.Start(at))
	suite.Require().NoError(suite.deliveryRepo.Add(context.Background(), d))
}

func TestGetActiveDeliveriesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetActiveDeliveriesQueryHandlerTestSuite))
}
