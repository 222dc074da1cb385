package deliverytyperepo_test

import (
	"context"
	"testing"
	"time"

	"helpii/internal/adapters/out/postgres/deliverytyperepo"
	"helpii/internal/core/domain/model/deliverytype"
	"helpii/internal/core/domain/model/kernel"
	"helpii/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// DeliveryTypeRepositoryIntegrationTestSuite provides integration tests for DeliveryTypeRepository
// using PostgreSQL containers to verify database persistence behavior.
type DeliveryTypeRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *deliverytyperepo.GormDeliveryTypeRepository
	tracker    *MockAggregateTracker
}

func (suite *DeliveryTypeRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&deliverytyperepo.DeliveryTypeDTO{}))
}

func (suite *DeliveryTypeRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE delivery_types").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = deliverytyperepo.NewGormDeliveryTypeRepository(suite.db, suite.tracker)
}

func (suite *DeliveryTypeRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DeliveryTypeRepositoryIntegrationTestSuite) TestAdd_ValidDeliveryType_Success() {
	ctx := context.Background()

	deliveryType := suite.createDeliveryType("EXPRESS_2HR", true, 1)

	suite.tracker.On("TrackAggregate", deliveryType.ID(), deliveryType).Once()

	err := suite.repository.Add(ctx, deliveryType)
	suite.Require().NoError(err)

	suite.assertDeliveryTypeCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryTypeRepositoryIntegrationTestSuite) TestGet_ExistingDeliveryType_RoundTripsAllFields() {
	ctx := context.Background()

	original := suite.createDeliveryType("SAME_DAY", false, 2)
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()

	err := suite.repository.Add(ctx, original)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal("SAME_DAY", retrieved.Code())
	suite.Equal(original.Name(), retrieved.Name())
	suite.Equal(original.Description(), retrieved.Description())
	suite.True(original.BasePrice().IsEqual(retrieved.BasePrice()))
	suite.Require().NotNil(retrieved.MaxCoverageKm())
	suite.True(original.MaxCoverageKm().Kilometers().Equal(retrieved.MaxCoverageKm().Kilometers()))
	suite.False(retrieved.OversizeHandledBySurcharge())
	suite.False(retrieved.RequiresAdminApproval())
	suite.True(retrieved.IsActive())
	suite.Equal(2, retrieved.DisplayOrder())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryTypeRepositoryIntegrationTestSuite) TestGet_NonExistentDeliveryType_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryTypeRepositoryIntegrationTestSuite) TestGetByCode_ExistingCode_ReturnsDeliveryType() {
	ctx := context.Background()

	original := suite.createDeliveryType("OVERNIGHT", false, 3)
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()

	err := suite.repository.Add(ctx, original)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.GetByCode(ctx, "OVERNIGHT")
	suite.Require().NoError(err)
	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal("OVERNIGHT", retrieved.Code())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryTypeRepositoryIntegrationTestSuite) TestGetByCode_UnknownCode_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.GetByCode(ctx, "NO_SUCH_TIER")

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryTypeRepositoryIntegrationTestSuite) TestGetByCode_EmptyCode_ReturnsRequiredError() {
	ctx := context.Background()

	retrieved, err := suite.repository.GetByCode(ctx, "")

	suite.Nil(retrieved)
	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryTypeRepositoryIntegrationTestSuite) TestUpdate_ExistingDeliveryType_PersistsChanges() {
	ctx := context.Background()

	original := suite.createDeliveryType("EXPRESS_2HR", true, 1)
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	err := suite.repository.Add(ctx, original)
	suite.Require().NoError(err)

	// Deactivate the tier and change its display position
	basePrice, err := kernel.MoneyFromFloat(45)
	suite.Require().NoError(err)
	updated, err := deliverytype.RestoreDeliveryType(
		original.ID(),
		original.Code(),
		original.Name(),
		original.Description(),
		basePrice,
		original.MaxCoverageKm(),
		original.OversizeHandledBySurcharge(),
		original.RequiresAdminApproval(),
		false,
		9,
	)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", updated.ID(), updated).Once()
	err = suite.repository.Update(ctx, updated)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.True(basePrice.IsEqual(retrieved.BasePrice()))
	suite.False(retrieved.IsActive())
	suite.Equal(9, retrieved.DisplayOrder())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryTypeRepositoryIntegrationTestSuite) TestUpdate_NonExistentDeliveryType_ReturnsError() {
	ctx := context.Background()

	deliveryType := suite.createDeliveryType("EXPRESS_2HR", true, 1)

	// No expectations on tracker since operation should fail
	err := suite.repository.Update(ctx, deliveryType)
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryTypeRepositoryIntegrationTestSuite) TestGetAllActive_ReturnsOnlyActiveInDisplayOrder() {
	ctx := context.Background()

	express := suite.createDeliveryType("EXPRESS_2HR", true, 2)
	sameDay := suite.createDeliveryType("SAME_DAY", false, 1)
	retired := suite.createInactiveDeliveryType("LEGACY_TIER", 3)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	suite.Require().NoError(suite.repository.Add(ctx, express))
	suite.Require().NoError(suite.repository.Add(ctx, sameDay))
	suite.Require().NoError(suite.repository.Add(ctx, retired))

	active, err := suite.repository.GetAllActive(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(active, 2)
	suite.Equal("SAME_DAY", active[0].Code())
	suite.Equal("EXPRESS_2HR", active[1].Code())

	suite.tracker.AssertExpectations(suite.T())
}

// createDeliveryType creates an active delivery type with default attributes for testing.
func (suite *DeliveryTypeRepositoryIntegrationTestSuite) createDeliveryType(
	code string, oversizeHandledBySurcharge bool, displayOrder int,
) *deliverytype.DeliveryType {
	basePrice, err := kernel.MoneyFromFloat(30)
	suite.Require().NoError(err)
	maxCoverage, err := kernel.DistanceFromFloat(30)
	suite.Require().NoError(err)

	deliveryType, err := deliverytype.NewDeliveryType(
		kernel.NewUUID(),
		code,
		"Test Tier "+code,
		"Tier used by integration tests",
		basePrice,
		&maxCoverage,
		oversizeHandledBySurcharge,
		false,
		true,
		displayOrder,
	)
	suite.Require().NoError(err)
	return deliveryType
}

// createInactiveDeliveryType creates a deactivated delivery type for testing.
func (suite *DeliveryTypeRepositoryIntegrationTestSuite) createInactiveDeliveryType(
	code string, displayOrder int,
) *deliverytype.DeliveryType {
	basePrice, err := kernel.MoneyFromFloat(10)
	suite.Require().NoError(err)

	deliveryType, err := deliverytype.NewDeliveryType(
		kernel.NewUUID(),
		code,
		"Retired Tier "+code,
		"",
		basePrice,
		nil,
		false,
		false,
		false,
		displayOrder,
	)
	suite.Require().NoError(err)
	return deliveryType
}

// assertDeliveryTypeCount verifies the number of delivery types in the database.
func (suite *DeliveryTypeRepositoryIntegrationTestSuite) assertDeliveryTypeCount(expected int) {
	var count int64
	err := suite.db.Model(&deliverytyperepo.DeliveryTypeDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestDeliveryTypeRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DeliveryTypeRepositoryIntegrationTestSuite))
}
