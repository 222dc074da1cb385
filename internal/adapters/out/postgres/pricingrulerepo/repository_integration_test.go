package pricingrulerepo_test

import (
	"context"
	"testing"
	"time"

	"helpii/internal/adapters/out/postgres/pricingrulerepo"
	"helpii/internal/core/domain/model/kernel"
	"helpii/internal/core/domain/model/pricingrule"
	"helpii/internal/pkg/errs"

	"github.com/shopspring/decimal"
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

// PricingRuleRepositoryIntegrationTestSuite provides integration tests for PricingRuleRepository
// using PostgreSQL containers to verify database persistence behavior.
type PricingRuleRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *pricingrulerepo.GormPricingRuleRepository
	tracker    *MockAggregateTracker
}

func (suite *PricingRuleRepositoryIntegrationTestSuite) SetupSuite() {
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
	suite.Require().NoError(db.AutoMigrate(&pricingrulerepo.PricingRuleDTO{}))
}

func (suite *PricingRuleRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE pricing_rules").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = pricingrulerepo.NewGormPricingRuleRepository(suite.db, suite.tracker)
}

func (suite *PricingRuleRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PricingRuleRepositoryIntegrationTestSuite) TestAdd_ValidRule_Success() {
	ctx := context.Background()
	deliveryTypeID := kernel.NewUUID()

	rule := suite.createPerKmRule(deliveryTypeID, "Express Standard", 10, true)

	suite.tracker.On("TrackAggregate", rule.ID(), rule).Once()

	err := suite.repository.Add(ctx, rule)
	suite.Require().NoError(err)

	suite.assertRuleCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PricingRuleRepositoryIntegrationTestSuite) TestGet_ExistingRule_RoundTripsAllFields() {
	ctx := context.Background()
	deliveryTypeID := kernel.NewUUID()

	ratePerKm := suite.money(5)
	surcharge := suite.money(50)
	weightMax := decimal.NewFromFloat(20)
	threshold := decimal.NewFromFloat(10)
	shortTrip := true

	original, err := pricingrule.NewPricingRule(
		kernel.NewUUID(), deliveryTypeID, "Small Short Trip", pricingrule.RuleSpec{
			WeightMin:         decimal.Zero,
			WeightMax:         &weightMax,
			DistanceThreshold: &threshold,
			IsShortTrip:       &shortTrip,
			CalculationType:   pricingrule.PerKm,
			RatePerKm:         &ratePerKm,
			OversizeSurcharge: &surcharge,
			IsActive:          true,
			Priority:          10,
		})
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(deliveryTypeID, retrieved.DeliveryTypeID())
	suite.Equal("Small Short Trip", retrieved.Name())
	suite.True(retrieved.WeightMin().IsZero())
	suite.Require().NotNil(retrieved.WeightMax())
	suite.True(weightMax.Equal(*retrieved.WeightMax()))
	suite.False(retrieved.IsOversizeRule())
	suite.Require().NotNil(retrieved.DistanceThreshold())
	suite.True(threshold.Equal(*retrieved.DistanceThreshold()))
	suite.Require().NotNil(retrieved.IsShortTrip())
	suite.True(*retrieved.IsShortTrip())
	suite.Equal(pricingrule.PerKm, retrieved.CalculationType())
	suite.Require().NotNil(retrieved.RatePerKm())
	suite.True(ratePerKm.IsEqual(*retrieved.RatePerKm()))
	suite.Nil(retrieved.MaxPrice())
	suite.Nil(retrieved.FlatTotal())
	suite.Require().NotNil(retrieved.OversizeSurcharge())
	suite.True(surcharge.IsEqual(*retrieved.OversizeSurcharge()))
	suite.True(retrieved.IsActive())
	suite.Equal(10, retrieved.Priority())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PricingRuleRepositoryIntegrationTestSuite) TestGet_NonExistentRule_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PricingRuleRepositoryIntegrationTestSuite) TestGet_DegradedRow_RestoresForAudit() {
	ctx := context.Background()
	deliveryTypeID := kernel.NewUUID()

	// A PER_KM rule whose rate was never filled in: persistable, loadable,
	// and flagged by the calculation-field check rather than failing to load.
	degraded, err := pricingrule.RestorePricingRule(
		kernel.NewUUID(), deliveryTypeID, "Half-configured Rule", pricingrule.RuleSpec{
			WeightMin:       decimal.Zero,
			CalculationType: pricingrule.PerKm,
			IsActive:        true,
			Priority:        10,
		})
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", degraded.ID(), degraded).Once()
	suite.Require().NoError(suite.repository.Add(ctx, degraded))

	retrieved, err := suite.repository.Get(ctx, degraded.ID())
	suite.Require().NoError(err)
	suite.Nil(retrieved.RatePerKm())
	suite.Require().Error(retrieved.ValidateCalculationFields())
	suite.ErrorIs(retrieved.ValidateCalculationFields(), pricingrule.ErrRuleDataQuality)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PricingRuleRepositoryIntegrationTestSuite) TestUpdate_ExistingRule_PersistsChanges() {
	ctx := context.Background()
	deliveryTypeID := kernel.NewUUID()

	original := suite.createPerKmRule(deliveryTypeID, "Express Standard", 10, true)
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	// Retire the rule and push it down the evaluation order
	newRate := suite.money(7)
	updated, err := pricingrule.RestorePricingRule(
		original.ID(), deliveryTypeID, original.Name(), pricingrule.RuleSpec{
			WeightMin:       original.WeightMin(),
			CalculationType: pricingrule.PerKm,
			RatePerKm:       &newRate,
			IsActive:        false,
			Priority:        99,
		})
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", updated.ID(), updated).Once()
	suite.Require().NoError(suite.repository.Update(ctx, updated))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrieved.RatePerKm())
	suite.True(newRate.IsEqual(*retrieved.RatePerKm()))
	suite.False(retrieved.IsActive())
	suite.Equal(99, retrieved.Priority())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PricingRuleRepositoryIntegrationTestSuite) TestUpdate_NonExistentRule_ReturnsError() {
	ctx := context.Background()

	rule := suite.createPerKmRule(kernel.NewUUID(), "Express Standard", 10, true)

	// No expectations on tracker since operation should fail
	err := suite.repository.Update(ctx, rule)
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PricingRuleRepositoryIntegrationTestSuite) TestGetActiveForDeliveryType_ReturnsEvaluationOrder() {
	ctx := context.Background()
	deliveryTypeID := kernel.NewUUID()
	otherTypeID := kernel.NewUUID()

	// Same priority rules tie-break by weight minimum
	heavy := suite.createPerKmRuleWithWeightMin(deliveryTypeID, "Heavy Band", 10, 20.01, true)
	light := suite.createPerKmRuleWithWeightMin(deliveryTypeID, "Light Band", 10, 0, true)
	oversize := suite.createPerKmRule(deliveryTypeID, "Oversize Override", 1, true)
	retired := suite.createPerKmRule(deliveryTypeID, "Retired Rule", 2, false)
	foreign := suite.createPerKmRule(otherTypeID, "Other Tier Rule", 1, true)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(5)

	for _, rule := range []*pricingrule.PricingRule{heavy, light, oversize, retired, foreign} {
		suite.Require().NoError(suite.repository.Add(ctx, rule))
	}

	active, err := suite.repository.GetActiveForDeliveryType(ctx, deliveryTypeID)
	suite.Require().NoError(err)

	suite.Require().Len(active, 3)
	suite.Equal("Oversize Override", active[0].Name())
	suite.Equal("Light Band", active[1].Name())
	suite.Equal("Heavy Band", active[2].Name())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PricingRuleRepositoryIntegrationTestSuite) TestGetAllForDeliveryType_IncludesInactiveRules() {
	ctx := context.Background()
	deliveryTypeID := kernel.NewUUID()

	active := suite.createPerKmRule(deliveryTypeID, "Active Rule", 10, true)
	retired := suite.createPerKmRule(deliveryTypeID, "Retired Rule", 5, false)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)

	suite.Require().NoError(suite.repository.Add(ctx, active))
	suite.Require().NoError(suite.repository.Add(ctx, retired))

	all, err := suite.repository.GetAllForDeliveryType(ctx, deliveryTypeID)
	suite.Require().NoError(err)

	suite.Require().Len(all, 2)
	suite.Equal("Retired Rule", all[0].Name())
	suite.Equal("Active Rule", all[1].Name())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PricingRuleRepositoryIntegrationTestSuite) TestGetActiveForDeliveryType_NoRules_ReturnsEmptySlice() {
	ctx := context.Background()

	active, err := suite.repository.GetActiveForDeliveryType(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Empty(active)

	suite.tracker.AssertExpectations(suite.T())
}

// money builds a validated money amount for test fixtures.
func (suite *PricingRuleRepositoryIntegrationTestSuite) money(amount float64) kernel.Money {
	m, err := kernel.MoneyFromFloat(amount)
	suite.Require().NoError(err)
	return m
}

// createPerKmRule creates a distance-agnostic PER_KM rule for testing.
func (suite *PricingRuleRepositoryIntegrationTestSuite) createPerKmRule(
	deliveryTypeID kernel.UUID, name string, priority int, isActive bool,
) *pricingrule.PricingRule {
	return suite.createPerKmRuleWithWeightMin(deliveryTypeID, name, priority, 0, isActive)
}

// createPerKmRuleWithWeightMin creates a PER_KM rule with a specific lower weight bound.
func (suite *PricingRuleRepositoryIntegrationTestSuite) createPerKmRuleWithWeightMin(
	deliveryTypeID kernel.UUID, name string, priority int, weightMin float64, isActive bool,
) *pricingrule.PricingRule {
	rate := suite.money(5)

	rule, err := pricingrule.NewPricingRule(
		kernel.NewUUID(), deliveryTypeID, name, pricingrule.RuleSpec{
			WeightMin:       decimal.NewFromFloat(weightMin),
			CalculationType: pricingrule.PerKm,
			RatePerKm:       &rate,
			IsActive:        isActive,
			Priority:        priority,
		})
	suite.Require().NoError(err)
	return rule
}

// assertRuleCount verifies the number of pricing rules in the database.
func (suite *PricingRuleRepositoryIntegrationTestSuite) assertRuleCount(expected int) {
	var count int64
	err := suite.db.Model(&pricingrulerepo.PricingRuleDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestPricingRuleRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PricingRuleRepositoryIntegrationTestSuite))
}
