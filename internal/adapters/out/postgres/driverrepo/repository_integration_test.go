package driverrepo_test

import (
	"context"
	"testing"
	"time"

	"fleet/internal/adapters/out/postgres/driverrepo"
	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// DriverRepositoryIntegrationTestSuite exercises GormDriverRepository
// against a real PostgreSQL container.
type DriverRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *driverrepo.GormDriverRepository
	tracker    *MockAggregateTracker
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&driverrepo.DriverDTO{}))
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE drivers").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = driverrepo.NewGormDriverRepository(suite.db, suite.tracker)
}

func (suite *DriverRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAdd_ValidDriver_Success() {
	ctx := context.Background()

	d := suite.createTestDriver("LIC-001")
	suite.tracker.On("TrackAggregate", d.ID(), d).Once()

	err := suite.repository.Add(ctx, d)
	suite.Require().NoError(err)

	suite.assertDriverCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAdd_DuplicateLicenseNumber_Fails() {
	ctx := context.Background()

	first := suite.createTestDriver("LIC-001")
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	duplicate := suite.createTestDriver("LIC-001")

	err := suite.repository.Add(ctx, duplicate)
	suite.Require().Error(err)

	suite.assertDriverCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGet_ExistingDriver_RoundTripsFullState() {
	ctx := context.Background()

	expiry := time.Date(2027, 6, 30, 0, 0, 0, 0, time.UTC)
	original, err := driver.NewDriver(
		kernel.NewUUID(), "LIC-777", "Maria", "Santos", expiry,
		[]vehicle.Type{vehicle.TypeAmbulance, vehicle.TypePassengerVan},
	)
	suite.Require().NoError(err)

	phone := "+33 6 12 34 56 78"
	email := "maria.santos@example.org"
	original.SetContact(&phone, &email)

	position, err := kernel.NewGeoPoint(45.764, 4.8357)
	suite.Require().NoError(err)
	suite.Require().NoError(original.SetPosition(position))
	suite.Require().NoError(original.MarkEnRoute())

	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal("LIC-777", retrieved.LicenseNumber())
	suite.Equal("Maria", retrieved.FirstName())
	suite.Equal("Santos", retrieved.LastName())
	suite.Require().NotNil(retrieved.Phone())
	suite.Equal(phone, *retrieved.Phone())
	suite.Require().NotNil(retrieved.Email())
	suite.Equal(email, *retrieved.Email())
	suite.True(retrieved.IsActive())
	suite.Equal(driver.StatusEnRoute, retrieved.Status())
	suite.Equal([]vehicle.Type{vehicle.TypeAmbulance, vehicle.TypePassengerVan}, retrieved.QualifiedTypes())
	suite.Require().NotNil(retrieved.Position())
	suite.InDelta(45.764, retrieved.Position().Latitude(), 1e-9)
	suite.True(expiry.Equal(retrieved.LicenseExpiry()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGet_NonExistentDriver_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestUpdate_DeactivationPersists() {
	ctx := context.Background()

	d := suite.createTestDriver("LIC-002")
	suite.tracker.On("TrackAggregate", d.ID(), d).Twice()

	suite.Require().NoError(suite.repository.Add(ctx, d))

	d.Deactivate()
	suite.Require().NoError(suite.repository.Update(ctx, d))

	retrieved, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.False(retrieved.IsActive())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGetAllAvailable_FiltersInactiveAndBusy() {
	ctx := context.Background()

	available := suite.createTestDriver("LIC-AVL")
	enRoute := suite.createTestDriver("LIC-BSY")
	inactive := suite.createTestDriver("LIC-OFF")

	suite.Require().NoError(enRoute.MarkEnRoute())
	inactive.Deactivate()

	for _, d := range []*driver.Driver{available, enRoute, inactive} {
		suite.tracker.On("TrackAggregate", d.ID(), d).Once()
		suite.Require().NoError(suite.repository.Add(ctx, d))
	}

	drivers, err := suite.repository.GetAllAvailable(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(drivers, 1)
	suite.Equal("LIC-AVL", drivers[0].LicenseNumber())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGetAllActive_IncludesBusyDrivers() {
	ctx := context.Background()

	available := suite.createTestDriver("LIC-AVL")
	enRoute := suite.createTestDriver("LIC-BSY")
	inactive := suite.createTestDriver("LIC-OFF")

	suite.Require().NoError(enRoute.MarkEnRoute())
	inactive.Deactivate()

	for _, d := range []*driver.Driver{available, enRoute, inactive} {
		suite.tracker.On("TrackAggregate", d.ID(), d).Once()
		suite.Require().NoError(suite.repository.Add(ctx, d))
	}

	drivers, err := suite.repository.GetAllActive(ctx)
	suite.Require().NoError(err)

	suite.Len(drivers, 2)
	for _, d := range drivers {
		suite.True(d.IsActive())
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestDelete_RemovesDriver() {
	ctx := context.Background()

	d := suite.createTestDriver("LIC-DEL")
	suite.tracker.On("TrackAggregate", d.ID(), d).Once()
	suite.Require().NoError(suite.repository.Add(ctx, d))

	suite.Require().NoError(suite.repository.Delete(ctx, d.ID()))
	suite.assertDriverCount(0)

	err := suite.repository.Delete(ctx, d.ID())
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

// createTestDriver creates an active, available driver qualified for staff cars.
func (suite *DriverRepositoryIntegrationTestSuite) createTestDriver(licenseNumber string) *driver.Driver {
	d, err := driver.NewDriver(
		kernel.NewUUID(), licenseNumber, "Jean", "Dupont",
		time.Now().UTC().AddDate(2, 0, 0),
		[]vehicle.Type{vehicle.TypeStaffCar},
	)
	suite.Require().NoError(err)
	return d
}

func (suite *DriverRepositoryIntegrationTestSuite) assertDriverCount(expected int) {
	var count int64
	err := suite.db.Model(&driverrepo.DriverDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestDriverRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DriverRepositoryIntegrationTestSuite))
}
