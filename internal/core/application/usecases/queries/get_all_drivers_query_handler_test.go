package queries_test

import (
	"context"
	"testing"
	"time"

	"fleet/internal/adapters/out/postgres/driverrepo"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAllDriversQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAllDriversQueryHandler
	repo      *driverrepo.GormDriverRepository
}

func (suite *GetAllDriversQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&driverrepo.DriverDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAllDriversQueryHandler(db)
	suite.repo = driverrepo.NewGormDriverRepository(db, &mockAggregateTracker{})
}

func (suite *GetAllDriversQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAllDriversQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE drivers CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetAllDriversQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetAllDriversQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAllDriversQueryHandlerTestSuite) TestHandle_WithDrivers_ReturnsAllOrderedByLicenseNumber() {
	expiry := time.Now().UTC().AddDate(2, 0, 0)

	second, err := driver.NewDriver(kernel.NewUUID(), "LIC-200", "Maria", "Santos",
		expiry, []vehicle.Type{vehicle.TypeAmbulance, vehicle.TypePassengerVan})
	suite.Require().NoError(err)

	first, err := driver.NewDriver(kernel.NewUUID(), "LIC-100", "Jean", "Dupont",
		expiry, []vehicle.Type{vehicle.TypeStaffCar})
	suite.Require().NoError(err)
	first.Deactivate()

	ctx := context.Background()
	suite.Require().NoError(suite.repo.Add(ctx, second))
	suite.Require().NoError(suite.repo.Add(ctx, first))

	result, err := suite.handler.Handle(ctx, queries.NewGetAllDriversQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal(first.ID(), result[0].ID)
	suite.Equal("LIC-100", result[0].LicenseNumber)
	suite.Equal("Jean", result[0].FirstName)
	suite.Equal("Dupont", result[0].LastName)
	suite.False(result[0].Active)
	suite.Equal(driver.StatusAvailable.String(), result[0].Status)
	suite.Equal("staff_car", result[0].QualifiedTypes)
	suite.WithinDuration(expiry, result[0].LicenseExpiry, time.Second)

	suite.Equal(second.ID(), result[1].ID)
	suite.Equal("LIC-200", result[1].LicenseNumber)
	suite.True(result[1].Active)
	suite.Equal("ambulance,passenger_van", result[1].QualifiedTypes)
}

func (suite *GetAllDriversQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := suite.handler.Handle(context.Background(), queries.GetAllDriversQuery{})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, queries.ErrGetAllDriversQueryIsNotConstructed)
}

func TestGetAllDriversQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAllDriversQueryHandlerTestSuite))
}
