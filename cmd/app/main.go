package main

import (
	"fmt"
	"log/slog"
	"os"

	"fleet/cmd"
	fleethttp "fleet/internal/adapters/in/http"
	"fleet/internal/adapters/out/postgres/assignmentrepo"
	"fleet/internal/adapters/out/postgres/driverrepo"
	"fleet/internal/adapters/out/postgres/vehiclerepo"
	"fleet/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := mustConnectDB(configs)
	app := cmd.NewCompositionRoot(configs, db)

	jobManager := startJobs(&app)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = db.AutoMigrate(
		&vehiclerepo.VehicleDTO{},
		&driverrepo.DriverDTO{},
		&assignmentrepo.AssignmentDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return db
}

func startJobs(app *cmd.CompositionRoot) *jobs.JobManager {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateMatchAssignmentCommandHandler(),
		app.CreateDeactivateExpiredDriversCommandHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := fleethttp.NewServer(
		app.UnitOfWorkFactory(),
		app.CreateCreateVehicleCommandHandler(),
		app.CreateUpdateVehicleCommandHandler(),
		app.CreateRemoveVehicleCommandHandler(),
		app.CreateCreateDriverCommandHandler(),
		app.CreateUpdateDriverCommandHandler(),
		app.CreateRemoveDriverCommandHandler(),
		app.CreateCreateAssignmentCommandHandler(),
		app.CreateUpdateAssignmentCommandHandler(),
		app.CreateStartAssignmentCommandHandler(),
		app.CreateCompleteAssignmentCommandHandler(),
		app.CreateCancelAssignmentCommandHandler(),
		app.CreateMatchAssignmentCommandHandler(),
		app.CreateGetAllVehiclesQueryHandler(),
		app.CreateGetAllDriversQueryHandler(),
		app.CreateGetUnfinishedAssignmentsQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
