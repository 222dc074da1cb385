package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"helpii/cmd"
	_ "helpii/docs"
	adapterhttp "helpii/internal/adapters/in/http"
	"helpii/internal/adapters/out/postgres/deliverytyperepo"
	"helpii/internal/adapters/out/postgres/pricingrulerepo"
	"helpii/internal/core/application/usecases/commands"
	"helpii/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	if configs.SeedDefaultCatalog == "true" {
		seedCatalog(&app, logger)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		SeedDefaultCatalog: goDotEnvVariable("SEED_DEFAULT_CATALOG"),
	}
	return config
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
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&deliverytyperepo.DeliveryTypeDTO{},
		&pricingrulerepo.PricingRuleDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

// seedCatalog installs the default delivery types and pricing rules.
// Already-present delivery types are left untouched, so operator edits survive restarts.
func seedCatalog(app *cmd.CompositionRoot, logger *slog.Logger) {
	handler := app.CreateSeedCatalogCommandHandler()
	command := commands.NewSeedCatalogCommand()

	if err := handler.Handle(context.Background(), command); err != nil {
		log.Fatalf("Error seeding pricing catalog: %v", err)
	}
	logger.Info("Default pricing catalog seeded")
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := adapterhttp.NewServer(
		app.CreateResolveQuoteQueryHandler(),
		app.CreateGetDeliveryTypesQueryHandler(),
	)
	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
