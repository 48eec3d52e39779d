package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"fulfillment/cmd"
	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres/assignmentrepo"
	"fulfillment/internal/adapters/out/postgres/catalogrepo"
	"fulfillment/internal/adapters/out/postgres/deliveryrepo"
	"fulfillment/internal/adapters/out/postgres/driverrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/postrepo"
	"fulfillment/internal/adapters/out/postgres/reportrepo"
	redisout "fulfillment/internal/adapters/out/redis"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := openDatabase(configs)
	migrateDatabase(db)

	cache, err := redisout.NewEntityCache(configs.RedisAddr, configs.RedisPassword, configs.RedisDB)
	if err != nil {
		log.Fatalf("Error connecting to redis: %v", err)
	}
	defer cache.Close()

	app := cmd.NewCompositionRoot(configs, db, cache)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:        goDotEnvVariable("REDIS_ADDR"),
		RedisPassword:    goDotEnvVariable("REDIS_PASSWORD"),
		JWTSecret:        goDotEnvVariable("JWT_SECRET"),
		DispatchCronSpec: goDotEnvVariable("DISPATCH_CRON_SPEC"),
	}

	redisDB, err := strconv.Atoi(goDotEnvVariable("REDIS_DB"))
	if err != nil {
		log.Fatalf("Error parsing REDIS_DB: %v", err)
	}
	config.RedisDB = redisDB

	cacheTTL, err := time.ParseDuration(goDotEnvVariable("CACHE_TTL"))
	if err != nil {
		log.Fatalf("Error parsing CACHE_TTL: %v", err)
	}
	config.CacheTTL = cacheTTL

	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	// TranslateError turns driver unique violations into gorm.ErrDuplicatedKey,
	// which the repositories map onto the conflict taxonomy.
	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	return db
}

func migrateDatabase(db *gorm.DB) {
	err := db.AutoMigrate(
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
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	if err := assignmentrepo.Migrate(db); err != nil {
		log.Fatalf("Error creating assignment index: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAddOrderItemCommandHandler(),
		app.CreateConfirmPaymentCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateAssignDriverCommandHandler(),
		app.CreateAcceptAssignmentCommandHandler(),
		app.CreateRejectAssignmentCommandHandler(),
		app.CreateMarkPickedUpCommandHandler(),
		app.CreateMarkDeliveredCommandHandler(),
		app.CreateMarkFailedCommandHandler(),
		app.CreateSubmitReportCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetActiveDeliveriesQueryHandler(),
	)
	server.RegisterRoutes(e, configs.JWTSecret)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
