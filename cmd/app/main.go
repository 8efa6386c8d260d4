package main

import (
	"fmt"
	"log/slog"
	"os"

	"galeteria/cmd"
	httpin "galeteria/internal/adapters/in/http"
	"galeteria/internal/adapters/out/postgres/clientrepo"
	"galeteria/internal/adapters/out/postgres/counterrepo"
	"galeteria/internal/adapters/out/postgres/deliveryrepo"
	"galeteria/internal/adapters/out/postgres/orderrepo"
	"galeteria/internal/adapters/out/postgres/productrepo"
	"galeteria/internal/adapters/out/rabbitmq"
	"galeteria/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	amqp "github.com/rabbitmq/amqp091-go"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	publisher := connectPublisher(configs, logger)

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, logger)

	if configs.DispatchJobEnabled == "true" {
		jobManager := app.CreateJobManager()
		if err := jobManager.StartAll(); err != nil {
			log.Fatalf("Failed to start jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

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
		RabbitMQURL:        os.Getenv("RABBITMQ_URL"),
		DispatchJobEnabled: os.Getenv("DISPATCH_JOB_ENABLED"),
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
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&productrepo.ProductDTO{},
		&clientrepo.ClientDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&deliveryrepo.DeliveryDTO{},
		&counterrepo.CounterDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

// connectPublisher dials RabbitMQ when configured. Without a broker URL the
// engine runs with event publishing disabled.
func connectPublisher(configs cmd.Config, logger *slog.Logger) ports.OrderEventPublisher {
	if configs.RabbitMQURL == "" {
		logger.Warn("RABBITMQ_URL not set, order events will not be published")
		return nil
	}

	conn, err := amqp.Dial(configs.RabbitMQURL)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	return rabbitmq.NewPublisher(conn)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateAddProductCommandHandler(),
		app.CreateAddClientCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateMarkReadyForDeliveryCommandHandler(),
		app.CreateStartDeliveryCommandHandler(),
		app.CreateGetProductsQueryHandler(),
		app.CreateGetUncompletedOrdersQueryHandler(),
		app.CreateGetActiveDeliveriesQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
