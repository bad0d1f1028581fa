package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"ordercore/cmd"
	"ordercore/internal/adapters/out/notify"
	"ordercore/internal/adapters/out/postgres/orderrepo"
	"ordercore/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/streadway/amqp"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	gormDB := mustOpenDatabase(configs)

	dispatcher := notify.NewDispatcher(buildPublisher(configs, logger), logger, 0, 0, 0)
	dispatcher.Start()
	defer dispatcher.Stop()

	jobManager := jobs.NewJobManager(dispatcher, logger)
	if err := jobManager.StartAll(); err != nil {
		logger.Error("failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	app := cmd.NewCompositionRoot(configs, gormDB, dispatcher)

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		TaxRate:               goDotEnvVariable("TAX_RATE"),
		ShippingBaseRate:      goDotEnvVariable("SHIPPING_BASE_RATE"),
		ShippingFreeThreshold: goDotEnvVariable("SHIPPING_FREE_THRESHOLD"),
		ShippingEnabled:       goDotEnvVariable("SHIPPING_ENABLED"),
		MaxItemQuantity:       goDotEnvVariable("MAX_ITEM_QUANTITY"),
		NotificationsEnabled:  goDotEnvVariable("NOTIFICATIONS_ENABLED"),
		AMQPURL:               goDotEnvVariable("AMQP_URL"),
		NotificationQueueName: goDotEnvVariable("NOTIFICATION_QUEUE_NAME"),
		PaymentServiceURL:     goDotEnvVariable("PAYMENT_SERVICE_URL"),
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

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return gormDB
}

func buildPublisher(configs cmd.Config, logger *slog.Logger) notify.Publisher {
	if configs.AMQPURL == "" {
		return notify.NewLogPublisher(logger)
	}

	conn, err := amqp.Dial(configs.AMQPURL)
	if err != nil {
		log.Fatalf("Error connecting to AMQP broker: %v", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		log.Fatalf("Error opening AMQP channel: %v", err)
	}

	queueName := configs.NotificationQueueName
	if queueName == "" {
		queueName = "order-notifications"
	}

	publisher, err := notify.NewAMQPPublisher(channel, queueName)
	if err != nil {
		log.Fatalf("Error declaring notification queue: %v", err)
	}

	return publisher
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		if err := app.Ping(c.Request().Context()); err != nil {
			return c.String(http.StatusServiceUnavailable, "Unhealthy")
		}
		return c.String(http.StatusOK, "Healthy")
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
