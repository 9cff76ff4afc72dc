package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"meatdelivery/api"
	"meatdelivery/cmd"
	http_adapter "meatdelivery/internal/adapters/in/http"
	mongo_adapter "meatdelivery/internal/adapters/out/mongo"
	"meatdelivery/internal/adapters/out/mongo/notificationrepo"
	"meatdelivery/internal/adapters/out/postgres"
	"meatdelivery/internal/adapters/out/rabbitmq"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB := mustGormOpen(config)
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	mongoClient, mongoDB, err := mongo_adapter.Connect(ctx, config.MongoURI, config.MongoDatabase)
	if err != nil {
		log.Fatalf("Error connecting to mongo: %v", err)
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	notificationStore := notificationrepo.NewMongoNotificationRepository(mongoDB)
	if err := notificationStore.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Error creating notification indexes: %v", err)
	}

	publisher, err := rabbitmq.Dial(rabbitmq.Config{URL: config.RabbitMQURL, Exchange: config.RabbitMQExchange})
	if err != nil {
		log.Fatalf("Error connecting to rabbitmq: %v", err)
	}
	defer func() { _ = publisher.Close() }()

	app := cmd.NewCompositionRoot(config, gormDB, notificationStore, publisher, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, config, logger)
}

func mustGormOpen(config cmd.Config) *gorm.DB {
	db, err := gorm.Open(gorm_postgres.Open(config.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to postgres: %v", err)
	}
	return db
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, config cmd.Config, logger *slog.Logger) {
	e := http_adapter.NewEcho(logger)
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	doc, err := api.Load(ctx)
	if err != nil {
		log.Fatalf("Error loading openapi document: %v", err)
	}
	if err := api.Mount(e, doc); err != nil {
		log.Fatalf("Error mounting swagger: %v", err)
	}

	app.CreateServer().Register(e.Group("/api/v1"), http_adapter.Authenticate([]byte(config.JWTSecret)))

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server stopped", "error", err)
			os.Exit(1)
		}
	}()
	logger.Info("http server started", "port", config.HTTPPort)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
	}
}
