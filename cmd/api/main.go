// @title Customer Assistant Analytics API
// @version 1.0.0
// @description Read-only analytics and chat history over the customer support store.
// @BasePath /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	analyticsHttp "support-analytics-service/internal/analytics/adapters/http/fiber"
	analyticsRepoPg "support-analytics-service/internal/analytics/adapters/postgres"
	analyticsUsecase "support-analytics-service/internal/analytics/core/usecase"

	chatHttp "support-analytics-service/internal/chat/adapters/http/fiber"
	chatRepoPg "support-analytics-service/internal/chat/adapters/postgres"
	chatUsecase "support-analytics-service/internal/chat/core/usecase"

	"support-analytics-service/internal/config"
	"support-analytics-service/internal/health"
	"support-analytics-service/internal/platform/logging"
	"support-analytics-service/internal/platform/mongo"
	"support-analytics-service/internal/platform/observability"
	"support-analytics-service/internal/platform/postgres"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "support-analytics-service/docs"
)

const (
	serviceName    = "Customer Assistant Backend API"
	serviceVersion = "1.0.0"
)

func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	log := logging.Service(logger)

	metrics := observability.NewMetrics()

	// DB connection
	startCtx, cancelStart := context.WithTimeout(context.Background(), cfg.Postgres.ConnectTimeout+5*time.Second)
	db, err := postgres.Open(startCtx, cfg.Postgres)
	if err != nil {
		cancelStart()
		log.WithError(err).Fatal("failed to connect to postgres")
	}
	defer db.Close()
	log.Info("connected to postgres")

	// Catalog is optional; health reports it as disabled when not configured.
	var catalog *mongo.Catalog
	if cfg.Mongo.Enabled() {
		catalog, err = mongo.Connect(startCtx, cfg.Mongo)
		if err != nil {
			cancelStart()
			log.WithError(err).Fatal("failed to connect to catalog")
		}
		log.WithField("database", catalog.Name()).Info("connected to catalog")
	}
	cancelStart()

	executor := postgres.NewExecutor(db, log, metrics)

	// Repositories
	analyticsRepository := analyticsRepoPg.NewAnalyticsRepository(analyticsRepoPg.NewSQLDB(executor))
	chatRepository := chatRepoPg.NewChatRepository(chatRepoPg.NewSQLDB(executor))

	// Usecases
	getSummaryUC := analyticsUsecase.NewGetSummaryUseCase(analyticsRepository, nil)
	reportsUC := analyticsUsecase.NewReportsUseCase(analyticsRepository, nil)
	conversationsUC := chatUsecase.NewConversationsUseCase(chatRepository)
	messagesUC := chatUsecase.NewMessagesUseCase(chatRepository)

	// Health
	deps := []health.Dependency{{Name: "postgres", Pinger: executor}}
	if catalog != nil {
		deps = append(deps, health.Dependency{Name: "catalog", Pinger: catalog})
	} else {
		deps = append(deps, health.Dependency{Name: "catalog"})
	}
	healthHandler := health.NewHandler(health.Options{
		ServiceName: serviceName,
		Version:     serviceVersion,
		Environment: cfg.Environment,
		Timeout:     cfg.HealthTimeout,
	}, deps...)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{
		AppName:      serviceName,
		ErrorHandler: errorHandler(log),
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(helmet.New())
	app.Use(compress.New())
	app.Use(logging.RequestLogger(log))
	app.Use(metrics.Middleware())

	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.Health)
	app.Get("/metrics", metrics.Handler())

	// analytics endpoints
	analyticsHandler := analyticsHttp.NewAnalyticsHandler(getSummaryUC, reportsUC, log)
	analyticsHandler.Register(app.Group("/api/analytics"))

	// chat endpoints
	chatHandler := chatHttp.NewChatHandler(conversationsUC, messagesUC, log)
	chatHandler.Register(app.Group("/api/chat"))

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	app.Use(healthHandler.NotFound)

	// Graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.WithError(err).Error("fiber stopped")
		}
	}()

	log.WithFields(logrus.Fields{
		"port":        cfg.Port,
		"environment": cfg.Environment,
	}).Info("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit

	log.WithField("signal", sig.String()).Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.WithError(err).Error("fiber shutdown error")
	}

	if err := catalog.Disconnect(ctx); err != nil {
		log.WithError(err).Error("catalog disconnect error")
	}

	log.Info("server exiting")
}

// errorHandler renders errors that escape the handlers, including recovered
// panics, as JSON.
func errorHandler(log *logrus.Entry) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := http.StatusInternalServerError
		name := "Internal Server Error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
			name = http.StatusText(fe.Code)
		}

		if status >= http.StatusInternalServerError {
			log.WithError(err).WithField("path", c.Path()).Error("unhandled error")
		}

		return c.Status(status).JSON(fiber.Map{
			"error":     name,
			"message":   err.Error(),
			"timestamp": time.Now().UTC(),
		})
	}
}
