package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ledgerapi/internal/config"
	"ledgerapi/internal/database"
	"ledgerapi/internal/database/migration"
	handlers "ledgerapi/internal/http/handler"
	"ledgerapi/internal/http/middleware"
	"ledgerapi/internal/notify"
	"ledgerapi/internal/otel"
	"ledgerapi/internal/repository/postgres"
	"ledgerapi/internal/service"
	"ledgerapi/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := time.UTC

	ctx := context.Background()

	// Tracing first so DB and storage clients pick up the global provider.
	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(shutdownCtx)
	}()

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Initialize reusable S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	// Repositories
	accountRepo := postgres.NewAccountPostgres(db)
	orderRepo := postgres.NewOrderPostgres(db)
	notificationRepo := postgres.NewNotificationPostgres(db)
	statementRepo := postgres.NewStatementPostgres(db)

	// Notification channels; each writes its rendered payload to stdout.
	notificationSvc := service.NewNotificationService(notificationRepo,
		notify.NewEmail(cfg.Notify.EmailFrom, nil),
		notify.NewSMS(nil),
		notify.NewPush(nil),
	)

	// Receipts and confirmations are optional; nil disables them.
	var receipts service.NotificationService
	if cfg.Notify.ReceiptsOn {
		receipts = notificationSvc
	}

	presignExpiry := time.Duration(cfg.MinIO.PresignExpirySec) * time.Second
	accountSvc := service.NewAccountService(accountRepo, statementRepo, objStore, receipts, cfg.Notify.ReceiptChannel, presignExpiry)
	orderSvc := service.NewOrderService(orderRepo, objStore, receipts, cfg.Notify.ReceiptChannel)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, accountSvc, orderSvc, notificationSvc)

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
