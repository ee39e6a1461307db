package main

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"doctrack/docs"
	"doctrack/internal/access"
	"doctrack/internal/config"
	"doctrack/internal/database"
	"doctrack/internal/database/migration"
	handlers "doctrack/internal/http/handler"
	"doctrack/internal/http/middleware"
	"doctrack/internal/kvstore"
	"doctrack/internal/locale"
	"doctrack/internal/metrics"
	"doctrack/internal/model"
	"doctrack/internal/notify"
	"doctrack/internal/otel"
	"doctrack/internal/recentsearch"
	"doctrack/internal/repository"
	"doctrack/internal/repository/memory"
	"doctrack/internal/repository/postgres"
	"doctrack/internal/seed"
	"doctrack/internal/service"
	"doctrack/internal/storage"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx)
		},
	}
}

func serve(ctx context.Context) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	shutdownTracing, err := otel.Init(ctx, cfg.Otel, log)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("tracing_shutdown_failed", zap.Error(err))
		}
	}()

	app, cleanup, err := buildApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	errCh := make(chan error, 1)
	go func() {
		log.Info("http_listen", zap.String("addr", ":"+cfg.Port))
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("start server: %w", err)
	case <-ctx.Done():
	}

	log.Info("http_shutdown")
	return app.ShutdownWithTimeout(shutdownTimeout)
}

// buildApp constructs every store and service once and wires them into a Fiber app.
// The returned cleanup closes the backing connections.
func buildApp(ctx context.Context, cfg *config.AppConfig, log *zap.Logger) (*fiber.App, func(), error) {
	var closers []func() error
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				log.Warn("close_failed", zap.Error(err))
			}
		}
	}
	fail := func(err error) (*fiber.App, func(), error) {
		cleanup()
		return nil, func() {}, err
	}

	defaultLocale, ok := locale.Parse(cfg.Locale)
	if !ok {
		return fail(fmt.Errorf("unsupported APP_LOCALE %q", cfg.Locale))
	}
	tr, err := locale.NewTranslator(defaultLocale)
	if err != nil {
		return fail(err)
	}

	var (
		docRepo   repository.DocumentRepository
		noteRepo  repository.NotificationRepository
		dbPinger  handlers.Pinger
		kvPinger  handlers.Pinger
		slot      kvstore.Slot
		objStore  storage.Storage
		storeKind = "memory"
	)

	if cfg.Database.Enabled() {
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return fail(fmt.Errorf("connect database: %w", err))
		}
		closers = append(closers, db.Close)
		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			return fail(err)
		}
		docRepo = postgres.NewDocumentPostgres(db)
		noteRepo = postgres.NewNotificationPostgres(db)
		dbPinger = db.PingContext
		storeKind = "postgres"
	} else {
		var initial []model.Document
		if cfg.SeedDemo {
			initial = seed.Documents()
		}
		docRepo = memory.NewDocumentMemory(initial...)
		noteRepo = memory.NewNotificationMemory()
	}
	log.Info("document_store_ready", zap.String("store", storeKind), zap.Bool("seeded", cfg.SeedDemo && storeKind == "memory"))

	switch cfg.Search.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Search.RedisAddr,
			Password: cfg.Search.RedisPassword,
			DB:       cfg.Search.RedisDB,
		})
		r := kvstore.NewRedis(client, "doctrack:")
		closers = append(closers, r.Close)
		kvPinger = func(ctx context.Context) error { return client.Ping(ctx).Err() }
		slot = r
	default:
		s, err := kvstore.OpenSQLite(cfg.Search.SQLitePath)
		if err != nil {
			return fail(fmt.Errorf("open recent-search store: %w", err))
		}
		closers = append(closers, s.Close)
		slot = s
	}

	if cfg.MinIO.Enabled() {
		s, err := storage.NewMinIO(cfg.MinIO)
		if err != nil {
			return fail(fmt.Errorf("init object storage: %w", err))
		}
		objStore = s
	} else {
		objStore = storage.Disabled{}
		log.Warn("attachments_disabled", zap.String("reason", "MINIO_ENDPOINT is not set"))
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	lifecycle, err := metrics.NewLifecycle(registry)
	if err != nil {
		return fail(err)
	}
	promMiddleware, err := middleware.NewPrometheusMiddleware(registry)
	if err != nil {
		return fail(err)
	}

	policy, err := access.NewPolicy(access.DefaultPolicy)
	if err != nil {
		return fail(err)
	}

	emitter := notify.NewEmitter(noteRepo, defaultLocale, notify.WithLocationClock(cfg.Location()))
	deps := handlers.Dependencies{
		Documents:     service.NewDocumentService(docRepo, emitter, tr, lifecycle, log),
		Search:        service.NewSearchService(docRepo, recentsearch.NewRegistry(slot, log), lifecycle, log),
		Reports:       service.NewReportService(docRepo, tr),
		Attachments:   service.NewAttachmentService(objStore, docRepo, cfg.MinIO.PresignExpiry),
		Notifications: emitter,
		Policy:        policy,
		Locale:        defaultLocale,
		Health:        []handlers.Pinger{dbPinger, kvPinger},
	}

	app := fiber.New(fiber.Config{
		AppName:      "doctrack",
		ErrorHandler: handlers.ErrorHandler(tr, log),
		BodyLimit:    32 << 20,
		// Request values end up in stored documents, caches and metric labels.
		Immutable: true,
	})

	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(promMiddleware.Handler())
	app.Use(middleware.Locale(defaultLocale))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	handlers.RegisterRoutes(app, deps)

	return app, cleanup, nil
}
