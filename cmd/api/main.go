// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/ammerola/phone-inventory/internal/adapters/queue"
	redis_a "github.com/ammerola/phone-inventory/internal/adapters/redis_adapter"
	"github.com/ammerola/phone-inventory/internal/bootstrap"
	"github.com/ammerola/phone-inventory/internal/core/ports"
	"github.com/ammerola/phone-inventory/internal/core/services"
	"github.com/ammerola/phone-inventory/internal/handlers"
	"github.com/ammerola/phone-inventory/internal/pkg/config"
	"github.com/ammerola/phone-inventory/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
	GoVersion = "unknown"
)

func main() {
	slogger := logger.SetupLogger("info", "json")

	slogger.Info("starting phone inventory API",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("go_version", GoVersion),
	)

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("store_driver", cfg.Store.Driver),
		slog.String("log_level", cfg.App.LogLevel),
	)

	ctx := context.Background()

	deps, err := initializeDependencies(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup(slogger)

	server := setupHTTPServer(cfg, deps, slogger)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()),
			slog.Bool("tls", cfg.Server.TLSEnabled),
		)

		if cfg.Server.TLSEnabled {
			serverErrors <- server.ListenAndServeTLS(cfg.Server.TLSCertFile, cfg.Server.TLSKeyFile)
		} else {
			serverErrors <- server.ListenAndServe()
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received",
			slog.String("signal", sig.String()),
		)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	store          bootstrap.Backend
	redisClient    *redis.Client
	cache          ports.CacheRepository
	asynqClient    *asynq.Client
	asynqInspector *asynq.Inspector
	router         http.Handler
}

func (d *dependencies) cleanup(logger *slog.Logger) {
	if d.asynqClient != nil {
		if err := d.asynqClient.Close(); err != nil {
			logger.Error("failed to close Asynq client", slog.String("error", err.Error()))
		}
	}
	if d.asynqInspector != nil {
		d.asynqInspector.Close()
	}
	if d.redisClient != nil {
		d.redisClient.Close()
	}
	if d.store != nil {
		if err := d.store.Close(context.Background()); err != nil {
			logger.Error("failed to close store", slog.String("error", err.Error()))
		}
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	store, err := bootstrap.OpenStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	deps.store = store

	redisClient, err := bootstrap.NewRedisClient(ctx, cfg, logger)
	if err != nil {
		deps.cleanup(logger)
		return nil, err
	}
	deps.redisClient = redisClient

	var phoneOpts []services.PhoneServiceOption

	if redisClient != nil {
		deps.cache = redis_a.NewCache(redisClient, cfg.Reports.CacheTTL, logger)

		logger.Info("initializing Asynq client")
		redisOpt := bootstrap.AsynqRedisOpt(cfg)
		deps.asynqClient = asynq.NewClient(redisOpt)
		deps.asynqInspector = asynq.NewInspector(redisOpt)

		tasks := queue.NewClient(deps.asynqClient, logger)
		phoneOpts = append(phoneOpts, services.WithStockAlerts(tasks))

		if err := tasks.EnqueueReportWarmup(ctx); err != nil {
			logger.Warn("failed to enqueue report warmup", slog.String("error", err.Error()))
		}
	}

	reportService := services.NewReportService(store.Reports(), deps.cache, cfg.Reports.CacheTTL, logger)
	phoneOpts = append(phoneOpts, services.WithReportInvalidation(reportService))
	phoneService := services.NewPhoneService(store.Phones(), logger, phoneOpts...)
	exportService := services.NewExportService(store.Phones(), store.Reports(), logger)

	respond := handlers.NewResponder(logger, cfg.App.Debug)

	var health *handlers.HealthHandler
	if cfg.Server.EnableHealthCheck {
		var inspector handlers.QueueInspector
		if deps.asynqInspector != nil {
			inspector = deps.asynqInspector
		}
		health = handlers.NewHealthHandler(store, redisClient, inspector, handlers.BuildInfo{
			Version:     Version,
			Environment: cfg.App.Environment,
			StoreDriver: cfg.Store.Driver,
		}, logger)
	}

	deps.router = handlers.NewRouter(handlers.RouterConfig{
		Phones:  handlers.NewPhoneHandler(phoneService, respond, logger),
		Reports: handlers.NewReportHandler(reportService, deps.cache, respond, logger),
		Export:  handlers.NewExportHandler(exportService, respond, logger),
		Health:  health,
		Respond: respond,
		Logger:  logger,
		Version: Version,

		AllowedOrigins:    cfg.Security.AllowedOrigins,
		RateLimitRequests: cfg.Security.RateLimitRequests,
		RateLimitWindow:   cfg.Security.RateLimitDuration,
		SecureHeaders:     cfg.Security.SecureHeaders,
		RequestTimeout:    cfg.Server.RequestTimeout,
	})

	logger.Info("all dependencies initialized successfully",
		slog.Bool("cache", deps.cache != nil),
		slog.Bool("stock_alerts", deps.asynqClient != nil))
	return deps, nil
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, logger *slog.Logger) *http.Server {
	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        deps.router,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}
