// cmd/worker/main.go
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	redis_a "github.com/ammerola/phone-inventory/internal/adapters/redis_adapter"
	"github.com/ammerola/phone-inventory/internal/adapters/storage"
	"github.com/ammerola/phone-inventory/internal/bootstrap"
	"github.com/ammerola/phone-inventory/internal/core/ports"
	"github.com/ammerola/phone-inventory/internal/core/services"
	"github.com/ammerola/phone-inventory/internal/pkg/config"
	"github.com/ammerola/phone-inventory/internal/pkg/logger"
	"github.com/ammerola/phone-inventory/internal/workers"
)

func main() {
	slogger := logger.SetupLogger("info", "json")

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("starting worker",
		slog.String("environment", cfg.App.Environment),
		slog.String("store_driver", cfg.Store.Driver),
		slog.String("redis_addr", cfg.Asynq.RedisAddr))

	if err := run(cfg, slogger); err != nil {
		slogger.Error("worker failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	slogger.Info("worker shutdown complete")
}

func run(cfg *config.Config, slogger *slog.Logger) error {
	ctx := context.Background()

	store, err := bootstrap.OpenStore(ctx, cfg, slogger)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	redisClient, err := bootstrap.NewRedisClient(ctx, cfg, slogger)
	if err != nil {
		return err
	}
	if redisClient == nil {
		return errors.New("the worker requires redis, set REDIS_ENABLED=true")
	}
	defer redisClient.Close()

	cache := redis_a.NewCache(redisClient, cfg.Reports.CacheTTL, slogger)
	reportService := services.NewReportService(store.Reports(), cache, cfg.Reports.CacheTTL, slogger)
	phoneService := services.NewPhoneService(store.Phones(), slogger, services.WithReportInvalidation(reportService))
	exportService := services.NewExportService(store.Phones(), store.Reports(), slogger)

	snapshots, err := initSnapshotStorage(ctx, cfg, slogger)
	if err != nil {
		return err
	}

	mux := workers.NewServeMux(
		workers.NewStockAlertProcessor(cache, slogger),
		workers.NewReportWarmupProcessor(reportService, slogger),
		workers.NewCleanupProcessor(phoneService, cfg.Reports.PurgeRetention, slogger),
		workers.NewSnapshotProcessor(exportService, snapshots, slogger),
	)

	redisOpt := bootstrap.AsynqRedisOpt(cfg)
	asynqLogger := workers.NewAsynqLogger(slogger)

	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency:     cfg.Asynq.Concurrency,
		Queues:          cfg.Asynq.Queues,
		StrictPriority:  cfg.Asynq.StrictPriority,
		ErrorHandler:    asynq.ErrorHandlerFunc(handleError(slogger)),
		RetryDelayFunc:  exponentialBackoff,
		ShutdownTimeout: cfg.Asynq.ShutdownTimeout,
		HealthCheckFunc: healthCheck(slogger),
		Logger:          asynqLogger,
	})

	scheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{
		Logger:   asynqLogger,
		Location: time.UTC,
	})
	err = workers.RegisterPeriodicTasks(scheduler, workers.Schedule{
		ReportWarmupInterval: cfg.Reports.WarmupInterval,
		PurgeCron:            cfg.Reports.PurgeCron,
		SnapshotCron:         cfg.Reports.SnapshotCron,
		PurgeEnabled:         cfg.Reports.PurgeRetention > 0,
		SnapshotEnabled:      snapshots != nil,
	}, slogger)
	if err != nil {
		return err
	}

	if err := reportService.Warmup(ctx); err != nil {
		slogger.Warn("initial report warmup failed", slog.String("error", err.Error()))
	}

	if err := srv.Start(mux); err != nil {
		return err
	}
	if err := scheduler.Start(); err != nil {
		srv.Shutdown()
		return err
	}

	slogger.Info("worker started successfully",
		slog.Int("concurrency", cfg.Asynq.Concurrency),
		slog.Any("queues", cfg.Asynq.Queues),
		slog.Bool("snapshots", snapshots != nil))

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	sig := <-shutdown
	slogger.Info("shutdown signal received", slog.String("signal", sig.String()))

	scheduler.Shutdown()
	srv.Shutdown()
	return nil
}

// initSnapshotStorage picks S3 when a bucket is set, a local directory when
// SNAPSHOT_DIR is set, and nothing otherwise
func initSnapshotStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ports.ObjectStorage, error) {
	switch {
	case cfg.AWS.S3Bucket != "":
		s3, err := storage.NewS3Storage(ctx, &storage.S3Config{
			Region:          cfg.AWS.Region,
			Bucket:          cfg.AWS.S3Bucket,
			AccessKeyID:     cfg.AWS.AccessKeyID,
			SecretAccessKey: cfg.AWS.SecretAccessKey,
			Endpoint:        cfg.AWS.S3Endpoint,
			UsePathStyle:    cfg.AWS.UsePathStyle,
		}, logger)
		if err != nil {
			return nil, err
		}
		return s3, nil
	case cfg.Reports.SnapshotDir != "":
		return storage.NewLocalStorage(cfg.Reports.SnapshotDir, logger), nil
	default:
		logger.Info("snapshot storage not configured, snapshots disabled")
		return nil, nil
	}
}

func handleError(logger *slog.Logger) func(ctx context.Context, task *asynq.Task, err error) {
	return func(ctx context.Context, task *asynq.Task, err error) {
		retried, _ := asynq.GetRetryCount(ctx)
		maxRetry, _ := asynq.GetMaxRetry(ctx)
		logger.ErrorContext(ctx, "task processing failed",
			slog.String("type", task.Type()),
			slog.Int("retried", retried),
			slog.Int("max_retry", maxRetry),
			slog.String("error", err.Error()))
	}
}

func exponentialBackoff(n int, _ error, _ *asynq.Task) time.Duration {
	baseDelay := time.Second
	maxDelay := 10 * time.Minute
	delay := baseDelay * time.Duration(1<<uint(n))
	if delay > maxDelay || delay <= 0 {
		delay = maxDelay
	}
	return delay
}

func healthCheck(logger *slog.Logger) func(error) {
	return func(err error) {
		if err != nil {
			logger.Error("worker health check failed", slog.String("error", err.Error()))
		}
	}
}
