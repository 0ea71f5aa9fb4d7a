// internal/bootstrap/bootstrap.go
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/ammerola/phone-inventory/internal/adapters/db"
	"github.com/ammerola/phone-inventory/internal/adapters/memory"
	"github.com/ammerola/phone-inventory/internal/adapters/mongodb"
	"github.com/ammerola/phone-inventory/internal/core/ports"
	"github.com/ammerola/phone-inventory/internal/pkg/config"
)

// Backend is a phone store that can report its own health
type Backend interface {
	ports.Store
	ports.HealthReporter
}

// OpenStore connects the backend selected by cfg.Store.Driver
func OpenStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Backend, error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		logger.Info("connecting to MongoDB",
			slog.String("uri", cfg.Mongo.URI),
			slog.String("database", cfg.Mongo.Database))

		store, err := mongodb.NewStore(ctx, &mongodb.Config{
			URI:             cfg.Mongo.URI,
			Database:        cfg.Mongo.Database,
			Collection:      cfg.Mongo.Collection,
			MaxPoolSize:     cfg.Mongo.MaxPoolSize,
			MinPoolSize:     cfg.Mongo.MinPoolSize,
			ConnectTimeout:  cfg.Mongo.ConnectTimeout,
			ServerSelection: cfg.Mongo.ServerSelection,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize mongodb: %w", err)
		}
		if err := store.EnsureIndexes(ctx); err != nil {
			logger.Warn("failed to ensure indexes", slog.String("error", err.Error()))
		}
		return store, nil

	case config.DriverPostgres:
		logger.Info("connecting to database",
			slog.String("host", cfg.Database.Host),
			slog.String("database", cfg.Database.Name))

		database, err := db.NewDatabase(ctx, &db.Config{
			Host:               cfg.Database.Host,
			Port:               cfg.Database.Port,
			User:               cfg.Database.User,
			Password:           cfg.Database.Password,
			Database:           cfg.Database.Name,
			SSLMode:            cfg.Database.SSLMode,
			MaxConnections:     cfg.Database.MaxConnections,
			MinConnections:     cfg.Database.MinConnections,
			MaxConnLifetime:    cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
			HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
			ConnectTimeout:     cfg.Database.ConnectTimeout,
			EnableQueryLogging: cfg.Database.EnableQueryLogging,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}

		if cfg.Database.AutoMigrate {
			if err := runMigrations(ctx, cfg, logger); err != nil {
				database.Close()
				return nil, fmt.Errorf("failed to run migrations: %w", err)
			}
		}
		return db.NewPhoneStore(database, logger), nil

	case config.DriverMemory:
		logger.Warn("using in-memory store, data is lost on exit")
		return memory.NewStore(), nil
	}

	return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}

func runMigrations(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("running database migrations")

	return db.RunMigrationsWithRetry(ctx, &db.MigrationConfig{
		DatabaseURL: cfg.GetDatabaseURL(),
		SourcePath:  cfg.Database.MigrationPath,
		TableName:   "schema_migrations",
		SchemaName:  "public",
	}, logger, 3)
}

// NewRedisClient connects to Redis. It returns nil when Redis is disabled.
func NewRedisClient(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*redis.Client, error) {
	if !cfg.Redis.Enabled {
		logger.Info("redis disabled, report caching and stock alerts are off")
		return nil, nil
	}

	logger.Info("connecting to Redis",
		slog.String("host", cfg.Redis.Host),
		slog.String("port", cfg.Redis.Port))

	client := redis.NewClient(&redis.Options{
		Addr:            cfg.GetRedisAddr(),
		Password:        cfg.Redis.Password,
		DB:              cfg.Redis.DB,
		MaxRetries:      cfg.Redis.MaxRetries,
		MinRetryBackoff: cfg.Redis.MinRetryBackoff,
		MaxRetryBackoff: cfg.Redis.MaxRetryBackoff,
		DialTimeout:     cfg.Redis.DialTimeout,
		ReadTimeout:     cfg.Redis.ReadTimeout,
		WriteTimeout:    cfg.Redis.WriteTimeout,
		PoolSize:        cfg.Redis.PoolSize,
		MinIdleConns:    cfg.Redis.MinIdleConns,
		PoolTimeout:     cfg.Redis.PoolTimeout,
		ConnMaxIdleTime: cfg.Redis.IdleTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// AsynqRedisOpt returns the connection options of the task queue
func AsynqRedisOpt(cfg *config.Config) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}
}
