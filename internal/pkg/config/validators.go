// internal/pkg/config/validators.go
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	// ErrMissingRequiredConfig reports a required setting that is empty
	ErrMissingRequiredConfig = errors.New("missing required configuration")
	// ErrInvalidConfig reports a setting with an unusable value
	ErrInvalidConfig = errors.New("invalid configuration value")
)

// Validator checks one aspect of the configuration
type Validator interface {
	Validate(cfg *Config) error
}

// BasicValidator performs basic configuration validation
type BasicValidator struct{}

// Validate performs basic validation
func (BasicValidator) Validate(cfg *Config) error {
	if cfg.App.Name == "" {
		return fmt.Errorf("%w: APP_NAME", ErrMissingRequiredConfig)
	}
	if cfg.Server.Port == "" {
		return fmt.Errorf("%w: PORT", ErrMissingRequiredConfig)
	}

	if cfg.Redis.Enabled && cfg.Redis.PoolSize <= 0 {
		return fmt.Errorf("%w: redis pool_size must be positive", ErrInvalidConfig)
	}

	if cfg.Security.RateLimitRequests < 0 {
		return fmt.Errorf("%w: rate_limit_requests must not be negative", ErrInvalidConfig)
	}

	if cfg.Asynq.Concurrency <= 0 {
		return fmt.Errorf("%w: asynq concurrency must be positive", ErrInvalidConfig)
	}

	if cfg.Reports.PurgeRetention < 0 {
		return fmt.Errorf("%w: purge retention must not be negative", ErrInvalidConfig)
	}

	if cfg.Server.TLSEnabled && (cfg.Server.TLSCertFile == "" || cfg.Server.TLSKeyFile == "") {
		return fmt.Errorf("%w: TLS cert and key files must be provided when TLS is enabled", ErrMissingRequiredConfig)
	}

	return nil
}

// StoreValidator validates the settings of the selected store driver
type StoreValidator struct{}

// Validate checks the driver name and its connection settings
func (StoreValidator) Validate(cfg *Config) error {
	switch cfg.Store.Driver {
	case DriverMongo:
		if cfg.Mongo.URI == "" {
			return fmt.Errorf("%w: MONGODB_URI", ErrMissingRequiredConfig)
		}
		if _, err := url.Parse(cfg.Mongo.URI); err != nil {
			return fmt.Errorf("%w: MONGODB_URI is not a valid URI", ErrInvalidConfig)
		}
		if !strings.HasPrefix(cfg.Mongo.URI, "mongodb://") && !strings.HasPrefix(cfg.Mongo.URI, "mongodb+srv://") {
			return fmt.Errorf("%w: MONGODB_URI must use the mongodb scheme", ErrInvalidConfig)
		}
		if cfg.Mongo.Database == "" {
			return fmt.Errorf("%w: DB_NAME", ErrMissingRequiredConfig)
		}
		if cfg.Mongo.MaxPoolSize == 0 || cfg.Mongo.MaxPoolSize < cfg.Mongo.MinPoolSize {
			return fmt.Errorf("%w: mongodb max pool size must be positive and >= min pool size", ErrInvalidConfig)
		}
	case DriverPostgres:
		if cfg.Database.Host == "" || cfg.Database.Name == "" {
			return fmt.Errorf("%w: DB_HOST and DB_NAME", ErrMissingRequiredConfig)
		}
		if cfg.Database.MaxConnections <= 0 || cfg.Database.MaxConnections < cfg.Database.MinConnections {
			return fmt.Errorf("%w: database max_connections must be positive and >= min_connections", ErrInvalidConfig)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("%w: unknown store driver %q", ErrInvalidConfig, cfg.Store.Driver)
	}
	return nil
}

// ProductionValidator performs strict validation for production environments
type ProductionValidator struct{}

// Validate performs production-specific validation
func (ProductionValidator) Validate(cfg *Config) error {
	if cfg.Store.Driver == DriverMemory {
		return fmt.Errorf("%w: the memory store cannot be used in production", ErrInvalidConfig)
	}

	if cfg.Store.Driver == DriverPostgres {
		if strings.Contains(cfg.Database.Password, "MISSING_") || cfg.Database.Password == "" {
			return fmt.Errorf("%w: database password", ErrMissingRequiredConfig)
		}
		if cfg.Database.SSLMode == "disable" {
			return fmt.Errorf("%w: database SSL must be enabled in production", ErrInvalidConfig)
		}
	}

	if !cfg.Security.SecureHeaders {
		return fmt.Errorf("%w: secure headers must be enabled in production", ErrInvalidConfig)
	}

	if len(cfg.Security.AllowedOrigins) == 0 {
		return fmt.Errorf("%w: allowed origins must be configured in production", ErrMissingRequiredConfig)
	}

	if cfg.App.Debug {
		return fmt.Errorf("%w: debug error output cannot be enabled in production", ErrInvalidConfig)
	}

	return nil
}
