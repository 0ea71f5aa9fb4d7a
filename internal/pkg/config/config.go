// internal/pkg/config/config.go
package config

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds all application configuration
type Config struct {
	// Application
	App AppConfig

	// Storage backend selection
	Store StoreConfig

	// MongoDB
	Mongo MongoConfig

	// PostgreSQL
	Database DatabaseConfig

	// Redis
	Redis RedisConfig

	// Asynq
	Asynq AsynqConfig

	// AWS
	AWS AWSConfig

	// Reports and background jobs
	Reports ReportsConfig

	// Security
	Security SecurityConfig

	// Server
	Server ServerConfig
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Version     string
	LogLevel    string
	LogFormat   string // json, text
	Debug       bool
}

// StoreConfig selects the phone store backend
type StoreConfig struct {
	Driver string // mongo, postgres, memory
}

// MongoConfig holds MongoDB configuration
type MongoConfig struct {
	URI             string
	Database        string
	Collection      string
	MaxPoolSize     uint64
	MinPoolSize     uint64
	ConnectTimeout  time.Duration
	ServerSelection time.Duration
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxConnections     int32
	MinConnections     int32
	MaxConnLifetime    time.Duration
	MaxConnIdleTime    time.Duration
	HealthCheckPeriod  time.Duration
	ConnectTimeout     time.Duration
	EnableQueryLogging bool
	MigrationPath      string // empty uses the embedded migrations
	AutoMigrate        bool
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Enabled         bool
	Host            string
	Port            string
	Password        string
	DB              int
	MaxRetries      int
	MinRetryBackoff time.Duration
	MaxRetryBackoff time.Duration
	DialTimeout     time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	PoolSize        int
	MinIdleConns    int
	PoolTimeout     time.Duration
	IdleTimeout     time.Duration
}

// AsynqConfig holds Asynq task queue configuration
type AsynqConfig struct {
	RedisAddr           string
	RedisPassword       string
	RedisDB             int
	Concurrency         int
	Queues              map[string]int
	StrictPriority      bool
	RetryMax            int
	ShutdownTimeout     time.Duration
	HealthCheckInterval time.Duration
}

// AWSConfig holds AWS configuration
type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	S3Bucket        string // empty disables S3 snapshots
	S3Endpoint      string
	UsePathStyle    bool
	SecretsName     string // Secrets Manager secret holding credentials
}

// ReportsConfig holds report caching and background job settings
type ReportsConfig struct {
	CacheTTL       time.Duration
	WarmupInterval time.Duration
	PurgeRetention time.Duration // zero disables purging
	PurgeCron      string
	SnapshotCron   string
	SnapshotDir    string // local snapshot target when no bucket is set
}

// SecurityConfig holds HTTP hardening settings
type SecurityConfig struct {
	RateLimitRequests int
	RateLimitDuration time.Duration
	AllowedOrigins    []string
	SecureHeaders     bool
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host              string
	Port              string
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	RequestTimeout    time.Duration
	MaxHeaderBytes    int
	GracefulTimeout   time.Duration
	EnableHealthCheck bool
	TLSEnabled        bool
	TLSCertFile       string
	TLSKeyFile        string
}

// Load loads configuration from environment variables
func Load(logger *slog.Logger) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	env := str(v, "APP_ENV", "development")

	// Load .env file in development
	if env == "development" || env == "local" {
		if err := godotenv.Load(); err != nil {
			logger.Warn("no .env file found, using environment variables",
				slog.String("error", err.Error()))
		} else {
			logger.Info(".env file loaded successfully")
		}
	}

	production := env == "production"
	redisHost := str(v, "REDIS_HOST", "localhost")
	redisPort := str(v, "REDIS_PORT", "6379")
	redisPassword := str(v, "REDIS_PASSWORD", "")
	dbName := str(v, "DB_NAME", "projects")

	cfg := &Config{
		App: AppConfig{
			Name:        str(v, "APP_NAME", "phone-inventory"),
			Environment: env,
			Version:     str(v, "APP_VERSION", "dev"),
			LogLevel:    str(v, "LOG_LEVEL", "info"),
			LogFormat:   str(v, "LOG_FORMAT", "json"),
			Debug:       boolean(v, "APP_DEBUG", env == "development"),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(str(v, "STORE_DRIVER", DriverMongo)),
		},
		Mongo: MongoConfig{
			URI:             str(v, "MONGODB_URI", "mongodb://localhost:27017"),
			Database:        dbName,
			Collection:      str(v, "MONGODB_COLLECTION", "phonelist"),
			MaxPoolSize:     uint64(integer(v, "MONGODB_MAX_POOL_SIZE", 50)),
			MinPoolSize:     uint64(integer(v, "MONGODB_MIN_POOL_SIZE", 5)),
			ConnectTimeout:  duration(v, "MONGODB_CONNECT_TIMEOUT", 10*time.Second),
			ServerSelection: duration(v, "MONGODB_SERVER_SELECTION_TIMEOUT", 5*time.Second),
		},
		Database: DatabaseConfig{
			Host:               str(v, "DB_HOST", "localhost"),
			Port:               str(v, "DB_PORT", "5432"),
			User:               str(v, "DB_USER", "phones"),
			Password:           str(v, "DB_PASSWORD", "phones_dev"),
			Name:               dbName,
			SSLMode:            str(v, "DB_SSL_MODE", "disable"),
			MaxConnections:     int32(integer(v, "DB_MAX_CONNECTIONS", 25)),
			MinConnections:     int32(integer(v, "DB_MIN_CONNECTIONS", 5)),
			MaxConnLifetime:    duration(v, "DB_CONNECTION_LIFETIME", time.Hour),
			MaxConnIdleTime:    duration(v, "DB_IDLE_TIME", 30*time.Minute),
			HealthCheckPeriod:  duration(v, "DB_HEALTH_CHECK_PERIOD", time.Minute),
			ConnectTimeout:     duration(v, "DB_CONNECT_TIMEOUT", 10*time.Second),
			EnableQueryLogging: boolean(v, "DB_QUERY_LOGGING", false),
			MigrationPath:      str(v, "DB_MIGRATION_PATH", ""),
			AutoMigrate:        boolean(v, "DB_AUTO_MIGRATE", !production),
		},
		Redis: RedisConfig{
			Enabled:         boolean(v, "REDIS_ENABLED", true),
			Host:            redisHost,
			Port:            redisPort,
			Password:        redisPassword,
			DB:              integer(v, "REDIS_DB", 0),
			MaxRetries:      integer(v, "REDIS_MAX_RETRIES", 3),
			MinRetryBackoff: duration(v, "REDIS_MIN_RETRY_BACKOFF", 8*time.Millisecond),
			MaxRetryBackoff: duration(v, "REDIS_MAX_RETRY_BACKOFF", 512*time.Millisecond),
			DialTimeout:     duration(v, "REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:     duration(v, "REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout:    duration(v, "REDIS_WRITE_TIMEOUT", 3*time.Second),
			PoolSize:        integer(v, "REDIS_POOL_SIZE", 10),
			MinIdleConns:    integer(v, "REDIS_MIN_IDLE_CONNS", 2),
			PoolTimeout:     duration(v, "REDIS_POOL_TIMEOUT", 4*time.Second),
			IdleTimeout:     duration(v, "REDIS_IDLE_TIMEOUT", 5*time.Minute),
		},
		Asynq: AsynqConfig{
			RedisAddr:           fmt.Sprintf("%s:%s", redisHost, redisPort),
			RedisPassword:       redisPassword,
			RedisDB:             integer(v, "ASYNQ_REDIS_DB", 0),
			Concurrency:         integer(v, "ASYNQ_CONCURRENCY", 10),
			Queues:              parseQueues(str(v, "ASYNQ_QUEUES", "critical:6,default:3,low:1")),
			StrictPriority:      boolean(v, "ASYNQ_STRICT_PRIORITY", false),
			RetryMax:            integer(v, "ASYNQ_RETRY_MAX", 3),
			ShutdownTimeout:     duration(v, "ASYNQ_SHUTDOWN_TIMEOUT", 30*time.Second),
			HealthCheckInterval: duration(v, "ASYNQ_HEALTH_CHECK_INTERVAL", 30*time.Second),
		},
		AWS: AWSConfig{
			Region:          str(v, "AWS_REGION", "us-east-1"),
			AccessKeyID:     str(v, "AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: str(v, "AWS_SECRET_ACCESS_KEY", ""),
			S3Bucket:        str(v, "AWS_S3_BUCKET", ""),
			S3Endpoint:      str(v, "AWS_S3_ENDPOINT", ""),
			UsePathStyle:    boolean(v, "AWS_S3_PATH_STYLE", env == "development"),
			SecretsName:     str(v, "AWS_SECRETS_NAME", ""),
		},
		Reports: ReportsConfig{
			CacheTTL:       duration(v, "REPORT_CACHE_TTL", time.Minute),
			WarmupInterval: duration(v, "REPORT_WARMUP_INTERVAL", 5*time.Minute),
			PurgeRetention: duration(v, "PURGE_RETENTION", 720*time.Hour),
			PurgeCron:      str(v, "PURGE_CRON", "@daily"),
			SnapshotCron:   str(v, "SNAPSHOT_CRON", "0 2 * * *"),
			SnapshotDir:    str(v, "SNAPSHOT_DIR", ""),
		},
		Security: SecurityConfig{
			RateLimitRequests: integer(v, "RATE_LIMIT_REQUESTS", 100),
			RateLimitDuration: duration(v, "RATE_LIMIT_DURATION", time.Minute),
			AllowedOrigins:    list(v, "ALLOWED_ORIGINS", []string{"*"}),
			SecureHeaders:     boolean(v, "SECURE_HEADERS", production),
		},
		Server: ServerConfig{
			Host:              str(v, "SERVER_HOST", "0.0.0.0"),
			Port:              str(v, "PORT", "3000"),
			ReadTimeout:       duration(v, "SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:      duration(v, "SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:       duration(v, "SERVER_IDLE_TIMEOUT", 60*time.Second),
			RequestTimeout:    duration(v, "SERVER_REQUEST_TIMEOUT", 10*time.Second),
			MaxHeaderBytes:    integer(v, "SERVER_MAX_HEADER_BYTES", 1<<20),
			GracefulTimeout:   duration(v, "SERVER_GRACEFUL_TIMEOUT", 30*time.Second),
			EnableHealthCheck: boolean(v, "SERVER_ENABLE_HEALTH", true),
			TLSEnabled:        boolean(v, "SERVER_TLS_ENABLED", false),
			TLSCertFile:       str(v, "SERVER_TLS_CERT", ""),
			TLSKeyFile:        str(v, "SERVER_TLS_KEY", ""),
		},
	}

	if cfg.AWS.SecretsName != "" {
		secrets, err := NewAWSSecretsManager(cfg.AWS.Region, cfg.AWS.SecretsName, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create secrets manager: %w", err)
		}
		if err := ApplySecrets(context.Background(), cfg, secrets); err != nil {
			return nil, fmt.Errorf("failed to apply secrets: %w", err)
		}
		logger.Info("secrets loaded", slog.String("secret", cfg.AWS.SecretsName))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	validators := []Validator{BasicValidator{}, StoreValidator{}}
	if c.IsProduction() {
		validators = append(validators, ProductionValidator{})
	}

	for _, validator := range validators {
		if err := validator.Validate(c); err != nil {
			return err
		}
	}
	return nil
}

// GetDatabaseURL returns the PostgreSQL connection URL
func (c *Config) GetDatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     c.Database.Host + ":" + c.Database.Port,
		Path:     "/" + c.Database.Name,
		RawQuery: url.Values{"sslmode": {c.Database.SSLMode}}.Encode(),
	}
	return u.String()
}

// GetRedisAddr returns the Redis host:port address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// GetServerAddress returns the formatted server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// IsProduction returns true if running in production
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// IsDevelopment returns true if running in development
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development" || c.App.Environment == "local"
}

// Helper functions

func str(v *viper.Viper, key, defaultValue string) string {
	v.SetDefault(key, defaultValue)
	return strings.TrimSpace(v.GetString(key))
}

func boolean(v *viper.Viper, key string, defaultValue bool) bool {
	raw := str(v, key, strconv.FormatBool(defaultValue))
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultValue
	}
	return b
}

func integer(v *viper.Viper, key string, defaultValue int) int {
	raw := str(v, key, strconv.Itoa(defaultValue))
	i, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return i
}

func duration(v *viper.Viper, key string, defaultValue time.Duration) time.Duration {
	raw := str(v, key, defaultValue.String())
	d, err := time.ParseDuration(raw)
	if err != nil {
		return defaultValue
	}
	return d
}

func list(v *viper.Viper, key string, defaultValue []string) []string {
	raw := str(v, key, "")
	if raw == "" {
		return defaultValue
	}

	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

func parseQueues(queuesStr string) map[string]int {
	queues := make(map[string]int)
	for _, pair := range strings.Split(queuesStr, ",") {
		parts := strings.Split(pair, ":")
		if len(parts) != 2 {
			continue
		}
		name := strings.TrimSpace(parts[0])
		priority, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err == nil && name != "" && priority > 0 {
			queues[name] = priority
		}
	}
	if len(queues) == 0 {
		queues["default"] = 1
	}
	return queues
}
