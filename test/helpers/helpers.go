// test/helpers/helpers.go
package helpers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/ammerola/phone-inventory/internal/adapters/db"
	"github.com/ammerola/phone-inventory/internal/adapters/mongodb"
	"github.com/ammerola/phone-inventory/internal/core/domain"
	"github.com/ammerola/phone-inventory/internal/pkg/config"
)

// TestDB represents a test PostgreSQL instance
type TestDB struct {
	PgxPool  *pgxpool.Pool
	Database *db.Database
	Resource *dockertest.Resource
	Pool     *dockertest.Pool
	Config   *db.Config
}

// TestMongo represents a test MongoDB instance
type TestMongo struct {
	Store    *mongodb.Store
	Resource *dockertest.Resource
	Pool     *dockertest.Pool
	Config   *mongodb.Config
}

// Reset removes every document from the phone collection
func (m *TestMongo) Reset(t *testing.T) {
	t.Helper()
	_, err := m.Store.Collection().DeleteMany(context.Background(), bson.D{})
	require.NoError(t, err, "Failed to reset phone collection")
}

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	level := slog.LevelError
	if testing.Verbose() {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

// Ptr returns a pointer to v
func Ptr[T any](v T) *T {
	return &v
}

func newDockerPool(t *testing.T) *dockertest.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "Could not connect to Docker")
	pool.MaxWait = 2 * time.Minute
	return pool
}

func autoRemove(config *docker.HostConfig) {
	config.AutoRemove = true
	config.RestartPolicy = docker.RestartPolicy{Name: "no"}
}

// SetupTestDB creates a PostgreSQL container with the schema migrated
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	pool := newDockerPool(t)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=test_phones",
			"listen_addresses = '*'",
		},
	}, autoRemove)
	require.NoError(t, err, "Could not start PostgreSQL container")

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("Could not purge resource: %s", err)
		}
	})

	dbConfig := &db.Config{
		Host:               "localhost",
		Port:               resource.GetPort("5432/tcp"),
		User:               "test",
		Password:           "test",
		Database:           "test_phones",
		SSLMode:            "disable",
		MaxConnections:     5,
		MinConnections:     1,
		MaxConnLifetime:    time.Hour,
		MaxConnIdleTime:    30 * time.Minute,
		HealthCheckPeriod:  time.Minute,
		ConnectTimeout:     10 * time.Second,
		EnableQueryLogging: testing.Verbose(),
	}

	var database *db.Database
	err = pool.Retry(func() error {
		ctx := context.Background()
		var err error
		database, err = db.NewDatabase(ctx, dbConfig, TestLogger())
		if err != nil {
			return err
		}
		return database.Ping(ctx)
	})
	require.NoError(t, err, "Could not connect to PostgreSQL")
	t.Cleanup(database.Close)

	err = db.RunMigrationsWithRetry(context.Background(), &db.MigrationConfig{
		DatabaseURL: dbConfig.URL(),
		TableName:   "schema_migrations",
		SchemaName:  "public",
	}, TestLogger(), 3)
	require.NoError(t, err, "Could not run migrations")

	return &TestDB{
		PgxPool:  database.Pool(),
		Database: database,
		Resource: resource,
		Pool:     pool,
		Config:   dbConfig,
	}
}

// SetupTestMongo creates a MongoDB container and connects a store to it
func SetupTestMongo(t *testing.T) *TestMongo {
	t.Helper()

	pool := newDockerPool(t)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mongo",
		Tag:        "7",
	}, autoRemove)
	require.NoError(t, err, "Could not start MongoDB container")

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("Could not purge resource: %s", err)
		}
	})

	mongoConfig := mongodb.DefaultConfig()
	mongoConfig.URI = fmt.Sprintf("mongodb://localhost:%s", resource.GetPort("27017/tcp"))
	mongoConfig.Database = "test_projects"
	mongoConfig.MinPoolSize = 1
	mongoConfig.MaxPoolSize = 5

	var store *mongodb.Store
	err = pool.Retry(func() error {
		var err error
		store, err = mongodb.NewStore(context.Background(), mongoConfig, TestLogger())
		return err
	})
	require.NoError(t, err, "Could not connect to MongoDB")

	t.Cleanup(func() {
		_ = store.Close(context.Background())
	})

	return &TestMongo{
		Store:    store,
		Resource: resource,
		Pool:     pool,
		Config:   mongoConfig,
	}
}

// SetupTestRedis creates an in-process Redis instance for testing
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	t.Cleanup(func() {
		client.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// LoadTestConfig returns a test configuration over the memory store
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "phone-inventory-test",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
		},
		Store: config.StoreConfig{Driver: config.DriverMemory},
		Mongo: config.MongoConfig{
			URI:         "mongodb://localhost:27017",
			Database:    "test_projects",
			Collection:  mongodb.DefaultCollection,
			MaxPoolSize: 5,
			MinPoolSize: 1,
		},
		Redis: config.RedisConfig{
			Host:     "localhost",
			Port:     "6379",
			PoolSize: 10,
		},
		Asynq: config.AsynqConfig{
			Concurrency: 2,
			Queues:      map[string]int{"critical": 6, "default": 3, "low": 1},
		},
		Reports: config.ReportsConfig{
			CacheTTL:       time.Minute,
			WarmupInterval: 5 * time.Minute,
			PurgeRetention: 720 * time.Hour,
		},
		Security: config.SecurityConfig{
			AllowedOrigins: []string{"*"},
		},
		Server: config.ServerConfig{
			Host:           "localhost",
			Port:           "3000",
			RequestTimeout: 5 * time.Second,
		},
	}
}

// CreateTestPhone creates an in-stock test phone
func CreateTestPhone(overrides ...func(*domain.Phone)) *domain.Phone {
	now := time.Now().UTC().Truncate(time.Millisecond)
	phone := &domain.Phone{
		Name:      "iPhone 15 Pro",
		Brand:     "Apple",
		Price:     28_990_000,
		CostPrice: Ptr(25_500_000.0),
		Quantity:  10,
		Color:     "Natural Titanium",
		Storage:   "256GB",
		RAM:       "8GB",
		IMEIList:  []string{"356789012345678"},
		Status:    domain.StatusInStock,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, override := range overrides {
		override(phone)
	}

	return phone
}

// CreateTestInput creates a valid creation payload
func CreateTestInput(overrides ...func(*domain.CreatePhoneInput)) domain.CreatePhoneInput {
	in := domain.CreatePhoneInput{
		Name:      "iPhone 15 Pro",
		Brand:     "Apple",
		Price:     Ptr(28_990_000.0),
		CostPrice: Ptr(25_500_000.0),
		Quantity:  Ptr(10),
		Color:     "Natural Titanium",
		Storage:   "256GB",
		RAM:       "8GB",
	}

	for _, override := range overrides {
		override(&in)
	}

	return in
}

// CreateTestPhones creates count phones across several brands with
// increasing prices
func CreateTestPhones(count int) []*domain.Phone {
	brands := []string{"Apple", "Samsung", "Xiaomi", "Google", "OPPO"}

	phones := make([]*domain.Phone, count)
	for i := 0; i < count; i++ {
		phones[i] = CreateTestPhone(func(p *domain.Phone) {
			p.Name = fmt.Sprintf("Test Phone %d", i+1)
			p.Brand = brands[i%len(brands)]
			p.Price = float64(1_000_000 * (i + 1))
			p.Quantity = i % 12
			p.Status = domain.DeriveStatus(p.Quantity)
		})
	}
	return phones
}

// AssertEventuallyWithTimeout asserts that a condition is met within a timeout
func AssertEventuallyWithTimeout(t *testing.T, condition func() bool, timeout time.Duration, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Errorf("Condition not met within %v: %s", timeout, msg)
}

// TruncateAllTables truncates all tables in the test database
func TruncateAllTables(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	for _, table := range []string{"phones"} {
		_, err := pool.Exec(context.Background(), fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "Failed to truncate table: %s", table)
	}
}
