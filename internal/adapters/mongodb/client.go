// internal/adapters/mongodb/client.go
package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/ammerola/phone-inventory/internal/core/ports"
)

// DefaultCollection is the collection holding phone documents
const DefaultCollection = "phonelist"

// Config holds MongoDB connection configuration
type Config struct {
	URI             string
	Database        string
	Collection      string
	MaxPoolSize     uint64
	MinPoolSize     uint64
	ConnectTimeout  time.Duration
	ServerSelection time.Duration
}

// DefaultConfig returns default MongoDB configuration
func DefaultConfig() *Config {
	return &Config{
		URI:             "mongodb://localhost:27017",
		Database:        "projects",
		Collection:      DefaultCollection,
		MaxPoolSize:     50,
		MinPoolSize:     5,
		ConnectTimeout:  10 * time.Second,
		ServerSelection: 5 * time.Second,
	}
}

// Store is the MongoDB backend for phones and reports
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
	config *Config
	logger *slog.Logger
}

var (
	_ ports.Store            = (*Store)(nil)
	_ ports.PhoneRepository  = (*Store)(nil)
	_ ports.ReportRepository = (*Store)(nil)
	_ ports.HealthReporter   = (*Store)(nil)
)

// NewStore connects to MongoDB and verifies the connection
func NewStore(ctx context.Context, config *Config, logger *slog.Logger) (*Store, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Collection == "" {
		config.Collection = DefaultCollection
	}

	opts := options.Client().
		ApplyURI(config.URI).
		SetMaxPoolSize(config.MaxPoolSize).
		SetMinPoolSize(config.MinPoolSize).
		SetConnectTimeout(config.ConnectTimeout).
		SetServerSelectionTimeout(config.ServerSelection)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	s := &Store{
		client: client,
		coll:   client.Database(config.Database).Collection(config.Collection),
		config: config,
		logger: logger.With(slog.String("repository", "mongodb")),
	}

	s.logger.Info("mongodb connection established",
		slog.String("database", config.Database),
		slog.String("collection", config.Collection),
	)

	return s, nil
}

// EnsureIndexes creates the indexes the list and report queries rely on
func (s *Store) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "isDeleted", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "brand", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
	}

	names, err := s.coll.Indexes().CreateMany(ctx, models)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	s.logger.InfoContext(ctx, "indexes ensured", slog.Any("indexes", names))
	return nil
}

// Phones returns the phone repository
func (s *Store) Phones() ports.PhoneRepository { return s }

// Reports returns the report repository
func (s *Store) Reports() ports.ReportRepository { return s }

// Collection exposes the underlying phone collection
func (s *Store) Collection() *mongo.Collection { return s.coll }

// Close disconnects the client
func (s *Store) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect mongodb: %w", err)
	}
	s.logger.Info("mongodb connection closed")
	return nil
}

// Ping verifies connectivity to the primary
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Health returns connection health information
func (s *Store) Health(ctx context.Context) map[string]interface{} {
	health := map[string]interface{}{
		"status":     "healthy",
		"driver":     "mongodb",
		"database":   s.config.Database,
		"collection": s.config.Collection,
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := s.Ping(ctx); err != nil {
		health["status"] = "unhealthy"
		health["error"] = err.Error()
		return health
	}

	if n, err := s.coll.EstimatedDocumentCount(ctx); err == nil {
		health["documents"] = n
	}

	return health
}
