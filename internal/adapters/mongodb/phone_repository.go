// internal/adapters/mongodb/phone_repository.go
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ammerola/phone-inventory/internal/core/domain"
)

// Find returns the filtered, sorted window of phones
func (s *Store) Find(ctx context.Context, q domain.PhoneQuery) ([]domain.Phone, error) {
	opts := options.Find().SetSort(buildSort(q.SortBy, q.SortOrder))
	if q.Skip > 0 {
		opts.SetSkip(q.Skip)
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}

	cursor, err := s.coll.Find(ctx, buildFilter(q.Filter), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query phones: %w", err)
	}

	var docs []phoneDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode phones: %w", err)
	}

	return toDomainList(docs), nil
}

// Count counts phones matching f
func (s *Store) Count(ctx context.Context, f domain.PhoneFilter) (int64, error) {
	n, err := s.coll.CountDocuments(ctx, buildFilter(f))
	if err != nil {
		return 0, fmt.Errorf("failed to count phones: %w", err)
	}
	return n, nil
}

// FindOne returns the phone or nil when absent
func (s *Store) FindOne(ctx context.Context, id domain.ID, vis domain.Visibility) (*domain.Phone, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, nil
	}

	var doc phoneDocument
	err = s.coll.FindOne(ctx, byID(oid, vis)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get phone: %w", err)
	}

	p := doc.toDomain()
	return &p, nil
}

// Insert stores p under a new ObjectID
func (s *Store) Insert(ctx context.Context, p *domain.Phone) (domain.ID, error) {
	doc := toDocument(p)
	doc.ID = primitive.NewObjectID()

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("failed to insert phone: %w", err)
	}

	s.logger.DebugContext(ctx, "phone inserted", slog.String("id", doc.ID.Hex()))
	return domain.ID(doc.ID.Hex()), nil
}

// Update applies c to an active phone
func (s *Store) Update(ctx context.Context, id domain.ID, c domain.PhoneChanges) (bool, error) {
	oid, err := objectID(id)
	if err != nil {
		return false, nil
	}

	res, err := s.coll.UpdateOne(ctx, byID(oid, domain.ActiveOnly), buildSet(c))
	if err != nil {
		return false, fmt.Errorf("failed to update phone: %w", err)
	}
	return res.MatchedCount > 0, nil
}

// AdjustStock writes the new quantity and derived status with one update
// pipeline. The pre-image is returned by the server, the post-image is
// derived from it with the same rules the pipeline applies.
func (s *Store) AdjustStock(ctx context.Context, id domain.ID, adj domain.StockAdjustment, at time.Time) (*domain.StockChange, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, nil
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)

	var before phoneDocument
	err = s.coll.FindOneAndUpdate(ctx, byID(oid, domain.ActiveOnly), stockPipeline(adj, at), opts).Decode(&before)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to adjust stock: %w", err)
	}

	after := before.toDomain()
	after.Quantity = adj.Resolve(before.Quantity)
	after.Status = domain.DeriveStatus(after.Quantity)
	after.UpdatedAt = at

	return &domain.StockChange{
		Phone:            after,
		PreviousQuantity: before.Quantity,
		PreviousStatus:   domain.StockStatus(before.Status),
	}, nil
}

// SoftDelete flags an active phone as deleted
func (s *Store) SoftDelete(ctx context.Context, id domain.ID, at time.Time) (bool, error) {
	oid, err := objectID(id)
	if err != nil {
		return false, nil
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "isDeleted", Value: true},
		{Key: "deletedAt", Value: at},
	}}}

	res, err := s.coll.UpdateOne(ctx, byID(oid, domain.ActiveOnly), update)
	if err != nil {
		return false, fmt.Errorf("failed to soft delete phone: %w", err)
	}
	return res.MatchedCount > 0, nil
}

// Delete removes a phone regardless of isDeleted
func (s *Store) Delete(ctx context.Context, id domain.ID) (bool, error) {
	oid, err := objectID(id)
	if err != nil {
		return false, nil
	}

	res, err := s.coll.DeleteOne(ctx, byID(oid, domain.IncludeDeleted))
	if err != nil {
		return false, fmt.Errorf("failed to delete phone: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// PurgeDeleted removes phones soft deleted before the cutoff
func (s *Store) PurgeDeleted(ctx context.Context, before time.Time) (int64, error) {
	filter := bson.D{
		{Key: "isDeleted", Value: true},
		{Key: "deletedAt", Value: bson.D{{Key: "$lt", Value: before}}},
	}

	res, err := s.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to purge deleted phones: %w", err)
	}
	return res.DeletedCount, nil
}
