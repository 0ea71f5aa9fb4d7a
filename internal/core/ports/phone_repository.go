// internal/core/ports/phone_repository.go
package ports

import (
	"context"
	"time"

	"github.com/ammerola/phone-inventory/internal/core/domain"
)

// PhoneRepository defines the persistence port for phones.
// Lookups return nil, nil when no record matches.
type PhoneRepository interface {
	Find(ctx context.Context, q domain.PhoneQuery) ([]domain.Phone, error)
	Count(ctx context.Context, f domain.PhoneFilter) (int64, error)
	FindOne(ctx context.Context, id domain.ID, vis domain.Visibility) (*domain.Phone, error)
	Insert(ctx context.Context, p *domain.Phone) (domain.ID, error)
	Update(ctx context.Context, id domain.ID, c domain.PhoneChanges) (bool, error)
	// AdjustStock applies the adjustment and the derived status in one atomic write
	AdjustStock(ctx context.Context, id domain.ID, adj domain.StockAdjustment, at time.Time) (*domain.StockChange, error)
	SoftDelete(ctx context.Context, id domain.ID, at time.Time) (bool, error)
	Delete(ctx context.Context, id domain.ID) (bool, error)
	PurgeDeleted(ctx context.Context, before time.Time) (int64, error)
	Ping(ctx context.Context) error
}

// ReportRepository computes aggregate reports over active phones
type ReportRepository interface {
	Summary(ctx context.Context) (*domain.InventorySummary, error)
	ByBrand(ctx context.Context) ([]domain.BrandReport, error)
	LowStock(ctx context.Context, threshold int) ([]domain.Phone, error)
	OutOfStock(ctx context.Context) ([]domain.Phone, error)
	TopValue(ctx context.Context, limit int) ([]domain.ValuedPhone, error)
	ByPriceRange(ctx context.Context) ([]domain.PriceRangeBucket, error)
}

// Store bundles the repositories of one backend
type Store interface {
	Phones() PhoneRepository
	Reports() ReportRepository
	Close(ctx context.Context) error
}
