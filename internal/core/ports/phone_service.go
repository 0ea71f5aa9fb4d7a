// internal/core/ports/phone_service.go
package ports

import (
	"context"

	"github.com/ammerola/phone-inventory/internal/core/domain"
)

// PhoneService defines the application service port for phones
type PhoneService interface {
	Create(ctx context.Context, in domain.CreatePhoneInput) (*domain.Phone, error)
	List(ctx context.Context, params domain.ListParams) (*domain.ListResult, error)
	GetByID(ctx context.Context, id string) (*domain.Phone, error)
	Search(ctx context.Context, keyword string) ([]domain.Phone, error)
	Update(ctx context.Context, id string, patch domain.UpdatePhonePatch) (*domain.Phone, error)
	AdjustStock(ctx context.Context, id string, adj domain.StockAdjustment) (*domain.Phone, error)
	SoftDelete(ctx context.Context, id string) (*DeleteResult, error)
	HardDelete(ctx context.Context, id string) (*DeleteResult, error)
}

// DeleteResult is the acknowledgement of a delete
type DeleteResult struct {
	Message string `json:"message"`
}

// ReportService defines the reporting port
type ReportService interface {
	Summary(ctx context.Context) (*domain.InventorySummary, error)
	ByBrand(ctx context.Context) ([]domain.BrandReport, error)
	LowStock(ctx context.Context, threshold int) ([]domain.Phone, error)
	OutOfStock(ctx context.Context) ([]domain.Phone, error)
	TopValue(ctx context.Context, limit int) ([]domain.ValuedPhone, error)
	ByPriceRange(ctx context.Context) ([]domain.PriceRangeBucket, error)
	// Warmup recomputes every report into the cache
	Warmup(ctx context.Context) error
	// Invalidate drops every cached report
	Invalidate(ctx context.Context) error
}
