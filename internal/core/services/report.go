// internal/core/services/report.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ammerola/phone-inventory/internal/core/domain"
	"github.com/ammerola/phone-inventory/internal/core/ports"
)

// Report cache keys
const (
	ReportKeyPrefix     = "report:"
	ReportCachePattern  = ReportKeyPrefix + "*"
	keySummary          = ReportKeyPrefix + "summary"
	keyByBrand          = ReportKeyPrefix + "by-brand"
	keyOutOfStock       = ReportKeyPrefix + "out-of-stock"
	keyByPriceRange     = ReportKeyPrefix + "by-price-range"
	keyLowStockFormat   = ReportKeyPrefix + "low-stock:%d"
	keyTopValueFormat   = ReportKeyPrefix + "top-value:%d"
	DefaultReportTTL    = time.Minute
	msgThresholdInvalid = "threshold must be a number >= 1"
	msgTopLimitInvalid  = "limit must be between 1 and 100"
)

// ReportService computes inventory reports, reading through an optional cache
type ReportService struct {
	repo   ports.ReportRepository
	cache  ports.CacheRepository
	ttl    time.Duration
	logger *slog.Logger
}

// Statically assert that *ReportService implements the ReportService interface.
var _ ports.ReportService = (*ReportService)(nil)

// NewReportService creates a new report service. A nil cache disables caching.
func NewReportService(repo ports.ReportRepository, cache ports.CacheRepository, ttl time.Duration, logger *slog.Logger) *ReportService {
	if ttl <= 0 {
		ttl = DefaultReportTTL
	}
	return &ReportService{
		repo:   repo,
		cache:  cache,
		ttl:    ttl,
		logger: logger.With(slog.String("service", "report")),
	}
}

// Summary returns the store wide overview
func (s *ReportService) Summary(ctx context.Context) (*domain.InventorySummary, error) {
	return readThrough(ctx, s, keySummary, "summary", s.repo.Summary)
}

// ByBrand returns per brand aggregates
func (s *ReportService) ByBrand(ctx context.Context) ([]domain.BrandReport, error) {
	return readThrough(ctx, s, keyByBrand, "by-brand", s.repo.ByBrand)
}

// LowStock returns phones with 0 < quantity <= threshold
func (s *ReportService) LowStock(ctx context.Context, threshold int) ([]domain.Phone, error) {
	if threshold < 1 {
		return nil, domain.NewValidationError(msgThresholdInvalid)
	}
	return readThrough(ctx, s, fmt.Sprintf(keyLowStockFormat, threshold), "low-stock",
		func(ctx context.Context) ([]domain.Phone, error) {
			return s.repo.LowStock(ctx, threshold)
		})
}

// OutOfStock returns phones with quantity <= 0
func (s *ReportService) OutOfStock(ctx context.Context) ([]domain.Phone, error) {
	return readThrough(ctx, s, keyOutOfStock, "out-of-stock", s.repo.OutOfStock)
}

// TopValue returns the phones holding the most stock value
func (s *ReportService) TopValue(ctx context.Context, limit int) ([]domain.ValuedPhone, error) {
	if limit < 1 || limit > domain.MaxTopValueLimit {
		return nil, domain.NewValidationError(msgTopLimitInvalid)
	}
	return readThrough(ctx, s, fmt.Sprintf(keyTopValueFormat, limit), "top-value",
		func(ctx context.Context) ([]domain.ValuedPhone, error) {
			return s.repo.TopValue(ctx, limit)
		})
}

// ByPriceRange returns non-empty price bands
func (s *ReportService) ByPriceRange(ctx context.Context) ([]domain.PriceRangeBucket, error) {
	return readThrough(ctx, s, keyByPriceRange, "by-price-range", s.repo.ByPriceRange)
}

// Warmup recomputes every report with its default parameters into the cache
func (s *ReportService) Warmup(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	if err := s.Invalidate(ctx); err != nil {
		return err
	}

	steps := []struct {
		name string
		run  func() error
	}{
		{"summary", func() error { _, err := s.Summary(ctx); return err }},
		{"by-brand", func() error { _, err := s.ByBrand(ctx); return err }},
		{"low-stock", func() error { _, err := s.LowStock(ctx, domain.DefaultLowStockThreshold); return err }},
		{"out-of-stock", func() error { _, err := s.OutOfStock(ctx); return err }},
		{"top-value", func() error { _, err := s.TopValue(ctx, domain.DefaultTopValueLimit); return err }},
		{"by-price-range", func() error { _, err := s.ByPriceRange(ctx); return err }},
	}

	for _, step := range steps {
		if err := step.run(); err != nil {
			return fmt.Errorf("failed to warm %s report: %w", step.name, err)
		}
	}

	s.logger.InfoContext(ctx, "report cache warmed", slog.Int("reports", len(steps)))
	return nil
}

// Invalidate drops every cached report
func (s *ReportService) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.DeletePattern(ctx, ReportCachePattern); err != nil {
		return fmt.Errorf("failed to invalidate reports: %w", err)
	}
	return nil
}

// readThrough serves key from the cache, falling back to fetch on a miss or a cache failure
func readThrough[T any](ctx context.Context, s *ReportService, key, report string,
	fetch func(context.Context) (T, error)) (T, error) {

	var cached T
	if s.cache != nil {
		err := s.cache.Get(ctx, key, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, ports.ErrCacheMiss) {
			s.logger.WarnContext(ctx, "report cache read failed",
				slog.String("key", key),
				slog.String("error", err.Error()))
		}
	}

	value, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, domain.Internal(err, fmt.Sprintf("failed to compute %s report", report))
	}

	if s.cache != nil {
		if err := s.cache.SetWithTTL(ctx, key, value, s.ttl); err != nil {
			s.logger.WarnContext(ctx, "report cache write failed",
				slog.String("key", key),
				slog.String("error", err.Error()))
		}
	}

	return value, nil
}
