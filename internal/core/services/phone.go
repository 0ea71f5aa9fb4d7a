// internal/core/services/phone.go
package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/ammerola/phone-inventory/internal/core/domain"
	"github.com/ammerola/phone-inventory/internal/core/ports"
)

// Delete acknowledgements
const (
	MsgDeleted            = "Deleted successfully"
	MsgDeletedPermanently = "Deleted permanently"
)

// PhoneService handles phone inventory business logic
type PhoneService struct {
	repo    ports.PhoneRepository
	reports ports.ReportService
	tasks   ports.TaskEnqueuer
	now     func() time.Time
	logger  *slog.Logger
}

// Statically assert that *PhoneService implements the PhoneService interface.
var _ ports.PhoneService = (*PhoneService)(nil)

// PhoneServiceOption customizes a PhoneService
type PhoneServiceOption func(*PhoneService)

// WithReportInvalidation drops cached reports after every mutation
func WithReportInvalidation(reports ports.ReportService) PhoneServiceOption {
	return func(s *PhoneService) { s.reports = reports }
}

// WithStockAlerts enqueues alerts when a phone runs low
func WithStockAlerts(tasks ports.TaskEnqueuer) PhoneServiceOption {
	return func(s *PhoneService) { s.tasks = tasks }
}

// WithClock overrides the time source
func WithClock(now func() time.Time) PhoneServiceOption {
	return func(s *PhoneService) { s.now = now }
}

// NewPhoneService creates a new phone service
func NewPhoneService(repo ports.PhoneRepository, logger *slog.Logger, opts ...PhoneServiceOption) *PhoneService {
	s := &PhoneService{
		repo:   repo,
		now:    defaultClock,
		logger: logger.With(slog.String("service", "phone")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stored timestamps keep millisecond precision so every backend round-trips them unchanged.
func defaultClock() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// Create validates and stores a new phone
func (s *PhoneService) Create(ctx context.Context, in domain.CreatePhoneInput) (*domain.Phone, error) {
	if violations := domain.ValidateCreate(in); len(violations) > 0 {
		return nil, domain.NewValidationError(violations...)
	}

	p := in.Normalize().ToPhone(s.now())

	id, err := s.repo.Insert(ctx, p)
	if err != nil {
		return nil, domain.Internal(err, "failed to create phone")
	}
	p.ID = id

	s.logger.InfoContext(ctx, "phone created",
		slog.String("phone_id", id.String()),
		slog.String("name", p.Name),
		slog.String("brand", p.Brand),
		slog.Int("quantity", p.Quantity))

	s.afterMutation(ctx)
	if alert, ok := domain.NewStockAlert(p, "", p.CreatedAt); ok {
		s.raiseAlert(ctx, alert)
	}

	return p, nil
}

// List returns one filtered, sorted page of active phones
func (s *PhoneService) List(ctx context.Context, params domain.ListParams) (*domain.ListResult, error) {
	var violations []string

	filter := domain.PhoneFilter{
		Visibility: domain.ActiveOnly,
		Brand:      strings.TrimSpace(params.Brand),
		MinPrice:   params.MinPrice,
		MaxPrice:   params.MaxPrice,
	}

	if raw := strings.TrimSpace(params.Status); raw != "" {
		status := domain.StockStatus(raw)
		if !status.Valid() {
			violations = append(violations, domain.MsgStatusInvalid)
		}
		filter.Status = &status
	}
	if params.MinPrice != nil && params.MaxPrice != nil && *params.MinPrice > *params.MaxPrice {
		violations = append(violations, domain.MsgPriceRangeInvalid)
	}
	if len(violations) > 0 {
		return nil, domain.NewValidationError(violations...)
	}

	page := params.Page
	if page < 1 {
		page = domain.DefaultPage
	}
	limit := params.Limit
	if limit < 1 {
		limit = domain.DefaultLimit
	}
	if limit > domain.MaxLimit {
		limit = domain.MaxLimit
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, domain.Internal(err, "failed to count phones")
	}

	phones, err := s.repo.Find(ctx, domain.PhoneQuery{
		Filter:    filter,
		SortBy:    domain.ParseSortField(params.SortBy),
		SortOrder: domain.ParseSortOrder(params.SortOrder),
		Skip:      int64(page-1) * int64(limit),
		Limit:     int64(limit),
	})
	if err != nil {
		return nil, domain.Internal(err, "failed to list phones")
	}
	if phones == nil {
		phones = []domain.Phone{}
	}

	return &domain.ListResult{
		Data: phones,
		Pagination: domain.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: domain.TotalPages(total, limit),
		},
	}, nil
}

// GetByID returns a single active phone
func (s *PhoneService) GetByID(ctx context.Context, raw string) (*domain.Phone, error) {
	id, err := domain.ParseID(raw)
	if err != nil {
		return nil, err
	}

	p, err := s.repo.FindOne(ctx, id, domain.ActiveOnly)
	if err != nil {
		return nil, domain.Internal(err, "failed to get phone")
	}
	if p == nil {
		return nil, domain.ErrNotFound(id)
	}

	return p, nil
}

// Search matches keyword against name, brand and color
func (s *PhoneService) Search(ctx context.Context, keyword string) ([]domain.Phone, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, domain.NewValidationError(domain.MsgKeywordRequired)
	}

	phones, err := s.repo.Find(ctx, domain.PhoneQuery{
		Filter:    domain.PhoneFilter{Visibility: domain.ActiveOnly, Keyword: keyword},
		SortBy:    domain.SortByCreatedAt,
		SortOrder: domain.SortDesc,
	})
	if err != nil {
		return nil, domain.Internal(err, "failed to search phones")
	}
	if phones == nil {
		phones = []domain.Phone{}
	}

	s.logger.DebugContext(ctx, "phone search",
		slog.String("keyword", keyword),
		slog.Int("results", len(phones)))

	return phones, nil
}

// Update applies a partial update to an active phone
func (s *PhoneService) Update(ctx context.Context, raw string, patch domain.UpdatePhonePatch) (*domain.Phone, error) {
	id, err := domain.ParseID(raw)
	if err != nil {
		return nil, err
	}
	if violations := domain.ValidatePatch(patch); len(violations) > 0 {
		return nil, domain.NewValidationError(violations...)
	}

	changes := patch.Normalize().Changes(s.now())

	matched, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		return nil, domain.Internal(err, "failed to update phone")
	}
	if !matched {
		return nil, domain.ErrNotFound(id)
	}

	s.afterMutation(ctx)

	p, err := s.repo.FindOne(ctx, id, domain.ActiveOnly)
	if err != nil {
		return nil, domain.Internal(err, "failed to reload phone")
	}
	if p == nil {
		return nil, domain.ErrNotFound(id)
	}

	s.logger.InfoContext(ctx, "phone updated", slog.String("phone_id", id.String()))
	return p, nil
}

// AdjustStock sets, adds or subtracts stock atomically
func (s *PhoneService) AdjustStock(ctx context.Context, raw string, adj domain.StockAdjustment) (*domain.Phone, error) {
	id, err := domain.ParseID(raw)
	if err != nil {
		return nil, err
	}

	adj = adj.Normalize()
	if err := adj.Validate(); err != nil {
		return nil, err
	}

	change, err := s.repo.AdjustStock(ctx, id, adj, s.now())
	if err != nil {
		return nil, domain.Internal(err, "failed to adjust stock")
	}
	if change == nil {
		return nil, domain.ErrNotFound(id)
	}

	p := change.Phone
	s.logger.InfoContext(ctx, "stock adjusted",
		slog.String("phone_id", id.String()),
		slog.String("operation", string(adj.Operation)),
		slog.Int("delta", adj.Quantity),
		slog.Int("previous_quantity", change.PreviousQuantity),
		slog.Int("quantity", p.Quantity),
		slog.String("status", string(p.Status)))

	s.afterMutation(ctx)
	if alert, ok := domain.NewStockAlert(&p, change.PreviousStatus, p.UpdatedAt); ok {
		s.raiseAlert(ctx, alert)
	}

	return &p, nil
}

// SoftDelete hides a phone from every active query
func (s *PhoneService) SoftDelete(ctx context.Context, raw string) (*ports.DeleteResult, error) {
	id, err := domain.ParseID(raw)
	if err != nil {
		return nil, err
	}

	matched, err := s.repo.SoftDelete(ctx, id, s.now())
	if err != nil {
		return nil, domain.Internal(err, "failed to delete phone")
	}
	if !matched {
		return nil, domain.ErrNotFound(id)
	}

	s.logger.InfoContext(ctx, "phone soft deleted", slog.String("phone_id", id.String()))
	s.afterMutation(ctx)

	return &ports.DeleteResult{Message: MsgDeleted}, nil
}

// HardDelete removes a phone permanently, deleted or not
func (s *PhoneService) HardDelete(ctx context.Context, raw string) (*ports.DeleteResult, error) {
	id, err := domain.ParseID(raw)
	if err != nil {
		return nil, err
	}

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, domain.Internal(err, "failed to delete phone")
	}
	if !removed {
		return nil, domain.ErrNotFound(id)
	}

	s.logger.WarnContext(ctx, "phone permanently deleted", slog.String("phone_id", id.String()))
	s.afterMutation(ctx)

	return &ports.DeleteResult{Message: MsgDeletedPermanently}, nil
}

// PurgeDeleted hard deletes records soft deleted before the cutoff
func (s *PhoneService) PurgeDeleted(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := s.now().Add(-retention)

	n, err := s.repo.PurgeDeleted(ctx, cutoff)
	if err != nil {
		return 0, domain.Internal(err, "failed to purge deleted phones")
	}

	s.logger.InfoContext(ctx, "purged deleted phones",
		slog.Int64("purged", n),
		slog.Time("cutoff", cutoff))

	if n > 0 {
		s.afterMutation(ctx)
	}
	return n, nil
}

func (s *PhoneService) afterMutation(ctx context.Context) {
	if s.reports == nil {
		return
	}
	if err := s.reports.Invalidate(ctx); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate report cache",
			slog.String("error", err.Error()))
	}
}

func (s *PhoneService) raiseAlert(ctx context.Context, alert domain.StockAlert) {
	if s.tasks == nil {
		return
	}
	if err := s.tasks.EnqueueStockAlert(ctx, alert); err != nil {
		s.logger.WarnContext(ctx, "failed to enqueue stock alert",
			slog.String("phone_id", alert.PhoneID.String()),
			slog.String("error", err.Error()))
	}
}
