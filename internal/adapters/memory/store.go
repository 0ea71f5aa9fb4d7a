// internal/adapters/memory/store.go
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ammerola/phone-inventory/internal/core/domain"
	"github.com/ammerola/phone-inventory/internal/core/ports"
)

// Store is a thread-safe in-process phone store
type Store struct {
	mu     sync.RWMutex
	phones map[domain.ID]domain.Phone
}

// compile-time assertions
var (
	_ ports.Store            = (*Store)(nil)
	_ ports.PhoneRepository  = (*Store)(nil)
	_ ports.ReportRepository = (*Store)(nil)
	_ ports.HealthReporter   = (*Store)(nil)
)

// NewStore constructs an empty Store
func NewStore() *Store {
	return &Store{phones: make(map[domain.ID]domain.Phone)}
}

// Phones returns the phone repository
func (s *Store) Phones() ports.PhoneRepository { return s }

// Reports returns the report repository
func (s *Store) Reports() ports.ReportRepository { return s }

// Close is a no-op
func (s *Store) Close(ctx context.Context) error { return nil }

// Ping always succeeds unless ctx is done
func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

// Health reports the number of stored records
func (s *Store) Health(ctx context.Context) map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]interface{}{
		"status":  "healthy",
		"driver":  "memory",
		"records": len(s.phones),
	}
}

// Find returns the filtered, sorted window of phones
func (s *Store) Find(ctx context.Context, q domain.PhoneQuery) ([]domain.Phone, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := s.snapshot(q.Filter)
	sortPhones(out, q.SortBy, q.SortOrder)

	if q.Skip > 0 {
		if q.Skip >= int64(len(out)) {
			return []domain.Phone{}, nil
		}
		out = out[q.Skip:]
	}
	if q.Limit > 0 && int64(len(out)) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

// Count counts phones matching f
func (s *Store) Count(ctx context.Context, f domain.PhoneFilter) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return int64(len(s.snapshot(f))), nil
}

// FindOne returns a copy of the phone or nil
func (s *Store) FindOne(ctx context.Context, id domain.ID, vis domain.Visibility) (*domain.Phone, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.phones[id]
	if !ok || (vis == domain.ActiveOnly && p.IsDeleted) {
		return nil, nil
	}
	c := clonePhone(p)
	return &c, nil
}

// Insert stores p under a fresh id
func (s *Store) Insert(ctx context.Context, p *domain.Phone) (domain.ID, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := domain.NewID()
	stored := clonePhone(*p)
	stored.ID = id
	s.phones[id] = stored
	return id, nil
}

// Update applies c to an active phone
func (s *Store) Update(ctx context.Context, id domain.ID, c domain.PhoneChanges) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.phones[id]
	if !ok || p.IsDeleted {
		return false, nil
	}
	c.Apply(&p)
	s.phones[id] = p
	return true, nil
}

// AdjustStock changes quantity and status under the write lock
func (s *Store) AdjustStock(ctx context.Context, id domain.ID, adj domain.StockAdjustment, at time.Time) (*domain.StockChange, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.phones[id]
	if !ok || p.IsDeleted {
		return nil, nil
	}

	change := &domain.StockChange{PreviousQuantity: p.Quantity, PreviousStatus: p.Status}
	p.Quantity = adj.Resolve(p.Quantity)
	p.Status = domain.DeriveStatus(p.Quantity)
	p.UpdatedAt = at
	s.phones[id] = p

	change.Phone = clonePhone(p)
	return change, nil
}

// SoftDelete flags an active phone as deleted
func (s *Store) SoftDelete(ctx context.Context, id domain.ID, at time.Time) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.phones[id]
	if !ok || p.IsDeleted {
		return false, nil
	}
	p.IsDeleted = true
	p.DeletedAt = &at
	s.phones[id] = p
	return true, nil
}

// Delete removes a phone regardless of isDeleted
func (s *Store) Delete(ctx context.Context, id domain.ID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.phones[id]; !ok {
		return false, nil
	}
	delete(s.phones, id)
	return true, nil
}

// PurgeDeleted removes phones soft deleted before the cutoff
func (s *Store) PurgeDeleted(ctx context.Context, before time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for id, p := range s.phones {
		if p.IsDeleted && p.DeletedAt != nil && p.DeletedAt.Before(before) {
			delete(s.phones, id)
			n++
		}
	}
	return n, nil
}

// Summary computes the inventory summary
func (s *Store) Summary(ctx context.Context) (*domain.InventorySummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sum := domain.Summarize(s.snapshot(domain.PhoneFilter{}))
	return &sum, nil
}

// ByBrand groups active phones per brand
func (s *Store) ByBrand(ctx context.Context) ([]domain.BrandReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return domain.GroupByBrand(s.snapshot(domain.PhoneFilter{})), nil
}

// LowStock lists active phones with 0 < quantity <= threshold
func (s *Store) LowStock(ctx context.Context, threshold int) ([]domain.Phone, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	all := s.snapshot(domain.PhoneFilter{})
	sortPhones(all, domain.SortByCreatedAt, domain.SortAsc)
	return domain.SelectLowStock(all, threshold), nil
}

// OutOfStock lists active phones with quantity <= 0
func (s *Store) OutOfStock(ctx context.Context) ([]domain.Phone, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return domain.SelectOutOfStock(s.snapshot(domain.PhoneFilter{})), nil
}

// TopValue ranks active phones by stock value
func (s *Store) TopValue(ctx context.Context, limit int) ([]domain.ValuedPhone, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	all := s.snapshot(domain.PhoneFilter{})
	sortPhones(all, domain.SortByCreatedAt, domain.SortAsc)
	return domain.RankByValue(all, limit), nil
}

// ByPriceRange buckets active phones by price
func (s *Store) ByPriceRange(ctx context.Context) ([]domain.PriceRangeBucket, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return domain.BucketByPrice(s.snapshot(domain.PhoneFilter{})), nil
}

// snapshot copies every phone matching f
func (s *Store) snapshot(f domain.PhoneFilter) []domain.Phone {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Phone, 0, len(s.phones))
	for _, p := range s.phones {
		if f.Matches(&p) {
			out = append(out, clonePhone(p))
		}
	}
	return out
}

func sortPhones(phones []domain.Phone, field domain.SortField, order domain.SortOrder) {
	compare := func(a, b *domain.Phone) int {
		switch field {
		case domain.SortByUpdatedAt:
			return a.UpdatedAt.Compare(b.UpdatedAt)
		case domain.SortByName:
			return strings.Compare(a.Name, b.Name)
		case domain.SortByBrand:
			return strings.Compare(a.Brand, b.Brand)
		case domain.SortByPrice:
			return compareOrdered(a.Price, b.Price)
		case domain.SortByQuantity:
			return compareOrdered(a.Quantity, b.Quantity)
		case domain.SortByStatus:
			return strings.Compare(string(a.Status), string(b.Status))
		default:
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	}

	sort.SliceStable(phones, func(i, j int) bool {
		c := compare(&phones[i], &phones[j])
		if c == 0 {
			c = strings.Compare(string(phones[i].ID), string(phones[j].ID))
		}
		if order == domain.SortAsc {
			return c < 0
		}
		return c > 0
	})
}

func compareOrdered[T int | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func clonePhone(p domain.Phone) domain.Phone {
	c := p
	if p.IMEIList != nil {
		c.IMEIList = append([]string{}, p.IMEIList...)
	} else {
		c.IMEIList = []string{}
	}
	if p.CostPrice != nil {
		v := *p.CostPrice
		c.CostPrice = &v
	}
	if p.DeletedAt != nil {
		v := *p.DeletedAt
		c.DeletedAt = &v
	}
	return c
}
