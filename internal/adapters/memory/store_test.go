// internal/adapters/memory/store_test.go
package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/phone-inventory/internal/adapters/memory"
	"github.com/ammerola/phone-inventory/internal/core/domain"
	"github.com/ammerola/phone-inventory/test/helpers"
)

func insert(t *testing.T, s *memory.Store, overrides ...func(*domain.Phone)) domain.ID {
	t.Helper()
	id, err := s.Insert(context.Background(), helpers.CreateTestPhone(overrides...))
	require.NoError(t, err)
	return id
}

func TestStore_InsertAndFindOne(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	id := insert(t, s)
	assert.Len(t, id.String(), 24)

	got, err := s.FindOne(ctx, id, domain.ActiveOnly)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, got.ID)

	missing, err := s.FindOne(ctx, domain.NewID(), domain.ActiveOnly)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStore_FindFiltersSortsAndPages(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	prices := []float64{1_000_000, 5_000_000, 9_000_000, 12_000_000, 30_000_000}
	for _, price := range prices {
		price := price
		insert(t, s, func(p *domain.Phone) { p.Price = price })
	}
	deleted := insert(t, s, func(p *domain.Phone) { p.Price = 6_000_000 })
	ok, err := s.SoftDelete(ctx, deleted, time.Now())
	require.NoError(t, err)
	require.True(t, ok)

	filter := domain.PhoneFilter{MinPrice: helpers.Ptr(5_000_000.0), MaxPrice: helpers.Ptr(15_000_000.0)}

	total, err := s.Count(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	page, err := s.Find(ctx, domain.PhoneQuery{
		Filter: filter, SortBy: domain.SortByPrice, SortOrder: domain.SortAsc, Skip: 0, Limit: 2,
	})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, 5_000_000.0, page[0].Price)
	assert.Equal(t, 9_000_000.0, page[1].Price)

	rest, err := s.Find(ctx, domain.PhoneQuery{
		Filter: filter, SortBy: domain.SortByPrice, SortOrder: domain.SortAsc, Skip: 2, Limit: 2,
	})
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, 12_000_000.0, rest[0].Price)

	all, err := s.Count(ctx, domain.PhoneFilter{Visibility: domain.IncludeDeleted})
	require.NoError(t, err)
	assert.Equal(t, int64(6), all)
}

func TestStore_Update(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	id := insert(t, s)
	now := time.Now().UTC()

	ok, err := s.Update(ctx, id, domain.UpdatePhonePatch{Quantity: helpers.Ptr(2)}.Changes(now))
	require.NoError(t, err)
	assert.True(t, ok)

	got, _ := s.FindOne(ctx, id, domain.ActiveOnly)
	assert.Equal(t, 2, got.Quantity)
	assert.Equal(t, domain.StatusLowStock, got.Status)
	assert.Equal(t, now, got.UpdatedAt)

	ok, err = s.Update(ctx, domain.NewID(), domain.PhoneChanges{UpdatedAt: now})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_AdjustStock(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	id := insert(t, s, func(p *domain.Phone) { p.Quantity = 3; p.Status = domain.StatusLowStock })

	change, err := s.AdjustStock(ctx, id, domain.StockAdjustment{Quantity: 5, Operation: domain.StockAdd}, time.Now())
	require.NoError(t, err)
	require.NotNil(t, change)
	assert.Equal(t, 8, change.Phone.Quantity)
	assert.Equal(t, domain.StatusInStock, change.Phone.Status)
	assert.Equal(t, 3, change.PreviousQuantity)
	assert.Equal(t, domain.StatusLowStock, change.PreviousStatus)

	change, err = s.AdjustStock(ctx, id, domain.StockAdjustment{Quantity: 10, Operation: domain.StockSubtract}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, -2, change.Phone.Quantity)
	assert.Equal(t, domain.StatusOutOfStock, change.Phone.Status)

	missing, err := s.AdjustStock(ctx, domain.NewID(), domain.StockAdjustment{Quantity: 1, Operation: domain.StockSet}, time.Now())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStore_AdjustStockConcurrent(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	id := insert(t, s, func(p *domain.Phone) { p.Quantity = 0 })

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.AdjustStock(ctx, id, domain.StockAdjustment{Quantity: 1, Operation: domain.StockAdd}, time.Now())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := s.FindOne(ctx, id, domain.ActiveOnly)
	require.NoError(t, err)
	assert.Equal(t, 50, got.Quantity)
	assert.Equal(t, domain.StatusInStock, got.Status)
}

func TestStore_DeleteLifecycle(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	id := insert(t, s)

	ok, err := s.SoftDelete(ctx, id, time.Now())
	require.NoError(t, err)
	assert.True(t, ok)

	hidden, _ := s.FindOne(ctx, id, domain.ActiveOnly)
	assert.Nil(t, hidden)
	visible, _ := s.FindOne(ctx, id, domain.IncludeDeleted)
	require.NotNil(t, visible)
	assert.True(t, visible.IsDeleted)
	assert.NotNil(t, visible.DeletedAt)

	ok, _ = s.SoftDelete(ctx, id, time.Now())
	assert.False(t, ok, "second soft delete finds nothing")

	ok, err = s.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok, "hard delete ignores isDeleted")

	ok, _ = s.Delete(ctx, id)
	assert.False(t, ok)
}

func TestStore_PurgeDeleted(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	old := insert(t, s)
	recent := insert(t, s)
	insert(t, s)

	_, _ = s.SoftDelete(ctx, old, time.Now().Add(-72*time.Hour))
	_, _ = s.SoftDelete(ctx, recent, time.Now())

	n, err := s.PurgeDeleted(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	total, _ := s.Count(ctx, domain.PhoneFilter{Visibility: domain.IncludeDeleted})
	assert.Equal(t, int64(2), total)
}

func TestStore_Reports(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	insert(t, s, func(p *domain.Phone) { p.Brand = "Apple"; p.Price = 2_000_000; p.Quantity = 1; p.Status = domain.StatusLowStock })
	insert(t, s, func(p *domain.Phone) { p.Brand = "Apple"; p.Price = 7_000_000; p.Quantity = 0; p.Status = domain.StatusOutOfStock })
	insert(t, s, func(p *domain.Phone) { p.Brand = "Samsung"; p.Price = 25_000_000; p.Quantity = 10; p.Status = domain.StatusInStock })

	summary, err := s.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.TotalProducts)
	assert.Equal(t, 252_000_000.0, summary.TotalValue)

	brands, err := s.ByBrand(ctx)
	require.NoError(t, err)
	require.Len(t, brands, 2)
	assert.Equal(t, "Samsung", brands[0].Brand)

	low, err := s.LowStock(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, low, 1)

	out, err := s.OutOfStock(ctx)
	require.NoError(t, err)
	assert.Len(t, out, 1)

	top, err := s.TopValue(ctx, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, 250_000_000.0, top[0].TotalValue)

	buckets, err := s.ByPriceRange(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Less than 5 million", "5-10 million", "20-30 million"},
		[]string{buckets[0].Range, buckets[1].Range, buckets[2].Range})
}
