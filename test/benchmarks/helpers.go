// test/benchmarks/helpers.go
package benchmarks

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/ammerola/phone-inventory/internal/adapters/memory"
	"github.com/ammerola/phone-inventory/internal/core/domain"
	"github.com/ammerola/phone-inventory/test/helpers"
)

var brands = []string{"Apple", "Samsung", "Xiaomi", "Google", "OPPO", "Nokia", "Vivo"}

func benchLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// largeCatalogue builds n phones spread over several brands and price bands
func largeCatalogue(n int) []domain.Phone {
	phones := make([]domain.Phone, 0, n)
	for i := 0; i < n; i++ {
		p := helpers.CreateTestPhone(func(p *domain.Phone) {
			p.ID = domain.NewID()
			p.Name = fmt.Sprintf("Model %d", i)
			p.Brand = brands[i%len(brands)]
			p.Price = float64(500_000 + (i%60)*750_000)
			p.Quantity = i % 40
			p.Status = domain.DeriveStatus(p.Quantity)
		})
		phones = append(phones, *p)
	}
	return phones
}

// seededStore returns a memory store holding n phones
func seededStore(b *testing.B, n int) (*memory.Store, []domain.ID) {
	b.Helper()

	store := memory.NewStore()
	ids := make([]domain.ID, 0, n)
	for _, p := range largeCatalogue(n) {
		id, err := store.Insert(context.Background(), &p)
		if err != nil {
			b.Fatal(err)
		}
		ids = append(ids, id)
	}
	return store, ids
}
