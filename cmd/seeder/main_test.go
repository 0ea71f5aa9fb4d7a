// cmd/seeder/main_test.go
package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/phone-inventory/internal/adapters/memory"
	"github.com/ammerola/phone-inventory/internal/core/domain"
	"github.com/ammerola/phone-inventory/internal/core/services"
	"github.com/ammerola/phone-inventory/internal/pkg/spreadsheet"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSamplePhones(t *testing.T) {
	inputs := samplePhones(30)
	require.Len(t, inputs, 30)

	var outOfStock int
	for i, in := range inputs {
		assert.Empty(t, domain.ValidateCreate(in), "sample %d must be valid", i)
		if *in.Quantity == 0 {
			outOfStock++
			assert.Empty(t, in.IMEIList)
		}
		assert.LessOrEqual(t, len(in.IMEIList), *in.Quantity)
	}
	assert.Equal(t, 4, outOfStock)

	assert.Equal(t, samplePhones(30), inputs, "generation is deterministic")
}

func TestSeedInputs(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := services.NewPhoneService(store.Phones(), discardLogger())

	inputs := samplePhones(5)
	inputs = append(inputs, domain.CreatePhoneInput{Name: "broken"})

	res := seedInputs(ctx, svc, inputs, discardLogger())
	assert.Equal(t, seedResult{Created: 5, Failed: 1}, res)

	summary, err := store.Reports().Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), summary.TotalProducts)
}

func TestImportRows(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := services.NewPhoneService(store.Phones(), discardLogger())

	price, qty := 1_000_000.0, 2
	rows := []spreadsheet.ImportRow{
		{Line: 2, Input: domain.CreatePhoneInput{Name: "Pixel 8", Brand: "Google", Price: &price, Quantity: &qty}},
		{Line: 3, Err: errors.New("invalid price")},
		{Line: 4, Input: domain.CreatePhoneInput{Name: "Nokia 105", Brand: "Nokia", Price: &price}},
	}

	res := importRows(ctx, svc, rows, discardLogger())
	assert.Equal(t, seedResult{Created: 1, Skipped: 1, Failed: 1}, res)
}
