package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/phone-inventory/internal/core/domain"
)

func ptr[T any](v T) *T { return &v }

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		want     domain.StockStatus
	}{
		{name: "negative_is_out_of_stock", quantity: -2, want: domain.StatusOutOfStock},
		{name: "zero_is_out_of_stock", quantity: 0, want: domain.StatusOutOfStock},
		{name: "one_is_low_stock", quantity: 1, want: domain.StatusLowStock},
		{name: "ceiling_is_low_stock", quantity: 5, want: domain.StatusLowStock},
		{name: "above_ceiling_is_in_stock", quantity: 6, want: domain.StatusInStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.DeriveStatus(tt.quantity))
		})
	}
}

func TestParseID(t *testing.T) {
	id, err := domain.ParseID("65a1b2c3d4e5f60718293a4b")
	require.NoError(t, err)
	assert.Equal(t, domain.ID("65a1b2c3d4e5f60718293a4b"), id)

	id, err = domain.ParseID("65A1B2C3D4E5F60718293A4B")
	require.NoError(t, err)
	assert.Equal(t, domain.ID("65a1b2c3d4e5f60718293a4b"), id, "ids are canonical lower-case hex")

	for _, raw := range []string{"", "123", "zzzzzzzzzzzzzzzzzzzzzzzz", "65a1b2c3d4e5f60718293a4b00"} {
		_, err := domain.ParseID(raw)
		require.Error(t, err, raw)
		assert.True(t, domain.IsInvalidID(err), raw)
	}

	assert.Len(t, domain.NewID().String(), 24)
}

func TestValidateCreate(t *testing.T) {
	tests := []struct {
		name  string
		input domain.CreatePhoneInput
		want  []string
	}{
		{
			name: "valid_input",
			input: domain.CreatePhoneInput{
				Name: "iPhone 15", Brand: "Apple", Price: ptr(25_000_000.0), Quantity: ptr(3),
			},
			want: nil,
		},
		{
			name:  "empty_input_reports_every_violation",
			input: domain.CreatePhoneInput{},
			want: []string{
				domain.MsgNameRequired,
				domain.MsgBrandRequired,
				domain.MsgPriceInvalid,
				domain.MsgQuantityInvalid,
			},
		},
		{
			name: "whitespace_name_is_missing",
			input: domain.CreatePhoneInput{
				Name: "   ", Brand: "Apple", Price: ptr(1.0), Quantity: ptr(1),
			},
			want: []string{domain.MsgNameRequired},
		},
		{
			name: "negative_numbers",
			input: domain.CreatePhoneInput{
				Name: "A", Brand: "B", Price: ptr(-1.0), Quantity: ptr(-1), CostPrice: ptr(-5.0),
			},
			want: []string{
				domain.MsgPriceInvalid,
				domain.MsgQuantityInvalid,
				domain.MsgCostPriceInvalid,
			},
		},
		{
			name: "zero_price_and_quantity_are_valid",
			input: domain.CreatePhoneInput{
				Name: "A", Brand: "B", Price: ptr(0.0), Quantity: ptr(0),
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ValidateCreate(tt.input))
		})
	}
}

func TestCreatePhoneInput_NormalizeAndToPhone(t *testing.T) {
	in := domain.CreatePhoneInput{
		Name:     "  Galaxy S24  ",
		Brand:    " Samsung ",
		Color:    " Black ",
		Storage:  " 256GB",
		RAM:      "8GB ",
		Price:    ptr(22_000_000.0),
		Quantity: ptr(3),
	}

	normalized := in.Normalize()
	assert.Equal(t, "  Galaxy S24  ", in.Name, "input must not be mutated")
	assert.Equal(t, "Galaxy S24", normalized.Name)
	assert.Equal(t, "Samsung", normalized.Brand)
	assert.Equal(t, "Black", normalized.Color)
	assert.Equal(t, "256GB", normalized.Storage)
	assert.Equal(t, "8GB", normalized.RAM)

	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	p := normalized.ToPhone(now)
	assert.Equal(t, domain.StatusLowStock, p.Status)
	assert.Equal(t, now, p.CreatedAt)
	assert.Equal(t, now, p.UpdatedAt)
	assert.False(t, p.IsDeleted)
	assert.NotNil(t, p.IMEIList)
	assert.Empty(t, p.IMEIList)
}

func TestCreatePhoneInput_StatusFromQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		want     domain.StockStatus
	}{
		{name: "three_is_low", quantity: 3, want: domain.StatusLowStock},
		{name: "zero_is_out", quantity: 0, want: domain.StatusOutOfStock},
		{name: "ten_is_in", quantity: 10, want: domain.StatusInStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := domain.CreatePhoneInput{Name: "X", Brand: "Y", Price: ptr(1.0), Quantity: ptr(tt.quantity)}
			assert.Equal(t, tt.want, in.ToPhone(time.Now()).Status)
		})
	}
}

func TestValidatePatch(t *testing.T) {
	assert.Empty(t, domain.ValidatePatch(domain.UpdatePhonePatch{}))
	assert.Empty(t, domain.ValidatePatch(domain.UpdatePhonePatch{Name: ptr("")}))
	assert.Equal(t,
		[]string{domain.MsgPriceInvalid, domain.MsgCostPriceInvalid, domain.MsgQuantityInvalid},
		domain.ValidatePatch(domain.UpdatePhonePatch{
			Price: ptr(-1.0), CostPrice: ptr(-1.0), Quantity: ptr(-1),
		}),
	)
}

func TestUpdatePhonePatch_Changes(t *testing.T) {
	now := time.Now()

	t.Run("quantity_recomputes_status", func(t *testing.T) {
		c := domain.UpdatePhonePatch{Quantity: ptr(2)}.Normalize().Changes(now)
		require.NotNil(t, c.Status)
		assert.Equal(t, domain.StatusLowStock, *c.Status)
		assert.Equal(t, now, c.UpdatedAt)
	})

	t.Run("no_quantity_keeps_status", func(t *testing.T) {
		c := domain.UpdatePhonePatch{Name: ptr(" New ")}.Normalize().Changes(now)
		assert.Nil(t, c.Status)
		assert.Equal(t, "New", *c.Name)
	})

	t.Run("apply_writes_supplied_fields_only", func(t *testing.T) {
		p := &domain.Phone{Name: "Old", Brand: "Apple", Price: 10, Quantity: 10, Status: domain.StatusInStock}
		domain.UpdatePhonePatch{Price: ptr(20.0), Quantity: ptr(0)}.Changes(now).Apply(p)
		assert.Equal(t, "Old", p.Name)
		assert.Equal(t, 20.0, p.Price)
		assert.Equal(t, 0, p.Quantity)
		assert.Equal(t, domain.StatusOutOfStock, p.Status)
		assert.Equal(t, now, p.UpdatedAt)
	})

	t.Run("empty_patch", func(t *testing.T) {
		assert.True(t, domain.UpdatePhonePatch{}.IsEmpty())
		assert.False(t, domain.UpdatePhonePatch{RAM: ptr("")}.IsEmpty())
	})
}

func TestStockAdjustment(t *testing.T) {
	tests := []struct {
		name      string
		adj       domain.StockAdjustment
		current   int
		want      int
		wantError bool
	}{
		{name: "add", adj: domain.StockAdjustment{Quantity: 5, Operation: domain.StockAdd}, current: 3, want: 8},
		{name: "subtract_can_go_negative", adj: domain.StockAdjustment{Quantity: 10, Operation: domain.StockSubtract}, current: 8, want: -2},
		{name: "set", adj: domain.StockAdjustment{Quantity: 4, Operation: domain.StockSet}, current: 9, want: 4},
		{name: "empty_operation_is_set", adj: domain.StockAdjustment{Quantity: 7}, current: 1, want: 7},
		{name: "unknown_operation", adj: domain.StockAdjustment{Quantity: 1, Operation: "multiply"}, wantError: true},
		{name: "negative_quantity", adj: domain.StockAdjustment{Quantity: -1, Operation: domain.StockAdd}, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adj := tt.adj.Normalize()
			err := adj.Validate()
			if tt.wantError {
				require.Error(t, err)
				assert.True(t, domain.IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, adj.Resolve(tt.current))
		})
	}
}
