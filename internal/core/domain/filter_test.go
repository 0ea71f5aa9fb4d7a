package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ammerola/phone-inventory/internal/core/domain"
)

func TestParseSortField(t *testing.T) {
	assert.Equal(t, domain.SortByPrice, domain.ParseSortField("price"))
	assert.Equal(t, domain.SortByStatus, domain.ParseSortField("status"))
	assert.Equal(t, domain.SortByCreatedAt, domain.ParseSortField(""))
	assert.Equal(t, domain.SortByCreatedAt, domain.ParseSortField("$where"))
}

func TestParseSortOrder(t *testing.T) {
	assert.Equal(t, domain.SortAsc, domain.ParseSortOrder("asc"))
	assert.Equal(t, domain.SortAsc, domain.ParseSortOrder("1"))
	assert.Equal(t, domain.SortDesc, domain.ParseSortOrder(""))
	assert.Equal(t, domain.SortDesc, domain.ParseSortOrder("-1"))
	assert.Equal(t, domain.SortDesc, domain.ParseSortOrder("garbage"))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, int64(0), domain.TotalPages(0, 20))
	assert.Equal(t, int64(1), domain.TotalPages(20, 20))
	assert.Equal(t, int64(2), domain.TotalPages(21, 20))
	assert.Equal(t, int64(0), domain.TotalPages(5, 0))
}

func TestPhoneFilter_Matches(t *testing.T) {
	deleted := phone("Pixel 8", "Google", 15_000_000, 4)
	deleted.IsDeleted = true
	active := phone("Galaxy S24", "Samsung", 22_000_000, 8)
	active.Color = "Titanium Gray"
	low := domain.StatusLowStock

	tests := []struct {
		name   string
		filter domain.PhoneFilter
		phone  domain.Phone
		want   bool
	}{
		{name: "active_only_hides_deleted", filter: domain.PhoneFilter{}, phone: deleted, want: false},
		{name: "include_deleted", filter: domain.PhoneFilter{Visibility: domain.IncludeDeleted}, phone: deleted, want: true},
		{name: "brand_substring_case_insensitive", filter: domain.PhoneFilter{Brand: "sung"}, phone: active, want: true},
		{name: "brand_mismatch", filter: domain.PhoneFilter{Brand: "Apple"}, phone: active, want: false},
		{name: "status_mismatch", filter: domain.PhoneFilter{Status: &low}, phone: active, want: false},
		{name: "price_inclusive_bounds", filter: domain.PhoneFilter{MinPrice: ptr(22_000_000.0), MaxPrice: ptr(22_000_000.0)}, phone: active, want: true},
		{name: "below_min_price", filter: domain.PhoneFilter{MinPrice: ptr(23_000_000.0)}, phone: active, want: false},
		{name: "keyword_matches_color", filter: domain.PhoneFilter{Keyword: "gray"}, phone: active, want: true},
		{name: "keyword_is_literal", filter: domain.PhoneFilter{Keyword: "S.4"}, phone: active, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.phone
			assert.Equal(t, tt.want, tt.filter.Matches(&p))
		})
	}
}
