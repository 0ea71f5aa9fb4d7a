// internal/core/domain/filter.go
package domain

import "strings"

// Visibility selects which records a query may see
type Visibility int

const (
	// ActiveOnly hides soft deleted records
	ActiveOnly Visibility = iota
	// IncludeDeleted returns records regardless of isDeleted
	IncludeDeleted
)

// SortField is a whitelisted sort key
type SortField string

// Sortable fields
const (
	SortByCreatedAt SortField = "createdAt"
	SortByUpdatedAt SortField = "updatedAt"
	SortByName      SortField = "name"
	SortByBrand     SortField = "brand"
	SortByPrice     SortField = "price"
	SortByQuantity  SortField = "quantity"
	SortByStatus    SortField = "status"
)

// ParseSortField maps raw to a known field, defaulting to createdAt
func ParseSortField(raw string) SortField {
	switch f := SortField(raw); f {
	case SortByCreatedAt, SortByUpdatedAt, SortByName, SortByBrand,
		SortByPrice, SortByQuantity, SortByStatus:
		return f
	}
	return SortByCreatedAt
}

// SortOrder is the direction of a sort
type SortOrder string

// Sort orders
const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder accepts asc/desc (and 1/-1), defaulting to desc
func ParseSortOrder(raw string) SortOrder {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "asc", "1", "ascending":
		return SortAsc
	}
	return SortDesc
}

// PhoneFilter narrows a phone query.
// Brand and Keyword are literal, case-insensitive substrings.
type PhoneFilter struct {
	Visibility Visibility
	Brand      string
	Status     *StockStatus
	MinPrice   *float64
	MaxPrice   *float64
	Keyword    string
}

// Matches evaluates the filter against p in memory
func (f PhoneFilter) Matches(p *Phone) bool {
	if f.Visibility == ActiveOnly && p.IsDeleted {
		return false
	}
	if f.Brand != "" && !containsFold(p.Brand, f.Brand) {
		return false
	}
	if f.Status != nil && p.Status != *f.Status {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.Keyword != "" &&
		!containsFold(p.Name, f.Keyword) &&
		!containsFold(p.Brand, f.Keyword) &&
		!containsFold(p.Color, f.Keyword) {
		return false
	}
	return true
}

// PhoneQuery is a filter plus ordering and a page window.
// Limit 0 means no limit.
type PhoneQuery struct {
	Filter    PhoneFilter
	SortBy    SortField
	SortOrder SortOrder
	Skip      int64
	Limit     int64
}

// Paging defaults
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// ListParams is the caller facing list request
type ListParams struct {
	Page      int
	Limit     int
	Brand     string
	Status    string
	MinPrice  *float64
	MaxPrice  *float64
	SortBy    string
	SortOrder string
}

// Pagination describes the window returned by a list
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// ListResult is one page of phones
type ListResult struct {
	Data       []Phone    `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// TotalPages returns ceil(total/limit)
func TotalPages(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	l := int64(limit)
	return (total + l - 1) / l
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
