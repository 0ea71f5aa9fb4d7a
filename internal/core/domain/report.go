// internal/core/domain/report.go
package domain

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// Report defaults and bounds
const (
	DefaultLowStockThreshold = 5
	DefaultTopValueLimit     = 10
	MaxTopValueLimit         = 100
)

// StockStatusCounts counts phones per status
type StockStatusCounts struct {
	InStock    int64 `json:"inStock"`
	LowStock   int64 `json:"lowStock"`
	OutOfStock int64 `json:"outOfStock"`
}

// InventorySummary is the store wide overview
type InventorySummary struct {
	TotalProducts   int64             `json:"totalProducts"`
	TotalQuantity   int64             `json:"totalQuantity"`
	TotalValue      float64           `json:"totalValue"`
	TotalCost       float64           `json:"totalCost"`
	PotentialProfit float64           `json:"potentialProfit"`
	StockStatus     StockStatusCounts `json:"stockStatus"`
}

// BrandReport aggregates phones of one brand
type BrandReport struct {
	Brand         string  `json:"brand"`
	TotalProducts int64   `json:"totalProducts"`
	TotalQuantity int64   `json:"totalQuantity"`
	TotalValue    float64 `json:"totalValue"`
	AvgPrice      int64   `json:"avgPrice"`
}

// ValuedPhone is a phone annotated with its stock value
type ValuedPhone struct {
	Phone
	TotalValue float64 `json:"totalValue"`
}

// PriceRangeBucket counts phones within one price band
type PriceRangeBucket struct {
	Range         string `json:"range"`
	Count         int64  `json:"count"`
	TotalQuantity int64  `json:"totalQuantity"`
}

// PriceBoundaries are the lower bounds of each price band; the last band is open ended
var PriceBoundaries = []float64{0, 5_000_000, 10_000_000, 20_000_000, 30_000_000, 50_000_000}

// PriceRangeLabels name the bands of PriceBoundaries in order
var PriceRangeLabels = []string{
	"Less than 5 million",
	"5-10 million",
	"10-20 million",
	"20-30 million",
	"30-50 million",
	"Over 50 million",
}

// PriceRangeOther labels prices below the first boundary
const PriceRangeOther = "Other"

// PriceBucketIndex returns the band index of price, or -1 for Other
func PriceBucketIndex(price float64) int {
	if price < PriceBoundaries[0] || math.IsNaN(price) {
		return -1
	}
	for i := len(PriceBoundaries) - 1; i >= 0; i-- {
		if price >= PriceBoundaries[i] {
			return i
		}
	}
	return -1
}

// PriceRangeLabel returns the label of the band containing price
func PriceRangeLabel(price float64) string {
	idx := PriceBucketIndex(price)
	if idx < 0 {
		return PriceRangeOther
	}
	return PriceRangeLabels[idx]
}

// Summarize computes the inventory summary of active phones
func Summarize(phones []Phone) InventorySummary {
	var s InventorySummary
	value := decimal.Zero
	cost := decimal.Zero

	for i := range phones {
		p := &phones[i]
		qty := decimal.NewFromInt(int64(p.Quantity))

		s.TotalProducts++
		s.TotalQuantity += int64(p.Quantity)
		value = value.Add(decimal.NewFromFloat(p.Price).Mul(qty))
		if p.CostPrice != nil {
			cost = cost.Add(decimal.NewFromFloat(*p.CostPrice).Mul(qty))
		}

		switch p.Status {
		case StatusInStock:
			s.StockStatus.InStock++
		case StatusLowStock:
			s.StockStatus.LowStock++
		case StatusOutOfStock:
			s.StockStatus.OutOfStock++
		}
	}

	s.TotalValue = value.InexactFloat64()
	s.TotalCost = cost.InexactFloat64()
	s.PotentialProfit = value.Sub(cost).InexactFloat64()
	return s
}

// GroupByBrand aggregates phones per brand, highest total value first
func GroupByBrand(phones []Phone) []BrandReport {
	type acc struct {
		products int64
		quantity int64
		value    decimal.Decimal
		priceSum decimal.Decimal
	}

	groups := make(map[string]*acc)
	for i := range phones {
		p := &phones[i]
		g, ok := groups[p.Brand]
		if !ok {
			g = &acc{value: decimal.Zero, priceSum: decimal.Zero}
			groups[p.Brand] = g
		}
		price := decimal.NewFromFloat(p.Price)
		g.products++
		g.quantity += int64(p.Quantity)
		g.value = g.value.Add(price.Mul(decimal.NewFromInt(int64(p.Quantity))))
		g.priceSum = g.priceSum.Add(price)
	}

	reports := make([]BrandReport, 0, len(groups))
	for brand, g := range groups {
		avg := g.priceSum.Div(decimal.NewFromInt(g.products)).Round(0)
		reports = append(reports, BrandReport{
			Brand:         brand,
			TotalProducts: g.products,
			TotalQuantity: g.quantity,
			TotalValue:    g.value.InexactFloat64(),
			AvgPrice:      avg.IntPart(),
		})
	}

	sort.Slice(reports, func(i, j int) bool {
		if reports[i].TotalValue != reports[j].TotalValue {
			return reports[i].TotalValue > reports[j].TotalValue
		}
		return reports[i].Brand < reports[j].Brand
	})
	return reports
}

// SelectLowStock returns phones with 0 < quantity <= threshold, fewest first
func SelectLowStock(phones []Phone, threshold int) []Phone {
	out := make([]Phone, 0)
	for _, p := range phones {
		if p.Quantity > 0 && p.Quantity <= threshold {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Quantity < out[j].Quantity
	})
	return out
}

// SelectOutOfStock returns phones with quantity <= 0, most recently updated first
func SelectOutOfStock(phones []Phone) []Phone {
	out := make([]Phone, 0)
	for _, p := range phones {
		if p.Quantity <= 0 {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}

// RankByValue returns at most limit phones ordered by stock value, highest first
func RankByValue(phones []Phone, limit int) []ValuedPhone {
	out := make([]ValuedPhone, 0, len(phones))
	for _, p := range phones {
		v := decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(p.Quantity)))
		out = append(out, ValuedPhone{Phone: p, TotalValue: v.InexactFloat64()})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalValue > out[j].TotalValue
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// BucketByPrice counts phones per price band. Only non-empty bands are
// returned, in boundary order with Other last.
func BucketByPrice(phones []Phone) []PriceRangeBucket {
	counts := make([]PriceRangeBucket, len(PriceRangeLabels)+1)
	for i, label := range PriceRangeLabels {
		counts[i].Range = label
	}
	other := len(PriceRangeLabels)
	counts[other].Range = PriceRangeOther

	for _, p := range phones {
		idx := PriceBucketIndex(p.Price)
		if idx < 0 {
			idx = other
		}
		counts[idx].Count++
		counts[idx].TotalQuantity += int64(p.Quantity)
	}

	out := make([]PriceRangeBucket, 0, len(counts))
	for _, b := range counts {
		if b.Count > 0 {
			out = append(out, b)
		}
	}
	return out
}
