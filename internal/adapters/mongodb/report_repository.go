// internal/adapters/mongodb/report_repository.go
package mongodb

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ammerola/phone-inventory/internal/core/domain"
)

type summaryRow struct {
	TotalProducts int64   `bson:"totalProducts"`
	TotalQuantity int64   `bson:"totalQuantity"`
	TotalValue    float64 `bson:"totalValue"`
	TotalCost     float64 `bson:"totalCost"`
	InStock       int64   `bson:"inStock"`
	LowStock      int64   `bson:"lowStock"`
	OutOfStock    int64   `bson:"outOfStock"`
}

type brandRow struct {
	Brand         string  `bson:"_id"`
	TotalProducts int64   `bson:"totalProducts"`
	TotalQuantity int64   `bson:"totalQuantity"`
	TotalValue    float64 `bson:"totalValue"`
	AvgPrice      float64 `bson:"avgPrice"`
}

type bucketRow struct {
	Lower         interface{} `bson:"_id"`
	Count         int64       `bson:"count"`
	TotalQuantity int64       `bson:"totalQuantity"`
}

func aggregate[T any](ctx context.Context, coll *mongo.Collection, pipeline mongo.Pipeline, report string) ([]T, error) {
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate %s: %w", report, err)
	}

	rows := make([]T, 0)
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", report, err)
	}
	return rows, nil
}

// Summary computes the inventory summary
func (s *Store) Summary(ctx context.Context) (*domain.InventorySummary, error) {
	rows, err := aggregate[summaryRow](ctx, s.coll, summaryPipeline(), "summary")
	if err != nil {
		return nil, err
	}

	sum := &domain.InventorySummary{}
	if len(rows) == 0 {
		return sum, nil
	}

	r := rows[0]
	sum.TotalProducts = r.TotalProducts
	sum.TotalQuantity = r.TotalQuantity
	sum.TotalValue = r.TotalValue
	sum.TotalCost = r.TotalCost
	sum.PotentialProfit = decimal.NewFromFloat(r.TotalValue).
		Sub(decimal.NewFromFloat(r.TotalCost)).InexactFloat64()
	sum.StockStatus = domain.StockStatusCounts{
		InStock:    r.InStock,
		LowStock:   r.LowStock,
		OutOfStock: r.OutOfStock,
	}
	return sum, nil
}

// ByBrand groups active phones per brand
func (s *Store) ByBrand(ctx context.Context) ([]domain.BrandReport, error) {
	rows, err := aggregate[brandRow](ctx, s.coll, byBrandPipeline(), "brand report")
	if err != nil {
		return nil, err
	}

	out := make([]domain.BrandReport, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.BrandReport{
			Brand:         r.Brand,
			TotalProducts: r.TotalProducts,
			TotalQuantity: r.TotalQuantity,
			TotalValue:    r.TotalValue,
			AvgPrice:      decimal.NewFromFloat(r.AvgPrice).Round(0).IntPart(),
		})
	}
	return out, nil
}

// LowStock lists active phones with 0 < quantity <= threshold
func (s *Store) LowStock(ctx context.Context, threshold int) ([]domain.Phone, error) {
	docs, err := aggregate[phoneDocument](ctx, s.coll, lowStockPipeline(threshold), "low stock report")
	if err != nil {
		return nil, err
	}
	return toDomainList(docs), nil
}

// OutOfStock lists active phones with quantity <= 0
func (s *Store) OutOfStock(ctx context.Context) ([]domain.Phone, error) {
	docs, err := aggregate[phoneDocument](ctx, s.coll, outOfStockPipeline(), "out of stock report")
	if err != nil {
		return nil, err
	}
	return toDomainList(docs), nil
}

// TopValue ranks active phones by stock value
func (s *Store) TopValue(ctx context.Context, limit int) ([]domain.ValuedPhone, error) {
	docs, err := aggregate[valuedDocument](ctx, s.coll, topValuePipeline(limit), "top value report")
	if err != nil {
		return nil, err
	}

	out := make([]domain.ValuedPhone, 0, len(docs))
	for _, d := range docs {
		out = append(out, domain.ValuedPhone{Phone: d.phoneDocument.toDomain(), TotalValue: d.TotalValue})
	}
	return out, nil
}

// ByPriceRange buckets active phones by price
func (s *Store) ByPriceRange(ctx context.Context) ([]domain.PriceRangeBucket, error) {
	rows, err := aggregate[bucketRow](ctx, s.coll, priceRangePipeline(), "price range report")
	if err != nil {
		return nil, err
	}

	out := make([]domain.PriceRangeBucket, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.PriceRangeBucket{
			Range:         bucketLabel(r.Lower),
			Count:         r.Count,
			TotalQuantity: r.TotalQuantity,
		})
	}
	return out, nil
}

// bucketLabel maps a $bucket _id (a lower boundary or the default) to its label
func bucketLabel(lower interface{}) string {
	switch v := lower.(type) {
	case float64:
		return domain.PriceRangeLabel(v)
	case int32:
		return domain.PriceRangeLabel(float64(v))
	case int64:
		return domain.PriceRangeLabel(float64(v))
	}
	return domain.PriceRangeOther
}
