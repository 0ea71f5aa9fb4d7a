// internal/adapters/db/report_repository.go
package db

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/ammerola/phone-inventory/internal/core/domain"
)

const summaryQuery = `
	SELECT
		COUNT(*),
		COALESCE(SUM(quantity), 0),
		COALESCE(SUM(price * quantity), 0),
		COALESCE(SUM(COALESCE(cost_price, 0) * quantity), 0),
		COUNT(*) FILTER (WHERE status = 'in_stock'),
		COUNT(*) FILTER (WHERE status = 'low_stock'),
		COUNT(*) FILTER (WHERE status = 'out_of_stock')
	FROM phones
	WHERE NOT is_deleted`

const byBrandQuery = `
	SELECT
		brand,
		COUNT(*),
		SUM(quantity),
		SUM(price * quantity) AS total_value,
		ROUND(AVG(price)::numeric)::bigint
	FROM phones
	WHERE NOT is_deleted
	GROUP BY brand
	ORDER BY total_value DESC, brand ASC`

// Summary computes the inventory summary
func (r *PhoneStore) Summary(ctx context.Context) (*domain.InventorySummary, error) {
	var s domain.InventorySummary
	err := r.db.QueryRow(ctx, summaryQuery).Scan(
		&s.TotalProducts, &s.TotalQuantity, &s.TotalValue, &s.TotalCost,
		&s.StockStatus.InStock, &s.StockStatus.LowStock, &s.StockStatus.OutOfStock,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compute summary: %w", err)
	}

	s.PotentialProfit = decimal.NewFromFloat(s.TotalValue).
		Sub(decimal.NewFromFloat(s.TotalCost)).InexactFloat64()
	return &s, nil
}

// ByBrand groups active phones per brand
func (r *PhoneStore) ByBrand(ctx context.Context) ([]domain.BrandReport, error) {
	rows, err := r.db.Query(ctx, byBrandQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to compute brand report: %w", err)
	}

	reports, err := ScanMany(rows, func(row pgx.Row) (*domain.BrandReport, error) {
		var b domain.BrandReport
		err := row.Scan(&b.Brand, &b.TotalProducts, &b.TotalQuantity, &b.TotalValue, &b.AvgPrice)
		return &b, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan brand report: %w", err)
	}
	return reports, nil
}

// LowStock lists active phones with 0 < quantity <= threshold
func (r *PhoneStore) LowStock(ctx context.Context, threshold int) ([]domain.Phone, error) {
	qb := psql.Select(phoneColumns...).From(phonesTable).
		Where("NOT is_deleted").
		Where(squirrel.Gt{"quantity": 0}).
		Where(squirrel.LtOrEq{"quantity": threshold}).
		OrderBy("quantity ASC", "created_at ASC", "id ASC")

	return r.queryPhones(ctx, qb, "low stock report")
}

// OutOfStock lists active phones with quantity <= 0
func (r *PhoneStore) OutOfStock(ctx context.Context) ([]domain.Phone, error) {
	qb := psql.Select(phoneColumns...).From(phonesTable).
		Where("NOT is_deleted").
		Where(squirrel.LtOrEq{"quantity": 0}).
		OrderBy("updated_at DESC", "id ASC")

	return r.queryPhones(ctx, qb, "out of stock report")
}

// TopValue ranks active phones by stock value
func (r *PhoneStore) TopValue(ctx context.Context, limit int) ([]domain.ValuedPhone, error) {
	query, args, err := topValueQuery(limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build top value query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to compute top value report: %w", err)
	}

	valued, err := ScanMany(rows, func(row pgx.Row) (*domain.ValuedPhone, error) {
		var v domain.ValuedPhone
		p, err := scanPhone(valuedRow{row: row, total: &v.TotalValue})
		if err != nil {
			return nil, err
		}
		v.Phone = *p
		return &v, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan top value report: %w", err)
	}
	return valued, nil
}

// ByPriceRange buckets active phones by price
func (r *PhoneStore) ByPriceRange(ctx context.Context) ([]domain.PriceRangeBucket, error) {
	query, args, err := priceRangeQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build price range query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to compute price range report: %w", err)
	}

	buckets, err := ScanMany(rows, func(row pgx.Row) (*domain.PriceRangeBucket, error) {
		var (
			b   domain.PriceRangeBucket
			idx int
		)
		if err := row.Scan(&idx, &b.Count, &b.TotalQuantity); err != nil {
			return nil, err
		}
		b.Range = domain.PriceRangeOther
		if idx >= 0 && idx < len(domain.PriceRangeLabels) {
			b.Range = domain.PriceRangeLabels[idx]
		}
		return &b, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan price range report: %w", err)
	}
	return buckets, nil
}

func (r *PhoneStore) queryPhones(ctx context.Context, qb squirrel.SelectBuilder, report string) ([]domain.Phone, error) {
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s query: %w", report, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to compute %s: %w", report, err)
	}

	phones, err := ScanMany(rows, scanPhone)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", report, err)
	}
	return phones, nil
}

func topValueQuery(limit int) squirrel.SelectBuilder {
	return psql.Select(phoneColumns...).
		Column("price * quantity AS total_value").
		From(phonesTable).
		Where("NOT is_deleted").
		OrderBy("total_value DESC", "created_at ASC", "id ASC").
		Limit(uint64(limit))
}

// priceRangeQuery numbers each band by its index in domain.PriceBoundaries.
// Prices below every boundary get the index after the last band so they sort last.
func priceRangeQuery() squirrel.SelectBuilder {
	bucket := squirrel.Case()
	for i := len(domain.PriceBoundaries) - 1; i >= 0; i-- {
		bucket = bucket.When(
			squirrel.GtOrEq{"price": domain.PriceBoundaries[i]},
			strconv.Itoa(i),
		)
	}
	bucket = bucket.Else(strconv.Itoa(len(domain.PriceRangeLabels)))

	return psql.Select().
		Column(squirrel.Alias(bucket, "bucket")).
		Columns("COUNT(*)", "COALESCE(SUM(quantity), 0)").
		From(phonesTable).
		Where("NOT is_deleted").
		GroupBy("bucket").
		OrderBy("bucket")
}

// valuedRow scans a phone row followed by its total value column
type valuedRow struct {
	row   pgx.Row
	total *float64
}

func (v valuedRow) Scan(dest ...interface{}) error {
	return v.row.Scan(append(dest, v.total)...)
}
