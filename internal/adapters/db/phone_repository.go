// internal/adapters/db/phone_repository.go
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/ammerola/phone-inventory/internal/core/domain"
	"github.com/ammerola/phone-inventory/internal/core/ports"
)

const phonesTable = "phones"

var phoneColumns = []string{
	"id", "name", "brand", "price", "cost_price", "quantity",
	"color", "storage", "ram", "imei_list", "status",
	"created_at", "updated_at", "is_deleted", "deleted_at",
}

var sortColumns = map[domain.SortField]string{
	domain.SortByCreatedAt: "created_at",
	domain.SortByUpdatedAt: "updated_at",
	domain.SortByName:      "name",
	domain.SortByBrand:     "brand",
	domain.SortByPrice:     "price",
	domain.SortByQuantity:  "quantity",
	domain.SortByStatus:    "status",
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// PhoneStore implements the phone and report repositories on PostgreSQL
type PhoneStore struct {
	db     *Database
	logger *slog.Logger
}

var (
	_ ports.Store            = (*PhoneStore)(nil)
	_ ports.PhoneRepository  = (*PhoneStore)(nil)
	_ ports.ReportRepository = (*PhoneStore)(nil)
	_ ports.HealthReporter   = (*PhoneStore)(nil)
)

// NewPhoneStore creates a new PostgreSQL phone store
func NewPhoneStore(db *Database, logger *slog.Logger) *PhoneStore {
	return &PhoneStore{
		db:     db,
		logger: logger.With(slog.String("repository", "phones")),
	}
}

// Phones returns the phone repository
func (r *PhoneStore) Phones() ports.PhoneRepository { return r }

// Reports returns the report repository
func (r *PhoneStore) Reports() ports.ReportRepository { return r }

// Close closes the pool
func (r *PhoneStore) Close(ctx context.Context) error {
	r.db.Close()
	return nil
}

// Ping verifies database connectivity
func (r *PhoneStore) Ping(ctx context.Context) error { return r.db.Ping(ctx) }

// Health returns pool health information
func (r *PhoneStore) Health(ctx context.Context) map[string]interface{} { return r.db.Health(ctx) }

// likePattern wraps raw in wildcards, escaping the LIKE metacharacters
func likePattern(raw string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(raw)
	return "%" + escaped + "%"
}

// applyFilter adds the WHERE clauses of f
func applyFilter(qb squirrel.SelectBuilder, f domain.PhoneFilter) squirrel.SelectBuilder {
	if f.Visibility == domain.ActiveOnly {
		qb = qb.Where("NOT is_deleted")
	}
	if f.Brand != "" {
		qb = qb.Where(squirrel.ILike{"brand": likePattern(f.Brand)})
	}
	if f.Status != nil {
		qb = qb.Where(squirrel.Eq{"status": string(*f.Status)})
	}
	if f.MinPrice != nil {
		qb = qb.Where(squirrel.GtOrEq{"price": *f.MinPrice})
	}
	if f.MaxPrice != nil {
		qb = qb.Where(squirrel.LtOrEq{"price": *f.MaxPrice})
	}
	if f.Keyword != "" {
		pattern := likePattern(f.Keyword)
		qb = qb.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"brand": pattern},
			squirrel.ILike{"color": pattern},
		})
	}
	return qb
}

func selectPhones(q domain.PhoneQuery) squirrel.SelectBuilder {
	col, ok := sortColumns[q.SortBy]
	if !ok {
		col = "created_at"
	}
	dir := "DESC"
	if q.SortOrder == domain.SortAsc {
		dir = "ASC"
	}

	qb := applyFilter(psql.Select(phoneColumns...).From(phonesTable), q.Filter).
		OrderBy(col+" "+dir, "id "+dir)

	if q.Skip > 0 {
		qb = qb.Offset(uint64(q.Skip))
	}
	if q.Limit > 0 {
		qb = qb.Limit(uint64(q.Limit))
	}
	return qb
}

func updatePhone(id domain.ID, c domain.PhoneChanges) squirrel.UpdateBuilder {
	set := map[string]interface{}{"updated_at": c.UpdatedAt}
	if c.Name != nil {
		set["name"] = *c.Name
	}
	if c.Brand != nil {
		set["brand"] = *c.Brand
	}
	if c.Price != nil {
		set["price"] = *c.Price
	}
	if c.CostPrice != nil {
		set["cost_price"] = *c.CostPrice
	}
	if c.Quantity != nil {
		set["quantity"] = *c.Quantity
	}
	if c.Color != nil {
		set["color"] = *c.Color
	}
	if c.Storage != nil {
		set["storage"] = *c.Storage
	}
	if c.RAM != nil {
		set["ram"] = *c.RAM
	}
	if c.IMEIList != nil {
		set["imei_list"] = *c.IMEIList
	}
	if c.Status != nil {
		set["status"] = string(*c.Status)
	}

	return psql.Update(phonesTable).
		SetMap(set).
		Where(squirrel.Eq{"id": id.String()}).
		Where("NOT is_deleted")
}

func scanPhone(row pgx.Row) (*domain.Phone, error) {
	var (
		p      domain.Phone
		id     string
		status string
	)
	err := row.Scan(
		&id, &p.Name, &p.Brand, &p.Price, &p.CostPrice, &p.Quantity,
		&p.Color, &p.Storage, &p.RAM, &p.IMEIList, &status,
		&p.CreatedAt, &p.UpdatedAt, &p.IsDeleted, &p.DeletedAt,
	)
	if err != nil {
		return nil, err
	}

	p.ID = domain.ID(strings.TrimSpace(id))
	p.Status = domain.StockStatus(status)
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	if p.DeletedAt != nil {
		t := p.DeletedAt.UTC()
		p.DeletedAt = &t
	}
	if p.IMEIList == nil {
		p.IMEIList = []string{}
	}
	return &p, nil
}

// Find returns the filtered, sorted window of phones
func (r *PhoneStore) Find(ctx context.Context, q domain.PhoneQuery) ([]domain.Phone, error) {
	query, args, err := selectPhones(q).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query phones: %w", err)
	}

	phones, err := ScanMany(rows, scanPhone)
	if err != nil {
		return nil, fmt.Errorf("failed to scan phones: %w", err)
	}
	return phones, nil
}

// Count counts phones matching f
func (r *PhoneStore) Count(ctx context.Context, f domain.PhoneFilter) (int64, error) {
	query, args, err := applyFilter(psql.Select("COUNT(*)").From(phonesTable), f).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var n int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count phones: %w", err)
	}
	return n, nil
}

// FindOne returns the phone or nil when absent
func (r *PhoneStore) FindOne(ctx context.Context, id domain.ID, vis domain.Visibility) (*domain.Phone, error) {
	qb := psql.Select(phoneColumns...).From(phonesTable).Where(squirrel.Eq{"id": id.String()})
	if vis == domain.ActiveOnly {
		qb = qb.Where("NOT is_deleted")
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	p, err := ScanOne(r.db.QueryRow(ctx, query, args...), scanPhone)
	if err != nil {
		return nil, fmt.Errorf("failed to get phone: %w", err)
	}
	return p, nil
}

// Insert stores p under a new id
func (r *PhoneStore) Insert(ctx context.Context, p *domain.Phone) (domain.ID, error) {
	id := domain.NewID()
	imeis := p.IMEIList
	if imeis == nil {
		imeis = []string{}
	}

	query, args, err := psql.Insert(phonesTable).
		Columns(phoneColumns...).
		Values(id.String(), p.Name, p.Brand, p.Price, p.CostPrice, p.Quantity,
			p.Color, p.Storage, p.RAM, imeis, string(p.Status),
			p.CreatedAt, p.UpdatedAt, p.IsDeleted, p.DeletedAt).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build insert: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return "", fmt.Errorf("failed to insert phone: %w", err)
	}

	r.logger.DebugContext(ctx, "phone inserted", slog.String("id", id.String()))
	return id, nil
}

// Update applies c to an active phone
func (r *PhoneStore) Update(ctx context.Context, id domain.ID, c domain.PhoneChanges) (bool, error) {
	query, args, err := updatePhone(id, c).ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build update: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update phone: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// AdjustStock locks the row, applies the adjustment and writes the derived status
func (r *PhoneStore) AdjustStock(ctx context.Context, id domain.ID, adj domain.StockAdjustment, at time.Time) (*domain.StockChange, error) {
	var change *domain.StockChange

	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		var (
			prevQuantity int
			prevStatus   string
		)
		err := tx.QueryRow(ctx,
			`SELECT quantity, status FROM phones WHERE id = $1 AND NOT is_deleted FOR UPDATE`,
			id.String(),
		).Scan(&prevQuantity, &prevStatus)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to lock phone: %w", err)
		}

		quantity := adj.Resolve(prevQuantity)
		status := domain.DeriveStatus(quantity)

		query, args, err := psql.Update(phonesTable).
			Set("quantity", quantity).
			Set("status", string(status)).
			Set("updated_at", at).
			Where(squirrel.Eq{"id": id.String()}).
			Suffix("RETURNING " + strings.Join(phoneColumns, ", ")).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build stock update: %w", err)
		}

		p, err := scanPhone(tx.QueryRow(ctx, query, args...))
		if err != nil {
			return fmt.Errorf("failed to update stock: %w", err)
		}

		change = &domain.StockChange{
			Phone:            *p,
			PreviousQuantity: prevQuantity,
			PreviousStatus:   domain.StockStatus(prevStatus),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return change, nil
}

// SoftDelete flags an active phone as deleted
func (r *PhoneStore) SoftDelete(ctx context.Context, id domain.ID, at time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE phones SET is_deleted = TRUE, deleted_at = $2 WHERE id = $1 AND NOT is_deleted`,
		id.String(), at)
	if err != nil {
		return false, fmt.Errorf("failed to soft delete phone: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes a phone regardless of is_deleted
func (r *PhoneStore) Delete(ctx context.Context, id domain.ID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM phones WHERE id = $1`, id.String())
	if err != nil {
		return false, fmt.Errorf("failed to delete phone: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// PurgeDeleted removes phones soft deleted before the cutoff
func (r *PhoneStore) PurgeDeleted(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM phones WHERE is_deleted AND deleted_at < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("failed to purge deleted phones: %w", err)
	}
	return tag.RowsAffected(), nil
}
