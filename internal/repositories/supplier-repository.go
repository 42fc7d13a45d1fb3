package repositories

//go:generate mockgen -source=supplier-repository.go -destination=mocks/supplier_repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"pharma-order-system/internal/entities"
	"pharma-order-system/internal/infrastructure/bd"
	apperrors "pharma-order-system/pkg/errors"
	"pharma-order-system/pkg/types"
)

const supplierTable = "suppliers"

var supplierMap = map[string]string{
	"id":             "s.id",
	"supplierId":     "s.supplier_id",
	"name":           "s.name",
	"country":        "s.country",
	"city":           "s.city",
	"sourceOfSupply": "s.source_of_supply",
	"isActive":       "s.is_active",
	"rating":         "s.rating",
	"createdAt":      "s.created_at",
}

var supplierColumns = []string{
	"s.id", "s.supplier_id", "s.name", "s.address", "s.city", "s.state", "s.country",
	"s.email", "s.phone", "s.gstin", "s.source_of_supply",
	"s.billing_address", "s.billing_city", "s.billing_state", "s.billing_country",
	"s.shipping_address", "s.shipping_city", "s.shipping_state", "s.shipping_country",
	"s.specialties", "s.rating", "s.last_order_date", "s.is_active", "s.notes",
	"s.created_at", "s.updated_at",
}

type SupplierRepositoryInterface interface {
	GetSuppliers(ctx context.Context, filter types.Filter) ([]entities.Supplier, uint64, error)
	SearchActive(ctx context.Context, query string, limit uint64) ([]entities.Supplier, error)
	FindBySupplierID(ctx context.Context, supplierID string) (*entities.Supplier, error)
	FindByName(ctx context.Context, name string) (*entities.Supplier, error)
	LastPublicID(ctx context.Context) (string, error)
	CreateSupplier(ctx context.Context, supplier *entities.Supplier) error
	UpdateSupplier(ctx context.Context, supplier *entities.Supplier) error
	DeactivateSupplier(ctx context.Context, id uint64) error
	DeleteSupplier(ctx context.Context, id uint64) error
	Stats(ctx context.Context) (*entities.SupplierStats, error)
}

type SupplierRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewSupplierRepository(storage *pgxpool.Pool, logger *zap.Logger) SupplierRepositoryInterface {
	return &SupplierRepository{storage: storage, logger: logger}
}

func scanSupplier(row pgx.Row) (*entities.Supplier, error) {
	var s entities.Supplier
	err := row.Scan(
		&s.ID, &s.SupplierID, &s.Name, &s.Address, &s.City, &s.State, &s.Country,
		&s.Email, &s.Phone, &s.GSTIN, &s.SourceOfSupply,
		&s.BillingAddress, &s.BillingCity, &s.BillingState, &s.BillingCountry,
		&s.ShippingAddress, &s.ShippingCity, &s.ShippingState, &s.ShippingCountry,
		&s.Specialties, &s.Rating, &s.LastOrderDate, &s.IsActive, &s.Notes,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan supplier: %w", err)
	}
	if s.Specialties == nil {
		s.Specialties = []string{}
	}
	return &s, nil
}

func applySupplierSearch(b sq.SelectBuilder, term string) sq.SelectBuilder {
	return db.ApplySearch(b, term, "s.name", "s.supplier_id", "s.email", "s.city", "s.gstin")
}

func (r *SupplierRepository) GetSuppliers(ctx context.Context, filter types.Filter) ([]entities.Supplier, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil

	countBuilder := applySupplierSearch(psql.Select("COUNT(s.id)").From(supplierTable+" AS s"), filter.Search)
	countBuilder = db.ApplyListParams(countBuilder, countFilter, supplierMap)

	sqlCount, argsCount, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, mapStoreError("count suppliers", err)
	}
	if total == 0 {
		return []entities.Supplier{}, 0, nil
	}

	baseBuilder := applySupplierSearch(psql.Select(supplierColumns...).From(supplierTable+" AS s"), filter.Search)
	if len(filter.Sort) == 0 {
		baseBuilder = baseBuilder.OrderBy("s.name ASC")
	}
	baseBuilder = db.ApplyListParams(baseBuilder, filter, supplierMap)

	query, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	suppliers, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return suppliers, total, nil
}

// SearchActive looks up active suppliers for pickers.
func (r *SupplierRepository) SearchActive(ctx context.Context, term string, limit uint64) ([]entities.Supplier, error) {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(supplierColumns...).From(supplierTable + " AS s").
		Where(sq.Eq{"s.is_active": true}).
		OrderBy("s.name ASC").
		Limit(limit)
	builder = applySupplierSearch(builder, term)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	return r.query(ctx, query, args...)
}

func (r *SupplierRepository) query(ctx context.Context, query string, args ...interface{}) ([]entities.Supplier, error) {
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, mapStoreError("query suppliers", err)
	}
	defer rows.Close()

	suppliers := make([]entities.Supplier, 0)
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, *s)
	}
	return suppliers, rows.Err()
}

func (r *SupplierRepository) findOne(ctx context.Context, querier Querier, where sq.Sqlizer) (*entities.Supplier, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(supplierColumns...).From(supplierTable + " AS s").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, err
	}
	return scanSupplier(querier.QueryRow(ctx, query, args...))
}

// FindBySupplierID looks a supplier up by its public id (SUP001).
func (r *SupplierRepository) FindBySupplierID(ctx context.Context, supplierID string) (*entities.Supplier, error) {
	return r.findOne(ctx, r.storage, sq.Eq{"s.supplier_id": supplierID})
}

// FindByName matches the supplier name case-insensitively.
func (r *SupplierRepository) FindByName(ctx context.Context, name string) (*entities.Supplier, error) {
	return r.findOne(ctx, r.storage, sq.ILike{"s.name": name})
}

func (r *SupplierRepository) LastPublicID(ctx context.Context) (string, error) {
	return lastPublicID(ctx, r.storage, supplierTable, "supplier_id")
}

func (r *SupplierRepository) CreateSupplier(ctx context.Context, s *entities.Supplier) error {
	query := `
		INSERT INTO suppliers (supplier_id, name, address, city, state, country, email, phone, gstin,
			source_of_supply, billing_address, billing_city, billing_state, billing_country,
			shipping_address, shipping_city, shipping_state, shipping_country,
			specialties, rating, last_order_date, is_active, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
			$19, $20, $21, $22, $23, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	err := r.storage.QueryRow(ctx, query,
		s.SupplierID, s.Name, s.Address, s.City, s.State, s.Country, s.Email, s.Phone, s.GSTIN,
		s.SourceOfSupply, s.BillingAddress, s.BillingCity, s.BillingState, s.BillingCountry,
		s.ShippingAddress, s.ShippingCity, s.ShippingState, s.ShippingCountry,
		s.Specialties, s.Rating, s.LastOrderDate, s.IsActive, s.Notes,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return mapStoreError("insert supplier", err)
	}
	return nil
}

func (r *SupplierRepository) UpdateSupplier(ctx context.Context, s *entities.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $1, address = $2, city = $3, state = $4, country = $5, email = $6, phone = $7,
		    gstin = $8, source_of_supply = $9, billing_address = $10, billing_city = $11,
		    billing_state = $12, billing_country = $13, shipping_address = $14, shipping_city = $15,
		    shipping_state = $16, shipping_country = $17, specialties = $18, rating = $19,
		    last_order_date = $20, is_active = $21, notes = $22, updated_at = NOW()
		WHERE id = $23
		RETURNING updated_at
	`
	err := r.storage.QueryRow(ctx, query,
		s.Name, s.Address, s.City, s.State, s.Country, s.Email, s.Phone,
		s.GSTIN, s.SourceOfSupply, s.BillingAddress, s.BillingCity,
		s.BillingState, s.BillingCountry, s.ShippingAddress, s.ShippingCity,
		s.ShippingState, s.ShippingCountry, s.Specialties, s.Rating,
		s.LastOrderDate, s.IsActive, s.Notes, s.ID,
	).Scan(&s.UpdatedAt)
	return mapStoreError("update supplier", err)
}

// DeactivateSupplier is the soft delete: the row stays, is_active flips.
func (r *SupplierRepository) DeactivateSupplier(ctx context.Context, id uint64) error {
	tag, err := r.storage.Exec(ctx,
		"UPDATE suppliers SET is_active = FALSE, updated_at = NOW() WHERE id = $1", id)
	if err != nil {
		return mapStoreError("deactivate supplier", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteSupplier removes the row; materials keep existing with a NULL
// supplier_id.
func (r *SupplierRepository) DeleteSupplier(ctx context.Context, id uint64) error {
	tag, err := r.storage.Exec(ctx, "DELETE FROM suppliers WHERE id = $1", id)
	if err != nil {
		return mapStoreError("delete supplier", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *SupplierRepository) Stats(ctx context.Context) (*entities.SupplierStats, error) {
	stats := &entities.SupplierStats{ByCountry: map[string]uint64{}}

	err := r.storage.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active), COUNT(*) FILTER (WHERE NOT is_active)
		FROM suppliers`).Scan(&stats.Total, &stats.Active, &stats.Inactive)
	if err != nil {
		return nil, mapStoreError("supplier stats", err)
	}

	rows, err := r.storage.Query(ctx, "SELECT country, COUNT(*) FROM suppliers GROUP BY country")
	if err != nil {
		return nil, mapStoreError("supplier stats by country", err)
	}
	defer rows.Close()
	for rows.Next() {
		var country string
		var n uint64
		if err := rows.Scan(&country, &n); err != nil {
			return nil, err
		}
		stats.ByCountry[country] = n
	}
	return stats, rows.Err()
}
