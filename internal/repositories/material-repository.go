package repositories

//go:generate mockgen -source=material-repository.go -destination=mocks/material_repository_mock.go -package=mocks

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

const materialTable = "materials"

var materialMap = map[string]string{
	"id":           "m.id",
	"itemId":       "m.item_id",
	"itemName":     "m.item_name",
	"supplierId":   "m.supplier_id",
	"categoryName": "m.category_name",
	"status":       "m.status",
	"itemType":     "m.item_type",
	"createdAt":    "m.created_at",
}

var materialColumns = []string{
	"m.id", "m.item_id", "m.item_name", "m.sku", "m.upc", "m.hsn_sac", "m.category_name",
	"m.parent_category", "m.product_type", "m.unit_name", "m.taxable",
	"m.intra_state_tax_rate", "m.inter_state_tax_rate", "m.inventory_account",
	"m.inventory_valuation_method", "m.reorder_point", "m.vendor", "m.supplier_id",
	"m.warehouse_name", "m.opening_stock", "m.stock_on_hand", "m.item_type", "m.status",
	"m.created_at", "m.updated_at",
	"COALESCE(s.id, 0)", "COALESCE(s.supplier_id, '')", "COALESCE(s.name, '')",
}

type MaterialRepositoryInterface interface {
	GetMaterials(ctx context.Context, filter types.Filter) ([]entities.Material, uint64, error)
	FindMaterial(ctx context.Context, id uint64) (*entities.Material, error)
	FindByItemID(ctx context.Context, itemID string) (*entities.Material, error)
	Categories(ctx context.Context) ([]string, error)
	CreateMaterial(ctx context.Context, material *entities.Material) error
	UpdateMaterial(ctx context.Context, material *entities.Material) error
	DeleteMaterial(ctx context.Context, id uint64) error
}

type MaterialRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewMaterialRepository(storage *pgxpool.Pool, logger *zap.Logger) MaterialRepositoryInterface {
	return &MaterialRepository{storage: storage, logger: logger}
}

func scanMaterial(row pgx.Row) (*entities.Material, error) {
	var m entities.Material
	var s entities.SupplierSummary

	err := row.Scan(
		&m.ID, &m.ItemID, &m.ItemName, &m.SKU, &m.UPC, &m.HSNSAC, &m.CategoryName,
		&m.ParentCategory, &m.ProductType, &m.UnitName, &m.Taxable,
		&m.IntraStateTaxRate, &m.InterStateTaxRate, &m.InventoryAccount,
		&m.InventoryValuationMethod, &m.ReorderPoint, &m.Vendor, &m.SupplierID,
		&m.WarehouseName, &m.OpeningStock, &m.StockOnHand, &m.ItemType, &m.Status,
		&m.CreatedAt, &m.UpdatedAt,
		&s.ID, &s.SupplierID, &s.Name,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan material: %w", err)
	}

	if s.ID > 0 {
		m.Supplier = &s
	}
	return &m, nil
}

func (r *MaterialRepository) selectBuilder() sq.SelectBuilder {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(materialColumns...).
		From(materialTable + " AS m").
		LeftJoin("suppliers s ON m.supplier_id = s.id")
}

func applyMaterialSearch(b sq.SelectBuilder, term string) sq.SelectBuilder {
	return db.ApplySearch(b, term, "m.item_name", "m.item_id", "m.sku", "m.category_name", "m.vendor")
}

func (r *MaterialRepository) GetMaterials(ctx context.Context, filter types.Filter) ([]entities.Material, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil

	countBuilder := applyMaterialSearch(psql.Select("COUNT(m.id)").From(materialTable+" AS m"), filter.Search)
	countBuilder = db.ApplyListParams(countBuilder, countFilter, materialMap)

	sqlCount, argsCount, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, mapStoreError("count materials", err)
	}
	if total == 0 {
		return []entities.Material{}, 0, nil
	}

	baseBuilder := applyMaterialSearch(r.selectBuilder(), filter.Search)
	if len(filter.Sort) == 0 {
		baseBuilder = baseBuilder.OrderBy("m.item_name ASC")
	}
	baseBuilder = db.ApplyListParams(baseBuilder, filter, materialMap)

	query, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, mapStoreError("query materials", err)
	}
	defer rows.Close()

	materials := make([]entities.Material, 0, filter.Limit)
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, 0, err
		}
		materials = append(materials, *m)
	}
	return materials, total, rows.Err()
}

func (r *MaterialRepository) findOne(ctx context.Context, where sq.Eq) (*entities.Material, error) {
	query, args, err := r.selectBuilder().Where(where).ToSql()
	if err != nil {
		return nil, err
	}
	return scanMaterial(r.storage.QueryRow(ctx, query, args...))
}

func (r *MaterialRepository) FindMaterial(ctx context.Context, id uint64) (*entities.Material, error) {
	return r.findOne(ctx, sq.Eq{"m.id": id})
}

func (r *MaterialRepository) FindByItemID(ctx context.Context, itemID string) (*entities.Material, error) {
	return r.findOne(ctx, sq.Eq{"m.item_id": itemID})
}

// Categories returns the distinct non-empty category names, sorted.
func (r *MaterialRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT DISTINCT category_name FROM materials
		WHERE category_name IS NOT NULL AND category_name <> ''
		ORDER BY category_name`)
	if err != nil {
		return nil, mapStoreError("material categories", err)
	}
	defer rows.Close()

	categories := make([]string, 0)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *MaterialRepository) CreateMaterial(ctx context.Context, m *entities.Material) error {
	query := `
		INSERT INTO materials (item_id, item_name, sku, upc, hsn_sac, category_name, parent_category,
			product_type, unit_name, taxable, intra_state_tax_rate, inter_state_tax_rate,
			inventory_account, inventory_valuation_method, reorder_point, vendor, supplier_id,
			warehouse_name, opening_stock, stock_on_hand, item_type, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
			$18, $19, $20, $21, $22, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	err := r.storage.QueryRow(ctx, query,
		m.ItemID, m.ItemName, m.SKU, m.UPC, m.HSNSAC, m.CategoryName, m.ParentCategory,
		m.ProductType, m.UnitName, m.Taxable, m.IntraStateTaxRate, m.InterStateTaxRate,
		m.InventoryAccount, m.InventoryValuationMethod, m.ReorderPoint, m.Vendor, m.SupplierID,
		m.WarehouseName, m.OpeningStock, m.StockOnHand, m.ItemType, m.Status,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return mapStoreError("insert material", err)
	}
	return nil
}

func (r *MaterialRepository) UpdateMaterial(ctx context.Context, m *entities.Material) error {
	query := `
		UPDATE materials
		SET item_id = $1, item_name = $2, sku = $3, upc = $4, hsn_sac = $5, category_name = $6,
		    parent_category = $7, product_type = $8, unit_name = $9, taxable = $10,
		    intra_state_tax_rate = $11, inter_state_tax_rate = $12, inventory_account = $13,
		    inventory_valuation_method = $14, reorder_point = $15, vendor = $16, supplier_id = $17,
		    warehouse_name = $18, opening_stock = $19, stock_on_hand = $20, item_type = $21,
		    status = $22, updated_at = NOW()
		WHERE id = $23
		RETURNING updated_at
	`
	err := r.storage.QueryRow(ctx, query,
		m.ItemID, m.ItemName, m.SKU, m.UPC, m.HSNSAC, m.CategoryName,
		m.ParentCategory, m.ProductType, m.UnitName, m.Taxable,
		m.IntraStateTaxRate, m.InterStateTaxRate, m.InventoryAccount,
		m.InventoryValuationMethod, m.ReorderPoint, m.Vendor, m.SupplierID,
		m.WarehouseName, m.OpeningStock, m.StockOnHand, m.ItemType,
		m.Status, m.ID,
	).Scan(&m.UpdatedAt)
	return mapStoreError("update material", err)
}

func (r *MaterialRepository) DeleteMaterial(ctx context.Context, id uint64) error {
	tag, err := r.storage.Exec(ctx, "DELETE FROM materials WHERE id = $1", id)
	if err != nil {
		return mapStoreError("delete material", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
