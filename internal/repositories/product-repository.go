package repositories

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

const productTable = "products"

var productMap = map[string]string{
	"id":           "p.id",
	"productId":    "p.product_id",
	"itemName":     "p.item_name",
	"categoryName": "p.category_name",
	"status":       "p.status",
	"isActive":     "p.is_active",
	"createdAt":    "p.created_at",
}

var productColumns = []string{
	"p.id", "p.product_id", "p.item_id", "p.item_name", "p.sku", "p.upc", "p.hsn_sac",
	"p.category_name", "p.product_type", "p.unit_name", "p.vendor", "p.warehouse_name",
	"p.status", "p.taxable", "p.intra_state_tax_rate", "p.inter_state_tax_rate",
	"p.inventory_account", "p.reorder_point", "p.stock_on_hand", "p.item_type", "p.is_active",
	"p.created_at", "p.updated_at",
}

const insertProductSQL = `
	INSERT INTO products (product_id, item_id, item_name, sku, upc, hsn_sac, category_name,
		product_type, unit_name, vendor, warehouse_name, status, taxable, intra_state_tax_rate,
		inter_state_tax_rate, inventory_account, reorder_point, stock_on_hand, item_type,
		is_active, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
		$19, $20, NOW(), NOW())`

type ProductRepositoryInterface interface {
	GetProducts(ctx context.Context, filter types.Filter) ([]entities.Product, uint64, error)
	FindByProductID(ctx context.Context, productID string) (*entities.Product, error)
	LastPublicID(ctx context.Context) (string, error)
	CreateProduct(ctx context.Context, product *entities.Product) error
	// CreateProducts inserts in one transaction and skips rows whose
	// product_id already exists. It returns how many rows were written.
	CreateProducts(ctx context.Context, products []entities.Product) (int, error)
	UpdateProduct(ctx context.Context, product *entities.Product) error
	DeleteProduct(ctx context.Context, id uint64) error
}

type ProductRepository struct {
	storage *pgxpool.Pool
	tx      TxManagerInterface
	logger  *zap.Logger
}

func NewProductRepository(storage *pgxpool.Pool, logger *zap.Logger) ProductRepositoryInterface {
	return &ProductRepository{storage: storage, tx: NewTxManager(storage), logger: logger}
}

func scanProduct(row pgx.Row) (*entities.Product, error) {
	var p entities.Product
	err := row.Scan(
		&p.ID, &p.ProductID, &p.ItemID, &p.ItemName, &p.SKU, &p.UPC, &p.HSNSAC,
		&p.CategoryName, &p.ProductType, &p.UnitName, &p.Vendor, &p.WarehouseName,
		&p.Status, &p.Taxable, &p.IntraStateTaxRate, &p.InterStateTaxRate,
		&p.InventoryAccount, &p.ReorderPoint, &p.StockOnHand, &p.ItemType, &p.IsActive,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan product: %w", err)
	}
	return &p, nil
}

func productArgs(p *entities.Product) []interface{} {
	return []interface{}{
		p.ProductID, p.ItemID, p.ItemName, p.SKU, p.UPC, p.HSNSAC, p.CategoryName,
		p.ProductType, p.UnitName, p.Vendor, p.WarehouseName, p.Status, p.Taxable,
		p.IntraStateTaxRate, p.InterStateTaxRate, p.InventoryAccount, p.ReorderPoint,
		p.StockOnHand, p.ItemType, p.IsActive,
	}
}

func (r *ProductRepository) GetProducts(ctx context.Context, filter types.Filter) ([]entities.Product, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	search := func(b sq.SelectBuilder) sq.SelectBuilder {
		return db.ApplySearch(b, filter.Search, "p.item_name", "p.product_id", "p.sku", "p.category_name")
	}

	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil

	countBuilder := db.ApplyListParams(search(psql.Select("COUNT(p.id)").From(productTable+" AS p")), countFilter, productMap)
	sqlCount, argsCount, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, mapStoreError("count products", err)
	}
	if total == 0 {
		return []entities.Product{}, 0, nil
	}

	baseBuilder := search(psql.Select(productColumns...).From(productTable + " AS p"))
	if len(filter.Sort) == 0 {
		baseBuilder = baseBuilder.OrderBy("p.id DESC")
	}
	baseBuilder = db.ApplyListParams(baseBuilder, filter, productMap)

	query, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, mapStoreError("query products", err)
	}
	defer rows.Close()

	products := make([]entities.Product, 0, filter.Limit)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, *p)
	}
	return products, total, rows.Err()
}

func (r *ProductRepository) FindByProductID(ctx context.Context, productID string) (*entities.Product, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(productColumns...).From(productTable + " AS p").Where(sq.Eq{"p.product_id": productID}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanProduct(r.storage.QueryRow(ctx, query, args...))
}

func (r *ProductRepository) LastPublicID(ctx context.Context) (string, error) {
	return lastPublicID(ctx, r.storage, productTable, "product_id")
}

func (r *ProductRepository) CreateProduct(ctx context.Context, p *entities.Product) error {
	err := r.storage.QueryRow(ctx, insertProductSQL+" RETURNING id, created_at, updated_at", productArgs(p)...).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return mapStoreError("insert product", err)
	}
	return nil
}

func (r *ProductRepository) CreateProducts(ctx context.Context, products []entities.Product) (int, error) {
	created := 0
	err := r.tx.RunInTransaction(ctx, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for i := range products {
			batch.Queue(insertProductSQL+" ON CONFLICT (product_id) DO NOTHING", productArgs(&products[i])...)
		}
		results := tx.SendBatch(ctx, batch)
		for range products {
			tag, err := results.Exec()
			if err != nil {
				_ = results.Close()
				return err
			}
			created += int(tag.RowsAffected())
		}
		return results.Close()
	})
	if err != nil {
		return 0, mapStoreError("bulk insert products", err)
	}
	return created, nil
}

func (r *ProductRepository) UpdateProduct(ctx context.Context, p *entities.Product) error {
	query := `
		UPDATE products
		SET item_id = $1, item_name = $2, sku = $3, upc = $4, hsn_sac = $5, category_name = $6,
		    product_type = $7, unit_name = $8, vendor = $9, warehouse_name = $10, status = $11,
		    taxable = $12, intra_state_tax_rate = $13, inter_state_tax_rate = $14,
		    inventory_account = $15, reorder_point = $16, stock_on_hand = $17, item_type = $18,
		    is_active = $19, updated_at = NOW()
		WHERE id = $20
		RETURNING updated_at
	`
	err := r.storage.QueryRow(ctx, query,
		p.ItemID, p.ItemName, p.SKU, p.UPC, p.HSNSAC, p.CategoryName,
		p.ProductType, p.UnitName, p.Vendor, p.WarehouseName, p.Status,
		p.Taxable, p.IntraStateTaxRate, p.InterStateTaxRate,
		p.InventoryAccount, p.ReorderPoint, p.StockOnHand, p.ItemType,
		p.IsActive, p.ID,
	).Scan(&p.UpdatedAt)
	return mapStoreError("update product", err)
}

func (r *ProductRepository) DeleteProduct(ctx context.Context, id uint64) error {
	tag, err := r.storage.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return mapStoreError("delete product", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
