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

const freightHandlerTable = "freight_handlers"

var freightHandlerMap = map[string]string{
	"id":               "f.id",
	"freightHandlerId": "f.freight_handler_id",
	"name":             "f.name",
	"country":          "f.country",
	"isActive":         "f.is_active",
	"createdAt":        "f.created_at",
}

var freightHandlerColumns = []string{
	"f.id", "f.freight_handler_id", "f.name", "f.company", "f.address", "f.country",
	"f.phone", "f.gstin", "f.notes", "f.is_active", "f.created_at", "f.updated_at",
}

const insertFreightHandlerSQL = `
	INSERT INTO freight_handlers (freight_handler_id, name, company, address, country, phone,
		gstin, notes, is_active, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())`

type FreightHandlerRepositoryInterface interface {
	GetFreightHandlers(ctx context.Context, filter types.Filter) ([]entities.FreightHandler, uint64, error)
	FindByFreightHandlerID(ctx context.Context, freightHandlerID string) (*entities.FreightHandler, error)
	LastPublicID(ctx context.Context) (string, error)
	CreateFreightHandler(ctx context.Context, handler *entities.FreightHandler) error
	CreateFreightHandlers(ctx context.Context, handlers []entities.FreightHandler) (int, error)
	UpdateFreightHandler(ctx context.Context, handler *entities.FreightHandler) error
	DeleteFreightHandler(ctx context.Context, id uint64) error
}

type FreightHandlerRepository struct {
	storage *pgxpool.Pool
	tx      TxManagerInterface
	logger  *zap.Logger
}

func NewFreightHandlerRepository(storage *pgxpool.Pool, logger *zap.Logger) FreightHandlerRepositoryInterface {
	return &FreightHandlerRepository{storage: storage, tx: NewTxManager(storage), logger: logger}
}

func scanFreightHandler(row pgx.Row) (*entities.FreightHandler, error) {
	var f entities.FreightHandler
	err := row.Scan(
		&f.ID, &f.FreightHandlerID, &f.Name, &f.Company, &f.Address, &f.Country,
		&f.Phone, &f.GSTIN, &f.Notes, &f.IsActive, &f.CreatedAt, &f.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan freight handler: %w", err)
	}
	return &f, nil
}

func freightHandlerArgs(f *entities.FreightHandler) []interface{} {
	return []interface{}{
		f.FreightHandlerID, f.Name, f.Company, f.Address, f.Country, f.Phone,
		f.GSTIN, f.Notes, f.IsActive,
	}
}

func (r *FreightHandlerRepository) GetFreightHandlers(ctx context.Context, filter types.Filter) ([]entities.FreightHandler, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	search := func(b sq.SelectBuilder) sq.SelectBuilder {
		return db.ApplySearch(b, filter.Search, "f.name", "f.company", "f.freight_handler_id", "f.phone")
	}

	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil

	countBuilder := db.ApplyListParams(search(psql.Select("COUNT(f.id)").From(freightHandlerTable+" AS f")), countFilter, freightHandlerMap)
	sqlCount, argsCount, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, mapStoreError("count freight handlers", err)
	}
	if total == 0 {
		return []entities.FreightHandler{}, 0, nil
	}

	baseBuilder := search(psql.Select(freightHandlerColumns...).From(freightHandlerTable + " AS f"))
	if len(filter.Sort) == 0 {
		baseBuilder = baseBuilder.OrderBy("f.name ASC")
	}
	baseBuilder = db.ApplyListParams(baseBuilder, filter, freightHandlerMap)

	query, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, mapStoreError("query freight handlers", err)
	}
	defer rows.Close()

	handlers := make([]entities.FreightHandler, 0, filter.Limit)
	for rows.Next() {
		f, err := scanFreightHandler(rows)
		if err != nil {
			return nil, 0, err
		}
		handlers = append(handlers, *f)
	}
	return handlers, total, rows.Err()
}

func (r *FreightHandlerRepository) FindByFreightHandlerID(ctx context.Context, freightHandlerID string) (*entities.FreightHandler, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(freightHandlerColumns...).From(freightHandlerTable + " AS f").
		Where(sq.Eq{"f.freight_handler_id": freightHandlerID}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanFreightHandler(r.storage.QueryRow(ctx, query, args...))
}

func (r *FreightHandlerRepository) LastPublicID(ctx context.Context) (string, error) {
	return lastPublicID(ctx, r.storage, freightHandlerTable, "freight_handler_id")
}

func (r *FreightHandlerRepository) CreateFreightHandler(ctx context.Context, f *entities.FreightHandler) error {
	err := r.storage.QueryRow(ctx, insertFreightHandlerSQL+" RETURNING id, created_at, updated_at", freightHandlerArgs(f)...).
		Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return mapStoreError("insert freight handler", err)
	}
	return nil
}

func (r *FreightHandlerRepository) CreateFreightHandlers(ctx context.Context, handlers []entities.FreightHandler) (int, error) {
	created := 0
	err := r.tx.RunInTransaction(ctx, func(tx pgx.Tx) error {
		for i := range handlers {
			tag, err := tx.Exec(ctx, insertFreightHandlerSQL+" ON CONFLICT (freight_handler_id) DO NOTHING",
				freightHandlerArgs(&handlers[i])...)
			if err != nil {
				return err
			}
			created += int(tag.RowsAffected())
		}
		return nil
	})
	if err != nil {
		return 0, mapStoreError("bulk insert freight handlers", err)
	}
	return created, nil
}

func (r *FreightHandlerRepository) UpdateFreightHandler(ctx context.Context, f *entities.FreightHandler) error {
	query := `
		UPDATE freight_handlers
		SET name = $1, company = $2, address = $3, country = $4, phone = $5, gstin = $6,
		    notes = $7, is_active = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING updated_at
	`
	err := r.storage.QueryRow(ctx, query,
		f.Name, f.Company, f.Address, f.Country, f.Phone, f.GSTIN, f.Notes, f.IsActive, f.ID,
	).Scan(&f.UpdatedAt)
	return mapStoreError("update freight handler", err)
}

func (r *FreightHandlerRepository) DeleteFreightHandler(ctx context.Context, id uint64) error {
	tag, err := r.storage.Exec(ctx, "DELETE FROM freight_handlers WHERE id = $1", id)
	if err != nil {
		return mapStoreError("delete freight handler", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
