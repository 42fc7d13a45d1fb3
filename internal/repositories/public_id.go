package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// lastPublicID returns the public identifier of the most recently inserted
// row of table, or "" when the table is empty.
func lastPublicID(ctx context.Context, querier Querier, table, column string) (string, error) {
	query := fmt.Sprintf("SELECT COALESCE(%s, '') FROM %s ORDER BY id DESC LIMIT 1", column, table)

	var id string
	err := querier.QueryRow(ctx, query).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", mapStoreError("last "+column, err)
	}
	return id, nil
}
