package db

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharma-order-system/pkg/types"
)

var testColumns = map[string]string{
	"country": "s.country",
	"name":    "s.name",
}

func baseSelect() sq.SelectBuilder {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).Select("s.id").From("suppliers AS s")
}

func TestApplyListParams(t *testing.T) {
	filter := types.Filter{
		Filter:         map[string]interface{}{"country": "India, Germany", "password": "x"},
		Sort:           map[string]string{"name": "DESC", "secret": "asc"},
		Limit:          10,
		Offset:         20,
		WithPagination: true,
	}

	query, args, err := ApplyListParams(baseSelect(), filter, testColumns).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "s.country IN ($1,$2)")
	assert.Contains(t, query, "ORDER BY s.name DESC")
	assert.Contains(t, query, "LIMIT 10")
	assert.Contains(t, query, "OFFSET 20")
	assert.NotContains(t, query, "password")
	assert.NotContains(t, query, "secret")
	assert.Equal(t, []interface{}{"India", "Germany"}, args)
}

func TestApplyListParams_NoPagination(t *testing.T) {
	query, _, err := ApplyListParams(baseSelect(), types.Filter{Limit: 10}, testColumns).ToSql()
	require.NoError(t, err)
	assert.NotContains(t, query, "LIMIT")
}

func TestApplySearch(t *testing.T) {
	query, args, err := ApplySearch(baseSelect(), "  hetero ", "s.name", "s.city").ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "(s.name ILIKE $1 OR s.city ILIKE $2)")
	assert.Equal(t, []interface{}{"%hetero%", "%hetero%"}, args)

	query, args, err = ApplySearch(baseSelect(), "   ", "s.name").ToSql()
	require.NoError(t, err)
	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)
}
