package listing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialectFromDriver(t *testing.T) {
	assert.Equal(t, DialectMySQL, DialectFromDriver("mysql"))
	assert.Equal(t, DialectPostgres, DialectFromDriver("postgres"))
	assert.Equal(t, DialectPostgres, DialectFromDriver(""))
}

func TestWhereClause_OwnerOnly(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV7())

	clause, args := WhereClause(DialectPostgres, "user_id", ownerID, nil)

	assert.Equal(t, "WHERE user_id = $1", clause)
	require.Len(t, args, 1)
	assert.Equal(t, ownerID, args[0])
}

func TestWhereClause_OwnerPredicateAlwaysFirst(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV7())
	filters := []Filter{
		{Column: "category", Op: OpContains, Value: "food"},
		{Column: "amount", Op: OpGte, Value: decimal.New(10, 0)},
		{Column: "date", Op: OpLte, Value: time.Now()},
	}

	clause, args := WhereClause(DialectPostgres, "user_id", ownerID, filters)

	assert.Equal(t,
		"WHERE user_id = $1 AND category ILIKE $2 AND amount >= $3 AND date <= $4",
		clause)
	require.Len(t, args, 4)
	assert.Equal(t, ownerID, args[0])
	assert.Equal(t, "%food%", args[1])
}

func TestWhereClause_MySQLContains(t *testing.T) {
	clause, args := WhereClause(DialectMySQL, "user_id", "u1", []Filter{
		{Column: "payee", Op: OpContains, Value: "Store"},
	})

	assert.Equal(t, "WHERE user_id = ? AND LOWER(payee) LIKE LOWER(?)", clause)
	assert.Equal(t, []any{"u1", "%Store%"}, args)
}

func TestOrderByClause(t *testing.T) {
	assert.Equal(t, "ORDER BY date DESC, created_at DESC", OrderByClause("date"))
}

func TestLimitOffsetClause(t *testing.T) {
	clause, args := LimitOffsetClause(DialectPostgres, 3, 10, 20)
	assert.Equal(t, "LIMIT $4 OFFSET $5", clause)
	assert.Equal(t, []any{10, 20}, args)

	clause, args = LimitOffsetClause(DialectMySQL, 3, 10, 20)
	assert.Equal(t, "LIMIT ? OFFSET ?", clause)
	assert.Equal(t, []any{10, 20}, args)
}
