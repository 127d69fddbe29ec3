package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/lifebook/lifebook/internal/errors"
	"github.com/lifebook/lifebook/internal/ledger/domain"
	"github.com/lifebook/lifebook/internal/listing"
)

var incomeColumns = []string{
	"id", "user_id", "date", "source", "category", "amount", "notes", "created_at", "updated_at",
}

func testIncome(owner uuid.UUID) *domain.Income {
	income := &domain.Income{
		Date:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Source:   "Acme Corp",
		Category: "salary",
		Amount:   decimal.RequireFromString("4200.00"),
		Notes:    "march payroll",
	}
	income.SetIdentity(uuid.Must(uuid.NewV7()), owner)
	return income
}

func incomeRow(income *domain.Income) *sqlmock.Rows {
	return sqlmock.NewRows(incomeColumns).AddRow(
		income.ID.String(), income.UserID.String(), income.Date, income.Source, income.Category,
		income.Amount.String(), income.Notes, time.Now(), time.Now(),
	)
}

func newIncomeRepo(t *testing.T) (*SQLEntryRepository[*domain.Income], sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewSQLEntryRepository(db, "postgres", domain.IncomeSchema()), mock
}

func TestSQLEntryRepository_Create(t *testing.T) {
	repo, mock := newIncomeRepo(t)
	owner := uuid.Must(uuid.NewV7())
	income := testIncome(owner)

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO incomes (id, user_id, date, source, category, amount, notes, created_at, updated_at) "+
			"VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())")).
		WithArgs(income.ID, owner, income.Date, income.Source, income.Category, income.Amount, income.Notes).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), income)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLEntryRepository_Get(t *testing.T) {
	repo, mock := newIncomeRepo(t)
	owner := uuid.Must(uuid.NewV7())
	income := testIncome(owner)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1 AND id = $2")).
		WithArgs(owner, income.ID).
		WillReturnRows(incomeRow(income))

	found, err := repo.Get(context.Background(), owner, income.ID)
	require.NoError(t, err)
	assert.Equal(t, income.ID, found.ID)
	assert.Equal(t, "Acme Corp", found.Source)
	assert.True(t, found.Amount.Equal(income.Amount))
}

func TestSQLEntryRepository_Get_CrossOwnerIsNotFound(t *testing.T) {
	repo, mock := newIncomeRepo(t)
	requester := uuid.Must(uuid.NewV7())
	otherOwnersEntry := uuid.Must(uuid.NewV7())

	// the owner predicate means someone else's row simply does not match
	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1 AND id = $2")).
		WithArgs(requester, otherOwnersEntry).
		WillReturnRows(sqlmock.NewRows(incomeColumns))

	_, err := repo.Get(context.Background(), requester, otherOwnersEntry)
	assert.True(t, apperrors.Is(err, domain.ErrEntryNotFound))
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestSQLEntryRepository_Update(t *testing.T) {
	repo, mock := newIncomeRepo(t)
	owner := uuid.Must(uuid.NewV7())
	income := testIncome(owner)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE incomes SET date = $1, source = $2, category = $3, amount = $4, notes = $5, "+
			"updated_at = NOW() WHERE user_id = $6 AND id = $7")).
		WithArgs(income.Date, income.Source, income.Category, income.Amount, income.Notes, owner, income.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), income)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLEntryRepository_Update_NoRowIsNotFound(t *testing.T) {
	repo, mock := newIncomeRepo(t)
	income := testIncome(uuid.Must(uuid.NewV7()))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE incomes SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), income)
	assert.True(t, apperrors.Is(err, domain.ErrEntryNotFound))
}

func TestSQLEntryRepository_Delete(t *testing.T) {
	repo, mock := newIncomeRepo(t)
	owner := uuid.Must(uuid.NewV7())
	id := uuid.Must(uuid.NewV7())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM incomes WHERE user_id = $1 AND id = $2")).
		WithArgs(owner, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), owner, id))
}

func TestSQLEntryRepository_Delete_NoRowIsNotFound(t *testing.T) {
	repo, mock := newIncomeRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM incomes")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7()))
	assert.True(t, apperrors.Is(err, domain.ErrEntryNotFound))
}

func TestSQLEntryRepository_List(t *testing.T) {
	repo, mock := newIncomeRepo(t)
	owner := uuid.Must(uuid.NewV7())
	income := testIncome(owner)

	query := listing.Query{
		Filters: []listing.Filter{{Column: "category", Op: listing.OpContains, Value: "sal"}},
		Page:    2,
		Limit:   10,
	}

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT COUNT(*) FROM incomes WHERE user_id = $1 AND category ILIKE $2")).
		WithArgs(owner, "%sal%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))

	mock.ExpectQuery(regexp.QuoteMeta(
		"WHERE user_id = $1 AND category ILIKE $2 ORDER BY date DESC, created_at DESC LIMIT $3 OFFSET $4")).
		WithArgs(owner, "%sal%", 10, 10).
		WillReturnRows(incomeRow(income))

	records, totalCount, err := repo.List(context.Background(), owner, query)
	require.NoError(t, err)
	assert.Equal(t, 11, totalCount)
	require.Len(t, records, 1)
	assert.Equal(t, income.ID, records[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLEntryRepository_ListAll(t *testing.T) {
	repo, mock := newIncomeRepo(t)
	owner := uuid.Must(uuid.NewV7())
	income := testIncome(owner)

	mock.ExpectQuery(regexp.QuoteMeta(
		"WHERE user_id = $1 ORDER BY date DESC, created_at DESC")).
		WithArgs(owner).
		WillReturnRows(incomeRow(income))

	records, err := repo.ListAll(context.Background(), owner, nil)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestSQLEntryRepository_Distinct(t *testing.T) {
	repo, mock := newIncomeRepo(t)
	owner := uuid.Must(uuid.NewV7())

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT DISTINCT category FROM incomes WHERE user_id = $1 AND category IS NOT NULL AND category <> '' ORDER BY category ASC")).
		WithArgs(owner).
		WillReturnRows(sqlmock.NewRows([]string{"category"}).AddRow("bonus").AddRow("salary"))

	values, err := repo.Distinct(context.Background(), owner, "category")
	require.NoError(t, err)
	assert.Equal(t, []string{"bonus", "salary"}, values)
}

func TestSQLEntryRepository_MySQLPlaceholders(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSQLEntryRepository(db, "mysql", domain.IncomeSchema())
	owner := uuid.Must(uuid.NewV7())
	income := testIncome(owner)

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO incomes (id, user_id, date, source, category, amount, notes, created_at, updated_at) "+
			"VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())")).
		WithArgs(income.ID, owner, income.Date, income.Source, income.Category, income.Amount, income.Notes).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Create(context.Background(), income))
}
