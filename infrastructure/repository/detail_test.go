package repository

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/entry-services-api/infrastructure/database/postgres"
	"github.com/vfg2006/entry-services-api/internal/domain"
)

func newDetailRepoTest(t *testing.T) (DetailRepository, sqlmock.Sqlmock, *postgres.Connection) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	conn := &postgres.Connection{DB: db}
	return NewDetailRepository(conn), mock, conn
}

func TestDetailRepository_CreateDetail(t *testing.T) {
	repo, mock, conn := newDetailRepoTest(t)

	selected := time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)
	detail := &domain.Detail{
		ID:              "det123456789",
		PersonID:        "AbC123xYz456",
		CompareDate:     time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		SelectedDate:    selected,
		QuantityEntries: []int64{10, 20},
		CreatedDate:     selected,
		ModifiedDate:    selected,
	}

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO person_details (id,person_id,compare_date,selected_date,quantity_entries,created_date,modified_date) VALUES ($1,$2,$3,$4,$5,$6,$7)",
	)).
		WithArgs(detail.ID, detail.PersonID, "2024-05-10", selected, sqlmock.AnyArg(), selected, selected).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateDetail(conn, detail)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDetailRepository_GetDetailByCompareDate(t *testing.T) {
	repo, mock, conn := newDetailRepoTest(t)

	selected := time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)
	compareDate := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	cols := []string{"id", "person_id", "compare_date", "selected_date", "quantity_entries", "created_date", "modified_date"}

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, person_id, compare_date, selected_date, quantity_entries, created_date, modified_date FROM person_details WHERE compare_date = $1 AND person_id = $2 LIMIT 1 FOR UPDATE",
	)).
		WithArgs("2024-05-10", "AbC123xYz456").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("det123456789", "AbC123xYz456", compareDate, selected, []byte("{10,20}"), selected, selected))

	detail, err := repo.GetDetailByCompareDate(conn, "AbC123xYz456", compareDate)

	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Equal(t, []int64{10, 20}, detail.QuantityEntries)
	assert.Equal(t, selected, detail.SelectedDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDetailRepository_GetDetailByCompareDate_NotFound(t *testing.T) {
	repo, mock, conn := newDetailRepoTest(t)

	compareDate := time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC)
	cols := []string{"id", "person_id", "compare_date", "selected_date", "quantity_entries", "created_date", "modified_date"}

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, person_id, compare_date, selected_date, quantity_entries, created_date, modified_date FROM person_details WHERE compare_date = $1 AND person_id = $2 LIMIT 1 FOR UPDATE",
	)).
		WithArgs("2024-05-11", "AbC123xYz456").
		WillReturnRows(sqlmock.NewRows(cols))

	detail, err := repo.GetDetailByCompareDate(conn, "AbC123xYz456", compareDate)

	assert.NoError(t, err)
	assert.Nil(t, detail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDetailRepository_AppendEntries(t *testing.T) {
	repo, mock, conn := newDetailRepoTest(t)

	now := time.Date(2024, 5, 10, 18, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE person_details SET quantity_entries = array_cat(quantity_entries, $1), modified_date = $2 WHERE id = $3",
	)).
		WithArgs(sqlmock.AnyArg(), now, "det123456789").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AppendEntries(conn, "det123456789", []int64{5}, now)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDetailRepository_ListDetailsByPerson(t *testing.T) {
	repo, mock, _ := newDetailRepoTest(t)

	day1 := time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)
	day2 := time.Date(2024, 5, 11, 9, 0, 0, 0, time.UTC)
	cols := []string{"id", "person_id", "compare_date", "selected_date", "quantity_entries", "created_date", "modified_date"}

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, person_id, compare_date, selected_date, quantity_entries, created_date, modified_date FROM person_details WHERE person_id = $1 ORDER BY selected_date DESC",
	)).
		WithArgs("AbC123xYz456").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("det2", "AbC123xYz456", day2, day2, []byte("{7}"), day2, day2).
			AddRow("det1", "AbC123xYz456", day1, day1, []byte("{10,20,5}"), day1, day1))

	details, err := repo.ListDetailsByPerson("AbC123xYz456")

	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.Equal(t, []int64{7}, details[0].QuantityEntries)
	assert.Equal(t, []int64{10, 20, 5}, details[1].QuantityEntries)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDetailRepository_SumEntriesByPerson(t *testing.T) {
	repo, mock, _ := newDetailRepoTest(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT COALESCE(SUM(entry), 0) FROM person_details, unnest(quantity_entries) AS entry WHERE person_id = $1",
	)).
		WithArgs("AbC123xYz456").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(int64(42)))

	total, err := repo.SumEntriesByPerson("AbC123xYz456")

	require.NoError(t, err)
	assert.Equal(t, int64(42), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDetailRepository_DeleteByPerson(t *testing.T) {
	repo, mock, conn := newDetailRepoTest(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"DELETE FROM person_details WHERE person_id = $1",
	)).
		WithArgs("AbC123xYz456").
		WillReturnResult(sqlmock.NewResult(0, 2))

	affected, err := repo.DeleteByPerson(conn, "AbC123xYz456")

	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}
