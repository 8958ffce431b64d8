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

func newPersonRepoTest(t *testing.T) (PersonRepository, sqlmock.Sqlmock, *postgres.Connection) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	conn := &postgres.Connection{DB: db}
	return NewPersonRepository(conn), mock, conn
}

func TestPersonRepository_CreatePerson(t *testing.T) {
	repo, mock, conn := newPersonRepoTest(t)

	now := time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)
	person := &domain.Person{
		ID:            "AbC123xYz456",
		UserID:        7,
		Name:          "Ramesh",
		Item:          "Leite",
		Unit:          "L",
		TotalQuantity: 30,
		CreatedAt:     now,
		ModifiedAt:    now,
	}

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO persons (id,user_id,name,item,unit,total_quantity,created_at,modified_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)",
	)).
		WithArgs(person.ID, person.UserID, person.Name, person.Item, person.Unit, person.TotalQuantity, now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreatePerson(conn, person)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPersonRepository_GetPersonByID(t *testing.T) {
	repo, mock, conn := newPersonRepoTest(t)

	now := time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)
	cols := []string{"id", "user_id", "name", "item", "unit", "total_quantity", "created_at", "modified_at"}

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, user_id, name, item, unit, total_quantity, created_at, modified_at FROM persons WHERE id = $1 AND user_id = $2",
	)).
		WithArgs("AbC123xYz456", 7).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("AbC123xYz456", 7, "Ramesh", "Leite", "L", int64(35), now, now))

	person, err := repo.GetPersonByID(conn, 7, "AbC123xYz456")

	require.NoError(t, err)
	require.NotNil(t, person)
	assert.Equal(t, "Ramesh", person.Name)
	assert.Equal(t, int64(35), person.TotalQuantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPersonRepository_GetPersonByID_NotFound(t *testing.T) {
	repo, mock, conn := newPersonRepoTest(t)

	cols := []string{"id", "user_id", "name", "item", "unit", "total_quantity", "created_at", "modified_at"}

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, user_id, name, item, unit, total_quantity, created_at, modified_at FROM persons WHERE id = $1 AND user_id = $2",
	)).
		WithArgs("inexistente", 7).
		WillReturnRows(sqlmock.NewRows(cols))

	person, err := repo.GetPersonByID(conn, 7, "inexistente")

	assert.NoError(t, err)
	assert.Nil(t, person)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPersonRepository_AddToTotal(t *testing.T) {
	repo, mock, conn := newPersonRepoTest(t)

	now := time.Date(2024, 5, 11, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(
		"UPDATE persons SET total_quantity = total_quantity + $1, modified_at = $2 WHERE id = $3 AND user_id = $4 RETURNING total_quantity",
	)).
		WithArgs(int64(5), now, "AbC123xYz456", 7).
		WillReturnRows(sqlmock.NewRows([]string{"total_quantity"}).AddRow(int64(35)))

	total, err := repo.AddToTotal(conn, 7, "AbC123xYz456", 5, now)

	require.NoError(t, err)
	assert.Equal(t, int64(35), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPersonRepository_SetTotal(t *testing.T) {
	repo, mock, _ := newPersonRepoTest(t)

	now := time.Date(2024, 5, 12, 3, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE persons SET total_quantity = $1, modified_at = $2 WHERE id = $3",
	)).
		WithArgs(int64(42), now, "AbC123xYz456").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetTotal("AbC123xYz456", 42, now)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPersonRepository_ListPersons(t *testing.T) {
	repo, mock, _ := newPersonRepoTest(t)

	now := time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)
	cols := []string{"id", "user_id", "name", "item", "unit", "total_quantity", "created_at", "modified_at"}

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, user_id, name, item, unit, total_quantity, created_at, modified_at FROM persons WHERE user_id = $1 ORDER BY created_at DESC",
	)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("p2", 7, "Suresh", "Leite", "L", int64(42), now.Add(time.Hour), now.Add(time.Hour)).
			AddRow("p1", 7, "Ramesh", "Leite", "L", int64(35), now, now))

	persons, err := repo.ListPersons(7)

	require.NoError(t, err)
	require.Len(t, persons, 2)
	assert.Equal(t, "Suresh", persons[0].Name)
	assert.Equal(t, "Ramesh", persons[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPersonRepository_DeletePerson(t *testing.T) {
	repo, mock, conn := newPersonRepoTest(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"DELETE FROM persons WHERE id = $1 AND user_id = $2",
	)).
		WithArgs("AbC123xYz456", 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.DeletePerson(conn, 7, "AbC123xYz456")

	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}
