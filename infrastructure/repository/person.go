package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/entry-services-api/infrastructure/database/postgres"
	"github.com/vfg2006/entry-services-api/internal/domain"
)

const (
	personsTable = "persons"
)

type PersonRepository interface {
	CreatePerson(q postgres.Queryer, person *domain.Person) error
	GetPersonByID(q postgres.Queryer, userID int, personID string) (*domain.Person, error)
	AddToTotal(q postgres.Queryer, userID int, personID string, delta int64, modifiedAt time.Time) (int64, error)
	SetTotal(personID string, total int64, modifiedAt time.Time) error
	ListPersons(userID int) ([]*domain.Person, error)
	ListAllPersons() ([]*domain.Person, error)
	DeletePerson(q postgres.Queryer, userID int, personID string) (int64, error)
}

type personRepository struct {
	conn *postgres.Connection
}

func NewPersonRepository(conn *postgres.Connection) PersonRepository {
	return &personRepository{
		conn: conn,
	}
}

func (r *personRepository) CreatePerson(q postgres.Queryer, person *domain.Person) error {
	query, args, err := squirrel.
		Insert(personsTable).
		Columns("id", "user_id", "name", "item", "unit", "total_quantity", "created_at", "modified_at").
		Values(person.ID, person.UserID, person.Name, person.Item, person.Unit, person.TotalQuantity, person.CreatedAt, person.ModifiedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	_, err = q.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao inserir person: %w", err)
	}

	return nil
}

func (r *personRepository) GetPersonByID(q postgres.Queryer, userID int, personID string) (*domain.Person, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "name", "item", "unit", "total_quantity", "created_at", "modified_at").
		From(personsTable).
		Where(squirrel.Eq{"id": personID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	var person domain.Person
	err = q.QueryRow(query, args...).Scan(
		&person.ID,
		&person.UserID,
		&person.Name,
		&person.Item,
		&person.Unit,
		&person.TotalQuantity,
		&person.CreatedAt,
		&person.ModifiedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar person: %w", err)
	}

	return &person, nil
}

// AddToTotal incrementa o total acumulado de forma atômica e retorna o valor
// armazenado após o incremento. O total retornado ao cliente vem sempre
// daqui, nunca de um recálculo no caminho de resposta.
func (r *personRepository) AddToTotal(q postgres.Queryer, userID int, personID string, delta int64, modifiedAt time.Time) (int64, error) {
	query, args, err := squirrel.
		Update(personsTable).
		Set("total_quantity", squirrel.Expr("total_quantity + ?", delta)).
		Set("modified_at", modifiedAt).
		Where(squirrel.Eq{"id": personID, "user_id": userID}).
		Suffix("RETURNING total_quantity").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	var total int64
	if err := q.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao atualizar total: %w", err)
	}

	return total, nil
}

// SetTotal grava um total re-derivado pela reconciliação.
func (r *personRepository) SetTotal(personID string, total int64, modifiedAt time.Time) error {
	query, args, err := squirrel.
		Update(personsTable).
		Set("total_quantity", total).
		Set("modified_at", modifiedAt).
		Where(squirrel.Eq{"id": personID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao gravar total reconciliado: %w", err)
	}

	return nil
}

func (r *personRepository) ListPersons(userID int) ([]*domain.Person, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "name", "item", "unit", "total_quantity", "created_at", "modified_at").
		From(personsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	return r.queryPersons(query, args...)
}

// ListAllPersons retorna os persons de todos os usuários; usado apenas pela
// reconciliação de totais.
func (r *personRepository) ListAllPersons() ([]*domain.Person, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "name", "item", "unit", "total_quantity", "created_at", "modified_at").
		From(personsTable).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	return r.queryPersons(query, args...)
}

func (r *personRepository) queryPersons(query string, args ...interface{}) ([]*domain.Person, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar persons: %w", err)
	}
	defer rows.Close()

	var persons []*domain.Person
	for rows.Next() {
		var person domain.Person
		if err := rows.Scan(
			&person.ID,
			&person.UserID,
			&person.Name,
			&person.Item,
			&person.Unit,
			&person.TotalQuantity,
			&person.CreatedAt,
			&person.ModifiedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}

		persons = append(persons, &person)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return persons, nil
}

func (r *personRepository) DeletePerson(q postgres.Queryer, userID int, personID string) (int64, error) {
	query, args, err := squirrel.
		Delete(personsTable).
		Where(squirrel.Eq{"id": personID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	result, err := q.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao excluir person: %w", err)
	}

	return result.RowsAffected()
}
