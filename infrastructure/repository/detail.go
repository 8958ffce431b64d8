package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/entry-services-api/infrastructure/database/postgres"
	"github.com/vfg2006/entry-services-api/internal/domain"
)

const (
	personDetailsTable = "person_details"
)

type DetailRepository interface {
	CreateDetail(q postgres.Queryer, detail *domain.Detail) error
	GetDetailByCompareDate(q postgres.Queryer, personID string, compareDate time.Time) (*domain.Detail, error)
	AppendEntries(q postgres.Queryer, detailID string, entries []int64, modifiedAt time.Time) error
	ListDetailsByPerson(personID string) ([]*domain.Detail, error)
	SumEntriesByPerson(personID string) (int64, error)
	DeleteByPerson(q postgres.Queryer, personID string) (int64, error)
}

type detailRepository struct {
	conn *postgres.Connection
}

func NewDetailRepository(conn *postgres.Connection) DetailRepository {
	return &detailRepository{
		conn: conn,
	}
}

func (r *detailRepository) CreateDetail(q postgres.Queryer, detail *domain.Detail) error {
	query, args, err := squirrel.
		Insert(personDetailsTable).
		Columns("id", "person_id", "compare_date", "selected_date", "quantity_entries", "created_date", "modified_date").
		Values(
			detail.ID,
			detail.PersonID,
			detail.CompareDate.Format("2006-01-02"),
			detail.SelectedDate,
			pq.Array(detail.QuantityEntries),
			detail.CreatedDate,
			detail.ModifiedDate,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	_, err = q.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao inserir detail: %w", err)
	}

	return nil
}

// GetDetailByCompareDate busca o balde do dia com FOR UPDATE: dentro da
// transação de submissão, duas escritas concorrentes no mesmo dia
// serializam em vez de perder o append.
func (r *detailRepository) GetDetailByCompareDate(q postgres.Queryer, personID string, compareDate time.Time) (*domain.Detail, error) {
	query, args, err := squirrel.
		Select("id", "person_id", "compare_date", "selected_date", "quantity_entries", "created_date", "modified_date").
		From(personDetailsTable).
		Where(squirrel.Eq{"person_id": personID, "compare_date": compareDate.Format("2006-01-02")}).
		Limit(1).
		Suffix("FOR UPDATE").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	row := q.QueryRow(query, args...)
	detail, err := r.scanDetail(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear detail: %w", err)
	}

	return detail, nil
}

// AppendEntries concatena novas quantidades ao final do array existente,
// preservando a ordem de inserção. selected_date não é alterado: o balde
// mantém o timestamp da primeira submissão do dia.
func (r *detailRepository) AppendEntries(q postgres.Queryer, detailID string, entries []int64, modifiedAt time.Time) error {
	query, args, err := squirrel.
		Update(personDetailsTable).
		Set("quantity_entries", squirrel.Expr("array_cat(quantity_entries, ?)", pq.Array(entries))).
		Set("modified_date", modifiedAt).
		Where(squirrel.Eq{"id": detailID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	_, err = q.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao concatenar quantidades: %w", err)
	}

	return nil
}

func (r *detailRepository) ListDetailsByPerson(personID string) ([]*domain.Detail, error) {
	query, args, err := squirrel.
		Select("id", "person_id", "compare_date", "selected_date", "quantity_entries", "created_date", "modified_date").
		From(personDetailsTable).
		Where(squirrel.Eq{"person_id": personID}).
		OrderBy("selected_date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar details: %w", err)
	}
	defer rows.Close()

	var details []*domain.Detail
	for rows.Next() {
		detail, err := r.scanDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear detail: %w", err)
		}
		details = append(details, detail)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return details, nil
}

// SumEntriesByPerson re-deriva o total a partir dos details; usado apenas
// pela reconciliação, nunca pelo caminho normal de leitura.
func (r *detailRepository) SumEntriesByPerson(personID string) (int64, error) {
	var total int64
	err := r.conn.QueryRow(
		"SELECT COALESCE(SUM(entry), 0) FROM person_details, unnest(quantity_entries) AS entry WHERE person_id = $1",
		personID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("erro ao somar quantidades: %w", err)
	}

	return total, nil
}

func (r *detailRepository) DeleteByPerson(q postgres.Queryer, personID string) (int64, error) {
	query, args, err := squirrel.
		Delete(personDetailsTable).
		Where(squirrel.Eq{"person_id": personID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	result, err := q.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao excluir details: %w", err)
	}

	return result.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *detailRepository) scanDetail(row rowScanner) (*domain.Detail, error) {
	var detail domain.Detail
	var entries pq.Int64Array

	err := row.Scan(
		&detail.ID,
		&detail.PersonID,
		&detail.CompareDate,
		&detail.SelectedDate,
		&entries,
		&detail.CreatedDate,
		&detail.ModifiedDate,
	)
	if err != nil {
		return nil, err
	}

	detail.QuantityEntries = []int64(entries)
	return &detail, nil
}
