package postgres

import (
	"database/sql"
)

// Queryer é satisfeito por *sql.DB e *sql.Tx, permitindo que os métodos de
// repositório participem de transações abertas pelos usecases.
type Queryer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}
