package postgres

import (
	"database/sql"
)

// Queryer abstrai a execução de queries, satisfeita por *sql.DB e *sql.Tx
type Queryer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}
