// Package database provides the pgx query layer for the candidate schema.
//
// The package follows the Queries/DBTX pattern: New accepts anything that
// can execute SQL (a *pgxpool.Pool or a pgx.Tx), so the same query methods
// work inside and outside a transaction.
package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// New returns a Queries bound to the given executor.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// Queries holds the prepared query methods for the candidate schema.
type Queries struct {
	db DBTX
}
