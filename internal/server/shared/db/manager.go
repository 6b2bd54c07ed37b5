// Package db wires the Postgres connection, migrations, and repositories
// together behind a single manager.
package db

import (
	"context"
	"database/sql"

	"spenttribe/internal/server/expenses"
	"spenttribe/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Expenses() expenses.Repository
	Close() error
}
