// Package repomanager owns the database handle and hands out repositories
// bound to it.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/oleksir/inkpad/internal/server/repositories/posts"
	"github.com/oleksir/inkpad/internal/server/repositories/users"
)

type RepositoryManager interface {
	Conn() *sql.DB
	Users() users.Repository
	Posts() posts.Repository
	RunMigrations(ctx context.Context) error
	Close() error
}
