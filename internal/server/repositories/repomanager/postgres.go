package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/oleksir/inkpad/internal/server/migrations"
	"github.com/oleksir/inkpad/internal/server/repositories/posts"
	"github.com/oleksir/inkpad/internal/server/repositories/users"
)

type PostgresManager struct {
	db    *sql.DB
	users users.Repository
	posts posts.Repository
}

func (m *PostgresManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresManager) Users() users.Repository {
	return m.users
}

func (m *PostgresManager) Posts() posts.Repository {
	return m.posts
}

func (m *PostgresManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func (m *PostgresManager) Close() error {
	return m.db.Close()
}

// NewPostgresManager opens a pooled connection via the pgx stdlib driver,
// wires the repositories, and applies pending migrations.
func NewPostgresManager(ctx context.Context, dsn string) (*PostgresManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresManager{
		db:    db,
		users: users.NewPostgresRepository(db),
		posts: posts.NewPostgresRepository(db),
	}

	if err := m.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
