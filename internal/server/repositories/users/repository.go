// Package users persists user accounts. It is the only place that ever
// touches the users table.
package users

import (
	"context"

	"github.com/oleksir/inkpad/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
