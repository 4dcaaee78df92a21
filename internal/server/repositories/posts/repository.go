// Package posts persists blog posts.
package posts

import (
	"context"

	"github.com/oleksir/inkpad/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, post *models.Post) (*models.Post, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*models.Post, error)
	// Update and Delete match on both post id and author id; a post owned
	// by someone else behaves exactly like a missing post.
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id, authorID string) error
}
