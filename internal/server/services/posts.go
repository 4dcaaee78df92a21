package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/oleksir/inkpad/internal/server/models"
	"github.com/oleksir/inkpad/internal/server/repositories/posts"
	"github.com/oleksir/inkpad/internal/server/validation"
)

// PostService implements post authoring on top of the posts repository.
// Ownership is enforced by the repository: edits and deletes by anyone but
// the author behave like operations on a missing post.
type PostService struct {
	posts posts.Repository
}

func NewPostService(posts posts.Repository) *PostService {
	return &PostService{posts: posts}
}

// Create validates and stores a new post for the given author.
func (s *PostService) Create(ctx context.Context, authorID, title, body string) (*models.Post, []string, error) {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)

	errs := validation.PostTitle(title)
	errs = append(errs, validation.PostBody(body)...)
	if len(errs) > 0 {
		return nil, errs, nil
	}

	post, err := s.posts.Create(ctx, &models.Post{AuthorID: authorID, Title: title, Body: body})
	if err != nil {
		return nil, nil, fmt.Errorf("creating post: %w", err)
	}

	return post, nil, nil
}

// Get returns a single post by id.
func (s *PostService) Get(ctx context.Context, id string) (*models.Post, error) {
	return s.posts.GetByID(ctx, id)
}

// ListByAuthor returns the author's posts, newest first.
func (s *PostService) ListByAuthor(ctx context.Context, authorID string) ([]*models.Post, error) {
	return s.posts.ListByAuthor(ctx, authorID)
}

// Update validates and saves new content for a post owned by authorID.
func (s *PostService) Update(ctx context.Context, authorID, id, title, body string) ([]string, error) {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)

	errs := validation.PostTitle(title)
	errs = append(errs, validation.PostBody(body)...)
	if len(errs) > 0 {
		return errs, nil
	}

	err := s.posts.Update(ctx, &models.Post{ID: id, AuthorID: authorID, Title: title, Body: body})
	if err != nil {
		return nil, err
	}

	return nil, nil
}

// Delete removes a post owned by authorID.
func (s *PostService) Delete(ctx context.Context, authorID, id string) error {
	return s.posts.Delete(ctx, id, authorID)
}
