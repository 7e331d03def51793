package repository

import (
	"context"

	"github.com/pvanham/quorum/internal/core/domain"
)

type PostRepository interface {
	Create(ctx context.Context, userID, categoryID int64, title string, postType domain.PostType, content string) (*domain.Post, error)
	FindByID(ctx context.Context, id int64) (*domain.Post, error)
	FindByCategory(ctx context.Context, categoryID int64) ([]*domain.Post, error)
	FindByUser(ctx context.Context, userID int64) ([]*domain.Post, error)
	Save(ctx context.Context, post *domain.Post) (bool, error)
	Remove(ctx context.Context, id int64) (bool, error)
}
