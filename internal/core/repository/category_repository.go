package repository

import (
	"context"

	"github.com/pvanham/quorum/internal/core/domain"
)

type CategoryRepository interface {
	Create(ctx context.Context, createdBy int64, title, description string) (*domain.Category, error)
	FindByID(ctx context.Context, id int64) (*domain.Category, error)
	FindByTitle(ctx context.Context, title string) (*domain.Category, error)
	FindAll(ctx context.Context) ([]*domain.Category, error)
	Save(ctx context.Context, category *domain.Category) (bool, error)
	Remove(ctx context.Context, id int64) (bool, error)
}
