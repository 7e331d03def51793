package service

import (
	"context"
	"fmt"

	"github.com/pvanham/quorum/internal/core/domain"
	"github.com/pvanham/quorum/internal/core/repository"
)

type CategoryService struct {
	categories repository.CategoryRepository
	users      repository.UserRepository
	posts      repository.PostRepository
}

func NewCategoryService(
	categories repository.CategoryRepository,
	users repository.UserRepository,
	posts repository.PostRepository,
) *CategoryService {
	return &CategoryService{categories: categories, users: users, posts: posts}
}

func (s *CategoryService) Create(ctx context.Context, createdBy int64, title, description string) (*domain.Category, error) {
	if createdBy <= 0 {
		return nil, NewValidationError("Cannot create Category: Invalid user ID.")
	}
	if title == "" {
		return nil, NewValidationError("Cannot create Category: Missing title.")
	}

	existing, err := s.categories.FindByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, NewValidationError("Cannot create Category: Title already exists.")
	}

	user, err := s.users.FindByID(ctx, createdBy)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NewValidationError("Cannot create Category: User does not exist with ID %d.", createdBy)
	}

	category, err := s.categories.Create(ctx, createdBy, title, description)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("failed to create category: no identity assigned")
	}

	return category, nil
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*domain.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, NewNotFoundError("Category", id)
	}
	return category, nil
}

func (s *CategoryService) GetByTitle(ctx context.Context, title string) (*domain.Category, error) {
	category, err := s.categories.FindByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, NewNotFoundError("Category", title)
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.FindAll(ctx)
}

// Posts returns every post filed under the category.
func (s *CategoryService) Posts(ctx context.Context, categoryID int64) ([]*domain.Post, error) {
	if _, err := s.Get(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.posts.FindByCategory(ctx, categoryID)
}

func (s *CategoryService) Update(ctx context.Context, category *domain.Category) error {
	if category.Title == "" {
		return NewValidationError("Cannot update Category: Missing title.")
	}

	ok, err := s.categories.Save(ctx, category)
	if err != nil {
		return err
	}
	if !ok {
		return NewNotFoundError("Category", category.ID)
	}

	return nil
}

func (s *CategoryService) Remove(ctx context.Context, id int64) (*domain.Category, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	ok, err := s.categories.Remove(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NewNotFoundError("Category", id)
	}

	return s.Get(ctx, id)
}
