package service

import (
	"context"
	"fmt"

	"github.com/pvanham/quorum/internal/core/domain"
	"github.com/pvanham/quorum/internal/core/repository"
)

type PostService struct {
	posts      repository.PostRepository
	users      repository.UserRepository
	categories repository.CategoryRepository
}

func NewPostService(
	posts repository.PostRepository,
	users repository.UserRepository,
	categories repository.CategoryRepository,
) *PostService {
	return &PostService{posts: posts, users: users, categories: categories}
}

func (s *PostService) Create(ctx context.Context, userID, categoryID int64, title string, postType domain.PostType, content string) (*domain.Post, error) {
	if title == "" {
		return nil, NewValidationError("Cannot create Post: Missing title.")
	}
	if postType == "" {
		return nil, NewValidationError("Cannot create Post: Missing type.")
	}
	if !postType.Valid() {
		return nil, NewValidationError("Cannot create Post: Type must be 'Text' or 'URL'.")
	}
	if content == "" {
		return nil, NewValidationError("Cannot create Post: Missing content.")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NewValidationError("Cannot create Post: User does not exist with ID %d.", userID)
	}

	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, NewValidationError("Cannot create Post: Category does not exist with ID %d.", categoryID)
	}

	post, err := s.posts.Create(ctx, userID, categoryID, title, postType, content)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, fmt.Errorf("failed to create post: no identity assigned")
	}

	return post, nil
}

func (s *PostService) Get(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, NewNotFoundError("Post", id)
	}
	return post, nil
}

func (s *PostService) ByUser(ctx context.Context, userID int64) ([]*domain.Post, error) {
	return s.posts.FindByUser(ctx, userID)
}

// Update persists pending setter mutations. URL posts are immutable once
// created; only text posts may be edited.
func (s *PostService) Update(ctx context.Context, post *domain.Post) error {
	if post.Type == domain.PostTypeURL {
		return NewValidationError("Cannot update Post: Only text posts are updateable.")
	}
	if post.Content == "" {
		return NewValidationError("Cannot update Post: Missing content.")
	}

	ok, err := s.posts.Save(ctx, post)
	if err != nil {
		return err
	}
	if !ok {
		return NewNotFoundError("Post", post.ID)
	}

	return nil
}

func (s *PostService) Remove(ctx context.Context, id int64) (*domain.Post, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	ok, err := s.posts.Remove(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NewNotFoundError("Post", id)
	}

	return s.Get(ctx, id)
}
