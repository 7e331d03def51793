package service

import (
	"context"
	"fmt"

	"github.com/pvanham/quorum/internal/core/domain"
	"github.com/pvanham/quorum/internal/core/repository"
)

// UserService is the User factory and lifecycle owner: it validates required
// fields, pre-checks uniqueness and only then reaches the generic gateway
// through the repository.
type UserService struct {
	users repository.UserRepository
	auth  *AuthService
}

func NewUserService(users repository.UserRepository, auth *AuthService) *UserService {
	return &UserService{users: users, auth: auth}
}

func (s *UserService) Create(ctx context.Context, username, email, password string) (*domain.User, error) {
	if username == "" {
		return nil, NewValidationError("Cannot create User: Missing username.")
	}
	if email == "" {
		return nil, NewValidationError("Cannot create User: Missing email.")
	}
	if password == "" {
		return nil, NewValidationError("Cannot create User: Missing password.")
	}

	existing, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, NewValidationError("Cannot create User: Username already exists.")
	}

	existing, err = s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, NewValidationError("Cannot create User: Email already exists.")
	}

	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, username, email, hash)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("failed to create user: no identity assigned")
	}

	return user, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NewNotFoundError("User", id)
	}
	return user, nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NewNotFoundError("User", username)
	}
	return user, nil
}

// Update persists pending setter mutations; password, when set, is written
// unconditionally by the gateway.
func (s *UserService) Update(ctx context.Context, user *domain.User) error {
	if user.Username == "" {
		return NewValidationError("Cannot update User: Missing username.")
	}
	if user.Email == "" {
		return NewValidationError("Cannot update User: Missing email.")
	}

	ok, err := s.users.Save(ctx, user)
	if err != nil {
		return err
	}
	if !ok {
		return NewNotFoundError("User", user.ID)
	}

	return nil
}

// Remove soft-deletes the user and returns it with deleted_at stamped. The
// row stays findable afterwards.
func (s *UserService) Remove(ctx context.Context, id int64) (*domain.User, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	ok, err := s.users.Remove(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NewNotFoundError("User", id)
	}

	return s.Get(ctx, id)
}
