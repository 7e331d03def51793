package repository

import (
	"context"

	"github.com/pvanham/quorum/internal/core/domain"
)

// UserRepository persists users. Find methods return (nil, nil) when no row
// matches; services decide whether that is a not-found error or just an
// absence check.
type UserRepository interface {
	Create(ctx context.Context, username, email, passwordHash string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// PasswordHash reads the stored credential hash for authentication.
	// The hash is never attached to a hydrated User.
	PasswordHash(ctx context.Context, username string) (string, error)
	Save(ctx context.Context, user *domain.User) (bool, error)
	Remove(ctx context.Context, id int64) (bool, error)
}
