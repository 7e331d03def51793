package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pvanham/quorum/internal/core/domain"
	"github.com/pvanham/quorum/internal/core/repository"
	"github.com/pvanham/quorum/internal/persistence"
)

type userRepository struct {
	db      *DB
	gateway *persistence.Gateway
}

func NewUserRepository(db *DB, gateway *persistence.Gateway) repository.UserRepository {
	return &userRepository{db: db, gateway: gateway}
}

// userSetters dispatches a raw column value to its typed setter. The table
// is built once per type; no setter is ever resolved by name at call time.
var userSetters = map[string]func(*domain.User, any){
	"username":      func(u *domain.User, v any) { u.SetUsername(asString(v)) },
	"email":         func(u *domain.User, v any) { u.SetEmail(asString(v)) },
	"post_score":    func(u *domain.User, v any) { u.SetPostScore(int(asInt64(v))) },
	"comment_score": func(u *domain.User, v any) { u.SetCommentScore(int(asInt64(v))) },
	"avatar":        func(u *domain.User, v any) { u.SetAvatar(asNullString(v)) },
	"id":            func(u *domain.User, v any) { u.ID = asInt64(v) },
	"created_at":    func(u *domain.User, v any) { u.CreatedAt = asTime(v) },
	"edited_at":     func(u *domain.User, v any) { u.EditedAt = asNullTime(v) },
	"deleted_at":    func(u *domain.User, v any) { u.DeletedAt = asNullTime(v) },
}

// hydrateUser turns a raw field-set into a typed User, defaulting absent
// fields, and records the diff baseline. Returns nil for an empty field-set.
func hydrateUser(row persistence.Row) *domain.User {
	if len(row) == 0 {
		return nil
	}

	u := &domain.User{}
	for column, set := range userSetters {
		if v, ok := row[column]; ok && v != nil {
			set(u, v)
		}
	}
	u.Snapshot()

	return u
}

func (r *userRepository) Create(ctx context.Context, username, email, passwordHash string) (*domain.User, error) {
	fields := persistence.Row{
		"username": username,
		"email":    email,
		"password": passwordHash,
	}

	id, err := r.gateway.Create(ctx, domain.UserDescriptor(), fields)
	if err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, nil
	}

	return r.FindByID(ctx, id)
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	row, err := r.gateway.FindBy(ctx, domain.UserDescriptor(), "id", id)
	if err != nil {
		return nil, err
	}
	return hydrateUser(row), nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	row, err := r.gateway.FindBy(ctx, domain.UserDescriptor(), "username", username)
	if err != nil {
		return nil, err
	}
	return hydrateUser(row), nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	row, err := r.gateway.FindBy(ctx, domain.UserDescriptor(), "email", email)
	if err != nil {
		return nil, err
	}
	return hydrateUser(row), nil
}

// PasswordHash is the one credential read in the repository; the password
// column is excluded from the descriptor so no generic select returns it.
func (r *userRepository) PasswordHash(ctx context.Context, username string) (string, error) {
	var hash string
	err := r.db.GetContext(ctx, &hash, "SELECT password FROM user WHERE username = ?", username)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("user not found: %s", username)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read credential: %w", err)
	}
	return hash, nil
}

func (r *userRepository) Save(ctx context.Context, user *domain.User) (bool, error) {
	ok, err := r.gateway.Save(ctx, user)
	if err != nil {
		return false, err
	}
	if ok {
		user.ClearSecret()
	}
	return ok, nil
}

func (r *userRepository) Remove(ctx context.Context, id int64) (bool, error) {
	return r.gateway.Remove(ctx, domain.UserDescriptor(), "id", id)
}
