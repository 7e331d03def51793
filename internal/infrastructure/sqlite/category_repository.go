package sqlite

import (
	"context"

	"github.com/pvanham/quorum/internal/core/domain"
	"github.com/pvanham/quorum/internal/core/repository"
	"github.com/pvanham/quorum/internal/persistence"
)

type categoryRepository struct {
	gateway *persistence.Gateway
}

func NewCategoryRepository(gateway *persistence.Gateway) repository.CategoryRepository {
	return &categoryRepository{gateway: gateway}
}

var categorySetters = map[string]func(*domain.Category, any){
	"title":       func(c *domain.Category, v any) { c.SetTitle(asString(v)) },
	"description": func(c *domain.Category, v any) { c.SetDescription(asString(v)) },
	"id":          func(c *domain.Category, v any) { c.ID = asInt64(v) },
	"created_at":  func(c *domain.Category, v any) { c.CreatedAt = asTime(v) },
	"edited_at":   func(c *domain.Category, v any) { c.EditedAt = asNullTime(v) },
	"deleted_at":  func(c *domain.Category, v any) { c.DeletedAt = asNullTime(v) },
}

// hydrateCategory resolves the created_by scalar into its User before the
// baseline snapshot is taken, so the snapshot holds the reference identity.
func hydrateCategory(ctx context.Context, g *persistence.Gateway, row persistence.Row) (*domain.Category, error) {
	if len(row) == 0 {
		return nil, nil
	}

	c := &domain.Category{}
	for column, set := range categorySetters {
		if v, ok := row[column]; ok && v != nil {
			set(c, v)
		}
	}

	if userID := asInt64(row["created_by"]); userID != 0 {
		userRow, err := g.FindBy(ctx, domain.UserDescriptor(), "id", userID)
		if err != nil {
			return nil, err
		}
		c.SetCreatedBy(hydrateUser(userRow))
	}

	c.Snapshot()

	return c, nil
}

func (r *categoryRepository) Create(ctx context.Context, createdBy int64, title, description string) (*domain.Category, error) {
	fields := persistence.Row{
		"created_by":  createdBy,
		"title":       title,
		"description": description,
	}

	id, err := r.gateway.Create(ctx, domain.CategoryDescriptor(), fields)
	if err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, nil
	}

	return r.FindByID(ctx, id)
}

func (r *categoryRepository) FindByID(ctx context.Context, id int64) (*domain.Category, error) {
	row, err := r.gateway.FindBy(ctx, domain.CategoryDescriptor(), "id", id)
	if err != nil {
		return nil, err
	}
	return hydrateCategory(ctx, r.gateway, row)
}

func (r *categoryRepository) FindByTitle(ctx context.Context, title string) (*domain.Category, error) {
	row, err := r.gateway.FindBy(ctx, domain.CategoryDescriptor(), "title", title)
	if err != nil {
		return nil, err
	}
	return hydrateCategory(ctx, r.gateway, row)
}

func (r *categoryRepository) FindAll(ctx context.Context) ([]*domain.Category, error) {
	rows, err := r.gateway.FindAll(ctx, domain.CategoryDescriptor())
	if err != nil {
		return nil, err
	}

	categories := make([]*domain.Category, 0, len(rows))
	for _, row := range rows {
		c, err := hydrateCategory(ctx, r.gateway, row)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, nil
}

func (r *categoryRepository) Save(ctx context.Context, category *domain.Category) (bool, error) {
	return r.gateway.Save(ctx, category)
}

func (r *categoryRepository) Remove(ctx context.Context, id int64) (bool, error) {
	return r.gateway.Remove(ctx, domain.CategoryDescriptor(), "id", id)
}
