package sqlite

import (
	"context"

	"github.com/pvanham/quorum/internal/core/domain"
	"github.com/pvanham/quorum/internal/core/repository"
	"github.com/pvanham/quorum/internal/persistence"
)

type postRepository struct {
	gateway *persistence.Gateway
}

func NewPostRepository(gateway *persistence.Gateway) repository.PostRepository {
	return &postRepository{gateway: gateway}
}

var postSetters = map[string]func(*domain.Post, any){
	"title":      func(p *domain.Post, v any) { p.SetTitle(asString(v)) },
	"type":       func(p *domain.Post, v any) { p.SetType(domain.PostType(asString(v))) },
	"content":    func(p *domain.Post, v any) { p.SetContent(asString(v)) },
	"id":         func(p *domain.Post, v any) { p.ID = asInt64(v) },
	"created_at": func(p *domain.Post, v any) { p.CreatedAt = asTime(v) },
	"edited_at":  func(p *domain.Post, v any) { p.EditedAt = asNullTime(v) },
	"deleted_at": func(p *domain.Post, v any) { p.DeletedAt = asNullTime(v) },
}

func hydratePost(ctx context.Context, g *persistence.Gateway, row persistence.Row) (*domain.Post, error) {
	if len(row) == 0 {
		return nil, nil
	}

	p := &domain.Post{}
	for column, set := range postSetters {
		if v, ok := row[column]; ok && v != nil {
			set(p, v)
		}
	}

	if userID := asInt64(row["user_id"]); userID != 0 {
		userRow, err := g.FindBy(ctx, domain.UserDescriptor(), "id", userID)
		if err != nil {
			return nil, err
		}
		p.SetUser(hydrateUser(userRow))
	}

	if categoryID := asInt64(row["category_id"]); categoryID != 0 {
		categoryRow, err := g.FindBy(ctx, domain.CategoryDescriptor(), "id", categoryID)
		if err != nil {
			return nil, err
		}
		category, err := hydrateCategory(ctx, g, categoryRow)
		if err != nil {
			return nil, err
		}
		p.SetCategory(category)
	}

	p.Snapshot()

	return p, nil
}

func (r *postRepository) Create(ctx context.Context, userID, categoryID int64, title string, postType domain.PostType, content string) (*domain.Post, error) {
	fields := persistence.Row{
		"user_id":     userID,
		"category_id": categoryID,
		"title":       title,
		"type":        string(postType),
		"content":     content,
	}

	id, err := r.gateway.Create(ctx, domain.PostDescriptor(), fields)
	if err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, nil
	}

	return r.FindByID(ctx, id)
}

func (r *postRepository) FindByID(ctx context.Context, id int64) (*domain.Post, error) {
	row, err := r.gateway.FindBy(ctx, domain.PostDescriptor(), "id", id)
	if err != nil {
		return nil, err
	}
	return hydratePost(ctx, r.gateway, row)
}

func (r *postRepository) FindByCategory(ctx context.Context, categoryID int64) ([]*domain.Post, error) {
	return r.findAllBy(ctx, "category_id", categoryID)
}

func (r *postRepository) FindByUser(ctx context.Context, userID int64) ([]*domain.Post, error) {
	return r.findAllBy(ctx, "user_id", userID)
}

func (r *postRepository) findAllBy(ctx context.Context, column string, value any) ([]*domain.Post, error) {
	rows, err := r.gateway.FindAllBy(ctx, domain.PostDescriptor(), column, value)
	if err != nil {
		return nil, err
	}

	posts := make([]*domain.Post, 0, len(rows))
	for _, row := range rows {
		p, err := hydratePost(ctx, r.gateway, row)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}

	return posts, nil
}

func (r *postRepository) Save(ctx context.Context, post *domain.Post) (bool, error) {
	return r.gateway.Save(ctx, post)
}

func (r *postRepository) Remove(ctx context.Context, id int64) (bool, error) {
	return r.gateway.Remove(ctx, domain.PostDescriptor(), "id", id)
}
