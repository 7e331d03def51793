package sqlite

import (
	"context"

	"github.com/pvanham/quorum/internal/core/domain"
	"github.com/pvanham/quorum/internal/core/repository"
	"github.com/pvanham/quorum/internal/persistence"
)

type commentRepository struct {
	gateway *persistence.Gateway
}

func NewCommentRepository(gateway *persistence.Gateway) repository.CommentRepository {
	return &commentRepository{gateway: gateway}
}

var commentSetters = map[string]func(*domain.Comment, any){
	"content":    func(c *domain.Comment, v any) { c.SetContent(asString(v)) },
	"id":         func(c *domain.Comment, v any) { c.ID = asInt64(v) },
	"created_at": func(c *domain.Comment, v any) { c.CreatedAt = asTime(v) },
	"edited_at":  func(c *domain.Comment, v any) { c.EditedAt = asNullTime(v) },
	"deleted_at": func(c *domain.Comment, v any) { c.DeletedAt = asNullTime(v) },
}

// hydrateComment resolves user, post and the parent comment. Resolving the
// parent walks the reply chain up to its root; the chain is acyclic by
// construction (a reply always references an earlier comment).
func hydrateComment(ctx context.Context, g *persistence.Gateway, row persistence.Row) (*domain.Comment, error) {
	if len(row) == 0 {
		return nil, nil
	}

	c := &domain.Comment{}
	for column, set := range commentSetters {
		if v, ok := row[column]; ok && v != nil {
			set(c, v)
		}
	}

	if userID := asInt64(row["user_id"]); userID != 0 {
		userRow, err := g.FindBy(ctx, domain.UserDescriptor(), "id", userID)
		if err != nil {
			return nil, err
		}
		c.SetUser(hydrateUser(userRow))
	}

	if postID := asInt64(row["post_id"]); postID != 0 {
		postRow, err := g.FindBy(ctx, domain.PostDescriptor(), "id", postID)
		if err != nil {
			return nil, err
		}
		post, err := hydratePost(ctx, g, postRow)
		if err != nil {
			return nil, err
		}
		c.SetPost(post)
	}

	if replyID := asInt64(row["reply_id"]); replyID != 0 {
		replyRow, err := g.FindBy(ctx, domain.CommentDescriptor(), "id", replyID)
		if err != nil {
			return nil, err
		}
		reply, err := hydrateComment(ctx, g, replyRow)
		if err != nil {
			return nil, err
		}
		c.SetReply(reply)
	}

	c.Snapshot()

	return c, nil
}

func (r *commentRepository) Create(ctx context.Context, postID, userID int64, content string, replyID *int64) (*domain.Comment, error) {
	fields := persistence.Row{
		"user_id": userID,
		"post_id": postID,
		"content": content,
	}
	if replyID != nil {
		fields["reply_id"] = *replyID
	} else {
		fields["reply_id"] = nil
	}

	id, err := r.gateway.Create(ctx, domain.CommentDescriptor(), fields)
	if err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, nil
	}

	return r.FindByID(ctx, id)
}

func (r *commentRepository) FindByID(ctx context.Context, id int64) (*domain.Comment, error) {
	row, err := r.gateway.FindBy(ctx, domain.CommentDescriptor(), "id", id)
	if err != nil {
		return nil, err
	}
	return hydrateComment(ctx, r.gateway, row)
}

func (r *commentRepository) FindReplies(ctx context.Context, replyID int64) ([]*domain.Comment, error) {
	return r.findAllBy(ctx, "reply_id", replyID)
}

func (r *commentRepository) FindByUser(ctx context.Context, userID int64) ([]*domain.Comment, error) {
	return r.findAllBy(ctx, "user_id", userID)
}

func (r *commentRepository) FindByPost(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	return r.findAllBy(ctx, "post_id", postID)
}

func (r *commentRepository) findAllBy(ctx context.Context, column string, value any) ([]*domain.Comment, error) {
	rows, err := r.gateway.FindAllBy(ctx, domain.CommentDescriptor(), column, value)
	if err != nil {
		return nil, err
	}

	comments := make([]*domain.Comment, 0, len(rows))
	for _, row := range rows {
		c, err := hydrateComment(ctx, r.gateway, row)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	return comments, nil
}

func (r *commentRepository) Save(ctx context.Context, comment *domain.Comment) (bool, error) {
	return r.gateway.Save(ctx, comment)
}

func (r *commentRepository) Remove(ctx context.Context, id int64) (bool, error) {
	return r.gateway.Remove(ctx, domain.CommentDescriptor(), "id", id)
}
