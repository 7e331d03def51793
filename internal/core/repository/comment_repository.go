package repository

import (
	"context"

	"github.com/pvanham/quorum/internal/core/domain"
)

type CommentRepository interface {
	// Create persists a comment; replyID is nil for tree roots.
	Create(ctx context.Context, postID, userID int64, content string, replyID *int64) (*domain.Comment, error)
	FindByID(ctx context.Context, id int64) (*domain.Comment, error)
	// FindReplies returns the direct children of a comment, in storage order.
	FindReplies(ctx context.Context, replyID int64) ([]*domain.Comment, error)
	FindByUser(ctx context.Context, userID int64) ([]*domain.Comment, error)
	FindByPost(ctx context.Context, postID int64) ([]*domain.Comment, error)
	Save(ctx context.Context, comment *domain.Comment) (bool, error)
	Remove(ctx context.Context, id int64) (bool, error)
}
