package service

import (
	"context"
	"fmt"

	"github.com/pvanham/quorum/internal/core/domain"
	"github.com/pvanham/quorum/internal/core/repository"
)

type CommentService struct {
	comments repository.CommentRepository
	users    repository.UserRepository
	posts    repository.PostRepository
}

func NewCommentService(
	comments repository.CommentRepository,
	users repository.UserRepository,
	posts repository.PostRepository,
) *CommentService {
	return &CommentService{comments: comments, users: users, posts: posts}
}

func (s *CommentService) Create(ctx context.Context, postID, userID int64, content string, replyID *int64) (*domain.Comment, error) {
	if content == "" {
		return nil, NewValidationError("Cannot create Comment: Missing content.")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NewValidationError("Cannot create Comment: User does not exist with ID %d.", userID)
	}

	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, NewValidationError("Cannot create Comment: Post does not exist with ID %d.", postID)
	}

	if replyID != nil {
		parent, err := s.comments.FindByID(ctx, *replyID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, NewValidationError("Cannot create Comment: Reply does not exist with ID %d.", *replyID)
		}
	}

	comment, err := s.comments.Create(ctx, postID, userID, content, replyID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, fmt.Errorf("failed to create comment: no identity assigned")
	}

	return comment, nil
}

func (s *CommentService) Get(ctx context.Context, id int64) (*domain.Comment, error) {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, NewNotFoundError("Comment", id)
	}
	return comment, nil
}

func (s *CommentService) ByUser(ctx context.Context, userID int64) ([]*domain.Comment, error) {
	return s.comments.FindByUser(ctx, userID)
}

func (s *CommentService) ByPost(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	return s.comments.FindByPost(ctx, postID)
}

// Replies resolves the reply tree below a comment: the requested comment
// plus every transitively reachable reply, depth-first in encounter order.
// Each node's Replies field is populated with its direct children. The
// reply relation is acyclic by construction; a revisited id means corrupt
// data and is a fatal consistency error, not an infinite loop.
func (s *CommentService) Replies(ctx context.Context, id int64) ([]*domain.Comment, error) {
	root, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	visited := map[int64]bool{root.ID: true}
	tree := []*domain.Comment{root}

	var resolve func(parent *domain.Comment) error
	resolve = func(parent *domain.Comment) error {
		children, err := s.comments.FindReplies(ctx, parent.ID)
		if err != nil {
			return err
		}

		parent.SetReplies(children)

		for _, child := range children {
			if visited[child.ID] {
				return fmt.Errorf("reply cycle detected at comment %d", child.ID)
			}
			visited[child.ID] = true
			tree = append(tree, child)

			if err := resolve(child); err != nil {
				return err
			}
		}

		return nil
	}

	if err := resolve(root); err != nil {
		return nil, err
	}

	return tree, nil
}

func (s *CommentService) Update(ctx context.Context, comment *domain.Comment) error {
	if comment.Content == "" {
		return NewValidationError("Cannot update Comment: Missing content.")
	}

	ok, err := s.comments.Save(ctx, comment)
	if err != nil {
		return err
	}
	if !ok {
		return NewNotFoundError("Comment", comment.ID)
	}

	return nil
}

func (s *CommentService) Remove(ctx context.Context, id int64) (*domain.Comment, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	ok, err := s.comments.Remove(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NewNotFoundError("Comment", id)
	}

	return s.Get(ctx, id)
}
