package dto

import "time"

// CreateCommentRequest represents the comment creation request. ReplyID,
// when set, makes the comment a reply to another comment on the same post.
type CreateCommentRequest struct {
	PostID  int64  `json:"post_id"`
	UserID  int64  `json:"user_id"`
	Content string `json:"content"`
	ReplyID *int64 `json:"reply_id"`
}

// UpdateCommentRequest represents the comment update request
type UpdateCommentRequest struct {
	Content *string `json:"content"`
}

// CommentResponse represents a comment. Replies holds the direct children
// when the comment was fetched as part of a reply tree.
type CommentResponse struct {
	ID        int64              `json:"id"`
	User      *UserResponse      `json:"user"`
	PostID    int64              `json:"post_id"`
	ReplyID   *int64             `json:"reply_id"`
	Content   string             `json:"content"`
	Replies   []*CommentResponse `json:"replies,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	EditedAt  *time.Time         `json:"edited_at"`
	DeletedAt *time.Time         `json:"deleted_at"`
}

// CommentListResponse represents a list of comments
type CommentListResponse struct {
	Items      []CommentResponse `json:"items"`
	Pagination PaginationInfo    `json:"pagination"`
}
