package dto

import "time"

// CreatePostRequest represents the post creation request
type CreatePostRequest struct {
	UserID     int64  `json:"user_id"`
	CategoryID int64  `json:"category_id"`
	Title      string `json:"title"`
	Type       string `json:"type"`
	Content    string `json:"content"`
}

// UpdatePostRequest represents the post update request
type UpdatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// PostResponse represents a post with its author and category resolved
type PostResponse struct {
	ID        int64             `json:"id"`
	User      *UserResponse     `json:"user"`
	Category  *CategoryResponse `json:"category"`
	Title     string            `json:"title"`
	Type      string            `json:"type"`
	Content   string            `json:"content"`
	CreatedAt time.Time         `json:"created_at"`
	EditedAt  *time.Time        `json:"edited_at"`
	DeletedAt *time.Time        `json:"deleted_at"`
}

// PostListResponse represents a list of posts
type PostListResponse struct {
	Items      []PostResponse `json:"items"`
	Pagination PaginationInfo `json:"pagination"`
}
