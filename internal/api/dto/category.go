package dto

import "time"

// CreateCategoryRequest represents the category creation request
type CreateCategoryRequest struct {
	CreatedBy   int64  `json:"created_by"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateCategoryRequest represents the category update request
type UpdateCategoryRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// CategoryResponse represents a category with its creator resolved
type CategoryResponse struct {
	ID          int64         `json:"id"`
	CreatedBy   *UserResponse `json:"created_by"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	CreatedAt   time.Time     `json:"created_at"`
	EditedAt    *time.Time    `json:"edited_at"`
	DeletedAt   *time.Time    `json:"deleted_at"`
}

// CategoryListResponse represents a list of categories
type CategoryListResponse struct {
	Items      []CategoryResponse `json:"items"`
	Pagination PaginationInfo     `json:"pagination"`
}
