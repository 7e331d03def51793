package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pvanham/quorum/internal/api/dto"
	"github.com/pvanham/quorum/internal/core/domain"
	"github.com/pvanham/quorum/internal/core/service"
)

// respond wraps a successful result in the message/payload envelope.
func respond(c *gin.Context, status int, message string, payload any) {
	c.JSON(status, dto.Envelope{Message: message, Payload: payload})
}

// respondError maps service errors onto HTTP statuses: validation failures
// become 400, missing entities 404, everything else 500.
func respondError(c *gin.Context, err error) {
	switch {
	case service.IsValidation(err):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	case service.IsNotFound(err):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "Not Found",
			Message: err.Error(),
			Code:    http.StatusNotFound,
		})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Internal Server Error",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
	}
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Bad Request",
		Message: message,
		Code:    http.StatusBadRequest,
	})
}

// pathID parses the :id path parameter. On failure it writes the error
// response and returns false.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondBadRequest(c, "Invalid ID: "+c.Param("id"))
		return 0, false
	}
	return id, true
}

func toUserResponse(user *domain.User) *dto.UserResponse {
	if user == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		PostScore:    user.PostScore,
		CommentScore: user.CommentScore,
		Avatar:       user.Avatar,
		CreatedAt:    user.CreatedAt,
		EditedAt:     user.EditedAt,
		DeletedAt:    user.DeletedAt,
	}
}

func toCategoryResponse(category *domain.Category) *dto.CategoryResponse {
	if category == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          category.ID,
		CreatedBy:   toUserResponse(category.CreatedBy),
		Title:       category.Title,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
		EditedAt:    category.EditedAt,
		DeletedAt:   category.DeletedAt,
	}
}

func toPostResponse(post *domain.Post) *dto.PostResponse {
	if post == nil {
		return nil
	}
	return &dto.PostResponse{
		ID:        post.ID,
		User:      toUserResponse(post.User),
		Category:  toCategoryResponse(post.Category),
		Title:     post.Title,
		Type:      string(post.Type),
		Content:   post.Content,
		CreatedAt: post.CreatedAt,
		EditedAt:  post.EditedAt,
		DeletedAt: post.DeletedAt,
	}
}

func toCommentResponse(comment *domain.Comment) *dto.CommentResponse {
	if comment == nil {
		return nil
	}
	resp := &dto.CommentResponse{
		ID:        comment.ID,
		User:      toUserResponse(comment.User),
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		EditedAt:  comment.EditedAt,
		DeletedAt: comment.DeletedAt,
	}
	if comment.Post != nil {
		resp.PostID = comment.Post.ID
	}
	if comment.Reply != nil {
		replyID := comment.Reply.ID
		resp.ReplyID = &replyID
	}
	return resp
}

func toCommentList(comments []*domain.Comment) dto.CommentListResponse {
	total := len(comments)
	resp := dto.CommentListResponse{
		Items: make([]dto.CommentResponse, total),
		Pagination: dto.PaginationInfo{
			Total:      total,
			Page:       1,
			PerPage:    total,
			TotalPages: 1,
		},
	}
	for i, comment := range comments {
		resp.Items[i] = *toCommentResponse(comment)
	}
	return resp
}

func toPostList(posts []*domain.Post) dto.PostListResponse {
	total := len(posts)
	resp := dto.PostListResponse{
		Items: make([]dto.PostResponse, total),
		Pagination: dto.PaginationInfo{
			Total:      total,
			Page:       1,
			PerPage:    total,
			TotalPages: 1,
		},
	}
	for i, post := range posts {
		resp.Items[i] = *toPostResponse(post)
	}
	return resp
}
