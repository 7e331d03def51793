package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pvanham/quorum/internal/api/dto"
	"github.com/pvanham/quorum/internal/core/domain"
	"github.com/pvanham/quorum/internal/core/service"
)

type PostHandler struct {
	postService    *service.PostService
	commentService *service.CommentService
}

func NewPostHandler(postService *service.PostService, commentService *service.CommentService) *PostHandler {
	return &PostHandler{
		postService:    postService,
		commentService: commentService,
	}
}

// CreatePost handles POST /posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	post, err := h.postService.Create(
		c.Request.Context(),
		req.UserID,
		req.CategoryID,
		req.Title,
		domain.PostType(req.Type),
		req.Content,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Post created.", toPostResponse(post))
}

// GetPost handles GET /posts/:id
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	post, err := h.postService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Post found.", toPostResponse(post))
}

// ListPostComments handles GET /posts/:id/comments
func (h *PostHandler) ListPostComments(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if _, err := h.postService.Get(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	comments, err := h.commentService.ByPost(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCommentList(comments))
}

// UpdatePost handles PUT /posts/:id
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	post, err := h.postService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	if req.Title != nil {
		post.SetTitle(*req.Title)
	}
	if req.Content != nil {
		post.SetContent(*req.Content)
	}

	if err := h.postService.Update(c.Request.Context(), post); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Post updated.", toPostResponse(post))
}

// DeletePost handles DELETE /posts/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	post, err := h.postService.Remove(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Post deleted.", toPostResponse(post))
}
