package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pvanham/quorum/internal/api/dto"
	"github.com/pvanham/quorum/internal/core/service"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// CreateComment handles POST /comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), req.PostID, req.UserID, req.Content, req.ReplyID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Comment created.", toCommentResponse(comment))
}

// GetComment handles GET /comments/:id
func (h *CommentHandler) GetComment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	comment, err := h.commentService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Comment found.", toCommentResponse(comment))
}

// ListReplies handles GET /comments/:id/replies. The response lists the
// requested comment first, followed by every transitive reply in
// depth-first order.
func (h *CommentHandler) ListReplies(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	tree, err := h.commentService.Replies(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCommentList(tree))
}

// UpdateComment handles PUT /comments/:id
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	comment, err := h.commentService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	if req.Content != nil {
		comment.SetContent(*req.Content)
	}

	if err := h.commentService.Update(c.Request.Context(), comment); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Comment updated.", toCommentResponse(comment))
}

// DeleteComment handles DELETE /comments/:id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	comment, err := h.commentService.Remove(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Comment deleted.", toCommentResponse(comment))
}
