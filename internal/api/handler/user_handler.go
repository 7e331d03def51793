package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pvanham/quorum/internal/api/dto"
	"github.com/pvanham/quorum/internal/core/service"
)

type UserHandler struct {
	userService    *service.UserService
	postService    *service.PostService
	commentService *service.CommentService
}

func NewUserHandler(
	userService *service.UserService,
	postService *service.PostService,
	commentService *service.CommentService,
) *UserHandler {
	return &UserHandler{
		userService:    userService,
		postService:    postService,
		commentService: commentService,
	}
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	user, err := h.userService.Create(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "User created.", toUserResponse(user))
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "User found.", toUserResponse(user))
}

// UpdateUser handles PUT /users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	user, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	if req.Username != nil {
		user.SetUsername(*req.Username)
	}
	if req.Email != nil {
		user.SetEmail(*req.Email)
	}
	if req.Password != nil {
		user.SetPassword(*req.Password)
	}
	if req.Avatar != nil {
		user.SetAvatar(req.Avatar)
	}

	if err := h.userService.Update(c.Request.Context(), user); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "User updated.", toUserResponse(user))
}

// DeleteUser handles DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.userService.Remove(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "User deleted.", toUserResponse(user))
}

// ListUserPosts handles GET /users/:id/posts
func (h *UserHandler) ListUserPosts(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if _, err := h.userService.Get(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	posts, err := h.postService.ByUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPostList(posts))
}

// ListUserComments handles GET /users/:id/comments
func (h *UserHandler) ListUserComments(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if _, err := h.userService.Get(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	comments, err := h.commentService.ByUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCommentList(comments))
}
