package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pvanham/quorum/internal/api/dto"
	"github.com/pvanham/quorum/internal/core/service"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
}

func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// CreateCategory handles POST /categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), req.CreatedBy, req.Title, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Category created.", toCategoryResponse(category))
}

// GetCategory handles GET /categories/:id
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	category, err := h.categoryService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Category found.", toCategoryResponse(category))
}

// ListCategories handles GET /categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	total := len(categories)
	response := dto.CategoryListResponse{
		Items: make([]dto.CategoryResponse, total),
		Pagination: dto.PaginationInfo{
			Total:      total,
			Page:       1,
			PerPage:    total,
			TotalPages: 1,
		},
	}
	for i, category := range categories {
		response.Items[i] = *toCategoryResponse(category)
	}

	c.JSON(http.StatusOK, response)
}

// ListCategoryPosts handles GET /categories/:id/posts
func (h *CategoryHandler) ListCategoryPosts(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	posts, err := h.categoryService.Posts(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPostList(posts))
}

// UpdateCategory handles PUT /categories/:id
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	category, err := h.categoryService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	if req.Title != nil {
		category.SetTitle(*req.Title)
	}
	if req.Description != nil {
		category.SetDescription(*req.Description)
	}

	if err := h.categoryService.Update(c.Request.Context(), category); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Category updated.", toCategoryResponse(category))
}

// DeleteCategory handles DELETE /categories/:id
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	category, err := h.categoryService.Remove(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Category deleted.", toCategoryResponse(category))
}
