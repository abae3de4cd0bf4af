package handlers

import (
	"github.com/gin-gonic/gin"

	"shopapi/internal/core/apperror"
	"shopapi/internal/domain/category"
	"shopapi/internal/infrastructure/http/v1/dto"
)

// CategoryHandler serves the category endpoints.
type CategoryHandler struct {
	*BaseHandler
	service *category.Service
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(base *BaseHandler, service *category.Service) *CategoryHandler {
	return &CategoryHandler{BaseHandler: base, service: service}
}

// List handles GET /api/categories
func (h *CategoryHandler) List(c *gin.Context) {
	items, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromCategories(items))
}

// Get handles GET /api/categories/:id
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}
	cat, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromCategory(cat))
}

// Create handles POST /api/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !h.BindJSON(c, &req) {
		return
	}
	cat, err := h.service.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromCategory(cat))
}

// Update handles PUT /api/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateCategoryRequest
	if !h.BindJSON(c, &req) {
		return
	}
	cat, err := h.service.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromCategory(cat))
}

// Delete handles DELETE /api/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}
	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	if !deleted {
		h.Error(c, apperror.NewNotFound("category", id))
		return
	}
	h.NoContent(c)
}
