package handlers

import (
	"github.com/gin-gonic/gin"

	"shopapi/internal/core/apperror"
	"shopapi/internal/domain/user"
	"shopapi/internal/infrastructure/http/v1/dto"
)

// UserHandler serves the administrative user endpoints.
type UserHandler struct {
	*BaseHandler
	service *user.Service
}

// NewUserHandler creates a new user handler.
func NewUserHandler(base *BaseHandler, service *user.Service) *UserHandler {
	return &UserHandler{BaseHandler: base, service: service}
}

// List handles GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	items, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromUsers(items))
}

// Get handles GET /api/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}
	u, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromUser(u))
}

// Create handles POST /api/users
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if !h.BindJSON(c, &req) {
		return
	}
	u, err := h.service.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromUser(u))
}

// Update handles PUT /api/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !h.BindJSON(c, &req) {
		return
	}
	u, err := h.service.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromUser(u))
}

// Delete handles DELETE /api/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
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
		h.Error(c, apperror.NewNotFound("user", id))
		return
	}
	h.NoContent(c)
}
