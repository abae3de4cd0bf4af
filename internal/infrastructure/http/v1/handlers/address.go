package handlers

import (
	"github.com/gin-gonic/gin"

	"shopapi/internal/core/apperror"
	"shopapi/internal/domain/address"
	"shopapi/internal/infrastructure/http/v1/dto"
)

// AddressHandler serves the address endpoints.
type AddressHandler struct {
	*BaseHandler
	service *address.Service
}

// NewAddressHandler creates a new address handler.
func NewAddressHandler(base *BaseHandler, service *address.Service) *AddressHandler {
	return &AddressHandler{BaseHandler: base, service: service}
}

// List handles GET /api/addresses
func (h *AddressHandler) List(c *gin.Context) {
	items, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromAddresses(items))
}

// Get handles GET /api/addresses/:id
func (h *AddressHandler) Get(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}
	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromAddress(a))
}

// ByUser handles GET /api/addresses/user/:userId
func (h *AddressHandler) ByUser(c *gin.Context) {
	userID, ok := h.ParseIDParam(c, "userId")
	if !ok {
		return
	}
	items, err := h.service.ByUser(c.Request.Context(), userID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromAddresses(items))
}

// Create handles POST /api/addresses
func (h *AddressHandler) Create(c *gin.Context) {
	var req dto.CreateAddressRequest
	if !h.BindJSON(c, &req) {
		return
	}
	a, err := h.service.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromAddress(a))
}

// Update handles PUT /api/addresses/:id
func (h *AddressHandler) Update(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateAddressRequest
	if !h.BindJSON(c, &req) {
		return
	}
	a, err := h.service.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromAddress(a))
}

// Delete handles DELETE /api/addresses/:id
func (h *AddressHandler) Delete(c *gin.Context) {
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
		h.Error(c, apperror.NewNotFound("address", id))
		return
	}
	h.NoContent(c)
}
