package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"shopapi/internal/core/apperror"
	"shopapi/internal/domain/product"
	"shopapi/internal/infrastructure/http/v1/dto"
)

// ProductHandler serves the product catalog endpoints.
type ProductHandler struct {
	*BaseHandler
	service *product.Service
}

// NewProductHandler creates a new product handler.
func NewProductHandler(base *BaseHandler, service *product.Service) *ProductHandler {
	return &ProductHandler{BaseHandler: base, service: service}
}

// List handles GET /api/products
func (h *ProductHandler) List(c *gin.Context) {
	items, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromProducts(items))
}

// Get handles GET /api/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}
	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromProduct(p))
}

// Create handles POST /api/products
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !h.BindJSON(c, &req) {
		return
	}
	p, err := h.service.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromProduct(p))
}

// Update handles PUT /api/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateProductRequest
	if !h.BindJSON(c, &req) {
		return
	}
	p, err := h.service.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromProduct(p))
}

// Delete handles DELETE /api/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
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
		h.Error(c, apperror.NewNotFound("product", id))
		return
	}
	h.NoContent(c)
}

// ByCategory handles GET /api/products/category/:categoryId
func (h *ProductHandler) ByCategory(c *gin.Context) {
	categoryID, ok := h.ParseIDParam(c, "categoryId")
	if !ok {
		return
	}
	items, err := h.service.ByCategory(c.Request.Context(), categoryID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromProducts(items))
}

// Search handles GET /api/products/search?term=
func (h *ProductHandler) Search(c *gin.Context) {
	items, err := h.service.Search(c.Request.Context(), c.Query("term"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromProducts(items))
}

// FilterByPrice handles GET /api/products/filter?minPrice=&maxPrice=
func (h *ProductHandler) FilterByPrice(c *gin.Context) {
	min, err := decimal.NewFromString(c.DefaultQuery("minPrice", "0"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid minPrice").WithDetail("minPrice", c.Query("minPrice")))
		return
	}
	max, err := decimal.NewFromString(c.DefaultQuery("maxPrice", "0"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid maxPrice").WithDetail("maxPrice", c.Query("maxPrice")))
		return
	}

	items, err := h.service.FilterByPrice(c.Request.Context(), min, max)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromProducts(items))
}

// SortByPrice handles GET /api/products/sort/price
func (h *ProductHandler) SortByPrice(c *gin.Context) {
	items, err := h.service.SortByPriceDesc(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromProducts(items))
}
