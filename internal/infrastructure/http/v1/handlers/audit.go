package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"shopapi/internal/core/apperror"
	"shopapi/internal/infrastructure/http/v1/dto"
	"shopapi/internal/infrastructure/storage/postgres"
)

// AuditHandler serves the change history endpoints.
type AuditHandler struct {
	*BaseHandler
}

// NewAuditHandler creates a new audit handler.
func NewAuditHandler(base *BaseHandler) *AuditHandler {
	return &AuditHandler{BaseHandler: base}
}

// Trail handles GET /api/audit/:entityType/:id
func (h *AuditHandler) Trail(c *gin.Context) {
	entityType := strings.TrimSpace(c.Param("entityType"))
	if entityType == "" {
		h.Error(c, apperror.NewValidation("entityType is required"))
		return
	}
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	uow := postgres.MustGetUnitOfWork(c.Request.Context())
	entries, err := uow.AuditTrail(c.Request.Context(), entityType, id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromAuditEntries(entries))
}
