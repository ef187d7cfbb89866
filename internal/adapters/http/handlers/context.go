package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pmhub/secctx/internal/adapters/http/dto"
	"github.com/pmhub/secctx/internal/app"
)

// ContextHandler exposes the caller's security context.
type ContextHandler struct {
	profiles *app.ProfileService
	audit    *app.AuditService
}

// NewContextHandler creates a new context handler.
func NewContextHandler(profiles *app.ProfileService, audit *app.AuditService) *ContextHandler {
	return &ContextHandler{
		profiles: profiles,
		audit:    audit,
	}
}

// Me handles GET /api/v1/context/me and describes the caller.
//
// @Summary Describe the caller
// @Tags context
// @Produce json
// @Success 200 {object} dto.PrincipalResponse
// @Router /api/v1/context/me [get]
func (h *ContextHandler) Me(c *gin.Context) {
	p := h.profiles.Current(c.Request.Context())

	c.JSON(http.StatusOK, dto.NewPrincipalResponse(p))
}

// Audit handles POST /api/v1/context/audit. The entry is queued and written
// after the response, with the identity captured at request time.
//
// @Summary Record an audit entry for the caller
// @Tags context
// @Accept json
// @Produce json
// @Param request body dto.AuditRequest true "Audit entry"
// @Success 202 {object} dto.AuditResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/context/audit [post]
func (h *ContextHandler) Audit(c *gin.Context) {
	var req dto.AuditRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		fields := dto.ValidationErrors(err)
		if len(fields) == 0 {
			dto.RespondWithCode(c, dto.ErrorCodeBadRequest, "malformed request body")
			return
		}

		c.JSON(http.StatusBadRequest, dto.NewErrorResponseWithDetails(
			dto.ErrorCodeValidation,
			"request validation failed",
			fields,
		).WithTraceID(dto.GetTraceID(c)))

		return
	}

	entry, err := h.audit.Record(c.Request.Context(), req.Action, req.Detail)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.NewAuditResponse(entry))
}

// RegisterContextRoutes registers the context routes on rg.
func (h *ContextHandler) RegisterContextRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/context")
	group.GET("/me", h.Me)
	group.POST("/audit", h.Audit)
}
