package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alnajat-edu/portal-api/internal/middleware"
	"github.com/alnajat-edu/portal-api/internal/service"
	appErrors "github.com/alnajat-edu/portal-api/pkg/errors"
	"github.com/alnajat-edu/portal-api/pkg/response"
)

// DashboardHandler exposes the role-aware dashboard endpoint.
type DashboardHandler struct {
	dashboard *service.DashboardService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Get godoc
// @Summary Dashboard for the acting user
// @Description The payload shape depends on the acting user's role.
// @Tags Dashboard
// @Produce json
// @Param X-User-ID header string true "Acting user id"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	account, ok := middleware.UserFromContext(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "X-User-ID header is required"))
		return
	}

	dashboard, err := h.dashboard.ForUser(account.Base().ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dashboard, nil)
}
