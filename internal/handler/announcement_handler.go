package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alnajat-edu/portal-api/internal/middleware"
	"github.com/alnajat-edu/portal-api/internal/models"
	"github.com/alnajat-edu/portal-api/internal/service"
	appErrors "github.com/alnajat-edu/portal-api/pkg/errors"
	"github.com/alnajat-edu/portal-api/pkg/response"
)

// AnnouncementHandler exposes announcement endpoints.
type AnnouncementHandler struct {
	announcements *service.AnnouncementService
	metrics       *service.MetricsService
}

// NewAnnouncementHandler constructs handler.
func NewAnnouncementHandler(announcements *service.AnnouncementService, metrics *service.MetricsService) *AnnouncementHandler {
	return &AnnouncementHandler{announcements: announcements, metrics: metrics}
}

// Create godoc
// @Summary Publish an announcement
// @Tags Announcements
// @Accept json
// @Produce json
// @Param payload body service.CreateAnnouncementRequest true "Announcement payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /announcements [post]
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req service.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid announcement payload"))
		return
	}

	announcement, err := h.announcements.Create(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.metrics.RecordStoreMutation("add_announcement")
	response.Created(c, announcement)
}

// List godoc
// @Summary List announcements visible to the acting user
// @Description Without an X-User-ID header every announcement is returned.
// @Tags Announcements
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /announcements [get]
func (h *AnnouncementHandler) List(c *gin.Context) {
	var role models.UserRole
	if account, ok := middleware.UserFromContext(c); ok {
		role = account.Base().Role
	}
	response.JSON(c, http.StatusOK, h.announcements.ListForRole(role), nil)
}
