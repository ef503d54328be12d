package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alnajat-edu/portal-api/internal/service"
	appErrors "github.com/alnajat-edu/portal-api/pkg/errors"
	"github.com/alnajat-edu/portal-api/pkg/response"
)

// ScheduleHandler exposes timetable endpoints.
type ScheduleHandler struct {
	schedule *service.ScheduleService
}

// NewScheduleHandler constructs handler.
func NewScheduleHandler(schedule *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{schedule: schedule}
}

// SectionWeek godoc
// @Summary Weekly timetable of a section
// @Description Full Sunday-to-Thursday grid including free slots.
// @Tags Schedule
// @Produce json
// @Param id path string true "Section id"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /schedule/sections/{id} [get]
func (h *ScheduleHandler) SectionWeek(c *gin.Context) {
	week, err := h.schedule.SectionWeek(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, week, nil)
}

// SectionDay godoc
// @Summary One day of a section's timetable
// @Tags Schedule
// @Produce json
// @Param id path string true "Section id"
// @Param day query string true "Arabic day name"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /schedule/sections/{id}/day [get]
func (h *ScheduleHandler) SectionDay(c *gin.Context) {
	day := c.Query("day")
	if day == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "day query parameter is required"))
		return
	}

	slots, err := h.schedule.DayForSection(c.Param("id"), day)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, slots, nil)
}

// TeacherWeek godoc
// @Summary Weekly lessons of a teacher
// @Tags Schedule
// @Produce json
// @Param id path string true "Teacher id"
// @Success 200 {object} response.Envelope
// @Router /schedule/teachers/{id} [get]
func (h *ScheduleHandler) TeacherWeek(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.schedule.TeacherWeek(c.Param("id")), nil)
}
