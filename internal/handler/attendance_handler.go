package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alnajat-edu/portal-api/internal/service"
	appErrors "github.com/alnajat-edu/portal-api/pkg/errors"
	"github.com/alnajat-edu/portal-api/pkg/export"
	"github.com/alnajat-edu/portal-api/pkg/response"
)

// AttendanceHandler exposes attendance endpoints.
type AttendanceHandler struct {
	attendance *service.AttendanceService
	pdf        *export.PDFExporter
	csv        *export.CSVExporter
	metrics    *service.MetricsService
}

// NewAttendanceHandler constructs handler.
func NewAttendanceHandler(attendance *service.AttendanceService, pdf *export.PDFExporter, csv *export.CSVExporter, metrics *service.MetricsService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance, pdf: pdf, csv: csv, metrics: metrics}
}

// Mark godoc
// @Summary Mark attendance for one student
// @Description Re-marking the same (date, period, student) replaces the record.
// @Tags Attendance
// @Accept json
// @Produce json
// @Param payload body service.MarkAttendanceRequest true "Attendance payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /attendance [post]
func (h *AttendanceHandler) Mark(c *gin.Context) {
	var req service.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid attendance payload"))
		return
	}

	record, err := h.attendance.Mark(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.metrics.RecordStoreMutation("add_attendance")
	response.JSON(c, http.StatusOK, record, nil)
}

// Sheet godoc
// @Summary Class attendance sheet
// @Description Section roster joined with the records of one (date, period) slot
// @Tags Attendance
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param periodId query int true "Period id"
// @Param sectionId query string true "Section id"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /attendance/sheet [get]
func (h *AttendanceHandler) Sheet(c *gin.Context) {
	date := c.Query("date")
	sectionID := c.Query("sectionId")
	periodID, err := strconv.Atoi(c.Query("periodId"))
	if date == "" || sectionID == "" || err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "date, periodId and sectionId are required"))
		return
	}

	sheet, err := h.attendance.ClassSheet(date, periodID, sectionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sheet, nil)
}

// StudentHistory godoc
// @Summary Attendance history of one student
// @Tags Attendance
// @Produce json
// @Param id path string true "Student id"
// @Success 200 {object} response.Envelope
// @Router /attendance/students/{id} [get]
func (h *AttendanceHandler) StudentHistory(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.attendance.StudentHistory(c.Param("id")), nil)
}

// StudentSummary godoc
// @Summary Attendance summary of one student
// @Tags Attendance
// @Produce json
// @Param id path string true "Student id"
// @Success 200 {object} response.Envelope
// @Router /attendance/students/{id}/summary [get]
func (h *AttendanceHandler) StudentSummary(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.attendance.StudentSummary(c.Param("id")), nil)
}

// ReportPDF godoc
// @Summary Daily section report as PDF
// @Tags Attendance
// @Produce application/pdf
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param sectionId query string true "Section id"
// @Success 200 {file} binary
// @Failure 400 {object} response.Envelope
// @Router /attendance/report.pdf [get]
func (h *AttendanceHandler) ReportPDF(c *gin.Context) {
	date := c.Query("date")
	sectionID := c.Query("sectionId")
	if date == "" || sectionID == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "date and sectionId are required"))
		return
	}

	data, err := h.attendance.ReportDataset(date, sectionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.pdf.Render(data, fmt.Sprintf("Attendance %s %s", sectionID, date))
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, http.StatusInternalServerError, "render attendance pdf"))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=attendance_%s_%s.pdf", sectionID, date))
	c.Data(http.StatusOK, "application/pdf", out)
}

// ReportCSV godoc
// @Summary Daily section report as CSV
// @Tags Attendance
// @Produce text/csv
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param sectionId query string true "Section id"
// @Success 200 {file} binary
// @Failure 400 {object} response.Envelope
// @Router /attendance/report.csv [get]
func (h *AttendanceHandler) ReportCSV(c *gin.Context) {
	date := c.Query("date")
	sectionID := c.Query("sectionId")
	if date == "" || sectionID == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "date and sectionId are required"))
		return
	}

	data, err := h.attendance.ReportDataset(date, sectionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.csv.Render(data)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, http.StatusInternalServerError, "render attendance csv"))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=attendance_%s_%s.csv", sectionID, date))
	c.Data(http.StatusOK, "text/csv", out)
}
