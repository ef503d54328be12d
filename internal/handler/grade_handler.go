package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alnajat-edu/portal-api/internal/service"
	appErrors "github.com/alnajat-edu/portal-api/pkg/errors"
	"github.com/alnajat-edu/portal-api/pkg/response"
)

// GradeHandler exposes exam and score endpoints.
type GradeHandler struct {
	grades  *service.GradeService
	metrics *service.MetricsService
}

// NewGradeHandler constructs handler.
func NewGradeHandler(grades *service.GradeService, metrics *service.MetricsService) *GradeHandler {
	return &GradeHandler{grades: grades, metrics: metrics}
}

// CreateExam godoc
// @Summary Register an exam for a section
// @Tags Grades
// @Accept json
// @Produce json
// @Param payload body service.CreateExamRequest true "Exam payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /exams [post]
func (h *GradeHandler) CreateExam(c *gin.Context) {
	var req service.CreateExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid exam payload"))
		return
	}

	exam, err := h.grades.CreateExam(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.metrics.RecordStoreMutation("add_exam")
	response.Created(c, exam)
}

// ListExams godoc
// @Summary List exams
// @Tags Grades
// @Produce json
// @Param sectionId query string false "Restrict to one section"
// @Success 200 {object} response.Envelope
// @Router /exams [get]
func (h *GradeHandler) ListExams(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.grades.Exams(c.Query("sectionId")), nil)
}

// Gradebook godoc
// @Summary Roster of one exam with scores
// @Tags Grades
// @Produce json
// @Param id path string true "Exam id"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /exams/{id}/gradebook [get]
func (h *GradeHandler) Gradebook(c *gin.Context) {
	entries, err := h.grades.Gradebook(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries, nil)
}

// UpsertScore godoc
// @Summary Record a score for (exam, student)
// @Description Repeated writes with the same key replace the score and keep the result id.
// @Tags Grades
// @Accept json
// @Produce json
// @Param payload body service.UpsertScoreRequest true "Score payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /grades [post]
func (h *GradeHandler) UpsertScore(c *gin.Context) {
	var req service.UpsertScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid score payload"))
		return
	}

	result, err := h.grades.UpsertScore(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.metrics.RecordStoreMutation("upsert_grade")
	response.JSON(c, http.StatusOK, result, nil)
}

// StudentReport godoc
// @Summary Exam results of one student
// @Tags Grades
// @Produce json
// @Param id path string true "Student id"
// @Success 200 {object} response.Envelope
// @Router /grades/students/{id} [get]
func (h *GradeHandler) StudentReport(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.grades.StudentReport(c.Param("id")), nil)
}
