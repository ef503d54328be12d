package service

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/alnajat-edu/portal-api/internal/models"
	"github.com/alnajat-edu/portal-api/internal/store"
	appErrors "github.com/alnajat-edu/portal-api/pkg/errors"
)

// GradeService manages exams and score entry.
type GradeService struct {
	store     *store.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewGradeService constructs the grade service.
func NewGradeService(st *store.Store, validate *validator.Validate, logger *zap.Logger) *GradeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GradeService{store: st, validator: validate, logger: logger}
}

// CreateExamRequest describes a new exam.
type CreateExamRequest struct {
	SectionID string  `json:"section_id" validate:"required"`
	Subject   string  `json:"subject" validate:"required"`
	Title     string  `json:"title" validate:"required"`
	MaxScore  float64 `json:"max_score" validate:"required,gt=0"`
	Date      string  `json:"date" validate:"required,datetime=2006-01-02"`
}

// CreateExam registers an exam for a section.
func (s *GradeService) CreateExam(req CreateExamRequest) (models.Exam, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Exam{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid exam payload")
	}
	if _, ok := s.store.SectionByID(req.SectionID); !ok {
		return models.Exam{}, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("section %s not found", req.SectionID))
	}

	exam := s.store.AddExam(models.Exam{
		SectionID: req.SectionID,
		Subject:   req.Subject,
		Title:     req.Title,
		MaxScore:  req.MaxScore,
		Date:      req.Date,
	})
	s.logger.Info("exam created", zap.String("id", exam.ID), zap.String("section_id", exam.SectionID))
	return exam, nil
}

// Exams lists every exam, optionally filtered by section.
func (s *GradeService) Exams(sectionID string) []models.Exam {
	all := s.store.Exams()
	if sectionID == "" {
		return all
	}
	out := make([]models.Exam, 0, len(all))
	for _, e := range all {
		if e.SectionID == sectionID {
			out = append(out, e)
		}
	}
	return out
}

// UpsertScoreRequest writes one student's score for an exam.
type UpsertScoreRequest struct {
	ExamID    string  `json:"exam_id" validate:"required"`
	StudentID string  `json:"student_id" validate:"required"`
	Score     float64 `json:"score" validate:"min=0"`
}

// UpsertScore records a score for (exam, student). Repeated writes with
// the same key keep the result id stable and only move the score; scores
// above the exam maximum are accepted as-is, trimming them is a UI
// concern.
func (s *GradeService) UpsertScore(req UpsertScoreRequest) (models.GradeResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.GradeResult{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid score payload")
	}
	if _, ok := s.store.ExamByID(req.ExamID); !ok {
		return models.GradeResult{}, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("exam %s not found", req.ExamID))
	}

	return s.store.UpsertGradeResult(req.ExamID, req.StudentID, req.Score), nil
}

// GradebookEntry is one roster row of an exam gradebook.
type GradebookEntry struct {
	Student models.Student      `json:"student"`
	Result  *models.GradeResult `json:"result,omitempty"`
}

// Gradebook joins the exam's section roster with recorded results.
func (s *GradeService) Gradebook(examID string) ([]GradebookEntry, error) {
	exam, ok := s.store.ExamByID(examID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("exam %s not found", examID))
	}

	byStudent := map[string]models.GradeResult{}
	for _, r := range s.store.GradeResults() {
		if r.ExamID == examID {
			byStudent[r.StudentID] = r
		}
	}

	roster := s.store.SectionStudents(exam.SectionID)
	entries := make([]GradebookEntry, 0, len(roster))
	for _, student := range roster {
		entry := GradebookEntry{Student: student}
		if r, ok := byStudent[student.ID]; ok {
			result := r
			entry.Result = &result
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// StudentResult pairs a result with its exam for report views.
type StudentResult struct {
	Exam   models.Exam        `json:"exam"`
	Result models.GradeResult `json:"result"`
}

// StudentReport returns every recorded result for a student joined with
// the exam it belongs to. Results whose exam was never registered are
// skipped; a missing result is a blank in the UI, not an error.
func (s *GradeService) StudentReport(studentID string) []StudentResult {
	exams := map[string]models.Exam{}
	for _, e := range s.store.Exams() {
		exams[e.ID] = e
	}

	var out []StudentResult
	for _, r := range s.store.GradeResults() {
		if r.StudentID != studentID {
			continue
		}
		exam, ok := exams[r.ExamID]
		if !ok {
			continue
		}
		out = append(out, StudentResult{Exam: exam, Result: r})
	}
	return out
}
