package service

import (
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/alnajat-edu/portal-api/internal/models"
	"github.com/alnajat-edu/portal-api/internal/store"
	appErrors "github.com/alnajat-edu/portal-api/pkg/errors"
	"github.com/alnajat-edu/portal-api/pkg/export"
)

// AttendanceService coordinates attendance capture and reporting.
type AttendanceService struct {
	store     *store.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAttendanceService constructs the attendance service.
func NewAttendanceService(st *store.Store, validate *validator.Validate, logger *zap.Logger) *AttendanceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &AttendanceService{store: st, validator: validate, logger: logger}
	_ = svc.validator.RegisterValidation("attendance_status", func(fl validator.FieldLevel) bool {
		return models.AttendanceStatus(strings.ToUpper(fl.Field().String())).Valid()
	})
	return svc
}

// MarkAttendanceRequest describes the payload for marking one student.
type MarkAttendanceRequest struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	PeriodID  int    `json:"period_id" validate:"required,min=1"`
	StudentID string `json:"student_id" validate:"required"`
	SectionID string `json:"section_id" validate:"required"`
	Status    string `json:"status" validate:"required,attendance_status"`
	MarkedBy  string `json:"marked_by" validate:"required"`
}

// Mark records a status. Re-marking the same (date, period, student)
// replaces the previous record.
func (s *AttendanceService) Mark(req MarkAttendanceRequest) (models.AttendanceRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.AttendanceRecord{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid attendance payload")
	}

	record := s.store.AddAttendance(models.AttendanceRecord{
		Date:      req.Date,
		PeriodID:  req.PeriodID,
		StudentID: req.StudentID,
		SectionID: req.SectionID,
		Status:    models.AttendanceStatus(strings.ToUpper(req.Status)),
		MarkedBy:  req.MarkedBy,
	})
	s.logger.Debug("attendance marked",
		zap.String("student_id", record.StudentID),
		zap.String("date", record.Date),
		zap.Int("period_id", record.PeriodID),
	)
	return record, nil
}

// SheetEntry is one roster row of a class attendance sheet. Status is
// empty while the student is unmarked.
type SheetEntry struct {
	Student models.Student          `json:"student"`
	Status  models.AttendanceStatus `json:"status,omitempty"`
	Record  *models.AttendanceRecord `json:"record,omitempty"`
}

// ClassSheet joins the section roster with the records for one
// (date, period, section) slot.
func (s *AttendanceService) ClassSheet(date string, periodID int, sectionID string) ([]SheetEntry, error) {
	if _, ok := s.store.SectionByID(sectionID); !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("section %s not found", sectionID))
	}

	byStudent := map[string]models.AttendanceRecord{}
	for _, r := range s.store.ClassAttendance(date, periodID, sectionID) {
		byStudent[r.StudentID] = r
	}

	roster := s.store.SectionStudents(sectionID)
	entries := make([]SheetEntry, 0, len(roster))
	for _, student := range roster {
		entry := SheetEntry{Student: student}
		if r, ok := byStudent[student.ID]; ok {
			record := r
			entry.Status = r.Status
			entry.Record = &record
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// StudentHistory returns every record for the student.
func (s *AttendanceService) StudentHistory(studentID string) []models.AttendanceRecord {
	return s.store.StudentAttendance(studentID)
}

// StudentSummary aggregates a student's records by status. Rate is the
// rounded percentage of PRESENT records, zero when there are none.
func (s *AttendanceService) StudentSummary(studentID string) models.AttendanceSummary {
	return summarize(s.store.StudentAttendance(studentID))
}

// DailyRate returns the school-wide present percentage for a date.
func (s *AttendanceService) DailyRate(date string) float64 {
	var day []models.AttendanceRecord
	for _, r := range s.store.Attendance() {
		if r.Date == date {
			day = append(day, r)
		}
	}
	return summarize(day).Rate
}

// OverallRate returns the present percentage across every record.
func (s *AttendanceService) OverallRate() float64 {
	return summarize(s.store.Attendance()).Rate
}

// ReportDataset flattens one day's records for a section into an
// exportable table, ordered by the section roster.
func (s *AttendanceService) ReportDataset(date string, sectionID string) (export.Dataset, error) {
	sheet, err := s.ClassSheetAllPeriods(date, sectionID)
	if err != nil {
		return export.Dataset{}, err
	}

	data := export.Dataset{Headers: []string{"Student No", "Name", "Period", "Status", "Marked By"}}
	for _, row := range sheet {
		data.Rows = append(data.Rows, map[string]string{
			"Student No": row.Student.StudentID,
			"Name":       row.Student.Name,
			"Period":     fmt.Sprintf("%d", row.PeriodID),
			"Status":     string(row.Status),
			"Marked By":  row.MarkedBy,
		})
	}
	return data, nil
}

// ReportRow is one (student, period) cell of a daily section report.
type ReportRow struct {
	Student  models.Student
	PeriodID int
	Status   models.AttendanceStatus
	MarkedBy string
}

// ClassSheetAllPeriods expands the daily report across every period that
// has records for the section.
func (s *AttendanceService) ClassSheetAllPeriods(date string, sectionID string) ([]ReportRow, error) {
	if _, ok := s.store.SectionByID(sectionID); !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("section %s not found", sectionID))
	}

	roster := s.store.SectionStudents(sectionID)
	var rows []ReportRow
	for _, period := range s.store.Periods() {
		byStudent := map[string]models.AttendanceRecord{}
		for _, r := range s.store.ClassAttendance(date, period.ID, sectionID) {
			byStudent[r.StudentID] = r
		}
		if len(byStudent) == 0 {
			continue
		}
		for _, student := range roster {
			row := ReportRow{Student: student, PeriodID: period.ID}
			if r, ok := byStudent[student.ID]; ok {
				row.Status = r.Status
				row.MarkedBy = r.MarkedBy
			}
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func summarize(records []models.AttendanceRecord) models.AttendanceSummary {
	sum := models.AttendanceSummary{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case models.AttendancePresent:
			sum.Present++
		case models.AttendanceAbsent:
			sum.Absent++
		case models.AttendanceLate:
			sum.Late++
		case models.AttendanceExcused:
			sum.Excused++
		}
	}
	if sum.Total > 0 {
		sum.Rate = math.Round(float64(sum.Present) / float64(sum.Total) * 100)
	}
	return sum
}
