package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/alnajat-edu/portal-api/internal/dto"
	"github.com/alnajat-edu/portal-api/internal/models"
	"github.com/alnajat-edu/portal-api/internal/seed"
	"github.com/alnajat-edu/portal-api/internal/store"
	appErrors "github.com/alnajat-edu/portal-api/pkg/errors"
)

const recentAnnouncementsLimit = 5

// DashboardService composes the role-specific home payloads.
type DashboardService struct {
	store         *store.Store
	attendance    *AttendanceService
	messages      *MessageService
	announcements *AnnouncementService
	logger        *zap.Logger
	now           func() time.Time
}

// NewDashboardService constructs the dashboard service.
func NewDashboardService(st *store.Store, attendance *AttendanceService, messages *MessageService, announcements *AnnouncementService, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		store:         st,
		attendance:    attendance,
		messages:      messages,
		announcements: announcements,
		logger:        logger,
		now:           time.Now,
	}
}

// ForUser dispatches on the account variant and builds that role's
// dashboard.
func (s *DashboardService) ForUser(userID string) (interface{}, error) {
	account, ok := s.store.AccountByID(userID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
	}

	switch a := account.(type) {
	case models.Admin:
		return s.admin(a), nil
	case models.Teacher:
		return s.teacher(a), nil
	case models.Student:
		return s.student(a), nil
	case models.Parent:
		return s.parent(a), nil
	}
	return nil, appErrors.ErrInternal
}

func (s *DashboardService) admin(admin models.Admin) *dto.AdminDashboardResponse {
	return &dto.AdminDashboardResponse{
		TotalStudents:  len(s.store.Students()),
		TotalTeachers:  len(s.store.Teachers()),
		TotalParents:   len(s.store.Parents()),
		AttendanceRate: s.attendance.DailyRate(s.today()),
		ActiveAlerts:   s.messages.UnreadTotal(admin.ID),
		// Admins see every announcement, not just those targeting them.
		Announcements: s.recentAnnouncements(""),
	}
}

func (s *DashboardService) teacher(teacher models.Teacher) *dto.TeacherDashboardResponse {
	resp := &dto.TeacherDashboardResponse{
		Teacher:        teacher,
		UnreadMessages: s.messages.UnreadTotal(teacher.ID),
		Announcements:  s.recentAnnouncements(models.RoleTeacher),
	}

	for _, sectionID := range teacher.AssignedSections {
		section, ok := s.store.SectionByID(sectionID)
		if !ok {
			continue
		}
		resp.Sections = append(resp.Sections, dto.SectionOverview{
			Section:      section,
			StudentCount: len(s.store.SectionStudents(sectionID)),
		})
	}

	day := s.schoolDay()
	for _, item := range s.store.Schedule() {
		if item.TeacherID == teacher.ID && item.Day == day {
			resp.TodayLessons = append(resp.TodayLessons, item)
		}
	}
	return resp
}

func (s *DashboardService) student(student models.Student) *dto.StudentDashboardResponse {
	resp := &dto.StudentDashboardResponse{
		Student:       student,
		Attendance:    s.attendance.StudentSummary(student.ID),
		Announcements: s.recentAnnouncements(models.RoleStudent),
	}

	day := s.schoolDay()
	for _, item := range s.store.Schedule() {
		if item.SectionID == student.SectionID && item.Day == day {
			resp.TodayLessons = append(resp.TodayLessons, item)
		}
	}

	exams := map[string]models.Exam{}
	for _, e := range s.store.Exams() {
		exams[e.ID] = e
	}
	for _, r := range s.store.GradeResults() {
		if r.StudentID != student.ID {
			continue
		}
		exam, ok := exams[r.ExamID]
		if !ok {
			continue
		}
		resp.RecentResults = append(resp.RecentResults, dto.ExamResultView{
			ExamTitle: exam.Title,
			Subject:   exam.Subject,
			Score:     r.Score,
			MaxScore:  exam.MaxScore,
		})
	}
	return resp
}

func (s *DashboardService) parent(parent models.Parent) *dto.ParentDashboardResponse {
	resp := &dto.ParentDashboardResponse{
		Parent:         parent,
		UnreadMessages: s.messages.UnreadTotal(parent.ID),
		Announcements:  s.recentAnnouncements(models.RoleParent),
	}
	for _, childID := range parent.ChildrenIDs {
		account, ok := s.store.AccountByID(childID)
		if !ok {
			continue
		}
		child, ok := account.(models.Student)
		if !ok {
			continue
		}
		resp.Children = append(resp.Children, dto.ChildSummary{
			Student:    child,
			Attendance: s.attendance.StudentSummary(child.ID),
		})
	}
	return resp
}

func (s *DashboardService) recentAnnouncements(role models.UserRole) []models.Announcement {
	anns := s.announcements.ListForRole(role)
	if len(anns) > recentAnnouncementsLimit {
		anns = anns[:recentAnnouncementsLimit]
	}
	return anns
}

func (s *DashboardService) today() string {
	return s.now().Format("2006-01-02")
}

// schoolDay maps the current weekday onto the Arabic teaching week.
// Friday and Saturday return an empty string, matching no schedule entry.
func (s *DashboardService) schoolDay() string {
	switch s.now().Weekday() {
	case time.Sunday:
		return seed.Days[0]
	case time.Monday:
		return seed.Days[1]
	case time.Tuesday:
		return seed.Days[2]
	case time.Wednesday:
		return seed.Days[3]
	case time.Thursday:
		return seed.Days[4]
	default:
		return ""
	}
}
