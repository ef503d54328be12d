package dto

import "github.com/alnajat-edu/portal-api/internal/models"

// AdminDashboardResponse summarises the whole school for the admin home.
type AdminDashboardResponse struct {
	TotalStudents  int                   `json:"total_students"`
	TotalTeachers  int                   `json:"total_teachers"`
	TotalParents   int                   `json:"total_parents"`
	AttendanceRate float64               `json:"attendance_rate"`
	ActiveAlerts   int                   `json:"active_alerts"`
	Announcements  []models.Announcement `json:"announcements"`
}

// SectionOverview pairs a section with its roster size.
type SectionOverview struct {
	Section      models.Section `json:"section"`
	StudentCount int            `json:"student_count"`
}

// TeacherDashboardResponse is the teacher's home payload.
type TeacherDashboardResponse struct {
	Teacher        models.Teacher        `json:"teacher"`
	Sections       []SectionOverview     `json:"sections"`
	TodayLessons   []models.ScheduleItem `json:"today_lessons"`
	UnreadMessages int                   `json:"unread_messages"`
	Announcements  []models.Announcement `json:"announcements"`
}

// ExamResultView joins a result with its exam for display.
type ExamResultView struct {
	ExamTitle string  `json:"exam_title"`
	Subject   string  `json:"subject"`
	Score     float64 `json:"score"`
	MaxScore  float64 `json:"max_score"`
}

// StudentDashboardResponse is the student's home payload.
type StudentDashboardResponse struct {
	Student       models.Student        `json:"student"`
	Attendance    models.AttendanceSummary `json:"attendance"`
	TodayLessons  []models.ScheduleItem `json:"today_lessons"`
	RecentResults []ExamResultView      `json:"recent_results"`
	Announcements []models.Announcement `json:"announcements"`
}

// ChildSummary is one child row on the parent dashboard.
type ChildSummary struct {
	Student    models.Student           `json:"student"`
	Attendance models.AttendanceSummary `json:"attendance"`
}

// ParentDashboardResponse is the parent's home payload.
type ParentDashboardResponse struct {
	Parent         models.Parent         `json:"parent"`
	Children       []ChildSummary        `json:"children"`
	UnreadMessages int                   `json:"unread_messages"`
	Announcements  []models.Announcement `json:"announcements"`
}
