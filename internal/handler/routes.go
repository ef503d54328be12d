package handler

import "github.com/gin-gonic/gin"

// Handlers groups every route handler the API mounts.
type Handlers struct {
	Auth         *AuthHandler
	Users        *UserHandler
	Attendance   *AttendanceHandler
	Announcement *AnnouncementHandler
	Grades       *GradeHandler
	Messages     *MessageHandler
	Schedule     *ScheduleHandler
	Dashboard    *DashboardHandler
	Assistant    *AssistantHandler
	Metrics      *MetricsHandler
}

// RegisterRoutes mounts the API under the configured prefix.
func RegisterRoutes(r *gin.Engine, prefix string, h Handlers) {
	api := r.Group(prefix)

	api.POST("/auth/login", h.Auth.Login)

	api.GET("/users", h.Users.List)
	api.POST("/users", h.Users.Create)
	api.GET("/users/:id", h.Users.Get)
	api.DELETE("/users/:id", h.Users.Delete)

	api.POST("/attendance", h.Attendance.Mark)
	api.GET("/attendance/sheet", h.Attendance.Sheet)
	api.GET("/attendance/students/:id", h.Attendance.StudentHistory)
	api.GET("/attendance/students/:id/summary", h.Attendance.StudentSummary)
	api.GET("/attendance/report.pdf", h.Attendance.ReportPDF)
	api.GET("/attendance/report.csv", h.Attendance.ReportCSV)

	api.GET("/announcements", h.Announcement.List)
	api.POST("/announcements", h.Announcement.Create)

	api.POST("/exams", h.Grades.CreateExam)
	api.GET("/exams", h.Grades.ListExams)
	api.GET("/exams/:id/gradebook", h.Grades.Gradebook)
	api.POST("/grades", h.Grades.UpsertScore)
	api.GET("/grades/students/:id", h.Grades.StudentReport)

	api.POST("/messages", h.Messages.Send)
	api.GET("/messages", h.Messages.Conversation)
	api.POST("/messages/read", h.Messages.MarkRead)
	api.GET("/messages/contacts", h.Messages.Contacts)
	api.GET("/messages/unread", h.Messages.Unread)

	api.GET("/schedule/sections/:id", h.Schedule.SectionWeek)
	api.GET("/schedule/sections/:id/day", h.Schedule.SectionDay)
	api.GET("/schedule/teachers/:id", h.Schedule.TeacherWeek)

	api.GET("/dashboard", h.Dashboard.Get)

	api.POST("/assistant/chat", h.Assistant.Chat)
	api.POST("/assistant/speech", h.Assistant.Speech)
	api.POST("/assistant/slides.pdf", h.Assistant.SlidesPDF)

	r.GET("/metrics", h.Metrics.Prometheus)
	api.GET("/metrics/snapshot", h.Metrics.Snapshot)
}
