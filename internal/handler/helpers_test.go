package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/alnajat-edu/portal-api/internal/middleware"
	"github.com/alnajat-edu/portal-api/internal/models"
	"github.com/alnajat-edu/portal-api/internal/seed"
	"github.com/alnajat-edu/portal-api/internal/service"
	"github.com/alnajat-edu/portal-api/internal/store"
	"github.com/alnajat-edu/portal-api/pkg/config"
	"github.com/alnajat-edu/portal-api/pkg/export"
)

type responseEnvelope struct {
	Data  json.RawMessage        `json:"data"`
	Error map[string]interface{} `json:"error"`
}

func newHandlerStore() *store.Store {
	return store.New(&seed.Data{
		Grades: []models.Grade{
			{ID: "g1", Name: "الصف الأول"},
		},
		Sections: []models.Section{
			{ID: "g1-s1", Name: "الصف الأول - شعبة 1", GradeID: "g1"},
		},
		Periods: []models.Period{
			{ID: 1, Name: "الحصة الأولى", StartTime: "07:30", EndTime: "08:15"},
			{ID: 2, Name: "الحصة الثانية", StartTime: "08:15", EndTime: "09:00"},
		},
		Students: []models.Student{
			{
				User:      models.User{ID: "st-1", Name: "سارة أحمد", Email: "st1@school.test", Role: models.RoleStudent},
				StudentID: "1001", GradeID: "g1", SectionID: "g1-s1", ParentID: "pa-1",
			},
		},
		Teachers: []models.Teacher{
			{
				User:             models.User{ID: "te-1", Name: "أ. فاطمة يوسف", Email: "te1@school.test", Role: models.RoleTeacher},
				Subjects:         []string{"الرياضيات"},
				AssignedSections: []string{"g1-s1"},
			},
		},
		Parents: []models.Parent{
			{
				User:        models.User{ID: "pa-1", Name: "أحمد سالم", Email: "pa1@school.test", Role: models.RoleParent},
				ChildrenIDs: []string{"st-1"},
			},
		},
		Admins: []models.Admin{
			{User: models.User{ID: "ad-1", Name: "مدير المدرسة", Email: "ad1@school.test", Role: models.RoleAdmin}},
		},
		Schedule: []models.ScheduleItem{
			{ID: "sch-1", Day: seed.Days[0], PeriodID: 1, SectionID: "g1-s1", Subject: "الرياضيات", TeacherID: "te-1"},
		},
	})
}

// newTestRouter wires the full API against a fixture store. assistantURL
// may point at a fake completion server; an unreachable default keeps the
// assistant on its fallback path.
func newTestRouter(t *testing.T, st *store.Store, assistantURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if assistantURL == "" {
		assistantURL = "http://127.0.0.1:0"
	}

	metrics := service.NewMetricsService()
	attendance := service.NewAttendanceService(st, nil, nil)
	announcements := service.NewAnnouncementService(st, nil, nil)
	grades := service.NewGradeService(st, nil, nil)
	messages := service.NewMessageService(st, nil, nil)
	users := service.NewUserService(st, nil, nil)
	auth := service.NewAuthService(st, nil, nil)
	schedule := service.NewScheduleService(st, nil)
	dashboard := service.NewDashboardService(st, attendance, messages, announcements, nil)
	assistant := service.NewAssistantService(st, config.AssistantConfig{
		APIKey:       "test-key",
		BaseURL:      assistantURL,
		AdminModel:   "admin-model",
		TeacherModel: "teacher-model",
		SpeechModel:  "speech-model",
		SpeechVoice:  "Kore",
	}, nil, nil)

	r := gin.New()
	r.Use(middleware.ActingUser(st))
	RegisterRoutes(r, "/api/v1", Handlers{
		Auth:         NewAuthHandler(auth),
		Users:        NewUserHandler(users, metrics),
		Attendance:   NewAttendanceHandler(attendance, export.NewPDFExporter(), export.NewCSVExporter(), metrics),
		Announcement: NewAnnouncementHandler(announcements, metrics),
		Grades:       NewGradeHandler(grades, metrics),
		Messages:     NewMessageHandler(messages, metrics),
		Schedule:     NewScheduleHandler(schedule),
		Dashboard:    NewDashboardHandler(dashboard),
		Assistant:    NewAssistantHandler(assistant, export.NewSlidesExporter()),
		Metrics:      NewMetricsHandler(metrics),
	})
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body, actingUser string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if actingUser != "" {
		req.Header.Set(middleware.HeaderUserID, actingUser)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) responseEnvelope {
	t.Helper()
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}
