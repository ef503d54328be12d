package service

import (
	"github.com/alnajat-edu/portal-api/internal/models"
	"github.com/alnajat-edu/portal-api/internal/seed"
	"github.com/alnajat-edu/portal-api/internal/store"
)

// newFixtureStore builds a small, fully linked school: one grade with two
// sections, two periods, three students, one teacher, one parent and one
// admin. Tests layer their own records on top.
func newFixtureStore() *store.Store {
	return store.New(&seed.Data{
		Grades: []models.Grade{
			{ID: "g1", Name: "الصف الأول"},
		},
		Sections: []models.Section{
			{ID: "g1-s1", Name: "الصف الأول - شعبة 1", GradeID: "g1"},
			{ID: "g1-s2", Name: "الصف الأول - شعبة 2", GradeID: "g1"},
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
			{
				User:      models.User{ID: "st-2", Name: "عمر خالد", Email: "st2@school.test", Role: models.RoleStudent},
				StudentID: "1002", GradeID: "g1", SectionID: "g1-s1", ParentID: "pa-1",
			},
			{
				User:      models.User{ID: "st-3", Name: "ليلى حسن", Email: "st3@school.test", Role: models.RoleStudent},
				StudentID: "1003", GradeID: "g1", SectionID: "g1-s2", ParentID: "",
			},
		},
		Teachers: []models.Teacher{
			{
				User:             models.User{ID: "te-1", Name: "أ. فاطمة يوسف", Email: "te1@school.test", Role: models.RoleTeacher},
				Subjects:         []string{"الرياضيات"},
				AssignedSections: []string{"g1-s1", "g1-s2"},
			},
		},
		Parents: []models.Parent{
			{
				User:        models.User{ID: "pa-1", Name: "أحمد سالم", Email: "pa1@school.test", Role: models.RoleParent},
				ChildrenIDs: []string{"st-1", "st-2"},
			},
		},
		Admins: []models.Admin{
			{User: models.User{ID: "ad-1", Name: "مدير المدرسة", Email: "ad1@school.test", Role: models.RoleAdmin}},
		},
		Schedule: []models.ScheduleItem{
			{ID: "sch-1", Day: seed.Days[0], PeriodID: 1, SectionID: "g1-s1", Subject: "الرياضيات", TeacherID: "te-1"},
			{ID: "sch-2", Day: seed.Days[0], PeriodID: 2, SectionID: "g1-s2", Subject: "الرياضيات", TeacherID: "te-1"},
			{ID: "sch-3", Day: seed.Days[1], PeriodID: 1, SectionID: "g1-s1", Subject: "الرياضيات", TeacherID: "te-1"},
		},
	})
}
