package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alnajat-edu/portal-api/internal/models"
	"github.com/alnajat-edu/portal-api/internal/seed"
)

func newTestStore() *Store {
	s := New(&seed.Data{
		Students: []models.Student{{
			User:      models.User{ID: "s1", Name: "Amir", Role: models.RoleStudent},
			StudentID: "1000", GradeID: "g9", SectionID: "g9-s4", ParentID: "p1",
		}},
		Teachers: []models.Teacher{{
			User:     models.User{ID: "t1", Name: "Saad", Role: models.RoleTeacher},
			Subjects: []string{"الحاسوب"},
		}},
		Parents: []models.Parent{{
			User:        models.User{ID: "p1", Name: "Majdi", Role: models.RoleParent},
			ChildrenIDs: []string{"s1"},
		}},
		Admins: []models.Admin{{
			User: models.User{ID: "a1", Name: "Sherif", Role: models.RoleAdmin},
		}},
	})
	n := 0
	s.newID = func() string {
		n++
		return fmt.Sprintf("fixed-%d", n)
	}
	s.now = func() time.Time { return time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC) }
	return s
}

func TestAddAttendanceReplacesByKey(t *testing.T) {
	s := newTestStore()

	s.AddAttendance(models.AttendanceRecord{
		Date: "2024-01-10", PeriodID: 2, StudentID: "s1", SectionID: "g9-s4",
		Status: models.AttendanceAbsent, MarkedBy: "t1",
	})
	s.AddAttendance(models.AttendanceRecord{
		Date: "2024-01-10", PeriodID: 2, StudentID: "s1", SectionID: "g9-s4",
		Status: models.AttendanceLate, MarkedBy: "t1",
	})

	records := s.StudentAttendance("s1")
	require.Len(t, records, 1)
	assert.Equal(t, models.AttendanceLate, records[0].Status)
}

func TestAddAttendanceKeepsDistinctKeys(t *testing.T) {
	s := newTestStore()

	for period := 1; period <= 3; period++ {
		s.AddAttendance(models.AttendanceRecord{
			Date: "2024-01-10", PeriodID: period, StudentID: "s1", SectionID: "g9-s4",
			Status: models.AttendancePresent, MarkedBy: "t1",
		})
	}
	s.AddAttendance(models.AttendanceRecord{
		Date: "2024-01-11", PeriodID: 1, StudentID: "s1", SectionID: "g9-s4",
		Status: models.AttendancePresent, MarkedBy: "t1",
	})

	assert.Len(t, s.StudentAttendance("s1"), 4)
}

func TestClassAttendanceMatchesExactTriple(t *testing.T) {
	s := newTestStore()

	s.AddAttendance(models.AttendanceRecord{
		Date: "2024-01-10", PeriodID: 2, StudentID: "s1", SectionID: "g9-s4",
		Status: models.AttendancePresent, MarkedBy: "t1",
	})

	assert.Len(t, s.ClassAttendance("2024-01-10", 2, "g9-s4"), 1)
	assert.Empty(t, s.ClassAttendance("2024-01-10", 3, "g9-s4"))
	assert.Empty(t, s.ClassAttendance("2024-01-11", 2, "g9-s4"))
	assert.Empty(t, s.ClassAttendance("2024-01-10", 2, "g9-s5"))
}

func TestUpsertGradeResultKeepsIDAndFeedback(t *testing.T) {
	s := newTestStore()

	first := s.UpsertGradeResult("examA", "s1", 15)
	s.mu.Lock()
	s.results[0].Feedback = "أحسنت"
	s.mu.Unlock()

	second := s.UpsertGradeResult("examA", "s1", 18)

	assert.Equal(t, first.ID, second.ID)
	results := s.GradeResults()
	require.Len(t, results, 1)
	assert.Equal(t, 18.0, results[0].Score)
	assert.Equal(t, "أحسنت", results[0].Feedback)
}

func TestUpsertGradeResultSeparatesKeys(t *testing.T) {
	s := newTestStore()

	s.UpsertGradeResult("examA", "s1", 10)
	s.UpsertGradeResult("examA", "s2", 12)
	s.UpsertGradeResult("examB", "s1", 14)

	assert.Len(t, s.GradeResults(), 3)
}

func TestSendMessageForcesUnread(t *testing.T) {
	s := newTestStore()

	m := s.SendMessage(models.Message{SenderID: "t1", ReceiverID: "p1", Content: "hi", Read: true})

	assert.False(t, m.Read)
	assert.NotEmpty(t, m.ID)
	assert.False(t, m.Timestamp.IsZero())
}

func TestMarkMessagesReadIsIdempotent(t *testing.T) {
	s := newTestStore()

	s.SendMessage(models.Message{SenderID: "t1", ReceiverID: "p1", Content: "hi"})

	assert.Equal(t, 1, s.MarkMessagesRead("t1", "p1"))
	assert.Equal(t, 0, s.MarkMessagesRead("t1", "p1"))

	for _, m := range s.Messages() {
		if m.SenderID == "t1" && m.ReceiverID == "p1" {
			assert.True(t, m.Read)
		}
	}
}

func TestMarkMessagesReadIsDirectional(t *testing.T) {
	s := newTestStore()

	s.SendMessage(models.Message{SenderID: "t1", ReceiverID: "p1", Content: "hi"})
	s.SendMessage(models.Message{SenderID: "p1", ReceiverID: "t1", Content: "wa alaikum"})

	s.MarkMessagesRead("t1", "p1")

	for _, m := range s.Messages() {
		if m.SenderID == "p1" {
			assert.False(t, m.Read, "reverse direction must stay unread")
		}
	}
}

func TestDeleteUserRemovesExactlyOne(t *testing.T) {
	s := newTestStore()
	s.AddAttendance(models.AttendanceRecord{
		Date: "2024-01-10", PeriodID: 1, StudentID: "s1", SectionID: "g9-s4",
		Status: models.AttendancePresent, MarkedBy: "t1",
	})

	require.True(t, s.DeleteUser("s1"))

	assert.Empty(t, s.Students())
	assert.Len(t, s.Teachers(), 1)
	assert.Len(t, s.Parents(), 1)
	assert.Len(t, s.Admins(), 1)
	// No cascade: the attendance record dangles on purpose.
	assert.Len(t, s.Attendance(), 1)

	assert.False(t, s.DeleteUser("s1"))
}

func TestAddUserDispatchesOnVariant(t *testing.T) {
	s := newTestStore()

	s.AddUser(models.Student{User: models.User{ID: "s2", Role: models.RoleStudent}, SectionID: "g9-s4"})
	s.AddUser(models.Teacher{User: models.User{ID: "t2", Role: models.RoleTeacher}})
	s.AddUser(models.Parent{User: models.User{ID: "p2", Role: models.RoleParent}})
	s.AddUser(models.Admin{User: models.User{ID: "a2", Role: models.RoleAdmin}})

	assert.Len(t, s.Students(), 2)
	assert.Len(t, s.Teachers(), 2)
	assert.Len(t, s.Parents(), 2)
	assert.Len(t, s.Admins(), 2)
}

func TestAllUsersOrdering(t *testing.T) {
	s := newTestStore()

	users := s.AllUsers()
	require.Len(t, users, 4)
	assert.Equal(t, models.RoleAdmin, users[0].Role)
	assert.Equal(t, models.RoleTeacher, users[1].Role)
	assert.Equal(t, models.RoleStudent, users[2].Role)
	assert.Equal(t, models.RoleParent, users[3].Role)
}

func TestAddAnnouncementPrepends(t *testing.T) {
	s := newTestStore()

	s.AddAnnouncement(models.Announcement{Title: "first"})
	s.AddAnnouncement(models.Announcement{Title: "second"})

	anns := s.Announcements()
	require.Len(t, anns, 2)
	assert.Equal(t, "second", anns[0].Title)
	assert.Equal(t, "first", anns[1].Title)
}

func TestAccountByID(t *testing.T) {
	s := newTestStore()

	account, ok := s.AccountByID("t1")
	require.True(t, ok)
	teacher, ok := account.(models.Teacher)
	require.True(t, ok)
	assert.Equal(t, []string{"الحاسوب"}, teacher.Subjects)

	_, ok = s.AccountByID("missing")
	assert.False(t, ok)
}
