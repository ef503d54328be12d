// Package store owns every domain collection for the lifetime of the
// process. It is the only sanctioned mutation surface: consumers read
// through query methods and write through the operations below. Handlers
// run on gin's connection goroutines, so every mutation is serialized
// behind one mutex.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alnajat-edu/portal-api/internal/models"
	"github.com/alnajat-edu/portal-api/internal/seed"
)

type resultKey struct {
	ExamID    string
	StudentID string
}

// Store holds all collections in memory. Construct it once at startup and
// pass it by reference; there is no ambient singleton.
type Store struct {
	mu sync.Mutex

	grades   []models.Grade
	sections []models.Section
	periods  []models.Period
	schedule []models.ScheduleItem

	students []models.Student
	teachers []models.Teacher
	parents  []models.Parent
	admins   []models.Admin

	attendance    []models.AttendanceRecord
	announcements []models.Announcement
	exams         []models.Exam
	results       []models.GradeResult
	messages      []models.Message

	// Composite-key indexes keep the at-most-one-per-key invariants
	// structural: values are positions in the backing slices.
	attendanceIdx map[models.AttendanceKey]int
	resultIdx     map[resultKey]int

	now   func() time.Time
	newID func() string
}

// New builds a store over a seeded dataset.
func New(d *seed.Data) *Store {
	s := &Store{
		grades:        append([]models.Grade(nil), d.Grades...),
		sections:      append([]models.Section(nil), d.Sections...),
		periods:       append([]models.Period(nil), d.Periods...),
		schedule:      append([]models.ScheduleItem(nil), d.Schedule...),
		students:      append([]models.Student(nil), d.Students...),
		teachers:      append([]models.Teacher(nil), d.Teachers...),
		parents:       append([]models.Parent(nil), d.Parents...),
		admins:        append([]models.Admin(nil), d.Admins...),
		announcements: append([]models.Announcement(nil), d.Announcements...),
		messages:      append([]models.Message(nil), d.Messages...),
		attendanceIdx: make(map[models.AttendanceKey]int),
		resultIdx:     make(map[resultKey]int),
		now:           time.Now,
		newID:         uuid.NewString,
	}
	return s
}

// StudentAttendance returns every record for the student, unordered.
func (s *Store) StudentAttendance(studentID string) []models.AttendanceRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.AttendanceRecord
	for _, r := range s.attendance {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out
}

// ClassAttendance returns records matching the exact (date, period,
// section) triple.
func (s *Store) ClassAttendance(date string, periodID int, sectionID string) []models.AttendanceRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.AttendanceRecord
	for _, r := range s.attendance {
		if r.Date == date && r.PeriodID == periodID && r.SectionID == sectionID {
			out = append(out, r)
		}
	}
	return out
}

// Attendance returns a copy of every attendance record.
func (s *Store) Attendance() []models.AttendanceRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.AttendanceRecord(nil), s.attendance...)
}

// AddAttendance records a status, replacing any record with the same
// (date, period, student) key. The stored record always carries a fresh
// id and timestamp; the write is last-write-wins, no field merge.
func (s *Store) AddAttendance(r models.AttendanceRecord) models.AttendanceRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = "att-" + s.newID()
	r.Timestamp = s.now()
	if i, ok := s.attendanceIdx[r.Key()]; ok {
		s.attendance[i] = r
		return r
	}
	s.attendanceIdx[r.Key()] = len(s.attendance)
	s.attendance = append(s.attendance, r)
	return r
}

// Announcements returns a copy, most recent first.
func (s *Store) Announcements() []models.Announcement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Announcement(nil), s.announcements...)
}

// AddAnnouncement assigns an id and prepends, keeping the collection in
// most-recent-first order so reads never re-sort.
func (s *Store) AddAnnouncement(a models.Announcement) models.Announcement {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = "ann-" + s.newID()
	s.announcements = append([]models.Announcement{a}, s.announcements...)
	return a
}

// Exams returns a copy of the exam collection.
func (s *Store) Exams() []models.Exam {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Exam(nil), s.exams...)
}

// ExamByID looks up an exam.
func (s *Store) ExamByID(id string) (models.Exam, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.exams {
		if e.ID == id {
			return e, true
		}
	}
	return models.Exam{}, false
}

// AddExam assigns an id and appends.
func (s *Store) AddExam(e models.Exam) models.Exam {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = "exam-" + s.newID()
	s.exams = append(s.exams, e)
	return e
}

// GradeResults returns a copy of the result collection.
func (s *Store) GradeResults() []models.GradeResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.GradeResult(nil), s.results...)
}

// UpsertGradeResult writes a score for (exam, student). An existing result
// keeps its id and feedback and only the score changes; otherwise a new
// result is appended under a fresh id.
func (s *Store) UpsertGradeResult(examID, studentID string, score float64) models.GradeResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := resultKey{ExamID: examID, StudentID: studentID}
	if i, ok := s.resultIdx[key]; ok {
		s.results[i].Score = score
		return s.results[i]
	}
	r := models.GradeResult{
		ID:        "res-" + s.newID(),
		ExamID:    examID,
		StudentID: studentID,
		Score:     score,
	}
	s.resultIdx[key] = len(s.results)
	s.results = append(s.results, r)
	return r
}

// Messages returns a copy of the message collection.
func (s *Store) Messages() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Message(nil), s.messages...)
}

// SendMessage assigns id and timestamp, forces read=false and appends.
func (s *Store) SendMessage(m models.Message) models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = "msg-" + s.newID()
	m.Timestamp = s.now()
	m.Read = false
	s.messages = append(s.messages, m)
	return m
}

// MarkMessagesRead flips every unread message on the exact (sender,
// receiver) directed pair to read. Calling it again is a no-op; read is
// never flipped back.
func (s *Store) MarkMessagesRead(senderID, receiverID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	flipped := 0
	for i := range s.messages {
		m := &s.messages[i]
		if m.SenderID == senderID && m.ReceiverID == receiverID && !m.Read {
			m.Read = true
			flipped++
		}
	}
	return flipped
}

// AllUsers concatenates admins, teachers, students and parents, in that
// fixed order, projected to the shared user fields.
func (s *Store) AllUsers() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, 0, len(s.admins)+len(s.teachers)+len(s.students)+len(s.parents))
	for _, a := range s.admins {
		out = append(out, a.Base())
	}
	for _, t := range s.teachers {
		out = append(out, t.Base())
	}
	for _, st := range s.students {
		out = append(out, st.Base())
	}
	for _, p := range s.parents {
		out = append(out, p.Base())
	}
	return out
}

// AccountByID finds the full variant record for a user id.
func (s *Store) AccountByID(id string) (models.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accountByIDLocked(id)
}

func (s *Store) accountByIDLocked(id string) (models.Account, bool) {
	for _, a := range s.admins {
		if a.ID == id {
			return a, true
		}
	}
	for _, t := range s.teachers {
		if t.ID == id {
			return t, true
		}
	}
	for _, st := range s.students {
		if st.ID == id {
			return st, true
		}
	}
	for _, p := range s.parents {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// AddUser dispatches the account to its role collection. The type switch
// is exhaustive over the closed Account union.
func (s *Store) AddUser(account models.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch a := account.(type) {
	case models.Student:
		s.students = append(s.students, a)
	case models.Teacher:
		s.teachers = append(s.teachers, a)
	case models.Parent:
		s.parents = append(s.parents, a)
	case models.Admin:
		s.admins = append(s.admins, a)
	}
}

// DeleteUser removes the user with the id from whichever collection holds
// it. Dependent records (attendance, messages, schedule, results) are left
// in place and may dangle; the portal never cascaded.
func (s *Store) DeleteUser(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, st := range s.students {
		if st.ID == id {
			s.students = append(s.students[:i], s.students[i+1:]...)
			return true
		}
	}
	for i, t := range s.teachers {
		if t.ID == id {
			s.teachers = append(s.teachers[:i], s.teachers[i+1:]...)
			return true
		}
	}
	for i, p := range s.parents {
		if p.ID == id {
			s.parents = append(s.parents[:i], s.parents[i+1:]...)
			return true
		}
	}
	for i, a := range s.admins {
		if a.ID == id {
			s.admins = append(s.admins[:i], s.admins[i+1:]...)
			return true
		}
	}
	return false
}

// Students returns a copy of the student collection.
func (s *Store) Students() []models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Student(nil), s.students...)
}

// Teachers returns a copy of the teacher collection.
func (s *Store) Teachers() []models.Teacher {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Teacher(nil), s.teachers...)
}

// Parents returns a copy of the parent collection.
func (s *Store) Parents() []models.Parent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Parent(nil), s.parents...)
}

// Admins returns a copy of the admin collection.
func (s *Store) Admins() []models.Admin {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Admin(nil), s.admins...)
}

// SectionStudents returns the roster of one section.
func (s *Store) SectionStudents(sectionID string) []models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Student
	for _, st := range s.students {
		if st.SectionID == sectionID {
			out = append(out, st)
		}
	}
	return out
}

// Grades returns the fixed grade list.
func (s *Store) Grades() []models.Grade {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Grade(nil), s.grades...)
}

// Sections returns the fixed section list.
func (s *Store) Sections() []models.Section {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Section(nil), s.sections...)
}

// SectionByID looks up a section.
func (s *Store) SectionByID(id string) (models.Section, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sec := range s.sections {
		if sec.ID == id {
			return sec, true
		}
	}
	return models.Section{}, false
}

// Periods returns the fixed period table.
func (s *Store) Periods() []models.Period {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Period(nil), s.periods...)
}

// Schedule returns a copy of the weekly schedule.
func (s *Store) Schedule() []models.ScheduleItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ScheduleItem(nil), s.schedule...)
}
