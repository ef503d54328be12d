// Package seed builds the initial in-memory dataset for the portal. The
// structure is deterministic (counts, ids, linkage) while names and
// assignments are drawn from a caller-supplied random source.
package seed

import (
	"fmt"
	"math/rand"
	"net/url"
	"strings"
	"time"

	"github.com/alnajat-edu/portal-api/internal/models"
)

// Days is the five-day teaching week.
var Days = []string{"الأحد", "الاثنين", "الثلاثاء", "الأربعاء", "الخميس"}

// Subjects is the fixed subject list; teachers are assigned round-robin.
var Subjects = []string{
	"الرياضيات", "العلوم", "اللغة العربية", "اللغة الإنجليزية",
	"التربية الإسلامية", "الاجتماعيات", "الحاسوب", "التربية الفنية",
}

var gradeNames = []string{"الصف السادس", "الصف السابع", "الصف الثامن", "الصف التاسع"}
var gradeIDs = []string{"g6", "g7", "g8", "g9"}

var (
	parentMaleNames   = []string{"أحمد", "محمد", "علي", "عمر", "خالد"}
	parentFemaleNames = []string{"فاطمة", "نورة", "سارة", "ريم"}
	familyNames       = []string{"العتيبي", "المطيري", "القحطاني", "الدوسري", "العنزي"}
	studentNames      = []string{"بدر", "سلطان", "عبدالعزيز", "فيصل", "فهد", "مشعل"}
	teacherNames      = []string{"محمد", "إبراهيم", "أحمد", "ياسين"}
	teacherFamilies   = []string{"الشمري", "العجمي", "الرشيدي"}
)

// Config sizes the generated dataset. Zero values fall back to the
// standard school shape.
type Config struct {
	SectionsPerGrade   int
	ParentCount        int
	StudentsPerSection int
	TeacherCount       int
	TeacherSections    int
	ScheduleFill       float64
	EmailDomain        string
}

func (c Config) withDefaults() Config {
	if c.SectionsPerGrade <= 0 {
		c.SectionsPerGrade = 8
	}
	if c.ParentCount <= 0 {
		c.ParentCount = 300
	}
	if c.StudentsPerSection <= 0 {
		c.StudentsPerSection = 30
	}
	if c.TeacherCount <= 0 {
		c.TeacherCount = 20
	}
	if c.TeacherSections <= 0 {
		c.TeacherSections = 8
	}
	if c.ScheduleFill <= 0 || c.ScheduleFill > 1 {
		c.ScheduleFill = 0.9
	}
	if c.EmailDomain == "" {
		c.EmailDomain = "alnajat.edu"
	}
	return c
}

// Data holds one generated dataset, ready to back a store.
type Data struct {
	Grades        []models.Grade
	Sections      []models.Section
	Periods       []models.Period
	Students      []models.Student
	Teachers      []models.Teacher
	Parents       []models.Parent
	Admins        []models.Admin
	Schedule      []models.ScheduleItem
	Announcements []models.Announcement
	Messages      []models.Message
}

// Generate produces a complete, internally consistent dataset. It never
// fails: the construction is pure and input-free apart from the random
// source.
func Generate(cfg Config, rng *rand.Rand, now time.Time) *Data {
	cfg = cfg.withDefaults()
	d := &Data{}

	for i, id := range gradeIDs {
		d.Grades = append(d.Grades, models.Grade{ID: id, Name: gradeNames[i]})
		for s := 1; s <= cfg.SectionsPerGrade; s++ {
			d.Sections = append(d.Sections, models.Section{
				ID:      fmt.Sprintf("%s-s%d", id, s),
				Name:    fmt.Sprintf("شعبة %d", s),
				GradeID: id,
			})
		}
	}

	d.Periods = []models.Period{
		{ID: 1, Name: "الحصة الأولى", StartTime: "07:30", EndTime: "08:15"},
		{ID: 2, Name: "الحصة الثانية", StartTime: "08:20", EndTime: "09:05"},
		{ID: 3, Name: "الحصة الثالثة", StartTime: "09:30", EndTime: "10:15"},
		{ID: 4, Name: "الحصة الرابعة", StartTime: "10:20", EndTime: "11:05"},
		{ID: 5, Name: "الحصة الخامسة", StartTime: "11:10", EndTime: "11:55"},
		{ID: 6, Name: "الحصة السادسة", StartTime: "12:20", EndTime: "13:05"},
		{ID: 7, Name: "الحصة السابعة", StartTime: "13:10", EndTime: "13:55"},
	}

	for i := 0; i < cfg.ParentCount; i++ {
		first := pick(rng, parentMaleNames)
		if rng.Float64() <= 0.1 {
			first = pick(rng, parentFemaleNames)
		}
		last := pick(rng, familyNames)
		d.Parents = append(d.Parents, models.Parent{
			User: models.User{
				ID:     fmt.Sprintf("parent-%d", i),
				Name:   first + " " + last,
				Email:  fmt.Sprintf("p%d@%s", i, cfg.EmailDomain),
				Role:   models.RoleParent,
				Avatar: avatarURL(first, last, "random", ""),
			},
		})
	}

	counter := 1000
	for _, section := range d.Sections {
		for i := 0; i < cfg.StudentsPerSection; i++ {
			p := rng.Intn(len(d.Parents))
			parent := &d.Parents[p]
			first := pick(rng, studentNames)
			last := surname(parent.Name)
			student := models.Student{
				User: models.User{
					ID:     fmt.Sprintf("student-%d", counter),
					Name:   first + " " + last,
					Email:  fmt.Sprintf("s%d@%s", counter, cfg.EmailDomain),
					Role:   models.RoleStudent,
					Avatar: avatarURL(first, last, "random", "fff"),
				},
				StudentID: fmt.Sprintf("%d", counter),
				GradeID:   section.GradeID,
				SectionID: section.ID,
				ParentID:  parent.ID,
			}
			d.Students = append(d.Students, student)
			parent.ChildrenIDs = append(parent.ChildrenIDs, student.ID)
			counter++
		}
	}

	for i := 0; i < cfg.TeacherCount; i++ {
		first := pick(rng, teacherNames)
		last := pick(rng, teacherFamilies)
		subject := Subjects[i%len(Subjects)]
		d.Teachers = append(d.Teachers, models.Teacher{
			User: models.User{
				ID:     fmt.Sprintf("teacher-%d", i),
				Name:   "أ. " + first + " " + last,
				Email:  fmt.Sprintf("t%d@%s", i, cfg.EmailDomain),
				Role:   models.RoleTeacher,
				Avatar: avatarURL(first, last, "0D9488", "fff"),
			},
			Subjects:         []string{subject},
			AssignedSections: pickSections(rng, d.Sections, cfg.TeacherSections),
		})
	}

	d.Admins = append(d.Admins, models.Admin{
		User: models.User{
			ID:     "admin-1",
			Name:   "أ. شريف محمد السباعي",
			Email:  "admin@" + cfg.EmailDomain,
			Role:   models.RoleAdmin,
			Avatar: avatarURL("Sherif", "Sebaei", "000", "fff"),
		},
	})

	applyDemoAccounts(d)

	for _, section := range d.Sections {
		for _, day := range Days {
			for _, period := range d.Periods {
				if rng.Float64() > cfg.ScheduleFill {
					continue
				}
				teacher := d.Teachers[rng.Intn(len(d.Teachers))]
				d.Schedule = append(d.Schedule, models.ScheduleItem{
					ID:        fmt.Sprintf("sch-%s-%s-%d", section.ID, day, period.ID),
					Day:       day,
					PeriodID:  period.ID,
					SectionID: section.ID,
					Subject:   teacher.Subjects[0],
					TeacherID: teacher.ID,
				})
			}
		}
	}

	d.Announcements = []models.Announcement{{
		ID:          "ann-1",
		Title:       "تحديث الجداول الدراسية",
		Content:     "تم تحديث الجدول اليومي ليشمل 7 حصص دراسية مع فترات الصلاة والفسحة.",
		AuthorID:    "admin-1",
		Date:        now,
		TargetRoles: []models.UserRole{models.RoleStudent, models.RoleParent, models.RoleTeacher},
	}}

	d.Messages = []models.Message{{
		ID:         "msg-1",
		SenderID:   "teacher-0",
		ReceiverID: "parent-0",
		Content:    "السلام عليكم، نود إبلاغكم بتميز الطالب أمير في مادة الحاسوب.",
		Timestamp:  now,
		Read:       false,
	}}

	return d
}

// applyDemoAccounts overwrites the first parent/student/teacher so the demo
// login always lands on a known, fully linked triple.
func applyDemoAccounts(d *Data) {
	if len(d.Parents) == 0 || len(d.Students) == 0 || len(d.Teachers) == 0 {
		return
	}

	demoSection := false
	for _, s := range d.Sections {
		if s.ID == "g9-s4" {
			demoSection = true
			break
		}
	}

	d.Parents[0].Name = "مجدي العمري"

	d.Students[0].Name = "أمير مجدي العمري"
	relink(d, 0, d.Parents[0].ID)
	if demoSection {
		d.Students[0].GradeID = "g9"
		d.Students[0].SectionID = "g9-s4"
	}

	d.Teachers[0].Name = "أ. محمد سعد"
	d.Teachers[0].Subjects = []string{"الحاسوب"}
	d.Teachers[0].Avatar = avatarURL("Mohamed", "Saad", "0D9488", "fff")
	if demoSection {
		assigned := false
		for _, id := range d.Teachers[0].AssignedSections {
			if id == "g9-s4" {
				assigned = true
				break
			}
		}
		if !assigned {
			d.Teachers[0].AssignedSections = append(d.Teachers[0].AssignedSections, "g9-s4")
		}
	}
}

// relink moves a student between parents, keeping ChildrenIDs consistent
// on both sides.
func relink(d *Data, studentIdx int, parentID string) {
	student := &d.Students[studentIdx]
	for i := range d.Parents {
		p := &d.Parents[i]
		if p.ID == student.ParentID {
			for j, child := range p.ChildrenIDs {
				if child == student.ID {
					p.ChildrenIDs = append(p.ChildrenIDs[:j], p.ChildrenIDs[j+1:]...)
					break
				}
			}
		}
	}
	student.ParentID = parentID
	for i := range d.Parents {
		if d.Parents[i].ID == parentID {
			d.Parents[i].ChildrenIDs = append(d.Parents[i].ChildrenIDs, student.ID)
			return
		}
	}
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.Intn(len(values))]
}

func pickSections(rng *rand.Rand, sections []models.Section, n int) []string {
	perm := rng.Perm(len(sections))
	if n > len(perm) {
		n = len(perm)
	}
	ids := make([]string, 0, n)
	for _, idx := range perm[:n] {
		ids = append(ids, sections[idx].ID)
	}
	return ids
}

func surname(fullName string) string {
	parts := strings.Fields(fullName)
	if len(parts) < 2 {
		return fullName
	}
	return strings.Join(parts[1:], " ")
}

func avatarURL(first, last, background, color string) string {
	u := "https://ui-avatars.com/api/?name=" + url.QueryEscape(first+" "+last) + "&background=" + background
	if color != "" {
		u += "&color=" + color
	}
	return u
}
