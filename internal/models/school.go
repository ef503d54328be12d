package models

// Grade is a school year level, e.g. "الصف السادس".
type Grade struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Section is a class-group of students within a grade.
type Section struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	GradeID string `json:"grade_id"`
}

// Period is one fixed daily teaching slot. Ordinal ids are stable and
// globally shared across all sections.
type Period struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// ScheduleItem ties a section and period on a given day to a teacher and
// subject. Slots without an item are free periods.
type ScheduleItem struct {
	ID        string `json:"id"`
	Day       string `json:"day"`
	PeriodID  int    `json:"period_id"`
	SectionID string `json:"section_id"`
	Subject   string `json:"subject"`
	TeacherID string `json:"teacher_id"`
}
