package models

import "time"

// AttendanceStatus represents the status for attendance records.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "PRESENT"
	AttendanceAbsent  AttendanceStatus = "ABSENT"
	AttendanceLate    AttendanceStatus = "LATE"
	AttendanceExcused AttendanceStatus = "EXCUSED"
)

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceExcused:
		return true
	default:
		return false
	}
}

// AttendanceKey is the logical identity of an attendance record. At most
// one record exists per key at any time.
type AttendanceKey struct {
	Date      string
	PeriodID  int
	StudentID string
}

// AttendanceRecord captures one student's status for one period of one day.
// Date uses the YYYY-MM-DD form.
type AttendanceRecord struct {
	ID        string           `json:"id"`
	Date      string           `json:"date"`
	PeriodID  int              `json:"period_id"`
	StudentID string           `json:"student_id"`
	SectionID string           `json:"section_id"`
	Status    AttendanceStatus `json:"status"`
	MarkedBy  string           `json:"marked_by"`
	Timestamp time.Time        `json:"timestamp"`
}

// Key returns the record's logical identity.
func (r AttendanceRecord) Key() AttendanceKey {
	return AttendanceKey{Date: r.Date, PeriodID: r.PeriodID, StudentID: r.StudentID}
}

// AttendanceSummary aggregates a student's records by status.
type AttendanceSummary struct {
	Present int     `json:"present"`
	Absent  int     `json:"absent"`
	Late    int     `json:"late"`
	Excused int     `json:"excused"`
	Total   int     `json:"total"`
	Rate    float64 `json:"rate"`
}
