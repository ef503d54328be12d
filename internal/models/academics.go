package models

// Exam is an assessment scheduled for one section.
type Exam struct {
	ID        string  `json:"id"`
	SectionID string  `json:"section_id"`
	Subject   string  `json:"subject"`
	Title     string  `json:"title"`
	MaxScore  float64 `json:"max_score"`
	Date      string  `json:"date"`
}

// GradeResult is one student's score for one exam, keyed logically by
// (exam, student). Feedback survives score upserts.
type GradeResult struct {
	ID        string  `json:"id"`
	ExamID    string  `json:"exam_id"`
	StudentID string  `json:"student_id"`
	Score     float64 `json:"score"`
	Feedback  string  `json:"feedback,omitempty"`
}
