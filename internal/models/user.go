package models

// UserRole represents the available portal roles.
type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleTeacher UserRole = "TEACHER"
	RoleStudent UserRole = "STUDENT"
	RoleParent  UserRole = "PARENT"
)

// Valid returns true when the role is a supported value.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent, RoleParent:
		return true
	default:
		return false
	}
}

// User carries the fields shared by every account variant. The role is
// immutable after creation and ids are unique across all variants combined.
type User struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`
	Avatar string   `json:"avatar,omitempty"`
}

// Account is the closed union over the four user variants. Consumers
// dispatch with a type switch over Student, Teacher, Parent and Admin;
// the unexported marker keeps the set closed to this package.
type Account interface {
	Base() User
	isAccount()
}

// Student is a pupil enrolled in exactly one section of one grade.
type Student struct {
	User
	StudentID string `json:"student_id"`
	GradeID   string `json:"grade_id"`
	SectionID string `json:"section_id"`
	ParentID  string `json:"parent_id"`
}

// Teacher teaches one or more subjects across assigned sections.
type Teacher struct {
	User
	Subjects         []string `json:"subjects"`
	AssignedSections []string `json:"assigned_sections"`
}

// Parent is a guardian linked to one or more students.
type Parent struct {
	User
	ChildrenIDs []string `json:"children_ids"`
}

// Admin is a school administrator.
type Admin struct {
	User
}

// Base returns the shared user fields.
func (s Student) Base() User { return s.User }

// Base returns the shared user fields.
func (t Teacher) Base() User { return t.User }

// Base returns the shared user fields.
func (p Parent) Base() User { return p.User }

// Base returns the shared user fields.
func (a Admin) Base() User { return a.User }

func (Student) isAccount() {}
func (Teacher) isAccount() {}
func (Parent) isAccount()  {}
func (Admin) isAccount()   {}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
