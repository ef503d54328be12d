package service

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alnajat-edu/portal-api/internal/models"
	"github.com/alnajat-edu/portal-api/internal/store"
	appErrors "github.com/alnajat-edu/portal-api/pkg/errors"
)

// UserService manages the four account collections.
type UserService struct {
	store     *store.Store
	validator *validator.Validate
	logger    *zap.Logger
	newID     func() string
}

// NewUserService constructs the user service.
func NewUserService(st *store.Store, validate *validator.Validate, logger *zap.Logger) *UserService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &UserService{store: st, validator: validate, logger: logger, newID: uuid.NewString}
	_ = svc.validator.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		return models.UserRole(fl.Field().String()).Valid()
	})
	return svc
}

// List returns every user across the four collections: admins first, then
// teachers, students and parents.
func (s *UserService) List() []models.User {
	return s.store.AllUsers()
}

// Get resolves the full variant record for an id.
func (s *UserService) Get(id string) (models.Account, error) {
	account, ok := s.store.AccountByID(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
	}
	return account, nil
}

// CreateUserRequest is a role-discriminated account payload. The variant
// fields are read according to Role and ignored otherwise.
type CreateUserRequest struct {
	Role   string `json:"role" validate:"required,user_role"`
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Avatar string `json:"avatar"`

	// Student fields.
	StudentID string `json:"student_id"`
	GradeID   string `json:"grade_id"`
	SectionID string `json:"section_id"`
	ParentID  string `json:"parent_id"`

	// Teacher fields.
	Subjects         []string `json:"subjects"`
	AssignedSections []string `json:"assigned_sections"`

	// Parent fields.
	ChildrenIDs []string `json:"children_ids"`
}

// Create adds a user to the collection matching its role.
func (s *UserService) Create(req CreateUserRequest) (models.Account, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid user payload")
	}

	role := models.UserRole(req.Role)
	base := models.User{
		ID:     role2prefix(role) + s.newID(),
		Name:   req.Name,
		Email:  req.Email,
		Role:   role,
		Avatar: req.Avatar,
	}

	var account models.Account
	switch role {
	case models.RoleStudent:
		account = models.Student{
			User:      base,
			StudentID: req.StudentID,
			GradeID:   req.GradeID,
			SectionID: req.SectionID,
			ParentID:  req.ParentID,
		}
	case models.RoleTeacher:
		account = models.Teacher{
			User:             base,
			Subjects:         req.Subjects,
			AssignedSections: req.AssignedSections,
		}
	case models.RoleParent:
		account = models.Parent{User: base, ChildrenIDs: req.ChildrenIDs}
	case models.RoleAdmin:
		account = models.Admin{User: base}
	}

	s.store.AddUser(account)
	s.logger.Info("user created", zap.String("id", base.ID), zap.String("role", string(role)))
	return account, nil
}

// Delete removes the one user with the id. Records referencing the user
// (attendance, messages, schedule, results) stay behind untouched.
func (s *UserService) Delete(id string) error {
	if !s.store.DeleteUser(id) {
		return appErrors.Clone(appErrors.ErrNotFound, "user not found")
	}
	s.logger.Info("user deleted", zap.String("id", id))
	return nil
}

func role2prefix(role models.UserRole) string {
	switch role {
	case models.RoleStudent:
		return "student-"
	case models.RoleTeacher:
		return "teacher-"
	case models.RoleParent:
		return "parent-"
	default:
		return "admin-"
	}
}
