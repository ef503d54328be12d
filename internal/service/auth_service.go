package service

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/alnajat-edu/portal-api/internal/models"
	"github.com/alnajat-edu/portal-api/internal/store"
	appErrors "github.com/alnajat-edu/portal-api/pkg/errors"
)

// AuthService implements the portal's credential-free login: the caller
// picks a role and optionally a user id, and gets that account back. No
// passwords, no tokens; access control is a non-goal of the portal.
type AuthService struct {
	store     *store.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAuthService constructs the auth service.
func NewAuthService(st *store.Store, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &AuthService{store: st, validator: validate, logger: logger}
	_ = svc.validator.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		return models.UserRole(fl.Field().String()).Valid()
	})
	return svc
}

// LoginRequest selects a role, and optionally a specific account.
type LoginRequest struct {
	Role   string `json:"role" validate:"required,user_role"`
	UserID string `json:"user_id"`
}

// Login resolves the account for the request. With no user id it falls
// back to the demo account of the role: the first record in the role's
// collection, which the seed pins to a known identity.
func (s *AuthService) Login(req LoginRequest) (models.Account, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload")
	}

	if req.UserID != "" {
		account, ok := s.store.AccountByID(req.UserID)
		if !ok {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		if account.Base().Role != models.UserRole(req.Role) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "user does not have the requested role")
		}
		s.logger.Info("login", zap.String("user_id", req.UserID), zap.String("role", req.Role))
		return account, nil
	}

	var account models.Account
	switch models.UserRole(req.Role) {
	case models.RoleAdmin:
		if admins := s.store.Admins(); len(admins) > 0 {
			account = admins[0]
		}
	case models.RoleTeacher:
		if teachers := s.store.Teachers(); len(teachers) > 0 {
			account = teachers[0]
		}
	case models.RoleStudent:
		if students := s.store.Students(); len(students) > 0 {
			account = students[0]
		}
	case models.RoleParent:
		if parents := s.store.Parents(); len(parents) > 0 {
			account = parents[0]
		}
	}
	if account == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no account available for role")
	}
	s.logger.Info("demo login", zap.String("role", req.Role), zap.String("user_id", account.Base().ID))
	return account, nil
}
