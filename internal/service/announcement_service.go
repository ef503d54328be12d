package service

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/alnajat-edu/portal-api/internal/models"
	"github.com/alnajat-edu/portal-api/internal/store"
	appErrors "github.com/alnajat-edu/portal-api/pkg/errors"
)

// AnnouncementService publishes and lists announcements.
type AnnouncementService struct {
	store     *store.Store
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewAnnouncementService constructs the announcement service.
func NewAnnouncementService(st *store.Store, validate *validator.Validate, logger *zap.Logger) *AnnouncementService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &AnnouncementService{store: st, validator: validate, logger: logger, now: time.Now}
	_ = svc.validator.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		return models.UserRole(fl.Field().String()).Valid()
	})
	return svc
}

// CreateAnnouncementRequest describes a broadcast payload.
type CreateAnnouncementRequest struct {
	Title       string   `json:"title" validate:"required"`
	Content     string   `json:"content" validate:"required"`
	AuthorID    string   `json:"author_id" validate:"required"`
	TargetRoles []string `json:"target_roles" validate:"required,min=1,dive,user_role"`
}

// Create publishes an announcement. Announcements are immutable once
// created; there is no update operation.
func (s *AnnouncementService) Create(req CreateAnnouncementRequest) (models.Announcement, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Announcement{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid announcement payload")
	}

	roles := make([]models.UserRole, 0, len(req.TargetRoles))
	for _, r := range req.TargetRoles {
		roles = append(roles, models.UserRole(r))
	}

	ann := s.store.AddAnnouncement(models.Announcement{
		Title:       req.Title,
		Content:     req.Content,
		AuthorID:    req.AuthorID,
		Date:        s.now(),
		TargetRoles: roles,
	})
	s.logger.Info("announcement published", zap.String("id", ann.ID), zap.String("author_id", ann.AuthorID))
	return ann, nil
}

// ListForRole returns the announcements targeting the role, most recent
// first. An empty role lists everything.
func (s *AnnouncementService) ListForRole(role models.UserRole) []models.Announcement {
	all := s.store.Announcements()
	if role == "" {
		return all
	}
	out := make([]models.Announcement, 0, len(all))
	for _, a := range all {
		if a.VisibleTo(role) {
			out = append(out, a)
		}
	}
	return out
}
