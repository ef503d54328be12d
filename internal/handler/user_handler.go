package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alnajat-edu/portal-api/internal/service"
	appErrors "github.com/alnajat-edu/portal-api/pkg/errors"
	"github.com/alnajat-edu/portal-api/pkg/response"
)

// UserHandler exposes user management endpoints.
type UserHandler struct {
	users   *service.UserService
	metrics *service.MetricsService
}

// NewUserHandler constructs handler.
func NewUserHandler(users *service.UserService, metrics *service.MetricsService) *UserHandler {
	return &UserHandler{users: users, metrics: metrics}
}

// List godoc
// @Summary List all users
// @Description Admins, teachers, students and parents, in that order
// @Tags Users
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.users.List(), nil)
}

// Get godoc
// @Summary Get one user
// @Tags Users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	account, err := h.users.Get(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, account, nil)
}

// Create godoc
// @Summary Create a user
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body service.CreateUserRequest true "User payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid user payload"))
		return
	}

	account, err := h.users.Create(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.metrics.RecordStoreMutation("add_user")
	response.Created(c, account)
}

// Delete godoc
// @Summary Delete a user
// @Description Removes the user only; dependent records are not cascaded.
// @Tags Users
// @Param id path string true "User id"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.users.Delete(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	h.metrics.RecordStoreMutation("delete_user")
	response.NoContent(c)
}
