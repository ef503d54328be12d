package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alnajat-edu/portal-api/internal/middleware"
	"github.com/alnajat-edu/portal-api/internal/service"
	appErrors "github.com/alnajat-edu/portal-api/pkg/errors"
	"github.com/alnajat-edu/portal-api/pkg/response"
)

// MessageHandler exposes chat endpoints.
type MessageHandler struct {
	messages *service.MessageService
	metrics  *service.MetricsService
}

// NewMessageHandler constructs handler.
func NewMessageHandler(messages *service.MessageService, metrics *service.MetricsService) *MessageHandler {
	return &MessageHandler{messages: messages, metrics: metrics}
}

// Send godoc
// @Summary Send a direct message
// @Tags Messages
// @Accept json
// @Produce json
// @Param payload body service.SendMessageRequest true "Message payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /messages [post]
func (h *MessageHandler) Send(c *gin.Context) {
	var req service.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid message payload"))
		return
	}

	message, err := h.messages.Send(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.metrics.RecordStoreMutation("send_message")
	response.Created(c, message)
}

// Conversation godoc
// @Summary Conversation between the acting user and one contact
// @Tags Messages
// @Produce json
// @Param X-User-ID header string true "Acting user id"
// @Param with query string true "Other participant id"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /messages [get]
func (h *MessageHandler) Conversation(c *gin.Context) {
	account, ok := middleware.UserFromContext(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "X-User-ID header is required"))
		return
	}
	otherID := c.Query("with")
	if otherID == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "with query parameter is required"))
		return
	}
	response.JSON(c, http.StatusOK, h.messages.Conversation(account.Base().ID, otherID), nil)
}

type markReadRequest struct {
	SenderID string `json:"sender_id" binding:"required"`
}

// MarkRead godoc
// @Summary Mark a conversation as read
// @Description Flags every unread message from sender_id to the acting user.
// @Tags Messages
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user id"
// @Param payload body markReadRequest true "Sender to acknowledge"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /messages/read [post]
func (h *MessageHandler) MarkRead(c *gin.Context) {
	account, ok := middleware.UserFromContext(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "X-User-ID header is required"))
		return
	}
	var req markReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "sender_id is required"))
		return
	}

	updated := h.messages.MarkRead(req.SenderID, account.Base().ID)
	response.JSON(c, http.StatusOK, gin.H{"updated": updated}, nil)
}

// Contacts godoc
// @Summary Contact list of the acting user
// @Description Role-aware contact list, most recent conversations first.
// @Tags Messages
// @Produce json
// @Param X-User-ID header string true "Acting user id"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /messages/contacts [get]
func (h *MessageHandler) Contacts(c *gin.Context) {
	account, ok := middleware.UserFromContext(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "X-User-ID header is required"))
		return
	}

	contacts, err := h.messages.Contacts(account.Base().ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, contacts, nil)
}

// Unread godoc
// @Summary Unread message count of the acting user
// @Tags Messages
// @Produce json
// @Param X-User-ID header string true "Acting user id"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /messages/unread [get]
func (h *MessageHandler) Unread(c *gin.Context) {
	account, ok := middleware.UserFromContext(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "X-User-ID header is required"))
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"unread": h.messages.UnreadTotal(account.Base().ID)}, nil)
}
