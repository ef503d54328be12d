package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alnajat-edu/portal-api/internal/middleware"
	"github.com/alnajat-edu/portal-api/internal/service"
	appErrors "github.com/alnajat-edu/portal-api/pkg/errors"
	"github.com/alnajat-edu/portal-api/pkg/export"
	"github.com/alnajat-edu/portal-api/pkg/response"
)

// AssistantHandler exposes the school assistant endpoints.
type AssistantHandler struct {
	assistant *service.AssistantService
	slides    *export.SlidesExporter
}

// NewAssistantHandler constructs handler.
func NewAssistantHandler(assistant *service.AssistantService, slides *export.SlidesExporter) *AssistantHandler {
	return &AssistantHandler{assistant: assistant, slides: slides}
}

type chatRequest struct {
	Message string             `json:"message" binding:"required"`
	History []service.ChatTurn `json:"history"`
}

type chatResponse struct {
	Reply    string            `json:"reply"`
	HasSlide bool              `json:"has_slides"`
	Deck     *export.SlideDeck `json:"deck,omitempty"`
}

// Chat godoc
// @Summary Chat with the school assistant
// @Description Replies in Arabic. When the reply contains a slide deck it is
// @Description returned parsed alongside the raw text.
// @Tags Assistant
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user id"
// @Param payload body chatRequest true "Chat payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /assistant/chat [post]
func (h *AssistantHandler) Chat(c *gin.Context) {
	account, ok := middleware.UserFromContext(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "X-User-ID header is required"))
		return
	}
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "message is required"))
		return
	}

	reply := h.assistant.Chat(c.Request.Context(), account.Base(), req.Message, req.History)

	out := chatResponse{Reply: reply}
	if deck, ok := service.ParseSlideDeck(reply); ok {
		out.HasSlide = true
		out.Deck = &deck
	}
	response.JSON(c, http.StatusOK, out, nil)
}

type speechRequest struct {
	Text string `json:"text" binding:"required"`
}

// Speech godoc
// @Summary Synthesize Arabic speech for a reply
// @Description Returns base64-encoded audio, or an empty string when the
// @Description provider is unavailable.
// @Tags Assistant
// @Accept json
// @Produce json
// @Param payload body speechRequest true "Text to voice"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /assistant/speech [post]
func (h *AssistantHandler) Speech(c *gin.Context) {
	var req speechRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "text is required"))
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"audio": h.assistant.Speech(c.Request.Context(), req.Text)}, nil)
}

type slidesRequest struct {
	Text string `json:"text" binding:"required"`
}

// SlidesPDF godoc
// @Summary Render an assistant reply's slide deck as PDF
// @Tags Assistant
// @Accept json
// @Produce application/pdf
// @Param payload body slidesRequest true "Assistant reply containing a deck"
// @Success 200 {file} binary
// @Failure 400 {object} response.Envelope
// @Router /assistant/slides.pdf [post]
func (h *AssistantHandler) SlidesPDF(c *gin.Context) {
	var req slidesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "text is required"))
		return
	}

	deck, ok := service.ParseSlideDeck(req.Text)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "text does not contain a slide deck"))
		return
	}

	out, err := h.slides.Render(deck)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, http.StatusInternalServerError, "render slide deck"))
		return
	}

	c.Header("Content-Disposition", "attachment; filename=slides.pdf")
	c.Data(http.StatusOK, "application/pdf", out)
}
