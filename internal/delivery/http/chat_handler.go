package http

import (
	"net/http"
	"time"

	"findia-sentiment-engine/internal/chat"
	"findia-sentiment-engine/internal/dto"
	"findia-sentiment-engine/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ChatHandler handles HTTP requests for the chat assistant.
type ChatHandler struct {
	service *chat.Service
	logger  *logger.Logger
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(service *chat.Service, logger *logger.Logger) *ChatHandler {
	return &ChatHandler{service: service, logger: logger}
}

// RegisterRoutes registers the chat routes to the Echo group.
func (h *ChatHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/chat", h.Chat)
}

// Chat godoc
// @Summary Ask the sentiment assistant
// @Description Intent-matched assistant that reads pipeline output; it never recomputes sentiment
// @Tags chat
// @Accept  json
// @Produce  json
// @Param   message  body   dto.ChatRequest  true  "Chat message"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /chat [post]
func (h *ChatHandler) Chat(c echo.Context) error {
	var req dto.ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}
	if req.Message == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Field 'message' is required"})
	}

	response := h.service.Respond(c.Request().Context(), req.SessionID, req.Message, req.Context)

	return c.JSON(http.StatusOK, dto.ChatResponse{
		Response:  response,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
