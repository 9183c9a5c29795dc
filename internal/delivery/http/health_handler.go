package http

import (
	"net/http"

	"findia-sentiment-engine/internal/dto"

	"github.com/labstack/echo/v4"
)

// HealthHandler serves liveness endpoints.
type HealthHandler struct {
	serviceName string
	version     string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(serviceName, version string) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version}
}

// RegisterRoutes registers the health routes on the root Echo instance.
func (h *HealthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Status)
	e.GET("/health", h.Health)
}

// Status godoc
// @Summary Service status
// @Tags health
// @Produce  json
// @Success 200 {object} dto.HealthResponse
// @Router / [get]
func (h *HealthHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "running",
		Service: h.serviceName,
		Version: h.version,
	})
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce  json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "healthy",
		Service: h.serviceName,
		Version: h.version,
	})
}
