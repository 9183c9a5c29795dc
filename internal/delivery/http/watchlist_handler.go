package http

import (
	"errors"
	"net/http"

	"findia-sentiment-engine/internal/dto"
	"findia-sentiment-engine/internal/entity"
	"findia-sentiment-engine/internal/repository"
	"findia-sentiment-engine/internal/watchlist"
	"findia-sentiment-engine/pkg/logger"

	"github.com/labstack/echo/v4"
)

// WatchlistHandler handles HTTP requests for watchlists. User identity is
// fixed until authentication moves in scope.
type WatchlistHandler struct {
	service *watchlist.Service
	logger  *logger.Logger
}

// NewWatchlistHandler creates a new WatchlistHandler.
func NewWatchlistHandler(service *watchlist.Service, logger *logger.Logger) *WatchlistHandler {
	return &WatchlistHandler{service: service, logger: logger}
}

// RegisterRoutes registers the watchlist routes to the Echo group.
func (h *WatchlistHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/watchlist", h.AddToWatchlist)
	g.GET("/watchlist", h.GetWatchlist)
	g.DELETE("/watchlist/:ticker", h.RemoveFromWatchlist)
}

// AddToWatchlist godoc
// @Summary Add a stock to the watchlist
// @Tags watchlist
// @Accept  json
// @Produce  json
// @Param   item  body   dto.WatchlistAddRequest  true  "Ticker to add"
// @Success 200 {object} dto.WatchlistAddResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /watchlist [post]
func (h *WatchlistHandler) AddToWatchlist(c echo.Context) error {
	var req dto.WatchlistAddRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}

	resp, err := h.service.Add(c.Request().Context(), entity.DefaultUserID, req.Ticker)
	if err != nil {
		if ite, ok := dto.AsInvalidTicker(err); ok {
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid stock ticker: " + ite.Ticker})
		}
		if errors.Is(err, repository.ErrAlreadyInWatchlist) {
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: req.Ticker + " is already in your watchlist"})
		}
		h.logger.Error("Failed to add to watchlist", logger.StringField("ticker", req.Ticker), logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to add to watchlist"})
	}

	return c.JSON(http.StatusOK, resp)
}

// GetWatchlist godoc
// @Summary Get the watchlist
// @Tags watchlist
// @Produce  json
// @Success 200 {object} dto.WatchlistResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /watchlist [get]
func (h *WatchlistHandler) GetWatchlist(c echo.Context) error {
	resp, err := h.service.List(c.Request().Context(), entity.DefaultUserID)
	if err != nil {
		h.logger.Error("Failed to get watchlist", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to get watchlist"})
	}
	return c.JSON(http.StatusOK, resp)
}

// RemoveFromWatchlist godoc
// @Summary Remove a stock from the watchlist
// @Tags watchlist
// @Produce  json
// @Param   ticker  path   string  true  "Stock ticker"
// @Success 200 {object} dto.WatchlistRemoveResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /watchlist/{ticker} [delete]
func (h *WatchlistHandler) RemoveFromWatchlist(c echo.Context) error {
	ticker := c.Param("ticker")

	resp, err := h.service.Remove(c.Request().Context(), entity.DefaultUserID, ticker)
	if err != nil {
		if errors.Is(err, repository.ErrNotInWatchlist) {
			return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: ticker + " not found in watchlist"})
		}
		h.logger.Error("Failed to remove from watchlist", logger.StringField("ticker", ticker), logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to remove from watchlist"})
	}

	return c.JSON(http.StatusOK, resp)
}
