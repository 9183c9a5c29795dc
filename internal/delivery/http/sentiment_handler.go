package http

import (
	"net/http"
	"strconv"

	"findia-sentiment-engine/internal/analysis"
	"findia-sentiment-engine/internal/dto"
	"findia-sentiment-engine/pkg/logger"

	"github.com/labstack/echo/v4"
)

const (
	defaultAnalysisDays = 7
	minAnalysisDays     = 1
	maxAnalysisDays     = 30
)

// SentimentHandler handles HTTP requests for sentiment analysis.
type SentimentHandler struct {
	service *analysis.Service
	logger  *logger.Logger
}

// NewSentimentHandler creates a new SentimentHandler.
func NewSentimentHandler(service *analysis.Service, logger *logger.Logger) *SentimentHandler {
	return &SentimentHandler{service: service, logger: logger}
}

// RegisterRoutes registers the sentiment routes to the Echo group.
func (h *SentimentHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/sentiment", h.AnalyzeSentiment)
}

// AnalyzeSentiment godoc
// @Summary Analyze news sentiment for a stock
// @Description Runs the full pipeline: news aggregation, per-article scoring, trend correlation and explanation
// @Tags sentiment
// @Produce  json
// @Param   stock  query   string  true   "Stock ticker"
// @Param   days   query   int     false  "Lookback window in days (1-30)"
// @Success 200 {object} dto.AnalysisResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sentiment [get]
func (h *SentimentHandler) AnalyzeSentiment(c echo.Context) error {
	stock := c.QueryParam("stock")
	if stock == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Query parameter 'stock' is required"})
	}

	days := defaultAnalysisDays
	if daysParam := c.QueryParam("days"); daysParam != "" {
		parsed, err := strconv.Atoi(daysParam)
		if err != nil || parsed < minAnalysisDays || parsed > maxAnalysisDays {
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Query parameter 'days' must be an integer between 1 and 30"})
		}
		days = parsed
	}

	result, err := h.service.Analyze(c.Request().Context(), stock, days)
	if err != nil {
		if ite, ok := dto.AsInvalidTicker(err); ok {
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid stock ticker: " + ite.Ticker + ". Please use a valid Indian stock ticker.",
			})
		}
		h.logger.Error("Sentiment analysis failed", logger.StringField("stock", stock), logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to analyze sentiment"})
	}

	return c.JSON(http.StatusOK, result)
}
