package http

import (
	"net/http"
	"strings"

	"findia-sentiment-engine/internal/dto"
	"findia-sentiment-engine/internal/registry"
	"findia-sentiment-engine/pkg/logger"

	"github.com/labstack/echo/v4"
)

const searchResultLimit = 10

// SearchHandler handles stock search and validation requests.
type SearchHandler struct {
	registry *registry.Registry
	logger   *logger.Logger
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(reg *registry.Registry, logger *logger.Logger) *SearchHandler {
	return &SearchHandler{registry: reg, logger: logger}
}

// RegisterRoutes registers the search routes to the Echo group.
func (h *SearchHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/search", h.SearchStocks)
	g.GET("/stocks", h.GetAllStocks)
	g.GET("/validate/:ticker", h.ValidateTicker)
}

// SearchStocks godoc
// @Summary Search for Indian stocks
// @Description Autocomplete search over tickers and company names
// @Tags search
// @Produce  json
// @Param   q  query   string  true  "Search query"
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /search [get]
func (h *SearchHandler) SearchStocks(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Query parameter 'q' is required"})
	}

	results := toListings(h.registry.Search(query, searchResultLimit))
	return c.JSON(http.StatusOK, dto.SearchResponse{
		Query:   query,
		Results: results,
		Count:   len(results),
	})
}

// GetAllStocks godoc
// @Summary List all available Indian stocks
// @Tags search
// @Produce  json
// @Success 200 {object} dto.StocksResponse
// @Router /stocks [get]
func (h *SearchHandler) GetAllStocks(c echo.Context) error {
	stocks := toListings(h.registry.All())
	return c.JSON(http.StatusOK, dto.StocksResponse{
		Stocks: stocks,
		Count:  len(stocks),
	})
}

// ValidateTicker godoc
// @Summary Validate an Indian stock ticker
// @Tags search
// @Produce  json
// @Param   ticker  path   string  true  "Stock ticker"
// @Success 200 {object} dto.ValidateResponse
// @Router /validate/{ticker} [get]
func (h *SearchHandler) ValidateTicker(c echo.Context) error {
	ticker := strings.ToUpper(c.Param("ticker"))

	companyName, ok := h.registry.CompanyName(ticker)
	if !ok {
		return c.JSON(http.StatusOK, dto.ValidateResponse{
			Valid:   false,
			Ticker:  ticker,
			Message: "Invalid ticker. Please use a valid Indian stock ticker.",
		})
	}

	return c.JSON(http.StatusOK, dto.ValidateResponse{
		Valid:       true,
		Ticker:      ticker,
		CompanyName: companyName,
	})
}

func toListings(listings []registry.Listing) []dto.Listing {
	results := make([]dto.Listing, 0, len(listings))
	for _, listing := range listings {
		results = append(results, dto.Listing{
			Ticker:      listing.Ticker,
			CompanyName: listing.CompanyName,
		})
	}
	return results
}
