package stockdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"findia-sentiment-engine/internal/config"
	"findia-sentiment-engine/internal/dto"
	"findia-sentiment-engine/pkg/logger"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// exchangeSuffixes are tried in order: NSE first, then BSE.
var exchangeSuffixes = []string{".NS", ".BO"}

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// client implements Repository against Yahoo Finance with a Google Finance
// scrape fallback and a synthetic last resort.
type client struct {
	cfg            *config.StockData
	log            *logger.Logger
	httpClient     *http.Client
	requestLimiter *rate.Limiter
	cache          *cache.Cache
	synthesizer    *HistorySynthesizer
}

// NewRepository creates the stock data repository. synthesizer may be nil,
// in which case a time-seeded one is used.
func NewRepository(cfg *config.StockData, log *logger.Logger, synthesizer *HistorySynthesizer) Repository {
	if synthesizer == nil {
		synthesizer = NewHistorySynthesizer(time.Now().UnixNano())
	}
	secondsPerRequest := time.Minute / time.Duration(cfg.MaxRequestPerMinute)
	return &client{
		cfg:            cfg,
		log:            log,
		httpClient:     &http.Client{Timeout: 10 * time.Second},
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
		cache:          cache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
		synthesizer:    synthesizer,
	}
}

// GetStockInfo returns a fundamentals snapshot with triple fallback:
// Yahoo quote → Google Finance scrape → zero-valued snapshot.
func (c *client) GetStockInfo(ctx context.Context, ticker string) dto.StockInfo {
	cacheKey := "info:" + ticker
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.(dto.StockInfo)
	}

	for _, suffix := range exchangeSuffixes {
		info, err := c.fetchYahooQuote(ctx, ticker, suffix)
		if err != nil {
			c.log.WarnContext(ctx, "Yahoo quote fetch failed",
				logger.StringField("ticker", ticker+suffix),
				logger.ErrorField(err),
			)
			continue
		}
		c.cache.Set(cacheKey, info, cache.DefaultExpiration)
		return info
	}

	if info, err := c.scrapeGoogleFinance(ctx, ticker); err == nil {
		c.cache.Set(cacheKey, info, cache.DefaultExpiration)
		return info
	} else {
		c.log.WarnContext(ctx, "Google Finance scrape failed",
			logger.StringField("ticker", ticker),
			logger.ErrorField(err),
		)
	}

	return dto.StockInfo{
		Ticker:      ticker,
		CompanyName: ticker,
		Error:       "Data unavailable",
	}
}

// GetHistoricalData returns roughly a month of daily candles, synthesizing
// them from the current price when every provider fails.
func (c *client) GetHistoricalData(ctx context.Context, ticker string) []dto.PricePoint {
	cacheKey := "history:" + ticker
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.([]dto.PricePoint)
	}

	for _, suffix := range exchangeSuffixes {
		history, err := c.fetchYahooChart(ctx, ticker, suffix)
		if err != nil {
			c.log.WarnContext(ctx, "Yahoo chart fetch failed",
				logger.StringField("ticker", ticker+suffix),
				logger.ErrorField(err),
			)
			continue
		}
		if len(history) > 0 {
			c.cache.Set(cacheKey, history, cache.DefaultExpiration)
			return history
		}
	}

	c.log.InfoContext(ctx, "Falling back to synthetic price history",
		logger.StringField("ticker", ticker),
	)
	info := c.GetStockInfo(ctx, ticker)
	price := info.CurrentPrice
	if price <= 0 {
		price = 1000
	}
	return c.synthesizer.Generate(price, time.Now())
}

// GetPriceChange derives the move from the previous close out of the
// fundamentals snapshot. A snapshot with no previous close (data
// unavailable, or a newly listed symbol) reports zero change.
func (c *client) GetPriceChange(ctx context.Context, ticker string) dto.PriceChange {
	info := c.GetStockInfo(ctx, ticker)
	change := dto.PriceChange{
		CurrentPrice:  info.CurrentPrice,
		PreviousClose: info.PreviousClose,
	}
	if info.PreviousClose > 0 {
		change.Change = roundTo2(info.CurrentPrice - info.PreviousClose)
		change.ChangePercent = roundTo2(change.Change / info.PreviousClose * 100)
	}
	return change
}

type yahooQuoteResponse struct {
	QuoteResponse struct {
		Result []struct {
			LongName                   string  `json:"longName"`
			ShortName                  string  `json:"shortName"`
			RegularMarketPrice         float64 `json:"regularMarketPrice"`
			RegularMarketPreviousClose float64 `json:"regularMarketPreviousClose"`
			RegularMarketOpen          float64 `json:"regularMarketOpen"`
			RegularMarketDayHigh       float64 `json:"regularMarketDayHigh"`
			RegularMarketDayLow        float64 `json:"regularMarketDayLow"`
			RegularMarketVolume        int64   `json:"regularMarketVolume"`
			MarketCap                  int64   `json:"marketCap"`
			TrailingPE                 float64 `json:"trailingPE"`
			EpsTrailingTwelveMonths    float64 `json:"epsTrailingTwelveMonths"`
			FiftyTwoWeekHigh           float64 `json:"fiftyTwoWeekHigh"`
			FiftyTwoWeekLow            float64 `json:"fiftyTwoWeekLow"`
			DividendYield              float64 `json:"dividendYield"`
			Beta                       float64 `json:"beta"`
			Sector                     string  `json:"sector"`
			Industry                   string  `json:"industry"`
			Currency                   string  `json:"currency"`
		} `json:"result"`
	} `json:"quoteResponse"`
}

func (c *client) fetchYahooQuote(ctx context.Context, ticker, suffix string) (dto.StockInfo, error) {
	reqURL := fmt.Sprintf("%s/v7/finance/quote?symbols=%s%s", c.cfg.YahooBaseURL, ticker, suffix)
	body, err := c.sendRequest(ctx, reqURL)
	if err != nil {
		return dto.StockInfo{}, err
	}

	var parsed yahooQuoteResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return dto.StockInfo{}, fmt.Errorf("failed to decode quote response: %w", err)
	}
	if len(parsed.QuoteResponse.Result) == 0 {
		return dto.StockInfo{}, fmt.Errorf("no quote result for %s%s", ticker, suffix)
	}

	q := parsed.QuoteResponse.Result[0]
	if q.RegularMarketPrice <= 0 {
		return dto.StockInfo{}, fmt.Errorf("quote for %s%s has no price", ticker, suffix)
	}

	name := q.LongName
	if name == "" {
		name = q.ShortName
	}
	if name == "" {
		name = ticker
	}
	sector := q.Sector
	if sector == "" {
		sector = "N/A"
	}
	industry := q.Industry
	if industry == "" {
		industry = "N/A"
	}
	currency := q.Currency
	if currency == "" {
		currency = "INR"
	}

	return dto.StockInfo{
		Ticker:        ticker,
		CompanyName:   name,
		CurrentPrice:  q.RegularMarketPrice,
		PreviousClose: q.RegularMarketPreviousClose,
		Open:          q.RegularMarketOpen,
		DayHigh:       q.RegularMarketDayHigh,
		DayLow:        q.RegularMarketDayLow,
		Volume:        q.RegularMarketVolume,
		MarketCap:     q.MarketCap,
		PERatio:       q.TrailingPE,
		EPS:           q.EpsTrailingTwelveMonths,
		Week52High:    q.FiftyTwoWeekHigh,
		Week52Low:     q.FiftyTwoWeekLow,
		DividendYield: q.DividendYield,
		Beta:          q.Beta,
		Sector:        sector,
		Industry:      industry,
		Currency:      currency,
	}, nil
}

type yahooChartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []float64 `json:"open"`
					High   []float64 `json:"high"`
					Low    []float64 `json:"low"`
					Close  []float64 `json:"close"`
					Volume []int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
	} `json:"chart"`
}

func (c *client) fetchYahooChart(ctx context.Context, ticker, suffix string) ([]dto.PricePoint, error) {
	reqURL := fmt.Sprintf("%s/v8/finance/chart/%s%s?range=1mo&interval=1d", c.cfg.YahooBaseURL, ticker, suffix)
	body, err := c.sendRequest(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var parsed yahooChartResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode chart response: %w", err)
	}
	if len(parsed.Chart.Result) == 0 || len(parsed.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no chart result for %s%s", ticker, suffix)
	}

	result := parsed.Chart.Result[0]
	quote := result.Indicators.Quote[0]

	history := make([]dto.PricePoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == 0 {
			continue
		}
		point := dto.PricePoint{
			Date:  time.Unix(ts, 0).Format("2006-01-02"),
			Close: roundTo2(quote.Close[i]),
		}
		if i < len(quote.Open) {
			point.Open = roundTo2(quote.Open[i])
		}
		if i < len(quote.High) {
			point.High = roundTo2(quote.High[i])
		}
		if i < len(quote.Low) {
			point.Low = roundTo2(quote.Low[i])
		}
		if i < len(quote.Volume) {
			point.Volume = quote.Volume[i]
		}
		history = append(history, point)
	}
	return history, nil
}

func (c *client) sendRequest(ctx context.Context, reqURL string) ([]byte, error) {
	if err := c.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for request limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "application/json, text/plain, */*")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-OK response: %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
