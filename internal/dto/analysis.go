package dto

// Sentiment labels assigned to individual articles.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Aggregate signal labels.
const (
	SignalBullish = "bullish"
	SignalBearish = "bearish"
	SignalNeutral = "neutral"
)

// Article is one news item fetched for a ticker. It is created per request,
// immutable once scored, and never persisted.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	PublishedAt string `json:"published_at"`
	Content     string `json:"content,omitempty"`

	// Populated by the scorer.
	Sentiment      string  `json:"sentiment,omitempty"`
	SentimentScore float64 `json:"sentiment_score"`
	Confidence     float64 `json:"confidence"`
}

// AggregateSentiment is the canonical per-ticker signal derived once per
// request from the scored article set.
type AggregateSentiment struct {
	Label           string  `json:"label"`
	AverageScore    float64 `json:"average_score"`
	CumulativeScore float64 `json:"cumulative_score"`
	PositiveCount   int     `json:"positive_count"`
	NegativeCount   int     `json:"negative_count"`
	NeutralCount    int     `json:"neutral_count"`

	// RawAverage is the unrounded mean the label was derived from. The
	// 0.15 deadband is applied to this value, not the rounded one.
	RawAverage float64 `json:"-"`
}

// StockInfo is a fundamentals snapshot sourced from an external provider.
type StockInfo struct {
	Ticker        string  `json:"ticker"`
	CompanyName   string  `json:"company_name"`
	CurrentPrice  float64 `json:"current_price"`
	PreviousClose float64 `json:"previous_close"`
	Open          float64 `json:"open"`
	DayHigh       float64 `json:"day_high"`
	DayLow        float64 `json:"day_low"`
	Volume        int64   `json:"volume"`
	MarketCap     int64   `json:"market_cap"`
	PERatio       float64 `json:"pe_ratio"`
	EPS           float64 `json:"eps"`
	Week52High    float64 `json:"week_52_high"`
	Week52Low     float64 `json:"week_52_low"`
	DividendYield float64 `json:"dividend_yield"`
	Beta          float64 `json:"beta"`
	Sector        string  `json:"sector"`
	Industry      string  `json:"industry"`
	Currency      string  `json:"currency"`
	Error         string  `json:"error,omitempty"`
}

// PriceChange is the move from the previous close to the current price.
// A snapshot without a usable previous close reports zero change.
type PriceChange struct {
	CurrentPrice  float64 `json:"current_price"`
	PreviousClose float64 `json:"previous_close"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
}

// PricePoint is one trading day of price history.
type PricePoint struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// DailyTrendPoint is one calendar day's merged sentiment/price view.
// NewsCount == 0 marks a synthesized sentiment value.
type DailyTrendPoint struct {
	Date           string  `json:"date"`
	Price          float64 `json:"price"`
	SentimentScore float64 `json:"sentiment_score"`
	NewsCount      int     `json:"news_count"`
}

// AnalysisResult is the orchestrator's canonical output. Downstream
// consumers read this object and never recompute sentiment from raw
// articles.
type AnalysisResult struct {
	Stock                 string            `json:"stock"`
	CompanyName           string            `json:"company_name"`
	SentimentLabel        string            `json:"sentiment_label"`
	SentimentScore        float64           `json:"sentiment_score"`
	PositiveCount         int               `json:"positive_count"`
	NegativeCount         int               `json:"negative_count"`
	NeutralCount          int               `json:"neutral_count"`
	Explanation           string            `json:"explanation"`
	News                  []Article         `json:"news"`
	StockData             StockInfo         `json:"stock_data"`
	SentimentTrend        []DailyTrendPoint `json:"sentiment_trend,omitempty"`
	PredictiveReliability float64           `json:"predictive_reliability"`
	SectorContagion       float64           `json:"sector_contagion"`
	SectorName            string            `json:"sector_name"`
}
