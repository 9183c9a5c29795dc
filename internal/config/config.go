package config

import (
	"time"

	"findia-sentiment-engine/pkg/config"
)

// News holds the configuration for the news provider chain.
type News struct {
	NewsAPIKey          string        `mapstructure:"newsapi_key"`
	NewsAPIBaseURL      string        `mapstructure:"newsapi_base_url"`
	GNewsAPIKey         string        `mapstructure:"gnews_api_key"`
	GNewsBaseURL        string        `mapstructure:"gnews_base_url"`
	GoogleRSSBaseURL    string        `mapstructure:"google_rss_base_url"`
	RequestTimeout      time.Duration `mapstructure:"request_timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
}

// FinBERT holds the configuration for the FinBERT-India inference API.
type FinBERT struct {
	BaseURL             string `mapstructure:"base_url"`
	APIKey              string `mapstructure:"api_key"`
	Model               string `mapstructure:"model"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
}

// Gemini holds the configuration for the Gemini classifier fallback.
type Gemini struct {
	APIKey              string `mapstructure:"api_key"`
	Model               string `mapstructure:"model"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
}

// Classifier selects and configures the sentiment classifier provider.
type Classifier struct {
	Provider string  `mapstructure:"provider"`
	FinBERT  FinBERT `mapstructure:"finbert"`
	Gemini   Gemini  `mapstructure:"gemini"`
}

// StockData holds the configuration for the fundamentals/history providers.
type StockData struct {
	YahooBaseURL         string        `mapstructure:"yahoo_base_url"`
	GoogleFinanceBaseURL string        `mapstructure:"google_finance_base_url"`
	MaxRequestPerMinute  int           `mapstructure:"max_request_per_minute"`
	CacheTTL             time.Duration `mapstructure:"cache_ttl"`
}

// Chat holds the chat assistant configuration.
type Chat struct {
	SessionTTL  time.Duration `mapstructure:"session_ttl"`
	DefaultDays int           `mapstructure:"default_days"`
}

// Digest holds the watchlist digest job configuration. An empty cron spec
// disables the job.
type Digest struct {
	Cron string `mapstructure:"cron"`
	Days int    `mapstructure:"days"`
}

// Telegram holds configuration for the Telegram notifier.
type Telegram struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// Config holds the full configuration for the sentiment service.
type Config struct {
	App        config.App      `mapstructure:"app"`
	Logger     config.Logger   `mapstructure:"logger"`
	Database   config.Database `mapstructure:"database"`
	Redis      config.Redis    `mapstructure:"redis"`
	API        config.API      `mapstructure:"api"`
	News       News            `mapstructure:"news"`
	Classifier Classifier      `mapstructure:"classifier"`
	StockData  StockData       `mapstructure:"stock_data"`
	Chat       Chat            `mapstructure:"chat"`
	Digest     Digest          `mapstructure:"digest"`
	Telegram   Telegram        `mapstructure:"telegram"`
}

// Load loads the service configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
