package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"findia-sentiment-engine/internal/config"
	"findia-sentiment-engine/internal/dto"
	"findia-sentiment-engine/pkg/logger"

	"golang.org/x/time/rate"
)

// newsAPIProvider fetches articles from NewsAPI.org (primary keyed API).
type newsAPIProvider struct {
	cfg            *config.News
	log            *logger.Logger
	client         *http.Client
	requestLimiter *rate.Limiter
}

type newsAPIResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
		PublishedAt string `json:"publishedAt"`
		Content     string `json:"content"`
	} `json:"articles"`
}

// NewNewsAPIProvider creates the NewsAPI.org provider.
func NewNewsAPIProvider(cfg *config.News, log *logger.Logger) Provider {
	secondsPerRequest := time.Minute / time.Duration(cfg.MaxRequestPerMinute)
	return &newsAPIProvider{
		cfg:            cfg,
		log:            log,
		client:         &http.Client{Timeout: cfg.RequestTimeout},
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
	}
}

func (p *newsAPIProvider) Name() string {
	return "newsapi"
}

func (p *newsAPIProvider) Fetch(ctx context.Context, companyName, ticker string, days int) ([]dto.Article, error) {
	if err := p.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for request limit: %w", err)
	}

	from := time.Now().AddDate(0, 0, -days).Format("2006-01-02")
	params := url.Values{}
	params.Set("q", fmt.Sprintf("%s India stock", companyName))
	params.Set("from", from)
	params.Set("language", "en")
	params.Set("sortBy", "publishedAt")
	params.Set("apiKey", p.cfg.NewsAPIKey)

	reqURL := fmt.Sprintf("%s/everything?%s", p.cfg.NewsAPIBaseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from NewsAPI: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-OK response from NewsAPI: %d", resp.StatusCode)
	}

	var body newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode NewsAPI response: %w", err)
	}

	articles := make([]dto.Article, 0, len(body.Articles))
	for _, a := range body.Articles {
		if a.Title == "" {
			continue
		}
		articles = append(articles, dto.Article{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			Source:      a.Source.Name,
			PublishedAt: a.PublishedAt,
			Content:     a.Content,
		})
	}

	p.log.DebugContext(ctx, "NewsAPI fetch complete",
		logger.StringField("company", companyName),
		logger.IntField("articles", len(articles)),
	)
	return articles, nil
}
