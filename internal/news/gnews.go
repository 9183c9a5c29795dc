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

// gnewsProvider fetches articles from the GNews API (secondary keyed API).
type gnewsProvider struct {
	cfg            *config.News
	log            *logger.Logger
	client         *http.Client
	requestLimiter *rate.Limiter
}

type gnewsResponse struct {
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

// NewGNewsProvider creates the GNews provider.
func NewGNewsProvider(cfg *config.News, log *logger.Logger) Provider {
	secondsPerRequest := time.Minute / time.Duration(cfg.MaxRequestPerMinute)
	return &gnewsProvider{
		cfg:            cfg,
		log:            log,
		client:         &http.Client{Timeout: cfg.RequestTimeout},
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
	}
}

func (p *gnewsProvider) Name() string {
	return "gnews"
}

func (p *gnewsProvider) Fetch(ctx context.Context, companyName, ticker string, days int) ([]dto.Article, error) {
	if err := p.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for request limit: %w", err)
	}

	params := url.Values{}
	params.Set("q", fmt.Sprintf("%s India", companyName))
	params.Set("lang", "en")
	params.Set("country", "in")
	params.Set("max", "10")
	params.Set("apikey", p.cfg.GNewsAPIKey)

	reqURL := fmt.Sprintf("%s/search?%s", p.cfg.GNewsBaseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from GNews: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-OK response from GNews: %d", resp.StatusCode)
	}

	var body gnewsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode GNews response: %w", err)
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

	p.log.DebugContext(ctx, "GNews fetch complete",
		logger.StringField("company", companyName),
		logger.IntField("articles", len(articles)),
	)
	return articles, nil
}
