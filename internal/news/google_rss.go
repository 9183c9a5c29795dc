package news

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"findia-sentiment-engine/internal/config"
	"findia-sentiment-engine/internal/dto"
	"findia-sentiment-engine/pkg/logger"

	"github.com/mmcdole/gofeed"
)

// maxRSSItems limits how many feed items are converted per fetch.
const maxRSSItems = 15

var htmlTagPattern = regexp.MustCompile(`<[^<]+?>`)

// googleRSSProvider fetches from the Google News RSS search feed. It is the
// free fallback used when the keyed providers yield nothing.
type googleRSSProvider struct {
	cfg *config.News
	log *logger.Logger
}

// NewGoogleRSSProvider creates the Google News RSS provider.
func NewGoogleRSSProvider(cfg *config.News, log *logger.Logger) Provider {
	return &googleRSSProvider{cfg: cfg, log: log}
}

func (p *googleRSSProvider) Name() string {
	return "google-rss"
}

func (p *googleRSSProvider) Fetch(ctx context.Context, companyName, ticker string, days int) ([]dto.Article, error) {
	query := url.QueryEscape(fmt.Sprintf("%s share price news India", companyName))
	feedURL := fmt.Sprintf("%s/rss/search?q=%s&hl=en-IN&gl=IN&ceid=IN:en", p.cfg.GoogleRSSBaseURL, query)

	fp := gofeed.NewParser()
	feed, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RSS feed: %w", err)
	}

	articles := make([]dto.Article, 0, maxRSSItems)
	for _, item := range feed.Items {
		if len(articles) >= maxRSSItems {
			break
		}
		if item.Title == "" {
			continue
		}

		// Google News appends the publisher after " - "; drop it.
		title := strings.TrimSpace(strings.SplitN(item.Title, " - ", 2)[0])
		if title == "" {
			continue
		}

		desc := cleanRSSDescription(item.Description)
		if len(desc) < 20 {
			desc = title
		}

		published := item.Published
		if item.PublishedParsed != nil {
			published = item.PublishedParsed.Format(time.RFC3339)
		}

		articles = append(articles, dto.Article{
			Title:       title,
			Description: desc,
			URL:         item.Link,
			Source:      "Google News",
			PublishedAt: published,
			Content:     desc,
		})
	}

	p.log.DebugContext(ctx, "Google RSS fetch complete",
		logger.StringField("company", companyName),
		logger.IntField("articles", len(articles)),
	)
	return articles, nil
}

// cleanRSSDescription strips HTML markup and Google News artifacts from a
// feed item description.
func cleanRSSDescription(desc string) string {
	desc = htmlTagPattern.ReplaceAllString(desc, "")
	desc = strings.ReplaceAll(desc, "View Full coverage on Google News", "")
	return strings.TrimSpace(desc)
}
