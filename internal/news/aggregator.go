package news

import (
	"context"
	"sort"
	"sync"

	"findia-sentiment-engine/internal/dto"
	"findia-sentiment-engine/pkg/logger"
	"findia-sentiment-engine/pkg/utils"
)

// Aggregator collects articles across an ordered chain of providers.
//
// Keyed providers are queried concurrently and their results unioned. Only
// when the union is empty does the chain fall through to the free providers
// (tried in order), and only when those also yield nothing does it reach
// the fallback provider. Provider failures are logged and swallowed; the
// caller never sees an error.
type Aggregator struct {
	keyed    []Provider
	free     []Provider
	fallback Provider
	logger   *logger.Logger
}

// NewAggregator creates an Aggregator. fallback may be nil to suppress the
// guaranteed synthetic fallback (the "no news" configuration).
func NewAggregator(log *logger.Logger, keyed, free []Provider, fallback Provider) *Aggregator {
	return &Aggregator{keyed: keyed, free: free, fallback: fallback, logger: log}
}

// Fetch returns a deduplicated, date-descending list of at most 20 articles
// for the company.
func (a *Aggregator) Fetch(ctx context.Context, companyName, ticker string, days int) []dto.Article {
	articles := a.fetchKeyed(ctx, companyName, ticker, days)

	if len(articles) == 0 {
		for _, provider := range a.free {
			articles = a.fetchOne(ctx, provider, companyName, ticker, days)
			if len(articles) > 0 {
				break
			}
		}
	}

	if len(articles) == 0 && a.fallback != nil {
		articles = a.fetchOne(ctx, a.fallback, companyName, ticker, days)
	}

	sortByPublishedDesc(articles)
	articles = Deduplicate(articles)

	if len(articles) > MaxArticles {
		articles = articles[:MaxArticles]
	}
	return articles
}

// fetchKeyed queries every keyed provider concurrently and unions the
// results.
func (a *Aggregator) fetchKeyed(ctx context.Context, companyName, ticker string, days int) []dto.Article {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		articles []dto.Article
	)

	for _, provider := range a.keyed {
		p := provider
		wg.Add(1)
		utils.GoSafe(func() {
			defer wg.Done()
			result := a.fetchOne(ctx, p, companyName, ticker, days)
			if len(result) == 0 {
				return
			}
			mu.Lock()
			articles = append(articles, result...)
			mu.Unlock()
		})
	}
	wg.Wait()

	return articles
}

// fetchOne calls a single provider, logging and absorbing any failure.
func (a *Aggregator) fetchOne(ctx context.Context, provider Provider, companyName, ticker string, days int) []dto.Article {
	result, err := provider.Fetch(ctx, companyName, ticker, days)
	if err != nil {
		a.logger.WarnContext(ctx, "News provider failed, continuing with next",
			logger.StringField("provider", provider.Name()),
			logger.StringField("ticker", ticker),
			logger.ErrorField(err),
		)
		return nil
	}
	return result
}

// Deduplicate removes articles whose normalized 50-char title prefix was
// already seen, keeping the first occurrence. Idempotent.
func Deduplicate(articles []dto.Article) []dto.Article {
	seen := make(map[string]struct{}, len(articles))
	unique := make([]dto.Article, 0, len(articles))
	for _, article := range articles {
		slug := dedupSlug(article.Title)
		if _, ok := seen[slug]; ok {
			continue
		}
		seen[slug] = struct{}{}
		unique = append(unique, article)
	}
	return unique
}

func sortByPublishedDesc(articles []dto.Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		return parsePublished(articles[i].PublishedAt).After(parsePublished(articles[j].PublishedAt))
	})
}
