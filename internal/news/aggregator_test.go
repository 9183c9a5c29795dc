package news

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"findia-sentiment-engine/internal/dto"
	"findia-sentiment-engine/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	name     string
	articles []dto.Article
	err      error
	calls    int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Fetch(_ context.Context, _, _ string, _ int) ([]dto.Article, error) {
	s.calls++
	return s.articles, s.err
}

func article(title, publishedAt string) dto.Article {
	return dto.Article{Title: title, PublishedAt: publishedAt, Source: "Test"}
}

func TestFetchUnionsKeyedProviders(t *testing.T) {
	keyed := []Provider{
		&stubProvider{name: "a", articles: []dto.Article{article("RIL posts record profit", "2026-08-20T10:00:00Z")}},
		&stubProvider{name: "b", articles: []dto.Article{article("RIL expands retail arm", "2026-08-21T10:00:00Z")}},
	}
	free := &stubProvider{name: "rss"}
	agg := NewAggregator(logger.NewNop(), keyed, []Provider{free}, nil)

	got := agg.Fetch(context.Background(), "Reliance Industries", "RELIANCE", 7)

	require.Len(t, got, 2)
	// Keyed union succeeded, so the free chain is never consulted.
	assert.Zero(t, free.calls)
	// Date-descending order.
	assert.Equal(t, "RIL expands retail arm", got[0].Title)
}

func TestFetchFallsThroughToFreeProviders(t *testing.T) {
	keyed := []Provider{&stubProvider{name: "a", err: errors.New("quota exceeded")}}
	firstFree := &stubProvider{name: "rss1"}
	secondFree := &stubProvider{name: "rss2", articles: []dto.Article{article("Headline", "2026-08-20T10:00:00Z")}}
	agg := NewAggregator(logger.NewNop(), keyed, []Provider{firstFree, secondFree}, nil)

	got := agg.Fetch(context.Background(), "Reliance Industries", "RELIANCE", 7)

	require.Len(t, got, 1)
	assert.Equal(t, 1, firstFree.calls)
	assert.Equal(t, 1, secondFree.calls)
}

func TestFetchReachesFallbackLast(t *testing.T) {
	keyed := []Provider{&stubProvider{name: "a", err: errors.New("down")}}
	free := []Provider{&stubProvider{name: "rss", err: errors.New("down")}}
	fallback := &stubProvider{name: "samples", articles: []dto.Article{article("Sample", "2026-08-20T10:00:00Z")}}
	agg := NewAggregator(logger.NewNop(), keyed, free, fallback)

	got := agg.Fetch(context.Background(), "Reliance Industries", "RELIANCE", 7)

	require.Len(t, got, 1)
	assert.Equal(t, "Sample", got[0].Title)
}

func TestFetchSuppressedFallbackYieldsEmpty(t *testing.T) {
	keyed := []Provider{&stubProvider{name: "a", err: errors.New("down")}}
	free := []Provider{&stubProvider{name: "rss", err: errors.New("down")}}
	agg := NewAggregator(logger.NewNop(), keyed, free, nil)

	got := agg.Fetch(context.Background(), "Reliance Industries", "RELIANCE", 7)

	assert.Empty(t, got)
}

func TestFetchCapsAtTwentyArticles(t *testing.T) {
	var articles []dto.Article
	for i := 0; i < 30; i++ {
		articles = append(articles, article(fmt.Sprintf("Unique headline number %d", i), "2026-08-20T10:00:00Z"))
	}
	keyed := []Provider{&stubProvider{name: "a", articles: articles}}
	agg := NewAggregator(logger.NewNop(), keyed, nil, nil)

	got := agg.Fetch(context.Background(), "Reliance Industries", "RELIANCE", 7)

	assert.Len(t, got, MaxArticles)
}

func TestDeduplicateKeepsFirstByTitlePrefix(t *testing.T) {
	articles := []dto.Article{
		article("Reliance Industries announces record quarterly results beating all analyst estimates", "2026-08-21T10:00:00Z"),
		// Same 50-char prefix, different tail.
		article("Reliance Industries announces record quarterly results for FY26", "2026-08-20T10:00:00Z"),
		article("A different headline", "2026-08-19T10:00:00Z"),
	}

	got := Deduplicate(articles)

	require.Len(t, got, 2)
	assert.Equal(t, articles[0].Title, got[0].Title)
}

func TestDedupSlugCountsRunesNotBytes(t *testing.T) {
	// 60 Devanagari runes, three bytes each. A byte-indexed cut at 50
	// would land mid-rune and corrupt the key.
	title := strings.Repeat("रिलायंस इंडस", 5)
	require.Equal(t, 60, len([]rune(title)))

	slug := dedupSlug(title)

	assert.Equal(t, dedupSlugLen, len([]rune(slug)))
	assert.True(t, utf8.ValidString(slug))
	assert.Equal(t, string([]rune(title)[:dedupSlugLen]), slug)
}

func TestDeduplicateMultibyteTitlesByRunePrefix(t *testing.T) {
	prefix := strings.Repeat("रिलायंस इंडस", 5) // 60 runes, shared 50-rune prefix
	articles := []dto.Article{
		article(prefix+" पहला", "2026-08-21T10:00:00Z"),
		article(prefix+" दूसरा", "2026-08-20T10:00:00Z"),
	}

	got := Deduplicate(articles)

	require.Len(t, got, 1)
	assert.Equal(t, articles[0].Title, got[0].Title)
}

func TestDeduplicateIsIdempotent(t *testing.T) {
	articles := []dto.Article{
		article("Headline one", "2026-08-21T10:00:00Z"),
		article("headline ONE", "2026-08-20T10:00:00Z"),
		article("Headline two", "2026-08-19T10:00:00Z"),
	}

	once := Deduplicate(articles)
	twice := Deduplicate(once)

	assert.Equal(t, once, twice)
}
