package chat

import (
	"context"
	"errors"
	"testing"

	"findia-sentiment-engine/internal/dto"
	"findia-sentiment-engine/internal/registry"
	"findia-sentiment-engine/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAnalyzer struct {
	result dto.AnalysisResult
	err    error
	calls  int
}

func (s *stubAnalyzer) Analyze(_ context.Context, ticker string, _ int) (dto.AnalysisResult, error) {
	s.calls++
	if s.err != nil {
		return dto.AnalysisResult{}, s.err
	}
	result := s.result
	result.Stock = ticker
	return result, nil
}

func relianceResult() dto.AnalysisResult {
	return dto.AnalysisResult{
		Stock:          "RELIANCE",
		CompanyName:    "Reliance Industries",
		SentimentLabel: dto.SignalBullish,
		SentimentScore: 0.42,
		PositiveCount:  3,
		News: []dto.Article{
			{Title: "RIL wins contract", Sentiment: dto.SentimentPositive, SentimentScore: 0.9, Description: "Large order win", Source: "Economic Times"},
		},
	}
}

func newTestChat(analyzer *stubAnalyzer) *Service {
	return NewService(registry.New(), analyzer, NewMemorySessionStore(), logger.NewNop(), 5)
}

func TestRespondHelpWhenNoIntentMatches(t *testing.T) {
	svc := newTestChat(&stubAnalyzer{})

	got := svc.Respond(context.Background(), "", "hello there", nil)

	assert.Contains(t, got, "fIndia AI assistant")
}

func TestRespondGenericMethodology(t *testing.T) {
	svc := newTestChat(&stubAnalyzer{})

	got := svc.Respond(context.Background(), "", "how is the score calculated?", nil)

	assert.Contains(t, got, "How AI Sentiment is Calculated")
	assert.Contains(t, got, "+0.15")
}

func TestRespondStockMethodologyUsesSnapshot(t *testing.T) {
	analyzer := &stubAnalyzer{result: relianceResult()}
	svc := newTestChat(analyzer)

	got := svc.Respond(context.Background(), "", "how was RELIANCE calculated?", nil)

	assert.Contains(t, got, "Calculation Breakdown for RELIANCE")
	assert.Contains(t, got, "+0.4200")
	assert.Equal(t, 1, analyzer.calls)
}

func TestRespondAnalysisWithRecommendation(t *testing.T) {
	analyzer := &stubAnalyzer{result: relianceResult()}
	svc := newTestChat(analyzer)

	got := svc.Respond(context.Background(), "", "analyze RELIANCE please", nil)

	assert.Contains(t, got, "Analysis for RELIANCE")
	assert.Contains(t, got, "BUY")
	assert.Contains(t, got, "BULLISH")
}

func TestRespondNewsSummaryRequiresStock(t *testing.T) {
	svc := newTestChat(&stubAnalyzer{})

	got := svc.Respond(context.Background(), "", "show me the news summary", nil)

	assert.Contains(t, got, "Please search for a stock first")
}

func TestRespondNewsSummaryFlashcards(t *testing.T) {
	analyzer := &stubAnalyzer{result: relianceResult()}
	svc := newTestChat(analyzer)

	got := svc.Respond(context.Background(), "", "news summary for RELIANCE", nil)

	assert.Contains(t, got, "Key News Drivers for RELIANCE")
	assert.Contains(t, got, "RIL wins contract")
	assert.Contains(t, got, "POSITIVE (+0.9000)")
	assert.Contains(t, got, "Economic Times")
}

func TestRespondTrustsMatchingRequestContext(t *testing.T) {
	analyzer := &stubAnalyzer{result: relianceResult()}
	svc := newTestChat(analyzer)
	snapshot := relianceResult()

	got := svc.Respond(context.Background(), "", "analyze RELIANCE", &snapshot)

	assert.Contains(t, got, "Analysis for RELIANCE")
	// The caller's snapshot was authoritative; no pipeline run happened.
	assert.Zero(t, analyzer.calls)
}

func TestRespondReusesSessionSnapshot(t *testing.T) {
	analyzer := &stubAnalyzer{result: relianceResult()}
	svc := newTestChat(analyzer)

	svc.Respond(context.Background(), "session-1", "analyze RELIANCE", nil)
	svc.Respond(context.Background(), "session-1", "how was RELIANCE calculated?", nil)

	// Second turn answered from the stored session snapshot.
	assert.Equal(t, 1, analyzer.calls)
}

func TestRespondAnalyzerFailure(t *testing.T) {
	analyzer := &stubAnalyzer{err: errors.New("pipeline down")}
	svc := newTestChat(analyzer)

	got := svc.Respond(context.Background(), "", "analyze RELIANCE", nil)

	assert.Contains(t, got, "RELIANCE")
	assert.Contains(t, got, "cannot access its dashboard data")
}

func TestRespondMarketTrendAndTopStocks(t *testing.T) {
	svc := newTestChat(&stubAnalyzer{})

	assert.Contains(t, svc.Respond(context.Background(), "", "what is the market trend?", nil), "Market Trend Analysis")
	assert.Contains(t, svc.Respond(context.Background(), "", "top bullish stocks", nil), "Top Bullish")
	assert.Contains(t, svc.Respond(context.Background(), "", "top bearish stocks", nil), "Top Bearish")
}

func TestMemorySessionStoreRoundTrip(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	loaded, err := store.Load(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, loaded)

	require.NoError(t, store.Save(ctx, "s1", relianceResult()))
	loaded, err = store.Load(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "RELIANCE", loaded.Stock)
}
