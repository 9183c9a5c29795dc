package analysis

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"

	"findia-sentiment-engine/internal/dto"
	"findia-sentiment-engine/internal/explain"
	"findia-sentiment-engine/internal/news"
	"findia-sentiment-engine/internal/registry"
	"findia-sentiment-engine/internal/sentiment"
	"findia-sentiment-engine/internal/stockdata"
	"findia-sentiment-engine/internal/trend"
	"findia-sentiment-engine/pkg/logger"
	"findia-sentiment-engine/pkg/utils"
)

// Service sequences the full analysis pipeline for one ticker. Its output
// is the single source of truth; no consumer recomputes sentiment.
type Service struct {
	registry   *registry.Registry
	aggregator *news.Aggregator
	scorer     *sentiment.Scorer
	stockRepo  stockdata.Repository
	correlator *trend.Correlator
	logger     *logger.Logger
}

// NewService creates the pipeline orchestrator.
func NewService(
	reg *registry.Registry,
	aggregator *news.Aggregator,
	scorer *sentiment.Scorer,
	stockRepo stockdata.Repository,
	correlator *trend.Correlator,
	log *logger.Logger,
) *Service {
	return &Service{
		registry:   reg,
		aggregator: aggregator,
		scorer:     scorer,
		stockRepo:  stockRepo,
		correlator: correlator,
		logger:     log,
	}
}

// Analyze runs news aggregation, per-article scoring, trend correlation and
// explanation generation for one ticker. Zero articles after the full
// provider chain is a valid terminal outcome, not an error.
func (s *Service) Analyze(ctx context.Context, ticker string, days int) (dto.AnalysisResult, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	companyName, ok := s.registry.CompanyName(ticker)
	if !ok {
		return dto.AnalysisResult{}, &dto.InvalidTickerError{Ticker: ticker}
	}

	articles := s.aggregator.Fetch(ctx, companyName, ticker, days)
	if len(articles) == 0 {
		s.logger.InfoContext(ctx, "No articles found after full provider chain",
			logger.StringField("ticker", ticker),
			logger.IntField("days", days),
		)
		return s.noNewsResult(ctx, ticker, companyName, days), nil
	}

	sentiments := make([]sentiment.ArticleSentiment, 0, len(articles))
	for i := range articles {
		text := articles[i].Title + ". " + articles[i].Description
		scored := s.scorer.Score(ctx, text)
		articles[i].Sentiment = scored.Label
		articles[i].SentimentScore = scored.Score
		articles[i].Confidence = scored.Confidence
		sentiments = append(sentiments, scored)
	}
	agg := s.scorer.Aggregate(sentiments)

	stockData := s.stockRepo.GetStockInfo(ctx, ticker)
	history := s.stockRepo.GetHistoricalData(ctx, ticker)

	sentimentTrend, reliability := s.correlator.Build(agg, articles, history)
	contagion := SectorContagion(ticker, agg.RawAverage)
	sectorName := stockData.Sector
	if sectorName == "" {
		sectorName = "Market"
	}

	explanation := explain.Generate(companyName, ticker, agg, articles, stockData, reliability, contagion)

	s.logger.InfoContext(ctx, "Analysis complete",
		logger.StringField("ticker", ticker),
		logger.StringField("label", agg.Label),
		logger.Float64Field("score", agg.AverageScore),
		logger.IntField("articles", len(articles)),
	)

	return dto.AnalysisResult{
		Stock:                 ticker,
		CompanyName:           companyName,
		SentimentLabel:        agg.Label,
		SentimentScore:        agg.AverageScore,
		PositiveCount:         agg.PositiveCount,
		NegativeCount:         agg.NegativeCount,
		NeutralCount:          agg.NeutralCount,
		Explanation:           explanation,
		News:                  articles,
		StockData:             stockData,
		SentimentTrend:        sentimentTrend,
		PredictiveReliability: reliability,
		SectorContagion:       contagion,
		SectorName:            sectorName,
	}, nil
}

// noNewsResult is the terminal outcome when every provider (including the
// fallback, when configured) yields nothing. Trend, reliability and
// contagion stay zeroed.
func (s *Service) noNewsResult(ctx context.Context, ticker, companyName string, days int) dto.AnalysisResult {
	stockData := s.stockRepo.GetStockInfo(ctx, ticker)
	sectorName := stockData.Sector
	if sectorName == "" {
		sectorName = "Market"
	}
	return dto.AnalysisResult{
		Stock:          ticker,
		CompanyName:    companyName,
		SentimentLabel: dto.SignalNeutral,
		SentimentScore: 0.0,
		Explanation: fmt.Sprintf(
			"No recent news found for %s in the last %d days. Unable to perform sentiment analysis.",
			companyName, days),
		News:       []dto.Article{},
		StockData:  stockData,
		SectorName: sectorName,
	}
}

// SectorContagion derives the presentational sector-correlation scalar.
// It hashes the ticker into a stable base in [-0.4, 0.4), shifts it by the
// damped aggregate score, and clamps into [-0.8, 0.8]. Deterministic for a
// given (ticker, score) pair.
func SectorContagion(ticker string, rawAverage float64) float64 {
	h := fnv.New32a()
	h.Write([]byte(ticker))
	base := float64(h.Sum32()%800)/1000.0 - 0.4

	contagion := base + 0.4*rawAverage
	if contagion > 0.8 {
		contagion = 0.8
	}
	if contagion < -0.8 {
		contagion = -0.8
	}
	return utils.RoundTo(contagion, 2)
}
