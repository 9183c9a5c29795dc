package explain

import (
	"strings"
	"testing"

	"findia-sentiment-engine/internal/dto"

	"github.com/stretchr/testify/assert"
)

func bullishAggregate() dto.AggregateSentiment {
	return dto.AggregateSentiment{
		Label:         dto.SignalBullish,
		AverageScore:  0.42,
		PositiveCount: 4,
		NegativeCount: 1,
	}
}

func TestGenerateBullishTemplate(t *testing.T) {
	articles := []dto.Article{
		{Title: "Strong quarter for RIL", Sentiment: dto.SentimentPositive},
		{Title: "Regulatory probe announced", Sentiment: dto.SentimentNegative},
	}

	got := Generate("Reliance Industries", "RELIANCE", bullishAggregate(), articles, dto.StockInfo{}, 82.3, 0.1)

	assert.Contains(t, got, "**strongly bullish**")
	assert.Contains(t, got, "0.42")
	assert.Contains(t, got, "Reliance Industries (RELIANCE)")
	assert.Contains(t, got, "Positive developments include: Strong quarter for RIL")
	assert.Contains(t, got, "Concerns highlighted: Regulatory probe announced")
	assert.Contains(t, got, "Key Metrics Explained")
}

func TestGenerateBearishAndNeutralTemplates(t *testing.T) {
	bearish := dto.AggregateSentiment{Label: dto.SignalBearish, AverageScore: -0.3, NegativeCount: 3, PositiveCount: 1}
	got := Generate("Wipro", "WIPRO", bearish, nil, dto.StockInfo{}, 60, 0)
	assert.Contains(t, got, "**bearish**")
	assert.Contains(t, got, "-0.30")

	neutral := dto.AggregateSentiment{Label: dto.SignalNeutral, AverageScore: 0.05}
	got = Generate("Wipro", "WIPRO", neutral, nil, dto.StockInfo{}, 60, 0)
	assert.Contains(t, got, "**neutral**")
	assert.Contains(t, got, "no clear directional bias")
}

func TestGenerateFundamentalsFragment(t *testing.T) {
	info := dto.StockInfo{
		CurrentPrice: 2512.55,
		MarketCap:    17_250_000_000_000,
		PERatio:      24.8,
		Volume:       5_600_000,
	}

	got := Generate("Reliance Industries", "RELIANCE", bullishAggregate(), nil, info, 60, 0)

	assert.Contains(t, got, "₹2512.55")
	assert.Contains(t, got, "₹17.25T")
	assert.Contains(t, got, "P/E ratio of 24.80")
	assert.Contains(t, got, "5.60M shares")
}

func TestGenerateOmitsFundamentalsWithoutPrice(t *testing.T) {
	got := Generate("Reliance Industries", "RELIANCE", bullishAggregate(), nil, dto.StockInfo{}, 60, 0)
	assert.NotContains(t, got, "currently trading at")
}

func TestMarketCapUnits(t *testing.T) {
	assert.Equal(t, "₹2.50T", formatMarketCap(2.5e12))
	assert.Equal(t, "₹85.00B", formatMarketCap(8.5e10))
	assert.Equal(t, "₹45.00Cr", formatMarketCap(4.5e8))
	assert.Equal(t, "₹9.90M", formatMarketCap(9.9e6))
}

func TestVolumeUnits(t *testing.T) {
	assert.Equal(t, "3.25M", formatVolume(3_250_000))
	assert.Equal(t, "850K", formatVolume(850_000))
}

func TestReliabilityFraming(t *testing.T) {
	high := Generate("Wipro", "WIPRO", bullishAggregate(), nil, dto.StockInfo{}, 75.0, 0)
	assert.Contains(t, high, "high precision")

	moderate := Generate("Wipro", "WIPRO", bullishAggregate(), nil, dto.StockInfo{}, 70.0, 0)
	assert.Contains(t, moderate, "moderate precision")
}

func TestContagionFraming(t *testing.T) {
	decoupled := Generate("Wipro", "WIPRO", bullishAggregate(), nil, dto.StockInfo{}, 60, -0.48)
	assert.Contains(t, decoupled, "decoupling")

	lockstep := Generate("Wipro", "WIPRO", bullishAggregate(), nil, dto.StockInfo{}, 60, 0.55)
	assert.Contains(t, lockstep, "lockstep")

	normal := Generate("Wipro", "WIPRO", bullishAggregate(), nil, dto.StockInfo{}, 60, 0.1)
	assert.Contains(t, normal, "normal correlation")
}

func TestGenerateNeverRecomputes(t *testing.T) {
	// Counts in the narrative come from the aggregate, not the article list.
	agg := dto.AggregateSentiment{Label: dto.SignalBullish, AverageScore: 0.9, PositiveCount: 7, NegativeCount: 2}
	got := Generate("Wipro", "WIPRO", agg, []dto.Article{{Title: "Only one article"}}, dto.StockInfo{}, 60, 0)
	assert.True(t, strings.Contains(got, "7 conveyed positive sentiment"))
}

func TestBearishCountOrdering(t *testing.T) {
	// The bearish template cites negatives first.
	agg := dto.AggregateSentiment{Label: dto.SignalBearish, AverageScore: -0.5, NegativeCount: 5, PositiveCount: 2}
	got := Generate("Wipro", "WIPRO", agg, nil, dto.StockInfo{}, 60, 0)
	assert.Contains(t, got, "5 conveyed negative sentiment while 2 were positive")
}
