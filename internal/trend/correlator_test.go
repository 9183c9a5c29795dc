package trend

import (
	"fmt"
	"testing"

	"findia-sentiment-engine/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type zeroNoise struct{}

func (zeroNoise) Noise() float64 { return 0 }

func day(n int) string {
	return fmt.Sprintf("2026-08-%02d", n)
}

func pricePoint(n int, close float64) dto.PricePoint {
	return dto.PricePoint{Date: day(n), Close: close}
}

func scoredArticle(n int, score float64) dto.Article {
	return dto.Article{
		Title:          "Headline",
		PublishedAt:    day(n) + "T09:30:00Z",
		SentimentScore: score,
	}
}

func TestBuildMergesRealAndSyntheticDays(t *testing.T) {
	c := NewCorrelator(zeroNoise{})
	agg := dto.AggregateSentiment{RawAverage: 0.5}
	history := []dto.PricePoint{
		pricePoint(1, 100),
		pricePoint(2, 102),
		pricePoint(3, 104),
	}
	articles := []dto.Article{
		scoredArticle(2, 0.9),
		scoredArticle(2, 0.1),
	}

	points, _ := c.Build(agg, articles, history)

	require.Len(t, points, 3)

	// Day 2 carries the mean of its real scores.
	assert.Equal(t, 0.5, points[1].SentimentScore)
	assert.Equal(t, 2, points[1].NewsCount)

	// Days without articles get the damped synthetic value and news_count 0.
	assert.Equal(t, 0.4, points[0].SentimentScore)
	assert.Zero(t, points[0].NewsCount)
	assert.Equal(t, 0.4, points[2].SentimentScore)
	assert.Zero(t, points[2].NewsCount)
}

func TestBuildWindowsToFifteenDays(t *testing.T) {
	c := NewCorrelator(zeroNoise{})
	var history []dto.PricePoint
	for i := 1; i <= 25; i++ {
		history = append(history, pricePoint(i, 100+float64(i)))
	}

	points, _ := c.Build(dto.AggregateSentiment{}, nil, history)

	require.Len(t, points, trendWindow)
	// Window keeps the most recent rows.
	assert.Equal(t, day(11), points[0].Date)
	assert.Equal(t, day(25), points[len(points)-1].Date)
}

func TestBuildSkipsMalformedTimestamps(t *testing.T) {
	c := NewCorrelator(zeroNoise{})
	agg := dto.AggregateSentiment{RawAverage: 0.25}
	history := []dto.PricePoint{pricePoint(1, 100)}
	articles := []dto.Article{
		{Title: "bad stamp", PublishedAt: "yesterday-ish", SentimentScore: 0.9},
		{Title: "no stamp", PublishedAt: "", SentimentScore: 0.9},
	}

	points, _ := c.Build(agg, articles, history)

	require.Len(t, points, 1)
	// Neither malformed article attached to the day, so it is synthetic.
	assert.Zero(t, points[0].NewsCount)
	assert.Equal(t, 0.2, points[0].SentimentScore)
}

func TestBuildReliabilityHitRate(t *testing.T) {
	c := NewCorrelator(zeroNoise{})
	history := []dto.PricePoint{
		pricePoint(1, 100),
		pricePoint(2, 110),
		pricePoint(3, 120),
		pricePoint(4, 130),
		pricePoint(5, 140),
		pricePoint(6, 130),
	}
	var articles []dto.Article
	for i := 1; i <= 6; i++ {
		articles = append(articles, scoredArticle(i, 0.5))
	}

	_, reliability := c.Build(dto.AggregateSentiment{RawAverage: 0.5}, articles, history)

	// Five valid pairs, four directional hits (the last day fell).
	assert.Equal(t, 80.0, reliability)
}

func TestBuildReliabilityBaselineWhenSignalIsWeak(t *testing.T) {
	c := NewCorrelator(zeroNoise{})

	// All-neutral sentiment leaves no valid days.
	history := []dto.PricePoint{
		pricePoint(1, 100), pricePoint(2, 110), pricePoint(3, 120),
		pricePoint(4, 130), pricePoint(5, 140),
	}
	_, reliability := c.Build(dto.AggregateSentiment{RawAverage: 0}, nil, history)
	assert.Equal(t, 76.5, reliability)

	// Two points are never enough, even with strong sentiment.
	short := []dto.PricePoint{pricePoint(1, 100), pricePoint(2, 110)}
	articles := []dto.Article{scoredArticle(1, 0.9), scoredArticle(2, 0.9)}
	_, reliability = c.Build(dto.AggregateSentiment{RawAverage: 0.9}, articles, short)
	assert.Equal(t, 76.5, reliability)
}

func TestBuildEmptyHistory(t *testing.T) {
	c := NewCorrelator(zeroNoise{})

	points, reliability := c.Build(dto.AggregateSentiment{RawAverage: 0.3}, nil, nil)

	assert.Nil(t, points)
	assert.Equal(t, 76.5, reliability)
}
