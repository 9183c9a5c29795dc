package telegram

import (
	"strings"
	"testing"
	"time"

	"findia-sentiment-engine/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func digestResult(ticker string, score float64) dto.AnalysisResult {
	label := dto.SignalNeutral
	if score > 0.15 {
		label = dto.SignalBullish
	} else if score < -0.15 {
		label = dto.SignalBearish
	}
	return dto.AnalysisResult{
		Stock:          ticker,
		SentimentLabel: label,
		SentimentScore: score,
		PositiveCount:  2,
		NegativeCount:  1,
		News: []dto.Article{
			{Title: ticker + " quarterly results beat estimates"},
		},
		StockData: dto.StockInfo{CurrentPrice: 1234.50},
	}
}

func TestFormatDailyDigestEmpty(t *testing.T) {
	now := time.Date(2026, 8, 28, 18, 0, 0, 0, time.UTC)

	messages := FormatDailyDigest(now, nil)

	require.Len(t, messages, 1)
	assert.Equal(t, "No watchlist sentiment to report today.", messages[0])
}

func TestFormatDailyDigestHeaderCarriesDate(t *testing.T) {
	now := time.Date(2026, 8, 28, 18, 0, 0, 0, time.UTC)
	entries := []DigestEntry{{Result: digestResult("TCS", 0.42)}}

	messages := FormatDailyDigest(now, entries)

	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "Daily Watchlist Sentiment Digest — 28 Aug 2026")
	assert.Contains(t, messages[0], "TCS")
	assert.Contains(t, messages[0], "(+0.42)")
	assert.Contains(t, messages[0], "₹1234.50")
}

func TestFormatDailyDigestShowsShiftSincePreviousRun(t *testing.T) {
	now := time.Date(2026, 8, 28, 18, 0, 0, 0, time.UTC)
	previous := 0.10
	entries := []DigestEntry{
		{Result: digestResult("TCS", 0.42), PreviousScore: &previous},
		{Result: digestResult("INFY", -0.30)},
	}

	messages := FormatDailyDigest(now, entries)

	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "*Since last digest:* +0.32")
	// INFY has no earlier snapshot, so its entry carries no shift line.
	infyEntry := messages[0][strings.Index(messages[0], "INFY"):]
	assert.NotContains(t, infyEntry, "Since last digest")
}

func TestFormatDailyDigestSplitsLongRuns(t *testing.T) {
	now := time.Date(2026, 8, 28, 18, 0, 0, 0, time.UTC)
	var entries []DigestEntry
	for i := 0; i < 60; i++ {
		result := digestResult("TCS", 0.42)
		result.News[0].Title = strings.Repeat("Very long headline ", 10)
		entries = append(entries, DigestEntry{Result: result})
	}

	messages := FormatDailyDigest(now, entries)

	require.Greater(t, len(messages), 1)
	for _, message := range messages {
		assert.LessOrEqual(t, len(message), maxMessageLen)
	}
	assert.Contains(t, messages[1], "Part 2")
}
