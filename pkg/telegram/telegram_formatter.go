package telegram

import (
	"fmt"
	"strings"
	"time"

	"findia-sentiment-engine/internal/dto"
)

// maxMessageLen stays under Telegram's 4096-char message limit.
const maxMessageLen = 4090

// DigestEntry pairs one analysis result with the score from the previous
// digest run, when one exists.
type DigestEntry struct {
	Result        dto.AnalysisResult
	PreviousScore *float64
}

// FormatDailyDigest formats digest entries into Markdown messages, splitting
// into parts whenever a message would exceed Telegram's limit. The date in
// the header comes from now, which callers supply in market time.
func FormatDailyDigest(now time.Time, entries []DigestEntry) []string {
	if len(entries) == 0 {
		return []string{"No watchlist sentiment to report today."}
	}

	digestDate := now.Format("02 Jan 2006")
	var messages []string
	var currentMessage strings.Builder
	part := 1

	startNewPart := func() {
		currentMessage.Reset()
		if part == 1 {
			currentMessage.WriteString(fmt.Sprintf("📰 *Daily Watchlist Sentiment Digest — %s* 📰\n\n", digestDate))
		} else {
			currentMessage.WriteString(fmt.Sprintf("---*Daily Watchlist Sentiment Digest %s Part %d*---\n\n", digestDate, part))
		}
	}

	startNewPart()

	for _, entry := range entries {
		text := formatDigestEntry(entry)
		if currentMessage.Len()+len(text) > maxMessageLen {
			messages = append(messages, currentMessage.String())
			part++
			startNewPart()
		}
		currentMessage.WriteString(text)
	}

	messages = append(messages, currentMessage.String())
	return messages
}

func formatDigestEntry(entry DigestEntry) string {
	result := entry.Result

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📈 *- - - - - %s - - - - -*\n", result.Stock))

	var sentimentIcon string
	switch result.SentimentLabel {
	case dto.SignalBullish:
		sentimentIcon = "😊"
	case dto.SignalBearish:
		sentimentIcon = "😟"
	default:
		sentimentIcon = "😐"
	}
	sb.WriteString(fmt.Sprintf("%s *Signal:* %s (%+.2f)\n", sentimentIcon, result.SentimentLabel, result.SentimentScore))
	if entry.PreviousScore != nil {
		sb.WriteString(fmt.Sprintf("📊 *Since last digest:* %+.2f\n", result.SentimentScore-*entry.PreviousScore))
	}
	sb.WriteString(fmt.Sprintf("🗞 *Articles:* %d (%d positive / %d negative)\n", len(result.News), result.PositiveCount, result.NegativeCount))

	if result.StockData.CurrentPrice > 0 {
		sb.WriteString(fmt.Sprintf("💰 *Price:* ₹%.2f\n", result.StockData.CurrentPrice))
	}
	if result.PredictiveReliability > 0 {
		sb.WriteString(fmt.Sprintf("🎯 *Reliability:* %.1f%%\n", result.PredictiveReliability))
	}

	if len(result.News) > 0 {
		sb.WriteString(fmt.Sprintf("💬 *Top headline:* %s\n", result.News[0].Title))
	}

	sb.WriteString("\n")
	return sb.String()
}
