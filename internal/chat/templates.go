package chat

import (
	"fmt"
	"strings"

	"findia-sentiment-engine/internal/dto"
)

const maxFlashcards = 10

// Recommendation bands applied to the aggregate score. The outer band sits
// well beyond the bullish/bearish classification threshold.
const (
	strongBand = 0.5
	buyBand    = 0.15
)

const genericMethodology = `**How AI Sentiment is Calculated (Standard Model):**

1. **News Scanning**: We fetch recent financial news headlines and descriptions.
2. **FinBERT Processing**: Our FinBERT-India model analyzes each article text and assigns a sentiment score from **-1 (Negative)** to **+1 (Positive)**.
3. **Aggregation**: We calculate the weighted average of all article scores.
4. **Final Signal**:
   • > +0.15: **Bullish** 🟢
   • < -0.15: **Bearish** 🔴
   • Else: **Neutral** 🟡`

func helpResponse() string {
	return `Hello! I'm the fIndia AI assistant. I am connected to the **FinBERT-India** dashboard pipeline.

I can explain the sentiment data shown on your screen.
• "Analyze RELIANCE" (I will fetch the dashboard data)
• "How is the score calculated?"
• "Show news summary"`
}

// newsSummaryResponse renders per-article flashcards off the snapshot.
func newsSummaryResponse(data *dto.AnalysisResult) string {
	articles := data.News
	if len(articles) > maxFlashcards {
		articles = articles[:maxFlashcards]
	}

	var cards []string
	for _, article := range articles {
		summary := article.Description
		if len(summary) < 5 {
			summary = "Summary not available."
		}
		source := article.Source
		if source == "" {
			source = "Unknown"
		}
		cards = append(cards, fmt.Sprintf(`
**Headline**: %s
**Sentiment**: %s (%+.4f)
**Summary**: %s
**Source**: %s
---`, article.Title, strings.ToUpper(article.Sentiment), article.SentimentScore, summary, source))
	}

	return fmt.Sprintf(`**Key News Drivers for %s**
(Source: FinBERT-India Pipeline)

%s
`, data.Stock, strings.Join(cards, "\n"))
}

// methodologyResponse shows the score derivation for the active stock, or
// the generic model description when no stock is in context.
func methodologyResponse(data *dto.AnalysisResult) string {
	if data == nil || data.Stock == "" {
		return genericMethodology
	}

	var scoreSum float64
	for _, article := range data.News {
		scoreSum += article.SentimentScore
	}
	count := len(data.News)

	return fmt.Sprintf(`**Calculation Breakdown for %s**:

**The Logic**:
I analyzed **%d** news articles found in the dashboard pipeline.
Sum of all scores: **%.4f**
Count: **%d**
Average: %.4f / %d = **%+.4f**

**Result**:
The calculated average **%+.4f** falls into the **%s** range.
`, data.Stock, count, scoreSum, count, scoreSum, count, data.SentimentScore, data.SentimentScore, strings.ToUpper(data.SentimentLabel))
}

func analysisResponse(data *dto.AnalysisResult) string {
	label := strings.ToUpper(data.SentimentLabel)
	score := data.SentimentScore

	emoji := "🟡"
	switch data.SentimentLabel {
	case dto.SignalBullish:
		emoji = "🟢"
	case dto.SignalBearish:
		emoji = "🔴"
	}

	recommendation := "HOLD"
	switch {
	case score > strongBand:
		recommendation = "STRONG BUY 🟢"
	case score > buyBand:
		recommendation = "BUY 🟢"
	case score < -strongBand:
		recommendation = "STRONG SELL 🔴"
	case score < -buyBand:
		recommendation = "SELL 🔴"
	}

	return fmt.Sprintf(`**Analysis for %s**
(Source: FinBERT-India Dashboard Data)

**Recommendation**: %s
%s **Signal: %s** (Score: %+.2f)

**Data Integrity**:
Verified against **%d** articles in the live dashboard context.

*To see the articles driving this score, click "News and Summary".*
`, data.Stock, recommendation, emoji, label, score, len(data.News))
}

func marketTrendResponse() string {
	return `**Market Trend Analysis** 📈
(Simulated Outlook)
The NIFTY 50 is showing mixed signals.
• **Bullish**: Banking & Finance.
• **Bearish**: IT Services.
_Search for specific stocks to see verified sentiment_`
}

func topStocksResponse(signal string) string {
	if signal == dto.SignalBullish {
		return "**Top Bullish** (Demo): ITC, M&M, TITAN"
	}
	return "**Top Bearish** (Demo): PAYTM, ADANIENT, WIPRO"
}
