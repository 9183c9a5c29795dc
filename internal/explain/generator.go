package explain

import (
	"fmt"
	"strings"

	"findia-sentiment-engine/internal/dto"
)

const (
	highReliabilityThreshold = 70.0
	contagionBand            = 0.3
)

const metricDefinitions = "\n\n**Key Metrics Explained:**\n" +
	"- **Predictive Reliability:** Indicates how often the AI's sentiment signals (bullish/bearish) have accurately predicted the stock's actual price movement over the analyzed period.\n" +
	"- **Sector Contagion:** Measures how much the sentiment of this stock is being influenced by the broader sector. A negative score means the stock is deviating from its sector trend (unique movement)."

// Generate renders the analysis narrative. It is a pure function of its
// inputs: every number cited comes from the caller, nothing is recomputed.
func Generate(companyName, ticker string, agg dto.AggregateSentiment, articles []dto.Article, info dto.StockInfo, reliability, contagion float64) string {
	var sb strings.Builder
	sb.WriteString(signalParagraph(companyName, ticker, agg, len(articles), fundamentalsFragment(info)))
	sb.WriteString("\n\n")
	sb.WriteString(insightsParagraph(articles))
	sb.WriteString("\n\n")
	sb.WriteString(metricsParagraph(reliability, contagion))
	sb.WriteString(metricDefinitions)
	return sb.String()
}

func signalParagraph(companyName, ticker string, agg dto.AggregateSentiment, articleCount int, priceInfo string) string {
	switch agg.Label {
	case dto.SignalBullish:
		return fmt.Sprintf(
			"Our FinBERT-India AI model has analyzed recent news coverage for %s (%s) and identified a **strongly bullish** sentiment with an aggregate score of %.2f. Out of %d analyzed articles, %d conveyed positive sentiment while %d were negative, indicating strong market optimism and favorable news flow for the stock.%s",
			companyName, ticker, agg.AverageScore, articleCount, agg.PositiveCount, agg.NegativeCount, priceInfo)
	case dto.SignalBearish:
		return fmt.Sprintf(
			"Our FinBERT-India AI model has analyzed recent news coverage for %s (%s) and identified a **bearish** sentiment with an aggregate score of %.2f. Out of %d analyzed articles, %d conveyed negative sentiment while %d were positive, suggesting market concerns and unfavorable news developments affecting the stock.%s",
			companyName, ticker, agg.AverageScore, articleCount, agg.NegativeCount, agg.PositiveCount, priceInfo)
	default:
		return fmt.Sprintf(
			"Our FinBERT-India AI model has analyzed recent news coverage for %s (%s) and identified a **neutral** sentiment with an aggregate score of %.2f. Out of %d analyzed articles, %d were positive and %d were negative, indicating balanced market sentiment with mixed news flow and no clear directional bias.%s",
			companyName, ticker, agg.AverageScore, articleCount, agg.PositiveCount, agg.NegativeCount, priceInfo)
	}
}

// fundamentalsFragment formats the trading snapshot, or returns empty when
// no price is available.
func fundamentalsFragment(info dto.StockInfo) string {
	if info.CurrentPrice <= 0 {
		return ""
	}
	return fmt.Sprintf(
		" The stock is currently trading at ₹%.2f with a market capitalization of %s, P/E ratio of %.2f, and today's volume at %s shares.",
		info.CurrentPrice, formatMarketCap(float64(info.MarketCap)), info.PERatio, formatVolume(float64(info.Volume)))
}

func insightsParagraph(articles []dto.Article) string {
	if len(articles) == 0 {
		return "This analysis is powered by our proprietary FinBERT-India model, fine-tuned specifically for Indian financial markets. The model processes news headlines and articles to extract market sentiment with high accuracy."
	}

	var insights []string
	if title, ok := firstWithSentiment(articles, dto.SentimentPositive); ok {
		insights = append(insights, "Positive developments include: "+title)
	}
	if title, ok := firstWithSentiment(articles, dto.SentimentNegative); ok {
		insights = append(insights, "Concerns highlighted: "+title)
	}
	highlight := strings.Join(insights, " ")
	if highlight == "" {
		highlight = "The news coverage reflects ongoing market dynamics and investor sentiment."
	}

	return fmt.Sprintf(
		"The sentiment analysis is based on real-time news from leading Indian financial publications including Economic Times, Moneycontrol, and Business Standard. %s This AI-powered analysis uses our custom fine-tuned FinBERT model specifically trained on Indian financial news for accurate sentiment classification.",
		highlight)
}

// metricsParagraph interprets the reliability and contagion figures without
// restating how they were derived.
func metricsParagraph(reliability, contagion float64) string {
	reliabilityFraming := "moderate precision"
	if reliability > highReliabilityThreshold {
		reliabilityFraming = "high precision"
	}

	var contagionFraming string
	switch {
	case contagion < -contagionBand:
		contagionFraming = fmt.Sprintf("a sector contagion score of %.2f shows the stock decoupling from its sector and trading on its own news flow", contagion)
	case contagion > contagionBand:
		contagionFraming = fmt.Sprintf("a sector contagion score of %.2f shows the stock moving in lockstep with its sector", contagion)
	default:
		contagionFraming = fmt.Sprintf("a sector contagion score of %.2f indicates normal correlation with the broader sector", contagion)
	}

	return fmt.Sprintf(
		"Historically, sentiment signals of this kind have tracked subsequent price direction with %s (%.1f%% predictive reliability), and %s.",
		reliabilityFraming, reliability, contagionFraming)
}

func firstWithSentiment(articles []dto.Article, sentiment string) (string, bool) {
	for _, article := range articles {
		if article.Sentiment == sentiment {
			return article.Title, true
		}
	}
	return "", false
}

func formatMarketCap(mcap float64) string {
	switch {
	case mcap >= 1e12:
		return fmt.Sprintf("₹%.2fT", mcap/1e12)
	case mcap >= 1e9:
		return fmt.Sprintf("₹%.2fB", mcap/1e9)
	case mcap >= 1e7:
		return fmt.Sprintf("₹%.2fCr", mcap/1e7)
	default:
		return fmt.Sprintf("₹%.2fM", mcap/1e6)
	}
}

func formatVolume(vol float64) string {
	if vol >= 1e6 {
		return fmt.Sprintf("%.2fM", vol/1e6)
	}
	return fmt.Sprintf("%.0fK", vol/1e3)
}
