package stockdata

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"findia-sentiment-engine/internal/dto"

	"github.com/PuerkitoBio/goquery"
)

// googleExchanges are tried in order on the Google Finance quote page.
var googleExchanges = []string{"NSE", "BOM"}

var numberPattern = regexp.MustCompile(`[\d,]+\.?\d*`)

// scrapeGoogleFinance extracts a fundamentals snapshot from the Google
// Finance quote page. Fields the page does not expose get conservative
// defaults, mirroring the upstream data service.
func (c *client) scrapeGoogleFinance(ctx context.Context, ticker string) (dto.StockInfo, error) {
	var lastErr error
	for _, exchange := range googleExchanges {
		info, err := c.scrapeGoogleFinanceExchange(ctx, ticker, exchange)
		if err != nil {
			lastErr = err
			continue
		}
		return info, nil
	}
	return dto.StockInfo{}, fmt.Errorf("google finance scrape failed for %s: %w", ticker, lastErr)
}

func (c *client) scrapeGoogleFinanceExchange(ctx context.Context, ticker, exchange string) (dto.StockInfo, error) {
	reqURL := fmt.Sprintf("%s/finance/quote/%s:%s", c.cfg.GoogleFinanceBaseURL, ticker, exchange)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return dto.StockInfo{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return dto.StockInfo{}, fmt.Errorf("failed to fetch quote page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return dto.StockInfo{}, fmt.Errorf("received non-OK response: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return dto.StockInfo{}, fmt.Errorf("failed to parse quote page: %w", err)
	}

	price := parseNumber(doc.Find("div.YMlKec.fxKbKc").First().Text())
	if price <= 0 {
		return dto.StockInfo{}, fmt.Errorf("no price found on quote page")
	}

	companyName := strings.TrimSpace(doc.Find("div.zzDege").First().Text())
	if companyName == "" {
		companyName = ticker
	}

	// Stat rows are label/value pairs.
	stats := make(map[string]string)
	doc.Find("div.gyFHrc").Each(func(_ int, row *goquery.Selection) {
		label := strings.TrimSpace(row.Find("div.mfs7Fc").Text())
		value := strings.TrimSpace(row.Find("div.P6K39c").Text())
		if label != "" && value != "" {
			stats[strings.ToLower(label)] = value
		}
	})

	prevClose := parseNumber(stats["previous close"])
	if prevClose <= 0 {
		prevClose = price * 0.99
	}

	dayLow, dayHigh := parseRange(stats["day range"], price*0.98, price*1.02)
	week52Low, week52High := parseRange(stats["year range"], price*0.75, price*1.35)

	marketCap := parseNumber(stats["market cap"])
	if marketCap <= 0 {
		marketCap = price * 6000000
	}

	peRatio := parseNumber(stats["p/e ratio"])
	if peRatio <= 0 {
		peRatio = 22.5
	}

	volume := int64(parseNumber(stats["avg volume"]))
	if volume <= 0 {
		volume = c.synthesizer.Volume()
	}

	eps := 0.0
	if peRatio > 0 {
		eps = roundTo2(price / peRatio)
	}

	return dto.StockInfo{
		Ticker:        ticker,
		CompanyName:   companyName,
		CurrentPrice:  roundTo2(price),
		PreviousClose: roundTo2(prevClose),
		Open:          roundTo2(prevClose),
		DayHigh:       roundTo2(dayHigh),
		DayLow:        roundTo2(dayLow),
		Volume:        volume,
		MarketCap:     int64(marketCap),
		PERatio:       roundTo2(peRatio),
		EPS:           eps,
		Week52High:    roundTo2(week52High),
		Week52Low:     roundTo2(week52Low),
		DividendYield: 1.2,
		Beta:          1.15,
		Sector:        "Finance",
		Industry:      "Diversified",
		Currency:      "INR",
	}, nil
}

// unitMultipliers covers Indian and western magnitude suffixes.
var unitMultipliers = []struct {
	suffix string
	mult   float64
}{
	{"T", 1e12},
	{"CR", 1e7},
	{"B", 1e9},
	{"M", 1e6},
	{"L", 1e5},
	{"K", 1e3},
}

// parseNumber parses values like "₹1,234.56", "5.67M", "12.34B", "45.67T".
func parseNumber(text string) float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0.0
	}
	text = strings.NewReplacer(",", "", "₹", "", "$", "").Replace(text)
	upper := strings.ToUpper(text)

	for _, unit := range unitMultipliers {
		if strings.Contains(upper, unit.suffix) {
			num, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(upper, unit.suffix, "")), 64)
			if err == nil {
				return num * unit.mult
			}
		}
	}

	num, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0.0
	}
	return num
}

// parseRange parses "low - high" style text, falling back to the given
// defaults when either side is missing.
func parseRange(text string, defaultLow, defaultHigh float64) (float64, float64) {
	parts := numberPattern.FindAllString(text, -1)
	if len(parts) < 2 {
		return defaultLow, defaultHigh
	}
	return parseNumber(parts[0]), parseNumber(parts[1])
}
