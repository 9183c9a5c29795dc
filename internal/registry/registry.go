package registry

import (
	"regexp"
	"sort"
	"strings"
)

// Listing is one NSE-listed equity.
type Listing struct {
	Ticker      string `json:"ticker"`
	CompanyName string `json:"company_name"`
}

// Registry is the in-memory ticker lookup table. It is built once at
// startup and read-only afterwards.
type Registry struct {
	stocks   map[string]string
	tickers  []string
	patterns []*regexp.Regexp
}

// New builds a Registry from the bundled NSE listing table.
func New() *Registry {
	return NewFromMap(nseListings)
}

// NewFromMap builds a Registry from an explicit ticker→company map.
func NewFromMap(stocks map[string]string) *Registry {
	tickers := make([]string, 0, len(stocks))
	for ticker := range stocks {
		tickers = append(tickers, ticker)
	}
	sort.Strings(tickers)

	// Word-boundary patterns avoid matching "REC" inside "CORRECTLY".
	patterns := make([]*regexp.Regexp, len(tickers))
	for i, ticker := range tickers {
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(ticker) + `\b`)
	}

	return &Registry{stocks: stocks, tickers: tickers, patterns: patterns}
}

// Validate reports whether ticker is a known NSE listing.
func (r *Registry) Validate(ticker string) bool {
	_, ok := r.stocks[strings.ToUpper(ticker)]
	return ok
}

// CompanyName returns the company name for a ticker.
func (r *Registry) CompanyName(ticker string) (string, bool) {
	name, ok := r.stocks[strings.ToUpper(ticker)]
	return name, ok
}

// Search returns up to limit listings whose ticker or company name contains
// the query, case-insensitively.
func (r *Registry) Search(query string, limit int) []Listing {
	query = strings.ToUpper(strings.TrimSpace(query))
	results := make([]Listing, 0, limit)
	if query == "" {
		return results
	}

	for _, ticker := range r.tickers {
		name := r.stocks[ticker]
		if strings.Contains(ticker, query) || strings.Contains(strings.ToUpper(name), query) {
			results = append(results, Listing{Ticker: ticker, CompanyName: name})
			if len(results) >= limit {
				break
			}
		}
	}
	return results
}

// All returns every listing ordered by ticker.
func (r *Registry) All() []Listing {
	results := make([]Listing, 0, len(r.tickers))
	for _, ticker := range r.tickers {
		results = append(results, Listing{Ticker: ticker, CompanyName: r.stocks[ticker]})
	}
	return results
}

// DetectTicker finds the first known ticker mentioned as a whole word in a
// free-text message.
func (r *Registry) DetectTicker(message string) (string, bool) {
	upper := strings.ToUpper(message)
	for i, pattern := range r.patterns {
		if pattern.MatchString(upper) {
			return r.tickers[i], true
		}
	}
	return "", false
}

// Count returns the number of listings.
func (r *Registry) Count() int {
	return len(r.stocks)
}
