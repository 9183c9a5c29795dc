package news

import (
	"context"
	"strings"
	"time"

	"findia-sentiment-engine/internal/dto"
	"findia-sentiment-engine/pkg/utils"
)

// MaxArticles is the cap applied after deduplication.
const MaxArticles = 20

// dedupSlugLen is the normalized-title prefix length used as the
// deduplication key.
const dedupSlugLen = 50

// Provider fetches candidate articles for a company from one upstream
// source. Implementations fail soft: an error means "this source yielded
// nothing", never a pipeline abort.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, companyName, ticker string, days int) ([]dto.Article, error)
}

// publishedLayouts are the timestamp formats seen across providers. RSS
// feeds use RFC1123 variants, the JSON APIs use RFC3339.
var publishedLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 MST",
}

// parsePublished parses a best-effort published timestamp. The zero time is
// returned for anything unparsable, which sorts such articles last.
func parsePublished(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range publishedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

// dedupSlug normalizes a title into its deduplication key: lowercase,
// trimmed, first 50 characters. Truncation counts runes, not bytes, so
// Devanagari and other multibyte titles are never cut mid-character.
func dedupSlug(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	return utils.TruncateRunes(slug, dedupSlugLen)
}
