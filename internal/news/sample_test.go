package news

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleProviderNeverFails(t *testing.T) {
	fixed := func() time.Time {
		return time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	}
	provider := NewSampleProvider(fixed)

	articles, err := provider.Fetch(context.Background(), "Reliance Industries", "RELIANCE", 7)

	require.NoError(t, err)
	require.Len(t, articles, 5)

	for i, article := range articles {
		assert.Contains(t, article.Title, "Reliance Industries")
		assert.NotEmpty(t, article.Source)
		assert.NotEmpty(t, article.URL)

		// Published dates count back one day per article.
		published, parseErr := time.Parse(time.RFC3339, article.PublishedAt)
		require.NoError(t, parseErr)
		assert.Equal(t, fixed().AddDate(0, 0, -(i+1)), published)
	}
}

func TestParsePublishedLayouts(t *testing.T) {
	assert.False(t, parsePublished("2026-08-20T10:00:00Z").IsZero())
	assert.False(t, parsePublished("2026-08-20T10:00:00").IsZero())
	assert.False(t, parsePublished("Wed, 20 Aug 2026 10:00:00 GMT").IsZero())
	assert.True(t, parsePublished("not a date").IsZero())
	assert.True(t, parsePublished("").IsZero())
}
