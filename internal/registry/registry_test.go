package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAndCompanyName(t *testing.T) {
	r := New()

	assert.True(t, r.Validate("RELIANCE"))
	assert.True(t, r.Validate("reliance"))
	assert.False(t, r.Validate("ZZZZZZ"))

	name, ok := r.CompanyName("RELIANCE")
	require.True(t, ok)
	assert.Equal(t, "Reliance Industries", name)

	_, ok = r.CompanyName("ZZZZZZ")
	assert.False(t, ok)
}

func TestSearchMatchesTickerAndName(t *testing.T) {
	r := New()

	byTicker := r.Search("TCS", 10)
	require.NotEmpty(t, byTicker)
	assert.Equal(t, "TCS", byTicker[0].Ticker)

	byName := r.Search("reliance", 10)
	require.NotEmpty(t, byName)

	limited := r.Search("A", 3)
	assert.Len(t, limited, 3)

	assert.Empty(t, r.Search("   ", 10))
	assert.Empty(t, r.Search("NOSUCHCOMPANY", 10))
}

func TestDetectTickerUsesWordBoundaries(t *testing.T) {
	r := NewFromMap(map[string]string{
		"REC": "REC Limited",
		"TCS": "Tata Consultancy Services",
	})

	ticker, ok := r.DetectTicker("How is REC doing today?")
	require.True(t, ok)
	assert.Equal(t, "REC", ticker)

	// "REC" inside another word must not match.
	_, ok = r.DetectTicker("Did I spell this CORRECTLY?")
	assert.False(t, ok)

	ticker, ok = r.DetectTicker("analyze tcs for me")
	require.True(t, ok)
	assert.Equal(t, "TCS", ticker)

	_, ok = r.DetectTicker("no tickers here")
	assert.False(t, ok)
}

func TestAllIsSortedByTicker(t *testing.T) {
	r := New()

	listings := r.All()
	require.Equal(t, r.Count(), len(listings))
	for i := 1; i < len(listings); i++ {
		assert.Less(t, listings[i-1].Ticker, listings[i].Ticker)
	}
}
