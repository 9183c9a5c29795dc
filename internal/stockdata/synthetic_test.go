package stockdata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAnchorsOnCurrentPrice(t *testing.T) {
	s := NewHistorySynthesizer(42)
	end := time.Date(2026, 8, 26, 15, 30, 0, 0, time.UTC) // a Wednesday

	history := s.Generate(1000, end)

	require.NotEmpty(t, history)
	// 30 calendar days minus weekends.
	assert.GreaterOrEqual(t, len(history), 20)
	assert.LessOrEqual(t, len(history), 23)

	last := history[len(history)-1]
	assert.Equal(t, end.Format("2006-01-02"), last.Date)
	assert.Equal(t, 1000.0, last.Close)
}

func TestGenerateSkipsWeekends(t *testing.T) {
	s := NewHistorySynthesizer(7)
	end := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)

	for _, point := range s.Generate(500, end) {
		day, err := time.Parse("2006-01-02", point.Date)
		require.NoError(t, err)
		assert.NotEqual(t, time.Saturday, day.Weekday())
		assert.NotEqual(t, time.Sunday, day.Weekday())
	}
}

func TestGenerateCandleShape(t *testing.T) {
	s := NewHistorySynthesizer(99)
	end := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)

	for _, point := range s.Generate(2500, end) {
		assert.GreaterOrEqual(t, point.High, point.Close)
		assert.LessOrEqual(t, point.Low, point.Close)
		assert.GreaterOrEqual(t, point.High, point.Open)
		assert.LessOrEqual(t, point.Low, point.Open)
		assert.GreaterOrEqual(t, point.Volume, int64(2_000_000))
		assert.Less(t, point.Volume, int64(15_000_000))
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	end := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)

	first := NewHistorySynthesizer(1234).Generate(1500, end)
	second := NewHistorySynthesizer(1234).Generate(1500, end)

	assert.Equal(t, first, second)
}
