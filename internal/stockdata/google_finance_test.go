package stockdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"₹1,234.56", 1234.56},
		{"1,23,456", 123456},
		{"5.67M", 5.67e6},
		{"12.34B", 12.34e9},
		{"45.67T", 45.67e12},
		{"2.50Cr", 2.5e7},
		{"3.2L", 3.2e5},
		{"850K", 850e3},
		{"42", 42},
		{"", 0},
		{"N/A", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.InDelta(t, tt.want, parseNumber(tt.in), 1e-6)
		})
	}
}

func TestParseRange(t *testing.T) {
	low, high := parseRange("₹2,400.00 - ₹2,512.50", 1, 2)
	assert.Equal(t, 2400.0, low)
	assert.Equal(t, 2512.5, high)

	low, high = parseRange("no numbers here", 10, 20)
	assert.Equal(t, 10.0, low)
	assert.Equal(t, 20.0, high)
}
