package stockdata

import (
	"context"
	"testing"
	"time"

	"findia-sentiment-engine/internal/dto"
	"findia-sentiment-engine/pkg/logger"

	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
)

func newCachedClient(info dto.StockInfo) *client {
	c := &client{
		log:   logger.NewNop(),
		cache: cache.New(time.Minute, time.Minute),
	}
	c.cache.Set("info:"+info.Ticker, info, cache.DefaultExpiration)
	return c
}

func TestGetPriceChangeFromSnapshot(t *testing.T) {
	c := newCachedClient(dto.StockInfo{Ticker: "TCS", CurrentPrice: 3521.35, PreviousClose: 3450.10})

	change := c.GetPriceChange(context.Background(), "TCS")

	assert.Equal(t, 3521.35, change.CurrentPrice)
	assert.Equal(t, 3450.10, change.PreviousClose)
	assert.InDelta(t, 71.25, change.Change, 1e-9)
	assert.InDelta(t, 2.07, change.ChangePercent, 1e-9)
}

func TestGetPriceChangeNegativeMove(t *testing.T) {
	c := newCachedClient(dto.StockInfo{Ticker: "INFY", CurrentPrice: 1480.00, PreviousClose: 1500.00})

	change := c.GetPriceChange(context.Background(), "INFY")

	assert.InDelta(t, -20.00, change.Change, 1e-9)
	assert.InDelta(t, -1.33, change.ChangePercent, 1e-9)
}

func TestGetPriceChangeWithoutPreviousClose(t *testing.T) {
	c := newCachedClient(dto.StockInfo{Ticker: "NEWIPO", CurrentPrice: 210.00})

	change := c.GetPriceChange(context.Background(), "NEWIPO")

	assert.Equal(t, 210.00, change.CurrentPrice)
	assert.Zero(t, change.Change)
	assert.Zero(t, change.ChangePercent)
}
