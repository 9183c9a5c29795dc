package stockdata

import (
	"context"

	"findia-sentiment-engine/internal/dto"
)

// Repository provides fundamentals, daily price history, and the day's
// price move for a ticker.
//
// All operations are total: every upstream failure is absorbed behind a
// fallback (Yahoo → Google Finance scrape → synthetic), so callers receive
// a zero-valued snapshot or synthesized history rather than an error.
type Repository interface {
	GetStockInfo(ctx context.Context, ticker string) dto.StockInfo
	GetHistoricalData(ctx context.Context, ticker string) []dto.PricePoint
	GetPriceChange(ctx context.Context, ticker string) dto.PriceChange
}
