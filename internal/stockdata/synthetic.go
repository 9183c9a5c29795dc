package stockdata

import (
	"math/rand"
	"sync"
	"time"

	"findia-sentiment-engine/internal/dto"
	"findia-sentiment-engine/pkg/utils"
)

const historyDays = 30

// HistorySynthesizer fabricates a plausible month of daily candles anchored
// on the current price. It exists so analysis can still correlate sentiment
// against a trend when every price provider is unreachable.
type HistorySynthesizer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewHistorySynthesizer creates a synthesizer with a fixed seed so tests can
// assert on the generated series.
func NewHistorySynthesizer(seed int64) *HistorySynthesizer {
	return &HistorySynthesizer{rng: rand.New(rand.NewSource(seed))}
}

// Generate produces ~30 calendar days of weekday candles ending at end.
// The walk starts within ±8% of currentPrice, moves up to ±2.5% per day,
// and the final candle closes exactly at currentPrice.
func (s *HistorySynthesizer) Generate(currentPrice float64, end time.Time) []dto.PricePoint {
	s.mu.Lock()
	defer s.mu.Unlock()

	price := currentPrice * (0.92 + s.rng.Float64()*0.16)

	history := make([]dto.PricePoint, 0, historyDays)
	for i := historyDays - 1; i >= 0; i-- {
		day := end.AddDate(0, 0, -i)
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}

		open := price
		price *= 1 + (s.rng.Float64()*0.05 - 0.025)
		if i == 0 {
			price = currentPrice
		}

		high := price * (1 + s.gaussAbs(0.01))
		low := price * (1 - s.gaussAbs(0.01))
		if open > high {
			high = open
		}
		if open < low {
			low = open
		}

		history = append(history, dto.PricePoint{
			Date:   day.Format("2006-01-02"),
			Open:   roundTo2(open),
			High:   roundTo2(high),
			Low:    roundTo2(low),
			Close:  roundTo2(price),
			Volume: s.volumeLocked(),
		})
	}
	return history
}

// Volume returns a plausible daily volume for an NSE large cap.
func (s *HistorySynthesizer) Volume() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volumeLocked()
}

func (s *HistorySynthesizer) volumeLocked() int64 {
	return 2_000_000 + s.rng.Int63n(13_000_000)
}

func (s *HistorySynthesizer) gaussAbs(stddev float64) float64 {
	v := s.rng.NormFloat64() * stddev
	if v < 0 {
		v = -v
	}
	return v
}

func roundTo2(v float64) float64 {
	return utils.RoundTo(v, 2)
}
