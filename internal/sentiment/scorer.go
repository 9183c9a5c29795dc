package sentiment

import (
	"context"
	"strings"

	"findia-sentiment-engine/internal/dto"
	"findia-sentiment-engine/pkg/logger"
	"findia-sentiment-engine/pkg/utils"
)

// signalDeadband is the single authoritative classification threshold for
// the aggregate signal. No other component may re-apply it.
const signalDeadband = 0.15

// ArticleSentiment is the signed per-article score produced by the scorer.
type ArticleSentiment struct {
	Label      string
	Score      float64
	Confidence float64
}

// Scorer wraps a classifier and translates its raw output into the
// three-way signed taxonomy.
type Scorer struct {
	classifier Classifier
	logger     *logger.Logger
}

// NewScorer creates a Scorer.
func NewScorer(classifier Classifier, log *logger.Logger) *Scorer {
	return &Scorer{classifier: classifier, logger: log}
}

// Score classifies one text. Positive labels yield +confidence, negative
// labels yield -confidence, anything else scores exactly 0.0. A classifier
// failure degrades to neutral/0/0 rather than aborting the batch.
func (s *Scorer) Score(ctx context.Context, text string) ArticleSentiment {
	raw, err := s.classifier.Classify(ctx, utils.TruncateRunes(text, maxClassifierInput))
	if err != nil {
		s.logger.WarnContext(ctx, "Classifier failed for article, scoring neutral",
			logger.ErrorField(err),
		)
		return ArticleSentiment{Label: dto.SentimentNeutral, Score: 0.0, Confidence: 0.0}
	}

	switch strings.ToLower(raw.Label) {
	case "positive", "label_2":
		return ArticleSentiment{Label: dto.SentimentPositive, Score: raw.Confidence, Confidence: raw.Confidence}
	case "negative", "label_0":
		return ArticleSentiment{Label: dto.SentimentNegative, Score: -raw.Confidence, Confidence: raw.Confidence}
	default:
		return ArticleSentiment{Label: dto.SentimentNeutral, Score: 0.0, Confidence: raw.Confidence}
	}
}

// Aggregate combines per-article sentiments into the canonical signal. An
// empty input yields a neutral zero aggregate.
func (s *Scorer) Aggregate(sentiments []ArticleSentiment) dto.AggregateSentiment {
	agg := dto.AggregateSentiment{Label: dto.SignalNeutral}
	if len(sentiments) == 0 {
		return agg
	}

	for _, sent := range sentiments {
		agg.CumulativeScore += sent.Score
		switch sent.Label {
		case dto.SentimentPositive:
			agg.PositiveCount++
		case dto.SentimentNegative:
			agg.NegativeCount++
		default:
			agg.NeutralCount++
		}
	}

	agg.RawAverage = agg.CumulativeScore / float64(len(sentiments))
	agg.AverageScore = utils.RoundTo(agg.RawAverage, 2)
	agg.Label = Classify(agg.RawAverage)
	return agg
}

// Classify maps an average score onto the bullish/bearish/neutral signal
// using the 0.15 deadband. The threshold itself is excluded: exactly 0.15
// is neutral.
func Classify(averageScore float64) string {
	switch {
	case averageScore > signalDeadband:
		return dto.SignalBullish
	case averageScore < -signalDeadband:
		return dto.SignalBearish
	default:
		return dto.SignalNeutral
	}
}
