package sentiment

import (
	"context"
	"fmt"

	"findia-sentiment-engine/internal/config"
	"findia-sentiment-engine/pkg/logger"

	"google.golang.org/genai"
)

// maxClassifierInput is the classifier's input budget in runes. Longer text
// is truncated before classification.
const maxClassifierInput = 512

// RawClassification is the classifier's untranslated output.
type RawClassification struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Classifier assigns a raw sentiment label and confidence to one text.
// Implementations are side-effect-free on shared state so concurrent
// requests can classify independently.
type Classifier interface {
	Classify(ctx context.Context, text string) (RawClassification, error)
}

// NewClassifier builds the classifier selected by configuration.
func NewClassifier(cfg *config.Classifier, log *logger.Logger, genAIClient *genai.Client) (Classifier, error) {
	switch cfg.Provider {
	case "finbert", "":
		return NewFinBERTClassifier(&cfg.FinBERT, log), nil
	case "gemini":
		return NewGeminiClassifier(&cfg.Gemini, log, genAIClient), nil
	default:
		return nil, fmt.Errorf("unknown classifier provider: %s", cfg.Provider)
	}
}
