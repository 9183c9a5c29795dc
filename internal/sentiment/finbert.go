package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"findia-sentiment-engine/internal/config"
	"findia-sentiment-engine/pkg/logger"

	"golang.org/x/time/rate"
)

// finBERTClassifier calls a hosted FinBERT-India inference endpoint. The
// endpoint follows the usual text-classification shape: a JSON body with
// the input text, a ranked list of label/score pairs back.
type finBERTClassifier struct {
	cfg            *config.FinBERT
	log            *logger.Logger
	client         *http.Client
	requestLimiter *rate.Limiter
}

type finBERTRequest struct {
	Inputs string `json:"inputs"`
}

type finBERTLabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// NewFinBERTClassifier creates the FinBERT inference classifier.
func NewFinBERTClassifier(cfg *config.FinBERT, log *logger.Logger) Classifier {
	secondsPerRequest := time.Minute / time.Duration(cfg.MaxRequestPerMinute)
	return &finBERTClassifier{
		cfg:            cfg,
		log:            log,
		client:         &http.Client{Timeout: 30 * time.Second},
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
	}
}

func (c *finBERTClassifier) Classify(ctx context.Context, text string) (RawClassification, error) {
	if err := c.requestLimiter.Wait(ctx); err != nil {
		return RawClassification{}, fmt.Errorf("failed to wait for request limit: %w", err)
	}

	payload, err := json.Marshal(finBERTRequest{Inputs: text})
	if err != nil {
		return RawClassification{}, fmt.Errorf("failed to marshal payload: %w", err)
	}

	apiURL := fmt.Sprintf("%s/models/%s", c.cfg.BaseURL, c.cfg.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewBuffer(payload))
	if err != nil {
		return RawClassification{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return RawClassification{}, fmt.Errorf("failed to call inference API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return RawClassification{}, fmt.Errorf("received non-OK response from inference API: %d", resp.StatusCode)
	}

	// The endpoint nests results one level per input.
	var ranked [][]finBERTLabelScore
	if err := json.NewDecoder(resp.Body).Decode(&ranked); err != nil {
		return RawClassification{}, fmt.Errorf("failed to decode inference response: %w", err)
	}
	if len(ranked) == 0 || len(ranked[0]) == 0 {
		return RawClassification{}, fmt.Errorf("empty inference response")
	}

	top := ranked[0][0]
	for _, candidate := range ranked[0][1:] {
		if candidate.Score > top.Score {
			top = candidate
		}
	}

	return RawClassification{Label: top.Label, Confidence: top.Score}, nil
}
