package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"findia-sentiment-engine/internal/config"
	"findia-sentiment-engine/pkg/logger"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

const geminiClassifyPrompt = `You are a financial sentiment classifier for Indian market news.
Classify the sentiment of the following text as exactly one of: positive, negative, neutral.
Respond with JSON only, no markdown, in the form {"label": "<label>", "confidence": <0.0-1.0>}.

Text:
%s`

// geminiClassifier uses the Gemini API as an alternate classifier when no
// FinBERT inference endpoint is configured.
type geminiClassifier struct {
	cfg            *config.Gemini
	log            *logger.Logger
	genAIClient    *genai.Client
	requestLimiter *rate.Limiter
}

// NewGeminiClassifier creates the Gemini-backed classifier.
func NewGeminiClassifier(cfg *config.Gemini, log *logger.Logger, genAIClient *genai.Client) Classifier {
	secondsPerRequest := time.Minute / time.Duration(cfg.MaxRequestPerMinute)
	return &geminiClassifier{
		cfg:            cfg,
		log:            log,
		genAIClient:    genAIClient,
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
	}
}

func (c *geminiClassifier) Classify(ctx context.Context, text string) (RawClassification, error) {
	if err := c.requestLimiter.Wait(ctx); err != nil {
		return RawClassification{}, fmt.Errorf("failed to wait for request limit: %w", err)
	}

	prompt := fmt.Sprintf(geminiClassifyPrompt, text)
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, "user"),
	}

	resp, err := c.genAIClient.Models.GenerateContent(ctx, c.cfg.Model, contents, nil)
	if err != nil {
		return RawClassification{}, fmt.Errorf("failed to call Gemini API: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return RawClassification{}, fmt.Errorf("invalid response from Gemini API: no content found")
	}

	jsonString := resp.Candidates[0].Content.Parts[0].Text
	jsonString = strings.Trim(jsonString, "`json\n`")

	var result RawClassification
	if err := json.Unmarshal([]byte(jsonString), &result); err != nil {
		return RawClassification{}, fmt.Errorf("failed to unmarshal classification from Gemini response: %w", err)
	}
	return result, nil
}
