package chat

import (
	"context"
	"fmt"
	"strings"

	"findia-sentiment-engine/internal/dto"
	"findia-sentiment-engine/internal/registry"
	"findia-sentiment-engine/pkg/logger"
)

// Analyzer is the authoritative pipeline the chat consumer defers to. It
// never invokes the scorer or aggregator directly.
type Analyzer interface {
	Analyze(ctx context.Context, ticker string, days int) (dto.AnalysisResult, error)
}

// Service routes chat messages to canned intents that read fields off an
// AnalysisResult.
type Service struct {
	registry *registry.Registry
	analyzer Analyzer
	sessions SessionStore
	logger   *logger.Logger
	days     int
}

// NewService creates the chat service. days is the lookback window used
// when a message forces a fresh analysis.
func NewService(reg *registry.Registry, analyzer Analyzer, sessions SessionStore, log *logger.Logger, days int) *Service {
	return &Service{
		registry: reg,
		analyzer: analyzer,
		sessions: sessions,
		logger:   log,
		days:     days,
	}
}

// Respond answers one chat message. reqContext, when non-nil, is the
// caller's dashboard snapshot; it is only trusted when it matches the
// ticker currently under discussion.
func (s *Service) Respond(ctx context.Context, sessionID, message string, reqContext *dto.AnalysisResult) string {
	lowered := strings.ToLower(message)

	detected, _ := s.registry.DetectTicker(message)
	active := s.resolveActiveData(ctx, sessionID, detected, reqContext)

	switch {
	case strings.Contains(lowered, "news") && (strings.Contains(lowered, "summary") || strings.Contains(lowered, "flashcard")):
		if active == nil || active.Stock == "" {
			return "Please search for a stock first (e.g., 'Analyze RELIANCE') to see its news summary."
		}
		return newsSummaryResponse(active)

	case strings.Contains(lowered, "calculate") || strings.Contains(lowered, "methodology") || strings.Contains(lowered, "how"):
		return methodologyResponse(active)

	case strings.Contains(lowered, "market trend"):
		return marketTrendResponse()

	case strings.Contains(lowered, "top bullish"):
		return topStocksResponse(dto.SignalBullish)

	case strings.Contains(lowered, "top bearish"):
		return topStocksResponse(dto.SignalBearish)

	case active != nil && active.SentimentLabel != "":
		return analysisResponse(active)

	default:
		if detected != "" {
			return fmt.Sprintf("I recognized **%s**, but I cannot access its dashboard data right now. Please try searching for it.", detected)
		}
		return helpResponse()
	}
}

// resolveActiveData picks the authoritative snapshot for the detected
// ticker: the request context if it matches, then the session snapshot,
// then a fresh pipeline run.
func (s *Service) resolveActiveData(ctx context.Context, sessionID, detected string, reqContext *dto.AnalysisResult) *dto.AnalysisResult {
	if detected == "" {
		return reqContext
	}
	if reqContext != nil && reqContext.Stock == detected {
		return reqContext
	}

	if sessionID != "" {
		snapshot, err := s.sessions.Load(ctx, sessionID)
		if err != nil {
			s.logger.WarnContext(ctx, "Failed to load chat session snapshot",
				logger.StringField("session_id", sessionID),
				logger.ErrorField(err),
			)
		} else if snapshot != nil && snapshot.Stock == detected {
			return snapshot
		}
	}

	result, err := s.analyzer.Analyze(ctx, detected, s.days)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to fetch authoritative data for chat",
			logger.StringField("ticker", detected),
			logger.ErrorField(err),
		)
		return nil
	}

	if sessionID != "" {
		if err := s.sessions.Save(ctx, sessionID, result); err != nil {
			s.logger.WarnContext(ctx, "Failed to save chat session snapshot",
				logger.StringField("session_id", sessionID),
				logger.ErrorField(err),
			)
		}
	}
	return &result
}
