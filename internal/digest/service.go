package digest

import (
	"context"
	"encoding/json"
	"fmt"

	"findia-sentiment-engine/internal/config"
	"findia-sentiment-engine/internal/dto"
	"findia-sentiment-engine/internal/entity"
	"findia-sentiment-engine/internal/repository"
	"findia-sentiment-engine/pkg/logger"
	"findia-sentiment-engine/pkg/telegram"
	"findia-sentiment-engine/pkg/utils"

	"github.com/robfig/cron/v3"
)

// Analyzer is the pipeline entry point the digest defers to.
type Analyzer interface {
	Analyze(ctx context.Context, ticker string, days int) (dto.AnalysisResult, error)
}

// Service runs the scheduled watchlist digest: analyze every watched
// ticker, persist a snapshot, and push a Telegram summary.
type Service struct {
	cfg           *config.Digest
	watchlistRepo repository.WatchlistRepository
	snapshotRepo  repository.SentimentSnapshotRepository
	analyzer      Analyzer
	notifier      telegram.Notifier
	logger        *logger.Logger
	cron          *cron.Cron
}

// NewService creates the digest service. notifier may be nil, in which case
// snapshots are still written but no message is sent.
func NewService(
	cfg *config.Digest,
	watchlistRepo repository.WatchlistRepository,
	snapshotRepo repository.SentimentSnapshotRepository,
	analyzer Analyzer,
	notifier telegram.Notifier,
	log *logger.Logger,
) *Service {
	return &Service{
		cfg:           cfg,
		watchlistRepo: watchlistRepo,
		snapshotRepo:  snapshotRepo,
		analyzer:      analyzer,
		notifier:      notifier,
		logger:        log,
		cron:          cron.New(),
	}
}

// Start registers the cron schedule and starts the scheduler. An empty cron
// expression disables the digest entirely.
func (s *Service) Start(ctx context.Context) error {
	if s.cfg.Cron == "" {
		s.logger.Info("Digest disabled, no cron expression configured")
		return nil
	}

	_, err := s.cron.AddFunc(s.cfg.Cron, func() {
		if err := s.Run(ctx); err != nil {
			s.logger.Error("Digest run failed", logger.ErrorField(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to register digest schedule: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Digest scheduled", logger.StringField("cron", s.cfg.Cron))
	return nil
}

// Stop stops the scheduler and waits for a running digest to finish.
func (s *Service) Stop() {
	<-s.cron.Stop().Done()
}

// Run performs one digest pass over every watched ticker. Per-ticker
// failures are logged and skipped; the run continues.
func (s *Service) Run(ctx context.Context) error {
	tickers, err := s.watchlistRepo.DistinctTickers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list watched tickers: %w", err)
	}
	if len(tickers) == 0 {
		s.logger.InfoContext(ctx, "No watched tickers, skipping digest")
		return nil
	}

	entries := make([]telegram.DigestEntry, 0, len(tickers))
	for _, ticker := range tickers {
		result, err := s.analyzer.Analyze(ctx, ticker, s.cfg.Days)
		if err != nil {
			s.logger.WarnContext(ctx, "Digest analysis failed for ticker, skipping",
				logger.StringField("ticker", ticker),
				logger.ErrorField(err),
			)
			continue
		}

		// The previous snapshot must be read before this run's is written,
		// or the delta would compare the result against itself.
		entry := telegram.DigestEntry{Result: result}
		previous, err := s.snapshotRepo.FindLatestByTicker(ctx, result.Stock)
		if err != nil {
			s.logger.WarnContext(ctx, "Failed to load previous sentiment snapshot",
				logger.StringField("ticker", ticker),
				logger.ErrorField(err),
			)
		} else if previous != nil {
			score := previous.AverageScore
			entry.PreviousScore = &score
		}
		entries = append(entries, entry)

		if err := s.persistSnapshot(ctx, result); err != nil {
			s.logger.WarnContext(ctx, "Failed to persist sentiment snapshot",
				logger.StringField("ticker", ticker),
				logger.ErrorField(err),
			)
		}
	}

	if s.notifier == nil {
		return nil
	}
	for _, message := range telegram.FormatDailyDigest(utils.TimeNowIST(), entries) {
		if err := s.notifier.SendMessage(ctx, message); err != nil {
			return fmt.Errorf("failed to send digest message: %w", err)
		}
	}

	s.logger.InfoContext(ctx, "Digest complete", logger.IntField("tickers", len(entries)))
	return nil
}

func (s *Service) persistSnapshot(ctx context.Context, result dto.AnalysisResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis payload: %w", err)
	}
	return s.snapshotRepo.Create(ctx, &entity.SentimentSnapshot{
		Ticker:         result.Stock,
		SentimentLabel: result.SentimentLabel,
		AverageScore:   result.SentimentScore,
		Payload:        payload,
	})
}
