package digest

import (
	"context"
	"errors"
	"testing"

	"findia-sentiment-engine/internal/config"
	"findia-sentiment-engine/internal/dto"
	"findia-sentiment-engine/internal/entity"
	"findia-sentiment-engine/pkg/logger"
	"findia-sentiment-engine/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWatchlistRepo struct {
	tickers []string
}

func (f *fakeWatchlistRepo) Add(_ context.Context, _ *entity.Watchlist) error { return nil }

func (f *fakeWatchlistRepo) FindByUser(_ context.Context, _ string) ([]entity.Watchlist, error) {
	return nil, nil
}

func (f *fakeWatchlistRepo) Remove(_ context.Context, _, _ string) error { return nil }

func (f *fakeWatchlistRepo) DistinctTickers(_ context.Context) ([]string, error) {
	return f.tickers, nil
}

type fakeSnapshotRepo struct {
	latest  map[string]*entity.SentimentSnapshot
	created []entity.SentimentSnapshot
}

func (f *fakeSnapshotRepo) Create(_ context.Context, snapshot *entity.SentimentSnapshot) error {
	f.created = append(f.created, *snapshot)
	return nil
}

func (f *fakeSnapshotRepo) FindLatestByTicker(_ context.Context, ticker string) (*entity.SentimentSnapshot, error) {
	return f.latest[ticker], nil
}

type fakeAnalyzer struct {
	results map[string]dto.AnalysisResult
	calls   []string
}

func (f *fakeAnalyzer) Analyze(_ context.Context, ticker string, _ int) (dto.AnalysisResult, error) {
	f.calls = append(f.calls, ticker)
	result, ok := f.results[ticker]
	if !ok {
		return dto.AnalysisResult{}, errors.New("analysis unavailable")
	}
	return result, nil
}

type fakeNotifier struct {
	messages []string
}

func (f *fakeNotifier) SendMessage(_ context.Context, text string) error {
	f.messages = append(f.messages, text)
	return nil
}

func bullishResult(ticker string, score float64) dto.AnalysisResult {
	return dto.AnalysisResult{
		Stock:          ticker,
		SentimentLabel: dto.SignalBullish,
		SentimentScore: score,
		PositiveCount:  3,
	}
}

func TestRunAnalyzesPersistsAndNotifies(t *testing.T) {
	analyzer := &fakeAnalyzer{results: map[string]dto.AnalysisResult{
		"TCS": bullishResult("TCS", 0.42),
	}}
	snapshots := &fakeSnapshotRepo{latest: map[string]*entity.SentimentSnapshot{
		"TCS": {Ticker: "TCS", AverageScore: 0.10},
	}}
	notifier := &fakeNotifier{}
	svc := NewService(
		&config.Digest{Days: 7},
		&fakeWatchlistRepo{tickers: []string{"TCS", "INFY"}},
		snapshots,
		analyzer,
		notifier,
		logger.NewNop(),
	)

	err := svc.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"TCS", "INFY"}, analyzer.calls)

	// INFY failed, so only TCS is snapshotted; the run still completes.
	require.Len(t, snapshots.created, 1)
	assert.Equal(t, "TCS", snapshots.created[0].Ticker)
	assert.Equal(t, 0.42, snapshots.created[0].AverageScore)
	assert.NotEmpty(t, snapshots.created[0].Payload)

	require.NotEmpty(t, notifier.messages)
	assert.Contains(t, notifier.messages[0], "TCS")
	assert.NotContains(t, notifier.messages[0], "INFY")
	// The digest header is dated in market time (IST).
	assert.Contains(t, notifier.messages[0], utils.TimeNowIST().Format("02 Jan 2006"))
	// The shift comes from the snapshot written by the previous run.
	assert.Contains(t, notifier.messages[0], "*Since last digest:* +0.32")
}

func TestRunFirstSnapshotHasNoShiftLine(t *testing.T) {
	analyzer := &fakeAnalyzer{results: map[string]dto.AnalysisResult{
		"TCS": bullishResult("TCS", 0.42),
	}}
	notifier := &fakeNotifier{}
	svc := NewService(
		&config.Digest{Days: 7},
		&fakeWatchlistRepo{tickers: []string{"TCS"}},
		&fakeSnapshotRepo{},
		analyzer,
		notifier,
		logger.NewNop(),
	)

	err := svc.Run(context.Background())

	require.NoError(t, err)
	require.NotEmpty(t, notifier.messages)
	assert.NotContains(t, notifier.messages[0], "Since last digest")
}

func TestRunSkipsWhenNothingWatched(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewService(
		&config.Digest{Days: 7},
		&fakeWatchlistRepo{},
		&fakeSnapshotRepo{},
		&fakeAnalyzer{},
		notifier,
		logger.NewNop(),
	)

	err := svc.Run(context.Background())

	require.NoError(t, err)
	assert.Empty(t, notifier.messages)
}

func TestRunWithoutNotifierStillPersists(t *testing.T) {
	analyzer := &fakeAnalyzer{results: map[string]dto.AnalysisResult{
		"TCS": bullishResult("TCS", 0.42),
	}}
	snapshots := &fakeSnapshotRepo{}
	svc := NewService(
		&config.Digest{Days: 7},
		&fakeWatchlistRepo{tickers: []string{"TCS"}},
		snapshots,
		analyzer,
		nil,
		logger.NewNop(),
	)

	err := svc.Run(context.Background())

	require.NoError(t, err)
	assert.Len(t, snapshots.created, 1)
}
