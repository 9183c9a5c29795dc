package repository

import (
	"context"
	"errors"

	"findia-sentiment-engine/internal/entity"

	"gorm.io/gorm"
)

// SentimentSnapshotRepository defines the interface for persisted pipeline
// results.
type SentimentSnapshotRepository interface {
	Create(ctx context.Context, snapshot *entity.SentimentSnapshot) error
	FindLatestByTicker(ctx context.Context, ticker string) (*entity.SentimentSnapshot, error)
}

// NewSentimentSnapshotRepository creates a new GORM-based snapshot repository.
func NewSentimentSnapshotRepository(db *gorm.DB) SentimentSnapshotRepository {
	return &sentimentSnapshotRepository{db: db}
}

type sentimentSnapshotRepository struct {
	db *gorm.DB
}

// Create persists one snapshot.
func (r *sentimentSnapshotRepository) Create(ctx context.Context, snapshot *entity.SentimentSnapshot) error {
	return r.db.WithContext(ctx).Create(snapshot).Error
}

// FindLatestByTicker retrieves the most recent snapshot for a ticker, or
// nil when the ticker has never been snapshotted.
func (r *sentimentSnapshotRepository) FindLatestByTicker(ctx context.Context, ticker string) (*entity.SentimentSnapshot, error) {
	var snapshot entity.SentimentSnapshot
	if err := r.db.WithContext(ctx).
		Where("ticker = ?", ticker).
		Order("created_at DESC").
		First(&snapshot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &snapshot, nil
}
