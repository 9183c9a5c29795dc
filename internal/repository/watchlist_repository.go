package repository

import (
	"context"
	"errors"

	"findia-sentiment-engine/internal/entity"

	"gorm.io/gorm"
)

// ErrAlreadyInWatchlist is returned when the (user, ticker) pair exists.
var ErrAlreadyInWatchlist = errors.New("ticker already in watchlist")

// ErrNotInWatchlist is returned when a delete matches no row.
var ErrNotInWatchlist = errors.New("ticker not in watchlist")

// WatchlistRepository defines the interface for watchlist data operations.
type WatchlistRepository interface {
	Add(ctx context.Context, item *entity.Watchlist) error
	FindByUser(ctx context.Context, userID string) ([]entity.Watchlist, error)
	Remove(ctx context.Context, userID, ticker string) error
	DistinctTickers(ctx context.Context) ([]string, error)
}

// NewWatchlistRepository creates a new GORM-based watchlist repository.
func NewWatchlistRepository(db *gorm.DB) WatchlistRepository {
	return &watchlistRepository{db: db}
}

type watchlistRepository struct {
	db *gorm.DB
}

// Add inserts a watchlist entry, rejecting duplicates per (user, ticker).
func (r *watchlistRepository) Add(ctx context.Context, item *entity.Watchlist) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Watchlist{}).
		Where("user_id = ? AND ticker = ?", item.UserID, item.Ticker).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrAlreadyInWatchlist
	}
	return r.db.WithContext(ctx).Create(item).Error
}

// FindByUser retrieves a user's watchlist, most recently added first.
func (r *watchlistRepository) FindByUser(ctx context.Context, userID string) ([]entity.Watchlist, error) {
	var items []entity.Watchlist
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Remove deletes one watchlist entry.
func (r *watchlistRepository) Remove(ctx context.Context, userID, ticker string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND ticker = ?", userID, ticker).
		Delete(&entity.Watchlist{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotInWatchlist
	}
	return nil
}

// DistinctTickers returns every ticker watched by any user, for the digest.
func (r *watchlistRepository) DistinctTickers(ctx context.Context) ([]string, error) {
	var tickers []string
	if err := r.db.WithContext(ctx).
		Model(&entity.Watchlist{}).
		Distinct("ticker").
		Order("ticker").
		Pluck("ticker", &tickers).Error; err != nil {
		return nil, err
	}
	return tickers, nil
}
