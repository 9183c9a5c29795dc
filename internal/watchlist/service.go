package watchlist

import (
	"context"
	"fmt"
	"strings"
	"time"

	"findia-sentiment-engine/internal/dto"
	"findia-sentiment-engine/internal/entity"
	"findia-sentiment-engine/internal/registry"
	"findia-sentiment-engine/internal/repository"
	"findia-sentiment-engine/pkg/logger"
)

// Service manages per-user ticker watchlists.
type Service struct {
	registry *registry.Registry
	repo     repository.WatchlistRepository
	logger   *logger.Logger
}

// NewService creates the watchlist service.
func NewService(reg *registry.Registry, repo repository.WatchlistRepository, log *logger.Logger) *Service {
	return &Service{registry: reg, repo: repo, logger: log}
}

// Add validates and inserts one ticker into the user's watchlist.
func (s *Service) Add(ctx context.Context, userID, ticker string) (dto.WatchlistAddResponse, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	companyName, ok := s.registry.CompanyName(ticker)
	if !ok {
		return dto.WatchlistAddResponse{}, &dto.InvalidTickerError{Ticker: ticker}
	}

	err := s.repo.Add(ctx, &entity.Watchlist{
		UserID:      userID,
		Ticker:      ticker,
		CompanyName: companyName,
	})
	if err != nil {
		return dto.WatchlistAddResponse{}, err
	}

	return dto.WatchlistAddResponse{
		Message:     fmt.Sprintf("Added %s to watchlist", ticker),
		Ticker:      ticker,
		CompanyName: companyName,
	}, nil
}

// List returns the user's watchlist, most recently added first.
func (s *Service) List(ctx context.Context, userID string) (dto.WatchlistResponse, error) {
	items, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return dto.WatchlistResponse{}, err
	}

	entries := make([]dto.WatchlistEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, dto.WatchlistEntry{
			Ticker:      item.Ticker,
			CompanyName: item.CompanyName,
			AddedAt:     item.CreatedAt.Format(time.RFC3339),
		})
	}
	return dto.WatchlistResponse{Watchlist: entries, Count: len(entries)}, nil
}

// Remove deletes one ticker from the user's watchlist.
func (s *Service) Remove(ctx context.Context, userID, ticker string) (dto.WatchlistRemoveResponse, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if err := s.repo.Remove(ctx, userID, ticker); err != nil {
		return dto.WatchlistRemoveResponse{}, err
	}
	return dto.WatchlistRemoveResponse{
		Message: fmt.Sprintf("Removed %s from watchlist", ticker),
		Ticker:  ticker,
	}, nil
}
