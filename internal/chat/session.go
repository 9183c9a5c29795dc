package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"findia-sentiment-engine/internal/dto"
	redisclient "findia-sentiment-engine/pkg/redis"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "chat:session:"

// SessionStore remembers the last authoritative AnalysisResult per chat
// session so follow-up questions about the same ticker reuse it instead of
// re-running the pipeline.
type SessionStore interface {
	Save(ctx context.Context, sessionID string, result dto.AnalysisResult) error
	// Load returns nil with no error when the session has no snapshot.
	Load(ctx context.Context, sessionID string) (*dto.AnalysisResult, error)
}

type redisSessionStore struct {
	client *redisclient.Client
	ttl    time.Duration
}

// NewRedisSessionStore creates a Redis-backed session store.
func NewRedisSessionStore(client *redisclient.Client, ttl time.Duration) SessionStore {
	return &redisSessionStore{client: client, ttl: ttl}
}

func (s *redisSessionStore) Save(ctx context.Context, sessionID string, result dto.AnalysisResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal session snapshot: %w", err)
	}
	if err := s.client.Client.Set(ctx, sessionKeyPrefix+sessionID, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session snapshot: %w", err)
	}
	return nil
}

func (s *redisSessionStore) Load(ctx context.Context, sessionID string) (*dto.AnalysisResult, error) {
	payload, err := s.client.Client.Get(ctx, sessionKeyPrefix+sessionID).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session snapshot: %w", err)
	}

	var result dto.AnalysisResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session snapshot: %w", err)
	}
	return &result, nil
}

type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]dto.AnalysisResult
}

// NewMemorySessionStore creates an in-process session store, used when no
// Redis instance is configured.
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{sessions: make(map[string]dto.AnalysisResult)}
}

func (s *memorySessionStore) Save(_ context.Context, sessionID string, result dto.AnalysisResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = result
	return nil
}

func (s *memorySessionStore) Load(_ context.Context, sessionID string) (*dto.AnalysisResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	return &result, nil
}
