package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const languageKeyPrefix = "storefront:lang:"

// Visitor language preferences live far longer than carts
const languageTTL = 365 * 24 * time.Hour

// RedisLanguageStore persists each visitor's chosen language in Redis
type RedisLanguageStore struct {
	client *redis.Client
}

// NewRedisLanguageStoreWithClient wraps an existing client
func NewRedisLanguageStoreWithClient(client *redis.Client) *RedisLanguageStore {
	return &RedisLanguageStore{client: client}
}

// Get returns the stored language, or "" when none is set
func (s *RedisLanguageStore) Get(ctx context.Context, visitorID string) (string, error) {
	lang, err := s.client.Get(ctx, languageKeyPrefix+visitorID).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("language load: %w", err)
	}
	return lang, nil
}

// Set stores the visitor's language choice
func (s *RedisLanguageStore) Set(ctx context.Context, visitorID, language string) error {
	if err := s.client.Set(ctx, languageKeyPrefix+visitorID, language, languageTTL).Err(); err != nil {
		return fmt.Errorf("language save: %w", err)
	}
	return nil
}

// InMemoryLanguageStore is the process-local fallback
type InMemoryLanguageStore struct {
	mu    sync.RWMutex
	langs map[string]string
}

// NewInMemoryLanguageStore creates an empty store
func NewInMemoryLanguageStore() *InMemoryLanguageStore {
	return &InMemoryLanguageStore{langs: make(map[string]string)}
}

// Get returns the stored language, or "" when none is set
func (s *InMemoryLanguageStore) Get(ctx context.Context, visitorID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.langs[visitorID], nil
}

// Set stores the visitor's language choice
func (s *InMemoryLanguageStore) Set(ctx context.Context, visitorID, language string) error {
	s.mu.Lock()
	s.langs[visitorID] = language
	s.mu.Unlock()
	return nil
}
