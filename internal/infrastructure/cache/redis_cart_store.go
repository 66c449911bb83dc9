package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bojietech/storefront/internal/domain/cart"
	"github.com/redis/go-redis/v9"
)

const cartKeyPrefix = "storefront:cart:"

// RedisCartStore implements cart.Store on Redis. Carts are plain JSON
// values with a sliding TTL so abandoned carts eventually disappear.
type RedisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisCartStore connects to Redis and verifies the connection
func NewRedisCartStore(cfg RedisConfig, ttl time.Duration) (*RedisCartStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisCartStore{client: client, ttl: ttl}, nil
}

// NewRedisCartStoreWithClient wraps an existing client, useful when
// sharing one connection pool across stores
func NewRedisCartStoreWithClient(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{client: client, ttl: ttl}
}

// Load fetches a cart. A missing key yields a fresh empty cart; corrupt
// or unreachable data is reported as an error for the caller to degrade.
func (s *RedisCartStore) Load(ctx context.Context, cartID string) (*cart.Cart, error) {
	data, err := s.client.Get(ctx, cartKeyPrefix+cartID).Bytes()
	if errors.Is(err, redis.Nil) {
		return cart.New(cartID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cart load: %w", err)
	}

	var c cart.Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("cart decode: %w", err)
	}
	c.ID = cartID
	return &c, nil
}

// Save writes the cart and refreshes its TTL
func (s *RedisCartStore) Save(ctx context.Context, c *cart.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("cart encode: %w", err)
	}
	if err := s.client.Set(ctx, cartKeyPrefix+c.ID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("cart save: %w", err)
	}
	return nil
}

// Delete drops the cart key
func (s *RedisCartStore) Delete(ctx context.Context, cartID string) error {
	if err := s.client.Del(ctx, cartKeyPrefix+cartID).Err(); err != nil {
		return fmt.Errorf("cart delete: %w", err)
	}
	return nil
}
