package cache

import (
	"fmt"
	"time"

	"github.com/bojietech/storefront/internal/domain/cart"
	"github.com/bojietech/storefront/internal/infrastructure/config"
	"go.uber.org/zap"
)

// CartStoreFactory creates the visitor cart store, preferring Redis and
// optionally falling back to an in-memory store
type CartStoreFactory struct {
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// CartStoreFactoryOption is a functional option for configuring the factory
type CartStoreFactoryOption func(*CartStoreFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) CartStoreFactoryOption {
	return func(f *CartStoreFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to an in-memory
// store when Redis is unavailable. Default is true.
func WithInMemoryFallback(allow bool) CartStoreFactoryOption {
	return func(f *CartStoreFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewCartStoreFactory creates a new factory
func NewCartStoreFactory(cfg config.RedisConfig, opts ...CartStoreFactoryOption) *CartStoreFactory {
	f := &CartStoreFactory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateStore tries Redis first and falls back to in-memory when
// allowed. Carts in the fallback store do not survive a restart and
// are not shared across instances.
func (f *CartStoreFactory) CreateStore() (cart.Store, error) {
	store, err := f.createRedisStore()
	if err == nil {
		f.logger.Info("using Redis cart store")
		return store, nil
	}

	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("Redis required for cart store but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory cart store",
		zap.Error(err),
	)
	return NewInMemoryCartStore(), nil
}

func (f *CartStoreFactory) createRedisStore() (*RedisCartStore, error) {
	ttl := f.redisConfig.CartTTL
	if ttl == 0 {
		ttl = 30 * 24 * time.Hour
	}
	return NewRedisCartStore(RedisConfig{
		Host:     f.redisConfig.Host,
		Port:     f.redisConfig.Port,
		Password: f.redisConfig.Password,
		DB:       f.redisConfig.DB,
	}, ttl)
}
