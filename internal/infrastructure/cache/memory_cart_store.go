package cache

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/bojietech/storefront/internal/domain/cart"
)

// InMemoryCartStore implements cart.Store with a process-local map.
// Suitable for single-instance deployments and tests; carts do not
// survive a restart.
type InMemoryCartStore struct {
	mu    sync.RWMutex
	carts map[string][]byte
}

// NewInMemoryCartStore creates an empty in-memory store
func NewInMemoryCartStore() *InMemoryCartStore {
	return &InMemoryCartStore{carts: make(map[string][]byte)}
}

// Load fetches a cart, returning a fresh empty cart for unknown IDs
func (s *InMemoryCartStore) Load(ctx context.Context, cartID string) (*cart.Cart, error) {
	s.mu.RLock()
	data, ok := s.carts[cartID]
	s.mu.RUnlock()

	if !ok {
		return cart.New(cartID), nil
	}
	var c cart.Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	c.ID = cartID
	return &c, nil
}

// Save stores a serialized copy of the cart
func (s *InMemoryCartStore) Save(ctx context.Context, c *cart.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.carts[c.ID] = data
	s.mu.Unlock()
	return nil
}

// Delete removes the cart
func (s *InMemoryCartStore) Delete(ctx context.Context, cartID string) error {
	s.mu.Lock()
	delete(s.carts, cartID)
	s.mu.Unlock()
	return nil
}
