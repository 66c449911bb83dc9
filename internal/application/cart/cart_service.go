package cart

import (
	"context"

	"github.com/bojietech/storefront/internal/domain/cart"
	"github.com/bojietech/storefront/internal/domain/catalog"
	"github.com/bojietech/storefront/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CartService manages the visitor inquiry cart. Reads degrade to an
// empty cart when the store is unreachable so the storefront keeps
// rendering; mutations fail loudly instead of silently dropping items.
type CartService struct {
	store       cart.Store
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewCartService creates a new CartService
func NewCartService(store cart.Store, productRepo catalog.ProductRepository, logger *zap.Logger) *CartService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartService{store: store, productRepo: productRepo, logger: logger}
}

// Get returns the visitor's cart
func (s *CartService) Get(ctx context.Context, cartID string) (*CartResponse, error) {
	if err := cart.ValidateCartID(cartID); err != nil {
		return nil, err
	}
	c := s.loadDegraded(ctx, cartID)
	response := ToCartResponse(c)
	return &response, nil
}

// AddItem snapshots a catalog product into the cart. Adding a carted
// product bumps its quantity.
func (s *CartService) AddItem(ctx context.Context, cartID string, req AddItemRequest) (*CartResponse, error) {
	if err := cart.ValidateCartID(cartID); err != nil {
		return nil, err
	}
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	c, err := s.store.Load(ctx, cartID)
	if err != nil {
		return nil, shared.ErrStoreUnavailable
	}
	c.AddItem(product.ID, product.Code, product.Name, product.MainImage())

	if err := s.store.Save(ctx, c); err != nil {
		s.logger.Error("cart save failed", zap.String("cart_id", cartID), zap.Error(err))
		return nil, shared.ErrStoreUnavailable
	}
	response := ToCartResponse(c)
	return &response, nil
}

// RemoveItem drops a product line from the cart
func (s *CartService) RemoveItem(ctx context.Context, cartID string, productID uuid.UUID) (*CartResponse, error) {
	return s.mutate(ctx, cartID, func(c *cart.Cart) {
		c.RemoveItem(productID)
	})
}

// SetQuantity sets a line's quantity; zero removes the line
func (s *CartService) SetQuantity(ctx context.Context, cartID string, req SetQuantityRequest) (*CartResponse, error) {
	return s.mutate(ctx, cartID, func(c *cart.Cart) {
		c.SetQuantity(req.ProductID, req.Quantity)
	})
}

// Clear empties the cart
func (s *CartService) Clear(ctx context.Context, cartID string) (*CartResponse, error) {
	if err := cart.ValidateCartID(cartID); err != nil {
		return nil, err
	}
	if err := s.store.Delete(ctx, cartID); err != nil {
		s.logger.Error("cart delete failed", zap.String("cart_id", cartID), zap.Error(err))
		return nil, shared.ErrStoreUnavailable
	}
	response := ToCartResponse(cart.New(cartID))
	return &response, nil
}

func (s *CartService) mutate(ctx context.Context, cartID string, fn func(*cart.Cart)) (*CartResponse, error) {
	if err := cart.ValidateCartID(cartID); err != nil {
		return nil, err
	}
	c, err := s.store.Load(ctx, cartID)
	if err != nil {
		return nil, shared.ErrStoreUnavailable
	}
	fn(c)
	if err := s.store.Save(ctx, c); err != nil {
		s.logger.Error("cart save failed", zap.String("cart_id", cartID), zap.Error(err))
		return nil, shared.ErrStoreUnavailable
	}
	response := ToCartResponse(c)
	return &response, nil
}

// loadDegraded returns the stored cart, or an empty one when the store
// cannot serve it
func (s *CartService) loadDegraded(ctx context.Context, cartID string) *cart.Cart {
	c, err := s.store.Load(ctx, cartID)
	if err != nil {
		s.logger.Warn("cart load degraded to empty", zap.String("cart_id", cartID), zap.Error(err))
		return cart.New(cartID)
	}
	return c
}
