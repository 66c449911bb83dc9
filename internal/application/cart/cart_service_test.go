package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/bojietech/storefront/internal/domain/cart"
	"github.com/bojietech/storefront/internal/domain/catalog"
	"github.com/bojietech/storefront/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCartStore struct {
	mock.Mock
}

func (m *MockCartStore) Load(ctx context.Context, cartID string) (*cart.Cart, error) {
	args := m.Called(ctx, cartID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartStore) Save(ctx context.Context, c *cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCartStore) Delete(ctx context.Context, cartID string) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCode(ctx context.Context, code string) (*catalog.Product, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindPopularInStock(ctx context.Context, limit int) ([]catalog.Product, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) DistinctVocabulary(ctx context.Context) (*catalog.VocabularyValues, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.VocabularyValues), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) SaveImage(ctx context.Context, image *catalog.ProductImage) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteImage(ctx context.Context, imageID uuid.UUID) error {
	args := m.Called(ctx, imageID)
	return args.Error(0)
}

func (m *MockProductRepository) ReorderImages(ctx context.Context, productID uuid.UUID, imageIDs []uuid.UUID) error {
	args := m.Called(ctx, productID, imageIDs)
	return args.Error(0)
}

func newTestProduct(t *testing.T, code string) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(code, "口红管", catalog.ProductTypeTube)
	require.NoError(t, err)
	return p
}

func TestCartService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored cart", func(t *testing.T) {
		stored := cart.New("visitor-1")
		stored.AddItem(uuid.New(), "LP-001", "口红管", "")

		store := new(MockCartStore)
		store.On("Load", ctx, "visitor-1").Return(stored, nil)

		svc := NewCartService(store, new(MockProductRepository), nil)
		resp, err := svc.Get(ctx, "visitor-1")
		require.NoError(t, err)
		assert.Equal(t, 1, resp.TotalCount)
	})

	t.Run("degrades to an empty cart when the store is down", func(t *testing.T) {
		store := new(MockCartStore)
		store.On("Load", ctx, "visitor-1").Return(nil, errors.New("connection refused"))

		svc := NewCartService(store, new(MockProductRepository), nil)
		resp, err := svc.Get(ctx, "visitor-1")
		require.NoError(t, err)
		assert.Empty(t, resp.Items)
		assert.Equal(t, 0, resp.TotalCount)
	})

	t.Run("rejects an empty cart id", func(t *testing.T) {
		svc := NewCartService(new(MockCartStore), new(MockProductRepository), nil)
		_, err := svc.Get(ctx, "")
		assert.Error(t, err)
	})
}

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshots the product into the cart", func(t *testing.T) {
		product := newTestProduct(t, "LP-001")

		store := new(MockCartStore)
		store.On("Load", ctx, "visitor-1").Return(cart.New("visitor-1"), nil)
		store.On("Save", ctx, mock.MatchedBy(func(c *cart.Cart) bool {
			return len(c.Items) == 1 && c.Items[0].ProductCode == "LP-001"
		})).Return(nil)

		products := new(MockProductRepository)
		products.On("FindByID", ctx, product.ID).Return(product, nil)

		svc := NewCartService(store, products, nil)
		resp, err := svc.AddItem(ctx, "visitor-1", AddItemRequest{ProductID: product.ID})
		require.NoError(t, err)

		require.Len(t, resp.Items, 1)
		assert.Equal(t, "口红管", resp.Items[0].ProductName)
		store.AssertExpectations(t)
	})

	t.Run("unknown product fails before touching the store", func(t *testing.T) {
		ghost := uuid.New()
		products := new(MockProductRepository)
		products.On("FindByID", ctx, ghost).Return(nil, shared.ErrNotFound)

		store := new(MockCartStore)
		svc := NewCartService(store, products, nil)
		_, err := svc.AddItem(ctx, "visitor-1", AddItemRequest{ProductID: ghost})

		assert.ErrorIs(t, err, shared.ErrNotFound)
		store.AssertNotCalled(t, "Load", mock.Anything, mock.Anything)
	})

	t.Run("mutation fails loudly when the store is down", func(t *testing.T) {
		product := newTestProduct(t, "LP-001")

		store := new(MockCartStore)
		store.On("Load", ctx, "visitor-1").Return(nil, errors.New("connection refused"))
		products := new(MockProductRepository)
		products.On("FindByID", ctx, product.ID).Return(product, nil)

		svc := NewCartService(store, products, nil)
		_, err := svc.AddItem(ctx, "visitor-1", AddItemRequest{ProductID: product.ID})
		assert.ErrorIs(t, err, shared.ErrStoreUnavailable)
	})
}

func TestCartService_SetQuantity(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()

	stored := cart.New("visitor-1")
	stored.AddItem(productID, "LP-001", "口红管", "")

	store := new(MockCartStore)
	store.On("Load", ctx, "visitor-1").Return(stored, nil)
	store.On("Save", ctx, stored).Return(nil)

	svc := NewCartService(store, new(MockProductRepository), nil)

	t.Run("zero quantity removes the line", func(t *testing.T) {
		resp, err := svc.SetQuantity(ctx, "visitor-1", SetQuantityRequest{ProductID: productID, Quantity: 0})
		require.NoError(t, err)
		assert.Empty(t, resp.Items)
	})
}

func TestCartService_Clear(t *testing.T) {
	ctx := context.Background()

	store := new(MockCartStore)
	store.On("Delete", ctx, "visitor-1").Return(nil)

	svc := NewCartService(store, new(MockProductRepository), nil)
	resp, err := svc.Clear(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	store.AssertExpectations(t)
}
