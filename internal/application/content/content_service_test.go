package content

import (
	"context"
	"testing"

	"github.com/bojietech/storefront/internal/domain/catalog"
	"github.com/bojietech/storefront/internal/domain/content"
	"github.com/bojietech/storefront/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCarouselRepository struct {
	mock.Mock
}

func (m *MockCarouselRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.Carousel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Carousel), args.Error(1)
}

func (m *MockCarouselRepository) FindAll(ctx context.Context) ([]content.Carousel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]content.Carousel), args.Error(1)
}

func (m *MockCarouselRepository) FindActive(ctx context.Context) ([]content.Carousel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]content.Carousel), args.Error(1)
}

func (m *MockCarouselRepository) Save(ctx context.Context, carousel *content.Carousel) error {
	args := m.Called(ctx, carousel)
	return args.Error(0)
}

func (m *MockCarouselRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockFeaturedRepository struct {
	mock.Mock
}

func (m *MockFeaturedRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.FeaturedProduct, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.FeaturedProduct), args.Error(1)
}

func (m *MockFeaturedRepository) FindAll(ctx context.Context) ([]content.FeaturedProduct, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]content.FeaturedProduct), args.Error(1)
}

func (m *MockFeaturedRepository) FindActive(ctx context.Context) ([]content.FeaturedProduct, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]content.FeaturedProduct), args.Error(1)
}

func (m *MockFeaturedRepository) Save(ctx context.Context, featured *content.FeaturedProduct) error {
	args := m.Called(ctx, featured)
	return args.Error(0)
}

func (m *MockFeaturedRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get(ctx context.Context) (*content.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Settings), args.Error(1)
}

func (m *MockSettingsRepository) Save(ctx context.Context, settings *content.Settings) error {
	args := m.Called(ctx, settings)
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

func newService(carousels *MockCarouselRepository, featured *MockFeaturedRepository, settings *MockSettingsRepository, products *MockProductRepository) *ContentService {
	return NewContentService(carousels, featured, settings, products, nil)
}

func TestContentService_Carousels(t *testing.T) {
	ctx := context.Background()

	t.Run("create defaults to active", func(t *testing.T) {
		carousels := new(MockCarouselRepository)
		carousels.On("Save", ctx, mock.AnythingOfType("*content.Carousel")).Return(nil)

		svc := newService(carousels, nil, nil, nil)
		resp, err := svc.CreateCarousel(ctx, CreateCarouselRequest{
			Title:    "春季新品",
			ImageURL: "/uploads/spring.webp",
		})
		require.NoError(t, err)
		assert.True(t, resp.IsActive)
		assert.Equal(t, "春季新品", resp.Title)
	})

	t.Run("create rejects empty title", func(t *testing.T) {
		svc := newService(new(MockCarouselRepository), nil, nil, nil)
		_, err := svc.CreateCarousel(ctx, CreateCarouselRequest{Title: "  ", ImageURL: "/x.webp"})
		assert.Error(t, err)
	})

	t.Run("update can hide a slide", func(t *testing.T) {
		slide, err := content.NewCarousel("春季新品", "/uploads/spring.webp")
		require.NoError(t, err)

		carousels := new(MockCarouselRepository)
		carousels.On("FindByID", ctx, slide.ID).Return(slide, nil)
		carousels.On("Save", ctx, slide).Return(nil)

		svc := newService(carousels, nil, nil, nil)
		resp, err := svc.UpdateCarousel(ctx, slide.ID, UpdateCarouselRequest{
			Title:    "春季新品",
			ImageURL: "/uploads/spring.webp",
			IsActive: false,
		})
		require.NoError(t, err)
		assert.False(t, resp.IsActive)
	})
}

func TestContentService_FeaturedProducts(t *testing.T) {
	ctx := context.Background()

	newProduct := func(code string) catalog.Product {
		p, err := catalog.NewProduct(code, "口红管", catalog.ProductTypeTube)
		require.NoError(t, err)
		return *p
	}

	t.Run("serves pinned products in pin order", func(t *testing.T) {
		p1, p2 := newProduct("LP-001"), newProduct("LP-002")
		pin1, err := content.NewFeaturedProduct(p1.ID, 0)
		require.NoError(t, err)
		pin2, err := content.NewFeaturedProduct(p2.ID, 1)
		require.NoError(t, err)

		featured := new(MockFeaturedRepository)
		featured.On("FindActive", ctx).Return([]content.FeaturedProduct{*pin1, *pin2}, nil)
		products := new(MockProductRepository)
		products.On("FindByIDs", ctx, []uuid.UUID{p1.ID, p2.ID}).Return([]catalog.Product{p1, p2}, nil)

		svc := newService(nil, featured, nil, products)
		resp, err := svc.FeaturedProducts(ctx, 0)
		require.NoError(t, err)

		require.Len(t, resp.Items, 2)
		assert.Equal(t, "LP-001", resp.Items[0].Code)
		products.AssertNotCalled(t, "FindPopularInStock", mock.Anything, mock.Anything)
	})

	t.Run("falls back to popular products when nothing is pinned", func(t *testing.T) {
		featured := new(MockFeaturedRepository)
		featured.On("FindActive", ctx).Return([]content.FeaturedProduct{}, nil)
		products := new(MockProductRepository)
		products.On("FindPopularInStock", ctx, 8).Return([]catalog.Product{newProduct("LP-009")}, nil)

		svc := newService(nil, featured, nil, products)
		resp, err := svc.FeaturedProducts(ctx, 0)
		require.NoError(t, err)

		require.Len(t, resp.Items, 1)
		assert.Equal(t, "LP-009", resp.Items[0].Code)
	})

	t.Run("pinning an unknown product fails", func(t *testing.T) {
		products := new(MockProductRepository)
		ghost := uuid.New()
		products.On("FindByID", ctx, ghost).Return(nil, shared.ErrNotFound)

		svc := newService(nil, new(MockFeaturedRepository), nil, products)
		_, err := svc.CreateFeatured(ctx, CreateFeaturedRequest{ProductID: ghost})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestContentService_Settings(t *testing.T) {
	ctx := context.Background()

	t.Run("get returns the stored profile", func(t *testing.T) {
		settings := new(MockSettingsRepository)
		settings.On("Get", ctx).Return(content.DefaultSettings(), nil)

		svc := newService(nil, nil, settings, nil)
		resp, err := svc.GetSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, "汕头博捷科技有限公司", resp.CompanyName)
	})

	t.Run("update rejects empty company name", func(t *testing.T) {
		settings := new(MockSettingsRepository)
		settings.On("Get", ctx).Return(content.DefaultSettings(), nil)

		svc := newService(nil, nil, settings, nil)
		_, err := svc.UpdateSettings(ctx, UpdateSettingsRequest{CompanyName: ""})
		assert.Error(t, err)
		settings.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("update persists the new profile", func(t *testing.T) {
		stored := content.DefaultSettings()
		settings := new(MockSettingsRepository)
		settings.On("Get", ctx).Return(stored, nil)
		settings.On("Save", ctx, stored).Return(nil)

		svc := newService(nil, nil, settings, nil)
		resp, err := svc.UpdateSettings(ctx, UpdateSettingsRequest{
			CompanyName:  "汕头博捷科技有限公司",
			ContactPhone: "+86 135 0000 0000",
		})
		require.NoError(t, err)
		assert.Equal(t, "+86 135 0000 0000", resp.ContactPhone)
	})
}
