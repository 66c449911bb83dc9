package content

import (
	"context"

	appcatalog "github.com/bojietech/storefront/internal/application/catalog"
	"github.com/bojietech/storefront/internal/domain/catalog"
	"github.com/bojietech/storefront/internal/domain/content"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContentService manages the home page content: hero carousel slides,
// the featured product strip, and the company profile
type ContentService struct {
	carouselRepo content.CarouselRepository
	featuredRepo content.FeaturedProductRepository
	settingsRepo content.SettingsRepository
	productRepo  catalog.ProductRepository
	logger       *zap.Logger
}

// NewContentService creates a new ContentService
func NewContentService(
	carouselRepo content.CarouselRepository,
	featuredRepo content.FeaturedProductRepository,
	settingsRepo content.SettingsRepository,
	productRepo catalog.ProductRepository,
	logger *zap.Logger,
) *ContentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContentService{
		carouselRepo: carouselRepo,
		featuredRepo: featuredRepo,
		settingsRepo: settingsRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

// ActiveCarousels returns the visible hero slides in display order
func (s *ContentService) ActiveCarousels(ctx context.Context) ([]CarouselResponse, error) {
	carousels, err := s.carouselRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	return ToCarouselResponses(carousels), nil
}

// ListCarousels returns every slide for the admin panel
func (s *ContentService) ListCarousels(ctx context.Context) ([]CarouselResponse, error) {
	carousels, err := s.carouselRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToCarouselResponses(carousels), nil
}

// CreateCarousel adds a hero slide
func (s *ContentService) CreateCarousel(ctx context.Context, req CreateCarouselRequest) (*CarouselResponse, error) {
	carousel, err := content.NewCarousel(req.Title, req.ImageURL)
	if err != nil {
		return nil, err
	}
	if err := carousel.Update(req.Title, req.Description, req.ImageURL, req.LinkURL); err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	carousel.SetPlacement(isActive, req.SortOrder)

	if err := s.carouselRepo.Save(ctx, carousel); err != nil {
		return nil, err
	}
	response := ToCarouselResponse(carousel)
	return &response, nil
}

// UpdateCarousel replaces a slide's content and placement
func (s *ContentService) UpdateCarousel(ctx context.Context, id uuid.UUID, req UpdateCarouselRequest) (*CarouselResponse, error) {
	carousel, err := s.carouselRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := carousel.Update(req.Title, req.Description, req.ImageURL, req.LinkURL); err != nil {
		return nil, err
	}
	carousel.SetPlacement(req.IsActive, req.SortOrder)

	if err := s.carouselRepo.Save(ctx, carousel); err != nil {
		return nil, err
	}
	response := ToCarouselResponse(carousel)
	return &response, nil
}

// DeleteCarousel removes a slide
func (s *ContentService) DeleteCarousel(ctx context.Context, id uuid.UUID) error {
	return s.carouselRepo.Delete(ctx, id)
}

// FeaturedProducts returns the storefront featured strip. Pinned
// products come first in pin order; when no pins are active the most
// popular in-stock products fill the strip instead so the section is
// never empty.
func (s *ContentService) FeaturedProducts(ctx context.Context, limit int) (*FeaturedProductsResponse, error) {
	if limit <= 0 {
		limit = appcatalog.DefaultFeaturedLimit
	}

	pins, err := s.featuredRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	if len(pins) == 0 {
		products, err := s.productRepo.FindPopularInStock(ctx, limit)
		if err != nil {
			return nil, err
		}
		return &FeaturedProductsResponse{Items: appcatalog.ToProductCardResponses(products)}, nil
	}

	ids := make([]uuid.UUID, 0, len(pins))
	for _, pin := range pins {
		ids = append(ids, pin.ProductID)
	}
	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(products) > limit {
		products = products[:limit]
	}
	return &FeaturedProductsResponse{Items: appcatalog.ToProductCardResponses(products)}, nil
}

// ListFeatured returns every pin for the admin panel
func (s *ContentService) ListFeatured(ctx context.Context) ([]FeaturedResponse, error) {
	pins, err := s.featuredRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]FeaturedResponse, len(pins))
	for i := range pins {
		responses[i] = ToFeaturedResponse(&pins[i])
	}
	return responses, nil
}

// CreateFeatured pins a product to the home page. The product must
// exist in the catalog.
func (s *ContentService) CreateFeatured(ctx context.Context, req CreateFeaturedRequest) (*FeaturedResponse, error) {
	if _, err := s.productRepo.FindByID(ctx, req.ProductID); err != nil {
		return nil, err
	}

	pin, err := content.NewFeaturedProduct(req.ProductID, req.SortOrder)
	if err != nil {
		return nil, err
	}
	if err := s.featuredRepo.Save(ctx, pin); err != nil {
		return nil, err
	}
	response := ToFeaturedResponse(pin)
	return &response, nil
}

// UpdateFeatured changes a pin's placement
func (s *ContentService) UpdateFeatured(ctx context.Context, id uuid.UUID, req UpdateFeaturedRequest) (*FeaturedResponse, error) {
	pin, err := s.featuredRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	pin.SetPlacement(req.IsActive, req.SortOrder)

	if err := s.featuredRepo.Save(ctx, pin); err != nil {
		return nil, err
	}
	response := ToFeaturedResponse(pin)
	return &response, nil
}

// DeleteFeatured removes a pin
func (s *ContentService) DeleteFeatured(ctx context.Context, id uuid.UUID) error {
	return s.featuredRepo.Delete(ctx, id)
}

// GetSettings returns the company profile, creating the default row on
// first access
func (s *ContentService) GetSettings(ctx context.Context) (*SettingsResponse, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	response := ToSettingsResponse(settings)
	return &response, nil
}

// UpdateSettings replaces the company profile
func (s *ContentService) UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (*SettingsResponse, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if err := settings.Update(req.CompanyName, req.CompanyLogo, req.CompanyDescription,
		req.ContactPhone, req.ContactEmail, req.ContactAddress,
		req.CustomerServiceQRCode, req.WechatNumber); err != nil {
		return nil, err
	}
	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}
	response := ToSettingsResponse(settings)
	return &response, nil
}
