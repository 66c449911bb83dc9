package catalog

import (
	"context"

	"github.com/bojietech/storefront/internal/domain/catalog"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultFeaturedLimit caps the featured strip on the landing page
const DefaultFeaturedLimit = 8

// BrowseService serves the public storefront: the filtered grid, the
// filter panel vocabulary, and product detail pages. Filtering runs in
// memory over the full catalog; a packaging factory's assortment is a
// few hundred SKUs, well under the point where pushing the filter into
// SQL would pay off.
type BrowseService struct {
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewBrowseService creates a new BrowseService
func NewBrowseService(productRepo catalog.ProductRepository, logger *zap.Logger) *BrowseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BrowseService{productRepo: productRepo, logger: logger}
}

// Browse returns one page of the filtered, sorted product grid along
// with the layout recommendation and the pagination rail
func (s *BrowseService) Browse(ctx context.Context, req BrowseRequest) (*BrowseResponse, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := catalog.FilterAndSort(products, req.ToFilterSpec(), catalog.SortKey(req.Sort))
	page := catalog.Paginate(filtered, req.Page, req.PageSize)

	return &BrowseResponse{
		Items:       ToProductCardResponses(page.Items),
		Page:        page.Page,
		PageSize:    page.PageSize,
		TotalItems:  page.TotalItems,
		TotalPages:  page.TotalPages,
		PageNumbers: catalog.PageNumbers(page.Page, page.TotalPages),
		// The layout is a function of the requested page size, not of
		// how many items the last page happens to hold, so the grid
		// does not reflow between pages
		Layout: catalog.RecommendLayout(page.PageSize),
	}, nil
}

// GetByID returns the public detail view of one product
func (s *BrowseService) GetByID(ctx context.Context, id uuid.UUID) (*ProductDetailResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToProductDetailResponse(product)
	return &response, nil
}

// GetByCode returns the public detail view of one product by SKU code
func (s *BrowseService) GetByCode(ctx context.Context, code string) (*ProductDetailResponse, error) {
	product, err := s.productRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	response := ToProductDetailResponse(product)
	return &response, nil
}

// FilterOptions derives the filter panel vocabulary from the live
// catalog. When the catalog cannot be queried the static vocabulary is
// served instead so the panel never renders empty.
func (s *BrowseService) FilterOptions(ctx context.Context) catalog.FilterOptions {
	vocab, err := s.productRepo.DistinctVocabulary(ctx)
	if err != nil {
		s.logger.Warn("falling back to static filter vocabulary", zap.Error(err))
		return catalog.DefaultFilterOptions()
	}

	capacity := catalog.CapacityRange{Min: 1, Max: 30}
	if vocab.Capacity != nil {
		capacity = *vocab.Capacity
	}
	compartments := catalog.IntRange{Min: 1, Max: 20}
	if vocab.Compartments != nil {
		compartments = *vocab.Compartments
	}

	return catalog.BuildFilterOptions(
		vocab.TubeTypes,
		vocab.BoxTypes,
		vocab.FunctionalDesigns,
		vocab.Shapes,
		vocab.Materials,
		vocab.DevelopmentLineMaterials,
		capacity,
		compartments,
	)
}
