package catalog

import (
	"context"
	"errors"

	"github.com/bojietech/storefront/internal/domain/catalog"
	"github.com/bojietech/storefront/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductService handles admin product management
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductAdminResponse, error) {
	if err := s.ensureCodeFree(ctx, req.Code, uuid.Nil); err != nil {
		return nil, err
	}

	product, err := catalog.NewProduct(req.Code, req.Name, catalog.ProductType(req.ProductType))
	if err != nil {
		return nil, err
	}

	if req.Description != "" {
		if err := product.Update(req.Name, req.Description); err != nil {
			return nil, err
		}
	}

	product.SetClassification(req.TubeType, req.BoxType, req.ProcessType, req.Shape, req.Material,
		req.FunctionalDesigns, req.DevelopmentLineMaterials)

	if req.Dimensions != nil {
		if err := product.SetDimensions(*req.Dimensions); err != nil {
			return nil, err
		}
	}

	costPrice := decimal.Zero
	if req.CostPrice != nil {
		costPrice = *req.CostPrice
	}
	factoryPrice := decimal.Zero
	if req.FactoryPrice != nil {
		factoryPrice = *req.FactoryPrice
	}
	if err := product.SetPricing(costPrice, factoryPrice, req.HasSample, req.BoxDimensions, req.BoxQuantity); err != nil {
		return nil, err
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}
	product.SetAvailability(inStock, req.PopularityScore)

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductAdminResponse(product)
	return &response, nil
}

// GetByID retrieves a product for the admin panel
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductAdminResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToProductAdminResponse(product)
	return &response, nil
}

// List returns all products for the admin table
func (s *ProductService) List(ctx context.Context) ([]ProductAdminResponse, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]ProductAdminResponse, len(products))
	for i := range products {
		responses[i] = ToProductAdminResponse(&products[i])
	}
	return responses, nil
}

// Update applies a partial update to a product
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductAdminResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil || req.Description != nil {
		name := product.Name
		if req.Name != nil {
			name = *req.Name
		}
		description := product.Description
		if req.Description != nil {
			description = *req.Description
		}
		if err := product.Update(name, description); err != nil {
			return nil, err
		}
	}

	if req.TubeType != nil || req.BoxType != nil || req.ProcessType != nil || req.Shape != nil ||
		req.Material != nil || req.FunctionalDesigns != nil || req.DevelopmentLineMaterials != nil {
		tubeType := product.TubeType
		if req.TubeType != nil {
			tubeType = *req.TubeType
		}
		boxType := product.BoxType
		if req.BoxType != nil {
			boxType = *req.BoxType
		}
		processType := product.ProcessType
		if req.ProcessType != nil {
			processType = *req.ProcessType
		}
		shape := product.Shape
		if req.Shape != nil {
			shape = *req.Shape
		}
		material := product.Material
		if req.Material != nil {
			material = *req.Material
		}
		designs := product.FunctionalDesigns
		if req.FunctionalDesigns != nil {
			designs = *req.FunctionalDesigns
		}
		lineMaterials := product.DevelopmentLineMaterials
		if req.DevelopmentLineMaterials != nil {
			lineMaterials = *req.DevelopmentLineMaterials
		}
		product.SetClassification(tubeType, boxType, processType, shape, material, designs, lineMaterials)
	}

	if req.Dimensions != nil {
		if err := product.SetDimensions(*req.Dimensions); err != nil {
			return nil, err
		}
	}

	if req.CostPrice != nil || req.FactoryPrice != nil || req.HasSample != nil ||
		req.BoxDimensions != nil || req.BoxQuantity != nil {
		costPrice := product.CostPrice
		if req.CostPrice != nil {
			costPrice = *req.CostPrice
		}
		factoryPrice := product.FactoryPrice
		if req.FactoryPrice != nil {
			factoryPrice = *req.FactoryPrice
		}
		hasSample := product.HasSample
		if req.HasSample != nil {
			hasSample = *req.HasSample
		}
		boxDimensions := product.BoxDimensions
		if req.BoxDimensions != nil {
			boxDimensions = *req.BoxDimensions
		}
		boxQuantity := product.BoxQuantity
		if req.BoxQuantity != nil {
			boxQuantity = *req.BoxQuantity
		}
		if err := product.SetPricing(costPrice, factoryPrice, hasSample, boxDimensions, boxQuantity); err != nil {
			return nil, err
		}
	}

	if req.InStock != nil || req.PopularityScore != nil {
		inStock := product.InStock
		if req.InStock != nil {
			inStock = *req.InStock
		}
		popularity := product.PopularityScore
		if req.PopularityScore != nil {
			popularity = *req.PopularityScore
		}
		product.SetAvailability(inStock, popularity)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductAdminResponse(product)
	return &response, nil
}

// UpdateCode changes a product's SKU code
func (s *ProductService) UpdateCode(ctx context.Context, id uuid.UUID, req UpdateProductCodeRequest) (*ProductAdminResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.ensureCodeFree(ctx, req.Code, id); err != nil {
		return nil, err
	}
	if err := product.UpdateCode(req.Code); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductAdminResponse(product)
	return &response, nil
}

// Delete removes a product and its images
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.productRepo.Delete(ctx, id)
}

// AddImage attaches an image to a product
func (s *ProductService) AddImage(ctx context.Context, productID uuid.UUID, req AddImageRequest) (*ProductAdminResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	kind := catalog.ImageKind(req.Kind)
	if req.Kind == "" {
		kind = catalog.ImageKindGallery
	}
	image := &catalog.ProductImage{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  product.ID,
		URL:        req.URL,
		Kind:       kind,
		SortOrder:  req.SortOrder,
	}
	if err := s.productRepo.SaveImage(ctx, image); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, productID)
}

// DeleteImage removes one image from a product
func (s *ProductService) DeleteImage(ctx context.Context, imageID uuid.UUID) error {
	return s.productRepo.DeleteImage(ctx, imageID)
}

// ReorderImages sets the display order of a product's images
func (s *ProductService) ReorderImages(ctx context.Context, productID uuid.UUID, req ReorderImagesRequest) (*ProductAdminResponse, error) {
	if err := s.productRepo.ReorderImages(ctx, productID, req.ImageIDs); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, productID)
}

// ensureCodeFree rejects a code already held by a different product
func (s *ProductService) ensureCodeFree(ctx context.Context, code string, selfID uuid.UUID) error {
	existing, err := s.productRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return shared.NewDomainError("ALREADY_EXISTS", "Product with this code already exists")
	}
	return nil
}
