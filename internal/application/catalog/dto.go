package catalog

import (
	"time"

	"github.com/bojietech/storefront/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BrowseRequest captures the storefront filter panel state
type BrowseRequest struct {
	Search                   string   `form:"search"`
	TubeTypes                []string `form:"tube_types"`
	BoxTypes                 []string `form:"box_types"`
	FunctionalDesigns        []string `form:"functional_designs"`
	Shapes                   []string `form:"shapes"`
	Materials                []string `form:"materials"`
	DevelopmentLineMaterials []string `form:"development_line_materials"`
	CapacityMin              *float64 `form:"capacity_min"`
	CapacityMax              *float64 `form:"capacity_max"`
	CompartmentsMin          *int     `form:"compartments_min"`
	CompartmentsMax          *int     `form:"compartments_max"`
	Sort                     string   `form:"sort" binding:"omitempty,oneof=newest popular"`
	Page                     int      `form:"page"`
	PageSize                 int      `form:"page_size"`
}

// ToFilterSpec converts the request to the domain filter
func (r BrowseRequest) ToFilterSpec() catalog.FilterSpec {
	spec := catalog.FilterSpec{
		TubeTypes:                r.TubeTypes,
		BoxTypes:                 r.BoxTypes,
		FunctionalDesigns:        r.FunctionalDesigns,
		Shapes:                   r.Shapes,
		Materials:                r.Materials,
		DevelopmentLineMaterials: r.DevelopmentLineMaterials,
		Search:                   r.Search,
	}
	if r.CapacityMin != nil || r.CapacityMax != nil {
		cr := catalog.CapacityRange{Min: 0, Max: 1e9}
		if r.CapacityMin != nil {
			cr.Min = *r.CapacityMin
		}
		if r.CapacityMax != nil {
			cr.Max = *r.CapacityMax
		}
		spec.CapacityRange = &cr
	}
	if r.CompartmentsMin != nil || r.CompartmentsMax != nil {
		ir := catalog.IntRange{Min: 0, Max: 1 << 30}
		if r.CompartmentsMin != nil {
			ir.Min = *r.CompartmentsMin
		}
		if r.CompartmentsMax != nil {
			ir.Max = *r.CompartmentsMax
		}
		spec.CompartmentRange = &ir
	}
	return spec
}

// ProductCardResponse is the storefront grid card projection. Pricing
// fields never appear here; visitors inquire instead.
type ProductCardResponse struct {
	ID                uuid.UUID          `json:"id"`
	Code              string             `json:"code"`
	Name              string             `json:"name"`
	ProductType       string             `json:"product_type"`
	TubeType          string             `json:"tube_type,omitempty"`
	BoxType           string             `json:"box_type,omitempty"`
	Shape             string             `json:"shape,omitempty"`
	Material          string             `json:"material,omitempty"`
	FunctionalDesigns []string           `json:"functional_designs,omitempty"`
	Dimensions        catalog.Dimensions `json:"dimensions"`
	InStock           bool               `json:"in_stock"`
	ImageURL          string             `json:"image_url,omitempty"`
}

// BrowseResponse is one page of the filtered storefront grid
type BrowseResponse struct {
	Items       []ProductCardResponse `json:"items"`
	Page        int                   `json:"page"`
	PageSize    int                   `json:"page_size"`
	TotalItems  int                   `json:"total_items"`
	TotalPages  int                   `json:"total_pages"`
	PageNumbers []catalog.PageItem    `json:"page_numbers"`
	Layout      catalog.LayoutSpec    `json:"layout"`
}

// ProductDetailResponse is the full public projection of a product
type ProductDetailResponse struct {
	ID                       uuid.UUID             `json:"id"`
	Code                     string                `json:"code"`
	Name                     string                `json:"name"`
	Description              string                `json:"description"`
	ProductType              string                `json:"product_type"`
	TubeType                 string                `json:"tube_type,omitempty"`
	BoxType                  string                `json:"box_type,omitempty"`
	ProcessType              string                `json:"process_type,omitempty"`
	Shape                    string                `json:"shape,omitempty"`
	Material                 string                `json:"material,omitempty"`
	FunctionalDesigns        []string              `json:"functional_designs,omitempty"`
	DevelopmentLineMaterials []string              `json:"development_line_materials,omitempty"`
	Dimensions               catalog.Dimensions    `json:"dimensions"`
	HasSample                bool                  `json:"has_sample"`
	InStock                  bool                  `json:"in_stock"`
	Images                   []ProductImageResponse `json:"images"`
}

// ProductImageResponse is one ordered image of a product
type ProductImageResponse struct {
	ID        uuid.UUID `json:"id"`
	URL       string    `json:"url"`
	Kind      string    `json:"kind"`
	SortOrder int       `json:"sort_order"`
}

// CreateProductRequest represents an admin request to create a product
type CreateProductRequest struct {
	Code                     string              `json:"code" binding:"required,min=1,max=50"`
	Name                     string              `json:"name" binding:"required,min=1,max=200"`
	Description              string              `json:"description" binding:"max=2000"`
	ProductType              string              `json:"product_type" binding:"required,oneof=tube box"`
	TubeType                 string              `json:"tube_type" binding:"max=50"`
	BoxType                  string              `json:"box_type" binding:"max=50"`
	ProcessType              string              `json:"process_type" binding:"max=50"`
	Shape                    string              `json:"shape" binding:"max=50"`
	Material                 string              `json:"material" binding:"max=100"`
	FunctionalDesigns        catalog.StringList  `json:"functional_designs"`
	DevelopmentLineMaterials catalog.StringList  `json:"development_line_materials"`
	Dimensions               *catalog.Dimensions `json:"dimensions"`
	CostPrice                *decimal.Decimal    `json:"cost_price"`
	FactoryPrice             *decimal.Decimal    `json:"factory_price"`
	HasSample                bool                `json:"has_sample"`
	BoxDimensions            string              `json:"box_dimensions" binding:"max=100"`
	BoxQuantity              int                 `json:"box_quantity"`
	InStock                  *bool               `json:"in_stock"`
	PopularityScore          int                 `json:"popularity_score"`
}

// UpdateProductRequest represents an admin request to update a product
type UpdateProductRequest struct {
	Name                     *string             `json:"name" binding:"omitempty,min=1,max=200"`
	Description              *string             `json:"description" binding:"omitempty,max=2000"`
	TubeType                 *string             `json:"tube_type" binding:"omitempty,max=50"`
	BoxType                  *string             `json:"box_type" binding:"omitempty,max=50"`
	ProcessType              *string             `json:"process_type" binding:"omitempty,max=50"`
	Shape                    *string             `json:"shape" binding:"omitempty,max=50"`
	Material                 *string             `json:"material" binding:"omitempty,max=100"`
	FunctionalDesigns        *catalog.StringList `json:"functional_designs"`
	DevelopmentLineMaterials *catalog.StringList `json:"development_line_materials"`
	Dimensions               *catalog.Dimensions `json:"dimensions"`
	CostPrice                *decimal.Decimal    `json:"cost_price"`
	FactoryPrice             *decimal.Decimal    `json:"factory_price"`
	HasSample                *bool               `json:"has_sample"`
	BoxDimensions            *string             `json:"box_dimensions" binding:"omitempty,max=100"`
	BoxQuantity              *int                `json:"box_quantity"`
	InStock                  *bool               `json:"in_stock"`
	PopularityScore          *int                `json:"popularity_score"`
}

// UpdateProductCodeRequest changes a product's SKU code
type UpdateProductCodeRequest struct {
	Code string `json:"code" binding:"required,min=1,max=50"`
}

// AddImageRequest attaches an image to a product
type AddImageRequest struct {
	URL       string `json:"url" binding:"required,max=500"`
	Kind      string `json:"kind" binding:"omitempty,oneof=main gallery dimensions detail"`
	SortOrder int    `json:"sort_order"`
}

// ReorderImagesRequest sets the display order of a product's images
type ReorderImagesRequest struct {
	ImageIDs []uuid.UUID `json:"image_ids" binding:"required,min=1"`
}

// ProductAdminResponse is the full admin projection, pricing included
type ProductAdminResponse struct {
	ProductDetailResponse
	CostPrice       decimal.Decimal `json:"cost_price"`
	FactoryPrice    decimal.Decimal `json:"factory_price"`
	BoxDimensions   string          `json:"box_dimensions,omitempty"`
	BoxQuantity     int             `json:"box_quantity"`
	PopularityScore int             `json:"popularity_score"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	Version         int             `json:"version"`
}

// ToProductCardResponse converts a domain Product to its grid card
func ToProductCardResponse(p *catalog.Product) ProductCardResponse {
	return ProductCardResponse{
		ID:                p.ID,
		Code:              p.Code,
		Name:              p.Name,
		ProductType:       string(p.ProductType),
		TubeType:          p.TubeType,
		BoxType:           p.BoxType,
		Shape:             p.Shape,
		Material:          p.Material,
		FunctionalDesigns: p.FunctionalDesigns,
		Dimensions:        p.Dimensions,
		InStock:           p.InStock,
		ImageURL:          p.MainImage(),
	}
}

// ToProductCardResponses converts a slice of products to grid cards
func ToProductCardResponses(products []catalog.Product) []ProductCardResponse {
	responses := make([]ProductCardResponse, len(products))
	for i := range products {
		responses[i] = ToProductCardResponse(&products[i])
	}
	return responses
}

// ToProductDetailResponse converts a domain Product to its public detail view
func ToProductDetailResponse(p *catalog.Product) ProductDetailResponse {
	return ProductDetailResponse{
		ID:                       p.ID,
		Code:                     p.Code,
		Name:                     p.Name,
		Description:              p.Description,
		ProductType:              string(p.ProductType),
		TubeType:                 p.TubeType,
		BoxType:                  p.BoxType,
		ProcessType:              p.ProcessType,
		Shape:                    p.Shape,
		Material:                 p.Material,
		FunctionalDesigns:        p.FunctionalDesigns,
		DevelopmentLineMaterials: p.DevelopmentLineMaterials,
		Dimensions:               p.Dimensions,
		HasSample:                p.HasSample,
		InStock:                  p.InStock,
		Images:                   toImageResponses(p.Images),
	}
}

// ToProductAdminResponse converts a domain Product to its admin view
func ToProductAdminResponse(p *catalog.Product) ProductAdminResponse {
	return ProductAdminResponse{
		ProductDetailResponse: ToProductDetailResponse(p),
		CostPrice:             p.CostPrice,
		FactoryPrice:          p.FactoryPrice,
		BoxDimensions:         p.BoxDimensions,
		BoxQuantity:           p.BoxQuantity,
		PopularityScore:       p.PopularityScore,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
		Version:               p.Version,
	}
}

func toImageResponses(images []catalog.ProductImage) []ProductImageResponse {
	responses := make([]ProductImageResponse, len(images))
	for i, img := range images {
		responses[i] = ProductImageResponse{
			ID:        img.ID,
			URL:       img.URL,
			Kind:      string(img.Kind),
			SortOrder: img.SortOrder,
		}
	}
	return responses
}
