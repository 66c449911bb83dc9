package content

import (
	"context"
	"time"

	"github.com/bojietech/storefront/internal/domain/shared"
	"github.com/google/uuid"
)

// FeaturedProduct pins a catalog product to the storefront home page
type FeaturedProduct struct {
	shared.BaseAggregateRoot
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	IsActive  bool      `gorm:"not null;default:true"`
	SortOrder int       `gorm:"not null;default:0;index"`
}

// TableName returns the table name for GORM
func (FeaturedProduct) TableName() string {
	return "featured_products"
}

// NewFeaturedProduct pins a product
func NewFeaturedProduct(productID uuid.UUID, sortOrder int) (*FeaturedProduct, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID is required")
	}
	return &FeaturedProduct{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ProductID:         productID,
		IsActive:          true,
		SortOrder:         sortOrder,
	}, nil
}

// SetPlacement controls visibility and display order
func (f *FeaturedProduct) SetPlacement(isActive bool, sortOrder int) {
	f.IsActive = isActive
	f.SortOrder = sortOrder
	f.UpdatedAt = time.Now()
	f.IncrementVersion()
}

// FeaturedProductRepository is the persistence contract for featured pins
type FeaturedProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*FeaturedProduct, error)
	FindAll(ctx context.Context) ([]FeaturedProduct, error)
	FindActive(ctx context.Context) ([]FeaturedProduct, error)
	Save(ctx context.Context, featured *FeaturedProduct) error
	Delete(ctx context.Context, id uuid.UUID) error
}
