package catalog

import (
	"context"

	"github.com/google/uuid"
)

// VocabularyValues holds the distinct raw classification values of the
// live catalog, used to build the filter panel vocabulary
type VocabularyValues struct {
	TubeTypes                []string
	BoxTypes                 []string
	FunctionalDesigns        []string
	Shapes                   []string
	Materials                []string
	DevelopmentLineMaterials []string
	Capacity                 *CapacityRange
	Compartments             *IntRange
}

// ProductRepository is the persistence contract for products
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindByCode(ctx context.Context, code string) (*Product, error)
	FindAll(ctx context.Context) ([]Product, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)
	FindPopularInStock(ctx context.Context, limit int) ([]Product, error)
	DistinctVocabulary(ctx context.Context) (*VocabularyValues, error)
	Save(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)

	SaveImage(ctx context.Context, image *ProductImage) error
	DeleteImage(ctx context.Context, imageID uuid.UUID) error
	ReorderImages(ctx context.Context, productID uuid.UUID, imageIDs []uuid.UUID) error
}
