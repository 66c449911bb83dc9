package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/bojietech/storefront/internal/domain/catalog"
	"github.com/bojietech/storefront/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID, images included
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).
		Preload("Images", orderImages).
		First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindByCode finds a product by its SKU code
func (r *GormProductRepository) FindByCode(ctx context.Context, code string) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).
		Preload("Images", orderImages).
		Where("code = ?", strings.ToUpper(code)).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindAll returns the whole catalog ordered by creation time, newest
// first. Filtering and pagination happen in the domain layer; the
// catalog of a packaging factory is small enough to hold in memory.
func (r *GormProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := r.db.WithContext(ctx).
		Preload("Images", orderImages).
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByIDs returns the products with the given IDs, preserving the
// requested order
func (r *GormProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	if len(ids) == 0 {
		return []catalog.Product{}, nil
	}
	var products []catalog.Product
	if err := r.db.WithContext(ctx).
		Preload("Images", orderImages).
		Where("id IN ?", ids).
		Find(&products).Error; err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	ordered := make([]catalog.Product, 0, len(products))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}

// FindPopularInStock returns in-stock products by popularity, used as
// the featured fallback
func (r *GormProductRepository) FindPopularInStock(ctx context.Context, limit int) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := r.db.WithContext(ctx).
		Preload("Images", orderImages).
		Where("in_stock = ?", true).
		Order("popularity_score DESC").
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// DistinctVocabulary collects the distinct classification values and
// the capacity/compartment extremes of the live catalog
func (r *GormProductRepository) DistinctVocabulary(ctx context.Context) (*catalog.VocabularyValues, error) {
	vocab := &catalog.VocabularyValues{}

	columns := map[string]*[]string{
		"tube_type": &vocab.TubeTypes,
		"box_type":  &vocab.BoxTypes,
		"shape":     &vocab.Shapes,
		"material":  &vocab.Materials,
	}
	for column, dest := range columns {
		if err := r.db.WithContext(ctx).Model(&catalog.Product{}).
			Distinct().
			Where(column + " <> ''").
			Pluck(column, dest).Error; err != nil {
			return nil, err
		}
	}

	lists := map[string]*[]string{
		"functional_designs":         &vocab.FunctionalDesigns,
		"development_line_materials": &vocab.DevelopmentLineMaterials,
	}
	for column, dest := range lists {
		var rows []catalog.StringList
		if err := r.db.WithContext(ctx).Model(&catalog.Product{}).
			Distinct().
			Pluck(column, &rows).Error; err != nil {
			return nil, err
		}
		for _, row := range rows {
			*dest = append(*dest, row...)
		}
	}

	var dims []catalog.Dimensions
	if err := r.db.WithContext(ctx).Model(&catalog.Product{}).
		Pluck("dimensions", &dims).Error; err != nil {
		return nil, err
	}
	for _, d := range dims {
		if c := d.Capacity; c != nil {
			if vocab.Capacity == nil {
				vocab.Capacity = &catalog.CapacityRange{Min: c.Min, Max: c.Max}
			} else {
				if c.Min < vocab.Capacity.Min {
					vocab.Capacity.Min = c.Min
				}
				if c.Max > vocab.Capacity.Max {
					vocab.Capacity.Max = c.Max
				}
			}
		}
		if d.Compartments > 0 {
			if vocab.Compartments == nil {
				vocab.Compartments = &catalog.IntRange{Min: d.Compartments, Max: d.Compartments}
			} else {
				if d.Compartments < vocab.Compartments.Min {
					vocab.Compartments.Min = d.Compartments
				}
				if d.Compartments > vocab.Compartments.Max {
					vocab.Compartments.Max = d.Compartments
				}
			}
		}
	}
	return vocab, nil
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// Delete removes a product and, via the FK constraint, its images
func (r *GormProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count returns the number of products in the catalog
func (r *GormProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&catalog.Product{}).Count(&count).Error
	return count, err
}

// SaveImage creates or updates a product image row
func (r *GormProductRepository) SaveImage(ctx context.Context, image *catalog.ProductImage) error {
	return r.db.WithContext(ctx).Save(image).Error
}

// DeleteImage removes a single image row
func (r *GormProductRepository) DeleteImage(ctx context.Context, imageID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.ProductImage{}, "id = ?", imageID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ReorderImages rewrites sort_order to match the given ID sequence
func (r *GormProductRepository) ReorderImages(ctx context.Context, productID uuid.UUID, imageIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for position, imageID := range imageIDs {
			result := tx.Model(&catalog.ProductImage{}).
				Where("id = ? AND product_id = ?", imageID, productID).
				Update("sort_order", position)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return shared.ErrNotFound
			}
		}
		return nil
	})
}

func orderImages(db *gorm.DB) *gorm.DB {
	return db.Order("product_images.sort_order ASC")
}
