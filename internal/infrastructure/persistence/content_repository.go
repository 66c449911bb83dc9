package persistence

import (
	"context"
	"errors"

	"github.com/bojietech/storefront/internal/domain/content"
	"github.com/bojietech/storefront/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCarouselRepository implements content.CarouselRepository using GORM
type GormCarouselRepository struct {
	db *gorm.DB
}

// NewGormCarouselRepository creates a new GormCarouselRepository
func NewGormCarouselRepository(db *gorm.DB) *GormCarouselRepository {
	return &GormCarouselRepository{db: db}
}

// FindByID finds a carousel slide by ID
func (r *GormCarouselRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.Carousel, error) {
	var carousel content.Carousel
	if err := r.db.WithContext(ctx).First(&carousel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &carousel, nil
}

// FindAll returns every slide in display order
func (r *GormCarouselRepository) FindAll(ctx context.Context) ([]content.Carousel, error) {
	var carousels []content.Carousel
	if err := r.db.WithContext(ctx).
		Order("sort_order ASC, created_at ASC").
		Find(&carousels).Error; err != nil {
		return nil, err
	}
	return carousels, nil
}

// FindActive returns the slides shown on the storefront
func (r *GormCarouselRepository) FindActive(ctx context.Context) ([]content.Carousel, error) {
	var carousels []content.Carousel
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, created_at ASC").
		Find(&carousels).Error; err != nil {
		return nil, err
	}
	return carousels, nil
}

// Save creates or updates a slide
func (r *GormCarouselRepository) Save(ctx context.Context, carousel *content.Carousel) error {
	return r.db.WithContext(ctx).Save(carousel).Error
}

// Delete removes a slide
func (r *GormCarouselRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&content.Carousel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormFeaturedProductRepository implements content.FeaturedProductRepository using GORM
type GormFeaturedProductRepository struct {
	db *gorm.DB
}

// NewGormFeaturedProductRepository creates a new GormFeaturedProductRepository
func NewGormFeaturedProductRepository(db *gorm.DB) *GormFeaturedProductRepository {
	return &GormFeaturedProductRepository{db: db}
}

// FindByID finds a featured pin by ID
func (r *GormFeaturedProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.FeaturedProduct, error) {
	var featured content.FeaturedProduct
	if err := r.db.WithContext(ctx).First(&featured, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &featured, nil
}

// FindAll returns every pin in display order
func (r *GormFeaturedProductRepository) FindAll(ctx context.Context) ([]content.FeaturedProduct, error) {
	var featured []content.FeaturedProduct
	if err := r.db.WithContext(ctx).
		Order("sort_order ASC, created_at ASC").
		Find(&featured).Error; err != nil {
		return nil, err
	}
	return featured, nil
}

// FindActive returns the pins shown on the home page
func (r *GormFeaturedProductRepository) FindActive(ctx context.Context) ([]content.FeaturedProduct, error) {
	var featured []content.FeaturedProduct
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, created_at ASC").
		Find(&featured).Error; err != nil {
		return nil, err
	}
	return featured, nil
}

// Save creates or updates a pin
func (r *GormFeaturedProductRepository) Save(ctx context.Context, featured *content.FeaturedProduct) error {
	return r.db.WithContext(ctx).Save(featured).Error
}

// Delete removes a pin
func (r *GormFeaturedProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&content.FeaturedProduct{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormSettingsRepository implements content.SettingsRepository using GORM
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GormSettingsRepository
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// Get returns the singleton settings row, creating it with defaults on
// first access
func (r *GormSettingsRepository) Get(ctx context.Context) (*content.Settings, error) {
	var settings content.Settings
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	defaults := content.DefaultSettings()
	if err := r.db.WithContext(ctx).Create(defaults).Error; err != nil {
		return nil, err
	}
	return defaults, nil
}

// Save persists the settings row
func (r *GormSettingsRepository) Save(ctx context.Context, settings *content.Settings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
