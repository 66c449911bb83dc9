package persistence

import (
	"context"
	"errors"

	"github.com/bojietech/storefront/internal/domain/cart"
	"github.com/bojietech/storefront/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormInquiryRepository implements cart.InquiryRepository using GORM
type GormInquiryRepository struct {
	db *gorm.DB
}

// NewGormInquiryRepository creates a new GormInquiryRepository
func NewGormInquiryRepository(db *gorm.DB) *GormInquiryRepository {
	return &GormInquiryRepository{db: db}
}

// FindByID finds an inquiry by ID, items included
func (r *GormInquiryRepository) FindByID(ctx context.Context, id uuid.UUID) (*cart.Inquiry, error) {
	var inquiry cart.Inquiry
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&inquiry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &inquiry, nil
}

// FindByNumber finds an inquiry by its human-readable number
func (r *GormInquiryRepository) FindByNumber(ctx context.Context, number string) (*cart.Inquiry, error) {
	var inquiry cart.Inquiry
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("number = ?", number).
		First(&inquiry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &inquiry, nil
}

// FindAll lists inquiries newest first with offset pagination
func (r *GormInquiryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]cart.Inquiry, int64, error) {
	query := r.db.WithContext(ctx).Model(&cart.Inquiry{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}

	var inquiries []cart.Inquiry
	if err := query.
		Preload("Items").
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&inquiries).Error; err != nil {
		return nil, 0, err
	}
	return inquiries, total, nil
}

// Save persists the inquiry and its items
func (r *GormInquiryRepository) Save(ctx context.Context, inquiry *cart.Inquiry) error {
	return r.db.WithContext(ctx).Save(inquiry).Error
}
