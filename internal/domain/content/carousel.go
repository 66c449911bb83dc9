package content

import (
	"context"
	"strings"
	"time"

	"github.com/bojietech/storefront/internal/domain/shared"
	"github.com/google/uuid"
)

// Carousel is one slide of the storefront hero banner
type Carousel struct {
	shared.BaseAggregateRoot
	Title       string `gorm:"type:varchar(200);not null"`
	Description string `gorm:"type:text"`
	ImageURL    string `gorm:"type:varchar(500);not null"`
	LinkURL     string `gorm:"type:varchar(500)"`
	IsActive    bool   `gorm:"not null;default:true"`
	SortOrder   int    `gorm:"not null;default:0;index"`
}

// TableName returns the table name for GORM
func (Carousel) TableName() string {
	return "carousels"
}

// NewCarousel creates a new carousel slide
func NewCarousel(title, imageURL string) (*Carousel, error) {
	if strings.TrimSpace(title) == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Carousel title cannot be empty")
	}
	if strings.TrimSpace(imageURL) == "" {
		return nil, shared.NewDomainError("INVALID_IMAGE", "Carousel image URL cannot be empty")
	}
	return &Carousel{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             strings.TrimSpace(title),
		ImageURL:          imageURL,
		IsActive:          true,
	}, nil
}

// Update replaces the slide content
func (c *Carousel) Update(title, description, imageURL, linkURL string) error {
	if strings.TrimSpace(title) == "" {
		return shared.NewDomainError("INVALID_TITLE", "Carousel title cannot be empty")
	}
	if strings.TrimSpace(imageURL) == "" {
		return shared.NewDomainError("INVALID_IMAGE", "Carousel image URL cannot be empty")
	}
	c.Title = strings.TrimSpace(title)
	c.Description = description
	c.ImageURL = imageURL
	c.LinkURL = linkURL
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// SetPlacement controls visibility and slide order
func (c *Carousel) SetPlacement(isActive bool, sortOrder int) {
	c.IsActive = isActive
	c.SortOrder = sortOrder
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// CarouselRepository is the persistence contract for carousel slides
type CarouselRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Carousel, error)
	FindAll(ctx context.Context) ([]Carousel, error)
	FindActive(ctx context.Context) ([]Carousel, error)
	Save(ctx context.Context, carousel *Carousel) error
	Delete(ctx context.Context, id uuid.UUID) error
}
