package content

import (
	"time"

	appcatalog "github.com/bojietech/storefront/internal/application/catalog"
	"github.com/bojietech/storefront/internal/domain/content"
	"github.com/google/uuid"
)

// CreateCarouselRequest adds a hero banner slide
type CreateCarouselRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"max=2000"`
	ImageURL    string `json:"image_url" binding:"required,max=500"`
	LinkURL     string `json:"link_url" binding:"max=500"`
	SortOrder   int    `json:"sort_order"`
	IsActive    *bool  `json:"is_active"`
}

// UpdateCarouselRequest replaces a slide's content and placement
type UpdateCarouselRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"max=2000"`
	ImageURL    string `json:"image_url" binding:"required,max=500"`
	LinkURL     string `json:"link_url" binding:"max=500"`
	SortOrder   int    `json:"sort_order"`
	IsActive    bool   `json:"is_active"`
}

// CarouselResponse is one hero banner slide
type CarouselResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	LinkURL     string    `json:"link_url,omitempty"`
	IsActive    bool      `json:"is_active"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateFeaturedRequest pins a product to the home page
type CreateFeaturedRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	SortOrder int       `json:"sort_order"`
}

// UpdateFeaturedRequest changes a pin's placement
type UpdateFeaturedRequest struct {
	IsActive  bool `json:"is_active"`
	SortOrder int  `json:"sort_order"`
}

// FeaturedResponse is one admin-side featured pin
type FeaturedResponse struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	IsActive  bool      `json:"is_active"`
	SortOrder int       `json:"sort_order"`
}

// FeaturedProductsResponse is the storefront featured strip
type FeaturedProductsResponse struct {
	Items []appcatalog.ProductCardResponse `json:"items"`
}

// UpdateSettingsRequest replaces the company profile
type UpdateSettingsRequest struct {
	CompanyName           string `json:"company_name" binding:"required,min=1,max=200"`
	CompanyLogo           string `json:"company_logo" binding:"max=500"`
	CompanyDescription    string `json:"company_description" binding:"max=2000"`
	ContactPhone          string `json:"contact_phone" binding:"max=50"`
	ContactEmail          string `json:"contact_email" binding:"omitempty,email,max=100"`
	ContactAddress        string `json:"contact_address" binding:"max=300"`
	CustomerServiceQRCode string `json:"customer_service_qr_code" binding:"max=500"`
	WechatNumber          string `json:"wechat_number" binding:"max=100"`
}

// SettingsResponse is the company profile served to the storefront
type SettingsResponse struct {
	CompanyName           string `json:"company_name"`
	CompanyLogo           string `json:"company_logo,omitempty"`
	CompanyDescription    string `json:"company_description,omitempty"`
	ContactPhone          string `json:"contact_phone,omitempty"`
	ContactEmail          string `json:"contact_email,omitempty"`
	ContactAddress        string `json:"contact_address,omitempty"`
	CustomerServiceQRCode string `json:"customer_service_qr_code,omitempty"`
	WechatNumber          string `json:"wechat_number,omitempty"`
}

// ToCarouselResponse converts a domain Carousel to its API view
func ToCarouselResponse(c *content.Carousel) CarouselResponse {
	return CarouselResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		LinkURL:     c.LinkURL,
		IsActive:    c.IsActive,
		SortOrder:   c.SortOrder,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToCarouselResponses converts a slice of carousels
func ToCarouselResponses(carousels []content.Carousel) []CarouselResponse {
	responses := make([]CarouselResponse, len(carousels))
	for i := range carousels {
		responses[i] = ToCarouselResponse(&carousels[i])
	}
	return responses
}

// ToFeaturedResponse converts a domain FeaturedProduct to its API view
func ToFeaturedResponse(f *content.FeaturedProduct) FeaturedResponse {
	return FeaturedResponse{
		ID:        f.ID,
		ProductID: f.ProductID,
		IsActive:  f.IsActive,
		SortOrder: f.SortOrder,
	}
}

// ToSettingsResponse converts domain Settings to its API view
func ToSettingsResponse(s *content.Settings) SettingsResponse {
	return SettingsResponse{
		CompanyName:           s.CompanyName,
		CompanyLogo:           s.CompanyLogo,
		CompanyDescription:    s.CompanyDescription,
		ContactPhone:          s.ContactPhone,
		ContactEmail:          s.ContactEmail,
		ContactAddress:        s.ContactAddress,
		CustomerServiceQRCode: s.CustomerServiceQRCode,
		WechatNumber:          s.WechatNumber,
	}
}
