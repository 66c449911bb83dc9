package cart

import (
	"time"

	"github.com/bojietech/storefront/internal/domain/cart"
	"github.com/google/uuid"
)

// AddItemRequest adds a product to the visitor's cart
type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

// SetQuantityRequest changes a cart line's quantity. Zero removes the line.
type SetQuantityRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"min=0"`
}

// CartItemResponse is one cart line
type CartItemResponse struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductCode string    `json:"product_code"`
	ProductName string    `json:"product_name"`
	ImageURL    string    `json:"image_url,omitempty"`
	Quantity    int       `json:"quantity"`
}

// CartResponse is the visitor's cart
type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	TotalCount int                `json:"total_count"`
}

// SubmitInquiryRequest turns the cart into an inquiry
type SubmitInquiryRequest struct {
	ContactName  string `json:"contact_name" binding:"max=100"`
	ContactPhone string `json:"contact_phone" binding:"max=50"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email,max=100"`
	Remark       string `json:"remark" binding:"max=2000"`
}

// UpdateInquiryStatusRequest moves an inquiry through the sales workflow
type UpdateInquiryStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=submitted quoted closed"`
}

// InquiryListFilter is the admin inquiry table filter
type InquiryListFilter struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// InquiryItemResponse is one frozen line of an inquiry
type InquiryItemResponse struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductCode string    `json:"product_code"`
	ProductName string    `json:"product_name"`
	ImageURL    string    `json:"image_url,omitempty"`
	Quantity    int       `json:"quantity"`
}

// InquiryResponse is a submitted inquiry
type InquiryResponse struct {
	ID           uuid.UUID             `json:"id"`
	Number       string                `json:"number"`
	Status       string                `json:"status"`
	ContactName  string                `json:"contact_name,omitempty"`
	ContactPhone string                `json:"contact_phone,omitempty"`
	ContactEmail string                `json:"contact_email,omitempty"`
	Remark       string                `json:"remark,omitempty"`
	Items        []InquiryItemResponse `json:"items"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// ToCartResponse converts a domain cart to its API view
func ToCartResponse(c *cart.Cart) CartResponse {
	items := make([]CartItemResponse, len(c.Items))
	for i, item := range c.Items {
		items[i] = CartItemResponse{
			ProductID:   item.ProductID,
			ProductCode: item.ProductCode,
			ProductName: item.ProductName,
			ImageURL:    item.ImageURL,
			Quantity:    item.Quantity,
		}
	}
	return CartResponse{Items: items, TotalCount: c.TotalCount()}
}

// ToInquiryResponse converts a domain inquiry to its API view
func ToInquiryResponse(i *cart.Inquiry) InquiryResponse {
	items := make([]InquiryItemResponse, len(i.Items))
	for j, item := range i.Items {
		items[j] = InquiryItemResponse{
			ProductID:   item.ProductID,
			ProductCode: item.ProductCode,
			ProductName: item.ProductName,
			ImageURL:    item.ImageURL,
			Quantity:    item.Quantity,
		}
	}
	return InquiryResponse{
		ID:           i.ID,
		Number:       i.Number,
		Status:       string(i.Status),
		ContactName:  i.ContactName,
		ContactPhone: i.ContactPhone,
		ContactEmail: i.ContactEmail,
		Remark:       i.Remark,
		Items:        items,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

// ToInquiryResponses converts a slice of inquiries
func ToInquiryResponses(inquiries []cart.Inquiry) []InquiryResponse {
	responses := make([]InquiryResponse, len(inquiries))
	for i := range inquiries {
		responses[i] = ToInquiryResponse(&inquiries[i])
	}
	return responses
}
