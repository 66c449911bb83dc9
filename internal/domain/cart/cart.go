package cart

import (
	"context"

	"github.com/bojietech/storefront/internal/domain/shared"
	"github.com/google/uuid"
)

// Item is one line of an inquiry cart. The product fields are a
// snapshot taken at add time so the cart stays renderable even if the
// catalog entry changes later.
type Item struct {
	ProductID   uuid.UUID `json:"productId"`
	ProductCode string    `json:"productCode"`
	ProductName string    `json:"productName"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Quantity    int       `json:"quantity"`
}

// Cart collects products a visitor wants quoted. Items keep insertion
// order and are unique per product.
type Cart struct {
	ID    string `json:"id"`
	Items []Item `json:"items"`
}

// New returns an empty cart for the given visitor cart ID
func New(id string) *Cart {
	return &Cart{ID: id, Items: []Item{}}
}

// AddItem adds a product snapshot. Adding an already carted product
// bumps its quantity instead of creating a second line.
func (c *Cart) AddItem(productID uuid.UUID, code, name, imageURL string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, Item{
		ProductID:   productID,
		ProductCode: code,
		ProductName: name,
		ImageURL:    imageURL,
		Quantity:    1,
	})
}

// RemoveItem drops a product line. Removing an absent product is a no-op.
func (c *Cart) RemoveItem(productID uuid.UUID) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// SetQuantity sets a line's quantity. A quantity of zero or less
// removes the line.
func (c *Cart) SetQuantity(productID uuid.UUID, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.Items = []Item{}
}

// TotalCount is the sum of all line quantities
func (c *Cart) TotalCount() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Store persists carts between visits. A missing cart loads as a fresh
// empty cart; unreachable or corrupt data is an error, which the
// service layer degrades to an empty cart for storefront reads.
type Store interface {
	Load(ctx context.Context, cartID string) (*Cart, error)
	Save(ctx context.Context, cart *Cart) error
	Delete(ctx context.Context, cartID string) error
}

// ValidateCartID guards against junk visitor IDs reaching the KV store
func ValidateCartID(id string) error {
	if id == "" {
		return shared.NewDomainError("INVALID_CART_ID", "Cart ID is required")
	}
	if len(id) > 64 {
		return shared.NewDomainError("INVALID_CART_ID", "Cart ID cannot exceed 64 characters")
	}
	return nil
}
