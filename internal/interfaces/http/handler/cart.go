package handler

import (
	appcart "github.com/bojietech/storefront/internal/application/cart"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CartHandler serves the visitor inquiry cart. The cart ID arrives in
// the X-Cart-ID header on every request; the storefront mints it
// client-side and keeps it in local storage.
type CartHandler struct {
	BaseHandler
	cartService    *appcart.CartService
	inquiryService *appcart.InquiryService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService *appcart.CartService, inquiryService *appcart.InquiryService) *CartHandler {
	return &CartHandler{cartService: cartService, inquiryService: inquiryService}
}

// RegisterRoutes registers public cart and inquiry routes
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cart := rg.Group("/cart")
	{
		cart.GET("", h.Get)
		cart.POST("/items", h.AddItem)
		cart.PUT("/items", h.SetQuantity)
		cart.DELETE("/items/:productId", h.RemoveItem)
		cart.DELETE("", h.Clear)
		cart.POST("/inquiry", h.SubmitInquiry)
	}
	rg.GET("/inquiries/:number", h.GetInquiry)
}

// Get handles GET /cart
func (h *CartHandler) Get(c *gin.Context) {
	resp, err := h.cartService.Get(c.Request.Context(), getCartID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req appcart.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.cartService.AddItem(c.Request.Context(), getCartID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SetQuantity handles PUT /cart/items. A quantity of zero removes the line.
func (h *CartHandler) SetQuantity(c *gin.Context) {
	var req appcart.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.cartService.SetQuantity(c.Request.Context(), getCartID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// RemoveItem handles DELETE /cart/items/:productId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	resp, err := h.cartService.RemoveItem(c.Request.Context(), getCartID(c), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Clear handles DELETE /cart
func (h *CartHandler) Clear(c *gin.Context) {
	resp, err := h.cartService.Clear(c.Request.Context(), getCartID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SubmitInquiry handles POST /cart/inquiry. It freezes the cart into an
// inquiry and clears the cart.
func (h *CartHandler) SubmitInquiry(c *gin.Context) {
	var req appcart.SubmitInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.inquiryService.Submit(c.Request.Context(), getCartID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetInquiry handles GET /inquiries/:number, so a visitor can check the
// inquiry they submitted without an account
func (h *CartHandler) GetInquiry(c *gin.Context) {
	number := c.Param("number")
	if number == "" {
		h.BadRequest(c, "Inquiry number is required")
		return
	}

	resp, err := h.inquiryService.GetByNumber(c.Request.Context(), number)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
