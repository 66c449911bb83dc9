package handler

import (
	"strconv"

	appcontent "github.com/bojietech/storefront/internal/application/content"
	"github.com/gin-gonic/gin"
)

// ContentHandler serves the public home page content: the hero
// carousel, the featured product strip, and the company profile
type ContentHandler struct {
	BaseHandler
	contentService *appcontent.ContentService
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(contentService *appcontent.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// RegisterRoutes registers public content routes
func (h *ContentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/carousels", h.ActiveCarousels)
	rg.GET("/featured", h.FeaturedProducts)
	rg.GET("/settings", h.Settings)
}

// ActiveCarousels handles GET /carousels
func (h *ContentHandler) ActiveCarousels(c *gin.Context) {
	carousels, err := h.contentService.ActiveCarousels(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, carousels)
}

// FeaturedProducts handles GET /featured
func (h *ContentHandler) FeaturedProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	resp, err := h.contentService.FeaturedProducts(c.Request.Context(), limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Settings handles GET /settings
func (h *ContentHandler) Settings(c *gin.Context) {
	settings, err := h.contentService.GetSettings(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, settings)
}
