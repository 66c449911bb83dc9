package handler

import (
	appcontent "github.com/bojietech/storefront/internal/application/content"
	"github.com/gin-gonic/gin"
)

// ContentAdminHandler manages home page content from the admin panel
type ContentAdminHandler struct {
	BaseHandler
	contentService *appcontent.ContentService
}

// NewContentAdminHandler creates a new ContentAdminHandler
func NewContentAdminHandler(contentService *appcontent.ContentService) *ContentAdminHandler {
	return &ContentAdminHandler{contentService: contentService}
}

// RegisterRoutes registers admin content routes
func (h *ContentAdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	carousels := rg.Group("/carousels")
	{
		carousels.GET("", h.ListCarousels)
		carousels.POST("", h.CreateCarousel)
		carousels.PUT("/:id", h.UpdateCarousel)
		carousels.DELETE("/:id", h.DeleteCarousel)
	}

	featured := rg.Group("/featured")
	{
		featured.GET("", h.ListFeatured)
		featured.POST("", h.CreateFeatured)
		featured.PUT("/:id", h.UpdateFeatured)
		featured.DELETE("/:id", h.DeleteFeatured)
	}

	rg.GET("/settings", h.GetSettings)
	rg.PUT("/settings", h.UpdateSettings)
}

// ListCarousels handles GET /admin/carousels
func (h *ContentAdminHandler) ListCarousels(c *gin.Context) {
	carousels, err := h.contentService.ListCarousels(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, carousels)
}

// CreateCarousel handles POST /admin/carousels
func (h *ContentAdminHandler) CreateCarousel(c *gin.Context) {
	var req appcontent.CreateCarouselRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	carousel, err := h.contentService.CreateCarousel(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, carousel)
}

// UpdateCarousel handles PUT /admin/carousels/:id
func (h *ContentAdminHandler) UpdateCarousel(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid carousel ID")
		return
	}

	var req appcontent.UpdateCarouselRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	carousel, err := h.contentService.UpdateCarousel(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, carousel)
}

// DeleteCarousel handles DELETE /admin/carousels/:id
func (h *ContentAdminHandler) DeleteCarousel(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid carousel ID")
		return
	}

	if err := h.contentService.DeleteCarousel(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListFeatured handles GET /admin/featured
func (h *ContentAdminHandler) ListFeatured(c *gin.Context) {
	pins, err := h.contentService.ListFeatured(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, pins)
}

// CreateFeatured handles POST /admin/featured
func (h *ContentAdminHandler) CreateFeatured(c *gin.Context) {
	var req appcontent.CreateFeaturedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	pin, err := h.contentService.CreateFeatured(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, pin)
}

// UpdateFeatured handles PUT /admin/featured/:id
func (h *ContentAdminHandler) UpdateFeatured(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid featured pin ID")
		return
	}

	var req appcontent.UpdateFeaturedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	pin, err := h.contentService.UpdateFeatured(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, pin)
}

// DeleteFeatured handles DELETE /admin/featured/:id
func (h *ContentAdminHandler) DeleteFeatured(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid featured pin ID")
		return
	}

	if err := h.contentService.DeleteFeatured(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// GetSettings handles GET /admin/settings
func (h *ContentAdminHandler) GetSettings(c *gin.Context) {
	settings, err := h.contentService.GetSettings(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, settings)
}

// UpdateSettings handles PUT /admin/settings
func (h *ContentAdminHandler) UpdateSettings(c *gin.Context) {
	var req appcontent.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	settings, err := h.contentService.UpdateSettings(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, settings)
}
