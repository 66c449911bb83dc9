package handler

import (
	appcatalog "github.com/bojietech/storefront/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the public storefront catalog: the filtered
// grid, product detail pages, and the filter panel vocabulary
type CatalogHandler struct {
	BaseHandler
	browseService *appcatalog.BrowseService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(browseService *appcatalog.BrowseService) *CatalogHandler {
	return &CatalogHandler{browseService: browseService}
}

// RegisterRoutes registers public catalog routes
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.GET("", h.Browse)
		products.GET("/:id", h.GetProduct)
		products.GET("/code/:code", h.GetProductByCode)
	}
	rg.GET("/filter-options", h.FilterOptions)
}

// Browse handles GET /products
func (h *CatalogHandler) Browse(c *gin.Context) {
	var req appcatalog.BrowseRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid filter parameters: "+err.Error())
		return
	}

	resp, err := h.browseService.Browse(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetProduct handles GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	resp, err := h.browseService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetProductByCode handles GET /products/code/:code
func (h *CatalogHandler) GetProductByCode(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		h.BadRequest(c, "Product code is required")
		return
	}

	resp, err := h.browseService.GetByCode(c.Request.Context(), code)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// FilterOptions handles GET /filter-options
func (h *CatalogHandler) FilterOptions(c *gin.Context) {
	h.Success(c, h.browseService.FilterOptions(c.Request.Context()))
}
