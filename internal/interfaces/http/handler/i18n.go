package handler

import (
	appi18n "github.com/bojietech/storefront/internal/application/i18n"
	"github.com/bojietech/storefront/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// I18nHandler serves translation catalogs and the visitor's language
// choice
type I18nHandler struct {
	BaseHandler
	languageService *appi18n.LanguageService
}

// NewI18nHandler creates a new I18nHandler
func NewI18nHandler(languageService *appi18n.LanguageService) *I18nHandler {
	return &I18nHandler{languageService: languageService}
}

// RegisterRoutes registers public i18n routes
func (h *I18nHandler) RegisterRoutes(rg *gin.RouterGroup) {
	i18n := rg.Group("/i18n")
	{
		i18n.GET("", h.Catalog)
		i18n.PUT("/language", h.SetLanguage)
	}
}

// Catalog handles GET /i18n. It returns the resolved language, the
// supported list, and the full translation map for the storefront.
func (h *I18nHandler) Catalog(c *gin.Context) {
	resp := h.languageService.Catalog(c.Request.Context(), middleware.VisitorID(c), c.GetHeader("Accept-Language"))
	h.Success(c, resp)
}

// SetLanguage handles PUT /i18n/language, persisting an explicit
// language choice for the visitor
func (h *I18nHandler) SetLanguage(c *gin.Context) {
	var req appi18n.SetLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.languageService.SetLanguage(c.Request.Context(), middleware.VisitorID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
