package handler

import (
	appcart "github.com/bojietech/storefront/internal/application/cart"
	"github.com/gin-gonic/gin"
)

// InquiryAdminHandler serves the admin sales workflow over submitted
// inquiries
type InquiryAdminHandler struct {
	BaseHandler
	inquiryService *appcart.InquiryService
}

// NewInquiryAdminHandler creates a new InquiryAdminHandler
func NewInquiryAdminHandler(inquiryService *appcart.InquiryService) *InquiryAdminHandler {
	return &InquiryAdminHandler{inquiryService: inquiryService}
}

// RegisterRoutes registers admin inquiry routes
func (h *InquiryAdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	inquiries := rg.Group("/inquiries")
	{
		inquiries.GET("", h.List)
		inquiries.PUT("/:id/status", h.UpdateStatus)
	}
}

// List handles GET /admin/inquiries
func (h *InquiryAdminHandler) List(c *gin.Context) {
	var filter appcart.InquiryListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid filter parameters: "+err.Error())
		return
	}

	inquiries, total, err := h.inquiryService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	h.SuccessWithMeta(c, inquiries, total, page, pageSize)
}

// UpdateStatus handles PUT /admin/inquiries/:id/status
func (h *InquiryAdminHandler) UpdateStatus(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid inquiry ID")
		return
	}

	var req appcart.UpdateInquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.inquiryService.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
