package handler

import (
	"mime/multipart"

	"github.com/gin-gonic/gin"
)

// ImageStorage stores uploaded image files and returns public URLs
type ImageStorage interface {
	Save(file *multipart.FileHeader) (string, error)
}

// UploadHandler receives admin image uploads. Files land in the
// uploads directory served statically; the returned URLs are what the
// product and carousel endpoints expect as image references.
type UploadHandler struct {
	BaseHandler
	storage ImageStorage
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(storage ImageStorage) *UploadHandler {
	return &UploadHandler{storage: storage}
}

// RegisterRoutes registers admin upload routes
func (h *UploadHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/uploads", h.Upload)
}

// UploadResponse lists the public URLs of the stored images
type UploadResponse struct {
	URLs []string `json:"urls"`
}

// Upload handles POST /admin/uploads. Accepts one or more files in the
// multipart "files" field. A rejected file aborts the request; files
// stored before it stay on disk but their URLs are not returned, so
// they are never referenced.
func (h *UploadHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		h.BadRequest(c, "Invalid multipart form: "+err.Error())
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		h.BadRequest(c, "No files in the \"files\" field")
		return
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		url, err := h.storage.Save(file)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		urls = append(urls, url)
	}

	h.Created(c, UploadResponse{URLs: urls})
}
